// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"eventlink/auth"
	"eventlink/models"
)

// tokenInsertAttempts bounds the retry loop when a freshly generated
// registration token collides with an existing one. At 128 bits of entropy
// a single collision is already implausible.
const tokenInsertAttempts = 3

// CreateEvent inserts a new event with a freshly generated registration
// token. The insert is atomic: there is never a committed event without a
// token.
func (s *Store) CreateEvent(ctx context.Context, name, description, date string) (models.Event, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return models.Event{}, err
	}

	now := time.Now().UTC()

	var lastErr error
	for attempt := 0; attempt < tokenInsertAttempts; attempt++ {
		token, err := auth.GenerateRegistrationToken()
		if err != nil {
			return models.Event{}, err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO events (id, name, description, date, registration_token, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, name, description, date, token, formatTime(now))

		if err == nil {
			return models.Event{
				ID:                id,
				Name:              name,
				Description:       description,
				Date:              date,
				RegistrationToken: token,
				CreatedAt:         now,
			}, nil
		}

		if !isUniqueViolation(err, "registration_token") {
			return models.Event{}, fmt.Errorf("failed to insert event: %w", err)
		}
		lastErr = err
	}

	return models.Event{}, fmt.Errorf("failed to find an unused registration token: %w", lastErr)
}

// GetEvent fetches a single event by ID.
func (s *Store) GetEvent(ctx context.Context, id string) (models.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, date, registration_token, created_at
		FROM events
		WHERE id = $1
	`, id)
	return scanEvent(row)
}

// GetEventByToken resolves a public registration token to its event.
func (s *Store) GetEventByToken(ctx context.Context, token string) (models.Event, error) {
	// A legacy row could hold an empty token until the backfill runs;
	// never let the empty string act as a valid capability.
	if token == "" {
		return models.Event{}, ErrEventNotFound
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, date, registration_token, created_at
		FROM events
		WHERE registration_token = $1
	`, token)
	return scanEvent(row)
}

// ListEvents returns all events, newest-created first.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, date, registration_token, created_at
		FROM events
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		evt, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, rows.Err()
}

// DeleteEvent removes an event and all of its participants in a single
// transaction, so a failure can never leave orphaned participant rows.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM participants WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return tx.Commit()
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row scannable) (models.Event, error) {
	var evt models.Event
	var token sql.NullString
	var createdAt string

	err := row.Scan(&evt.ID, &evt.Name, &evt.Description, &evt.Date, &token, &createdAt)
	if err == sql.ErrNoRows {
		return models.Event{}, ErrEventNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to scan event: %w", err)
	}

	evt.RegistrationToken = token.String
	evt.CreatedAt = parseTime(createdAt)
	return evt, nil
}
