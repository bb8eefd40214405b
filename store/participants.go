// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventlink/auth"
	"eventlink/models"
)

// NormalizeEmail is the canonical form emails are stored and compared in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateParticipant registers a participant for an event. The UNIQUE
// (event_id, email) constraint makes the insert the dedup check: two
// concurrent calls with the same email yield exactly one success and one
// ErrDuplicateParticipant.
func (s *Store) CreateParticipant(ctx context.Context, eventID, name, email, college string) (models.Participant, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return models.Participant{}, err
	}

	email = NormalizeEmail(email)
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO participants (id, event_id, name, email, college, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, eventID, name, email, college, formatTime(now))

	if err != nil {
		if isUniqueViolation(err, "participants") {
			return models.Participant{}, ErrDuplicateParticipant
		}
		return models.Participant{}, fmt.Errorf("failed to insert participant: %w", err)
	}

	return models.Participant{
		ID:           id,
		EventID:      eventID,
		Name:         name,
		Email:        email,
		College:      college,
		RegisteredAt: now,
	}, nil
}

// ParticipantExists is a UX pre-check so duplicate registrations get
// rejected before the college field is even validated. It is not a
// concurrency guarantee; CreateParticipant's constrained insert is.
func (s *Store) ParticipantExists(ctx context.Context, eventID, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM participants
			WHERE event_id = $1 AND email = $2
		)
	`, eventID, NormalizeEmail(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}
	return exists, nil
}

// ListParticipants returns an event's participants, newest-registered first.
// A non-empty search filters to rows whose name or email contains it,
// case-insensitively.
func (s *Store) ListParticipants(ctx context.Context, eventID, search string) ([]models.Participant, error) {
	query := `
		SELECT id, event_id, name, email, college, registered_at
		FROM participants
		WHERE event_id = $1
		ORDER BY registered_at DESC
	`
	args := []interface{}{eventID}

	if search != "" {
		query = `
			SELECT id, event_id, name, email, college, registered_at
			FROM participants
			WHERE event_id = $1 AND (LOWER(name) LIKE $2 OR LOWER(email) LIKE $2)
			ORDER BY registered_at DESC
		`
		args = append(args, "%"+strings.ToLower(search)+"%")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		var registeredAt string
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.Email, &p.College, &registeredAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.RegisteredAt = parseTime(registeredAt)
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// CountParticipants returns the number of participants for an event.
func (s *Store) CountParticipants(ctx context.Context, eventID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM participants WHERE event_id = $1
	`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

// DeleteParticipant removes one participant, scoped by both IDs so an admin
// URL for one event can never delete another event's participant. Returns
// the number of rows removed; 0 means the participant was not found, which
// is not an error.
func (s *Store) DeleteParticipant(ctx context.Context, eventID, participantID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM participants WHERE id = $1 AND event_id = $2
	`, participantID, eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete participant: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}
