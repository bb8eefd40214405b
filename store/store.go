// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"eventlink/cliparse"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrDuplicateParticipant = errors.New("participant already registered for this event")
)

// timeLayout is a fixed-width UTC timestamp format. Fixed width means
// lexicographic order equals chronological order, so ORDER BY works the
// same on both drivers.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the persistence layer over the two tables (events, participants).
type Store struct {
	db *sql.DB
}

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*Store, error) {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	db, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.DatabaseType == "sqlite" {
		// A single connection avoids "database is locked" errors under
		// concurrent registration writes.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a unique-constraint failure whose
// message mentions hint (a column or table name). Neither driver exposes a
// typed error for this, so both message shapes are matched.
func isUniqueViolation(err error, hint string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") &&
		!strings.Contains(msg, "duplicate key value violates unique constraint") {
		return false
	}
	return strings.Contains(msg, hint)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
