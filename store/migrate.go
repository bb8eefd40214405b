// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"eventlink/auth"
)

// BackfillTokens assigns a registration token to every event that lacks one
// (NULL or empty). Events created before the token feature existed are the
// only rows this can match, so on a fresh database it is a no-op. It runs
// once at startup, before the listener starts; the caller logs and swallows
// any error because a failed backfill must not block new-event creation.
func (s *Store) BackfillTokens(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM events
		WHERE registration_token IS NULL OR registration_token = ''
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to query events without tokens: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	repaired := 0
	for _, id := range ids {
		token, err := auth.GenerateRegistrationToken()
		if err != nil {
			return repaired, err
		}

		// The WHERE clause keeps this idempotent if another process
		// already repaired the row.
		_, err = s.db.ExecContext(ctx, `
			UPDATE events SET registration_token = $1
			WHERE id = $2 AND (registration_token IS NULL OR registration_token = '')
		`, token, id)
		if err != nil {
			return repaired, fmt.Errorf("failed to backfill token for event %s: %w", id, err)
		}
		repaired++
	}

	return repaired, nil
}
