// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import "github.com/google/uuid"

// EnsureProgress is the startup data-completeness pass: it creates a
// default progress row for every card that lacks one. It runs at most once
// per Store handle (one handle is one app session); reopening the store
// re-runs it, which is a no-op when nothing changed.
func (s *Store) EnsureProgress() (*BackfillResult, error) {
	s.mu.Lock()
	if s.backfilled {
		s.mu.Unlock()
		return &BackfillResult{}, nil
	}
	s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT c.id FROM cards c
		LEFT JOIN progress p ON p.card_id = c.id
		WHERE p.id IS NULL
	`)
	if err != nil {
		return nil, &StoreError{Op: "find cards without progress", Err: err}
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &StoreError{Op: "scan card id", Err: err}
		}
		missing = append(missing, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "iterate cards", Err: err}
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&total); err != nil {
		return nil, &StoreError{Op: "count cards", Err: err}
	}

	result := &BackfillResult{CardsProcessed: total}
	for _, cardID := range missing {
		_, err := s.db.Exec(`
			INSERT OR IGNORE INTO progress (id, card_id, status, last_reviewed_at, times_seen, times_known, times_almost)
			VALUES (?, ?, ?, NULL, 0, 0, 0)
		`, uuid.New().String(), cardID, StatusNew)
		if err != nil {
			return nil, &StoreError{Op: "backfill progress", Err: err}
		}
		result.ProgressCreated++
	}

	s.mu.Lock()
	s.backfilled = true
	s.mu.Unlock()
	return result, nil
}
