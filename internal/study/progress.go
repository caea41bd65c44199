// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"database/sql"

	"github.com/google/uuid"
)

// Mastery threshold: a card is MASTERED once it has been seen at least
// masteryMinSeen times with a knew-rate of masteryAccuracy or better.
// Recomputed from the counters on every response, so a "didnt" on a
// mastered card can demote it back to LEARNING.
const (
	masteryMinSeen  = 3
	masteryAccuracy = 0.8
)

// computeStatus derives the status bucket from the counters.
func computeStatus(timesSeen, timesKnown int) Status {
	if timesSeen == 0 {
		return StatusNew
	}
	if timesSeen >= masteryMinSeen && float64(timesKnown)/float64(timesSeen) >= masteryAccuracy {
		return StatusMastered
	}
	return StatusLearning
}

// ProgressFor returns the progress row for a card, creating and persisting
// the default NEW row on first access. Repeated calls for the same card
// always land on the same row; the unique card_id constraint makes the
// insert race-safe.
func (s *Store) ProgressFor(cardID string) (*Progress, error) {
	card, err := s.Card(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, &NotFoundError{Kind: "card", ID: cardID}
	}

	_, err = s.db.Exec(`
		INSERT OR IGNORE INTO progress (id, card_id, status, last_reviewed_at, times_seen, times_known, times_almost)
		VALUES (?, ?, ?, NULL, 0, 0, 0)
	`, uuid.New().String(), cardID, StatusNew)
	if err != nil {
		return nil, &StoreError{Op: "init progress", Err: err}
	}

	return s.progressByCard(cardID)
}

// RecordResponse applies one study response: times_seen always increments,
// last_reviewed_at is set to now, "knew" and "almost" bump their counters,
// and the status is recomputed. The read-modify-write runs in a single
// transaction so concurrent responses on the same card cannot lose updates.
func (s *Store) RecordResponse(cardID string, response Response) (*Progress, error) {
	switch response {
	case ResponseKnew, ResponseAlmost, ResponseDidnt:
	default:
		return nil, &ValidationError{Field: "response", Reason: "must be knew, almost or didnt"}
	}

	// Make sure the row exists before entering the update transaction.
	if _, err := s.ProgressFor(cardID); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, &StoreError{Op: "begin record response", Err: err}
	}
	defer tx.Rollback()

	var p Progress
	var lastReviewed sql.NullInt64
	err = tx.QueryRow(`
		SELECT id, card_id, status, last_reviewed_at, times_seen, times_known, times_almost
		FROM progress WHERE card_id = ?
	`, cardID).Scan(&p.ID, &p.CardID, &p.Status, &lastReviewed, &p.TimesSeen, &p.TimesKnown, &p.TimesAlmost)
	if err != nil {
		return nil, &StoreError{Op: "read progress", Err: err}
	}

	now := nowMillis()
	p.TimesSeen++
	switch response {
	case ResponseKnew:
		p.TimesKnown++
	case ResponseAlmost:
		p.TimesAlmost++
	}
	p.LastReviewedAt = &now
	p.Status = computeStatus(p.TimesSeen, p.TimesKnown)

	_, err = tx.Exec(`
		UPDATE progress
		SET status = ?, last_reviewed_at = ?, times_seen = ?, times_known = ?, times_almost = ?
		WHERE id = ?
	`, p.Status, now, p.TimesSeen, p.TimesKnown, p.TimesAlmost, p.ID)
	if err != nil {
		return nil, &StoreError{Op: "write progress", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "commit record response", Err: err}
	}
	return &p, nil
}

// ResetDeckProgress resets every progress row in a deck to the default
// NEW state. Rows are reset in place, not deleted, so their ids survive.
func (s *Store) ResetDeckProgress(deckID string) error {
	deck, err := s.Deck(deckID)
	if err != nil {
		return err
	}
	if deck == nil {
		return &NotFoundError{Kind: "deck", ID: deckID}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &StoreError{Op: "begin reset progress", Err: err}
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE progress
		SET status = ?, last_reviewed_at = NULL, times_seen = 0, times_known = 0, times_almost = 0
		WHERE card_id IN (SELECT id FROM cards WHERE deck_id = ?)
	`, StatusNew, deckID)
	if err != nil {
		return &StoreError{Op: "reset progress", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "commit reset progress", Err: err}
	}
	return nil
}

func (s *Store) progressByCard(cardID string) (*Progress, error) {
	var p Progress
	var lastReviewed sql.NullInt64
	err := s.db.QueryRow(`
		SELECT id, card_id, status, last_reviewed_at, times_seen, times_known, times_almost
		FROM progress WHERE card_id = ?
	`, cardID).Scan(&p.ID, &p.CardID, &p.Status, &lastReviewed, &p.TimesSeen, &p.TimesKnown, &p.TimesAlmost)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "read progress", Err: err}
	}
	if lastReviewed.Valid {
		p.LastReviewedAt = &lastReviewed.Int64
	}
	return &p, nil
}
