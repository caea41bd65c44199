// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
)

// Card retrieves a card by id, or nil if absent.
func (s *Store) Card(id string) (*Card, error) {
	row := s.db.QueryRow(`
		SELECT id, deck_id, question, answer, created_at, updated_at
		FROM cards WHERE id = ?
	`, id)
	return scanCard(row)
}

// CardsByDeck returns all cards in a deck in a deterministic order
// (oldest first, id as tiebreak).
func (s *Store) CardsByDeck(deckID string) ([]*Card, error) {
	rows, err := s.db.Query(`
		SELECT id, deck_id, question, answer, created_at, updated_at
		FROM cards WHERE deck_id = ? ORDER BY created_at, id
	`, deckID)
	if err != nil {
		return nil, &StoreError{Op: "list cards", Err: err}
	}
	defer rows.Close()

	var cards []*Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, &StoreError{Op: "scan card", Err: err}
		}
		cards = append(cards, &c)
	}
	return cards, rows.Err()
}

// CreateCard creates a card under an existing deck and bumps the deck's
// updated_at. Question and answer must trim non-empty.
func (s *Store) CreateCard(deckID, question, answer string) (*Card, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return nil, &ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if answer == "" {
		return nil, &ValidationError{Field: "answer", Reason: "must not be empty"}
	}

	deck, err := s.Deck(deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, &ValidationError{Field: "deckId", Reason: "deck does not exist: " + deckID}
	}

	now := nowMillis()
	c := &Card{
		ID:        uuid.New().String(),
		DeckID:    deckID,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, &StoreError{Op: "begin create card", Err: err}
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO cards (id, deck_id, question, answer, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.DeckID, c.Question, c.Answer, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, &StoreError{Op: "insert card", Err: err}
	}
	if err := touchDeck(tx, deckID, now); err != nil {
		return nil, &StoreError{Op: "touch deck", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "commit create card", Err: err}
	}
	return c, nil
}

// UpdateCard applies a partial update of question and/or answer, bumping
// both the card's and the owning deck's updated_at.
func (s *Store) UpdateCard(cardID string, update CardUpdate) (*Card, error) {
	c, err := s.Card(cardID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &NotFoundError{Kind: "card", ID: cardID}
	}

	if update.Question != nil {
		q := strings.TrimSpace(*update.Question)
		if q == "" {
			return nil, &ValidationError{Field: "question", Reason: "must not be empty"}
		}
		c.Question = q
	}
	if update.Answer != nil {
		a := strings.TrimSpace(*update.Answer)
		if a == "" {
			return nil, &ValidationError{Field: "answer", Reason: "must not be empty"}
		}
		c.Answer = a
	}
	c.UpdatedAt = nowMillis()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, &StoreError{Op: "begin update card", Err: err}
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE cards SET question = ?, answer = ?, updated_at = ?
		WHERE id = ?
	`, c.Question, c.Answer, c.UpdatedAt, c.ID)
	if err != nil {
		return nil, &StoreError{Op: "update card", Err: err}
	}
	if err := touchDeck(tx, c.DeckID, c.UpdatedAt); err != nil {
		return nil, &StoreError{Op: "touch deck", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "commit update card", Err: err}
	}
	return c, nil
}

// DeleteCard removes a card and its progress row in one transaction.
// Deleting a missing card is a no-op so UI retries stay safe.
func (s *Store) DeleteCard(cardID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &StoreError{Op: "begin delete card", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM progress WHERE card_id = ?`, cardID); err != nil {
		return &StoreError{Op: "delete card progress", Err: err}
	}
	if _, err := tx.Exec(`DELETE FROM cards WHERE id = ?`, cardID); err != nil {
		return &StoreError{Op: "delete card", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "commit delete card", Err: err}
	}
	return nil
}

func scanCard(row *sql.Row) (*Card, error) {
	var c Card
	err := row.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "scan card", Err: err}
	}
	return &c, nil
}
