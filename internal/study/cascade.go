// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DeleteDeck removes a deck together with all its cards and their progress
// rows in one transaction: a failure partway leaves everything in place.
// Deleting a missing deck is a no-op.
func (s *Store) DeleteDeck(deckID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &StoreError{Op: "begin delete deck", Err: err}
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM progress
		WHERE card_id IN (SELECT id FROM cards WHERE deck_id = ?)
	`, deckID)
	if err != nil {
		return &StoreError{Op: "delete deck progress", Err: err}
	}
	if _, err := tx.Exec(`DELETE FROM cards WHERE deck_id = ?`, deckID); err != nil {
		return &StoreError{Op: "delete deck cards", Err: err}
	}
	if _, err := tx.Exec(`DELETE FROM decks WHERE id = ?`, deckID); err != nil {
		return &StoreError{Op: "delete deck", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "commit delete deck", Err: err}
	}
	return nil
}

// Import creates decks and cards from a parsed batch. A deck whose name
// exactly matches an existing one (case-sensitive) is reused and does not
// count toward DecksCreated. The whole batch runs in one transaction:
// either every entry lands or none does.
func (s *Store) Import(entries []ImportEntry) (*ImportResult, error) {
	if len(entries) == 0 {
		return nil, &ImportFormatError{Reason: "no entries to import"}
	}
	// Validate everything up front so a bad batch never touches the store.
	for _, e := range entries {
		if strings.TrimSpace(e.DeckName) == "" {
			return nil, &ValidationError{Field: "deck name", Reason: "must not be empty"}
		}
		for _, c := range e.Cards {
			if strings.TrimSpace(c.Question) == "" {
				return nil, &ValidationError{Field: "question", Reason: "must not be empty"}
			}
			if strings.TrimSpace(c.Answer) == "" {
				return nil, &ValidationError{Field: "answer", Reason: "must not be empty"}
			}
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, &StoreError{Op: "begin import", Err: err}
	}
	defer tx.Rollback()

	result := &ImportResult{}
	now := nowMillis()

	for _, e := range entries {
		name := strings.TrimSpace(e.DeckName)

		var deckID string
		err := tx.QueryRow(`SELECT id FROM decks WHERE name = ? LIMIT 1`, name).Scan(&deckID)
		switch {
		case err == nil:
			// Reuse the existing deck.
		case errors.Is(err, sql.ErrNoRows):
			deckID = uuid.New().String()
			_, err = tx.Exec(`
				INSERT INTO decks (id, name, category, created_at, updated_at)
				VALUES (?, ?, NULL, ?, ?)
			`, deckID, name, now, now)
			if err != nil {
				return nil, &StoreError{Op: "import deck", Err: err}
			}
			result.DecksCreated++
		default:
			return nil, &StoreError{Op: "find deck", Err: err}
		}

		for _, c := range e.Cards {
			_, err = tx.Exec(`
				INSERT INTO cards (id, deck_id, question, answer, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?)
			`, uuid.New().String(), deckID, strings.TrimSpace(c.Question), strings.TrimSpace(c.Answer), now, now)
			if err != nil {
				return nil, &StoreError{Op: "import card", Err: err}
			}
			result.CardsCreated++
		}
		if err := touchDeck(tx, deckID, now); err != nil {
			return nil, &StoreError{Op: "touch deck", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "commit import", Err: err}
	}
	return result, nil
}

// ExportDeck assembles a read-only snapshot of one deck and its cards.
func (s *Store) ExportDeck(deckID string) (*DeckExport, error) {
	deck, err := s.Deck(deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, &NotFoundError{Kind: "deck", ID: deckID}
	}
	cards, err := s.CardsByDeck(deckID)
	if err != nil {
		return nil, err
	}
	return &DeckExport{Deck: deck, Cards: cards}, nil
}

// ExportAllDecks snapshots every deck with its cards.
func (s *Store) ExportAllDecks() ([]*DeckExport, error) {
	decks, err := s.Decks()
	if err != nil {
		return nil, err
	}
	exports := make([]*DeckExport, 0, len(decks))
	for _, d := range decks {
		cards, err := s.CardsByDeck(d.ID)
		if err != nil {
			return nil, err
		}
		exports = append(exports, &DeckExport{Deck: d, Cards: cards})
	}
	return exports, nil
}
