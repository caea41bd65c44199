// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
)

// CreateDeck creates a deck with a trimmed non-empty name. A blank category
// is stored as NULL.
func (s *Store) CreateDeck(name string, category *string) (*Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "deck name", Reason: "must not be empty"}
	}
	category = normalizeCategory(category)

	now := nowMillis()
	d := &Deck{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.Exec(`
		INSERT INTO decks (id, name, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, d.ID, d.Name, d.Category, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, &StoreError{Op: "insert deck", Err: err}
	}
	return d, nil
}

// Deck retrieves a deck by id, or nil if absent.
func (s *Store) Deck(id string) (*Deck, error) {
	row := s.db.QueryRow(`
		SELECT id, name, category, created_at, updated_at
		FROM decks WHERE id = ?
	`, id)
	return scanDeck(row)
}

// Decks returns all decks, most recently updated first.
func (s *Store) Decks() ([]*Deck, error) {
	return s.queryDecks(`
		SELECT id, name, category, created_at, updated_at
		FROM decks ORDER BY updated_at DESC
	`)
}

// DecksByCategory returns decks whose category exactly matches. A nil
// category means no filter, mirroring the "All" selection.
func (s *Store) DecksByCategory(category *string) ([]*Deck, error) {
	if category == nil {
		return s.Decks()
	}
	return s.queryDecks(`
		SELECT id, name, category, created_at, updated_at
		FROM decks WHERE category = ? ORDER BY updated_at DESC
	`, *category)
}

// Categories returns the distinct non-null categories across all decks.
func (s *Store) Categories() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT category FROM decks
		WHERE category IS NOT NULL ORDER BY category
	`)
	if err != nil {
		return nil, &StoreError{Op: "list categories", Err: err}
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, &StoreError{Op: "scan category", Err: err}
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// RenameDeck sets a new trimmed non-empty name and bumps updated_at.
func (s *Store) RenameDeck(deckID, newName string) (*Deck, error) {
	newName = strings.TrimSpace(newName)
	return s.UpdateDeck(deckID, DeckUpdate{Name: &newName})
}

// UpdateDeck applies a partial update of name and/or category and bumps
// updated_at. A provided name must trim non-empty.
func (s *Store) UpdateDeck(deckID string, update DeckUpdate) (*Deck, error) {
	d, err := s.Deck(deckID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &NotFoundError{Kind: "deck", ID: deckID}
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, &ValidationError{Field: "deck name", Reason: "must not be empty"}
		}
		d.Name = name
	}
	if update.SetCategory {
		d.Category = normalizeCategory(update.Category)
	}
	d.UpdatedAt = nowMillis()

	_, err = s.db.Exec(`
		UPDATE decks SET name = ?, category = ?, updated_at = ?
		WHERE id = ?
	`, d.Name, d.Category, d.UpdatedAt, d.ID)
	if err != nil {
		return nil, &StoreError{Op: "update deck", Err: err}
	}
	return d, nil
}

// UpdateDeckCategory sets (or with nil clears) a deck's category.
func (s *Store) UpdateDeckCategory(deckID string, category *string) (*Deck, error) {
	return s.UpdateDeck(deckID, DeckUpdate{Category: category, SetCategory: true})
}

func (s *Store) queryDecks(query string, args ...any) ([]*Deck, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, &StoreError{Op: "list decks", Err: err}
	}
	defer rows.Close()

	var decks []*Deck
	for rows.Next() {
		var d Deck
		var category sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &category, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, &StoreError{Op: "scan deck", Err: err}
		}
		if category.Valid {
			d.Category = &category.String
		}
		decks = append(decks, &d)
	}
	return decks, rows.Err()
}

func scanDeck(row *sql.Row) (*Deck, error) {
	var d Deck
	var category sql.NullString
	err := row.Scan(&d.ID, &d.Name, &category, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "scan deck", Err: err}
	}
	if category.Valid {
		d.Category = &category.String
	}
	return &d, nil
}

// normalizeCategory maps blank and whitespace-only categories to nil.
func normalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	c := strings.TrimSpace(*category)
	if c == "" {
		return nil
	}
	return &c
}

// touchDeck bumps a deck's updated_at inside the caller's transaction.
// Card creation and updates ripple up to the owning deck.
func touchDeck(tx *sql.Tx, deckID string, now int64) error {
	_, err := tx.Exec(`UPDATE decks SET updated_at = ? WHERE id = ?`, now, deckID)
	return err
}
