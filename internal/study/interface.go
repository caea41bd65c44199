// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

// StudyStore is the call boundary consumed by the CLI and any other
// front end. Store is the SQLite implementation.
type StudyStore interface {
	// Deck operations
	CreateDeck(name string, category *string) (*Deck, error)
	Deck(id string) (*Deck, error)
	Decks() ([]*Deck, error)
	DecksByCategory(category *string) ([]*Deck, error)
	Categories() ([]string, error)
	RenameDeck(deckID, newName string) (*Deck, error)
	UpdateDeck(deckID string, update DeckUpdate) (*Deck, error)
	UpdateDeckCategory(deckID string, category *string) (*Deck, error)

	// Card operations
	Card(id string) (*Card, error)
	CardsByDeck(deckID string) ([]*Card, error)
	CreateCard(deckID, question, answer string) (*Card, error)
	UpdateCard(cardID string, update CardUpdate) (*Card, error)
	DeleteCard(cardID string) error

	// Progress operations
	ProgressFor(cardID string) (*Progress, error)
	RecordResponse(cardID string, response Response) (*Progress, error)
	ResetDeckProgress(deckID string) error

	// Analytics (pure reads)
	DeckProgress(deckID string) ([]*CardProgress, error)
	DeckCompletion(deckID string) (*Completion, error)
	DeckAnalytics(deckID string) (*Analytics, error)

	// Cascade operations
	DeleteDeck(deckID string) error
	Import(entries []ImportEntry) (*ImportResult, error)
	ExportDeck(deckID string) (*DeckExport, error)
	ExportAllDecks() ([]*DeckExport, error)

	// Startup backfill
	EnsureProgress() (*BackfillResult, error)

	Close() error
}

var _ StudyStore = (*Store)(nil)
