// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

// Status is the learning bucket a card sits in. A card starts NEW, moves to
// LEARNING on its first review, and reaches MASTERED once it clears the
// mastery threshold. Status is recomputed from counters on every response,
// so a MASTERED card can drop back to LEARNING.
type Status string

const (
	StatusNew      Status = "NEW"
	StatusLearning Status = "LEARNING"
	StatusMastered Status = "MASTERED"
)

// Response is the study feedback a user gives after seeing a card.
type Response string

const (
	ResponseKnew   Response = "knew"
	ResponseAlmost Response = "almost"
	ResponseDidnt  Response = "didnt"
)

// Deck is a named collection of cards. Category is nil for uncategorized
// decks. Timestamps are milliseconds since epoch.
type Deck struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Category  *string `json:"category" yaml:"category,omitempty"`
	CreatedAt int64   `json:"createdAt" yaml:"created_at"`
	UpdatedAt int64   `json:"updatedAt" yaml:"updated_at"`
}

// Card is a question/answer pair belonging to exactly one deck.
type Card struct {
	ID        string `json:"id" yaml:"id"`
	DeckID    string `json:"deckId" yaml:"deck_id"`
	Question  string `json:"question" yaml:"question"`
	Answer    string `json:"answer" yaml:"answer"`
	CreatedAt int64  `json:"createdAt" yaml:"created_at"`
	UpdatedAt int64  `json:"updatedAt" yaml:"updated_at"`
}

// Progress is the per-card learning state, one row per card.
// LastReviewedAt is nil until the first review.
type Progress struct {
	ID             string `json:"id" yaml:"id"`
	CardID         string `json:"cardId" yaml:"card_id"`
	Status         Status `json:"status" yaml:"status"`
	LastReviewedAt *int64 `json:"lastReviewedAt" yaml:"last_reviewed_at,omitempty"`
	TimesSeen      int    `json:"timesSeen" yaml:"times_seen"`
	TimesKnown     int    `json:"timesKnown" yaml:"times_known"`
	TimesAlmost    int    `json:"timesAlmost" yaml:"times_almost"`
}

// CardProgress joins a card with its progress row.
type CardProgress struct {
	Card     *Card     `json:"card" yaml:"card"`
	Progress *Progress `json:"progress" yaml:"progress"`
}

// Completion summarizes how much of a deck is mastered. Completion is the
// percentage of mastered cards, 0-100, rounded to the nearest integer.
type Completion struct {
	Completion int `json:"completion" yaml:"completion"`
	Mastered   int `json:"mastered" yaml:"mastered"`
	Total      int `json:"total" yaml:"total"`
}

// ActivityDay is one calendar day of study activity.
type ActivityDay struct {
	Date    string `json:"date" yaml:"date"` // YYYY-MM-DD
	Reviews int    `json:"reviews" yaml:"reviews"`
}

// Analytics is the derived read-side view over a deck's cards and progress.
// It is computed on demand and never persisted.
type Analytics struct {
	StatusDistribution map[Status]int `json:"statusDistribution" yaml:"status_distribution"`
	AverageAccuracy    int            `json:"averageAccuracy" yaml:"average_accuracy"`
	TotalReviews       int            `json:"totalReviews" yaml:"total_reviews"`
	RecentActivity     []ActivityDay  `json:"recentActivity" yaml:"recent_activity"`
}

// ImportEntry is one deck's worth of parsed import rows.
type ImportEntry struct {
	DeckName string
	Cards    []ImportCard
}

// ImportCard is a single question/answer pair from an import batch.
type ImportCard struct {
	Question string
	Answer   string
}

// ImportResult reports what an import batch created. Reused decks do not
// count toward DecksCreated.
type ImportResult struct {
	DecksCreated int `json:"decksCreated"`
	CardsCreated int `json:"cardsCreated"`
}

// DeckExport is a read-only snapshot of a deck and its cards.
type DeckExport struct {
	Deck  *Deck   `json:"deck" yaml:"deck"`
	Cards []*Card `json:"cards" yaml:"cards"`
}

// BackfillResult reports what the startup progress backfill did.
type BackfillResult struct {
	CardsProcessed  int `json:"cardsProcessed"`
	ProgressCreated int `json:"progressCreated"`
}

// DeckUpdate is a partial deck update. Nil fields are left untouched.
// SetCategory distinguishes "clear the category" from "don't touch it".
type DeckUpdate struct {
	Name        *string
	Category    *string
	SetCategory bool
}

// CardUpdate is a partial card update. Nil fields are left untouched.
type CardUpdate struct {
	Question *string
	Answer   *string
}
