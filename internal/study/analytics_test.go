// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"testing"
	"time"
)

func TestDeckCompletion(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Mixed", nil)

	// 2 mastered, 1 learning, 1 new.
	for i := 0; i < 2; i++ {
		card, _ := s.CreateCard(deck.ID, "mastered?", "yes")
		for j := 0; j < 3; j++ {
			if _, err := s.RecordResponse(card.ID, ResponseKnew); err != nil {
				t.Fatalf("RecordResponse: %v", err)
			}
		}
	}
	learning, _ := s.CreateCard(deck.ID, "learning?", "yes")
	if _, err := s.RecordResponse(learning.ID, ResponseDidnt); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	s.CreateCard(deck.ID, "new?", "yes")

	c, err := s.DeckCompletion(deck.ID)
	if err != nil {
		t.Fatalf("DeckCompletion: %v", err)
	}
	if c.Total != 4 || c.Mastered != 2 || c.Completion != 50 {
		t.Fatalf("completion: got %+v, want {50 2 4}", c)
	}
}

func TestDeckCompletionEmptyDeck(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Empty", nil)

	c, err := s.DeckCompletion(deck.ID)
	if err != nil {
		t.Fatalf("DeckCompletion: %v", err)
	}
	if c.Completion != 0 || c.Mastered != 0 || c.Total != 0 {
		t.Fatalf("empty deck completion: got %+v, want all zeros", c)
	}
}

func TestDeckCompletionBounds(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Bounds", nil)
	for i := 0; i < 3; i++ {
		card, _ := s.CreateCard(deck.ID, "q", "a")
		for j := 0; j < 3; j++ {
			s.RecordResponse(card.ID, ResponseKnew)
		}
	}

	c, err := s.DeckCompletion(deck.ID)
	if err != nil {
		t.Fatalf("DeckCompletion: %v", err)
	}
	if c.Completion < 0 || c.Completion > 100 {
		t.Fatalf("completion out of bounds: %d", c.Completion)
	}
	if c.Completion != 100 {
		t.Fatalf("fully mastered deck: got %d, want 100", c.Completion)
	}
}

func TestDeckAnalytics(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Analytics", nil)

	mastered, _ := s.CreateCard(deck.ID, "m?", "a")
	for i := 0; i < 4; i++ {
		s.RecordResponse(mastered.ID, ResponseKnew)
	}
	half, _ := s.CreateCard(deck.ID, "h?", "a")
	s.RecordResponse(half.ID, ResponseKnew)
	s.RecordResponse(half.ID, ResponseDidnt)
	s.CreateCard(deck.ID, "n?", "a") // never reviewed

	a, err := s.DeckAnalytics(deck.ID)
	if err != nil {
		t.Fatalf("DeckAnalytics: %v", err)
	}

	if a.StatusDistribution[StatusMastered] != 1 ||
		a.StatusDistribution[StatusLearning] != 1 ||
		a.StatusDistribution[StatusNew] != 1 {
		t.Fatalf("distribution: %+v", a.StatusDistribution)
	}
	if a.TotalReviews != 6 {
		t.Errorf("TotalReviews: got %d, want 6", a.TotalReviews)
	}
	// Accuracy: mean of 4/4 and 1/2, the never-seen card excluded = 75.
	if a.AverageAccuracy != 75 {
		t.Errorf("AverageAccuracy: got %d, want 75", a.AverageAccuracy)
	}

	// Both reviewed cards were last reviewed just now, so today shows up.
	if len(a.RecentActivity) != 1 {
		t.Fatalf("RecentActivity: got %d entries, want 1", len(a.RecentActivity))
	}
	today := time.Now().Format("2006-01-02")
	if a.RecentActivity[0].Date != today {
		t.Errorf("activity date: got %s, want %s", a.RecentActivity[0].Date, today)
	}
	if a.RecentActivity[0].Reviews != 2 {
		t.Errorf("activity reviews: got %d, want 2", a.RecentActivity[0].Reviews)
	}
}

func TestDeckAnalyticsIgnoresOldActivity(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Stale", nil)
	card, _ := s.CreateCard(deck.ID, "q", "a")
	s.RecordResponse(card.ID, ResponseKnew)

	// Push the review out of the 7-day window.
	old := time.Now().AddDate(0, 0, -30).UnixMilli()
	if _, err := s.db.Exec(`UPDATE progress SET last_reviewed_at = ? WHERE card_id = ?`, old, card.ID); err != nil {
		t.Fatalf("backdate review: %v", err)
	}

	a, err := s.DeckAnalytics(deck.ID)
	if err != nil {
		t.Fatalf("DeckAnalytics: %v", err)
	}
	if len(a.RecentActivity) != 0 {
		t.Fatalf("stale reviews should fall out of the window: %+v", a.RecentActivity)
	}
	// The counters themselves still count.
	if a.TotalReviews != 1 {
		t.Errorf("TotalReviews: got %d, want 1", a.TotalReviews)
	}
}

func TestDeckProgressInitializesMissingRows(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Join", nil)
	s.CreateCard(deck.ID, "q1", "a1")
	s.CreateCard(deck.ID, "q2", "a2")

	entries, err := s.DeckProgress(deck.ID)
	if err != nil {
		t.Fatalf("DeckProgress: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Progress == nil {
			t.Fatal("every card should come back with a progress row")
		}
		if e.Progress.CardID != e.Card.ID {
			t.Fatalf("join mismatch: %s vs %s", e.Progress.CardID, e.Card.ID)
		}
	}
}
