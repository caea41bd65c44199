// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"errors"
	"testing"
)

func TestCreateCard(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Spanish", nil)

	card, err := s.CreateCard(deck.ID, "  hola?  ", " hello ")
	if err != nil {
		t.Fatalf("CreateCard: %v", err)
	}
	if card.ID == "" {
		t.Error("card ID should be generated")
	}
	if card.Question != "hola?" || card.Answer != "hello" {
		t.Errorf("fields not trimmed: %q / %q", card.Question, card.Answer)
	}

	// Parent deck's updated_at must move forward.
	parent, _ := s.Deck(deck.ID)
	if parent.UpdatedAt < card.CreatedAt {
		t.Error("deck UpdatedAt not bumped by card creation")
	}

	var verr *ValidationError
	if _, err := s.CreateCard(deck.ID, "  ", "a"); !errors.As(err, &verr) {
		t.Fatalf("blank question: got %v, want ValidationError", err)
	}
	if _, err := s.CreateCard(deck.ID, "q", " "); !errors.As(err, &verr) {
		t.Fatalf("blank answer: got %v, want ValidationError", err)
	}
	if _, err := s.CreateCard("missing-deck", "q", "a"); !errors.As(err, &verr) {
		t.Fatalf("orphan card: got %v, want ValidationError", err)
	}
}

func TestCardsByDeckDeterministicOrder(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Order", nil)
	s.CreateCard(deck.ID, "q1", "a1")
	s.CreateCard(deck.ID, "q2", "a2")
	s.CreateCard(deck.ID, "q3", "a3")

	first, err := s.CardsByDeck(deck.ID)
	if err != nil {
		t.Fatalf("CardsByDeck: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("got %d cards, want 3", len(first))
	}

	second, _ := s.CardsByDeck(deck.ID)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order not deterministic at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestUpdateCard(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Spanish", nil)
	card, _ := s.CreateCard(deck.ID, "hola?", "hello")

	answer := "hello!"
	updated, err := s.UpdateCard(card.ID, CardUpdate{Answer: &answer})
	if err != nil {
		t.Fatalf("UpdateCard: %v", err)
	}
	if updated.Question != "hola?" {
		t.Errorf("question should be untouched, got %q", updated.Question)
	}
	if updated.Answer != "hello!" {
		t.Errorf("answer: got %q", updated.Answer)
	}

	parent, _ := s.Deck(deck.ID)
	if parent.UpdatedAt < updated.UpdatedAt {
		t.Error("deck UpdatedAt not bumped by card update")
	}

	var nferr *NotFoundError
	if _, err := s.UpdateCard("missing", CardUpdate{Answer: &answer}); !errors.As(err, &nferr) {
		t.Fatalf("missing card: got %v, want NotFoundError", err)
	}
}

func TestDeleteCardRemovesProgress(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Spanish", nil)
	card, _ := s.CreateCard(deck.ID, "q", "a")
	if _, err := s.ProgressFor(card.ID); err != nil {
		t.Fatalf("ProgressFor: %v", err)
	}

	if err := s.DeleteCard(card.ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}

	gone, _ := s.Card(card.ID)
	if gone != nil {
		t.Fatal("card still exists after delete")
	}
	p, err := s.progressByCard(card.ID)
	if err != nil {
		t.Fatalf("progressByCard: %v", err)
	}
	if p != nil {
		t.Fatal("progress row survived card delete")
	}

	// Deleting again is a silent no-op.
	if err := s.DeleteCard(card.ID); err != nil {
		t.Fatalf("second DeleteCard: %v", err)
	}
}
