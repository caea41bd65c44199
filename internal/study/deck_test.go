// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"errors"
	"testing"
)

func TestCreateDeckValidation(t *testing.T) {
	s := newTestStore(t)

	deck, err := s.CreateDeck("  Spanish  ", nil)
	if err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	if deck.ID == "" {
		t.Error("deck ID should be generated")
	}
	if deck.Name != "Spanish" {
		t.Errorf("name not trimmed: %q", deck.Name)
	}
	if deck.Category != nil {
		t.Errorf("category should be nil, got %q", *deck.Category)
	}
	if deck.CreatedAt == 0 || deck.UpdatedAt != deck.CreatedAt {
		t.Errorf("timestamps wrong: created=%d updated=%d", deck.CreatedAt, deck.UpdatedAt)
	}

	var verr *ValidationError
	if _, err := s.CreateDeck("   ", nil); !errors.As(err, &verr) {
		t.Fatalf("blank name: got %v, want ValidationError", err)
	}

	// Blank category normalizes to nil.
	blank := "  "
	d2, err := s.CreateDeck("Math", &blank)
	if err != nil {
		t.Fatalf("CreateDeck with blank category: %v", err)
	}
	if d2.Category != nil {
		t.Errorf("blank category should store as nil, got %q", *d2.Category)
	}
}

func TestDecksByCategory(t *testing.T) {
	s := newTestStore(t)

	lang := "languages"
	sci := "science"
	s.CreateDeck("Spanish", &lang)
	s.CreateDeck("French", &lang)
	s.CreateDeck("Physics", &sci)
	s.CreateDeck("Misc", nil)

	all, err := s.DecksByCategory(nil)
	if err != nil {
		t.Fatalf("DecksByCategory(nil): %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("nil category should return all decks, got %d", len(all))
	}

	langs, err := s.DecksByCategory(&lang)
	if err != nil {
		t.Fatalf("DecksByCategory: %v", err)
	}
	if len(langs) != 2 {
		t.Fatalf("languages: got %d decks, want 2", len(langs))
	}

	categories, err := s.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("Categories: got %v, want [languages science]", categories)
	}
	if categories[0] != "languages" || categories[1] != "science" {
		t.Fatalf("Categories order: got %v", categories)
	}
}

func TestRenameDeck(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Old", nil)

	renamed, err := s.RenameDeck(deck.ID, "New Name")
	if err != nil {
		t.Fatalf("RenameDeck: %v", err)
	}
	if renamed.Name != "New Name" {
		t.Errorf("name: got %q", renamed.Name)
	}
	if renamed.UpdatedAt < deck.UpdatedAt {
		t.Error("UpdatedAt should not go backwards on rename")
	}

	var verr *ValidationError
	if _, err := s.RenameDeck(deck.ID, "  "); !errors.As(err, &verr) {
		t.Fatalf("blank rename: got %v, want ValidationError", err)
	}

	var nferr *NotFoundError
	if _, err := s.RenameDeck("missing", "X"); !errors.As(err, &nferr) {
		t.Fatalf("missing deck: got %v, want NotFoundError", err)
	}
}

func TestUpdateDeckCategory(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Spanish", nil)

	lang := "languages"
	updated, err := s.UpdateDeckCategory(deck.ID, &lang)
	if err != nil {
		t.Fatalf("UpdateDeckCategory: %v", err)
	}
	if updated.Category == nil || *updated.Category != "languages" {
		t.Fatalf("category not set: %+v", updated.Category)
	}
	if updated.Name != "Spanish" {
		t.Errorf("name should be untouched, got %q", updated.Name)
	}

	cleared, err := s.UpdateDeckCategory(deck.ID, nil)
	if err != nil {
		t.Fatalf("clear category: %v", err)
	}
	if cleared.Category != nil {
		t.Fatalf("category should clear to nil, got %q", *cleared.Category)
	}
}

func TestUpdateDeckPartial(t *testing.T) {
	s := newTestStore(t)

	lang := "languages"
	deck, _ := s.CreateDeck("Spanish", &lang)

	// Name-only update leaves the category alone.
	name := "Castilian"
	updated, err := s.UpdateDeck(deck.ID, DeckUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateDeck: %v", err)
	}
	if updated.Name != "Castilian" {
		t.Errorf("name: got %q", updated.Name)
	}
	if updated.Category == nil || *updated.Category != "languages" {
		t.Errorf("category should survive a name-only update: %+v", updated.Category)
	}
}
