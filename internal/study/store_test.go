// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenMigratesToCurrentVersion(t *testing.T) {
	s := newTestStore(t)

	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if version != schemaVersion {
		t.Fatalf("schema version: got %d, want %d", version, schemaVersion)
	}
}

func TestReopenIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	deck, err := s1.CreateDeck("Spanish", nil)
	if err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening an already-current store must not touch the data.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	got, err := s2.Deck(deck.ID)
	if err != nil {
		t.Fatalf("Deck after reopen: %v", err)
	}
	if got == nil || got.Name != "Spanish" {
		t.Fatalf("deck not intact after reopen: %+v", got)
	}

	var count int
	if err := s2.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != schemaVersion {
		t.Fatalf("migration rows after reopen: got %d, want %d", count, schemaVersion)
	}
}

func TestEnsureProgressBackfills(t *testing.T) {
	s := newTestStore(t)

	deck, err := s.CreateDeck("Backfill", nil)
	if err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	c1, err := s.CreateCard(deck.ID, "q1", "a1")
	if err != nil {
		t.Fatalf("CreateCard: %v", err)
	}
	c2, err := s.CreateCard(deck.ID, "q2", "a2")
	if err != nil {
		t.Fatalf("CreateCard: %v", err)
	}

	// One card already has progress, one does not.
	if _, err := s.ProgressFor(c1.ID); err != nil {
		t.Fatalf("ProgressFor: %v", err)
	}

	result, err := s.EnsureProgress()
	if err != nil {
		t.Fatalf("EnsureProgress: %v", err)
	}
	if result.CardsProcessed != 2 {
		t.Errorf("CardsProcessed: got %d, want 2", result.CardsProcessed)
	}
	if result.ProgressCreated != 1 {
		t.Errorf("ProgressCreated: got %d, want 1", result.ProgressCreated)
	}

	p2, err := s.progressByCard(c2.ID)
	if err != nil {
		t.Fatalf("progressByCard: %v", err)
	}
	if p2 == nil || p2.Status != StatusNew || p2.TimesSeen != 0 {
		t.Fatalf("backfilled progress wrong: %+v", p2)
	}
}

func TestEnsureProgressRunsOncePerSession(t *testing.T) {
	s := newTestStore(t)

	deck, _ := s.CreateDeck("Guard", nil)
	if _, err := s.CreateCard(deck.ID, "q", "a"); err != nil {
		t.Fatalf("CreateCard: %v", err)
	}

	first, err := s.EnsureProgress()
	if err != nil {
		t.Fatalf("first EnsureProgress: %v", err)
	}
	if first.ProgressCreated != 1 {
		t.Fatalf("first run created %d rows, want 1", first.ProgressCreated)
	}

	// Same session: guarded, reports nothing done.
	second, err := s.EnsureProgress()
	if err != nil {
		t.Fatalf("second EnsureProgress: %v", err)
	}
	if second.CardsProcessed != 0 || second.ProgressCreated != 0 {
		t.Fatalf("second run should be skipped, got %+v", second)
	}
}

func TestEnsureProgressNoOpWhenComplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	deck, _ := s1.CreateDeck("Done", nil)
	s1.CreateCard(deck.ID, "q", "a")
	if _, err := s1.EnsureProgress(); err != nil {
		t.Fatalf("EnsureProgress: %v", err)
	}
	s1.Close()

	// A fresh session re-runs the pass but has nothing to create.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	result, err := s2.EnsureProgress()
	if err != nil {
		t.Fatalf("EnsureProgress after reopen: %v", err)
	}
	if result.ProgressCreated != 0 {
		t.Fatalf("expected no-op backfill, created %d", result.ProgressCreated)
	}
	if result.CardsProcessed != 1 {
		t.Fatalf("CardsProcessed: got %d, want 1", result.CardsProcessed)
	}
}
