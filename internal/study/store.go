// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// schemaVersion is the schema version this build targets. Opening a store
// recorded at an older version replays the missing migrations; each step is
// idempotent and only adds, never deletes or reorders existing data.
const schemaVersion = 3

// Store persists decks, cards and progress in a single SQLite database.
// All multi-table operations run inside one transaction so a failure
// partway through leaves the previous state untouched.
type Store struct {
	db *sql.DB

	mu         sync.Mutex
	backfilled bool
}

// Open opens (or creates) the database at path and brings its schema up to
// the current version. Use ":memory:" for an in-memory store. A migration
// failure fails the open outright.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, &StoreError{Op: "open database", Err: err}
	}
	// A single connection keeps ":memory:" stores coherent and sidesteps
	// writer contention on file stores.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "ping database", Err: err}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	const versionTable = `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(versionTable); err != nil {
		return &StoreError{Op: "create schema_version table", Err: err}
	}

	var version int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return &StoreError{Op: "check schema version", Err: err}
	}

	if version < 1 {
		if err := s.migrateToV1(); err != nil {
			return &StoreError{Op: "migrate to v1", Err: err}
		}
	}
	if version < 2 {
		if err := s.migrateToV2(); err != nil {
			return &StoreError{Op: "migrate to v2", Err: err}
		}
	}
	if version < 3 {
		if err := s.migrateToV3(); err != nil {
			return &StoreError{Op: "migrate to v3", Err: err}
		}
	}

	return nil
}

// migrateToV1 creates the three base tables and their indexes.
func (s *Store) migrateToV1() error {
	const tables = `
	CREATE TABLE IF NOT EXISTS decks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_decks_name ON decks(name);
	CREATE INDEX IF NOT EXISTS idx_decks_updated_at ON decks(updated_at);

	CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		deck_id TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		FOREIGN KEY (deck_id) REFERENCES decks(id)
	);

	CREATE INDEX IF NOT EXISTS idx_cards_deck ON cards(deck_id);
	CREATE INDEX IF NOT EXISTS idx_cards_updated_at ON cards(updated_at);

	CREATE TABLE IF NOT EXISTS progress (
		id TEXT PRIMARY KEY,
		card_id TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'NEW',
		last_reviewed_at INTEGER,
		times_seen INTEGER NOT NULL DEFAULT 0,
		times_known INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (card_id) REFERENCES cards(id)
	);

	CREATE INDEX IF NOT EXISTS idx_progress_card ON progress(card_id);
	CREATE INDEX IF NOT EXISTS idx_progress_status ON progress(status);
	`

	if _, err := s.db.Exec(tables); err != nil {
		return fmt.Errorf("create base tables: %w", err)
	}
	return s.recordMigration(1)
}

// migrateToV2 adds the times_almost counter to progress. The column default
// backfills existing rows with 0.
func (s *Store) migrateToV2() error {
	if err := s.addColumnIfMissing("progress", "times_almost", "INTEGER NOT NULL DEFAULT 0"); err != nil {
		return err
	}
	return s.recordMigration(2)
}

// migrateToV3 adds the optional deck category, NULL for existing rows, and
// its index.
func (s *Store) migrateToV3() error {
	if err := s.addColumnIfMissing("decks", "category", "TEXT"); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_decks_category ON decks(category)`); err != nil {
		return fmt.Errorf("create category index: %w", err)
	}
	return s.recordMigration(3)
}

// addColumnIfMissing keeps a migration replayable against a database that
// already carries the column (e.g. a v1 file created by a newer build).
func (s *Store) addColumnIfMissing(table, column, definition string) error {
	rows, err := s.db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("scan %s column: %w", table, err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, definition))
	if err != nil {
		return fmt.Errorf("add %s.%s: %w", table, column, err)
	}
	return nil
}

func (s *Store) recordMigration(version int) error {
	_, err := s.db.Exec(
		"INSERT INTO schema_version (version, applied_at) VALUES (?, ?)",
		version,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record migration %d: %w", version, err)
	}
	return nil
}

// nowMillis is the single clock for persisted timestamps.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
