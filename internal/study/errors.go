// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import "fmt"

// ValidationError reports a rejected input, such as a deck name or card
// question that trims to empty. The caller should re-prompt; retrying the
// same call will fail again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation that referenced a deck or card id
// that does not exist.
type NotFoundError struct {
	Kind string // "deck" or "card"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// StoreError wraps a failure in the underlying storage engine. A StoreError
// raised while opening or migrating the database is fatal: the store must
// not be used half-upgraded.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ImportFormatError reports malformed import input. It is always raised
// before any database write, so a bad import never partially mutates state.
type ImportFormatError struct {
	Reason string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("import format: %s", e.Reason)
}
