// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a deckName,question,answer CSV batch into import entries.
// A header row is required; columns are matched by case-insensitive
// substrings "deck", "question" and "answer" and may appear in any order.
// Rows with a blank deck, question or answer are skipped. Empty input,
// missing columns or zero usable rows fail with ImportFormatError before
// anything is written.
func ParseCSV(r io.Reader) ([]ImportEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are skipped below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ImportFormatError{Reason: fmt.Sprintf("parse csv: %v", err)}
	}
	if len(records) == 0 {
		return nil, &ImportFormatError{Reason: "empty file"}
	}

	deckCol, questionCol, answerCol := -1, -1, -1
	for i, h := range records[0] {
		switch {
		case strings.Contains(strings.ToLower(h), "deck"):
			deckCol = i
		case strings.Contains(strings.ToLower(h), "question"):
			questionCol = i
		case strings.Contains(strings.ToLower(h), "answer"):
			answerCol = i
		}
	}
	if deckCol < 0 || questionCol < 0 || answerCol < 0 {
		return nil, &ImportFormatError{Reason: "header must contain deck, question and answer columns"}
	}

	maxCol := deckCol
	if questionCol > maxCol {
		maxCol = questionCol
	}
	if answerCol > maxCol {
		maxCol = answerCol
	}

	// Group rows by deck name, preserving first-seen order.
	byDeck := make(map[string]*ImportEntry)
	var order []string

	for _, row := range records[1:] {
		if len(row) <= maxCol {
			continue
		}
		deck := strings.TrimSpace(row[deckCol])
		question := strings.TrimSpace(row[questionCol])
		answer := strings.TrimSpace(row[answerCol])
		if deck == "" || question == "" || answer == "" {
			continue
		}

		entry, ok := byDeck[deck]
		if !ok {
			entry = &ImportEntry{DeckName: deck}
			byDeck[deck] = entry
			order = append(order, deck)
		}
		entry.Cards = append(entry.Cards, ImportCard{Question: question, Answer: answer})
	}

	if len(order) == 0 {
		return nil, &ImportFormatError{Reason: "no valid rows"}
	}

	entries := make([]ImportEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, *byDeck[name])
	}
	return entries, nil
}

// WriteCSV renders deck snapshots as deckName,question,answer CSV with a
// header row. encoding/csv handles the quoting of commas, quotes and
// newlines.
func WriteCSV(w io.Writer, exports []*DeckExport) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"deckName", "question", "answer"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range exports {
		for _, c := range e.Cards {
			if err := writer.Write([]string{e.Deck.Name, c.Question, c.Answer}); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
