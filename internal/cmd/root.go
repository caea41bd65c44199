// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GastonAllende/flashylearny/internal/config"
	"github.com/GastonAllende/flashylearny/internal/study"
)

// NewRootCmd creates the root command for flashylearny.
func NewRootCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {

	root := &cobra.Command{
		Use:   "flashylearny",
		Short: "Study flashcards and track your mastery",
		Long: `Create decks of question/answer cards, study them, and track
how close each deck is to mastered.

flashylearny provides tools to:
- Create and organize decks, optionally grouped by category
- Add, edit and remove cards
- Record study responses and watch cards move from NEW to MASTERED
- Inspect completion, accuracy and recent activity per deck
- Import and export decks as CSV, JSON or YAML`,
	}

	root.AddCommand(newDeckCmd(cfg, store))
	root.AddCommand(newCardCmd(cfg, store))
	root.AddCommand(newStudyCmd(cfg, store))
	root.AddCommand(newStatsCmd(cfg, store))
	root.AddCommand(newImportCmd(cfg, store))
	root.AddCommand(newExportCmd(cfg, store))

	return root
}
