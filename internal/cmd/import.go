// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GastonAllende/flashylearny/internal/config"
	"github.com/GastonAllende/flashylearny/internal/study"
)

func newImportCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import decks and cards from a CSV file",
		Long: `Import cards from a CSV file with deckName, question and answer columns.
Rows are grouped by deck name; decks that already exist are reused,
missing ones are created. The whole file is imported atomically: a bad
row aborts the import without writing anything.

Example CSV:
  deckName,question,answer
  Spanish,hola,hello
  Spanish,adios,goodbye
  Capitals,France,Paris`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importPath := args[0]

			// Expand ~ to home directory
			if strings.HasPrefix(importPath, "~") {
				home, _ := os.UserHomeDir()
				importPath = filepath.Join(home, importPath[1:])
			}

			f, err := os.Open(importPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", importPath, err)
			}
			defer f.Close()

			entries, err := study.ParseCSV(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", importPath, err)
			}

			result, err := store.Import(entries)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			if asJSON {
				return printJSON(result)
			}

			fmt.Printf("Import complete: %s\n", filepath.Base(importPath))
			fmt.Printf("Decks created: %d\n", result.DecksCreated)
			fmt.Printf("Cards created: %d\n", result.CardsCreated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
