// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GastonAllende/flashylearny/internal/config"
	"github.com/GastonAllende/flashylearny/internal/study"
)

func newExportCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	var (
		format string // "csv", "json", "yaml"
		output string // file path or "-" for stdout
	)

	cmd := &cobra.Command{
		Use:   "export [deck-id]",
		Short: "Export decks with their cards",
		Long: `Export one deck, or every deck, to CSV, JSON or YAML for use in other
tools. The anki format produces an .apkg package for a single deck and
requires --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "anki" {
				if len(args) != 1 {
					return fmt.Errorf("anki export needs a deck id")
				}
				if output == "" || output == "-" {
					return fmt.Errorf("anki export writes a binary package: pass --output <file.apkg>")
				}
				return exportAnki(store, args[0], output)
			}

			var (
				exports []*study.DeckExport
				err     error
			)
			if len(args) == 1 {
				var exp *study.DeckExport
				exp, err = store.ExportDeck(args[0])
				if exp != nil {
					exports = []*study.DeckExport{exp}
				}
			} else {
				exports, err = store.ExportAllDecks()
			}
			if err != nil {
				return fmt.Errorf("export decks: %w", err)
			}

			var outBytes []byte

			switch format {
			case "csv":
				var buf bytes.Buffer
				if err := study.WriteCSV(&buf, exports); err != nil {
					return fmt.Errorf("export csv: %w", err)
				}
				outBytes = buf.Bytes()
			case "json":
				outBytes, err = json.MarshalIndent(exports, "", "  ")
			case "yaml":
				outBytes, err = yaml.Marshal(exports)
			default:
				return fmt.Errorf("unsupported format: %s (choose csv, json, yaml, anki)", format)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}

			if output == "-" || output == "" {
				fmt.Print(string(outBytes))
				return nil
			}
			if err := os.WriteFile(output, outBytes, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Printf("Exported %d deck(s) to %s\n", len(exports), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format: csv, json, yaml, anki")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file (default: stdout)")

	return cmd
}

// exportAnki writes a single deck as an Anki .apkg package.
func exportAnki(store study.StudyStore, deckID, path string) error {
	deck, err := store.Deck(deckID)
	if err != nil {
		return fmt.Errorf("get deck: %w", err)
	}
	rows, err := store.DeckProgress(deckID)
	if err != nil {
		return fmt.Errorf("get cards: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	exporter := study.NewAnkiExporter(deck.Name)
	if err := exporter.ExportCards(rows, f); err != nil {
		return fmt.Errorf("export anki: %w", err)
	}

	fmt.Printf("Exported %d card(s) to %s\n", len(rows), path)
	return nil
}
