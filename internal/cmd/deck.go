// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/GastonAllende/flashylearny/internal/config"
	"github.com/GastonAllende/flashylearny/internal/study"
)

func newDeckCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage flashcard decks",
		Long:  "Create, list, rename, categorize and delete decks.",
	}

	cmd.AddCommand(newDeckCreateCmd(cfg, store))
	cmd.AddCommand(newDeckListCmd(store))
	cmd.AddCommand(newDeckRenameCmd(store))
	cmd.AddCommand(newDeckCategoryCmd(store))
	cmd.AddCommand(newDeckDeleteCmd(store))
	cmd.AddCommand(newDeckResetCmd(store))

	return cmd
}

func newDeckCreateCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decks, err := store.Decks()
			if err != nil {
				return fmt.Errorf("list decks: %w", err)
			}
			if !study.CanCreateDeck(study.Tier(cfg.Tier), len(decks)) {
				return fmt.Errorf("deck limit reached on the %s tier (%d decks); upgrade to pro for unlimited decks", cfg.Tier, len(decks))
			}

			var cat *string
			if category != "" {
				cat = &category
			}
			deck, err := store.CreateDeck(args[0], cat)
			if err != nil {
				return fmt.Errorf("create deck: %w", err)
			}

			if asJSON {
				return printJSON(deck)
			}

			fmt.Printf("Deck created: %s\n", deck.ID)
			fmt.Printf("Name: %s\n", deck.Name)
			if deck.Category != nil {
				fmt.Printf("Category: %s\n", *deck.Category)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category for the deck")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newDeckListCmd(store study.StudyStore) *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List decks",
		Long:  "List all decks, optionally filtered by category.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *string
			if cmd.Flags().Changed("category") {
				filter = &category
			}

			decks, err := store.DecksByCategory(filter)
			if err != nil {
				return fmt.Errorf("list decks: %w", err)
			}

			if asJSON {
				return printJSON(decks)
			}

			if len(decks) == 0 {
				fmt.Println("No decks found.")
				return nil
			}

			table := newTable("ID", "Name", "Category", "Cards", "Updated")
			for _, d := range decks {
				cat := "-"
				if d.Category != nil {
					cat = *d.Category
				}
				cards, err := store.CardsByDeck(d.ID)
				if err != nil {
					return fmt.Errorf("count cards: %w", err)
				}
				updated := time.UnixMilli(d.UpdatedAt).Format("2006-01-02")
				table.AddRow(truncate(d.ID, 8), truncate(d.Name, 30), cat, fmt.Sprintf("%d", len(cards)), updated)
			}
			table.Render()

			fmt.Printf("\nTotal: %d deck(s)\n", len(decks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (empty matches uncategorized)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newDeckRenameCmd(store study.StudyStore) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rename <deck-id> <new-name>",
		Short: "Rename a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := store.RenameDeck(args[0], args[1])
			if err != nil {
				return fmt.Errorf("rename deck: %w", err)
			}

			if asJSON {
				return printJSON(deck)
			}

			fmt.Printf("Deck renamed: %s\n", deck.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newDeckCategoryCmd(store study.StudyStore) *cobra.Command {
	var (
		clear  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "category <deck-id> [category]",
		Short: "Set or clear a deck's category",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat *string
			switch {
			case clear:
				// leave nil
			case len(args) == 2:
				cat = &args[1]
			default:
				return fmt.Errorf("provide a category or --clear")
			}

			deck, err := store.UpdateDeckCategory(args[0], cat)
			if err != nil {
				return fmt.Errorf("update category: %w", err)
			}

			if asJSON {
				return printJSON(deck)
			}

			if deck.Category != nil {
				fmt.Printf("Deck %s moved to category: %s\n", deck.Name, *deck.Category)
			} else {
				fmt.Printf("Deck %s is now uncategorized\n", deck.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the deck's category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newDeckDeleteCmd(store study.StudyStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <deck-id>",
		Short: "Delete a deck and all of its cards",
		Long:  "Remove a deck together with every card and progress record in it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := store.DeleteDeck(id); err != nil {
				return fmt.Errorf("delete deck: %w", err)
			}

			fmt.Printf("Deck deleted: %s\n", id)
			return nil
		},
	}

	return cmd
}

func newDeckResetCmd(store study.StudyStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <deck-id>",
		Short: "Reset study progress for a deck",
		Long:  "Set every card in the deck back to NEW with zeroed counters. Cards themselves are untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := store.ResetDeckProgress(id); err != nil {
				return fmt.Errorf("reset progress: %w", err)
			}

			fmt.Printf("Progress reset for deck: %s\n", id)
			return nil
		},
	}

	return cmd
}
