// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GastonAllende/flashylearny/internal/config"
	"github.com/GastonAllende/flashylearny/internal/study"
)

func newCardCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards within a deck",
		Long:  "Add, list, edit and delete question/answer cards.",
	}

	cmd.AddCommand(newCardAddCmd(cfg, store))
	cmd.AddCommand(newCardListCmd(store))
	cmd.AddCommand(newCardEditCmd(store))
	cmd.AddCommand(newCardDeleteCmd(store))

	return cmd
}

func newCardAddCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	var (
		question string
		answer   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "add <deck-id>",
		Short: "Add a card to a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID := args[0]

			cards, err := store.CardsByDeck(deckID)
			if err != nil {
				return fmt.Errorf("list cards: %w", err)
			}
			if !study.CanCreateCard(study.Tier(cfg.Tier), len(cards)) {
				return fmt.Errorf("card limit reached on the %s tier (%d cards in deck); upgrade to pro for unlimited cards", cfg.Tier, len(cards))
			}

			card, err := store.CreateCard(deckID, question, answer)
			if err != nil {
				return fmt.Errorf("add card: %w", err)
			}

			if asJSON {
				return printJSON(card)
			}

			fmt.Printf("Card created: %s\n", card.ID)
			fmt.Printf("Question: %s\n", truncate(card.Question, 60))
			fmt.Printf("Answer: %s\n", truncate(card.Answer, 60))
			return nil
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "Question text (required)")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "Answer text (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newCardListCmd(store study.StudyStore) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <deck-id>",
		Short: "List cards in a deck",
		Long:  "List every card in the deck together with its study status.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := store.DeckProgress(args[0])
			if err != nil {
				return fmt.Errorf("list cards: %w", err)
			}

			if asJSON {
				return printJSON(rows)
			}

			if len(rows) == 0 {
				fmt.Println("No cards found.")
				return nil
			}

			table := newTable("ID", "Question", "Status", "Seen", "Known")
			for _, r := range rows {
				table.AddRow(
					truncate(r.Card.ID, 8),
					truncate(r.Card.Question, 40),
					string(r.Progress.Status),
					fmt.Sprintf("%d", r.Progress.TimesSeen),
					fmt.Sprintf("%d", r.Progress.TimesKnown),
				)
			}
			table.Render()

			fmt.Printf("\nTotal: %d card(s)\n", len(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newCardEditCmd(store study.StudyStore) *cobra.Command {
	var (
		question string
		answer   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "edit <card-id>",
		Short: "Edit a card's question or answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := study.CardUpdate{}
			if cmd.Flags().Changed("question") {
				update.Question = &question
			}
			if cmd.Flags().Changed("answer") {
				update.Answer = &answer
			}
			if update.Question == nil && update.Answer == nil {
				return fmt.Errorf("nothing to update: pass --question and/or --answer")
			}

			card, err := store.UpdateCard(args[0], update)
			if err != nil {
				return fmt.Errorf("edit card: %w", err)
			}

			if asJSON {
				return printJSON(card)
			}

			fmt.Printf("Card updated: %s\n", card.ID)
			fmt.Printf("Question: %s\n", truncate(card.Question, 60))
			fmt.Printf("Answer: %s\n", truncate(card.Answer, 60))
			return nil
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "New question text")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "New answer text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newCardDeleteCmd(store study.StudyStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := store.DeleteCard(id); err != nil {
				return fmt.Errorf("delete card: %w", err)
			}

			fmt.Printf("Card deleted: %s\n", id)
			return nil
		},
	}

	return cmd
}
