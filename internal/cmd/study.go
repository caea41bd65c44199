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

func newStudyCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	var (
		response string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "study <card-id>",
		Short: "Study a card and record your response",
		Long: `Show a card and record how well you knew it. Without --response the
card is only shown; with --response the result is recorded and the
card's status updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID := args[0]

			card, err := store.Card(cardID)
			if err != nil {
				return fmt.Errorf("get card: %w", err)
			}

			if response == "" {
				prog, err := store.ProgressFor(cardID)
				if err != nil {
					return fmt.Errorf("get progress: %w", err)
				}
				if asJSON {
					return printJSON(&study.CardProgress{Card: card, Progress: prog})
				}
				fmt.Printf("Question: %s\n", card.Question)
				fmt.Printf("Answer: %s\n", card.Answer)
				fmt.Printf("Status: %s (seen %d, known %d)\n", prog.Status, prog.TimesSeen, prog.TimesKnown)
				fmt.Printf("\nRecord with: flashylearny study %s --response knew|almost|didnt\n", cardID)
				return nil
			}

			prog, err := store.RecordResponse(cardID, study.Response(response))
			if err != nil {
				return fmt.Errorf("record response: %w", err)
			}

			if asJSON {
				return printJSON(prog)
			}

			fmt.Printf("Response recorded: %s\n", response)
			fmt.Printf("Status: %s\n", prog.Status)
			fmt.Printf("Seen: %d, known: %d, almost: %d\n", prog.TimesSeen, prog.TimesKnown, prog.TimesAlmost)
			if prog.LastReviewedAt != nil {
				fmt.Printf("Reviewed: %s\n", time.UnixMilli(*prog.LastReviewedAt).Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&response, "response", "r", "", "Your recall: knew, almost or didnt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
