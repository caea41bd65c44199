// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GastonAllende/flashylearny/internal/config"
	"github.com/GastonAllende/flashylearny/internal/study"
)

func newStatsCmd(cfg *config.Config, store study.StudyStore) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats <deck-id>",
		Short: "Show study statistics for a deck",
		Long:  `Display completion, status distribution, accuracy and recent activity for a deck.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID := args[0]

			deck, err := store.Deck(deckID)
			if err != nil {
				return fmt.Errorf("get deck: %w", err)
			}
			completion, err := store.DeckCompletion(deckID)
			if err != nil {
				return fmt.Errorf("get completion: %w", err)
			}
			analytics, err := store.DeckAnalytics(deckID)
			if err != nil {
				return fmt.Errorf("get analytics: %w", err)
			}

			if asJSON {
				stats := map[string]any{
					"deck":       deck,
					"completion": completion,
					"analytics":  analytics,
				}
				return printJSON(stats)
			}

			fmt.Printf("Deck: %s\n", deck.Name)
			fmt.Printf("==================\n\n")
			fmt.Printf("Completion:    %d%% (%d of %d mastered)\n", completion.Completion, completion.Mastered, completion.Total)
			fmt.Println("By status:")
			for _, s := range []study.Status{study.StatusNew, study.StatusLearning, study.StatusMastered} {
				fmt.Printf("  %s: %d\n", s, analytics.StatusDistribution[s])
			}
			fmt.Printf("Total reviews: %d\n", analytics.TotalReviews)
			fmt.Printf("Avg accuracy:  %d%%\n", analytics.AverageAccuracy)

			if len(analytics.RecentActivity) > 0 {
				fmt.Println("\nRecent activity:")
				for _, day := range analytics.RecentActivity {
					fmt.Printf("  %s: %d review(s)\n", day.Date, day.Reviews)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
