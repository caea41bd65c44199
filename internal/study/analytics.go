// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

import (
	"math"
	"sort"
	"time"
)

// recentActivityDays bounds the recent-activity window.
const recentActivityDays = 7

// DeckProgress joins every card in a deck with its progress row,
// initializing missing rows so callers always see a complete set.
func (s *Store) DeckProgress(deckID string) ([]*CardProgress, error) {
	deck, err := s.Deck(deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, &NotFoundError{Kind: "deck", ID: deckID}
	}

	cards, err := s.CardsByDeck(deckID)
	if err != nil {
		return nil, err
	}

	joined := make([]*CardProgress, 0, len(cards))
	for _, c := range cards {
		p, err := s.ProgressFor(c.ID)
		if err != nil {
			return nil, err
		}
		joined = append(joined, &CardProgress{Card: c, Progress: p})
	}
	return joined, nil
}

// DeckCompletion reports the percentage of mastered cards, rounded to the
// nearest integer. An empty deck reports zero across the board.
func (s *Store) DeckCompletion(deckID string) (*Completion, error) {
	entries, err := s.DeckProgress(deckID)
	if err != nil {
		return nil, err
	}

	c := &Completion{Total: len(entries)}
	for _, e := range entries {
		if e.Progress.Status == StatusMastered {
			c.Mastered++
		}
	}
	if c.Total > 0 {
		c.Completion = int(math.Round(float64(c.Mastered) / float64(c.Total) * 100))
	}
	return c, nil
}

// DeckAnalytics computes the derived read-side view over a deck: status
// distribution, overall review count, average accuracy (cards never seen
// are excluded) and the last week's activity. Nothing here is persisted.
func (s *Store) DeckAnalytics(deckID string) (*Analytics, error) {
	entries, err := s.DeckProgress(deckID)
	if err != nil {
		return nil, err
	}

	a := &Analytics{
		StatusDistribution: map[Status]int{
			StatusNew:      0,
			StatusLearning: 0,
			StatusMastered: 0,
		},
	}

	var accuracySum float64
	var accuracyCount int
	activity := make(map[string]int)
	cutoff := time.Now().AddDate(0, 0, -(recentActivityDays - 1))
	windowStart := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, cutoff.Location())

	for _, e := range entries {
		p := e.Progress
		a.StatusDistribution[p.Status]++
		a.TotalReviews += p.TimesSeen

		if p.TimesSeen > 0 {
			accuracySum += float64(p.TimesKnown) / float64(p.TimesSeen)
			accuracyCount++
		}

		if p.LastReviewedAt != nil {
			reviewed := time.UnixMilli(*p.LastReviewedAt)
			if !reviewed.Before(windowStart) {
				activity[reviewed.Format("2006-01-02")]++
			}
		}
	}

	if accuracyCount > 0 {
		a.AverageAccuracy = int(math.Round(accuracySum / float64(accuracyCount) * 100))
	}

	for date, reviews := range activity {
		a.RecentActivity = append(a.RecentActivity, ActivityDay{Date: date, Reviews: reviews})
	}
	sort.Slice(a.RecentActivity, func(i, j int) bool {
		return a.RecentActivity[i].Date < a.RecentActivity[j].Date
	})

	return a, nil
}
