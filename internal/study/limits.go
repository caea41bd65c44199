// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package study

// Tier is the subscription level supplied by the billing collaborator.
// The engine never persists it; callers pass it in from their profile
// source.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// Free-tier quota.
const (
	freeDeckLimit         = 5
	freeCardsPerDeckLimit = 50
)

// CanCreateDeck reports whether a user at the given tier may create another
// deck when they already have deckCount.
func CanCreateDeck(tier Tier, deckCount int) bool {
	if tier == TierPro {
		return true
	}
	return deckCount < freeDeckLimit
}

// CanCreateCard reports whether a user at the given tier may add another
// card to a deck that already holds cardCount.
func CanCreateCard(tier Tier, cardCount int) bool {
	if tier == TierPro {
		return true
	}
	return cardCount < freeCardsPerDeckLimit
}
