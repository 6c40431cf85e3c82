package model

import "math/big"

// LeaderboardStatus distinguishes an elapsed cycle with no recorded votes
// from one with a finalized ranking.
type LeaderboardStatus string

const (
	// LeaderboardFinalized marks a closed cycle with ranked entries.
	LeaderboardFinalized LeaderboardStatus = "finalized"
	// LeaderboardNoData marks a closed cycle for which the ranking read
	// returned nothing.
	LeaderboardNoData LeaderboardStatus = "no_data"
)

// LeaderboardEntry pairs a hydrated mark with its externally reported vote
// total and rank for a closed cycle.
type LeaderboardEntry struct {
	Mark  Mark
	Votes *big.Int
	Rank  uint64
}

// Leaderboard is the ranking projection for one fully elapsed cycle.
type Leaderboard struct {
	Cycle   uint64
	Status  LeaderboardStatus
	Entries []LeaderboardEntry
}
