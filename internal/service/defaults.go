package service

import "math/big"

const (
	// defaultScanWorkers bounds hydration fan-out against the ledger endpoint.
	defaultScanWorkers = 4

	// defaultLedgerRPS caps narrow reads issued per second during scans.
	defaultLedgerRPS = 50

	defaultRecentLimit      = 10
	defaultLeaderboardLimit = 10
)

// minBidIncrement is the fixed minimum step over the current highest bid,
// 0.01 token in 18-decimal base units.
var minBidIncrement = new(big.Int).SetUint64(10_000_000_000_000_000)
