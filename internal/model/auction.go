package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Auction is an auction record with client-derived view state. Ended,
// TimeRemaining and MinimumBid are recomputed from wall-clock time on every
// read and are advisory; only Finalized, read from the ledger, is
// authoritative for settlement.
type Auction struct {
	ID            uint64
	MarkID        uint64
	Seller        common.Address
	StartingPrice *big.Int
	ReservePrice  *big.Int
	CurrentBid    *big.Int
	HighestBidder common.Address
	StartTime     time.Time
	EndTime       time.Time
	Finalized     bool

	Ended         bool
	TimeRemaining time.Duration
	MinimumBid    *big.Int
}
