// Package chain defines the records and call descriptions that cross the
// ledger boundary, shared between the concrete clients and the projection
// services.
package chain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Contract names a deployed contract a call is addressed to.
type Contract string

const (
	ContractMark        Contract = "mark"
	ContractAuction     Contract = "auction"
	ContractVoting      Contract = "voting"
	ContractRewards     Contract = "rewards"
	ContractLeaderboard Contract = "leaderboard"
)

// MarkMetadata is the on-chain metadata tuple for a mark. Title and author
// are authoritative; ContentURI points at the externally hosted document.
type MarkMetadata struct {
	Title      string
	Author     string
	ContentURI string
}

// AuctionRecord mirrors the ledger's auction tuple with no derived state.
type AuctionRecord struct {
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
}

// RankedMark is one row of an externally computed cycle ranking. Rank numbers
// are reported verbatim and never recomputed client-side.
type RankedMark struct {
	MarkID uint64
	Votes  *big.Int
	Rank   uint64
}

// ContentPayload is the advisory part of a mark resolved from the content
// store. The zero value means "no payload".
type ContentPayload struct {
	Description string
	SourceURL   string
}

// Call describes a fully validated state-changing contract call. Args are
// ABI-packable values; Value is the native amount attached to the
// transaction, nil for non-payable methods.
type Call struct {
	Contract Contract
	Method   string
	Args     []interface{}
	Value    *big.Int
}

// TxStatus is the observable lifecycle of a submitted transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// TxHandle identifies a broadcast transaction whose confirmation is observed
// out of band from the call that submitted it.
type TxHandle struct {
	Hash common.Hash
}

// TxOutcome pairs a handle with its last observed status.
type TxOutcome struct {
	Handle TxHandle
	Status TxStatus
}
