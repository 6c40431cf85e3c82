package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// VotingSummary is the point-in-time voting view for one (voter, mark) pair.
// The figures come from independent reads and are not atomic with respect to
// each other.
type VotingSummary struct {
	MarkID          uint64
	Voter           common.Address
	TotalVotes      *big.Int
	VoterDelegation *big.Int
	AvailablePower  *big.Int
	TotalCapacity   *big.Int
}
