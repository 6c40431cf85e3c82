package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/model"
)

// VotingCoordinator projects vote state and validates delegation intents.
// Validation runs against reads taken at validation time; a race with a
// concurrent delegation elsewhere can still slip through, and the ledger is
// the final arbiter for those.
type VotingCoordinator struct {
	voting    VotingReader
	power     PowerReader
	submitter Submitter
	logger    *zap.Logger
}

// NewVotingCoordinator builds a VotingCoordinator.
func NewVotingCoordinator(voting VotingReader, power PowerReader, submitter Submitter, logger *zap.Logger) *VotingCoordinator {
	return &VotingCoordinator{
		voting:    voting,
		power:     power,
		submitter: submitter,
		logger:    logger,
	}
}

// Summary resolves the point-in-time voting view for one (voter, mark) pair
// via independent reads.
func (c *VotingCoordinator) Summary(ctx context.Context, voter common.Address, markID uint64) (*model.VotingSummary, error) {
	total, err := c.voting.VoteTotal(ctx, markID)
	if err != nil {
		return nil, fmt.Errorf("vote total for mark %d: %w", markID, err)
	}
	delegated, err := c.voting.Delegation(ctx, voter, markID)
	if err != nil {
		return nil, fmt.Errorf("delegation for mark %d: %w", markID, err)
	}
	available, err := c.power.AvailablePower(ctx, voter)
	if err != nil {
		return nil, fmt.Errorf("available power: %w", err)
	}
	capacity, err := c.power.TotalCapacity(ctx, voter)
	if err != nil {
		return nil, fmt.Errorf("total capacity: %w", err)
	}
	return &model.VotingSummary{
		MarkID:          markID,
		Voter:           voter,
		TotalVotes:      total,
		VoterDelegation: delegated,
		AvailablePower:  available,
		TotalCapacity:   capacity,
	}, nil
}

// ActiveVoters returns the number of principals currently staked into the
// catalog, the headline participation figure.
func (c *VotingCoordinator) ActiveVoters(ctx context.Context) (uint64, error) {
	count, err := c.power.ActiveVoters(ctx)
	if err != nil {
		return 0, fmt.Errorf("active voters: %w", err)
	}
	return count, nil
}

// Delegate validates and submits a vote delegation to a mark.
func (c *VotingCoordinator) Delegate(ctx context.Context, voter common.Address, markID uint64, amount *big.Int) (chain.TxOutcome, error) {
	if amount == nil || amount.Sign() <= 0 {
		return chain.TxOutcome{}, chain.ErrInvalidAmount
	}

	available, err := c.power.AvailablePower(ctx, voter)
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("available power: %w", err)
	}
	if amount.Cmp(available) > 0 {
		return chain.TxOutcome{}, fmt.Errorf("available %s: %w", available, chain.ErrInsufficientPower)
	}

	handle, err := c.submitter.Submit(ctx, chain.Call{
		Contract: chain.ContractVoting,
		Method:   "delegateVotes",
		Args:     []interface{}{new(big.Int).SetUint64(markID), amount},
	})
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("delegate to mark %d: %w", markID, err)
	}
	return chain.TxOutcome{Handle: handle, Status: chain.TxPending}, nil
}

// Undelegate validates and submits a delegation withdrawal from a mark.
func (c *VotingCoordinator) Undelegate(ctx context.Context, voter common.Address, markID uint64, amount *big.Int) (chain.TxOutcome, error) {
	delegated, err := c.voting.Delegation(ctx, voter, markID)
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("delegation for mark %d: %w", markID, err)
	}
	if delegated.Sign() == 0 {
		return chain.TxOutcome{}, chain.ErrNoDelegation
	}
	if amount == nil || amount.Sign() <= 0 {
		return chain.TxOutcome{}, chain.ErrInvalidAmount
	}
	if amount.Cmp(delegated) > 0 {
		return chain.TxOutcome{}, fmt.Errorf("delegated %s: %w", delegated, chain.ErrExceedsDelegation)
	}

	handle, err := c.submitter.Submit(ctx, chain.Call{
		Contract: chain.ContractVoting,
		Method:   "undelegateVotes",
		Args:     []interface{}{new(big.Int).SetUint64(markID), amount},
	})
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("undelegate from mark %d: %w", markID, err)
	}
	return chain.TxOutcome{Handle: handle, Status: chain.TxPending}, nil
}
