package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
)

// RewardsCoordinator reads claimable balances and validates claim intents.
type RewardsCoordinator struct {
	rewards   RewardsReader
	submitter Submitter
	logger    *zap.Logger
}

// NewRewardsCoordinator builds a RewardsCoordinator.
func NewRewardsCoordinator(rewards RewardsReader, submitter Submitter, logger *zap.Logger) *RewardsCoordinator {
	return &RewardsCoordinator{
		rewards:   rewards,
		submitter: submitter,
		logger:    logger,
	}
}

// Pending returns the account's claimable balance.
func (c *RewardsCoordinator) Pending(ctx context.Context, account common.Address) (*big.Int, error) {
	pending, err := c.rewards.PendingRewards(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("pending rewards: %w", err)
	}
	return pending, nil
}

// Claim re-reads the pending balance and submits a claim when non-zero.
func (c *RewardsCoordinator) Claim(ctx context.Context, account common.Address) (chain.TxOutcome, error) {
	pending, err := c.rewards.PendingRewards(ctx, account)
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("pending rewards: %w", err)
	}
	if pending.Sign() == 0 {
		return chain.TxOutcome{}, chain.ErrNoRewards
	}

	handle, err := c.submitter.Submit(ctx, chain.Call{
		Contract: chain.ContractRewards,
		Method:   "claimRewards",
	})
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("claim rewards: %w", err)
	}
	return chain.TxOutcome{Handle: handle, Status: chain.TxPending}, nil
}
