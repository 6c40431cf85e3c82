package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/pkg/safe"
)

// LeaderboardClient reads the external ranking contract. Ranking is the one
// specialized index this ledger offers; the engine reports its order and
// rank numbers verbatim.
type LeaderboardClient struct {
	*caller
}

// NewLeaderboardClient binds the leaderboard contract at the given address.
func NewLeaderboardClient(backend bind.ContractBackend, address common.Address, metrics CallMetrics) (*LeaderboardClient, error) {
	c, err := newCaller("leaderboard", backend, address, leaderboardABI, metrics)
	if err != nil {
		return nil, err
	}
	return &LeaderboardClient{caller: c}, nil
}

// RankedMarks returns up to limit ranked rows for a closed cycle, in the
// contract's reported order.
func (c *LeaderboardClient) RankedMarks(ctx context.Context, cycle uint64, limit int) ([]chain.RankedMark, error) {
	capped, err := safe.Uint64(limit)
	if err != nil {
		return nil, fmt.Errorf("getTopMarksForCycle: limit: %w", err)
	}
	var out []interface{}
	if err := c.call(ctx, &out, "getTopMarksForCycle", tokenID(cycle), new(big.Int).SetUint64(capped)); err != nil {
		return nil, err
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("getTopMarksForCycle: %d outputs", len(out))
	}

	ids, err := asBigSlice("getTopMarksForCycle.tokenIds", out[0])
	if err != nil {
		return nil, err
	}
	votes, err := asBigSlice("getTopMarksForCycle.votes", out[1])
	if err != nil {
		return nil, err
	}
	ranks, err := asBigSlice("getTopMarksForCycle.ranks", out[2])
	if err != nil {
		return nil, err
	}
	if len(votes) != len(ids) || len(ranks) != len(ids) {
		return nil, fmt.Errorf("getTopMarksForCycle: mismatched arrays (%d ids, %d votes, %d ranks)",
			len(ids), len(votes), len(ranks))
	}

	rows := make([]chain.RankedMark, 0, len(ids))
	for i, idBig := range ids {
		id, err := safe.Uint64FromBig(idBig)
		if err != nil {
			return nil, fmt.Errorf("getTopMarksForCycle.tokenIds[%d]: %w", i, err)
		}
		rank, err := safe.Uint64FromBig(ranks[i])
		if err != nil {
			return nil, fmt.Errorf("getTopMarksForCycle.ranks[%d]: %w", i, err)
		}
		rows = append(rows, chain.RankedMark{MarkID: id, Votes: votes[i], Rank: rank})
	}
	return rows, nil
}

// RewardsClient reads the rewards contract.
type RewardsClient struct {
	*caller
}

// NewRewardsClient binds the rewards contract at the given address.
func NewRewardsClient(backend bind.ContractBackend, address common.Address, metrics CallMetrics) (*RewardsClient, error) {
	c, err := newCaller("rewards", backend, address, rewardsABI, metrics)
	if err != nil {
		return nil, err
	}
	return &RewardsClient{caller: c}, nil
}

// PendingRewards returns the account's claimable balance.
func (c *RewardsClient) PendingRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getPendingRewards", account); err != nil {
		return nil, err
	}
	return asBig("getPendingRewards", out[0])
}
