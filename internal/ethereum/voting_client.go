package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/evermark-labs/evermark-backend/pkg/safe"
)

// VotingClient reads the voting contract: per-mark totals, per-(voter, mark)
// delegations and the current scoring cycle.
type VotingClient struct {
	*caller
}

// NewVotingClient binds the voting contract at the given address.
func NewVotingClient(backend bind.ContractBackend, address common.Address, metrics CallMetrics) (*VotingClient, error) {
	c, err := newCaller("voting", backend, address, votingABI, metrics)
	if err != nil {
		return nil, err
	}
	return &VotingClient{caller: c}, nil
}

// VoteTotal returns the total delegated weight recorded for a mark.
func (c *VotingClient) VoteTotal(ctx context.Context, markID uint64) (*big.Int, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getMarkVotes", tokenID(markID)); err != nil {
		return nil, err
	}
	return asBig("getMarkVotes", out[0])
}

// Delegation returns the voter's delegated weight on one mark.
func (c *VotingClient) Delegation(ctx context.Context, voter common.Address, markID uint64) (*big.Int, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getUserVotesForMark", voter, tokenID(markID)); err != nil {
		return nil, err
	}
	return asBig("getUserVotesForMark", out[0])
}

// CurrentCycle returns the in-progress scoring cycle number.
func (c *VotingClient) CurrentCycle(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getCurrentCycle"); err != nil {
		return 0, err
	}
	cycleBig, err := asBig("getCurrentCycle", out[0])
	if err != nil {
		return 0, err
	}
	cycle, err := safe.Uint64FromBig(cycleBig)
	if err != nil {
		return 0, fmt.Errorf("getCurrentCycle: %w", err)
	}
	return cycle, nil
}

// CatalogClient reads the staking catalog that backs voting power.
type CatalogClient struct {
	*caller
}

// NewCatalogClient binds the catalog contract at the given address.
func NewCatalogClient(backend bind.ContractBackend, address common.Address, metrics CallMetrics) (*CatalogClient, error) {
	c, err := newCaller("catalog", backend, address, catalogABI, metrics)
	if err != nil {
		return nil, err
	}
	return &CatalogClient{caller: c}, nil
}

// AvailablePower returns the voter's capacity minus weight already delegated
// across all marks, as the ledger reports it.
func (c *CatalogClient) AvailablePower(ctx context.Context, voter common.Address) (*big.Int, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getAvailableVotingPower", voter); err != nil {
		return nil, err
	}
	return asBig("getAvailableVotingPower", out[0])
}

// TotalCapacity returns the voter's full delegation capacity (their wrapped
// staking balance).
func (c *CatalogClient) TotalCapacity(ctx context.Context, voter common.Address) (*big.Int, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "balanceOf", voter); err != nil {
		return nil, err
	}
	return asBig("balanceOf", out[0])
}

// ActiveVoters returns the number of principals holding any staking balance.
func (c *CatalogClient) ActiveVoters(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "totalSupply"); err != nil {
		return 0, err
	}
	supply, err := asBig("totalSupply", out[0])
	if err != nil {
		return 0, err
	}
	count, err := safe.Uint64FromBig(supply)
	if err != nil {
		return 0, fmt.Errorf("totalSupply: %w", err)
	}
	return count, nil
}
