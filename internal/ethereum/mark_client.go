package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/pkg/safe"
)

// MarkClient reads the mark NFT contract. Every method is one narrow
// contract call; there is no aggregate read, so a full mark costs several
// independent calls composed by the resolver.
type MarkClient struct {
	*caller
}

// NewMarkClient binds the mark contract at the given address.
func NewMarkClient(backend bind.ContractBackend, address common.Address, metrics CallMetrics) (*MarkClient, error) {
	c, err := newCaller("mark", backend, address, markABI, metrics)
	if err != nil {
		return nil, err
	}
	return &MarkClient{caller: c}, nil
}

// Exists reports whether the identifier has been minted.
func (c *MarkClient) Exists(ctx context.Context, id uint64) (bool, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "exists", tokenID(id)); err != nil {
		return false, err
	}
	return asBool("exists", out[0])
}

// TotalCount returns the upper bound of the identifier space.
func (c *MarkClient) TotalCount(ctx context.Context) (uint64, error) {
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

// Metadata returns the authoritative title/author/content-URI tuple.
func (c *MarkClient) Metadata(ctx context.Context, id uint64) (chain.MarkMetadata, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getMarkMetadata", tokenID(id)); err != nil {
		return chain.MarkMetadata{}, err
	}
	title, err := asString("getMarkMetadata.title", out[0])
	if err != nil {
		return chain.MarkMetadata{}, err
	}
	author, err := asString("getMarkMetadata.author", out[1])
	if err != nil {
		return chain.MarkMetadata{}, err
	}
	uri, err := asString("getMarkMetadata.contentURI", out[2])
	if err != nil {
		return chain.MarkMetadata{}, err
	}
	return chain.MarkMetadata{Title: title, Author: author, ContentURI: uri}, nil
}

// Creator returns the minting principal, immutable after mint.
func (c *MarkClient) Creator(ctx context.Context, id uint64) (common.Address, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getMarkCreator", tokenID(id)); err != nil {
		return common.Address{}, err
	}
	return asAddress("getMarkCreator", out[0])
}

// CreationTime returns the mint block time at seconds resolution.
func (c *MarkClient) CreationTime(ctx context.Context, id uint64) (time.Time, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getMarkCreationTime", tokenID(id)); err != nil {
		return time.Time{}, err
	}
	ts, err := asBig("getMarkCreationTime", out[0])
	if err != nil {
		return time.Time{}, err
	}
	created, err := safe.TimeFromBig(ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("getMarkCreationTime: %w", err)
	}
	return created, nil
}

// OwnerOf returns the current owner, mutable via transfer.
func (c *MarkClient) OwnerOf(ctx context.Context, id uint64) (common.Address, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "ownerOf", tokenID(id)); err != nil {
		return common.Address{}, err
	}
	return asAddress("ownerOf", out[0])
}

// BalanceOf returns the number of marks the owner holds.
func (c *MarkClient) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "balanceOf", owner); err != nil {
		return 0, err
	}
	balance, err := asBig("balanceOf", out[0])
	if err != nil {
		return 0, err
	}
	count, err := safe.Uint64FromBig(balance)
	if err != nil {
		return 0, fmt.Errorf("balanceOf: %w", err)
	}
	return count, nil
}
