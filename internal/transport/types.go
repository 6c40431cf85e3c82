// Package transport exposes the engine's services over HTTP/JSON.
package transport

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/model"
	"github.com/evermark-labs/evermark-backend/internal/service"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=transport

type (
	// MarkScanner enumerates marks by recency or owner.
	MarkScanner interface {
		Recent(ctx context.Context, n int) ([]model.Mark, error)
		ByOwner(ctx context.Context, owner common.Address) ([]model.Mark, error)
	}

	// MarkResolver hydrates a single mark.
	MarkResolver interface {
		Resolve(ctx context.Context, id uint64) (*model.Mark, error)
	}

	// AuctionService projects auctions and accepts bids.
	AuctionService interface {
		Active(ctx context.Context) ([]model.Auction, error)
		Get(ctx context.Context, id uint64) (*model.Auction, error)
		PlaceBid(ctx context.Context, auctionID uint64, amount *big.Int) (chain.TxOutcome, error)
	}

	// VotingService projects vote state and accepts delegation changes.
	VotingService interface {
		Summary(ctx context.Context, voter common.Address, markID uint64) (*model.VotingSummary, error)
		ActiveVoters(ctx context.Context) (uint64, error)
		Delegate(ctx context.Context, voter common.Address, markID uint64, amount *big.Int) (chain.TxOutcome, error)
		Undelegate(ctx context.Context, voter common.Address, markID uint64, amount *big.Int) (chain.TxOutcome, error)
	}

	// LeaderboardService projects closed-cycle rankings.
	LeaderboardService interface {
		LatestClosedCycle(ctx context.Context) (uint64, bool, error)
		ForCycle(ctx context.Context, cycle uint64, limit int) (*model.Leaderboard, error)
	}

	// RewardsService reads and claims reward balances.
	RewardsService interface {
		Pending(ctx context.Context, account common.Address) (*big.Int, error)
		Claim(ctx context.Context, account common.Address) (chain.TxOutcome, error)
	}

	// CreationService publishes and mints new marks.
	CreationService interface {
		Create(ctx context.Context, req service.CreationRequest) (chain.TxOutcome, error)
	}
)
