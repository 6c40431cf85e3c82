// Package service implements the projection and coordination engine: it
// reconstructs queryable views from narrow ledger reads and validates
// mutating intents against fresh ledger state before submission.
package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/content"
	"github.com/evermark-labs/evermark-backend/internal/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=service

type (
	// MarkReader is the narrow read surface of the mark contract.
	MarkReader interface {
		Exists(ctx context.Context, id uint64) (bool, error)
		TotalCount(ctx context.Context) (uint64, error)
		Metadata(ctx context.Context, id uint64) (chain.MarkMetadata, error)
		Creator(ctx context.Context, id uint64) (common.Address, error)
		CreationTime(ctx context.Context, id uint64) (time.Time, error)
		OwnerOf(ctx context.Context, id uint64) (common.Address, error)
		BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
	}

	// AuctionReader is the read surface of the auction contract.
	AuctionReader interface {
		ActiveAuctionIDs(ctx context.Context) ([]uint64, error)
		Auction(ctx context.Context, id uint64) (chain.AuctionRecord, error)
	}

	// VotingReader is the read surface of the voting contract.
	VotingReader interface {
		VoteTotal(ctx context.Context, markID uint64) (*big.Int, error)
		Delegation(ctx context.Context, voter common.Address, markID uint64) (*big.Int, error)
		CurrentCycle(ctx context.Context) (uint64, error)
	}

	// PowerReader reads delegation capacity from the staking catalog.
	PowerReader interface {
		AvailablePower(ctx context.Context, voter common.Address) (*big.Int, error)
		TotalCapacity(ctx context.Context, voter common.Address) (*big.Int, error)
		ActiveVoters(ctx context.Context) (uint64, error)
	}

	// LeaderboardReader reads the external cycle ranking.
	LeaderboardReader interface {
		RankedMarks(ctx context.Context, cycle uint64, limit int) ([]chain.RankedMark, error)
	}

	// RewardsReader reads claimable reward balances.
	RewardsReader interface {
		PendingRewards(ctx context.Context, account common.Address) (*big.Int, error)
	}

	// MarkResolver hydrates one mark from its identifier; *Resolver is the
	// production implementation.
	MarkResolver interface {
		Resolve(ctx context.Context, id uint64) (*model.Mark, error)
	}

	// ContentResolver resolves a content URI to its advisory payload,
	// degrading to the zero payload on any failure.
	ContentResolver interface {
		Resolve(ctx context.Context, uri string) chain.ContentPayload
	}

	// ContentPublisher pins a mark document and returns its content URI.
	ContentPublisher interface {
		Publish(ctx context.Context, doc content.Document, label string) (string, error)
	}

	// Submitter broadcasts a validated call description. Confirmation is
	// observed out of band; the engine never reinterprets the outcome.
	Submitter interface {
		Submit(ctx context.Context, call chain.Call) (chain.TxHandle, error)
	}

	// ScanMetrics records scan-level outcomes.
	ScanMetrics interface {
		ObserveScan(mode string, err error, resolved int, started time.Time)
	}
)
