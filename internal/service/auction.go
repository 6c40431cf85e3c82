package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/model"
)

// AuctionCoordinator projects auction records and validates bid intents.
// Ended/TimeRemaining/MinimumBid are recomputed from wall-clock time on
// every read; only the ledger's finalized flag is authoritative for
// settlement. Bid preconditions are always evaluated against a fresh
// re-read, never a view the UI rendered earlier.
type AuctionCoordinator struct {
	auctions  AuctionReader
	submitter Submitter
	now       func() time.Time
	logger    *zap.Logger
}

// NewAuctionCoordinator builds an AuctionCoordinator on wall-clock time.
func NewAuctionCoordinator(auctions AuctionReader, submitter Submitter, logger *zap.Logger) *AuctionCoordinator {
	return &AuctionCoordinator{
		auctions:  auctions,
		submitter: submitter,
		now:       time.Now,
		logger:    logger,
	}
}

// Active resolves all auctions the contract reports as active. Per-auction
// resolution failures are logged and skipped.
func (c *AuctionCoordinator) Active(ctx context.Context) ([]model.Auction, error) {
	ids, err := c.auctions.ActiveAuctionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}

	auctions := make([]model.Auction, 0, len(ids))
	for _, id := range ids {
		record, err := c.auctions.Auction(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			c.logger.Warn("auction resolution failed, skipping",
				zap.Uint64("id", id), zap.Error(err))
			continue
		}
		auctions = append(auctions, c.project(record))
	}
	return auctions, nil
}

// Get resolves one auction with derived view state.
func (c *AuctionCoordinator) Get(ctx context.Context, id uint64) (*model.Auction, error) {
	record, err := c.auctions.Auction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve auction %d: %w", id, err)
	}
	if record.EndTime.IsZero() && record.StartTime.IsZero() {
		return nil, fmt.Errorf("auction %d: %w", id, chain.ErrNotFound)
	}
	auction := c.project(record)
	return &auction, nil
}

// PlaceBid validates a bid against a freshly re-read auction record and, if
// valid, hands the bid call to the submitter. The ended check runs before
// any amount validation; the submission outcome is surfaced verbatim.
func (c *AuctionCoordinator) PlaceBid(ctx context.Context, auctionID uint64, amount *big.Int) (chain.TxOutcome, error) {
	record, err := c.auctions.Auction(ctx, auctionID)
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("resolve auction %d: %w", auctionID, err)
	}

	now := c.now()
	if record.Finalized || !now.Before(record.EndTime) {
		return chain.TxOutcome{}, chain.ErrAuctionEnded
	}

	if amount == nil || amount.Sign() <= 0 {
		return chain.TxOutcome{}, chain.ErrInvalidAmount
	}

	minimum := minimumBid(record)
	if amount.Cmp(minimum) < 0 {
		return chain.TxOutcome{}, fmt.Errorf("minimum bid %s: %w", minimum, chain.ErrBidTooLow)
	}

	handle, err := c.submitter.Submit(ctx, chain.Call{
		Contract: chain.ContractAuction,
		Method:   "placeBid",
		Args:     []interface{}{new(big.Int).SetUint64(auctionID)},
		Value:    amount,
	})
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("place bid on auction %d: %w", auctionID, err)
	}
	return chain.TxOutcome{Handle: handle, Status: chain.TxPending}, nil
}

// project derives the advisory view state from a point-in-time record.
func (c *AuctionCoordinator) project(record chain.AuctionRecord) model.Auction {
	now := c.now()
	remaining := record.EndTime.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return model.Auction{
		ID:            record.ID,
		MarkID:        record.MarkID,
		Seller:        record.Seller,
		StartingPrice: record.StartingPrice,
		ReservePrice:  record.ReservePrice,
		CurrentBid:    record.CurrentBid,
		HighestBidder: record.HighestBidder,
		StartTime:     record.StartTime,
		EndTime:       record.EndTime,
		Finalized:     record.Finalized,
		Ended:         record.Finalized || !now.Before(record.EndTime),
		TimeRemaining: remaining,
		MinimumBid:    minimumBid(record),
	}
}

// minimumBid is currentBid + increment once bidding has started, the
// starting price before that.
func minimumBid(record chain.AuctionRecord) *big.Int {
	if record.CurrentBid != nil && record.CurrentBid.Sign() > 0 {
		return new(big.Int).Add(record.CurrentBid, minBidIncrement)
	}
	return record.StartingPrice
}
