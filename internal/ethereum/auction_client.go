package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/pkg/safe"
)

// AuctionClient reads the auction contract.
type AuctionClient struct {
	*caller
}

// NewAuctionClient binds the auction contract at the given address.
func NewAuctionClient(backend bind.ContractBackend, address common.Address, metrics CallMetrics) (*AuctionClient, error) {
	c, err := newCaller("auction", backend, address, auctionABI, metrics)
	if err != nil {
		return nil, err
	}
	return &AuctionClient{caller: c}, nil
}

// ActiveAuctionIDs returns the contract's list of non-finalized auctions.
func (c *AuctionClient) ActiveAuctionIDs(ctx context.Context) ([]uint64, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getActiveAuctions"); err != nil {
		return nil, err
	}
	raw, err := asBigSlice("getActiveAuctions", out[0])
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(raw))
	for _, v := range raw {
		id, err := safe.Uint64FromBig(v)
		if err != nil {
			return nil, fmt.Errorf("getActiveAuctions: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Auction returns the point-in-time auction tuple for an identifier.
func (c *AuctionClient) Auction(ctx context.Context, id uint64) (chain.AuctionRecord, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getAuctionDetails", tokenID(id)); err != nil {
		return chain.AuctionRecord{}, err
	}
	if len(out) != 9 {
		return chain.AuctionRecord{}, fmt.Errorf("getAuctionDetails: %d outputs", len(out))
	}

	markBig, err := asBig("getAuctionDetails.tokenId", out[0])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	markID, err := safe.Uint64FromBig(markBig)
	if err != nil {
		return chain.AuctionRecord{}, fmt.Errorf("getAuctionDetails.tokenId: %w", err)
	}
	seller, err := asAddress("getAuctionDetails.seller", out[1])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	startingPrice, err := asBig("getAuctionDetails.startingPrice", out[2])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	reservePrice, err := asBig("getAuctionDetails.reservePrice", out[3])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	currentBid, err := asBig("getAuctionDetails.currentBid", out[4])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	highestBidder, err := asAddress("getAuctionDetails.highestBidder", out[5])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	startBig, err := asBig("getAuctionDetails.startTime", out[6])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	startTime, err := safe.TimeFromBig(startBig)
	if err != nil {
		return chain.AuctionRecord{}, fmt.Errorf("getAuctionDetails.startTime: %w", err)
	}
	endBig, err := asBig("getAuctionDetails.endTime", out[7])
	if err != nil {
		return chain.AuctionRecord{}, err
	}
	endTime, err := safe.TimeFromBig(endBig)
	if err != nil {
		return chain.AuctionRecord{}, fmt.Errorf("getAuctionDetails.endTime: %w", err)
	}
	finalized, err := asBool("getAuctionDetails.finalized", out[8])
	if err != nil {
		return chain.AuctionRecord{}, err
	}

	return chain.AuctionRecord{
		ID:            id,
		MarkID:        markID,
		Seller:        seller,
		StartingPrice: startingPrice,
		ReservePrice:  reservePrice,
		CurrentBid:    currentBid,
		HighestBidder: highestBidder,
		StartTime:     startTime,
		EndTime:       endTime,
		Finalized:     finalized,
	}, nil
}
