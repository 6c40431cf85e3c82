package transport

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/model"
)

// tokenDecimals is the base-unit exponent of the chain's native token.
const tokenDecimals = 18

// amountView renders a base-unit amount both raw and as a human-readable
// token quantity with trailing zeros trimmed.
type amountView struct {
	Wei    string `json:"wei"`
	Tokens string `json:"tokens"`
}

func renderAmount(wei *big.Int) *amountView {
	if wei == nil {
		return nil
	}
	return &amountView{
		Wei:    wei.String(),
		Tokens: decimal.NewFromBigInt(wei, -tokenDecimals).String(),
	}
}

type markView struct {
	ID           uint64      `json:"id"`
	Title        string      `json:"title"`
	Author       string      `json:"author"`
	Creator      string      `json:"creator"`
	Owner        string      `json:"owner"`
	CreationTime time.Time   `json:"creation_time"`
	ContentURI   string      `json:"content_uri"`
	Description  string      `json:"description,omitempty"`
	SourceURL    string      `json:"source_url,omitempty"`
	Votes        *amountView `json:"votes,omitempty"`
}

func renderMark(m model.Mark) markView {
	return markView{
		ID:           m.ID,
		Title:        m.Title,
		Author:       m.Author,
		Creator:      m.Creator.Hex(),
		Owner:        m.Owner.Hex(),
		CreationTime: m.CreationTime,
		ContentURI:   m.ContentURI,
		Description:  m.Description,
		SourceURL:    m.SourceURL,
		Votes:        renderAmount(m.Votes),
	}
}

func renderMarks(marks []model.Mark) []markView {
	views := make([]markView, 0, len(marks))
	for _, m := range marks {
		views = append(views, renderMark(m))
	}
	return views
}

type auctionView struct {
	ID               uint64      `json:"id"`
	MarkID           uint64      `json:"mark_id"`
	Seller           string      `json:"seller"`
	StartingPrice    *amountView `json:"starting_price"`
	ReservePrice     *amountView `json:"reserve_price,omitempty"`
	CurrentBid       *amountView `json:"current_bid,omitempty"`
	HighestBidder    string      `json:"highest_bidder,omitempty"`
	StartTime        time.Time   `json:"start_time"`
	EndTime          time.Time   `json:"end_time"`
	Finalized        bool        `json:"finalized"`
	Ended            bool        `json:"ended"`
	SecondsRemaining int64       `json:"seconds_remaining"`
	MinimumBid       *amountView `json:"minimum_bid"`
}

func renderAuction(a model.Auction) auctionView {
	view := auctionView{
		ID:               a.ID,
		MarkID:           a.MarkID,
		Seller:           a.Seller.Hex(),
		StartingPrice:    renderAmount(a.StartingPrice),
		ReservePrice:     renderAmount(a.ReservePrice),
		StartTime:        a.StartTime,
		EndTime:          a.EndTime,
		Finalized:        a.Finalized,
		Ended:            a.Ended,
		SecondsRemaining: int64(a.TimeRemaining / time.Second),
		MinimumBid:       renderAmount(a.MinimumBid),
	}
	if a.CurrentBid != nil && a.CurrentBid.Sign() > 0 {
		view.CurrentBid = renderAmount(a.CurrentBid)
		view.HighestBidder = a.HighestBidder.Hex()
	}
	return view
}

func renderAuctions(auctions []model.Auction) []auctionView {
	views := make([]auctionView, 0, len(auctions))
	for _, a := range auctions {
		views = append(views, renderAuction(a))
	}
	return views
}

type votingView struct {
	MarkID          uint64      `json:"mark_id"`
	Voter           string      `json:"voter"`
	TotalVotes      *amountView `json:"total_votes"`
	VoterDelegation *amountView `json:"voter_delegation"`
	AvailablePower  *amountView `json:"available_power"`
	TotalCapacity   *amountView `json:"total_capacity"`
}

func renderVoting(s model.VotingSummary) votingView {
	return votingView{
		MarkID:          s.MarkID,
		Voter:           s.Voter.Hex(),
		TotalVotes:      renderAmount(s.TotalVotes),
		VoterDelegation: renderAmount(s.VoterDelegation),
		AvailablePower:  renderAmount(s.AvailablePower),
		TotalCapacity:   renderAmount(s.TotalCapacity),
	}
}

type leaderboardEntryView struct {
	Rank  uint64      `json:"rank"`
	Votes *amountView `json:"votes"`
	Mark  markView    `json:"mark"`
}

type leaderboardView struct {
	Cycle   uint64                 `json:"cycle"`
	Status  string                 `json:"status"`
	Entries []leaderboardEntryView `json:"entries"`
}

func renderLeaderboard(board model.Leaderboard) leaderboardView {
	entries := make([]leaderboardEntryView, 0, len(board.Entries))
	for _, e := range board.Entries {
		entries = append(entries, leaderboardEntryView{
			Rank:  e.Rank,
			Votes: renderAmount(e.Votes),
			Mark:  renderMark(e.Mark),
		})
	}
	return leaderboardView{
		Cycle:   board.Cycle,
		Status:  string(board.Status),
		Entries: entries,
	}
}

type txView struct {
	Hash   string `json:"tx_hash"`
	Status string `json:"status"`
}

func renderTx(outcome chain.TxOutcome) txView {
	return txView{
		Hash:   outcome.Handle.Hash.Hex(),
		Status: string(outcome.Status),
	}
}
