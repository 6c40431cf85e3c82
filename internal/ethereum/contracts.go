// Package ethereum implements the ledger boundary over deployed EVM
// contracts: narrow read clients per contract plus the transaction
// submitter. All reads go through an instrumented bound-contract caller.
package ethereum

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/evermark-labs/evermark-backend/internal/chain"
)

// Addresses holds the deployed contract addresses the engine talks to.
type Addresses struct {
	Mark        common.Address
	Auction     common.Address
	Voting      common.Address
	Catalog     common.Address
	Leaderboard common.Address
	Rewards     common.Address
}

// Minimal ABI fragments for the reads and writes the engine performs. The
// contracts expose only narrow, non-paginated primitives; there is no
// aggregate or bulk read.
const (
	markABI = `[
		{"type":"function","stateMutability":"view","name":"exists","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"bool"}]},
		{"type":"function","stateMutability":"view","name":"totalSupply","inputs":[],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"view","name":"getMarkMetadata","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"title","type":"string"},{"name":"author","type":"string"},{"name":"contentURI","type":"string"}]},
		{"type":"function","stateMutability":"view","name":"getMarkCreator","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"address"}]},
		{"type":"function","stateMutability":"view","name":"getMarkCreationTime","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"view","name":"ownerOf","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"address"}]},
		{"type":"function","stateMutability":"view","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"nonpayable","name":"mintMark","inputs":[{"name":"contentURI","type":"string"},{"name":"title","type":"string"},{"name":"author","type":"string"}],"outputs":[{"type":"uint256"}]}
	]`

	auctionABI = `[
		{"type":"function","stateMutability":"view","name":"getActiveAuctions","inputs":[],"outputs":[{"type":"uint256[]"}]},
		{"type":"function","stateMutability":"view","name":"getAuctionDetails","inputs":[{"name":"auctionId","type":"uint256"}],"outputs":[{"name":"tokenId","type":"uint256"},{"name":"seller","type":"address"},{"name":"startingPrice","type":"uint256"},{"name":"reservePrice","type":"uint256"},{"name":"currentBid","type":"uint256"},{"name":"highestBidder","type":"address"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"finalized","type":"bool"}]},
		{"type":"function","stateMutability":"payable","name":"placeBid","inputs":[{"name":"auctionId","type":"uint256"}],"outputs":[]}
	]`

	votingABI = `[
		{"type":"function","stateMutability":"view","name":"getMarkVotes","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"view","name":"getUserVotesForMark","inputs":[{"name":"voter","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"view","name":"getCurrentCycle","inputs":[],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"nonpayable","name":"delegateVotes","inputs":[{"name":"tokenId","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[]},
		{"type":"function","stateMutability":"nonpayable","name":"undelegateVotes","inputs":[{"name":"tokenId","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[]}
	]`

	catalogABI = `[
		{"type":"function","stateMutability":"view","name":"getAvailableVotingPower","inputs":[{"name":"voter","type":"address"}],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"view","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"view","name":"totalSupply","inputs":[],"outputs":[{"type":"uint256"}]}
	]`

	leaderboardABI = `[
		{"type":"function","stateMutability":"view","name":"getTopMarksForCycle","inputs":[{"name":"cycle","type":"uint256"},{"name":"limit","type":"uint256"}],"outputs":[{"name":"tokenIds","type":"uint256[]"},{"name":"votes","type":"uint256[]"},{"name":"ranks","type":"uint256[]"}]}
	]`

	rewardsABI = `[
		{"type":"function","stateMutability":"view","name":"getPendingRewards","inputs":[{"name":"account","type":"address"}],"outputs":[{"type":"uint256"}]},
		{"type":"function","stateMutability":"nonpayable","name":"claimRewards","inputs":[],"outputs":[]}
	]`
)

// Clients bundles one read client per contract, all sharing a backend.
type Clients struct {
	Mark        *MarkClient
	Auction     *AuctionClient
	Voting      *VotingClient
	Catalog     *CatalogClient
	Leaderboard *LeaderboardClient
	Rewards     *RewardsClient
}

// NewClients builds the full client set over one backend connection.
func NewClients(backend bind.ContractBackend, addrs Addresses, metrics CallMetrics) (*Clients, error) {
	mark, err := NewMarkClient(backend, addrs.Mark, metrics)
	if err != nil {
		return nil, fmt.Errorf("mark client: %w", err)
	}
	auction, err := NewAuctionClient(backend, addrs.Auction, metrics)
	if err != nil {
		return nil, fmt.Errorf("auction client: %w", err)
	}
	voting, err := NewVotingClient(backend, addrs.Voting, metrics)
	if err != nil {
		return nil, fmt.Errorf("voting client: %w", err)
	}
	catalog, err := NewCatalogClient(backend, addrs.Catalog, metrics)
	if err != nil {
		return nil, fmt.Errorf("catalog client: %w", err)
	}
	leaderboard, err := NewLeaderboardClient(backend, addrs.Leaderboard, metrics)
	if err != nil {
		return nil, fmt.Errorf("leaderboard client: %w", err)
	}
	rewards, err := NewRewardsClient(backend, addrs.Rewards, metrics)
	if err != nil {
		return nil, fmt.Errorf("rewards client: %w", err)
	}
	return &Clients{
		Mark:        mark,
		Auction:     auction,
		Voting:      voting,
		Catalog:     catalog,
		Leaderboard: leaderboard,
		Rewards:     rewards,
	}, nil
}

// bound returns the bound contracts keyed the way chain.Call addresses them,
// for the submitter.
func (c *Clients) bound() map[chain.Contract]*caller {
	return map[chain.Contract]*caller{
		chain.ContractMark:    c.Mark.caller,
		chain.ContractAuction: c.Auction.caller,
		chain.ContractVoting:  c.Voting.caller,
		chain.ContractRewards: c.Rewards.caller,
	}
}
