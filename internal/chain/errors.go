package chain

import "errors"

// Sentinel errors for the projection and validation taxonomy. Validation
// errors are raised before a transaction is constructed; the ledger is never
// asked to execute a call that is known to revert.
var (
	// ErrNotFound means the identifier does not exist at resolution time.
	ErrNotFound = errors.New("not found")

	// ErrAuctionEnded rejects a bid arriving at or after the auction end time.
	ErrAuctionEnded = errors.New("auction ended")
	// ErrBidTooLow rejects a bid below the starting price or below the
	// current bid plus the minimum increment.
	ErrBidTooLow = errors.New("bid below minimum")

	// ErrInvalidAmount rejects non-positive delegation or bid amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientPower rejects a delegation exceeding available voting power.
	ErrInsufficientPower = errors.New("insufficient voting power")
	// ErrNoDelegation rejects an undelegation when nothing is delegated.
	ErrNoDelegation = errors.New("no delegation")
	// ErrExceedsDelegation rejects an undelegation above the delegated amount.
	ErrExceedsDelegation = errors.New("amount exceeds delegation")

	// ErrNoRewards rejects a claim when no rewards are pending.
	ErrNoRewards = errors.New("no pending rewards")

	// ErrMissingTitle rejects a creation request without a title.
	ErrMissingTitle = errors.New("title is required")

	// ErrCycleInProgress rejects ranking requests for a cycle that has not
	// fully elapsed; only closed cycles have a stable ranking.
	ErrCycleInProgress = errors.New("cycle still in progress")
)
