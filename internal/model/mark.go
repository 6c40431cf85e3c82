// Package model defines the domain records projected from the ledger.
package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Mark is a content-preservation record reconstructed from narrow ledger
// reads merged with its externally hosted document. ID, Creator and
// CreationTime are immutable after mint; Title and Author are authoritative
// ledger state; Description and SourceURL are advisory and empty when the
// content store is unavailable.
type Mark struct {
	ID           uint64
	Title        string
	Author       string
	Creator      common.Address
	Owner        common.Address
	CreationTime time.Time
	ContentURI   string
	Description  string
	SourceURL    string

	// Votes is hydrated only for views that request it, nil otherwise.
	Votes *big.Int
}
