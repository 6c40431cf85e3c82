package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/clock"
)

type (
	// ReceiptFetcher looks up transaction receipts; *ethclient.Client
	// satisfies it.
	ReceiptFetcher interface {
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	}
)

// Submitter broadcasts validated call descriptions and observes their
// eventual confirmation. It never retries a submission: a value-bearing
// transaction retried automatically risks double spending, so retry is a
// user decision.
type Submitter struct {
	contracts map[chain.Contract]*caller
	opts      *bind.TransactOpts
	receipts  ReceiptFetcher
	interval  time.Duration
	metrics   CallMetrics
	logger    *zap.Logger

	// serializes nonce assignment across concurrent submissions
	mu sync.Mutex
}

// NewSubmitter builds a Submitter over the client set's bound contracts.
func NewSubmitter(clients *Clients, opts *bind.TransactOpts, receipts ReceiptFetcher, pollInterval time.Duration, metrics CallMetrics, logger *zap.Logger) *Submitter {
	return &Submitter{
		contracts: clients.bound(),
		opts:      opts,
		receipts:  receipts,
		interval:  pollInterval,
		metrics:   metrics,
		logger:    logger,
	}
}

// Submit packs, signs and broadcasts the call, returning a handle whose
// confirmation is observed separately via Wait.
func (s *Submitter) Submit(ctx context.Context, call chain.Call) (handle chain.TxHandle, err error) {
	c, ok := s.contracts[call.Contract]
	if !ok {
		return chain.TxHandle{}, fmt.Errorf("no contract bound for %q", call.Contract)
	}

	started := time.Now()
	defer func() {
		s.metrics.Observe(string(call.Contract), call.Method, err, started)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	opts := *s.opts
	opts.Context = ctx
	opts.Value = call.Value

	tx, err := c.bound.Transact(&opts, call.Method, call.Args...)
	if err != nil {
		return chain.TxHandle{}, fmt.Errorf("submit %s.%s: %w", call.Contract, call.Method, err)
	}

	s.logger.Info("transaction submitted",
		zap.String("contract", string(call.Contract)),
		zap.String("method", call.Method),
		zap.String("tx", tx.Hash().Hex()))
	return chain.TxHandle{Hash: tx.Hash()}, nil
}

// Wait polls for the transaction receipt until it is mined or the context
// ends, and reports the ledger's verdict verbatim.
func (s *Submitter) Wait(ctx context.Context, handle chain.TxHandle) (chain.TxStatus, error) {
	status := chain.TxPending
	err := clock.Poll(ctx, s.interval, func(ctx context.Context) (bool, error) {
		receipt, err := s.receipts.TransactionReceipt(ctx, handle.Hash)
		if errors.Is(err, goethereum.NotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("fetch receipt %s: %w", handle.Hash.Hex(), err)
		}
		if receipt.Status == types.ReceiptStatusSuccessful {
			status = chain.TxConfirmed
		} else {
			status = chain.TxFailed
		}
		return true, nil
	})
	if err != nil {
		return chain.TxPending, err
	}

	s.logger.Info("transaction settled",
		zap.String("tx", handle.Hash.Hex()),
		zap.String("status", string(status)))
	return status, nil
}
