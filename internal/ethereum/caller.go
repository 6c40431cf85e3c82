package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type (
	// CallMetrics records metrics for contract calls.
	CallMetrics interface {
		Observe(contract, operation string, err error, started time.Time)
	}
)

// caller wraps a bound contract with metrics instrumentation and error
// context. All read clients are built on it.
type caller struct {
	name    string
	bound   *bind.BoundContract
	metrics CallMetrics
}

func newCaller(name string, backend bind.ContractBackend, address common.Address, abiJSON string, metrics CallMetrics) (*caller, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse %s abi: %w", name, err)
	}
	return &caller{
		name:    name,
		bound:   bind.NewBoundContract(address, parsed, backend, backend, backend),
		metrics: metrics,
	}, nil
}

// call performs a read and leaves unpacked outputs in out.
func (c *caller) call(ctx context.Context, out *[]interface{}, method string, args ...interface{}) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(c.name, method, err, started)
	}()
	if err = c.bound.Call(&bind.CallOpts{Context: ctx}, out, method, args...); err != nil {
		return fmt.Errorf("%s.%s: %w", c.name, method, err)
	}
	return nil
}

// Output conversion helpers. The ABI decoder hands back interface values;
// a shape mismatch here means the deployed contract disagrees with the
// compiled-in fragment.

func asBig(name string, v interface{}) (*big.Int, error) {
	b, ok := v.(*big.Int)
	if !ok || b == nil {
		return nil, fmt.Errorf("%s: unexpected output %T", name, v)
	}
	return b, nil
}

func asBigSlice(name string, v interface{}) ([]*big.Int, error) {
	s, ok := v.([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output %T", name, v)
	}
	return s, nil
}

func asBool(name string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: unexpected output %T", name, v)
	}
	return b, nil
}

func asString(name string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected output %T", name, v)
	}
	return s, nil
}

func asAddress(name string, v interface{}) (common.Address, error) {
	a, ok := v.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%s: unexpected output %T", name, v)
	}
	return a, nil
}

func tokenID(id uint64) *big.Int {
	return new(big.Int).SetUint64(id)
}
