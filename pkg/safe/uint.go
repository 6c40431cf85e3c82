// Package safe provides checked conversions for values crossing the ledger
// boundary, where counts, identifiers and timestamps arrive as *big.Int.
package safe

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

// Uint64FromBig converts a ledger scalar to uint64, rejecting nil, negative
// and out-of-range values.
func Uint64FromBig(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value")
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}

// TimeFromBig converts a seconds-resolution ledger timestamp to time.Time.
func TimeFromBig(v *big.Int) (time.Time, error) {
	secs, err := Uint64FromBig(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp: %w", err)
	}
	if secs > math.MaxInt64 {
		return time.Time{}, fmt.Errorf("timestamp %d out of time range", secs)
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

// Uint64 converts signed integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
