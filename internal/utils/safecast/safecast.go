// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cast"
)

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// StringToUint64 parses a base 10 unsigned integer as returned by JSON-RPC APIs that encode
// u64 values as strings. Unlike cast.ToUint64E it accepts the full uint64 range and never
// reads a leading zero as an octal prefix.
func StringToUint64(value string) (uint64, error) {
	if value == "" {
		return 0, fmt.Errorf("empty string is not a uint64")
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a uint64: %w", value, err)
	}

	return parsed, nil
}
