// Package conv provides checked integer conversions for codec boundaries.
package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32, failing on overflow.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// IntToUint64 converts int to uint64, failing on negative input.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int, failing on overflow.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}

// Uint32ToInt converts uint32 to int, failing on overflow.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}
