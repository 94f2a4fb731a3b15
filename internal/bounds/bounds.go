// Package bounds contains overflow-safe arithmetic and index validation
// helpers shared by the capacity and storage layers.
package bounds

import (
	"fmt"
	"math"
)

// AddOK adds a and b, returning ok = false when the result would overflow int.
func AddOK(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOK multiplies a and b, returning ok = false when the result would
// overflow int. Capacity math only ever deals in non-negative counts, so
// negative operands are rejected outright rather than range-checked.
func MulOK(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckIndex validates i as an element index into a buffer of the given
// size. Valid indexes are [0, size).
func CheckIndex(i, size int) error {
	if i < 0 || i >= size {
		return fmt.Errorf("index %d, size %d", i, size)
	}
	return nil
}

// CheckInsertPos validates i as an insertion position. Unlike CheckIndex,
// inserting at position == size (append) is allowed.
func CheckInsertPos(i, size int) error {
	if i < 0 || i > size {
		return fmt.Errorf("position %d, size %d", i, size)
	}
	return nil
}

// CheckRange validates that the half-open range [off, off+n) lies within
// [0, size), guarding the intermediate sum against overflow.
func CheckRange(off, n, size int) error {
	if off < 0 {
		return fmt.Errorf("negative offset: %d", off)
	}
	if n < 0 {
		return fmt.Errorf("negative count: %d", n)
	}
	end, ok := AddOK(off, n)
	if !ok {
		return fmt.Errorf("overflow: offset=%d + count=%d", off, n)
	}
	if end > size {
		return fmt.Errorf("range end %d, size %d", end, size)
	}
	return nil
}
