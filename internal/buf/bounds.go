package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int64.
func AddOverflowSafe(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckRange validates that the n bytes starting at offset fit in a file of
// size bytes. Returns the end offset if valid, or an error describing the
// specific failure (negative input, overflow, or out of bounds).
//
//	end, err := buf.CheckRange(size, off, n)
//	if err != nil {
//	    return fmt.Errorf("delete: %w", err)
//	}
func CheckRange(size, offset, n int64) (int64, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count: %d", n)
	}
	end, ok := AddOverflowSafe(offset, n)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + count=%d", offset, n)
	}
	if end > size {
		return 0, fmt.Errorf("bounds: end=%d > size=%d", end, size)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(int64(off), int64(n))
	if !ok || end > int64(len(b)) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
