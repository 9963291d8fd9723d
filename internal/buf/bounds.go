// Package buf contains bounds and length arithmetic shared by the string
// value and its storage.
package buf

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooLong indicates a summed length that cannot be represented as an int.
var ErrTooLong = errors.New("buf: length overflows int")

// AddOverflowSafe returns a+b, or false when the sum falls outside the int
// range.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// SumLen returns a+b for two content lengths, reserving room for the
// terminator element. It panics with ErrTooLong when a+b+1 would overflow:
// such a buffer could never be allocated, and allocation failure is not a
// recoverable condition for callers.
func SumLen(a, b int) int {
	n, ok := AddOverflowSafe(a, b)
	if !ok || n == math.MaxInt {
		panic(fmt.Errorf("%w: %d + %d", ErrTooLong, a, b))
	}
	return n
}

// InRead reports whether pos is a readable position in content of length n.
// Position n itself addresses the terminator and is readable.
func InRead(pos, n int) bool {
	return pos >= 0 && pos <= n
}

// InWrite reports whether pos is a writable position in content of length n.
// The terminator slot is never writable.
func InWrite(pos, n int) bool {
	return pos >= 0 && pos < n
}
