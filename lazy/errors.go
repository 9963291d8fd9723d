package lazy

import "errors"

var (
	// ErrBadIndex indicates a read or write position outside the value.
	ErrBadIndex = errors.New("lazy: index out of range")
)
