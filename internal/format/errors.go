package format

import "errors"

var (
	// ErrOddLength indicates UTF-16LE input whose byte length is not even.
	ErrOddLength = errors.New("format: odd UTF-16LE length")
	// ErrUnmappable indicates text with a character the target encoding lacks.
	ErrUnmappable = errors.New("format: character not representable")
)
