package lazy

import (
	"cmp"
	"slices"
	"unicode"

	"github.com/joshuapare/lazystring/internal/shared"
)

// Element is the set of element types a string value can hold.
type Element = shared.Element

// Traits is the comparison policy of a string value. Implementations are
// stateless; the zero value of the implementing type is used.
type Traits[E Element] interface {
	// Length returns the number of elements before the first zero element,
	// or len(s) if there is none.
	Length(s []E) int
	// Copy copies min(len(dst), len(src)) elements and returns the count.
	Copy(dst, src []E) int
	// Compare orders the first n elements of a and b, returning -1, 0 or +1.
	// Both slices must hold at least n elements.
	Compare(a, b []E, n int) int
	// Assign sets the first n elements of dst to e.
	Assign(dst []E, n int, e E)
}

// Exact compares elements by value.
type Exact[E Element] struct{}

func (Exact[E]) Length(s []E) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

func (Exact[E]) Copy(dst, src []E) int {
	return copy(dst, src)
}

func (Exact[E]) Compare(a, b []E, n int) int {
	return slices.Compare(a[:n], b[:n])
}

func (Exact[E]) Assign(dst []E, n int, e E) {
	for i := range dst[:n] {
		dst[i] = e
	}
}

// Folding compares bytes after upper-casing ASCII letters, like toupper in
// the C locale. Stored content keeps its case.
type Folding struct {
	Exact[byte]
}

func (Folding) Compare(a, b []byte, n int) int {
	return slices.CompareFunc(a[:n], b[:n], func(x, y byte) int {
		return cmp.Compare(upperASCII(x), upperASCII(y))
	})
}

// WideFolding compares UTF-16 code units after simple upper-casing. Surrogate
// halves are compared as they are.
type WideFolding struct {
	Exact[uint16]
}

func (WideFolding) Compare(a, b []uint16, n int) int {
	return slices.CompareFunc(a[:n], b[:n], func(x, y uint16) int {
		return cmp.Compare(upperUnit(x), upperUnit(y))
	})
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func upperUnit(u uint16) uint16 {
	if u < 0x80 {
		return uint16(upperASCII(byte(u)))
	}
	if u >= 0xD800 && u <= 0xDFFF {
		return u
	}
	r := unicode.ToUpper(rune(u))
	if r > 0xFFFF {
		return u
	}
	return uint16(r)
}
