package lazy

import (
	"fmt"

	"github.com/joshuapare/lazystring/internal/buf"
)

// At returns the element at position i. Position Len() is readable and
// yields the terminator.
func (s *Basic[E, P]) At(i int) (E, error) {
	if !buf.InRead(i, s.size) {
		var zero E
		return zero, fmt.Errorf("%w: read at %d, length %d", ErrBadIndex, i, s.size)
	}
	return s.data()[i], nil
}

// MustAt is like At but panics on a bad index.
func (s *Basic[E, P]) MustAt(i int) E {
	e, err := s.At(i)
	if err != nil {
		panic(err)
	}
	return e
}

// Set writes e at position i, which must be below Len(). The write happens
// in place when s holds its storage alone; otherwise s first moves to a
// private copy and the storage it shared is left as it was.
func (s *Basic[E, P]) Set(i int, e E) error {
	if !buf.InWrite(i, s.size) {
		return fmt.Errorf("%w: write at %d, length %d", ErrBadIndex, i, s.size)
	}
	var p P
	b := s.storage()
	if b.Unique() {
		p.Assign(b.Data()[i:], 1, e)
		return nil
	}
	nb := b.Clone()
	p.Assign(nb.Data()[i:], 1, e)
	s.rebind(nb, s.size)
	return nil
}
