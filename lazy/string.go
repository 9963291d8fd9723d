package lazy

import (
	"cmp"

	"github.com/joshuapare/lazystring/internal/buf"
	"github.com/joshuapare/lazystring/internal/shared"
)

// Basic is a copy-on-write string of E elements compared under policy P.
//
// Use values through pointers. Copy and Assign share storage; every other
// way of producing a value allocates its own. A Basic copied by value
// (b := *a) does not account for the storage it shares and panics on first
// use.
type Basic[E Element, P Traits[E]] struct {
	addr *Basic[E, P] // self-pointer to detect copies by value
	buf  *shared.Buffer[E]
	size int
}

// New returns an empty string.
func New[E Element, P Traits[E]]() *Basic[E, P] {
	return &Basic[E, P]{buf: shared.New[E](0)}
}

// FromRaw returns a string holding a copy of the zero-terminated raw
// sequence.
func FromRaw[E Element, P Traits[E]](raw []E) *Basic[E, P] {
	s := &Basic[E, P]{}
	s.AssignRaw(raw)
	return s
}

// Repeat returns a string of n copies of e.
func Repeat[E Element, P Traits[E]](n int, e E) *Basic[E, P] {
	if n < 0 {
		panic("lazy: negative repeat count")
	}
	var p P
	b := shared.New[E](n)
	p.Assign(b.Data(), n, e)
	return &Basic[E, P]{buf: b, size: n}
}

// copyCheck binds s to its address on first use and panics when s turns
// out to be a by-value copy of another Basic.
func (s *Basic[E, P]) copyCheck() {
	if s.addr == nil {
		s.addr = s
	} else if s.addr != s {
		panic("lazy: illegal use of Basic copied by value")
	}
}

// storage returns the current buffer, giving the zero value its private
// empty buffer on first use.
func (s *Basic[E, P]) storage() *shared.Buffer[E] {
	s.copyCheck()
	if s.buf == nil {
		s.buf = shared.New[E](0)
		s.size = 0
	}
	return s.buf
}

func (s *Basic[E, P]) data() []E {
	return s.storage().Data()
}

func (s *Basic[E, P]) content() []E {
	return s.storage().Content()
}

// rebind drops the current reference and takes over b, which the caller
// already holds a reference to.
func (s *Basic[E, P]) rebind(b *shared.Buffer[E], n int) {
	s.copyCheck()
	if s.buf != nil {
		s.buf.Release()
	}
	s.buf = b
	s.size = n
}

// Len returns the number of elements, excluding the terminator.
func (s *Basic[E, P]) Len() int {
	return s.size
}

// Empty reports whether the string has no elements.
func (s *Basic[E, P]) Empty() bool {
	return s.size == 0
}

// Copy returns a new value sharing s's storage.
func (s *Basic[E, P]) Copy() *Basic[E, P] {
	return &Basic[E, P]{buf: s.storage().Retain(), size: s.size}
}

// Assign makes s share o's storage.
func (s *Basic[E, P]) Assign(o *Basic[E, P]) *Basic[E, P] {
	if s == o {
		return s
	}
	s.rebind(o.storage().Retain(), o.size)
	return s
}

// AssignRaw replaces the content of s with a copy of raw. The storage is
// always reallocated, even when s holds it alone.
func (s *Basic[E, P]) AssignRaw(raw []E) *Basic[E, P] {
	var p P
	n := p.Length(raw)
	b := shared.New[E](n)
	p.Copy(b.Data(), raw[:n])
	s.rebind(b, n)
	return s
}

// Release gives up s's reference to its storage and leaves s empty.
func (s *Basic[E, P]) Release() {
	s.copyCheck()
	if s.buf != nil {
		s.buf.Release()
		s.buf = nil
	}
	s.size = 0
}

// Clear resets s to a fresh empty string.
func (s *Basic[E, P]) Clear() {
	s.rebind(shared.New[E](0), 0)
}

// Swap exchanges the contents of s and o without touching either storage.
func (s *Basic[E, P]) Swap(o *Basic[E, P]) {
	s.copyCheck()
	o.copyCheck()
	s.buf, o.buf = o.buf, s.buf
	s.size, o.size = o.size, s.size
}

// CStr returns the storage including its terminator. Callers must not
// modify the returned slice; it may be shared with other values.
func (s *Basic[E, P]) CStr() []E {
	return s.data()
}

// Equal reports whether s and o hold the same elements under P.
func (s *Basic[E, P]) Equal(o *Basic[E, P]) bool {
	if s.size != o.size {
		return false
	}
	if s.storage() == o.storage() {
		return true
	}
	var p P
	return p.Compare(s.data(), o.data(), s.size) == 0
}

// EqualRaw reports whether s holds the elements of the zero-terminated raw
// sequence under P.
func (s *Basic[E, P]) EqualRaw(raw []E) bool {
	var p P
	if p.Length(raw) != s.size {
		return false
	}
	return p.Compare(s.data(), raw, s.size) == 0
}

// NotEqual is the negation of Equal.
func (s *Basic[E, P]) NotEqual(o *Basic[E, P]) bool {
	return !s.Equal(o)
}

// NotEqualRaw is the negation of EqualRaw.
func (s *Basic[E, P]) NotEqualRaw(raw []E) bool {
	return !s.EqualRaw(raw)
}

// Less applies the prefix ordering described in the package documentation
// with o as the right operand.
func (s *Basic[E, P]) Less(o *Basic[E, P]) bool {
	return s.lessPrefix(o.data(), o.size)
}

// LessRaw is Less with a zero-terminated raw sequence as the right operand.
func (s *Basic[E, P]) LessRaw(raw []E) bool {
	var p P
	return s.lessPrefix(raw, p.Length(raw))
}

func (s *Basic[E, P]) lessPrefix(other []E, r int) bool {
	var p P
	if r <= s.size {
		return p.Compare(s.data(), other, r) < 0
	}
	return p.Compare(s.data(), other, s.size) <= 0
}

// Compare orders s and o lexicographically under P, shorter first on a
// common prefix. It returns -1, 0 or +1.
func (s *Basic[E, P]) Compare(o *Basic[E, P]) int {
	var p P
	if c := p.Compare(s.data(), o.data(), min(s.size, o.size)); c != 0 {
		return c
	}
	return cmp.Compare(s.size, o.size)
}

// join allocates a new value holding a followed by b.
func join[E Element, P Traits[E]](a, b []E) *Basic[E, P] {
	var p P
	n := buf.SumLen(len(a), len(b))
	nb := shared.New[E](n)
	p.Copy(nb.Data(), a)
	p.Copy(nb.Data()[len(a):], b)
	return &Basic[E, P]{buf: nb, size: n}
}

// rawContent returns the counted prefix of a raw operand.
func rawContent[E Element, P Traits[E]](raw []E) []E {
	var p P
	return raw[:p.Length(raw)]
}

// Concat returns a new string holding s followed by o.
func (s *Basic[E, P]) Concat(o *Basic[E, P]) *Basic[E, P] {
	return join[E, P](s.content(), o.content())
}

// ConcatRaw returns a new string holding s followed by raw.
func (s *Basic[E, P]) ConcatRaw(raw []E) *Basic[E, P] {
	return join[E, P](s.content(), rawContent[E, P](raw))
}

// ConcatElem returns a new string holding s followed by e.
func (s *Basic[E, P]) ConcatElem(e E) *Basic[E, P] {
	return join[E, P](s.content(), []E{e})
}

// Append replaces s with s followed by o. Like every append it reallocates.
func (s *Basic[E, P]) Append(o *Basic[E, P]) *Basic[E, P] {
	r := s.Concat(o)
	s.rebind(r.buf, r.size)
	return s
}

// AppendRaw replaces s with s followed by raw.
func (s *Basic[E, P]) AppendRaw(raw []E) *Basic[E, P] {
	r := s.ConcatRaw(raw)
	s.rebind(r.buf, r.size)
	return s
}

// AppendElem replaces s with s followed by e.
func (s *Basic[E, P]) AppendElem(e E) *Basic[E, P] {
	r := s.ConcatElem(e)
	s.rebind(r.buf, r.size)
	return s
}
