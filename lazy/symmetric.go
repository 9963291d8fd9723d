package lazy

// Free forms of the comparison and concatenation operations with a raw
// sequence or single element as the left operand.

// RawEqual reports whether the zero-terminated raw sequence equals s.
func RawEqual[E Element, P Traits[E]](raw []E, s *Basic[E, P]) bool {
	return s.EqualRaw(raw)
}

// RawNotEqual is the negation of RawEqual.
func RawNotEqual[E Element, P Traits[E]](raw []E, s *Basic[E, P]) bool {
	return s.NotEqualRaw(raw)
}

// RawLess reports raw < s as the negation of both s < raw and s == raw.
func RawLess[E Element, P Traits[E]](raw []E, s *Basic[E, P]) bool {
	return !s.LessRaw(raw) && !s.EqualRaw(raw)
}

// RawConcat returns a new string holding raw followed by s.
func RawConcat[E Element, P Traits[E]](raw []E, s *Basic[E, P]) *Basic[E, P] {
	return join[E, P](rawContent[E, P](raw), s.content())
}

// ElemConcat returns a new string holding e followed by s.
func ElemConcat[E Element, P Traits[E]](e E, s *Basic[E, P]) *Basic[E, P] {
	return join[E, P]([]E{e}, s.content())
}

// Swap exchanges the contents of a and b.
func Swap[E Element, P Traits[E]](a, b *Basic[E, P]) {
	a.Swap(b)
}
