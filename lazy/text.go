package lazy

import (
	"io"

	"github.com/joshuapare/lazystring/internal/format"
)

// text returns the content up to the first zero element, which is what a
// reader of the terminated storage sees.
func (s *Basic[E, P]) text() []E {
	var p P
	c := s.content()
	return c[:p.Length(c)]
}

// WriteTo writes the content to w unquoted and unescaped. Narrow content is
// written as is; wide content is written as UTF-8.
func (s *Basic[E, P]) WriteTo(w io.Writer) (int64, error) {
	switch c := any(s.text()).(type) {
	case []byte:
		n, err := w.Write(c)
		return int64(n), err
	case []uint16:
		return format.WriteWide(w, c)
	}
	panic("lazy: unsupported element type")
}

// String implements fmt.Stringer with the same text WriteTo produces.
func (s *Basic[E, P]) String() string {
	switch c := any(s.text()).(type) {
	case []byte:
		return string(c)
	case []uint16:
		// Unpaired surrogates decode to U+FFFD rather than failing.
		text, _ := format.WideToUTF8(c)
		return text
	}
	panic("lazy: unsupported element type")
}
