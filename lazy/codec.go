package lazy

import (
	"fmt"

	"github.com/joshuapare/lazystring/internal/format"
)

// Decode1252 interprets narrow content as Windows-1252 and returns it as
// UTF-8.
func Decode1252[P Traits[byte]](s *Basic[byte, P]) (string, error) {
	text, err := format.Decode1252(s.text())
	if err != nil {
		return "", fmt.Errorf("lazy: %w", err)
	}
	return text, nil
}

// Encode1252 returns a narrow string holding text encoded as Windows-1252.
// Text with characters outside the code page is rejected.
func Encode1252[P Traits[byte]](text string) (*Basic[byte, P], error) {
	b, err := format.Encode1252(text)
	if err != nil {
		return nil, fmt.Errorf("lazy: %w", err)
	}
	return FromRaw[byte, P](b), nil
}

// FromUTF16LE returns a wide string from UTF-16LE bytes. Content ends at the
// first zero code unit; trailing bytes after it are ignored.
func FromUTF16LE[P Traits[uint16]](b []byte) (*Basic[uint16, P], error) {
	units, err := format.UnpackUTF16LE(b)
	if err != nil {
		return nil, fmt.Errorf("lazy: %w", err)
	}
	return FromRaw[uint16, P](units), nil
}

// UTF16LE returns wide content as UTF-16LE bytes without a terminator.
func UTF16LE[P Traits[uint16]](s *Basic[uint16, P]) []byte {
	return format.PackUTF16LE(s.content())
}
