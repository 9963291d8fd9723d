package format

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf16LE is the wide-content byte encoding. Content never carries a BOM.
var utf16LE encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// WideToUTF8 converts UTF-16 code units to UTF-8. Unpaired surrogates become
// U+FFFD.
func WideToUTF8(units []uint16) (string, error) {
	out, err := utf16LE.NewDecoder().Bytes(PackUTF16LE(units))
	if err != nil {
		return "", fmt.Errorf("format: decode UTF-16LE: %w", err)
	}
	return string(out), nil
}

// WriteWide streams code units to w as UTF-8 and returns the number of bytes
// written to w.
func WriteWide(w io.Writer, units []uint16) (int64, error) {
	cw := &countingWriter{w: w}
	tw := transform.NewWriter(cw, utf16LE.NewDecoder())
	if _, err := tw.Write(PackUTF16LE(units)); err != nil {
		return cw.n, err
	}
	if err := tw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Decode1252 converts Windows-1252 bytes to UTF-8.
func Decode1252(data []byte) (string, error) {
	if isASCII(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("format: decode Windows-1252: %w", err)
	}
	return string(decoded), nil
}

// Encode1252 converts UTF-8 text to Windows-1252 bytes. Characters outside
// the code page yield ErrUnmappable.
func Encode1252(s string) ([]byte, error) {
	if isASCII([]byte(s)) {
		return []byte(s), nil
	}
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmappable, err)
	}
	return encoded, nil
}

// isASCII checks if all bytes in data are ASCII (< 0x80).
// ASCII characters have the same encoding in Windows-1252 and UTF-8.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
