package lazy

import "unicode/utf16"

type (
	// String is a narrow string with exact comparison.
	String = Basic[byte, Exact[byte]]
	// WString is a wide string of UTF-16 code units with exact comparison.
	WString = Basic[uint16, Exact[uint16]]
	// IString is a narrow string compared without regard to ASCII case.
	IString = Basic[byte, Folding]
	// IWString is a wide string compared without regard to case.
	IWString = Basic[uint16, WideFolding]
)

// NewString returns a String holding the bytes of s up to its first NUL.
func NewString(s string) *String {
	return FromRaw[byte, Exact[byte]]([]byte(s))
}

// NewIString returns an IString holding the bytes of s up to its first NUL.
func NewIString(s string) *IString {
	return FromRaw[byte, Folding]([]byte(s))
}

// NewWString returns a WString holding s encoded as UTF-16, up to its first
// NUL.
func NewWString(s string) *WString {
	return FromRaw[uint16, Exact[uint16]](utf16.Encode([]rune(s)))
}

// NewIWString is NewWString for IWString.
func NewIWString(s string) *IWString {
	return FromRaw[uint16, WideFolding](utf16.Encode([]rune(s)))
}
