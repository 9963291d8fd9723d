// Package format holds the byte-level encodings of string content: UTF-16LE
// packing of wide code units and the transcoders that turn narrow and wide
// content into UTF-8 text.
package format

import "encoding/binary"

// PutUnit stores code unit v as the two little-endian bytes b[off:off+2].
func PutUnit(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// UnitAt loads the code unit held little-endian in b[off:off+2].
func UnitAt(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// PackUTF16LE lays out code units as UTF-16LE bytes.
func PackUTF16LE(units []uint16) []byte {
	out := make([]byte, len(units)*2)
	for i, u := range units {
		PutUnit(out, i*2, u)
	}
	return out
}

// UnpackUTF16LE is the inverse of PackUTF16LE.
func UnpackUTF16LE(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = UnitAt(b, i*2)
	}
	return units, nil
}
