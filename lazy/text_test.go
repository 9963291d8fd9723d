package lazy

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTo_Narrow(t *testing.T) {
	var out bytes.Buffer
	n, err := NewString(`say "hi"\n`).WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, `say "hi"\n`, out.String())
	require.Equal(t, int64(out.Len()), n)
}

func TestWriteTo_StopsAtEmbeddedZero(t *testing.T) {
	s := NewString("ab").ConcatElem(0).ConcatRaw([]byte("cd"))
	require.Equal(t, 5, s.Len())

	var out bytes.Buffer
	_, err := s.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, "ab", out.String())
}

func TestWriteTo_Wide(t *testing.T) {
	var out bytes.Buffer
	n, err := NewWString("grüße 😀").WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, "grüße 😀", out.String())
	require.Equal(t, int64(len("grüße 😀")), n)
}

func TestWriteTo_Empty(t *testing.T) {
	var out bytes.Buffer
	var s WString
	n, err := s.WriteTo(&out)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, out.String())
}

func TestString_Formatting(t *testing.T) {
	require.Equal(t, "hello", fmt.Sprint(NewString("hello")))
	require.Equal(t, "[Hi]", fmt.Sprintf("[%s]", NewIString("Hi")))
	require.Equal(t, "wide", fmt.Sprintf("%v", NewWString("wide")))
	require.Equal(t, "", New[uint16, WideFolding]().String())
}

func TestDecode1252(t *testing.T) {
	s := FromRaw[byte, Exact[byte]]([]byte{0x77, 0x65, 0x69, 0x72, 0x64, 0x99})
	text, err := Decode1252(s)
	require.NoError(t, err)
	require.Equal(t, "weird™", text)
}

func TestEncode1252(t *testing.T) {
	s, err := Encode1252[Folding]("Café")
	require.NoError(t, err)
	require.Equal(t, []byte{'C', 'a', 'f', 0xE9, 0}, s.CStr())
	require.True(t, s.EqualRaw([]byte{'c', 'A', 'F', 0xE9}))

	_, err = Encode1252[Exact[byte]]("日本")
	require.Error(t, err)
}

func TestFromUTF16LE(t *testing.T) {
	payload := []byte{'H', 0, 'i', 0, 0, 0, 'x', 0}
	s, err := FromUTF16LE[Exact[uint16]](payload)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	require.Equal(t, "Hi", s.String())
	require.Equal(t, []byte{'H', 0, 'i', 0}, UTF16LE(s))

	_, err = FromUTF16LE[WideFolding]([]byte{'H'})
	require.Error(t, err)
}
