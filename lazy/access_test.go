package lazy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	s := NewString("abc")
	for i, want := range []byte("abc") {
		got, err := s.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestAt_Boundary(t *testing.T) {
	s := NewString("abc")

	term, err := s.At(s.Len())
	require.NoError(t, err)
	require.Equal(t, byte(0), term)

	_, err = s.At(s.Len() + 1)
	require.ErrorIs(t, err, ErrBadIndex)

	_, err = s.At(-1)
	require.ErrorIs(t, err, ErrBadIndex)
}

func TestAt_Empty(t *testing.T) {
	var s String
	term, err := s.At(0)
	require.NoError(t, err)
	require.Equal(t, byte(0), term)

	_, err = s.At(1)
	require.ErrorIs(t, err, ErrBadIndex)
}

func TestMustAt(t *testing.T) {
	s := NewString("xy")
	require.Equal(t, byte('y'), s.MustAt(1))
	require.Panics(t, func() { s.MustAt(3) })
}

func TestSet_ExclusiveInPlace(t *testing.T) {
	s := NewString("hello")
	before := s.storage()
	data := s.CStr()

	require.NoError(t, s.Set(0, 'J'))
	require.Same(t, before, s.storage())
	require.Same(t, &data[0], &s.CStr()[0])
	require.True(t, s.EqualRaw([]byte("Jello")))
}

func TestSet_SharedClonesFirst(t *testing.T) {
	a := NewString("hello")
	b := a.Copy()
	shared := a.storage()

	require.NoError(t, a.Set(0, 'H'))
	require.True(t, b.EqualRaw([]byte("hello")))
	require.True(t, a.EqualRaw([]byte("Hello")))
	require.False(t, sameStorage(a, b))
	require.Same(t, shared, b.storage())
	require.Equal(t, 1, refs(a))
	require.Equal(t, 1, refs(b))
	require.Equal(t, []byte("Hello\x00"), a.CStr())
}

func TestSet_AfterCloneIsInPlace(t *testing.T) {
	a := NewString("abc")
	b := a.Copy()
	require.NoError(t, a.Set(1, 'X'))
	owned := a.storage()

	require.NoError(t, a.Set(2, 'Y'))
	require.Same(t, owned, a.storage())
	require.True(t, a.EqualRaw([]byte("aXY")))
	require.True(t, b.EqualRaw([]byte("abc")))
}

func TestSet_SharedAmongMany(t *testing.T) {
	a := NewString("abc")
	b := a.Copy()
	c := a.Copy()

	require.NoError(t, b.Set(0, 'B'))
	require.Equal(t, 2, refs(a))
	require.True(t, sameStorage(a, c))
	require.True(t, a.EqualRaw([]byte("abc")))
	require.True(t, b.EqualRaw([]byte("Bbc")))
}

func TestSet_OutOfRange(t *testing.T) {
	a := NewString("abc")
	b := a.Copy()

	for _, i := range []int{-1, 3, 4} {
		err := a.Set(i, 'Z')
		require.ErrorIs(t, err, ErrBadIndex, "index %d", i)
	}
	require.True(t, sameStorage(a, b), "failed writes must not clone")
	require.Equal(t, []byte("abc\x00"), a.CStr())
}

func TestSet_Wide(t *testing.T) {
	a := NewWString("abc")
	b := a.Copy()
	require.NoError(t, a.Set(2, 0x00E7))
	require.Equal(t, "abç", a.String())
	require.Equal(t, "abc", b.String())
}

func TestSet_FoldingKeepsCase(t *testing.T) {
	s := NewIString("abc")
	require.NoError(t, s.Set(0, 'A'))
	require.Equal(t, []byte("Abc\x00"), s.CStr())
	require.True(t, s.EqualRaw([]byte("abc")))
}
