// Package lazy provides copy-on-write string values.
//
// # Overview
//
// A Basic string value is a handle to reference-counted, zero-terminated
// storage plus a cached length. Copying a value shares the storage; the
// storage is duplicated only when a write goes through a value whose storage
// is also held by someone else. Programs that copy, pass around and compare
// strings far more often than they write single elements pay for one
// allocation per distinct content instead of one per copy.
//
// # Key Types
//
//   - Basic[E, P]: the value type, generic over the element type E and the
//     comparison policy P
//   - String, WString: narrow (byte) and wide (UTF-16 code unit) strings
//     with exact comparison
//   - IString, IWString: the same element types with case-folding comparison
//   - Exact, Folding, WideFolding: the comparison policies
//
// # Sharing
//
// Go assignment copies pointers, not values, so sharing is explicit:
//
//	a := lazy.NewString("hello")
//	b := a.Copy()         // shares a's storage, no allocation
//	_ = a.Set(0, 'H')     // a's storage is shared: a gets its own copy first
//	fmt.Println(a, b)     // Hello hello
//
// A Basic must not be copied by value (b := *a); the copy panics on first
// use.
// Release gives a value's reference back. A value that is simply dropped
// keeps its storage counted as shared, which costs at most one extra copy on
// a later write through another holder and never exposes a write to a
// sharer.
//
// The zero value is an empty string ready to use.
//
// # Raw Operands
//
// Operations taking a raw []E operand treat it as a zero-terminated
// sequence: only the elements before the first zero element count, or the
// whole slice when it has none. Passing nil is the same as passing an empty
// sequence.
//
// # Ordering
//
// Less uses a prefix rule: with r the length of the
// right operand, the result is "less" when the first min(r, Len()) elements
// compare negative, or when the receiver is the shorter one and its elements
// compare non-positive. The rule works out to lexicographic order with the
// shorter of two equal prefixes first, which is also what Compare returns as
// a three-way result.
//
// # Thread Safety
//
// Values are not safe for concurrent use, and neither are two values that
// share storage: the holder count is not atomic. Give each goroutine its
// own deep copy or serialize access externally.
package lazy
