package nonmax

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/nonmax/internal/codec"
)

// NonMin is a fixed-width integer that cannot equal the minimum value of
// its underlying type T.
//
// Storage and layout guarantees match NonMax, with the exclusion at the
// other end of the range: values are stored XOR-ed with the excluded
// minimum, valid instances never hold the all-zero pattern, and
// Option[NonMin[T]] is exactly as large as T.
//
// For unsigned T the excluded minimum is 0, so NonMin behaves like the
// classic non-zero integer types and the stored pattern equals the value
// itself.
//
// The zero value of NonMin is NOT valid: it decodes to the excluded
// minimum. Always build instances through NewNonMin, MustNonMin or
// UncheckedNonMin.
type NonMin[T Integer] struct {
	bits T
}

// NewNonMin returns a NonMin wrapping v. ok is false if v equals the
// minimum value of T, which NonMin cannot represent.
func NewNonMin[T Integer](v T) (n NonMin[T], ok bool) {
	if v == codec.MinOf[T]() {
		return NonMin[T]{}, false
	}
	return UncheckedNonMin(v), true
}

// MustNonMin is like NewNonMin but panics if v equals the minimum value
// of T. Intended for constants and initialization code.
func MustNonMin[T Integer](v T) NonMin[T] {
	n, ok := NewNonMin(v)
	if !ok {
		panic(fmt.Sprintf("nonmax: MustNonMin(%d): %v", v, ErrReservedValue))
	}
	return n
}

// UncheckedNonMin constructs a NonMin without checking v against the
// excluded minimum.
//
// Contract: v must not equal the minimum value of T. Violating this yields
// an instance with a zero storage pattern, which decodes back to the
// excluded minimum and is indistinguishable from an absent Option. No
// runtime check catches this.
func UncheckedNonMin[T Integer](v T) NonMin[T] {
	return NonMin[T]{bits: codec.Encode(v, codec.MinOf[T]())}
}

// Get returns the wrapped integer value.
func (n NonMin[T]) Get() T {
	return codec.Decode(n.bits, codec.MinOf[T]())
}

// Bits returns the raw storage pattern.
//
// For any instance built through a checked constructor the result is
// non-zero; a zero result identifies the contract-violation state (zero
// value or unchecked construction from the excluded minimum).
func (n NonMin[T]) Bits() T {
	return n.bits
}

// Compare orders by wrapped value and returns -1, 0 or +1.
func (n NonMin[T]) Compare(o NonMin[T]) int {
	return cmp.Compare(n.Get(), o.Get())
}

// Less reports whether n's wrapped value is smaller than o's.
func (n NonMin[T]) Less(o NonMin[T]) bool {
	return n.Get() < o.Get()
}

// Min returns the smallest value representable by NonMin[T]: one above the
// minimum of T.
func (NonMin[T]) Min() T {
	return codec.MinOf[T]() + 1
}

// Max returns the largest value representable by NonMin[T], which is the
// maximum of T itself (the exclusion sits at the opposite end).
func (NonMin[T]) Max() T {
	return codec.MaxOf[T]()
}

// String implements fmt.Stringer, printing the wrapped value in decimal.
func (n NonMin[T]) String() string {
	return fmt.Sprintf("%d", n.Get())
}
