package nonmax

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/nonmax/internal/codec"
)

// NonMax is a fixed-width integer that cannot equal the maximum value of
// its underlying type T.
//
// Internally the value is stored XOR-ed with the excluded maximum, so a
// valid instance never holds the all-zero bit pattern. That spare pattern
// is what lets Option reuse it as its "absent" marker without a tag byte:
// Option[NonMax[T]] is exactly as large as T.
//
// The zero value of NonMax is NOT valid: it decodes to the excluded
// maximum, the same state produced by UncheckedNonMax(max). Always build
// instances through NewNonMax, MustNonMax or UncheckedNonMax.
type NonMax[T Integer] struct {
	bits T
}

// NewNonMax returns a NonMax wrapping v. ok is false if v equals the
// maximum value of T, which NonMax cannot represent.
func NewNonMax[T Integer](v T) (n NonMax[T], ok bool) {
	if v == codec.MaxOf[T]() {
		return NonMax[T]{}, false
	}
	return UncheckedNonMax(v), true
}

// MustNonMax is like NewNonMax but panics if v equals the maximum value
// of T. Intended for constants and initialization code.
func MustNonMax[T Integer](v T) NonMax[T] {
	n, ok := NewNonMax(v)
	if !ok {
		panic(fmt.Sprintf("nonmax: MustNonMax(%d): %v", v, ErrReservedValue))
	}
	return n
}

// UncheckedNonMax constructs a NonMax without checking v against the
// excluded maximum.
//
// Contract: v must not equal the maximum value of T. Violating this yields
// an instance with a zero storage pattern, which decodes back to the
// excluded maximum and is indistinguishable from an absent Option. No
// runtime check catches this.
func UncheckedNonMax[T Integer](v T) NonMax[T] {
	return NonMax[T]{bits: codec.Encode(v, codec.MaxOf[T]())}
}

// Get returns the wrapped integer value.
func (n NonMax[T]) Get() T {
	return codec.Decode(n.bits, codec.MaxOf[T]())
}

// Bits returns the raw storage pattern.
//
// For any instance built through a checked constructor the result is
// non-zero; a zero result identifies the contract-violation state (zero
// value or unchecked construction from the excluded maximum).
func (n NonMax[T]) Bits() T {
	return n.bits
}

// Compare orders by wrapped value and returns -1, 0 or +1.
func (n NonMax[T]) Compare(o NonMax[T]) int {
	return cmp.Compare(n.Get(), o.Get())
}

// Less reports whether n's wrapped value is smaller than o's.
func (n NonMax[T]) Less(o NonMax[T]) bool {
	return n.Get() < o.Get()
}

// Min returns the smallest value representable by NonMax[T], which is the
// minimum of T itself (the exclusion sits at the opposite end).
func (NonMax[T]) Min() T {
	return codec.MinOf[T]()
}

// Max returns the largest value representable by NonMax[T]: one below the
// maximum of T.
func (NonMax[T]) Max() T {
	return codec.MaxOf[T]() - 1
}

// String implements fmt.Stringer, printing the wrapped value in decimal.
func (n NonMax[T]) String() string {
	return fmt.Sprintf("%d", n.Get())
}
