// Package codec implements the boundary-excluding bit transform that
// underlies every wrapper type in this module.
//
// A wrapper excludes exactly one boundary value (the minimum or the maximum
// of its underlying type) and stores values XOR-ed with that boundary's own
// bit pattern. Because x^x == 0, the excluded value is the only input that
// maps to the all-zero pattern, so a valid instance never stores zero and
// the zero pattern is free to act as an "absent" marker.
package codec

// Signed covers the signed primitive integer kinds.
//
// Redefined locally instead of importing golang.org/x/exp/constraints to
// avoid the extra dependency for three interface declarations.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers the unsigned primitive integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer covers all primitive integer kinds.
type Integer interface {
	Signed | Unsigned
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	return ^T(0) < 0
}

// BitWidth returns the width of T in bits.
func BitWidth[T Integer]() int {
	var bits int
	for v := T(1); v != 0; v <<= 1 {
		bits++
	}
	return bits
}

// MinOf returns the minimum representable value of T.
func MinOf[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	// Sign bit only.
	return ^T(0) << (BitWidth[T]() - 1)
}

// MaxOf returns the maximum representable value of T.
//
// Complementing the minimum yields the maximum for both signednesses:
// ^0 is all ones for unsigned types, and in two's complement the
// complement of the sign-bit-only pattern is 0111...1.
func MaxOf[T Integer]() T {
	return ^MinOf[T]()
}

// Encode maps an application value onto its storage pattern.
//
// Encode is a total bijection over the whole W-bit domain. Go's ^ operator
// acts on the two's-complement pattern for signed operands, so no unsigned
// reinterpretation step is needed. Encode(sentinel, sentinel) == 0, and no
// other input maps to zero.
func Encode[T Integer](v, sentinel T) T {
	return v ^ sentinel
}

// Decode maps a storage pattern back to its application value.
// XOR with a fixed mask is self-inverse, so Decode is Encode's exact inverse.
func Decode[T Integer](s, sentinel T) T {
	return s ^ sentinel
}
