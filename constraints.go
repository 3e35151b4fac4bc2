package nonmax

// Signed covers the signed primitive integer kinds.
//
// The constraints are redefined here (mirroring internal/codec) so that
// callers can write generic code over the wrapper types without reaching
// for golang.org/x/exp/constraints.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers the unsigned primitive integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer covers all primitive integer kinds usable as the underlying type
// of a NonMax or NonMin wrapper.
type Integer interface {
	Signed | Unsigned
}
