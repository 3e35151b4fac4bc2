package nonmax

import "encoding/json"

// Option is a value-or-absent container for the wrapper types in this
// package.
//
// It carries no tag byte: the absent state is the wrapper's zero storage
// pattern, which the checked constructors can never produce. As a result
// Option[NonMax[T]] (and every other wrapper) occupies exactly the storage
// of the bare underlying integer, which matters when an optional integer is
// kept in a large slice or a hot struct.
//
// The flip side of the missing tag: Some of an invalid wrapper (the zero
// value, or an unchecked construction from the excluded boundary) is
// indistinguishable from None. That is the contract-violation state the
// wrapper constructors document.
type Option[N comparable] struct {
	value N
}

// Some returns an Option holding v.
func Some[N comparable](v N) Option[N] {
	return Option[N]{value: v}
}

// None returns the absent Option.
func None[N comparable]() Option[N] {
	return Option[N]{}
}

// Present reports whether the Option holds a value.
func (o Option[N]) Present() bool {
	var zero N
	return o.value != zero
}

// Get returns the held value and whether one is present.
func (o Option[N]) Get() (N, bool) {
	return o.value, o.Present()
}

// OrElse returns the held value, or def when absent.
func (o Option[N]) OrElse(def N) N {
	if o.Present() {
		return o.value
	}
	return def
}

// MarshalJSON encodes the held value, or null when absent.
func (o Option[N]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as absent and delegates anything else to the
// held type's unmarshaler.
func (o *Option[N]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		var zero N
		o.value = zero
		return nil
	}
	return json.Unmarshal(data, &o.value)
}
