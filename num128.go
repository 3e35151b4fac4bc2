package nonmax

import (
	"encoding/json"
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// 128-bit variants. Go has no primitive 128-bit integer, so these wrap
// github.com/shabbyrobe/go-num's U128/I128 and keep the encoded pattern as
// two raw uint64 words. The codec is the same XOR-with-boundary transform
// applied word-wise, and the same layout guarantee holds: valid instances
// never have both words zero, so Option over any of these types stays at
// 16 bytes.

const (
	allOnes = ^uint64(0)
	signBit = uint64(1) << 63
)

// NonMaxU128 is a 128-bit unsigned integer that cannot be 2^128-1.
type NonMaxU128 struct {
	hi, lo uint64
}

// NewNonMaxU128 returns a NonMaxU128 wrapping v. ok is false if v equals
// the maximum 128-bit unsigned value.
func NewNonMaxU128(v num.U128) (n NonMaxU128, ok bool) {
	hi, lo := v.Raw()
	if hi == allOnes && lo == allOnes {
		return NonMaxU128{}, false
	}
	return NonMaxU128{hi: hi ^ allOnes, lo: lo ^ allOnes}, true
}

// MustNonMaxU128 is like NewNonMaxU128 but panics on the excluded maximum.
func MustNonMaxU128(v num.U128) NonMaxU128 {
	n, ok := NewNonMaxU128(v)
	if !ok {
		panic(fmt.Sprintf("nonmax: MustNonMaxU128(%s): %v", v, ErrReservedValue))
	}
	return n
}

// UncheckedNonMaxU128 constructs a NonMaxU128 without checking v against
// the excluded maximum. Contract: v must not equal 2^128-1; violating it
// produces the zero storage pattern (see NonMax).
func UncheckedNonMaxU128(v num.U128) NonMaxU128 {
	hi, lo := v.Raw()
	return NonMaxU128{hi: hi ^ allOnes, lo: lo ^ allOnes}
}

// Get returns the wrapped value.
func (n NonMaxU128) Get() num.U128 {
	return num.U128FromRaw(n.hi^allOnes, n.lo^allOnes)
}

// Compare orders by wrapped value and returns -1, 0 or +1.
func (n NonMaxU128) Compare(o NonMaxU128) int {
	return n.Get().Cmp(o.Get())
}

// Min returns the smallest representable value, 0.
func (NonMaxU128) Min() num.U128 {
	return num.U128FromRaw(0, 0)
}

// Max returns the largest representable value, 2^128-2.
func (NonMaxU128) Max() num.U128 {
	return num.U128FromRaw(allOnes, allOnes-1)
}

// String implements fmt.Stringer.
func (n NonMaxU128) String() string {
	return n.Get().String()
}

// MarshalJSON implements json.Marshaler.
func (n NonMaxU128) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Get())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NonMaxU128) UnmarshalJSON(data []byte) error {
	var v num.U128
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, ok := NewNonMaxU128(v)
	if !ok {
		return fmt.Errorf("unmarshal %s: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}

// NonMinU128 is a 128-bit unsigned integer that cannot be 0. The excluded
// minimum of an unsigned type is zero, so the stored words equal the value
// itself.
type NonMinU128 struct {
	hi, lo uint64
}

// NewNonMinU128 returns a NonMinU128 wrapping v. ok is false if v is 0.
func NewNonMinU128(v num.U128) (n NonMinU128, ok bool) {
	hi, lo := v.Raw()
	if hi == 0 && lo == 0 {
		return NonMinU128{}, false
	}
	return NonMinU128{hi: hi, lo: lo}, true
}

// MustNonMinU128 is like NewNonMinU128 but panics on 0.
func MustNonMinU128(v num.U128) NonMinU128 {
	n, ok := NewNonMinU128(v)
	if !ok {
		panic(fmt.Sprintf("nonmax: MustNonMinU128(%s): %v", v, ErrReservedValue))
	}
	return n
}

// UncheckedNonMinU128 constructs a NonMinU128 without checking v against 0.
// Contract: v must not be 0; violating it produces the zero storage pattern.
func UncheckedNonMinU128(v num.U128) NonMinU128 {
	hi, lo := v.Raw()
	return NonMinU128{hi: hi, lo: lo}
}

// Get returns the wrapped value.
func (n NonMinU128) Get() num.U128 {
	return num.U128FromRaw(n.hi, n.lo)
}

// Compare orders by wrapped value and returns -1, 0 or +1.
func (n NonMinU128) Compare(o NonMinU128) int {
	return n.Get().Cmp(o.Get())
}

// Min returns the smallest representable value, 1.
func (NonMinU128) Min() num.U128 {
	return num.U128FromRaw(0, 1)
}

// Max returns the largest representable value, 2^128-1.
func (NonMinU128) Max() num.U128 {
	return num.U128FromRaw(allOnes, allOnes)
}

// String implements fmt.Stringer.
func (n NonMinU128) String() string {
	return n.Get().String()
}

// MarshalJSON implements json.Marshaler.
func (n NonMinU128) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Get())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NonMinU128) UnmarshalJSON(data []byte) error {
	var v num.U128
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, ok := NewNonMinU128(v)
	if !ok {
		return fmt.Errorf("unmarshal %s: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}

// NonMaxI128 is a 128-bit signed integer that cannot be 2^127-1.
type NonMaxI128 struct {
	hi, lo uint64
}

// NewNonMaxI128 returns a NonMaxI128 wrapping v. ok is false if v equals
// the maximum 128-bit signed value.
func NewNonMaxI128(v num.I128) (n NonMaxI128, ok bool) {
	hi, lo := v.Raw()
	if hi == allOnes>>1 && lo == allOnes {
		return NonMaxI128{}, false
	}
	return NonMaxI128{hi: hi ^ (allOnes >> 1), lo: lo ^ allOnes}, true
}

// MustNonMaxI128 is like NewNonMaxI128 but panics on the excluded maximum.
func MustNonMaxI128(v num.I128) NonMaxI128 {
	n, ok := NewNonMaxI128(v)
	if !ok {
		panic(fmt.Sprintf("nonmax: MustNonMaxI128(%s): %v", v, ErrReservedValue))
	}
	return n
}

// UncheckedNonMaxI128 constructs a NonMaxI128 without checking v against
// the excluded maximum. Contract: v must not equal 2^127-1; violating it
// produces the zero storage pattern.
func UncheckedNonMaxI128(v num.I128) NonMaxI128 {
	hi, lo := v.Raw()
	return NonMaxI128{hi: hi ^ (allOnes >> 1), lo: lo ^ allOnes}
}

// Get returns the wrapped value.
func (n NonMaxI128) Get() num.I128 {
	return num.I128FromRaw(n.hi^(allOnes>>1), n.lo^allOnes)
}

// Compare orders by wrapped value and returns -1, 0 or +1.
func (n NonMaxI128) Compare(o NonMaxI128) int {
	return n.Get().Cmp(o.Get())
}

// Min returns the smallest representable value, -2^127.
func (NonMaxI128) Min() num.I128 {
	return num.I128FromRaw(signBit, 0)
}

// Max returns the largest representable value, 2^127-2.
func (NonMaxI128) Max() num.I128 {
	return num.I128FromRaw(allOnes>>1, allOnes-1)
}

// String implements fmt.Stringer.
func (n NonMaxI128) String() string {
	return n.Get().String()
}

// MarshalJSON implements json.Marshaler.
func (n NonMaxI128) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Get())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NonMaxI128) UnmarshalJSON(data []byte) error {
	var v num.I128
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, ok := NewNonMaxI128(v)
	if !ok {
		return fmt.Errorf("unmarshal %s: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}

// NonMinI128 is a 128-bit signed integer that cannot be -2^127.
type NonMinI128 struct {
	hi, lo uint64
}

// NewNonMinI128 returns a NonMinI128 wrapping v. ok is false if v equals
// the minimum 128-bit signed value.
func NewNonMinI128(v num.I128) (n NonMinI128, ok bool) {
	hi, lo := v.Raw()
	if hi == signBit && lo == 0 {
		return NonMinI128{}, false
	}
	return NonMinI128{hi: hi ^ signBit, lo: lo}, true
}

// MustNonMinI128 is like NewNonMinI128 but panics on the excluded minimum.
func MustNonMinI128(v num.I128) NonMinI128 {
	n, ok := NewNonMinI128(v)
	if !ok {
		panic(fmt.Sprintf("nonmax: MustNonMinI128(%s): %v", v, ErrReservedValue))
	}
	return n
}

// UncheckedNonMinI128 constructs a NonMinI128 without checking v against
// the excluded minimum. Contract: v must not equal -2^127; violating it
// produces the zero storage pattern.
func UncheckedNonMinI128(v num.I128) NonMinI128 {
	hi, lo := v.Raw()
	return NonMinI128{hi: hi ^ signBit, lo: lo}
}

// Get returns the wrapped value.
func (n NonMinI128) Get() num.I128 {
	return num.I128FromRaw(n.hi^signBit, n.lo)
}

// Compare orders by wrapped value and returns -1, 0 or +1.
func (n NonMinI128) Compare(o NonMinI128) int {
	return n.Get().Cmp(o.Get())
}

// Min returns the smallest representable value, -2^127+1.
func (NonMinI128) Min() num.I128 {
	return num.I128FromRaw(signBit, 1)
}

// Max returns the largest representable value, 2^127-1.
func (NonMinI128) Max() num.I128 {
	return num.I128FromRaw(allOnes>>1, allOnes)
}

// String implements fmt.Stringer.
func (n NonMinI128) String() string {
	return n.Get().String()
}

// MarshalJSON implements json.Marshaler.
func (n NonMinI128) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Get())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NonMinI128) UnmarshalJSON(data []byte) error {
	var v num.I128
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, ok := NewNonMinI128(v)
	if !ok {
		return fmt.Errorf("unmarshal %s: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}
