package nonmax

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hupe1980/nonmax/internal/codec"
)

// The wrapper types marshal as plain numbers, so they are drop-in
// replacements for the underlying integer in JSON and text encodings.
// Unmarshaling the excluded boundary value fails with ErrReservedValue.

// MarshalJSON implements json.Marshaler.
func (n NonMax[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Get())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NonMax[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, ok := NewNonMax(v)
	if !ok {
		return fmt.Errorf("unmarshal %d: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n NonMax[T]) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NonMax[T]) UnmarshalText(text []byte) error {
	v, err := parseInteger[T](string(text))
	if err != nil {
		return err
	}
	m, ok := NewNonMax(v)
	if !ok {
		return fmt.Errorf("unmarshal %d: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NonMin[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Get())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NonMin[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, ok := NewNonMin(v)
	if !ok {
		return fmt.Errorf("unmarshal %d: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n NonMin[T]) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NonMin[T]) UnmarshalText(text []byte) error {
	v, err := parseInteger[T](string(text))
	if err != nil {
		return err
	}
	m, ok := NewNonMin(v)
	if !ok {
		return fmt.Errorf("unmarshal %d: %w", v, ErrReservedValue)
	}
	*n = m
	return nil
}

func parseInteger[T Integer](s string) (T, error) {
	if codec.IsSigned[T]() {
		i, err := strconv.ParseInt(s, 10, codec.BitWidth[T]())
		return T(i), err
	}
	u, err := strconv.ParseUint(s, 10, codec.BitWidth[T]())
	return T(u), err
}
