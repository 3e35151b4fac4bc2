// Package column provides a dense, fixed-stride container of optional
// boundary-excluding integers.
//
// Each slot costs exactly one word of the underlying type: a present slot
// holds the value's encoded (XOR-ed) bit pattern, an empty slot holds the
// all-zero pattern. There is no side bitmap and no per-slot tag, which is
// what makes the layout attractive for large arrays of "maybe an integer"
// (row id maps, parent pointers, forwarding tables).
//
// Columns can be snapshotted to an io.Writer and restored later; see
// WriteTo/ReadFrom for the format and the compression options.
package column

import (
	"fmt"

	"github.com/hupe1980/nonmax"
	"github.com/hupe1980/nonmax/internal/codec"
)

// Boundary identifies which boundary value a column's slots exclude.
type Boundary uint8

const (
	// BoundaryMax marks columns whose slots exclude the maximum of T.
	BoundaryMax Boundary = 1
	// BoundaryMin marks columns whose slots exclude the minimum of T.
	BoundaryMin Boundary = 2
)

// String returns the stable name recorded in snapshot metadata.
func (b Boundary) String() string {
	switch b {
	case BoundaryMax:
		return "max"
	case BoundaryMin:
		return "min"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// Column is a dense vector of optional integers of type T with one
// excluded boundary value. The zero slot pattern means "empty".
//
// Column is not safe for concurrent mutation. Concurrent readers are fine
// as long as no writer is active, as with a plain slice.
type Column[T nonmax.Integer] struct {
	bits     []T
	sentinel T
	boundary Boundary
	live     int
	opts     Options
}

// NewNonMax returns a column of n empty slots whose values exclude the
// maximum of T.
func NewNonMax[T nonmax.Integer](n int, optFns ...func(*Options)) *Column[T] {
	return newColumn[T](n, codec.MaxOf[T](), BoundaryMax, optFns)
}

// NewNonMin returns a column of n empty slots whose values exclude the
// minimum of T.
func NewNonMin[T nonmax.Integer](n int, optFns ...func(*Options)) *Column[T] {
	return newColumn[T](n, codec.MinOf[T](), BoundaryMin, optFns)
}

func newColumn[T nonmax.Integer](n int, sentinel T, boundary Boundary, optFns []func(*Options)) *Column[T] {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Column[T]{
		bits:     make([]T, n),
		sentinel: sentinel,
		boundary: boundary,
		opts:     opts,
	}
}

// Boundary returns which boundary value the column excludes.
func (c *Column[T]) Boundary() Boundary { return c.boundary }

// Len returns the number of slots.
func (c *Column[T]) Len() int { return len(c.bits) }

// Live returns the number of non-empty slots.
func (c *Column[T]) Live() int { return c.live }

// Get returns the value at slot i and whether the slot is occupied.
// It panics if i is out of range, like a slice access.
func (c *Column[T]) Get(i int) (T, bool) {
	s := c.bits[i]
	if s == 0 {
		return 0, false
	}
	return codec.Decode(s, c.sentinel), true
}

// Set stores v at slot i. It returns ErrReservedValue (wrapped) if v equals
// the column's excluded boundary, and panics if i is out of range.
func (c *Column[T]) Set(i int, v T) error {
	if v == c.sentinel {
		return fmt.Errorf("set slot %d to %d: %w", i, v, nonmax.ErrReservedValue)
	}
	if c.bits[i] == 0 {
		c.live++
	}
	c.bits[i] = codec.Encode(v, c.sentinel)
	return nil
}

// Clear empties slot i. It panics if i is out of range.
func (c *Column[T]) Clear(i int) {
	if c.bits[i] != 0 {
		c.live--
	}
	c.bits[i] = 0
}

// Append adds an occupied slot holding v and returns its index.
func (c *Column[T]) Append(v T) (int, error) {
	if v == c.sentinel {
		return 0, fmt.Errorf("append %d: %w", v, nonmax.ErrReservedValue)
	}
	c.bits = append(c.bits, codec.Encode(v, c.sentinel))
	c.live++
	return len(c.bits) - 1, nil
}

// AppendEmpty adds an empty slot and returns its index.
func (c *Column[T]) AppendEmpty() int {
	c.bits = append(c.bits, 0)
	return len(c.bits) - 1
}

// Grow extends the column by n empty slots.
func (c *Column[T]) Grow(n int) {
	c.bits = append(c.bits, make([]T, n)...)
}
