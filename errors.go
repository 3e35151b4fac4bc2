package nonmax

import "errors"

var (
	// ErrReservedValue reports that a value equals the single boundary value
	// its type excludes. The unmarshaling paths and the column package wrap
	// this error; the checked constructors report the same condition through
	// their ok result instead.
	ErrReservedValue = errors.New("reserved boundary value")
)
