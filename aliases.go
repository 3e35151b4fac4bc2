package nonmax

// Named forms for every supported width, signedness and excluded boundary.
// They are plain aliases, so NonMaxUint32 and NonMax[uint32] are the same
// type and values flow freely between generic and non-generic code.
//
// NonMaxUint/NonMaxInt (and the NonMin counterparts) use Go's native
// register width. The 128-bit variants are separate concrete types; see
// num128.go.

type (
	// NonMaxUint8 is a uint8 that cannot be 255.
	NonMaxUint8 = NonMax[uint8]
	// NonMaxUint16 is a uint16 that cannot be 65535.
	NonMaxUint16 = NonMax[uint16]
	// NonMaxUint32 is a uint32 that cannot be 4294967295.
	NonMaxUint32 = NonMax[uint32]
	// NonMaxUint64 is a uint64 that cannot be 18446744073709551615.
	NonMaxUint64 = NonMax[uint64]
	// NonMaxUint is a uint that cannot be its maximum value.
	NonMaxUint = NonMax[uint]

	// NonMaxInt8 is an int8 that cannot be 127.
	NonMaxInt8 = NonMax[int8]
	// NonMaxInt16 is an int16 that cannot be 32767.
	NonMaxInt16 = NonMax[int16]
	// NonMaxInt32 is an int32 that cannot be 2147483647.
	NonMaxInt32 = NonMax[int32]
	// NonMaxInt64 is an int64 that cannot be 9223372036854775807.
	NonMaxInt64 = NonMax[int64]
	// NonMaxInt is an int that cannot be its maximum value.
	NonMaxInt = NonMax[int]

	// NonMinUint8 is a uint8 that cannot be 0.
	NonMinUint8 = NonMin[uint8]
	// NonMinUint16 is a uint16 that cannot be 0.
	NonMinUint16 = NonMin[uint16]
	// NonMinUint32 is a uint32 that cannot be 0.
	NonMinUint32 = NonMin[uint32]
	// NonMinUint64 is a uint64 that cannot be 0.
	NonMinUint64 = NonMin[uint64]
	// NonMinUint is a uint that cannot be 0.
	NonMinUint = NonMin[uint]

	// NonMinInt8 is an int8 that cannot be -128.
	NonMinInt8 = NonMin[int8]
	// NonMinInt16 is an int16 that cannot be -32768.
	NonMinInt16 = NonMin[int16]
	// NonMinInt32 is an int32 that cannot be -2147483648.
	NonMinInt32 = NonMin[int32]
	// NonMinInt64 is an int64 that cannot be -9223372036854775808.
	NonMinInt64 = NonMin[int64]
	// NonMinInt is an int that cannot be its minimum value.
	NonMinInt = NonMin[int]
)
