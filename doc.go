// Package nonmax provides fixed-width integer types that cannot be their
// minimum or maximum value.
//
// The standard library's approach to "this integer has a reserved value"
// is a convention: pick a sentinel, remember to check it everywhere. This
// package turns the convention into a type. NonMax[T] is a T that can
// never be T's maximum; NonMin[T] is a T that can never be T's minimum.
// Checked construction is the only way to obtain a valid instance, so a
// function that accepts a NonMax[uint32] never needs to re-check.
//
// # Quick Start
//
//	x, ok := nonmax.NewNonMax[uint32](123)
//	// ok == true
//	fmt.Println(x.Get()) // 123
//
//	_, ok = nonmax.NewNonMax[uint32](math.MaxUint32)
//	// ok == false: the maximum is reserved
//
// Named aliases exist for every width (NonMaxUint8 ... NonMinInt64); the
// 128-bit variants are separate concrete types built on
// github.com/shabbyrobe/go-num.
//
// # Memory Layout
//
// Values are stored XOR-ed with the excluded boundary's own bit pattern.
// Since x^x == 0, the excluded value is the only input that would map to
// the all-zero pattern, and checked construction rejects it, so a valid
// instance never stores zero. Option reuses that spare pattern as its
// absent marker:
//
//	unsafe.Sizeof(nonmax.Option[nonmax.NonMaxUint32]{}) == 4
//
// An optional integer in a slice or a hot struct therefore costs exactly
// as much as the bare integer. The cost of the trick is one XOR per Get.
//
// The one sharp edge: the zero value of a wrapper, and unchecked
// construction from the excluded boundary, produce the all-zero storage
// pattern. Such an instance decodes to the excluded value and reads as
// absent through Option. See the Unchecked* constructors for the exact
// contract.
//
// # Dense Columns
//
// The column subpackage stores many optional values at one word per slot
// (zero word == empty slot) and snapshots them with optional zstd/lz4
// compression.
package nonmax
