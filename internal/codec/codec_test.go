package codec

import (
	"math"
	"testing"
)

func TestBitWidth(t *testing.T) {
	if got := BitWidth[uint8](); got != 8 {
		t.Fatalf("BitWidth[uint8] = %d, want 8", got)
	}
	if got := BitWidth[int16](); got != 16 {
		t.Fatalf("BitWidth[int16] = %d, want 16", got)
	}
	if got := BitWidth[uint32](); got != 32 {
		t.Fatalf("BitWidth[uint32] = %d, want 32", got)
	}
	if got := BitWidth[int64](); got != 64 {
		t.Fatalf("BitWidth[int64] = %d, want 64", got)
	}
	if got := BitWidth[uint](); got != 32 && got != 64 {
		t.Fatalf("BitWidth[uint] = %d, want 32 or 64", got)
	}
}

func TestIsSigned(t *testing.T) {
	if !IsSigned[int8]() || !IsSigned[int64]() || !IsSigned[int]() {
		t.Fatal("signed types reported unsigned")
	}
	if IsSigned[uint8]() || IsSigned[uint64]() || IsSigned[uintptr]() {
		t.Fatal("unsigned types reported signed")
	}
}

func TestBoundaries(t *testing.T) {
	if min := MinOf[int8](); min != math.MinInt8 {
		t.Fatalf("MinOf[int8] = %d, want %d", min, math.MinInt8)
	}
	if max := MaxOf[int8](); max != math.MaxInt8 {
		t.Fatalf("MaxOf[int8] = %d, want %d", max, math.MaxInt8)
	}
	if min := MinOf[uint16](); min != 0 {
		t.Fatalf("MinOf[uint16] = %d, want 0", min)
	}
	if max := MaxOf[uint16](); max != math.MaxUint16 {
		t.Fatalf("MaxOf[uint16] = %d, want %d", max, math.MaxUint16)
	}
	if min := MinOf[int64](); min != math.MinInt64 {
		t.Fatalf("MinOf[int64] = %d, want %d", min, math.MinInt64)
	}
	if max := MaxOf[uint64](); max != math.MaxUint64 {
		t.Fatalf("MaxOf[uint64] = %d, want %d", max, uint64(math.MaxUint64))
	}
}

// TestRoundTrip_Exhaustive8 walks the entire 8-bit domain for all four
// signedness/boundary combinations.
func TestRoundTrip_Exhaustive8(t *testing.T) {
	t.Run("int8/min", func(t *testing.T) {
		exhaustive8(t, MinOf[int8]())
	})
	t.Run("int8/max", func(t *testing.T) {
		exhaustive8(t, MaxOf[int8]())
	})
	t.Run("uint8/min", func(t *testing.T) {
		exhaustive8(t, MinOf[uint8]())
	})
	t.Run("uint8/max", func(t *testing.T) {
		exhaustive8(t, MaxOf[uint8]())
	})
}

func exhaustive8[T interface{ ~int8 | ~uint8 }](t *testing.T, sentinel T) {
	t.Helper()

	seen := make(map[T]bool, 256)
	v := MinOf[T]()
	for {
		s := Encode(v, sentinel)
		if Decode(s, sentinel) != v {
			t.Fatalf("round trip failed for %d", v)
		}
		if (s == 0) != (v == sentinel) {
			t.Fatalf("zero storage for %d (sentinel %d, storage %d)", v, sentinel, s)
		}
		if seen[s] {
			t.Fatalf("storage collision at %d", s)
		}
		seen[s] = true

		if v == MaxOf[T]() {
			break
		}
		v++
	}
	if len(seen) != 256 {
		t.Fatalf("expected 256 distinct storage patterns, got %d", len(seen))
	}
}

func TestEncode_SentinelMapsToZero(t *testing.T) {
	if s := Encode(MaxOf[uint64](), MaxOf[uint64]()); s != 0 {
		t.Fatalf("Encode(max, max) = %d, want 0", s)
	}
	if s := Encode(MinOf[int32](), MinOf[int32]()); s != 0 {
		t.Fatalf("Encode(min, min) = %d, want 0", s)
	}
	if s := Encode(MinOf[uint8](), MinOf[uint8]()); s != 0 {
		t.Fatalf("Encode(0, 0) = %d, want 0", s)
	}
}

// TestEncode_KnownMappings pins two concrete mappings the package
// documentation uses as examples.
func TestEncode_KnownMappings(t *testing.T) {
	// 8-bit signed, min-excluding: -128 is reserved.
	if s := Encode(int8(-128), MinOf[int8]()); s != 0 {
		t.Fatalf("Encode(-128) = %d, want 0", s)
	}
	if s := Encode(int8(123), MinOf[int8]()); s == 0 {
		t.Fatal("Encode(123) must not be zero")
	}

	// 8-bit unsigned, max-excluding: 255 is reserved, 0 stores as 255.
	if s := Encode(uint8(0), MaxOf[uint8]()); s != 255 {
		t.Fatalf("Encode(0) = %d, want 255", s)
	}
	if s := Encode(uint8(255), MaxOf[uint8]()); s != 0 {
		t.Fatalf("Encode(255) = %d, want 0", s)
	}
}

func TestRoundTrip_WideSamples(t *testing.T) {
	for _, v := range []int64{math.MinInt64 + 1, -1, 0, 1, 42, math.MaxInt64} {
		s := Encode(v, MinOf[int64]())
		if got := Decode(s, MinOf[int64]()); got != v {
			t.Fatalf("int64 round trip: got %d, want %d", got, v)
		}
	}
	for _, v := range []uint64{0, 1, 1 << 63, math.MaxUint64 - 1} {
		s := Encode(v, MaxOf[uint64]())
		if got := Decode(s, MaxOf[uint64]()); got != v {
			t.Fatalf("uint64 round trip: got %d, want %d", got, v)
		}
	}
}
