package nonmax_test

import (
	"math"
	"testing"

	"github.com/hupe1980/nonmax"
)

func TestNewNonMin_Signed(t *testing.T) {
	n, ok := nonmax.NewNonMin[int8](123)
	if !ok {
		t.Fatal("NewNonMin(123) rejected")
	}
	if got := n.Get(); got != 123 {
		t.Fatalf("Get() = %d, want 123", got)
	}

	if _, ok := nonmax.NewNonMin[int8](-128); ok {
		t.Fatal("NewNonMin(-128) accepted the reserved minimum")
	}

	n2, ok := nonmax.NewNonMin[int8](-127)
	if !ok || n2.Get() != -127 {
		t.Fatalf("NewNonMin(-127) = (%v, %v)", n2, ok)
	}
}

// For unsigned types the excluded minimum is 0, so NonMin degenerates to a
// classic non-zero integer and the storage pattern equals the value.
func TestNewNonMin_Unsigned(t *testing.T) {
	if _, ok := nonmax.NewNonMin[uint32](0); ok {
		t.Fatal("NewNonMin(0) accepted the reserved minimum")
	}

	n, ok := nonmax.NewNonMin[uint32](7)
	if !ok {
		t.Fatal("NewNonMin(7) rejected")
	}
	if n.Get() != 7 || n.Bits() != 7 {
		t.Fatalf("value %d stored as %d, want identity", n.Get(), n.Bits())
	}
}

func TestUncheckedNonMin_ContractViolation(t *testing.T) {
	n := nonmax.UncheckedNonMin[int8](-128)
	if bits := n.Bits(); bits != 0 {
		t.Fatalf("Bits() = %d, want 0", bits)
	}
	if got := n.Get(); got != -128 {
		t.Fatalf("Get() = %d, want the reserved -128", got)
	}
	if nonmax.Some(n).Present() {
		t.Fatal("contract-violating instance must read as absent")
	}
}

func TestMustNonMin(t *testing.T) {
	if nonmax.MustNonMin[uint64](1).Get() != 1 {
		t.Fatal("MustNonMin(1) wrong value")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustNonMin(min) did not panic")
		}
	}()
	nonmax.MustNonMin[int64](math.MinInt64)
}

func TestNonMin_Range(t *testing.T) {
	var i8 nonmax.NonMinInt8
	if i8.Min() != -127 || i8.Max() != 127 {
		t.Fatalf("NonMinInt8 range = [%d, %d], want [-127, 127]", i8.Min(), i8.Max())
	}
	var u16 nonmax.NonMinUint16
	if u16.Min() != 1 || u16.Max() != math.MaxUint16 {
		t.Fatalf("NonMinUint16 range = [%d, %d], want [1, 65535]", u16.Min(), u16.Max())
	}
}

func TestNonMin_Ordering(t *testing.T) {
	a := nonmax.MustNonMin[int32](-100)
	b := nonmax.MustNonMin[int32](5)

	if !a.Less(b) || a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Fatal("ordering wrong")
	}
	if a.Compare(a) != 0 {
		t.Fatal("self comparison not zero")
	}
}

func TestNonMin_PlainRoundTrip(t *testing.T) {
	for _, v := range []uint16{1, 2, 0x8000, math.MaxUint16} {
		n := nonmax.MustNonMin(v)
		back, ok := nonmax.NewNonMin(n.Get())
		if !ok || back != n {
			t.Fatalf("round trip through plain uint16 failed for %d", v)
		}
	}
}
