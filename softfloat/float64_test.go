package softfloat

import "testing"

func TestFloat64AddOnePlusOne(t *testing.T) {
	s := NewStatus()
	got := Float64Add(s, 0x3FF0000000000000, 0x3FF0000000000000)
	want := Float64(0x4000000000000000)
	if got != want {
		t.Errorf("1.0+1.0 = %#x, want %#x", uint64(got), uint64(want))
	}
	if s.Flags() != 0 {
		t.Errorf("1.0+1.0 flags = %v, want none", s.Flags())
	}
}

func TestFloat64AddDifferentExponents(t *testing.T) {
	s := NewStatus()
	one := Float64(0x3FF0000000000000)
	half := Float64(0x3FE0000000000000)
	got := Float64Add(s, one, half)
	want := Float64(0x3FF8000000000000) // 1.5
	if got != want {
		t.Errorf("1.0+0.5 = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestFloat64SubSelf(t *testing.T) {
	s := NewStatus()
	got := Float64Sub(s, 0x3FF0000000000000, 0x3FF0000000000000)
	if got != 0 {
		t.Errorf("1.0-1.0 = %#x, want 0", uint64(got))
	}
}

func TestFloat64MulTwoByTwo(t *testing.T) {
	s := NewStatus()
	got := Float64Mul(s, 0x4000000000000000, 0x4000000000000000)
	want := Float64(0x4010000000000000) // 4.0
	if got != want {
		t.Errorf("2.0*2.0 = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestFloat64DivByZeroRaisesFlag(t *testing.T) {
	s := NewStatus()
	got := Float64Div(s, 0x3FF0000000000000, 0)
	if !s.Test(FlagDivByZero) {
		t.Error("1.0/0.0 should raise FlagDivByZero")
	}
	if float64Exp(got) != 0x7FF || float64Frac(got) != 0 {
		t.Errorf("1.0/0.0 = %#x, want +inf", uint64(got))
	}
}

func TestFloat64SqrtFour(t *testing.T) {
	s := NewStatus()
	got := Float64Sqrt(s, 0x4010000000000000) // 4.0
	want := Float64(0x4000000000000000)       // 2.0
	if got != want {
		t.Errorf("sqrt(4.0) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestFloat32ToFloat64Widening(t *testing.T) {
	s := NewStatus()
	got := Float32ToFloat64(s, Float32(0x3F800000)) // 1.0
	want := Float64(0x3FF0000000000000)
	if got != want {
		t.Errorf("widen(1.0) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestFloat64ToFloat32Narrowing(t *testing.T) {
	s := NewStatus()
	got := Float64ToFloat32(s, Float64(0x4000000000000000)) // 2.0
	want := Float32(0x40000000)
	if got != want {
		t.Errorf("narrow(2.0) = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestFloat64RemFiveByThree(t *testing.T) {
	s := NewStatus()
	got := Float64Rem(s, 0x4014000000000000, 0x4008000000000000) // rem(5.0, 3.0)
	want := Float64(0xBFF0000000000000)                          // -1.0, since the nearest quotient is 2
	if got != want {
		t.Errorf("rem(5.0,3.0) = %#x, want %#x", uint64(got), uint64(want))
	}
	if s.Flags() != 0 {
		t.Errorf("rem(5.0,3.0) flags = %v, want none", s.Flags())
	}
}

func TestFloat64ToInt64RoundTrip(t *testing.T) {
	s := NewStatus()
	got := Int64ToFloat64(s, 12345)
	back := Float64ToInt64(s, got)
	if back != 12345 {
		t.Errorf("round trip of 12345 through f64 = %d, want 12345", back)
	}
}

func TestFloat64EqQuietNaN(t *testing.T) {
	s := NewStatus()
	qnan := Float64(defaultNaNF64Hi)
	if Float64Eq(s, qnan, qnan) {
		t.Error("a quiet NaN should never compare equal")
	}
}

func TestFloat64LeOrdering(t *testing.T) {
	s := NewStatus()
	if !Float64Le(s, 0x3FF0000000000000, 0x4000000000000000) {
		t.Error("1.0 should be <= 2.0")
	}
	if Float64Le(s, 0x4000000000000000, 0x3FF0000000000000) {
		t.Error("2.0 should not be <= 1.0")
	}
}

func TestFloat64RoundToIntNearestEven(t *testing.T) {
	s := NewStatus()
	got := Float64RoundToInt(s, 0x3FF8000000000000) // 1.5
	want := Float64(0x4000000000000000)              // 2.0
	if got != want {
		t.Errorf("round(1.5) = %#x, want %#x", uint64(got), uint64(want))
	}
}
