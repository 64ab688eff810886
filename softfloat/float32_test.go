package softfloat

import "testing"

func TestFloat32AddOnePlusOne(t *testing.T) {
	s := NewStatus()
	got := Float32Add(s, 0x3F800000, 0x3F800000)
	if got != 0x40000000 {
		t.Errorf("1.0+1.0 = %#x, want %#x", uint32(got), uint32(0x40000000))
	}
	if s.Flags() != 0 {
		t.Errorf("1.0+1.0 flags = %v, want none", s.Flags())
	}
}

func TestFloat32AddZero(t *testing.T) {
	s := NewStatus()
	got := Float32Add(s, 0, 0)
	if got != 0 {
		t.Errorf("0+0 = %#x, want 0", uint32(got))
	}
}

func TestFloat32SubSelf(t *testing.T) {
	s := NewStatus()
	got := Float32Sub(s, 0x3F800000, 0x3F800000)
	if got != 0 {
		t.Errorf("1.0-1.0 = %#x, want 0", uint32(got))
	}
}

func TestFloat32MulTwoByTwo(t *testing.T) {
	s := NewStatus()
	got := Float32Mul(s, 0x40000000, 0x40000000)
	want := Float32(0x40800000) // 4.0
	if got != want {
		t.Errorf("2.0*2.0 = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestFloat32DivByZeroRaisesFlag(t *testing.T) {
	s := NewStatus()
	got := Float32Div(s, 0x3F800000, 0)
	if !s.Test(FlagDivByZero) {
		t.Error("1.0/0.0 should raise FlagDivByZero")
	}
	if float32Exp(got) != 0xFF || float32Frac(got) != 0 {
		t.Errorf("1.0/0.0 = %#x, want +inf", uint32(got))
	}
}

func TestFloat32ZeroDivZeroIsInvalid(t *testing.T) {
	s := NewStatus()
	got := Float32Div(s, 0, 0)
	if !s.Test(FlagInvalid) {
		t.Error("0.0/0.0 should raise FlagInvalid")
	}
	if !float32IsNaN(got) {
		t.Errorf("0.0/0.0 = %#x, want a NaN", uint32(got))
	}
}

func TestFloat32AddNaNPropagates(t *testing.T) {
	s := NewStatus()
	snan := Float32(0x7F800001) // signaling NaN: exponent all ones, quiet bit clear.
	got := Float32Add(s, snan, 0x3F800000)
	if !s.Test(FlagInvalid) {
		t.Error("adding a signaling NaN should raise FlagInvalid")
	}
	if !float32IsNaN(got) {
		t.Errorf("result of adding a NaN = %#x, want a NaN", uint32(got))
	}
}

func TestFloat32SqrtNegativeIsInvalid(t *testing.T) {
	s := NewStatus()
	got := Float32Sqrt(s, 0xBF800000) // -1.0
	if !s.Test(FlagInvalid) {
		t.Error("sqrt of a negative number should raise FlagInvalid")
	}
	if !float32IsNaN(got) {
		t.Errorf("sqrt(-1.0) = %#x, want a NaN", uint32(got))
	}
}

func TestFloat32SqrtFour(t *testing.T) {
	s := NewStatus()
	got := Float32Sqrt(s, 0x40800000) // 4.0
	want := Float32(0x40000000)       // 2.0
	if got != want {
		t.Errorf("sqrt(4.0) = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestFloat32EqQuietNaN(t *testing.T) {
	s := NewStatus()
	qnan := Float32(defaultNaNF32)
	if Float32Eq(s, qnan, qnan) {
		t.Error("a quiet NaN should never compare equal")
	}
	if s.Test(FlagInvalid) {
		t.Error("quiet-NaN Eq should not raise invalid for a quiet NaN operand")
	}
}

func TestFloat32EqSignalingAlwaysInvalid(t *testing.T) {
	s := NewStatus()
	qnan := Float32(defaultNaNF32)
	Float32EqSignaling(s, qnan, qnan)
	if !s.Test(FlagInvalid) {
		t.Error("EqSignaling should raise invalid even for a quiet NaN operand")
	}
}

func TestFloat32LeOrdering(t *testing.T) {
	s := NewStatus()
	if !Float32Le(s, 0x3F800000, 0x40000000) { // 1.0 <= 2.0
		t.Error("1.0 should be <= 2.0")
	}
	if Float32Le(s, 0x40000000, 0x3F800000) { // 2.0 <= 1.0
		t.Error("2.0 should not be <= 1.0")
	}
}

func TestFloat32RoundToIntNearestEven(t *testing.T) {
	s := NewStatus()
	got := Float32RoundToInt(s, 0x3FC00000) // 1.5
	want := Float32(0x40000000)             // 2.0 (ties to even)
	if got != want {
		t.Errorf("round(1.5) = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestFloat32ToInt32RoundToZeroExactBoundary(t *testing.T) {
	s := NewStatus()
	got := Float32ToInt32RoundToZero(s, 0xCF000000)
	if got != -0x80000000 {
		t.Errorf("Float32ToInt32RoundToZero(0xCF000000) = %d, want %d", got, int32(-0x80000000))
	}
	if s.Test(FlagInvalid) {
		t.Error("the exact 0xCF000000 boundary must not raise invalid")
	}
}

func TestFloat32RemFiveByThree(t *testing.T) {
	s := NewStatus()
	got := Float32Rem(s, 0x40A00000, 0x40400000) // rem(5.0, 3.0)
	want := Float32(0xBF800000)                  // -1.0, since the nearest quotient is 2
	if got != want {
		t.Errorf("rem(5.0,3.0) = %#x, want %#x", uint32(got), uint32(want))
	}
	if s.Flags() != 0 {
		t.Errorf("rem(5.0,3.0) flags = %v, want none", s.Flags())
	}
}

func TestInt32ToFloat32RoundTrip(t *testing.T) {
	s := NewStatus()
	got := Int32ToFloat32(s, 100)
	back := Float32ToInt32(s, got)
	if back != 100 {
		t.Errorf("round trip of 100 through f32 = %d, want 100", back)
	}
}
