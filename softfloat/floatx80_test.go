package softfloat

import "testing"

func TestFloatx80AddOnePlusOne(t *testing.T) {
	s := NewStatus()
	one := Floatx80{Exp: 0x3FFF, Sig: 0x8000000000000000}
	got := Floatx80Add(s, one, one)
	want := Floatx80{Exp: 0x4000, Sig: 0x8000000000000000} // 2.0
	if got != want {
		t.Errorf("1.0+1.0 = %+v, want %+v", got, want)
	}
	if s.Flags() != 0 {
		t.Errorf("1.0+1.0 flags = %v, want none", s.Flags())
	}
}

func TestFloatx80SubSelf(t *testing.T) {
	s := NewStatus()
	one := Floatx80{Exp: 0x3FFF, Sig: 0x8000000000000000}
	got := Floatx80Sub(s, one, one)
	if got.Exp != 0 || got.Sig != 0 {
		t.Errorf("1.0-1.0 = %+v, want zero", got)
	}
}

func TestFloatx80MulTwoByTwo(t *testing.T) {
	s := NewStatus()
	two := Floatx80{Exp: 0x4000, Sig: 0x8000000000000000}
	got := Floatx80Mul(s, two, two)
	want := Floatx80{Exp: 0x4001, Sig: 0x8000000000000000} // 4.0
	if got != want {
		t.Errorf("2.0*2.0 = %+v, want %+v", got, want)
	}
}

func TestFloatx80DivByZeroRaisesFlag(t *testing.T) {
	s := NewStatus()
	one := Floatx80{Exp: 0x3FFF, Sig: 0x8000000000000000}
	zero := Floatx80{}
	got := Floatx80Div(s, one, zero)
	if !s.Test(FlagDivByZero) {
		t.Error("1.0/0.0 should raise FlagDivByZero")
	}
	if got.Exp != 0x7FFF {
		t.Errorf("1.0/0.0 exponent = %#x, want infinite exponent 0x7FFF", got.Exp)
	}
}

func TestFloatx80SqrtFour(t *testing.T) {
	s := NewStatus()
	four := Floatx80{Exp: 0x4001, Sig: 0x8000000000000000}
	got := Floatx80Sqrt(s, four)
	want := Floatx80{Exp: 0x4000, Sig: 0x8000000000000000} // 2.0
	if got != want {
		t.Errorf("sqrt(4.0) = %+v, want %+v", got, want)
	}
}

func TestFloatx80SqrtNegativeIsInvalid(t *testing.T) {
	s := NewStatus()
	negOne := Floatx80{Exp: 0xBFFF, Sig: 0x8000000000000000}
	got := Floatx80Sqrt(s, negOne)
	if !s.Test(FlagInvalid) {
		t.Error("sqrt of a negative number should raise FlagInvalid")
	}
	if !floatx80IsNaN(got) {
		t.Errorf("sqrt(-1.0) = %+v, want a NaN", got)
	}
}

func TestFloatx80LeOrdering(t *testing.T) {
	s := NewStatus()
	one := Floatx80{Exp: 0x3FFF, Sig: 0x8000000000000000}
	two := Floatx80{Exp: 0x4000, Sig: 0x8000000000000000}
	if !Floatx80Le(s, one, two) {
		t.Error("1.0 should be <= 2.0")
	}
	if Floatx80Le(s, two, one) {
		t.Error("2.0 should not be <= 1.0")
	}
}

func TestFloatx80RemAlwaysFullPrecision(t *testing.T) {
	s := NewStatus()
	s.RoundingPrecision = Precision32
	seven := Floatx80{Exp: 0x4001, Sig: 0xE000000000000000} // 7.0
	two := Floatx80{Exp: 0x4000, Sig: 0x8000000000000000}   // 2.0
	got := Floatx80Rem(s, seven, two)
	// 7/2 = 3.5, nearest even quotient is 4, so the remainder is 7 - 4*2 = -1.0.
	want := Floatx80{Exp: 0xBFFF, Sig: 0x8000000000000000} // -1.0
	if got != want {
		t.Errorf("rem(7.0,2.0) = %+v, want %+v", got, want)
	}
}

func TestInt64ToFloatx80RoundTrip(t *testing.T) {
	s := NewStatus()
	got := Int64ToFloatx80(s, 42)
	back := Floatx80ToFloat64(s, got)
	want := Int64ToFloat64(s, 42)
	if back != want {
		t.Errorf("Floatx80ToFloat64(Int64ToFloatx80(42)) = %#x, want %#x", uint64(back), uint64(want))
	}
}
