package softfloat

import "testing"

func TestNewStatusDefaults(t *testing.T) {
	s := NewStatus()
	if s.Mode != RoundNearestEven {
		t.Errorf("default mode = %v, want RoundNearestEven", s.Mode)
	}
	if s.DetectTininess != TininessAfterRounding {
		t.Errorf("default tininess = %v, want TininessAfterRounding", s.DetectTininess)
	}
	if s.FlushToZero {
		t.Errorf("default flush-to-zero = true, want false")
	}
	if s.RoundingPrecision != Precision80 {
		t.Errorf("default rounding precision = %v, want Precision80", s.RoundingPrecision)
	}
	if s.Flags() != 0 {
		t.Errorf("default flags = %v, want none", s.Flags())
	}
}

func TestStatusRaiseAndClear(t *testing.T) {
	s := NewStatus()
	s.Raise(FlagInexact)
	s.Raise(FlagOverflow)
	if !s.Test(FlagInexact) {
		t.Error("expected FlagInexact set")
	}
	if !s.Test(FlagOverflow) {
		t.Error("expected FlagOverflow set")
	}
	if s.Test(FlagInvalid) {
		t.Error("did not expect FlagInvalid set")
	}
	s.Clear()
	if s.Flags() != 0 {
		t.Errorf("flags after Clear = %v, want none", s.Flags())
	}
}

func TestFlagsString(t *testing.T) {
	cases := []struct {
		f    Flags
		want string
	}{
		{0, "none"},
		{FlagInvalid, "invalid"},
		{FlagInexact, "inexact"},
		{FlagInvalid | FlagOverflow, "invalid|overflow"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Errorf("Flags(%d).String() = %q, want %q", c.f, got, c.want)
		}
	}
}
