package softfloat

import "testing"

func TestIsSignalingNaNF32(t *testing.T) {
	if !isSignalingNaNF32(0x7F800001) {
		t.Error("0x7F800001 should be a signaling NaN")
	}
	if isSignalingNaNF32(0x7FC00000) {
		t.Error("0x7FC00000 is a quiet NaN, not signaling")
	}
	if isSignalingNaNF32(0x7F800000) {
		t.Error("0x7F800000 is +inf, not a NaN at all")
	}
}

func TestIsSignalingNaNF64(t *testing.T) {
	if !isSignalingNaNF64(0x7FF0000000000001) {
		t.Error("should be signaling")
	}
	if isSignalingNaNF64(0x7FF8000000000000) {
		t.Error("should be quiet")
	}
}

func TestIsSignalingNaNFx80(t *testing.T) {
	if !isSignalingNaNFx80(0x7FFF, 0x8000000000000001) {
		t.Error("should be signaling")
	}
	if isSignalingNaNFx80(0x7FFF, 0xC000000000000000) {
		t.Error("should be quiet")
	}
}

func TestPropagateFloat32NaNPrefersA(t *testing.T) {
	s := NewStatus()
	aNaN := uint32(0x7FC00001)
	bNaN := uint32(0x7FC00002)
	got := propagateFloat32NaN(aNaN, bNaN, s)
	if got != aNaN|0x00400000 {
		t.Errorf("propagateFloat32NaN should prefer a, got %#x", got)
	}
}

func TestPropagateFloat32NaNSignalingRaisesInvalid(t *testing.T) {
	s := NewStatus()
	sNaN := uint32(0x7F800001)
	propagateFloat32NaN(sNaN, 0x3F800000, s)
	if !s.Test(FlagInvalid) {
		t.Error("propagating a signaling NaN should raise FlagInvalid")
	}
}

func TestF32CommonNaNRoundTrip(t *testing.T) {
	s := NewStatus()
	orig := uint32(0x7FC01234)
	cn := f32ToCommonNaN(orig, s)
	back := commonNaNToF32(cn)
	if back&0x80000000 != orig&0x80000000 {
		t.Errorf("sign lost in round trip: got %#x, want matching sign of %#x", back, orig)
	}
	if back&0x7FC00000 != 0x7FC00000 {
		t.Errorf("round-tripped value %#x is not a quiet NaN", back)
	}
}

func TestFx80CommonNaNRoundTrip(t *testing.T) {
	s := NewStatus()
	cn := fx80ToCommonNaN(0x7FFF, 0x8000123400000000, s)
	backExp, backSig := commonNaNToFx80(cn)
	if backExp&0x7FFF != 0x7FFF {
		t.Errorf("round-tripped exponent %#x is not the NaN exponent", backExp)
	}
	if backSig&0x4000000000000000 == 0 {
		t.Errorf("round-tripped significand %#x is not quiet", backSig)
	}
}
