package softfloat

import "testing"

func TestShift32RightJamming(t *testing.T) {
	if got := shift32RightJamming(0x80000000, 0); got != 0x80000000 {
		t.Errorf("shift by 0 = %#x, want %#x", got, 0x80000000)
	}
	if got := shift32RightJamming(0x80000001, 1); got != 0x40000001 {
		t.Errorf("shift jammed = %#x, want %#x", got, 0x40000001)
	}
	if got := shift32RightJamming(0x1, 40); got != 1 {
		t.Errorf("shift beyond width with nonzero input = %#x, want 1", got)
	}
	if got := shift32RightJamming(0, 40); got != 0 {
		t.Errorf("shift beyond width with zero input = %#x, want 0", got)
	}
}

func TestShift64RightJamming(t *testing.T) {
	if got := shift64RightJamming(0x3, 1); got != 1 {
		t.Errorf("shift64RightJamming(3,1) = %#x, want 1", got)
	}
}

func TestMul64To128(t *testing.T) {
	hi, lo := mul64To128(0xFFFFFFFFFFFFFFFF, 2)
	if hi != 1 || lo != 0xFFFFFFFFFFFFFFFE {
		t.Errorf("mul64To128 = (%#x,%#x), want (1, 0xFFFFFFFFFFFFFFFE)", hi, lo)
	}
}

func TestAddSub128(t *testing.T) {
	hi, lo := add128(0, 0xFFFFFFFFFFFFFFFF, 0, 1)
	if hi != 1 || lo != 0 {
		t.Errorf("add128 carry = (%#x,%#x), want (1,0)", hi, lo)
	}
	hi, lo = sub128(1, 0, 0, 1)
	if hi != 0 || lo != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("sub128 borrow = (%#x,%#x), want (0,0xFFFFFFFFFFFFFFFF)", hi, lo)
	}
}

func TestCountLeadingZeros(t *testing.T) {
	if got := countLeadingZeros32(1); got != 31 {
		t.Errorf("countLeadingZeros32(1) = %d, want 31", got)
	}
	if got := countLeadingZeros32(0); got != 32 {
		t.Errorf("countLeadingZeros32(0) = %d, want 32", got)
	}
	if got := countLeadingZeros64(1); got != 63 {
		t.Errorf("countLeadingZeros64(1) = %d, want 63", got)
	}
}

func TestCompare128(t *testing.T) {
	if !lt128(0, 1, 0, 2) {
		t.Error("lt128(0:1, 0:2) should be true")
	}
	if lt128(0, 2, 0, 2) {
		t.Error("lt128(0:2, 0:2) should be false")
	}
	if !le128(0, 2, 0, 2) {
		t.Error("le128(0:2, 0:2) should be true")
	}
	if !eq128(5, 6, 5, 6) {
		t.Error("eq128(5:6, 5:6) should be true")
	}
}

func TestEstimateDiv128To64(t *testing.T) {
	// 2^64 / 3 truncated, as (2^62 * 2^64) / (3 * 2^62) with a normalized divisor.
	got := estimateDiv128To64(1<<62, 0, 3<<62)
	want := uint64(0xFFFFFFFFFFFFFFFF) / 3
	if diff := int64(got) - int64(want); diff < -2 || diff > 2 {
		t.Errorf("estimateDiv128To64 off by more than 2 ULP: got %d, want near %d", got, want)
	}
}
