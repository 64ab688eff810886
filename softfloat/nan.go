/*
 * softfloat - Target NaN policy.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
 * RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 */

package softfloat

// Default quiet NaN bit patterns per format. A quiet NaN has its
// most-significant fraction bit set; a signaling NaN has it clear (with a
// nonzero fraction to remain a NaN rather than infinity).
const (
	defaultNaNF32    uint32 = 0xFFC00000
	defaultNaNF64Hi  uint64 = 0xFFF8000000000000
	defaultNaNFx80Hi uint16 = 0xFFFF
	defaultNaNFx80Lo uint64 = 0xC000000000000000
)

// isSignalingNaNF32 reports whether a, already known to be a NaN, is
// signaling: exponent all ones, fraction nonzero, and the leading fraction
// bit (the "is quiet" bit) clear.
func isSignalingNaNF32(a uint32) bool {
	return (a&0x7FC00000) == 0x7F800000 && (a&0x003FFFFF) != 0
}

// isSignalingNaNF64 is isSignalingNaNF32 for the 64-bit format.
func isSignalingNaNF64(a uint64) bool {
	return (a&0x7FF8000000000000) == 0x7FF0000000000000 && (a&0x0007FFFFFFFFFFFF) != 0
}

// isSignalingNaNFx80 is isSignalingNaNF32 for the 80-bit format: the bit
// just below the explicit integer bit is the quiet marker, and the integer
// bit itself is not examined.
func isSignalingNaNFx80(exp uint16, sig uint64) bool {
	return (exp&0x7FFF) == 0x7FFF && (sig&0x4000000000000000) == 0 && (sig&0x3FFFFFFFFFFFFFFF) != 0
}

// commonNaN is the neutral intermediate a NaN is converted through when
// moving between formats: enough bits to hold any format's payload, plus the
// sign, independent of source or destination width.
type commonNaN struct {
	sign bool
	high uint64
	low  uint64
}

// f32ToCommonNaN converts an f32 NaN to the common intermediate, raising
// invalid if it was signaling.
func f32ToCommonNaN(a uint32, status *Status) commonNaN {
	if isSignalingNaNF32(a) {
		status.Raise(FlagInvalid)
	}
	return commonNaN{
		sign: a>>31 != 0,
		high: uint64(a<<9) << 32,
		low:  0,
	}
}

// commonNaNToF32 converts the common intermediate back to an f32 NaN,
// quieted, preserving the sign and the high fraction bits that fit.
func commonNaNToF32(a commonNaN) uint32 {
	sign := uint32(0)
	if a.sign {
		sign = 1
	}
	frac := uint32(a.high >> 41)
	return (sign << 31) | 0x7FC00000 | frac
}

// f64ToCommonNaN is f32ToCommonNaN for f64.
func f64ToCommonNaN(a uint64, status *Status) commonNaN {
	if isSignalingNaNF64(a) {
		status.Raise(FlagInvalid)
	}
	return commonNaN{
		sign: a>>63 != 0,
		high: a << 12,
		low:  0,
	}
}

// commonNaNToF64 is commonNaNToF32 for f64.
func commonNaNToF64(a commonNaN) uint64 {
	sign := uint64(0)
	if a.sign {
		sign = 1
	}
	frac := a.high >> 12
	return (sign << 63) | 0x7FF8000000000000 | frac
}

// fx80ToCommonNaN is f32ToCommonNaN for fx80.
func fx80ToCommonNaN(exp uint16, sig uint64, status *Status) commonNaN {
	if isSignalingNaNFx80(exp, sig) {
		status.Raise(FlagInvalid)
	}
	return commonNaN{
		sign: exp>>15 != 0,
		high: sig << 1,
		low:  0,
	}
}

// commonNaNToFx80 is commonNaNToF32 for fx80, returning the packed
// sign/exponent word and the significand separately.
func commonNaNToFx80(a commonNaN) (exp uint16, sig uint64) {
	signBit := uint16(0)
	if a.sign {
		signBit = 1
	}
	exp = (signBit << 15) | 0x7FFF
	sig = 0xC000000000000000 | (a.high >> 1)
	return
}

// propagateFloat32NaN implements the default NaN-propagation policy for a
// binary operation: if either operand is a NaN, the result is a quieted
// version of whichever operand is NaN, preferring a, with invalid raised if
// either input was signaling. If both are NaN, a wins.
func propagateFloat32NaN(a, b uint32, status *Status) uint32 {
	aIsNaN := (a&0x7F800000) == 0x7F800000 && (a&0x007FFFFF) != 0
	bIsNaN := (b&0x7F800000) == 0x7F800000 && (b&0x007FFFFF) != 0
	if isSignalingNaNF32(a) || isSignalingNaNF32(b) {
		status.Raise(FlagInvalid)
	}
	switch {
	case aIsNaN:
		return a | 0x00400000
	case bIsNaN:
		return b | 0x00400000
	default:
		return defaultNaNF32
	}
}

// propagateFloat64NaN is propagateFloat32NaN for f64.
func propagateFloat64NaN(a, b uint64, status *Status) uint64 {
	aIsNaN := (a&0x7FF0000000000000) == 0x7FF0000000000000 && (a&0x000FFFFFFFFFFFFF) != 0
	bIsNaN := (b&0x7FF0000000000000) == 0x7FF0000000000000 && (b&0x000FFFFFFFFFFFFF) != 0
	if isSignalingNaNF64(a) || isSignalingNaNF64(b) {
		status.Raise(FlagInvalid)
	}
	switch {
	case aIsNaN:
		return a | 0x0008000000000000
	case bIsNaN:
		return b | 0x0008000000000000
	default:
		return defaultNaNF64Hi
	}
}

// propagateFloatx80NaN is propagateFloat32NaN for fx80, returning the chosen
// operand's sign/exponent word together with its quieted significand.
func propagateFloatx80NaN(aExp uint16, aSig uint64, bExp uint16, bSig uint64, status *Status) (exp uint16, sig uint64) {
	aIsNaN := (aExp&0x7FFF) == 0x7FFF && (aSig&0x7FFFFFFFFFFFFFFF) != 0
	bIsNaN := (bExp&0x7FFF) == 0x7FFF && (bSig&0x7FFFFFFFFFFFFFFF) != 0
	if isSignalingNaNFx80(aExp, aSig) || isSignalingNaNFx80(bExp, bSig) {
		status.Raise(FlagInvalid)
	}
	switch {
	case aIsNaN:
		return aExp, aSig | 0x4000000000000000
	case bIsNaN:
		return bExp, bSig | 0x4000000000000000
	default:
		return defaultNaNFx80Hi, defaultNaNFx80Lo
	}
}
