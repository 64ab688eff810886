/*
 * softfloat - Single precision (f32) arithmetic.
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

// Float32 is a packed IEEE 754 single-precision bit pattern. It carries no
// behavior of its own; every operation on it takes a *Status explicitly.
type Float32 uint32

// float32Sign, float32Exp and float32Frac unpack the three fields of a
// packed f32 word without interpreting them.
func float32Sign(a Float32) bool   { return uint32(a)>>31 != 0 }
func float32Exp(a Float32) int     { return int((uint32(a) >> 23) & 0xFF) }
func float32Frac(a Float32) uint32 { return uint32(a) & 0x007FFFFF }

func packFloat32(sign bool, exp int, sig uint32) Float32 {
	s := uint32(0)
	if sign {
		s = 1
	}
	return Float32((s << 31) + (uint32(exp) << 23) + sig)
}

// float32IsNaN reports whether a's bit pattern encodes a NaN of either kind.
func float32IsNaN(a Float32) bool {
	return (uint32(a)&0x7F800000) == 0x7F800000 && (uint32(a)&0x007FFFFF) != 0
}

// Float32IsSignalingNaN reports whether a is a signaling NaN.
func Float32IsSignalingNaN(a Float32) bool {
	return isSignalingNaNF32(uint32(a))
}

// roundAndPackFloat32 rounds a sign/exponent/significand triple into a
// packed f32, per status's rounding mode and tininess policy. sig holds the
// significand with its leading bit at bit 30 and seven rounding bits below
// the 23 stored fraction bits, already jammed; exp is one less than the
// biased exponent of the result, since packing adds the leading bit into it.
func roundAndPackFloat32(status *Status, sign bool, exp int, sig uint32) Float32 {
	roundNearestEven := status.Mode == RoundNearestEven
	roundIncrement := uint32(0x40)
	switch status.Mode {
	case RoundToZero:
		roundIncrement = 0
	case RoundDown:
		if sign {
			roundIncrement = 0x7F
		} else {
			roundIncrement = 0
		}
	case RoundUp:
		if sign {
			roundIncrement = 0
		} else {
			roundIncrement = 0x7F
		}
	}
	roundBits := sig & 0x7F
	if 0xFD <= uint32(exp) {
		if (0xFD < exp) || (exp == 0xFD && int32(sig+roundIncrement) < 0) {
			status.Raise(FlagOverflow | FlagInexact)
			if roundIncrement == 0 {
				return packFloat32(sign, 0xFE, 0x7FFFFF)
			}
			return packFloat32(sign, 0xFF, 0)
		}
		if exp < 0 {
			isTiny := status.DetectTininess == TininessBeforeRounding || exp < -1 ||
				sig+roundIncrement < 0x80000000
			sig = shift32RightJamming(sig, -exp)
			exp = 0
			roundBits = sig & 0x7F
			if isTiny && roundBits != 0 {
				status.Raise(FlagUnderflow)
			}
		}
	}
	if roundBits != 0 {
		status.Raise(FlagInexact)
	}
	sig = (sig + roundIncrement) >> 7
	if roundBits == 0x40 && roundNearestEven {
		sig &= ^uint32(1)
	}
	if sig == 0 {
		exp = 0
	}
	return packFloat32(sign, exp, sig)
}

// normalizeRoundAndPackFloat32 normalizes a significand with an unknown
// number of leading zeros before handing it to roundAndPackFloat32.
func normalizeRoundAndPackFloat32(status *Status, sign bool, exp int, sig uint32) Float32 {
	shiftCount := countLeadingZeros32(sig) - 1
	return roundAndPackFloat32(status, sign, exp-shiftCount, sig<<uint(shiftCount))
}

// PackFloat32 assembles a packed f32 from its raw fields without rounding,
// for callers that already hold a value in canonical form.
func PackFloat32(sign bool, exp int, frac uint32) Float32 {
	return packFloat32(sign, exp, frac)
}

// Int32ToFloat32 converts a 32-bit signed integer to f32, exactly when it
// fits and rounded per status otherwise.
func Int32ToFloat32(status *Status, a int32) Float32 {
	if a == 0 {
		return 0
	}
	if a == -0x80000000 {
		return packFloat32(true, 0x9E, 0)
	}
	sign := a < 0
	absA := uint32(a)
	if sign {
		absA = uint32(-a)
	}
	return normalizeRoundAndPackFloat32(status, sign, 0x9C, absA)
}

// Float32ToInt32 converts f32 to a 32-bit signed integer, rounding per
// status's mode and raising invalid (returning the appropriate saturated
// value) on overflow or NaN.
func Float32ToInt32(status *Status, a Float32) int32 {
	sign := float32Sign(a)
	exp := float32Exp(a)
	frac := float32Frac(a)
	shiftCount := exp - 0x96
	if exp >= 0x9E {
		if uint32(a) == 0xCF000000 {
			return -0x80000000
		}
		status.Raise(FlagInvalid)
		if !sign || (exp == 0xFF && frac != 0) {
			return 0x7FFFFFFF
		}
		return -0x80000000
	}
	if shiftCount >= 0 {
		z := int32((frac | 0x00800000) << uint(shiftCount))
		if sign {
			return -z
		}
		return z
	}
	var sig uint32
	if exp != 0 {
		sig = frac | 0x00800000
	} else {
		sig = frac
	}
	sig64 := uint64(sig) << 7
	shift := -shiftCount
	shiftedAndJammed := shift64RightJamming(sig64, shift)
	roundBits := shiftedAndJammed & 0x7F
	absZ := int32(shiftedAndJammed >> 7)
	if roundBits != 0 {
		status.Raise(FlagInexact)
	}
	roundUp := false
	switch status.Mode {
	case RoundNearestEven:
		roundUp = roundBits>>6 != 0 && (roundBits != 0x40 || absZ&1 != 0)
	case RoundUp:
		roundUp = !sign && roundBits != 0
	case RoundDown:
		roundUp = sign && roundBits != 0
	case RoundToZero:
		roundUp = false
	}
	if roundUp {
		absZ++
	}
	if sign {
		return -absZ
	}
	return absZ
}

// Float32ToInt32RoundToZero is Float32ToInt32 with the rounding mode forced
// to truncation, independent of status.Mode, matching the dedicated
// round-to-zero conversion the reference exposes alongside the
// mode-sensitive one.
func Float32ToInt32RoundToZero(status *Status, a Float32) int32 {
	sign := float32Sign(a)
	exp := float32Exp(a)
	frac := float32Frac(a)
	shiftCount := exp - 0x9E
	if shiftCount >= 0 {
		if uint32(a) != 0xCF000000 {
			status.Raise(FlagInvalid)
			if !sign || (exp == 0xFF && frac != 0) {
				return 0x7FFFFFFF
			}
		}
		return -0x80000000
	} else if exp <= 0x7E {
		if exp|int(frac) != 0 {
			status.Raise(FlagInexact)
		}
		return 0
	}
	sig := (frac | 0x00800000) << 8
	z := int32(sig >> uint(-shiftCount))
	if uint32(z)<<uint(-shiftCount) != sig {
		status.Raise(FlagInexact)
	}
	if sign {
		z = -z
	}
	return z
}

// Float32ToFloat64 widens f32 to f64 exactly, never rounding.
func Float32ToFloat64(status *Status, a Float32) Float64 {
	sign := float32Sign(a)
	exp := float32Exp(a)
	frac := float32Frac(a)
	if exp == 0xFF {
		if frac != 0 {
			cn := f32ToCommonNaN(uint32(a), status)
			return commonNaNToF64WithSign(cn)
		}
		return packFloat64(sign, 0x7FF, 0)
	}
	if exp == 0 {
		if frac == 0 {
			return packFloat64(sign, 0, 0)
		}
		expCnt, frac2 := normalizeFloat32Subnormal(frac)
		return packFloat64(sign, expCnt+0x37F, uint64(frac2)<<29)
	}
	return packFloat64(sign, exp+0x380, uint64(frac)<<29)
}

func commonNaNToF64WithSign(cn commonNaN) Float64 {
	return Float64(commonNaNToF64(cn))
}

// normalizeFloat32Subnormal shifts a subnormal fraction left until its
// leading bit lands in the implicit-bit position, returning the resulting
// biased-exponent adjustment and shifted fraction.
func normalizeFloat32Subnormal(frac uint32) (exp int, normalized uint32) {
	shiftCount := countLeadingZeros32(frac) - 8
	return 1 - shiftCount, frac << uint(shiftCount)
}

// addFloat32Sigs is the shared significand-alignment core for add and sub:
// subtract (set by Float32Sub) flips b's sign, and the magnitudes are then
// added when the two signs agree and subtracted when they differ.
func addFloat32Sigs(status *Status, a, b Float32, subtract bool) Float32 {
	aSign := float32Sign(a)
	bSign := float32Sign(b)
	if subtract {
		bSign = !bSign
	}
	aExp := float32Exp(a)
	bExp := float32Exp(b)
	aFrac := float32Frac(a)
	bFrac := float32Frac(b)
	expDiff := aExp - bExp

	if aSign == bSign {
		return addFloat32SameSign(status, aSign, aExp, aFrac, bExp, bFrac, expDiff)
	}
	return subFloat32DiffSign(status, aSign, bSign, aExp, aFrac, bExp, bFrac, expDiff)
}

func addFloat32SameSign(status *Status, sign bool, aExp int, aFrac uint32, bExp int, bFrac uint32, expDiff int) Float32 {
	var exp int
	var sig uint32
	switch {
	case expDiff == 0:
		if aExp == 0 {
			if aFrac == 0 && bFrac == 0 {
				return packFloat32(sign, 0, 0)
			}
			return packFloat32(sign, 0, aFrac+bFrac)
		}
		if aExp == 0xFF {
			if aFrac != 0 || bFrac != 0 {
				return Float32(propagateFloat32NaN(uint32(packFloat32(sign, aExp, aFrac)), uint32(packFloat32(sign, bExp, bFrac)), status))
			}
			return packFloat32(sign, 0xFF, 0)
		}
		sig = 0x01000000 + aFrac + bFrac
		exp = aExp
		return roundAndPackFloat32NoShift(status, sign, exp, sig, 6)
	case expDiff < 0:
		aFrac, bFrac = bFrac, aFrac
		aExp, bExp = bExp, aExp
		expDiff = -expDiff
		fallthrough
	default:
		if aExp == 0xFF {
			if aFrac != 0 {
				return Float32(propagateFloat32NaN(uint32(packFloat32(sign, aExp, aFrac)), uint32(packFloat32(sign, bExp, bFrac)), status))
			}
			return packFloat32(sign, 0xFF, 0)
		}
		if bExp == 0 {
			expDiff--
		} else {
			bFrac |= 0x00800000
		}
		bFrac2 := shift32RightJamming(bFrac<<6, expDiff)
		sig = ((aFrac | 0x00800000) << 6) + bFrac2
		exp = aExp
		if aExp == 0 {
			return roundAndPackFloat32(status, sign, 0, sig)
		}
		if sig&0x40000000 == 0 {
			return roundAndPackFloat32(status, sign, exp-1, sig<<1)
		}
		return roundAndPackFloat32(status, sign, exp, sig)
	}
}

// roundAndPackFloat32NoShift handles the aligned (expDiff==0, both
// normalized) same-sign addition path, where sig already carries the
// implicit bit one place higher than normal and must be renormalized by
// exactly the given number of extra guard bits before rounding.
func roundAndPackFloat32NoShift(status *Status, sign bool, exp int, sig uint32, guardBits int) Float32 {
	sig <<= uint(guardBits)
	return roundAndPackFloat32(status, sign, exp, sig)
}

func subFloat32DiffSign(status *Status, aSign, bSign bool, aExp int, aFrac uint32, bExp int, bFrac uint32, expDiff int) Float32 {
	if expDiff != 0 {
		if expDiff < 0 {
			return subFloat32DiffSignOrdered(status, bSign, bExp, bFrac, aExp, aFrac, -expDiff)
		}
		return subFloat32DiffSignOrdered(status, aSign, aExp, aFrac, bExp, bFrac, expDiff)
	}
	if aExp == 0xFF {
		if aFrac != 0 || bFrac != 0 {
			return Float32(propagateFloat32NaN(uint32(packFloat32(aSign, aExp, aFrac)), uint32(packFloat32(bSign, bExp, bFrac)), status))
		}
		status.Raise(FlagInvalid)
		return Float32(defaultNaNF32)
	}
	if aExp == 0 {
		aExp = 1
		bExp = 1
	}
	switch {
	case bFrac < aFrac:
		return subFloat32Mag(status, aSign, aExp, aFrac, bExp, bFrac)
	case aFrac < bFrac:
		return subFloat32Mag(status, !aSign, bExp, bFrac, aExp, aFrac)
	default:
		return packFloat32(status.Mode == RoundDown, 0, 0)
	}
}

func subFloat32DiffSignOrdered(status *Status, sign bool, aExp int, aFrac uint32, bExp int, bFrac uint32, expDiff int) Float32 {
	if aExp == 0xFF {
		if aFrac != 0 {
			return Float32(propagateFloat32NaN(uint32(packFloat32(sign, aExp, aFrac)), uint32(packFloat32(!sign, bExp, bFrac)), status))
		}
		return packFloat32(sign, 0xFF, 0)
	}
	if bExp == 0 {
		if bFrac != 0 {
			expDiff--
		}
	} else {
		bFrac |= 0x00800000
	}
	aFracBit := aFrac
	if aExp != 0 {
		aFracBit |= 0x00800000
	}
	sig := (aFracBit << 7) - shift32RightJamming(bFrac<<7, expDiff)
	exp := aExp
	return normalizeRoundAndPackFloat32(status, sign, exp-1, sig)
}

func subFloat32Mag(status *Status, sign bool, aExp int, aFrac uint32, bExp int, bFrac uint32) Float32 {
	expDiff := aExp - bExp
	var sig uint32
	if expDiff == 0 {
		if aExp == 0 {
			sig = aFrac - bFrac
			return packFloat32(sign, 0, sig)
		}
		sig = (aFrac + 0x00800000) - (bFrac + 0x00800000)
		if aExp == 0 {
			return roundAndPackFloat32(status, sign, 0, sig)
		}
		return normalizeRoundAndPackFloat32(status, sign, aExp-1, sig<<7)
	}
	if bExp == 0 {
		if bFrac == 0 {
			expDiff--
		}
	} else {
		bFrac |= 0x00800000
	}
	aFracBit := aFrac
	if aExp != 0 {
		aFracBit |= 0x00800000
	}
	sig = (aFracBit << 7) - shift32RightJamming(bFrac<<7, expDiff)
	return normalizeRoundAndPackFloat32(status, sign, aExp-7, sig)
}

// Float32Add returns a+b rounded and flagged per status.
func Float32Add(status *Status, a, b Float32) Float32 {
	if float32IsNaN(a) || float32IsNaN(b) {
		return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
	}
	return addFloat32Sigs(status, a, b, false)
}

// Float32Sub returns a-b rounded and flagged per status.
func Float32Sub(status *Status, a, b Float32) Float32 {
	if float32IsNaN(a) || float32IsNaN(b) {
		return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
	}
	return addFloat32Sigs(status, a, b, true)
}

// Float32Mul returns a*b rounded and flagged per status.
func Float32Mul(status *Status, a, b Float32) Float32 {
	aSign := float32Sign(a)
	bSign := float32Sign(b)
	zSign := aSign != bSign
	aExp := float32Exp(a)
	bExp := float32Exp(b)
	aFrac := float32Frac(a)
	bFrac := float32Frac(b)

	if aExp == 0xFF {
		if aFrac != 0 || (bExp == 0xFF && bFrac != 0) || float32IsNaN(b) {
			return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
		}
		if (bExp | int(bFrac)) == 0 {
			status.Raise(FlagInvalid)
			return Float32(defaultNaNF32)
		}
		return packFloat32(zSign, 0xFF, 0)
	}
	if bExp == 0xFF {
		if bFrac != 0 {
			return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
		}
		if (aExp | int(aFrac)) == 0 {
			status.Raise(FlagInvalid)
			return Float32(defaultNaNF32)
		}
		return packFloat32(zSign, 0xFF, 0)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return packFloat32(zSign, 0, 0)
		}
		aExp, aFrac = normalizeFloat32SubnormalExp(aFrac)
	}
	if bExp == 0 {
		if bFrac == 0 {
			return packFloat32(zSign, 0, 0)
		}
		bExp, bFrac = normalizeFloat32SubnormalExp(bFrac)
	}
	zExp := aExp + bExp - 0x7F
	aFrac = (aFrac | 0x00800000) << 7
	bFrac = (bFrac | 0x00800000) << 8
	zSig := uint32(shift64RightJamming(uint64(aFrac)*uint64(bFrac), 32))
	if int32(zSig<<1) >= 0 {
		zSig <<= 1
		zExp--
	}
	return roundAndPackFloat32(status, zSign, zExp, zSig)
}

func normalizeFloat32SubnormalExp(frac uint32) (int, uint32) {
	e, f := normalizeFloat32Subnormal(frac)
	return e, f
}

// Float32Div returns a/b rounded and flagged per status.
func Float32Div(status *Status, a, b Float32) Float32 {
	aSign := float32Sign(a)
	bSign := float32Sign(b)
	zSign := aSign != bSign
	aExp := float32Exp(a)
	bExp := float32Exp(b)
	aFrac := float32Frac(a)
	bFrac := float32Frac(b)

	if aExp == 0xFF {
		if aFrac != 0 || float32IsNaN(b) {
			return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
		}
		if bExp == 0xFF && bFrac != 0 {
			return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
		}
		if bExp == 0xFF {
			status.Raise(FlagInvalid)
			return Float32(defaultNaNF32)
		}
		return packFloat32(zSign, 0xFF, 0)
	}
	if bExp == 0xFF {
		if bFrac != 0 {
			return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
		}
		return packFloat32(zSign, 0, 0)
	}
	if bExp == 0 {
		if bFrac == 0 {
			if (aExp | int(aFrac)) == 0 {
				status.Raise(FlagInvalid)
				return Float32(defaultNaNF32)
			}
			status.Raise(FlagDivByZero)
			return packFloat32(zSign, 0xFF, 0)
		}
		bExp, bFrac = normalizeFloat32SubnormalExp(bFrac)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return packFloat32(zSign, 0, 0)
		}
		aExp, aFrac = normalizeFloat32SubnormalExp(aFrac)
	}
	zExp := aExp - bExp + 0x7D
	aFrac = (aFrac | 0x00800000) << 7
	bFrac = (bFrac | 0x00800000) << 8
	if bFrac <= aFrac<<1 {
		aFrac >>= 1
		zExp++
	}
	zSig := uint32((uint64(aFrac) << 32) / uint64(bFrac))
	if zSig&0x3F == 0 {
		rem := (uint64(aFrac) << 32) - uint64(zSig)*uint64(bFrac)
		if rem != 0 {
			zSig |= 1
		}
	}
	return roundAndPackFloat32(status, zSign, zExp, zSig)
}

// Float32Rem returns the IEEE remainder of a/b, flagged per status. The
// remainder is exact, so it is never rounded and never raises inexact.
func Float32Rem(status *Status, a, b Float32) Float32 {
	aSign := float32Sign(a)
	aExp := float32Exp(a)
	bExp := float32Exp(b)
	aFrac := float32Frac(a)
	bFrac := float32Frac(b)

	if aExp == 0xFF {
		if aFrac != 0 || float32IsNaN(b) {
			return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
		}
		status.Raise(FlagInvalid)
		return Float32(defaultNaNF32)
	}
	if bExp == 0xFF {
		if bFrac != 0 {
			return Float32(propagateFloat32NaN(uint32(a), uint32(b), status))
		}
		return a
	}
	if bExp == 0 {
		if bFrac == 0 {
			status.Raise(FlagInvalid)
			return Float32(defaultNaNF32)
		}
		bExp, bFrac = normalizeFloat32SubnormalExp(bFrac)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return a
		}
		aExp, aFrac = normalizeFloat32SubnormalExp(aFrac)
	}

	expDiff := aExp - bExp
	aSig := aFrac | 0x00800000
	bSig := bFrac | 0x00800000
	var q uint32

	if expDiff < 32 {
		aSig <<= 8
		bSig <<= 8
		if expDiff < 0 {
			if expDiff < -1 {
				return a
			}
			aSig >>= 1
		}
		if bSig <= aSig {
			q = 1
			aSig -= bSig
		}
		if expDiff > 0 {
			q = uint32((uint64(aSig)<<32)/uint64(bSig)) >> uint(32-expDiff)
			bSig >>= 2
			aSig = ((aSig >> 1) << uint(expDiff-1)) - bSig*q
		} else {
			aSig >>= 2
			bSig >>= 2
		}
	} else {
		if bSig <= aSig {
			aSig -= bSig
		}
		aSig64 := uint64(aSig) << 40
		bSig64 := uint64(bSig) << 40
		expDiff -= 64
		for expDiff > 0 {
			q64 := estimateDiv128To64(aSig64, 0, bSig64)
			if q64 > 2 {
				q64 -= 2
			} else {
				q64 = 0
			}
			aSig64 = -(uint64(bSig) * q64 << 38)
			expDiff -= 62
		}
		expDiff += 64
		q64 := estimateDiv128To64(aSig64, 0, bSig64)
		if q64 > 2 {
			q64 -= 2
		} else {
			q64 = 0
		}
		q = uint32(q64 >> uint(64-expDiff))
		bSig <<= 6
		aSig = uint32((aSig64>>33)<<uint(expDiff-1) - uint64(bSig)*uint64(q))
	}

	var alternateASig uint32
	for {
		alternateASig = aSig
		q++
		aSig -= bSig
		if int32(aSig) < 0 {
			break
		}
	}
	sigMean := int32(aSig) + int32(alternateASig)
	if sigMean < 0 || (sigMean == 0 && q&1 != 0) {
		aSig = alternateASig
	}
	zSign := int32(aSig) < 0
	if zSign {
		aSig = -aSig
	}
	return normalizeRoundAndPackFloat32(status, aSign != zSign, bExp, aSig)
}

// Float32Sqrt returns sqrt(a), rounded and flagged per status.
func Float32Sqrt(status *Status, a Float32) Float32 {
	aSign := float32Sign(a)
	aExp := float32Exp(a)
	aFrac := float32Frac(a)

	if aExp == 0xFF {
		if aFrac != 0 {
			return Float32(propagateFloat32NaN(uint32(a), uint32(a), status))
		}
		if !aSign {
			return a
		}
		status.Raise(FlagInvalid)
		return Float32(defaultNaNF32)
	}
	if aSign {
		if (aExp | int(aFrac)) == 0 {
			return a
		}
		status.Raise(FlagInvalid)
		return Float32(defaultNaNF32)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return 0
		}
		aExp, aFrac = normalizeFloat32SubnormalExp(aFrac)
	}
	zExp := ((aExp - 0x7F) >> 1) + 0x7E
	aFrac = (aFrac | 0x00800000) << 8
	zSig := estimateSqrt32(aExp, aFrac) + 2
	if zSig&0x7F <= 5 {
		if zSig < 2 {
			zSig = 0x7FFFFFFF
		} else {
			aFrac64 := uint64(aFrac) << 32
			termHi, termLo := mul64To128(uint64(zSig), uint64(zSig))
			for termHi > aFrac64>>32 || (termHi == aFrac64>>32 && termLo > 0) {
				zSig--
				termHi, termLo = mul64To128(uint64(zSig), uint64(zSig))
			}
			rem := aFrac64 - termHi<<32 - termLo
			if rem != 0 {
				if rem&0x8000000000000000 == 0 {
					if zSig&1 != 0 {
						zSig--
					}
				} else {
					zSig |= 1
				}
			}
		}
	}
	return roundAndPackFloat32(status, false, zExp, (zSig+1)>>1)
}

// Float32Eq is the quiet equality comparison: NaN makes the result false,
// raising invalid only if a NaN operand is signaling.
func Float32Eq(status *Status, a, b Float32) bool {
	if float32IsNaN(a) || float32IsNaN(b) {
		if isSignalingNaNF32(uint32(a)) || isSignalingNaNF32(uint32(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return uint32(a) == uint32(b) || (uint32(a)|uint32(b))<<1 == 0
}

// Float32EqSignaling is the signaling equality comparison: any NaN operand,
// quiet or signaling, raises invalid.
func Float32EqSignaling(status *Status, a, b Float32) bool {
	if float32IsNaN(a) || float32IsNaN(b) {
		status.Raise(FlagInvalid)
		return false
	}
	return uint32(a) == uint32(b) || (uint32(a)|uint32(b))<<1 == 0
}

// Float32Le is the quiet less-than-or-equal comparison.
func Float32Le(status *Status, a, b Float32) bool {
	if float32IsNaN(a) || float32IsNaN(b) {
		if isSignalingNaNF32(uint32(a)) || isSignalingNaNF32(uint32(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	aSign := float32Sign(a)
	bSign := float32Sign(b)
	if aSign != bSign {
		return aSign || (uint32(a)|uint32(b))<<1 == 0
	}
	if aSign {
		return uint32(a) >= uint32(b)
	}
	return uint32(a) <= uint32(b)
}

// Float32Lt is the quiet strict-less-than comparison.
func Float32Lt(status *Status, a, b Float32) bool {
	if float32IsNaN(a) || float32IsNaN(b) {
		if isSignalingNaNF32(uint32(a)) || isSignalingNaNF32(uint32(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	aSign := float32Sign(a)
	bSign := float32Sign(b)
	if aSign != bSign {
		return aSign && (uint32(a)|uint32(b))<<1 != 0
	}
	if aSign {
		return uint32(a) > uint32(b)
	}
	return uint32(a) < uint32(b)
}

// Float32LeQuiet and Float32LtQuiet never raise invalid on a quiet NaN
// operand, matching the reference's "quiet" comparison variants used by
// code that must not trap on ordinary unordered results.
func Float32LeQuiet(status *Status, a, b Float32) bool {
	if float32IsNaN(a) || float32IsNaN(b) {
		if isSignalingNaNF32(uint32(a)) || isSignalingNaNF32(uint32(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return Float32Le(status, a, b)
}

func Float32LtQuiet(status *Status, a, b Float32) bool {
	if float32IsNaN(a) || float32IsNaN(b) {
		if isSignalingNaNF32(uint32(a)) || isSignalingNaNF32(uint32(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return Float32Lt(status, a, b)
}

// Float32Unordered reports whether a and b are unordered (either is NaN),
// raising invalid only for a signaling NaN operand.
func Float32Unordered(status *Status, a, b Float32) bool {
	if float32IsNaN(a) || float32IsNaN(b) {
		if isSignalingNaNF32(uint32(a)) || isSignalingNaNF32(uint32(b)) {
			status.Raise(FlagInvalid)
		}
		return true
	}
	return false
}

// Float32RoundToInt rounds a to the nearest integer value representable in
// f32, per status's rounding mode, leaving the exponent range unchanged.
func Float32RoundToInt(status *Status, a Float32) Float32 {
	aExp := float32Exp(a)
	if aExp >= 0x96 {
		if aExp == 0xFF && float32Frac(a) != 0 {
			return Float32(propagateFloat32NaN(uint32(a), uint32(a), status))
		}
		return a
	}
	sign := float32Sign(a)
	if aExp <= 0x7E {
		if uint32(a)<<1 == 0 {
			return a
		}
		status.Raise(FlagInexact)
		switch status.Mode {
		case RoundNearestEven:
			if aExp == 0x7E && float32Frac(a) != 0 {
				return packFloat32(sign, 0x7F, 0)
			}
		case RoundDown:
			if sign {
				return packFloat32(true, 0x7F, 0)
			}
		case RoundUp:
			if !sign {
				return packFloat32(false, 0x7F, 0)
			}
		}
		return packFloat32(sign, 0, 0)
	}
	lastBitMask := uint32(1) << uint(0x96-aExp)
	roundBitsMask := lastBitMask - 1
	z := uint32(a)
	switch status.Mode {
	case RoundNearestEven:
		z += lastBitMask >> 1
		if z&roundBitsMask == 0 {
			z &= ^lastBitMask
		}
	case RoundToZero:
	case RoundDown:
		if sign && uint32(a)&roundBitsMask != 0 {
			z += roundBitsMask
		}
	case RoundUp:
		if !sign && uint32(a)&roundBitsMask != 0 {
			z += roundBitsMask
		}
	}
	z &= ^roundBitsMask
	if z != uint32(a) {
		status.Raise(FlagInexact)
	}
	return Float32(z)
}
