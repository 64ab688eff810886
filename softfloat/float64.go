/*
 * softfloat - Double precision (f64) arithmetic.
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

// Float64 is a packed IEEE 754 double-precision bit pattern.
type Float64 uint64

func float64Sign(a Float64) bool    { return uint64(a)>>63 != 0 }
func float64Exp(a Float64) int      { return int((uint64(a) >> 52) & 0x7FF) }
func float64Frac(a Float64) uint64  { return uint64(a) & 0x000FFFFFFFFFFFFF }

func packFloat64(sign bool, exp int, sig uint64) Float64 {
	s := uint64(0)
	if sign {
		s = 1
	}
	return Float64((s << 63) + (uint64(exp) << 52) + sig)
}

func float64IsNaN(a Float64) bool {
	return (uint64(a)&0x7FF0000000000000) == 0x7FF0000000000000 && (uint64(a)&0x000FFFFFFFFFFFFF) != 0
}

// Float64IsSignalingNaN reports whether a is a signaling NaN.
func Float64IsSignalingNaN(a Float64) bool {
	return isSignalingNaNF64(uint64(a))
}

// PackFloat64 assembles a packed f64 from its raw fields without rounding.
func PackFloat64(sign bool, exp int, frac uint64) Float64 {
	return packFloat64(sign, exp, frac)
}

func roundAndPackFloat64(status *Status, sign bool, exp int, sig uint64) Float64 {
	roundNearestEven := status.Mode == RoundNearestEven
	roundIncrement := uint64(0x200)
	switch status.Mode {
	case RoundToZero:
		roundIncrement = 0
	case RoundDown:
		if sign {
			roundIncrement = 0x3FF
		} else {
			roundIncrement = 0
		}
	case RoundUp:
		if sign {
			roundIncrement = 0
		} else {
			roundIncrement = 0x3FF
		}
	}
	roundBits := sig & 0x3FF
	if 0x7FD <= uint32(exp) {
		if (0x7FD < exp) || (exp == 0x7FD && int64(sig+roundIncrement) < 0) {
			status.Raise(FlagOverflow | FlagInexact)
			if roundIncrement == 0 {
				return packFloat64(sign, 0x7FE, 0x000FFFFFFFFFFFFF)
			}
			return packFloat64(sign, 0x7FF, 0)
		}
		if exp < 0 {
			isTiny := status.DetectTininess == TininessBeforeRounding || exp < -1 ||
				sig+roundIncrement < 0x8000000000000000
			sig = shift64RightJamming(sig, -exp)
			exp = 0
			roundBits = sig & 0x3FF
			if isTiny && roundBits != 0 {
				status.Raise(FlagUnderflow)
			}
		}
	}
	if roundBits != 0 {
		status.Raise(FlagInexact)
	}
	sig = (sig + roundIncrement) >> 10
	if roundBits == 0x200 && roundNearestEven {
		sig &= ^uint64(1)
	}
	if sig == 0 {
		exp = 0
	}
	return packFloat64(sign, exp, sig)
}

func normalizeRoundAndPackFloat64(status *Status, sign bool, exp int, sig uint64) Float64 {
	shiftCount := countLeadingZeros64(sig) - 1
	return roundAndPackFloat64(status, sign, exp-shiftCount, sig<<uint(shiftCount))
}

func normalizeFloat64Subnormal(frac uint64) (exp int, normalized uint64) {
	shiftCount := countLeadingZeros64(frac) - 11
	return 1 - shiftCount, frac << uint(shiftCount)
}

// Int32ToFloat64 converts a 32-bit signed integer to f64, always exactly.
func Int32ToFloat64(a int32) Float64 {
	if a == 0 {
		return 0
	}
	sign := a < 0
	absA := uint32(a)
	if sign {
		absA = uint32(-a)
	}
	shiftCount := countLeadingZeros32(absA) + 21
	return packFloat64(sign, 0x432-shiftCount, uint64(absA)<<uint(shiftCount))
}

// Int64ToFloat64 converts a 64-bit signed integer to f64, rounded per status.
func Int64ToFloat64(status *Status, a int64) Float64 {
	if a == 0 {
		return 0
	}
	if a == -0x8000000000000000 {
		return packFloat64(true, 0x43E, 0)
	}
	sign := a < 0
	absA := uint64(a)
	if sign {
		absA = uint64(-a)
	}
	return normalizeRoundAndPackFloat64(status, sign, 0x43C, absA)
}

// Float64ToInt32 converts f64 to a 32-bit signed integer.
func Float64ToInt32(status *Status, a Float64) int32 {
	sign := float64Sign(a)
	exp := float64Exp(a)
	frac := float64Frac(a)
	var sig uint64
	if exp != 0 {
		sig = frac | 0x0010000000000000
	} else {
		sig = frac
	}
	shiftCount := 0x42C - exp
	if shiftCount <= 0 {
		if exp == 0x7FF && frac != 0 {
			status.Raise(FlagInvalid)
			return 0x7FFFFFFF
		}
		status.Raise(FlagInvalid)
		if sign {
			return -0x80000000
		}
		return 0x7FFFFFFF
	}
	shifted := shift64RightJamming(sig, shiftCount)
	roundBits := shifted & 0x7F
	if roundBits != 0 {
		status.Raise(FlagInexact)
	}
	absZ := shifted >> 7
	roundUp := false
	switch status.Mode {
	case RoundNearestEven:
		roundUp = roundBits>>6 != 0 && (roundBits != 0x40 || absZ&1 != 0)
	case RoundUp:
		roundUp = !sign && roundBits != 0
	case RoundDown:
		roundUp = sign && roundBits != 0
	}
	if roundUp {
		absZ++
	}
	if absZ > 0x7FFFFFFF && !(sign && absZ == 0x80000000) {
		status.Raise(FlagInvalid)
		if sign {
			return -0x80000000
		}
		return 0x7FFFFFFF
	}
	if sign {
		return -int32(absZ)
	}
	return int32(absZ)
}

// Float64ToInt64 converts f64 to a 64-bit signed integer.
func Float64ToInt64(status *Status, a Float64) int64 {
	sign := float64Sign(a)
	exp := float64Exp(a)
	frac := float64Frac(a)
	var sig uint64
	if exp != 0 {
		sig = frac | 0x0010000000000000
	} else {
		sig = frac
	}
	shiftCount := 0x433 - exp
	if shiftCount <= 0 {
		if shiftCount < -11 {
			status.Raise(FlagInvalid)
			if !sign {
				return 0x7FFFFFFFFFFFFFFF
			}
			return -0x8000000000000000
		}
		sigHigh := sig << uint(-shiftCount)
		if sign {
			return -int64(sigHigh)
		}
		return int64(sigHigh)
	}
	absZ, extra := shift64ExtraRightJamming(sig, 0, shiftCount)
	if extra != 0 {
		status.Raise(FlagInexact)
	}
	roundUp := false
	switch status.Mode {
	case RoundNearestEven:
		roundUp = extra>>63 != 0 && (extra != 0x8000000000000000 || absZ&1 != 0)
	case RoundUp:
		roundUp = !sign && extra != 0
	case RoundDown:
		roundUp = sign && extra != 0
	}
	if roundUp {
		absZ++
	}
	if sign {
		return -int64(absZ)
	}
	return int64(absZ)
}

// Float64ToFloat32 narrows f64 to f32, rounding per status.
func Float64ToFloat32(status *Status, a Float64) Float32 {
	sign := float64Sign(a)
	exp := float64Exp(a)
	frac := float64Frac(a)
	if exp == 0x7FF {
		if frac != 0 {
			cn := f64ToCommonNaN(uint64(a), status)
			return Float32(commonNaNToF32(cn))
		}
		return packFloat32(sign, 0xFF, 0)
	}
	fracW := shift64RightJamming(frac, 22)
	zFrac := uint32(fracW)
	if exp == 0 && zFrac == 0 {
		return packFloat32(sign, 0, 0)
	}
	return roundAndPackFloat32(status, sign, exp-0x381, zFrac|0x40000000)
}

func addFloat64Sigs(status *Status, a, b Float64, subtract bool) Float64 {
	aSign := float64Sign(a)
	bSign := float64Sign(b)
	if subtract {
		bSign = !bSign
	}
	aExp := float64Exp(a)
	bExp := float64Exp(b)
	aFrac := float64Frac(a)
	bFrac := float64Frac(b)
	expDiff := aExp - bExp

	if aSign == bSign {
		return addFloat64SameSign(status, aSign, aExp, aFrac, bExp, bFrac, expDiff)
	}
	return subFloat64DiffSign(status, aSign, bSign, aExp, aFrac, bExp, bFrac, expDiff)
}

func addFloat64SameSign(status *Status, sign bool, aExp int, aFrac uint64, bExp int, bFrac uint64, expDiff int) Float64 {
	var exp int
	var sig uint64
	switch {
	case expDiff == 0:
		if aExp == 0 {
			return packFloat64(sign, 0, aFrac+bFrac)
		}
		if aExp == 0x7FF {
			if aFrac != 0 || bFrac != 0 {
				return Float64(propagateFloat64NaN(uint64(packFloat64(sign, aExp, aFrac)), uint64(packFloat64(sign, bExp, bFrac)), status))
			}
			return packFloat64(sign, 0x7FF, 0)
		}
		sig = 0x0020000000000000 + aFrac + bFrac
		exp = aExp
		return roundAndPackFloat64FromAligned(status, sign, exp, sig<<9)
	case expDiff < 0:
		aFrac, bFrac = bFrac, aFrac
		aExp, bExp = bExp, aExp
		expDiff = -expDiff
		fallthrough
	default:
		if aExp == 0x7FF {
			if aFrac != 0 {
				return Float64(propagateFloat64NaN(uint64(packFloat64(sign, aExp, aFrac)), uint64(packFloat64(sign, bExp, bFrac)), status))
			}
			return packFloat64(sign, 0x7FF, 0)
		}
		if bExp == 0 {
			expDiff--
		} else {
			bFrac |= 0x0010000000000000
		}
		bFracShifted := shift64RightJamming(bFrac<<9, expDiff)
		sig = ((aFrac | 0x0010000000000000) << 9) + bFracShifted
		exp = aExp
		if aExp == 0 {
			return roundAndPackFloat64(status, sign, 0, sig)
		}
		return roundAndPackFloat64FromAligned(status, sign, exp, sig)
	}
}

// roundAndPackFloat64FromAligned renormalizes a significand from the aligned
// addition paths, whose implicit bit sits at bit 61 with bit 62 as headroom
// for the carry, before handing off to the rounding kernel.
func roundAndPackFloat64FromAligned(status *Status, sign bool, exp int, sig uint64) Float64 {
	if sig&0x4000000000000000 == 0 {
		return roundAndPackFloat64(status, sign, exp-1, sig<<1)
	}
	return roundAndPackFloat64(status, sign, exp, sig)
}

func subFloat64DiffSign(status *Status, aSign, bSign bool, aExp int, aFrac uint64, bExp int, bFrac uint64, expDiff int) Float64 {
	if expDiff != 0 {
		if expDiff < 0 {
			return subFloat64DiffSignOrdered(status, bSign, bExp, bFrac, aExp, aFrac, -expDiff)
		}
		return subFloat64DiffSignOrdered(status, aSign, aExp, aFrac, bExp, bFrac, expDiff)
	}
	if aExp == 0x7FF {
		if aFrac != 0 || bFrac != 0 {
			return Float64(propagateFloat64NaN(uint64(packFloat64(aSign, aExp, aFrac)), uint64(packFloat64(bSign, bExp, bFrac)), status))
		}
		status.Raise(FlagInvalid)
		return Float64(defaultNaNF64Hi)
	}
	if aExp == 0 {
		aExp = 1
		bExp = 1
	}
	switch {
	case bFrac < aFrac:
		return subFloat64Mag(status, aSign, aExp, aFrac, bExp, bFrac)
	case aFrac < bFrac:
		return subFloat64Mag(status, !aSign, bExp, bFrac, aExp, aFrac)
	default:
		return packFloat64(status.Mode == RoundDown, 0, 0)
	}
}

func subFloat64DiffSignOrdered(status *Status, sign bool, aExp int, aFrac uint64, bExp int, bFrac uint64, expDiff int) Float64 {
	if aExp == 0x7FF {
		if aFrac != 0 {
			return Float64(propagateFloat64NaN(uint64(packFloat64(sign, aExp, aFrac)), uint64(packFloat64(!sign, bExp, bFrac)), status))
		}
		return packFloat64(sign, 0x7FF, 0)
	}
	if bExp == 0 {
		if bFrac != 0 {
			expDiff--
		}
	} else {
		bFrac |= 0x0010000000000000
	}
	aFracBit := aFrac
	if aExp != 0 {
		aFracBit |= 0x0010000000000000
	}
	sig := (aFracBit << 10) - shift64RightJamming(bFrac<<10, expDiff)
	return normalizeRoundAndPackFloat64(status, sign, aExp-1, sig)
}

func subFloat64Mag(status *Status, sign bool, aExp int, aFrac uint64, bExp int, bFrac uint64) Float64 {
	expDiff := aExp - bExp
	if expDiff == 0 {
		if aExp == 0 {
			return packFloat64(sign, 0, aFrac-bFrac)
		}
		sig := (aFrac + 0x0010000000000000) - (bFrac + 0x0010000000000000)
		return normalizeRoundAndPackFloat64(status, sign, aExp-1, sig<<10)
	}
	if bExp == 0 {
		if bFrac == 0 {
			expDiff--
		}
	} else {
		bFrac |= 0x0010000000000000
	}
	aFracBit := aFrac
	if aExp != 0 {
		aFracBit |= 0x0010000000000000
	}
	sig := (aFracBit << 10) - shift64RightJamming(bFrac<<10, expDiff)
	return normalizeRoundAndPackFloat64(status, sign, aExp-10, sig)
}

// Float64Add returns a+b rounded and flagged per status.
func Float64Add(status *Status, a, b Float64) Float64 {
	if float64IsNaN(a) || float64IsNaN(b) {
		return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
	}
	return addFloat64Sigs(status, a, b, false)
}

// Float64Sub returns a-b rounded and flagged per status.
func Float64Sub(status *Status, a, b Float64) Float64 {
	if float64IsNaN(a) || float64IsNaN(b) {
		return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
	}
	return addFloat64Sigs(status, a, b, true)
}

func normalizeFloat64SubnormalExp(frac uint64) (int, uint64) {
	return normalizeFloat64Subnormal(frac)
}

// Float64Mul returns a*b rounded and flagged per status.
func Float64Mul(status *Status, a, b Float64) Float64 {
	aSign := float64Sign(a)
	bSign := float64Sign(b)
	zSign := aSign != bSign
	aExp := float64Exp(a)
	bExp := float64Exp(b)
	aFrac := float64Frac(a)
	bFrac := float64Frac(b)

	if aExp == 0x7FF {
		if aFrac != 0 || float64IsNaN(b) {
			return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
		}
		if (bExp | int(bFrac)) == 0 {
			status.Raise(FlagInvalid)
			return Float64(defaultNaNF64Hi)
		}
		return packFloat64(zSign, 0x7FF, 0)
	}
	if bExp == 0x7FF {
		if bFrac != 0 {
			return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
		}
		if (aExp | int(aFrac)) == 0 {
			status.Raise(FlagInvalid)
			return Float64(defaultNaNF64Hi)
		}
		return packFloat64(zSign, 0x7FF, 0)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return packFloat64(zSign, 0, 0)
		}
		aExp, aFrac = normalizeFloat64SubnormalExp(aFrac)
	}
	if bExp == 0 {
		if bFrac == 0 {
			return packFloat64(zSign, 0, 0)
		}
		bExp, bFrac = normalizeFloat64SubnormalExp(bFrac)
	}
	zExp := aExp + bExp - 0x3FF
	aFrac = (aFrac | 0x0010000000000000) << 10
	bFrac = (bFrac | 0x0010000000000000) << 11
	zSig0, zSig1 := mul64To128(aFrac, bFrac)
	zSig := zSig0
	if zSig1 != 0 {
		zSig |= 1
	}
	if int64(zSig<<1) >= 0 {
		zSig <<= 1
		zExp--
	}
	return roundAndPackFloat64(status, zSign, zExp, zSig)
}

// Float64Div returns a/b rounded and flagged per status.
func Float64Div(status *Status, a, b Float64) Float64 {
	aSign := float64Sign(a)
	bSign := float64Sign(b)
	zSign := aSign != bSign
	aExp := float64Exp(a)
	bExp := float64Exp(b)
	aFrac := float64Frac(a)
	bFrac := float64Frac(b)

	if aExp == 0x7FF {
		if aFrac != 0 || float64IsNaN(b) {
			return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
		}
		if bExp == 0x7FF {
			if bFrac != 0 {
				return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
			}
			status.Raise(FlagInvalid)
			return Float64(defaultNaNF64Hi)
		}
		return packFloat64(zSign, 0x7FF, 0)
	}
	if bExp == 0x7FF {
		if bFrac != 0 {
			return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
		}
		return packFloat64(zSign, 0, 0)
	}
	if bExp == 0 {
		if bFrac == 0 {
			if (aExp | int(aFrac)) == 0 {
				status.Raise(FlagInvalid)
				return Float64(defaultNaNF64Hi)
			}
			status.Raise(FlagDivByZero)
			return packFloat64(zSign, 0x7FF, 0)
		}
		bExp, bFrac = normalizeFloat64SubnormalExp(bFrac)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return packFloat64(zSign, 0, 0)
		}
		aExp, aFrac = normalizeFloat64SubnormalExp(aFrac)
	}
	zExp := aExp - bExp + 0x3FD
	aFrac = (aFrac | 0x0010000000000000) << 10
	bFrac = (bFrac | 0x0010000000000000) << 11
	if bFrac <= aFrac<<1 {
		aFrac >>= 1
		zExp++
	}
	zSig := estimateDiv128To64(aFrac, 0, bFrac)
	if zSig&0x1FF <= 2 {
		bHi, bLo := mul64To128(bFrac, zSig)
		rem0, rem1 := sub128(aFrac, 0, bHi, bLo)
		for int64(rem0) < 0 {
			zSig--
			rem0, rem1 = add128(rem0, rem1, 0, bFrac)
		}
		if rem1 != 0 {
			zSig |= 1
		}
	}
	return roundAndPackFloat64(status, zSign, zExp, zSig)
}

// Float64Rem returns the IEEE remainder of a/b.
func Float64Rem(status *Status, a, b Float64) Float64 {
	aSign := float64Sign(a)
	aExp := float64Exp(a)
	bExp := float64Exp(b)
	aFrac := float64Frac(a)
	bFrac := float64Frac(b)

	if aExp == 0x7FF {
		if aFrac != 0 || float64IsNaN(b) {
			return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
		}
		status.Raise(FlagInvalid)
		return Float64(defaultNaNF64Hi)
	}
	if bExp == 0x7FF {
		if bFrac != 0 {
			return Float64(propagateFloat64NaN(uint64(a), uint64(b), status))
		}
		return a
	}
	if bExp == 0 {
		if bFrac == 0 {
			status.Raise(FlagInvalid)
			return Float64(defaultNaNF64Hi)
		}
		bExp, bFrac = normalizeFloat64SubnormalExp(bFrac)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return a
		}
		aExp, aFrac = normalizeFloat64SubnormalExp(aFrac)
	}
	expDiff := aExp - bExp
	aSig := (aFrac | 0x0010000000000000) << 11
	bSig := (bFrac | 0x0010000000000000) << 11
	if expDiff < 0 {
		if expDiff < -1 {
			return a
		}
		aSig >>= 1
	}
	var q uint64
	if bSig <= aSig {
		q = 1
		aSig -= bSig
	}
	expDiff -= 64
	for expDiff > 0 {
		q = estimateDiv128To64(aSig, 0, bSig)
		if q > 2 {
			q -= 2
		} else {
			q = 0
		}
		aSig = -((bSig >> 2) * q)
		expDiff -= 62
	}
	expDiff += 64
	if expDiff > 0 {
		q = estimateDiv128To64(aSig, 0, bSig)
		if q > 2 {
			q -= 2
		} else {
			q = 0
		}
		q >>= uint(64 - expDiff)
		bSig >>= 2
		aSig = ((aSig >> 1) << uint(expDiff-1)) - bSig*q
	} else {
		aSig >>= 2
		bSig >>= 2
	}

	var alternateASig uint64
	for {
		alternateASig = aSig
		q++
		aSig -= bSig
		if int64(aSig) < 0 {
			break
		}
	}
	sigMean := int64(aSig + alternateASig)
	if sigMean < 0 || (sigMean == 0 && q&1 != 0) {
		aSig = alternateASig
	}
	zSign := int64(aSig) < 0
	if zSign {
		aSig = -aSig
	}
	return normalizeRoundAndPackFloat64(status, aSign != zSign, bExp, aSig)
}

// Float64Sqrt returns sqrt(a), rounded and flagged per status.
func Float64Sqrt(status *Status, a Float64) Float64 {
	aSign := float64Sign(a)
	aExp := float64Exp(a)
	aFrac := float64Frac(a)

	if aExp == 0x7FF {
		if aFrac != 0 {
			return Float64(propagateFloat64NaN(uint64(a), uint64(a), status))
		}
		if !aSign {
			return a
		}
		status.Raise(FlagInvalid)
		return Float64(defaultNaNF64Hi)
	}
	if aSign {
		if (aExp | int(aFrac)) == 0 {
			return a
		}
		status.Raise(FlagInvalid)
		return Float64(defaultNaNF64Hi)
	}
	if aExp == 0 {
		if aFrac == 0 {
			return 0
		}
		aExp, aFrac = normalizeFloat64SubnormalExp(aFrac)
	}
	zExp := ((aExp - 0x3FF) >> 1) + 0x3FE
	aFrac |= 0x0010000000000000
	zSig := uint64(estimateSqrt32(aExp, uint32(aFrac>>21))) << 21
	aFrac <<= 9 - uint(aExp&1)
	zSig = estimateDiv128To64(aFrac, 0, zSig+(zSig>>2)) + zSig/2
	zSig += 2
	if zSig&0x3FF <= 5 {
		shift := 1
		if aExp&1 != 0 {
			shift = 0
		}
		aFracHi := aFrac >> uint(shift)
		termHi, termLo := mul64To128(zSig, zSig)
		for termHi > aFracHi || (termHi == aFracHi && termLo > 0) {
			zSig--
			termHi, termLo = mul64To128(zSig, zSig)
		}
		rem := aFracHi - termHi
		if rem != 0 || termLo != 0 {
			if rem&0x8000000000000000 == 0 {
				if zSig&1 != 0 {
					zSig--
				}
			} else {
				zSig |= 1
			}
		}
	}
	return roundAndPackFloat64(status, false, zExp, (zSig+1)>>1)
}

// Float64Eq is the quiet equality comparison.
func Float64Eq(status *Status, a, b Float64) bool {
	if float64IsNaN(a) || float64IsNaN(b) {
		if isSignalingNaNF64(uint64(a)) || isSignalingNaNF64(uint64(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return uint64(a) == uint64(b) || (uint64(a)|uint64(b))<<1 == 0
}

// Float64EqSignaling is the signaling equality comparison.
func Float64EqSignaling(status *Status, a, b Float64) bool {
	if float64IsNaN(a) || float64IsNaN(b) {
		status.Raise(FlagInvalid)
		return false
	}
	return uint64(a) == uint64(b) || (uint64(a)|uint64(b))<<1 == 0
}

// Float64Le is the quiet less-than-or-equal comparison.
func Float64Le(status *Status, a, b Float64) bool {
	if float64IsNaN(a) || float64IsNaN(b) {
		if isSignalingNaNF64(uint64(a)) || isSignalingNaNF64(uint64(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	aSign := float64Sign(a)
	bSign := float64Sign(b)
	if aSign != bSign {
		return aSign || (uint64(a)|uint64(b))<<1 == 0
	}
	if aSign {
		return uint64(a) >= uint64(b)
	}
	return uint64(a) <= uint64(b)
}

// Float64Lt is the quiet strict-less-than comparison.
func Float64Lt(status *Status, a, b Float64) bool {
	if float64IsNaN(a) || float64IsNaN(b) {
		if isSignalingNaNF64(uint64(a)) || isSignalingNaNF64(uint64(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	aSign := float64Sign(a)
	bSign := float64Sign(b)
	if aSign != bSign {
		return aSign && (uint64(a)|uint64(b))<<1 != 0
	}
	if aSign {
		return uint64(a) > uint64(b)
	}
	return uint64(a) < uint64(b)
}

func Float64LeQuiet(status *Status, a, b Float64) bool {
	if float64IsNaN(a) || float64IsNaN(b) {
		if isSignalingNaNF64(uint64(a)) || isSignalingNaNF64(uint64(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return Float64Le(status, a, b)
}

func Float64LtQuiet(status *Status, a, b Float64) bool {
	if float64IsNaN(a) || float64IsNaN(b) {
		if isSignalingNaNF64(uint64(a)) || isSignalingNaNF64(uint64(b)) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return Float64Lt(status, a, b)
}

// Float64Unordered reports whether a and b are unordered.
func Float64Unordered(status *Status, a, b Float64) bool {
	if float64IsNaN(a) || float64IsNaN(b) {
		if isSignalingNaNF64(uint64(a)) || isSignalingNaNF64(uint64(b)) {
			status.Raise(FlagInvalid)
		}
		return true
	}
	return false
}

// Float64RoundToInt rounds a to the nearest integer value representable in
// f64, per status's rounding mode.
func Float64RoundToInt(status *Status, a Float64) Float64 {
	aExp := float64Exp(a)
	if aExp >= 0x433 {
		if aExp == 0x7FF && float64Frac(a) != 0 {
			return Float64(propagateFloat64NaN(uint64(a), uint64(a), status))
		}
		return a
	}
	sign := float64Sign(a)
	if aExp < 0x3FF {
		if uint64(a)<<1 == 0 {
			return a
		}
		status.Raise(FlagInexact)
		switch status.Mode {
		case RoundNearestEven:
			if aExp == 0x3FE && float64Frac(a) != 0 {
				return packFloat64(sign, 0x3FF, 0)
			}
		case RoundDown:
			if sign {
				return packFloat64(true, 0x3FF, 0)
			}
		case RoundUp:
			if !sign {
				return packFloat64(false, 0x3FF, 0)
			}
		}
		return packFloat64(sign, 0, 0)
	}
	lastBitMask := uint64(1) << uint(0x433-aExp)
	roundBitsMask := lastBitMask - 1
	z := uint64(a)
	switch status.Mode {
	case RoundNearestEven:
		z += lastBitMask >> 1
		if z&roundBitsMask == 0 {
			z &= ^lastBitMask
		}
	case RoundToZero:
	case RoundDown:
		if sign && uint64(a)&roundBitsMask != 0 {
			z += roundBitsMask
		}
	case RoundUp:
		if !sign && uint64(a)&roundBitsMask != 0 {
			z += roundBitsMask
		}
	}
	z &= ^roundBitsMask
	if z != uint64(a) {
		status.Raise(FlagInexact)
	}
	return Float64(z)
}
