/*
 * softfloat - Extended precision (fx80) arithmetic.
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

// Floatx80 is a packed IEEE 754 extended-precision value: a 16-bit
// sign/exponent word and a 64-bit significand with an explicit integer bit,
// stored as a struct rather than a single scalar because no native Go
// integer type holds 80 bits.
type Floatx80 struct {
	Exp uint16
	Sig uint64
}

func floatx80Sign(a Floatx80) bool { return a.Exp>>15 != 0 }
func floatx80Exp(a Floatx80) int   { return int(a.Exp & 0x7FFF) }

func packFloatx80(sign bool, exp int, sig uint64) Floatx80 {
	s := uint16(0)
	if sign {
		s = 1
	}
	return Floatx80{Exp: (s << 15) | uint16(exp), Sig: sig}
}

func floatx80IsNaN(a Floatx80) bool {
	return (a.Exp&0x7FFF) == 0x7FFF && (a.Sig&0x7FFFFFFFFFFFFFFF) != 0
}

// Floatx80IsSignalingNaN reports whether a is a signaling NaN.
func Floatx80IsSignalingNaN(a Floatx80) bool {
	return isSignalingNaNFx80(a.Exp, a.Sig)
}

// PackFloatx80 assembles a packed fx80 value from its raw fields without
// rounding.
func PackFloatx80(sign bool, exp int, sig uint64) Floatx80 {
	return packFloatx80(sign, exp, sig)
}

// roundAndPackFloatx80 rounds a sign/exponent/significand triple into a
// packed fx80 value. roundingPrecision, taken from status.RoundingPrecision
// unless overridden by the caller (fx80 rem always rounds at 80 bits
// regardless of status), determines how many significand bits are kept;
// the container itself is always 64 significand bits wide.
func roundAndPackFloatx80(status *Status, roundingPrecision Precision, sign bool, exp int, sig0, sig1 uint64) Floatx80 {
	roundNearestEven := status.Mode == RoundNearestEven

	if roundingPrecision != Precision80 {
		var roundIncrement, roundMask uint64
		if roundingPrecision == Precision64 {
			roundIncrement = 0x400
			roundMask = 0x7FF
		} else {
			roundIncrement = 0x0000008000000000
			roundMask = 0x000000FFFFFFFFFF
		}
		switch status.Mode {
		case RoundToZero:
			roundIncrement = 0
		case RoundDown:
			if sign {
				roundIncrement = roundMask
			} else {
				roundIncrement = 0
			}
		case RoundUp:
			if sign {
				roundIncrement = 0
			} else {
				roundIncrement = roundMask
			}
		}
		return roundAndPackFloatx80Narrow(status, roundingPrecision, sign, exp, sig0, sig1, roundIncrement, roundMask, roundNearestEven)
	}

	roundIncrement := uint64(0x400)
	switch status.Mode {
	case RoundToZero:
		roundIncrement = 0
	case RoundDown:
		if sign {
			roundIncrement = 0x7FF
		} else {
			roundIncrement = 0
		}
	case RoundUp:
		if sign {
			roundIncrement = 0
		} else {
			roundIncrement = 0x7FF
		}
	}
	roundBits := sig1 & 0x7FFFFFFFFFFFFFFF
	if 0x7FFD <= uint32(exp) {
		if 0x7FFE < exp || (exp == 0x7FFE && (sig0+1 == 0) && sig1+roundIncrement < roundIncrement) {
			status.Raise(FlagOverflow | FlagInexact)
			if roundIncrement == 0 {
				return packFloatx80(sign, 0x7FFE, 0xFFFFFFFFFFFFFFFF)
			}
			return packFloatx80(sign, 0x7FFF, 0x8000000000000000)
		}
		if exp <= 0 {
			isTiny := status.DetectTininess == TininessBeforeRounding || exp < 0 ||
				sig0+roundIncrement < 0x8000000000000000 ||
				(sig0 == 0xFFFFFFFFFFFFFFFF && sig1 != 0)
			sig0, sig1 = shift64ExtraRightJamming(sig0, sig1, 1-exp)
			exp = 0
			roundBits = sig1 & 0x7FFFFFFFFFFFFFFF
			if isTiny && roundBits != 0 {
				status.Raise(FlagUnderflow)
			}
		}
	}
	if roundBits != 0 {
		status.Raise(FlagInexact)
	}
	if sig1+roundIncrement < sig1 {
		sig0++
	}
	sig1 += roundIncrement
	if roundBits == 0x4000000000000000 && sig1 == 0 && roundNearestEven {
		sig0 &= ^uint64(1)
	}
	if sig0 == 0 {
		exp = 0
	}
	return packFloatx80(sign, exp, sig0)
}

// roundAndPackFloatx80Narrow is the Precision32/Precision64 path: the
// result's significand is rounded to the requested width but the container
// remains the full 64-bit significand.
func roundAndPackFloatx80Narrow(status *Status, precision Precision, sign bool, exp int, sig0, sig1 uint64, roundIncrement, roundMask uint64, roundNearestEven bool) Floatx80 {
	if sig1 != 0 {
		sig0 |= 1
	}
	roundBits := sig0 & roundMask
	if 0x7FFD <= uint32(exp) {
		if 0x7FFE < exp || (exp == 0x7FFE && sig0+roundIncrement < sig0) {
			status.Raise(FlagOverflow | FlagInexact)
			if roundIncrement == 0 {
				return packFloatx80(sign, 0x7FFE, ^roundMask)
			}
			return packFloatx80(sign, 0x7FFF, 0x8000000000000000)
		}
		if exp <= 0 {
			isTiny := status.DetectTininess == TininessBeforeRounding || exp < 0 ||
				sig0+roundIncrement < 0x8000000000000000
			sig0, _ = shift64ExtraRightJamming(sig0, sig1, 1-exp)
			exp = 0
			roundBits = sig0 & roundMask
			if isTiny && roundBits != 0 {
				status.Raise(FlagUnderflow)
			}
			if roundBits != 0 {
				status.Raise(FlagInexact)
			}
			sig0 += roundIncrement
			if roundBits == roundMask>>1+1 && roundNearestEven {
				sig0 &= ^(roundMask + 1)
			}
			sig0 &= ^roundMask
			if sig0 == 0 {
				exp = 0
			}
			return packFloatx80(sign, exp, sig0)
		}
	}
	if roundBits != 0 || sig1 != 0 {
		status.Raise(FlagInexact)
	}
	sig0 += roundIncrement
	if sig0 < roundIncrement {
		sig0 = 0x8000000000000000
		exp++
	}
	mid := (roundMask >> 1) + 1
	if roundBits == mid && roundNearestEven {
		sig0 &= ^(roundMask + 1)
	}
	sig0 &= ^roundMask
	if sig0 == 0 {
		exp = 0
	}
	return packFloatx80(sign, exp, sig0)
}

func normalizeRoundAndPackFloatx80(status *Status, roundingPrecision Precision, sign bool, exp int, sig0, sig1 uint64) Floatx80 {
	if sig0 == 0 {
		sig0 = sig1
		sig1 = 0
		exp -= 64
	}
	shiftCount := countLeadingZeros64(sig0)
	sig0, sig1 = shortShift128Left2(sig0, sig1, shiftCount)
	return roundAndPackFloatx80(status, roundingPrecision, sign, exp-shiftCount, sig0, sig1)
}

// shortShift128Left2 shifts the 128-bit pair (a0:a1) left by count in
// [0,63], the same operation as shortShift128Left; fx80's normalize step and
// multiply use it.
func shortShift128Left2(a0, a1 uint64, count int) (uint64, uint64) {
	if count == 0 {
		return a0, a1
	}
	z0 := (a0 << uint(count)) | (a1 >> uint(64-count))
	z1 := a1 << uint(count)
	return z0, z1
}

// Int32ToFloatx80 converts a 32-bit signed integer to fx80, always exactly.
func Int32ToFloatx80(a int32) Floatx80 {
	if a == 0 {
		return Floatx80{}
	}
	sign := a < 0
	absA := uint32(a)
	if sign {
		absA = uint32(-a)
	}
	shiftCount := countLeadingZeros32(absA) + 32
	return packFloatx80(sign, 0x403E-shiftCount, uint64(absA)<<uint(shiftCount))
}

// Int64ToFloatx80 converts a 64-bit signed integer to fx80, always exactly.
func Int64ToFloatx80(status *Status, a int64) Floatx80 {
	if a == 0 {
		return Floatx80{}
	}
	sign := a < 0
	absA := uint64(a)
	if sign {
		absA = uint64(-a)
	}
	shiftCount := countLeadingZeros64(absA)
	return packFloatx80(sign, 0x403E-shiftCount, absA<<uint(shiftCount))
}

// Floatx80ToFloat64 narrows fx80 to f64, rounding per status.
func Floatx80ToFloat64(status *Status, a Floatx80) Float64 {
	sign := floatx80Sign(a)
	exp := floatx80Exp(a)
	sig := a.Sig
	if exp == 0x7FFF {
		if sig<<1 != 0 {
			cn := fx80ToCommonNaN(a.Exp, a.Sig, status)
			return Float64(commonNaNToF64(cn))
		}
		return packFloat64(sign, 0x7FF, 0)
	}
	sig2 := shift64RightJamming(sig, 1)
	if exp == 0 && sig == 0 {
		return packFloat64(sign, 0, 0)
	}
	return roundAndPackFloat64(status, sign, exp-0x3C01, sig2)
}

// Float64ToFloatx80 widens f64 to fx80 exactly.
func Float64ToFloatx80(status *Status, a Float64) Floatx80 {
	sign := float64Sign(a)
	exp := float64Exp(a)
	frac := float64Frac(a)
	if exp == 0x7FF {
		if frac != 0 {
			cn := f64ToCommonNaN(uint64(a), status)
			fExp, fSig := commonNaNToFx80(cn)
			return Floatx80{Exp: fExp, Sig: fSig}
		}
		return packFloatx80(sign, 0x7FFF, 0x8000000000000000)
	}
	if exp == 0 {
		if frac == 0 {
			return packFloatx80(sign, 0, 0)
		}
		expCnt, fracN := normalizeFloat64Subnormal(frac)
		return packFloatx80(sign, expCnt+0x3C00, fracN<<11|0x8000000000000000)
	}
	return packFloatx80(sign, exp+0x3C00, (frac|0x0010000000000000)<<11)
}

func addFloatx80Sigs(status *Status, a, b Floatx80, subtract bool) Floatx80 {
	aSign := floatx80Sign(a)
	bSign := floatx80Sign(b)
	if subtract {
		bSign = !bSign
	}
	aExp := floatx80Exp(a)
	bExp := floatx80Exp(b)
	aSig := a.Sig
	bSig := b.Sig
	expDiff := aExp - bExp
	precision := status.RoundingPrecision

	if aSign == bSign {
		if expDiff == 0 {
			if aExp == 0x7FFF {
				if (aSig|bSig)<<1 != 0 {
					exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
					return Floatx80{Exp: exp, Sig: sig}
				}
				return packFloatx80(aSign, 0x7FFF, 0x8000000000000000)
			}
			zSig0 := aSig + bSig
			var zSig1 uint64
			if zSig0 < aSig {
				zSig0, zSig1 = shift64ExtraRightJamming(zSig0, 0, 1)
				zSig0 |= 0x8000000000000000
				aExp++
			}
			return roundAndPackFloatx80(status, precision, aSign, aExp, zSig0, zSig1)
		}
		if expDiff < 0 {
			aSig, bSig = bSig, aSig
			aExp, bExp = bExp, aExp
			expDiff = -expDiff
		}
		if aExp == 0x7FFF {
			if aSig<<1 != 0 {
				exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
				return Floatx80{Exp: exp, Sig: sig}
			}
			return packFloatx80(aSign, 0x7FFF, 0x8000000000000000)
		}
		bSig0, bSig1 := shift64ExtraRightJamming(bSig, 0, expDiff)
		zSig0 := aSig + bSig0
		if zSig0 < aSig {
			zSig0, bSig1 = shift64ExtraRightJamming(zSig0, bSig1, 1)
			zSig0 |= 0x8000000000000000
			aExp++
		}
		return roundAndPackFloatx80(status, precision, aSign, aExp, zSig0, bSig1)
	}

	if expDiff != 0 {
		if expDiff < 0 {
			return subFloatx80Ordered(status, precision, bSign, bExp, bSig, aExp, aSig, -expDiff)
		}
		return subFloatx80Ordered(status, precision, aSign, aExp, aSig, bExp, bSig, expDiff)
	}
	if aExp == 0x7FFF {
		if (aSig|bSig)<<1 != 0 {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		status.Raise(FlagInvalid)
		return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
	}
	switch {
	case bSig < aSig:
		return subFloatx80Mag(status, precision, aSign, aExp, aSig, bSig)
	case aSig < bSig:
		return subFloatx80Mag(status, precision, !aSign, bExp, bSig, aSig)
	default:
		return packFloatx80(status.Mode == RoundDown, 0, 0)
	}
}

func subFloatx80Ordered(status *Status, precision Precision, sign bool, aExp int, aSig uint64, bExp int, bSig uint64, expDiff int) Floatx80 {
	if aExp == 0x7FFF {
		if aSig<<1 != 0 {
			exp, sig := propagateFloatx80NaN(uint16(boolBit(sign))<<15|0x7FFF, aSig, uint16(boolBit(!sign))<<15|uint16(bExp), bSig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		return packFloatx80(sign, 0x7FFF, 0x8000000000000000)
	}
	bSig0, bSig1 := shift64ExtraRightJamming(bSig, 0, expDiff)
	aSig0, aSig1 := sub128(aSig, 0, bSig0, bSig1)
	return normalizeRoundAndPackFloatx80(status, precision, sign, aExp, aSig0, aSig1)
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func subFloatx80Mag(status *Status, precision Precision, sign bool, aExp int, aSig uint64, bSig uint64) Floatx80 {
	zSig0, zSig1 := sub128(aSig, 0, bSig, 0)
	return normalizeRoundAndPackFloatx80(status, precision, sign, aExp, zSig0, zSig1)
}

// Floatx80Add returns a+b rounded and flagged per status.
func Floatx80Add(status *Status, a, b Floatx80) Floatx80 {
	if floatx80IsNaN(a) || floatx80IsNaN(b) {
		exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
		return Floatx80{Exp: exp, Sig: sig}
	}
	return addFloatx80Sigs(status, a, b, false)
}

// Floatx80Sub returns a-b rounded and flagged per status.
func Floatx80Sub(status *Status, a, b Floatx80) Floatx80 {
	if floatx80IsNaN(a) || floatx80IsNaN(b) {
		exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
		return Floatx80{Exp: exp, Sig: sig}
	}
	return addFloatx80Sigs(status, a, b, true)
}

// Floatx80Mul returns a*b rounded and flagged per status.
func Floatx80Mul(status *Status, a, b Floatx80) Floatx80 {
	aSign := floatx80Sign(a)
	bSign := floatx80Sign(b)
	zSign := aSign != bSign
	aExp := floatx80Exp(a)
	bExp := floatx80Exp(b)
	aSig := a.Sig
	bSig := b.Sig

	if aExp == 0x7FFF {
		if aSig<<1 != 0 || (bExp == 0x7FFF && bSig<<1 != 0) {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		if bExp == 0 && bSig == 0 {
			status.Raise(FlagInvalid)
			return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
		}
		return packFloatx80(zSign, 0x7FFF, 0x8000000000000000)
	}
	if bExp == 0x7FFF {
		if bSig<<1 != 0 {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		if aExp == 0 && aSig == 0 {
			status.Raise(FlagInvalid)
			return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
		}
		return packFloatx80(zSign, 0x7FFF, 0x8000000000000000)
	}
	if aExp == 0 {
		if aSig == 0 {
			return packFloatx80(zSign, 0, 0)
		}
		aExp, aSig = normalizeFloatx80Subnormal(aSig)
	}
	if bExp == 0 {
		if bSig == 0 {
			return packFloatx80(zSign, 0, 0)
		}
		bExp, bSig = normalizeFloatx80Subnormal(bSig)
	}
	zExp := aExp + bExp - 0x3FFE
	zSig0, zSig1 := mul64To128(aSig, bSig)
	if zSig0&0x8000000000000000 == 0 {
		zSig0, zSig1 = shortShift128Left2(zSig0, zSig1, 1)
		zExp--
	}
	return roundAndPackFloatx80(status, status.RoundingPrecision, zSign, zExp, zSig0, zSig1)
}

func normalizeFloatx80Subnormal(sig uint64) (int, uint64) {
	shiftCount := countLeadingZeros64(sig)
	return 1 - shiftCount, sig << uint(shiftCount)
}

// Floatx80Div returns a/b rounded and flagged per status.
func Floatx80Div(status *Status, a, b Floatx80) Floatx80 {
	aSign := floatx80Sign(a)
	bSign := floatx80Sign(b)
	zSign := aSign != bSign
	aExp := floatx80Exp(a)
	bExp := floatx80Exp(b)
	aSig := a.Sig
	bSig := b.Sig

	if aExp == 0x7FFF {
		if aSig<<1 != 0 {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		if bExp == 0x7FFF {
			if bSig<<1 != 0 {
				exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
				return Floatx80{Exp: exp, Sig: sig}
			}
			status.Raise(FlagInvalid)
			return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
		}
		return packFloatx80(zSign, 0x7FFF, 0x8000000000000000)
	}
	if bExp == 0x7FFF {
		if bSig<<1 != 0 {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		return packFloatx80(zSign, 0, 0)
	}
	if bExp == 0 {
		if bSig == 0 {
			if aExp == 0 && aSig == 0 {
				status.Raise(FlagInvalid)
				return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
			}
			status.Raise(FlagDivByZero)
			return packFloatx80(zSign, 0x7FFF, 0x8000000000000000)
		}
		bExp, bSig = normalizeFloatx80Subnormal(bSig)
	}
	if aExp == 0 {
		if aSig == 0 {
			return packFloatx80(zSign, 0, 0)
		}
		aExp, aSig = normalizeFloatx80Subnormal(aSig)
	}
	zExp := aExp - bExp + 0x3FFE
	rem0, rem1 := aSig, uint64(0)
	if bSig <= rem0 {
		rem0, rem1 = shift128Right(rem0, rem1, 1)
		zExp++
	}
	zSig := estimateDiv128To64(rem0, rem1, bSig)
	zSig0, zSig1 := mul64To128(bSig, zSig)
	rem0, rem1 = sub128(rem0, rem1, zSig0, zSig1)
	for int64(rem0) < 0 {
		zSig--
		rem0, rem1 = add128(rem0, rem1, 0, bSig)
	}
	zSigLo := estimateDiv128To64(rem1, 0, bSig)
	if zSigLo<<1 <= 8 {
		term1, term2 := mul64To128(bSig, zSigLo)
		rem1, rem2 := sub128(rem1, 0, term1, term2)
		for int64(rem1) < 0 {
			zSigLo--
			rem1, rem2 = add128(rem1, rem2, 0, bSig)
		}
		if rem1|rem2 != 0 {
			zSigLo |= 1
		}
	}
	return roundAndPackFloatx80(status, status.RoundingPrecision, zSign, zExp, zSig, zSigLo)
}

// Floatx80Rem returns the IEEE remainder of a/b. Unlike add/sub/mul/div/
// sqrt, rem always rounds the intermediate result at full 80-bit precision
// regardless of status.RoundingPrecision, matching the Bochs softfloat
// reference exactly: status.RoundingPrecision governs only the rounding
// width of the final round-and-pack call in the other ops.
func Floatx80Rem(status *Status, a, b Floatx80) Floatx80 {
	aSign := floatx80Sign(a)
	aExp := floatx80Exp(a)
	bExp := floatx80Exp(b)
	aSig0 := a.Sig
	bSig := b.Sig

	if aExp == 0x7FFF {
		if aSig0<<1 != 0 || (bExp == 0x7FFF && bSig<<1 != 0) {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		status.Raise(FlagInvalid)
		return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
	}
	if bExp == 0x7FFF {
		if bSig<<1 != 0 {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, b.Exp, b.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		return a
	}
	if bExp == 0 {
		if bSig == 0 {
			status.Raise(FlagInvalid)
			return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
		}
		bExp, bSig = normalizeFloatx80Subnormal(bSig)
	}
	if aExp == 0 {
		if aSig0<<1 == 0 {
			return a
		}
		aExp, aSig0 = normalizeFloatx80Subnormal(aSig0)
	}

	bSig |= 0x8000000000000000
	zSign := aSign
	expDiff := aExp - bExp
	var aSig1 uint64
	if expDiff < 0 {
		if expDiff < -1 {
			return a
		}
		aSig0, aSig1 = shift128Right(aSig0, 0, 1)
		expDiff = 0
	}
	var q uint64
	if bSig <= aSig0 {
		q = 1
		aSig0 -= bSig
	}
	expDiff -= 64
	for expDiff > 0 {
		q = estimateDiv128To64(aSig0, aSig1, bSig)
		if q > 2 {
			q -= 2
		} else {
			q = 0
		}
		term0, term1 := mul64To128(bSig, q)
		aSig0, aSig1 = sub128(aSig0, aSig1, term0, term1)
		aSig0, aSig1 = shortShift128Left(aSig0, aSig1, 62)
		expDiff -= 62
	}
	expDiff += 64
	var term0, term1 uint64
	if expDiff > 0 {
		q = estimateDiv128To64(aSig0, aSig1, bSig)
		if q > 2 {
			q -= 2
		} else {
			q = 0
		}
		q >>= uint(64 - expDiff)
		t0, t1 := mul64To128(bSig, q<<uint(64-expDiff))
		aSig0, aSig1 = sub128(aSig0, aSig1, t0, t1)
		term0, term1 = shortShift128Left(0, bSig, 64-expDiff)
		for le128(term0, term1, aSig0, aSig1) {
			q++
			aSig0, aSig1 = sub128(aSig0, aSig1, term0, term1)
		}
	} else {
		term1 = 0
		term0 = bSig
	}
	alternateASig0, alternateASig1 := sub128(term0, term1, aSig0, aSig1)
	if lt128(alternateASig0, alternateASig1, aSig0, aSig1) ||
		(eq128(alternateASig0, alternateASig1, aSig0, aSig1) && q&1 != 0) {
		aSig0, aSig1 = alternateASig0, alternateASig1
		zSign = !zSign
	}
	return normalizeRoundAndPackFloatx80(status, Precision80, zSign, bExp+expDiff, aSig0, aSig1)
}

// Floatx80Sqrt returns sqrt(a), rounded and flagged per status.
func Floatx80Sqrt(status *Status, a Floatx80) Floatx80 {
	aSign := floatx80Sign(a)
	aExp := floatx80Exp(a)
	aSig := a.Sig

	if aExp == 0x7FFF {
		if aSig<<1 != 0 {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, a.Exp, a.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		if !aSign {
			return a
		}
		status.Raise(FlagInvalid)
		return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
	}
	if aSign {
		if aExp == 0 && aSig == 0 {
			return a
		}
		status.Raise(FlagInvalid)
		return Floatx80{Exp: defaultNaNFx80Hi, Sig: defaultNaNFx80Lo}
	}
	if aExp == 0 {
		if aSig == 0 {
			return packFloatx80(false, 0, 0)
		}
		aExp, aSig = normalizeFloatx80Subnormal(aSig)
	}
	zExp := ((aExp - 0x3FFF) >> 1) + 0x3FFF
	zSig0 := uint64(estimateSqrt32(aExp, uint32(aSig>>32)))
	aSigExtra0, aSigExtra1 := shift128Right(aSig, 0, 2+oddExpShiftBit(aExp))
	zSig0 = estimateDiv128To64(aSigExtra0, aSigExtra1, zSig0<<32) + zSig0<<30
	doubleZSig0 := zSig0 << 1
	term0, term1 := mul64To128(zSig0, zSig0)
	rem0, rem1 := sub128(aSigExtra0, aSigExtra1, term0, term1)
	for int64(rem0) < 0 {
		zSig0--
		doubleZSig0 -= 2
		rem0, rem1 = add128(rem0, rem1, zSig0>>63, doubleZSig0|1)
	}
	zSig1 := estimateDiv128To64(rem1, 0, doubleZSig0)
	if zSig1&0x3FFFFFFFFFFFFFFF <= 6 {
		if zSig1 == 0 {
			zSig1 = 1
		}
		term1b, term2 := mul64To128(doubleZSig0, zSig1)
		rem1, rem2 := sub128(rem1, 0, term1b, term2)
		term2, term3 := mul64To128(zSig1, zSig1)
		rem1, rem2, rem3 := sub192(rem1, rem2, 0, 0, term2, term3)
		for int64(rem1) < 0 {
			zSig1--
			term2, term3 = shortShift128Left(0, zSig1, 1)
			rem1, rem2, rem3 = add192(rem1, rem2, rem3, 0, term2|doubleZSig0, term3|1)
		}
		if rem1|rem2|rem3 != 0 {
			zSig1 |= 1
		}
	}
	zSig0, zSig1 = shortShift128Left2(zSig0, zSig1, 1)
	return roundAndPackFloatx80(status, status.RoundingPrecision, false, zExp, zSig0, zSig1)
}

func oddExpShiftBit(exp int) int {
	return exp & 1
}

// Floatx80Eq is the quiet equality comparison.
func Floatx80Eq(status *Status, a, b Floatx80) bool {
	if floatx80IsNaN(a) || floatx80IsNaN(b) {
		if isSignalingNaNFx80(a.Exp, a.Sig) || isSignalingNaNFx80(b.Exp, b.Sig) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return (a.Exp == b.Exp && a.Sig == b.Sig) ||
		(a.Sig == 0 && b.Sig == 0 && (a.Exp&0x7FFF) == 0 && (b.Exp&0x7FFF) == 0)
}

// Floatx80EqSignaling is the signaling equality comparison.
func Floatx80EqSignaling(status *Status, a, b Floatx80) bool {
	if floatx80IsNaN(a) || floatx80IsNaN(b) {
		status.Raise(FlagInvalid)
		return false
	}
	return Floatx80Eq(status, a, b)
}

// Floatx80Le is the quiet less-than-or-equal comparison.
func Floatx80Le(status *Status, a, b Floatx80) bool {
	if floatx80IsNaN(a) || floatx80IsNaN(b) {
		if isSignalingNaNFx80(a.Exp, a.Sig) || isSignalingNaNFx80(b.Exp, b.Sig) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	aSign := floatx80Sign(a)
	bSign := floatx80Sign(b)
	if aSign != bSign {
		return aSign || (a.Sig == 0 && b.Sig == 0 && (a.Exp&0x7FFF) == 0 && (b.Exp&0x7FFF) == 0)
	}
	if aSign {
		return floatx80GE(a, b)
	}
	return floatx80GE(b, a)
}

func floatx80GE(a, b Floatx80) bool {
	if (a.Exp & 0x7FFF) != (b.Exp & 0x7FFF) {
		return (a.Exp & 0x7FFF) >= (b.Exp & 0x7FFF)
	}
	return a.Sig >= b.Sig
}

// Floatx80Lt is the quiet strict-less-than comparison.
func Floatx80Lt(status *Status, a, b Floatx80) bool {
	if floatx80IsNaN(a) || floatx80IsNaN(b) {
		if isSignalingNaNFx80(a.Exp, a.Sig) || isSignalingNaNFx80(b.Exp, b.Sig) {
			status.Raise(FlagInvalid)
		}
		return false
	}
	return Floatx80Le(status, a, b) && !Floatx80Eq(status, a, b)
}

// Floatx80Unordered reports whether a and b are unordered.
func Floatx80Unordered(status *Status, a, b Floatx80) bool {
	if floatx80IsNaN(a) || floatx80IsNaN(b) {
		if isSignalingNaNFx80(a.Exp, a.Sig) || isSignalingNaNFx80(b.Exp, b.Sig) {
			status.Raise(FlagInvalid)
		}
		return true
	}
	return false
}

// Floatx80RoundToInt rounds a to the nearest integer value representable in
// fx80, per status's rounding mode. Unlike the f32/f64 variants, this masks
// the fractional-bit window and flips bits directly in the packed
// significand rather than unpacking through the general rounding kernel.
func Floatx80RoundToInt(status *Status, a Floatx80) Floatx80 {
	aExp := floatx80Exp(a)
	if aExp >= 0x403E {
		if aExp == 0x7FFF && a.Sig<<1 != 0 {
			exp, sig := propagateFloatx80NaN(a.Exp, a.Sig, a.Exp, a.Sig, status)
			return Floatx80{Exp: exp, Sig: sig}
		}
		return a
	}
	if aExp < 0x3FFF {
		if aExp == 0 && a.Sig == 0 {
			return a
		}
		status.Raise(FlagInexact)
		sign := floatx80Sign(a)
		switch status.Mode {
		case RoundNearestEven:
			if aExp == 0x3FFE && a.Sig<<1 != 0 {
				return packFloatx80(sign, 0x3FFF, 0x8000000000000000)
			}
		case RoundDown:
			if sign {
				return packFloatx80(true, 0x3FFF, 0x8000000000000000)
			}
		case RoundUp:
			if !sign {
				return packFloatx80(false, 0x3FFF, 0x8000000000000000)
			}
		}
		return packFloatx80(sign, 0, 0)
	}
	lastBitMask := uint64(1) << uint(0x403E-aExp)
	roundBitsMask := lastBitMask - 1
	sig := a.Sig
	sign := floatx80Sign(a)
	switch status.Mode {
	case RoundNearestEven:
		sig += lastBitMask >> 1
		if sig&roundBitsMask == 0 {
			sig &= ^lastBitMask
		}
	case RoundToZero:
	case RoundDown:
		if sign && a.Sig&roundBitsMask != 0 {
			sig += roundBitsMask
		}
	case RoundUp:
		if !sign && a.Sig&roundBitsMask != 0 {
			sig += roundBitsMask
		}
	}
	sig &= ^roundBitsMask
	if sig == 0 {
		aExp++
		sig = 0x8000000000000000
	}
	if sig != a.Sig {
		status.Raise(FlagInexact)
	}
	return packFloatx80(sign, aExp, sig)
}
