/*
 * softfloat - Cross-format conversions.
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

// Float32ToFloatx80 widens f32 to fx80 exactly, never rounding.
func Float32ToFloatx80(status *Status, a Float32) Floatx80 {
	sign := float32Sign(a)
	exp := float32Exp(a)
	frac := float32Frac(a)
	if exp == 0xFF {
		if frac != 0 {
			cn := f32ToCommonNaN(uint32(a), status)
			fExp, fSig := commonNaNToFx80(cn)
			return Floatx80{Exp: fExp, Sig: fSig}
		}
		return packFloatx80(sign, 0x7FFF, 0x8000000000000000)
	}
	if exp == 0 {
		if frac == 0 {
			return packFloatx80(sign, 0, 0)
		}
		expCnt, fracN := normalizeFloat32Subnormal(frac)
		return packFloatx80(sign, expCnt+0x3F80, uint64(fracN)<<40)
	}
	return packFloatx80(sign, exp+0x3F80, (uint64(frac)|0x00800000)<<40)
}

// Floatx80ToFloat32 narrows fx80 to f32, rounding per status.
func Floatx80ToFloat32(status *Status, a Floatx80) Float32 {
	sign := floatx80Sign(a)
	exp := floatx80Exp(a)
	sig := a.Sig
	if exp == 0x7FFF {
		if sig<<1 != 0 {
			cn := fx80ToCommonNaN(a.Exp, a.Sig, status)
			return Float32(commonNaNToF32(cn))
		}
		return packFloat32(sign, 0xFF, 0)
	}
	sigJammed := shift64RightJamming(sig, 33)
	if exp == 0 && sig == 0 {
		return packFloat32(sign, 0, 0)
	}
	return roundAndPackFloat32(status, sign, exp-0x3F81, uint32(sigJammed))
}
