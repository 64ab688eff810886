/*
 * softfloat - Multi-word integer primitives.
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

import "math/bits"

// shift32RightJamming shifts a right by count bits, ORing every bit shifted
// out into the result's LSB so no nonzero low-order information is lost.
func shift32RightJamming(a uint32, count int) uint32 {
	if count == 0 {
		return a
	}
	if count >= 32 {
		if a != 0 {
			return 1
		}
		return 0
	}
	z := a >> uint(count)
	if (a << uint(32-count)) != 0 {
		z |= 1
	}
	return z
}

// shift64RightJamming is shift32RightJamming for a 64-bit word.
func shift64RightJamming(a uint64, count int) uint64 {
	if count == 0 {
		return a
	}
	if count >= 64 {
		if a != 0 {
			return 1
		}
		return 0
	}
	z := a >> uint(count)
	if (a << uint(64-count)) != 0 {
		z |= 1
	}
	return z
}

// shift64ExtraRightJamming shifts the 128-bit pair (a0:a1) right by count,
// returning the new high word z0 and a jammed low word z1 whose low bit
// carries the stickiness of everything shifted out of a1 and out of a0.
func shift64ExtraRightJamming(a0, a1 uint64, count int) (z0, z1 uint64) {
	if count == 0 {
		return a0, a1
	}
	if count < 64 {
		negCount := uint(64-count) & 63
		z1 = (a0 << negCount)
		if a1 != 0 {
			z1 |= 1
		}
		z0 = a0 >> uint(count)
		return
	}
	if count == 64 {
		z1 = a0
		if a1 != 0 {
			z1 |= 1
		}
	} else {
		z1 = 0
		if a0 != 0 || a1 != 0 {
			z1 = 1
		}
	}
	z0 = 0
	return
}

// shift128RightJamming is shift64ExtraRightJamming generalized to a true
// 128-bit input and output: the low word a1 is not assumed already sticky.
func shift128RightJamming(a0, a1 uint64, count int) (z0, z1 uint64) {
	if count == 0 {
		return a0, a1
	}
	if count < 64 {
		negCount := uint(64-count) & 63
		z1 = (a0 << negCount) | (a1 >> uint(count))
		if (a1 << negCount) != 0 {
			z1 |= 1
		}
		z0 = a0 >> uint(count)
		return
	}
	if count == 64 {
		z1 = a0
		if a1 != 0 {
			z1 |= 1
		}
	} else if count < 128 {
		z1 = a0 >> uint(count-64)
		if ((a0 << uint(128-count)) | a1) != 0 {
			z1 |= 1
		}
	} else {
		z1 = 0
		if a0 != 0 || a1 != 0 {
			z1 = 1
		}
	}
	z0 = 0
	return
}

// shift128Right is shift128RightJamming without the sticky OR: used where
// the caller needs the exact discarded bits rather than just their parity.
func shift128Right(a0, a1 uint64, count int) (z0, z1 uint64) {
	if count == 0 {
		return a0, a1
	}
	if count < 64 {
		negCount := uint(64-count) & 63
		z1 = (a0 << negCount) | (a1 >> uint(count))
		z0 = a0 >> uint(count)
		return
	}
	if count < 128 {
		z1 = a0 >> uint(count-64)
	} else {
		z1 = 0
	}
	z0 = 0
	return
}

// shortShift128Left shifts the 128-bit pair (a0:a1) left by count bits,
// count in [0,63]. Bits shifted out of a0 are lost, matching the rounding
// kernel's expectation that its input is already within range.
func shortShift128Left(a0, a1 uint64, count int) (z0, z1 uint64) {
	z1 = a1 << uint(count)
	if count > 0 {
		z0 = (a0 << uint(count)) | (a1 >> uint((64-count)&63))
	} else {
		z0 = a0
	}
	return
}

// mul64To128 computes the exact 128-bit product of two 64-bit unsigned
// factors.
func mul64To128(a, b uint64) (z0, z1 uint64) {
	z0, z1 = bits.Mul64(a, b)
	return
}

// add128 computes the exact 128-bit sum of two 128-bit unsigned values.
func add128(a0, a1, b0, b1 uint64) (z0, z1 uint64) {
	var carry uint64
	z1, carry = bits.Add64(a1, b1, 0)
	z0, _ = bits.Add64(a0, b0, carry)
	return
}

// sub128 computes the exact 128-bit difference a - b.
func sub128(a0, a1, b0, b1 uint64) (z0, z1 uint64) {
	var borrow uint64
	z1, borrow = bits.Sub64(a1, b1, 0)
	z0, _ = bits.Sub64(a0, b0, borrow)
	return
}

// add192 computes the exact 192-bit sum of two 192-bit unsigned values,
// words ordered most to least significant.
func add192(a0, a1, a2, b0, b1, b2 uint64) (z0, z1, z2 uint64) {
	var c1, c2 uint64
	z2, c1 = bits.Add64(a2, b2, 0)
	z1, c2 = bits.Add64(a1, b1, c1)
	z0, _ = bits.Add64(a0, b0, c2)
	return
}

// sub192 computes the exact 192-bit difference a - b, words ordered most to
// least significant.
func sub192(a0, a1, a2, b0, b1, b2 uint64) (z0, z1, z2 uint64) {
	var b1c, b2c uint64
	z2, b2c = bits.Sub64(a2, b2, 0)
	z1, b1c = bits.Sub64(a1, b1, b2c)
	z0, _ = bits.Sub64(a0, b0, b1c)
	return
}

// estimateDiv128To64 returns q such that q-2 <= floor((a0:a1)/b) <= q, for a
// 128-bit dividend (a0:a1) and a normalized 64-bit divisor b (top bit set)
// with a0 < b; a divisor below 2^32 divides by zero. It
// bootstraps a 32-bit quotient estimate and refines it with one correction
// pass rather than performing a full-width division.
func estimateDiv128To64(a0, a1, b uint64) uint64 {
	if b <= a0 {
		return 0xFFFFFFFFFFFFFFFF
	}
	b0 := b >> 32
	var z uint64
	if b0<<32 <= a0 {
		z = 0xFFFFFFFF00000000
	} else {
		z = (a0 / b0) << 32
	}
	term0, term1 := mul64To128(b, z)
	rem0, rem1 := sub128(a0, a1, term0, term1)
	for int64(rem0) < 0 {
		z -= 0x100000000
		b1 := b << 32
		rem0, rem1 = add128(rem0, rem1, b0, b1)
	}
	rem0 = (rem0 << 32) | (rem1 >> 32)
	z |= rem0 / b0
	return z
}

var sqrtOddAdjustments = [16]uint16{
	0x0004, 0x0022, 0x005D, 0x00B1, 0x011D, 0x019D, 0x0230, 0x02D6,
	0x038E, 0x0457, 0x0532, 0x061D, 0x071B, 0x0828, 0x0946, 0x0A75,
}

var sqrtEvenAdjustments = [16]uint16{
	0x0A2D, 0x08AF, 0x075A, 0x0629, 0x051A, 0x0429, 0x0356, 0x029F,
	0x0200, 0x0179, 0x0109, 0x00AF, 0x0068, 0x0034, 0x0012, 0x0002,
}

// estimateSqrt32 returns an approximation to the square root of the
// significand a (normalized, exponent parity aExp&1), accurate to within a
// bit or two, used to seed the Newton-style refinement in the sqrt routines.
func estimateSqrt32(aExp int, a uint32) uint32 {
	index := (a >> 27) & 15
	var z uint32
	if aExp&1 != 0 {
		z = 0x4000 + (a >> 17) - uint32(sqrtOddAdjustments[index])
		z = ((a / z) << 14) + (z << 15)
		a >>= 1
	} else {
		z = 0x8000 + (a >> 17) - uint32(sqrtEvenAdjustments[index])
		z = a/z + z
		if z >= 0x20000 {
			z = 0xFFFF8000
		} else {
			z <<= 15
		}
		if z <= a {
			return uint32(int32(a) >> 1)
		}
	}
	return uint32((uint64(a)<<31)/uint64(z)) + (z >> 1)
}

// countLeadingZeros32 returns the number of leading zero bits in a, or 32 if
// a is zero.
func countLeadingZeros32(a uint32) int {
	return bits.LeadingZeros32(a)
}

// countLeadingZeros64 returns the number of leading zero bits in a, or 64 if
// a is zero.
func countLeadingZeros64(a uint64) int {
	return bits.LeadingZeros64(a)
}

// lt128 reports whether the unsigned 128-bit value (a0:a1) is less than
// (b0:b1).
func lt128(a0, a1, b0, b1 uint64) bool {
	return a0 < b0 || (a0 == b0 && a1 < b1)
}

// le128 reports whether the unsigned 128-bit value (a0:a1) is less than or
// equal to (b0:b1).
func le128(a0, a1, b0, b1 uint64) bool {
	return a0 < b0 || (a0 == b0 && a1 <= b1)
}

// eq128 reports whether the unsigned 128-bit value (a0:a1) equals (b0:b1).
func eq128(a0, a1, b0, b1 uint64) bool {
	return a0 == b0 && a1 == b1
}
