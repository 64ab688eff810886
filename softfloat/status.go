/*
 * softfloat - Status and exception container.
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

// Package softfloat implements IEEE 754 binary single, double and extended
// precision arithmetic entirely in software, for hosts that either lack a
// hardware FPU or need bit-identical results across hosts regardless of one.
package softfloat

// RoundingMode selects how a rounding kernel resolves a result that falls
// between two representable values.
type RoundingMode int

const (
	RoundNearestEven RoundingMode = iota
	RoundToZero
	RoundDown
	RoundUp
)

// Tininess selects when underflow is declared for a result that rounds into
// the subnormal range.
type Tininess int

const (
	TininessAfterRounding Tininess = iota
	TininessBeforeRounding
)

// Precision constrains how many significand bits an fx80 result is rounded
// to, while still being stored in the 80-bit container.
type Precision int

const (
	Precision32 Precision = 32
	Precision64 Precision = 64
	Precision80 Precision = 80
)

// Flags is a bitset of IEEE 754 exception flags. Flags never abort an
// operation; they accumulate in a Status and are polled by the caller.
type Flags uint8

const (
	FlagInvalid Flags = 1 << iota
	FlagDenormal
	FlagDivByZero
	FlagOverflow
	FlagUnderflow
	FlagInexact
)

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	names := [...]struct {
		flag Flags
		name string
	}{
		{FlagInvalid, "invalid"},
		{FlagDenormal, "denormal"},
		{FlagDivByZero, "divbyzero"},
		{FlagOverflow, "overflow"},
		{FlagUnderflow, "underflow"},
		{FlagInexact, "inexact"},
	}
	s := ""
	for _, n := range names {
		if f&n.flag != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

// Status is the mutable record every operation takes by pointer: the current
// rounding mode, tininess policy and fx80 rounding precision are read by the
// operation, and any exception
// flags the operation raises are OR'd into flags for the caller to poll and
// clear afterward. Status carries no global state of its own, so a caller
// running independent guest CPUs (or goroutines) keeps one Status per
// logical floating-point unit and never shares it. FlushToZero is stored
// but no operation reads it: tiny results are never flushed to zero.
type Status struct {
	Mode              RoundingMode
	DetectTininess    Tininess
	FlushToZero       bool
	RoundingPrecision Precision
	flags             Flags
}

// NewStatus returns a Status with the IEEE 754 power-on defaults: round to
// nearest, ties to even, tininess detected after rounding, no flush to zero,
// full 80-bit rounding precision.
func NewStatus() *Status {
	return &Status{
		Mode:              RoundNearestEven,
		DetectTininess:    TininessAfterRounding,
		RoundingPrecision: Precision80,
	}
}

// Raise ORs f into the cumulative exception flags.
func (s *Status) Raise(f Flags) {
	s.flags |= f
}

// Flags returns the cumulative exception flags raised since the last Clear.
func (s *Status) Flags() Flags {
	return s.flags
}

// Test reports whether any of the bits in f are currently set.
func (s *Status) Test(f Flags) bool {
	return s.flags&f != 0
}

// Clear resets the cumulative exception flags to none.
func (s *Status) Clear() {
	s.flags = 0
}
