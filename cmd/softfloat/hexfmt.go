/*
 * softfloat - Hex formatting for the command-line harness.
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
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"strconv"
	"strings"
)

var hexMap = "0123456789ABCDEF"

// formatWord32 renders a 32-bit value as 8 uppercase hex digits.
func formatWord32(v uint32) string {
	var b strings.Builder
	shift := 28
	for range 8 {
		b.WriteByte(hexMap[(v>>shift)&0xF])
		shift -= 4
	}
	return b.String()
}

// formatWord64 renders a 64-bit value as 16 uppercase hex digits.
func formatWord64(v uint64) string {
	var b strings.Builder
	shift := 60
	for range 16 {
		b.WriteByte(hexMap[(v>>shift)&0xF])
		shift -= 4
	}
	return b.String()
}

// formatFloatx80 renders an fx80 value as its 4-digit sign/exponent word
// followed by its 16-digit significand, space separated.
func formatFloatx80(exp uint16, sig uint64) string {
	return fmt.Sprintf("%04X %s", exp, formatWord64(sig))
}

func parseHex32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not a hex word: %s", s)
	}
	return uint32(v), nil
}

func parseHex64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("not a hex word: %s", s)
	}
	return v, nil
}

func parseHex16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("not a hex word: %s", s)
	}
	return uint16(v), nil
}
