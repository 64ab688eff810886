/*
 * softfloat - Test-vector file harness.
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
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rcornwell/softfloat/softfloat"
)

// runVectors reads a test-vector file and reports pass/fail counts. Each
// non-blank, non-comment line has the form:
//
//	<format> <op> <hex operands...> -> <hex result>
//
// e.g. "f64 add 3FF0000000000000 3FF0000000000000 -> 4000000000000000".
func runVectors(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening vector file: %w", err)
	}
	defer f.Close()

	pass, fail := 0, 0
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ok, err := runVectorLine(line)
		if err != nil {
			slog.Error("vector file error", "line", lineNo, "error", err.Error())
			fail++
			continue
		}
		if ok {
			pass++
		} else {
			fail++
			fmt.Printf("FAIL line %d: %s\n", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading vector file: %w", err)
	}
	fmt.Printf("%d passed, %d failed\n", pass, fail)
	return nil
}

func runVectorLine(line string) (bool, error) {
	fields := strings.Fields(line)
	arrowAt := -1
	for i, f := range fields {
		if f == "->" {
			arrowAt = i
			break
		}
	}
	if arrowAt < 0 || arrowAt < 3 {
		return false, fmt.Errorf("malformed vector line: %q", line)
	}

	format := strings.ToLower(fields[0])
	op := strings.ToLower(fields[1])
	operands := fields[2:arrowAt]
	want := fields[arrowAt+1:]
	if len(want) == 0 {
		return false, fmt.Errorf("missing expected result: %q", line)
	}

	status := softfloat.NewStatus()

	switch format {
	case "f32":
		got, err := evalF32(status, op, operands)
		if err != nil {
			return false, err
		}
		return strings.EqualFold(formatWord32(uint32(got)), want[0]), nil
	case "f64":
		got, err := evalF64(status, op, operands)
		if err != nil {
			return false, err
		}
		return strings.EqualFold(formatWord64(uint64(got)), want[0]), nil
	case "fx80":
		got, err := evalFx80(status, op, operands)
		if err != nil {
			return false, err
		}
		if len(want) != 2 {
			return false, fmt.Errorf("fx80 result needs exp and sig words: %q", line)
		}
		return strings.EqualFold(fmt.Sprintf("%04X", got.Exp), want[0]) &&
			strings.EqualFold(formatWord64(got.Sig), want[1]), nil
	default:
		return false, fmt.Errorf("unknown format: %s", format)
	}
}

func evalF32(status *softfloat.Status, op string, operands []string) (softfloat.Float32, error) {
	args := make([]softfloat.Float32, len(operands))
	for i, o := range operands {
		v, err := parseHex32(o)
		if err != nil {
			return 0, err
		}
		args[i] = softfloat.Float32(v)
	}
	switch op {
	case "add":
		return softfloat.Float32Add(status, args[0], args[1]), nil
	case "sub":
		return softfloat.Float32Sub(status, args[0], args[1]), nil
	case "mul":
		return softfloat.Float32Mul(status, args[0], args[1]), nil
	case "div":
		return softfloat.Float32Div(status, args[0], args[1]), nil
	case "rem":
		return softfloat.Float32Rem(status, args[0], args[1]), nil
	case "sqrt":
		return softfloat.Float32Sqrt(status, args[0]), nil
	default:
		return 0, fmt.Errorf("unknown f32 op: %s", op)
	}
}

func evalF64(status *softfloat.Status, op string, operands []string) (softfloat.Float64, error) {
	args := make([]softfloat.Float64, len(operands))
	for i, o := range operands {
		v, err := parseHex64(o)
		if err != nil {
			return 0, err
		}
		args[i] = softfloat.Float64(v)
	}
	switch op {
	case "add":
		return softfloat.Float64Add(status, args[0], args[1]), nil
	case "sub":
		return softfloat.Float64Sub(status, args[0], args[1]), nil
	case "mul":
		return softfloat.Float64Mul(status, args[0], args[1]), nil
	case "div":
		return softfloat.Float64Div(status, args[0], args[1]), nil
	case "rem":
		return softfloat.Float64Rem(status, args[0], args[1]), nil
	case "sqrt":
		return softfloat.Float64Sqrt(status, args[0]), nil
	default:
		return 0, fmt.Errorf("unknown f64 op: %s", op)
	}
}

func evalFx80(status *softfloat.Status, op string, operands []string) (softfloat.Floatx80, error) {
	args := make([]softfloat.Floatx80, len(operands)/2)
	for i := range args {
		exp, err := parseHex16(operands[2*i])
		if err != nil {
			return softfloat.Floatx80{}, err
		}
		sig, err := parseHex64(operands[2*i+1])
		if err != nil {
			return softfloat.Floatx80{}, err
		}
		args[i] = softfloat.Floatx80{Exp: exp, Sig: sig}
	}
	switch op {
	case "add":
		return softfloat.Floatx80Add(status, args[0], args[1]), nil
	case "sub":
		return softfloat.Floatx80Sub(status, args[0], args[1]), nil
	case "mul":
		return softfloat.Floatx80Mul(status, args[0], args[1]), nil
	case "div":
		return softfloat.Floatx80Div(status, args[0], args[1]), nil
	case "rem":
		return softfloat.Floatx80Rem(status, args[0], args[1]), nil
	case "sqrt":
		return softfloat.Floatx80Sqrt(status, args[0]), nil
	default:
		return softfloat.Floatx80{}, fmt.Errorf("unknown fx80 op: %s", op)
	}
}
