/*
 * softfloat - Interactive REPL.
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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/rcornwell/softfloat/internal/replutil"
	"github.com/rcornwell/softfloat/softfloat"
)

// replSession holds the live status container the REPL commands mutate and
// read results from, one per interactive session.
type replSession struct {
	status *softfloat.Status
}

func newReplSession() *replSession {
	return &replSession{status: softfloat.NewStatus()}
}

func (s *replSession) table() replutil.Table {
	return replutil.Table{
		{Name: "add", Min: 1, Run: s.cmdBinary(softfloat.Float32Add, softfloat.Float64Add, softfloat.Floatx80Add)},
		{Name: "sub", Min: 1, Run: s.cmdBinary(softfloat.Float32Sub, softfloat.Float64Sub, softfloat.Floatx80Sub)},
		{Name: "mul", Min: 1, Run: s.cmdBinary(softfloat.Float32Mul, softfloat.Float64Mul, softfloat.Floatx80Mul)},
		{Name: "div", Min: 1, Run: s.cmdBinary(softfloat.Float32Div, softfloat.Float64Div, softfloat.Floatx80Div)},
		{Name: "rem", Min: 1, Run: s.cmdBinary(softfloat.Float32Rem, softfloat.Float64Rem, softfloat.Floatx80Rem)},
		{Name: "sqrt", Min: 2, Run: s.cmdUnary(softfloat.Float32Sqrt, softfloat.Float64Sqrt, softfloat.Floatx80Sqrt)},
		{Name: "mode", Min: 1, Run: s.cmdMode},
		{Name: "tininess", Min: 1, Run: s.cmdTininess},
		{Name: "precision", Min: 1, Run: s.cmdPrecision},
		{Name: "flags", Min: 1, Run: s.cmdFlags},
		{Name: "clear", Min: 2, Run: s.cmdClear},
		{Name: "help", Min: 1, Run: s.cmdHelp},
		{Name: "quit", Min: 1, Run: s.cmdQuit},
	}
}

var errQuit = errors.New("quit")

func (s *replSession) cmdQuit([]string) (string, error) {
	return "", errQuit
}

func (s *replSession) cmdHelp([]string) (string, error) {
	return "commands: add sub div mul rem sqrt <f32|f64|fx80> <hex operands>, " +
		"mode nearest|zero|down|up, tininess before|after, precision 32|64|80, " +
		"flags, clear, quit", nil
}

func (s *replSession) cmdFlags([]string) (string, error) {
	return s.status.Flags().String(), nil
}

func (s *replSession) cmdClear([]string) (string, error) {
	s.status.Clear()
	return "flags cleared", nil
}

func (s *replSession) cmdMode(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("mode requires one argument: nearest|zero|down|up")
	}
	switch strings.ToLower(args[0]) {
	case "nearest":
		s.status.Mode = softfloat.RoundNearestEven
	case "zero":
		s.status.Mode = softfloat.RoundToZero
	case "down":
		s.status.Mode = softfloat.RoundDown
	case "up":
		s.status.Mode = softfloat.RoundUp
	default:
		return "", errors.New("unknown rounding mode: " + args[0])
	}
	return "mode set", nil
}

func (s *replSession) cmdTininess(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("tininess requires one argument: before|after")
	}
	switch strings.ToLower(args[0]) {
	case "before":
		s.status.DetectTininess = softfloat.TininessBeforeRounding
	case "after":
		s.status.DetectTininess = softfloat.TininessAfterRounding
	default:
		return "", errors.New("unknown tininess policy: " + args[0])
	}
	return "tininess set", nil
}

func (s *replSession) cmdPrecision(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("precision requires one argument: 32|64|80")
	}
	switch args[0] {
	case "32":
		s.status.RoundingPrecision = softfloat.Precision32
	case "64":
		s.status.RoundingPrecision = softfloat.Precision64
	case "80":
		s.status.RoundingPrecision = softfloat.Precision80
	default:
		return "", errors.New("unknown rounding precision: " + args[0])
	}
	return "precision set", nil
}

func (s *replSession) cmdUnary(
	f32 func(*softfloat.Status, softfloat.Float32) softfloat.Float32,
	f64 func(*softfloat.Status, softfloat.Float64) softfloat.Float64,
	fx80 func(*softfloat.Status, softfloat.Floatx80) softfloat.Floatx80,
) func([]string) (string, error) {
	return func(args []string) (string, error) {
		if len(args) != 2 {
			return "", errors.New("expected: <format> <hex operand>")
		}
		switch strings.ToLower(args[0]) {
		case "f32":
			a, err := parseHex32(args[1])
			if err != nil {
				return "", err
			}
			z := f32(s.status, softfloat.Float32(a))
			return fmt.Sprintf("%s  %s", formatWord32(uint32(z)), s.status.Flags()), nil
		case "f64":
			a, err := parseHex64(args[1])
			if err != nil {
				return "", err
			}
			z := f64(s.status, softfloat.Float64(a))
			return fmt.Sprintf("%s  %s", formatWord64(uint64(z)), s.status.Flags()), nil
		case "fx80":
			exp, sig, err := parseFx80(args[1])
			if err != nil {
				return "", err
			}
			z := fx80(s.status, softfloat.Floatx80{Exp: exp, Sig: sig})
			return fmt.Sprintf("%s  %s", formatFloatx80(z.Exp, z.Sig), s.status.Flags()), nil
		default:
			return "", errors.New("unknown format: " + args[0])
		}
	}
}

func (s *replSession) cmdBinary(
	f32 func(*softfloat.Status, softfloat.Float32, softfloat.Float32) softfloat.Float32,
	f64 func(*softfloat.Status, softfloat.Float64, softfloat.Float64) softfloat.Float64,
	fx80 func(*softfloat.Status, softfloat.Floatx80, softfloat.Floatx80) softfloat.Floatx80,
) func([]string) (string, error) {
	return func(args []string) (string, error) {
		switch strings.ToLower(firstOrEmpty(args)) {
		case "f32":
			if len(args) != 3 {
				return "", errors.New("expected: f32 <hex> <hex>")
			}
			a, err := parseHex32(args[1])
			if err != nil {
				return "", err
			}
			b, err := parseHex32(args[2])
			if err != nil {
				return "", err
			}
			z := f32(s.status, softfloat.Float32(a), softfloat.Float32(b))
			return fmt.Sprintf("%s  %s", formatWord32(uint32(z)), s.status.Flags()), nil
		case "f64":
			if len(args) != 3 {
				return "", errors.New("expected: f64 <hex> <hex>")
			}
			a, err := parseHex64(args[1])
			if err != nil {
				return "", err
			}
			b, err := parseHex64(args[2])
			if err != nil {
				return "", err
			}
			z := f64(s.status, softfloat.Float64(a), softfloat.Float64(b))
			return fmt.Sprintf("%s  %s", formatWord64(uint64(z)), s.status.Flags()), nil
		case "fx80":
			if len(args) != 3 {
				return "", errors.New("expected: fx80 <exp:sig> <exp:sig>")
			}
			aExp, aSig, err := parseFx80(args[1])
			if err != nil {
				return "", err
			}
			bExp, bSig, err := parseFx80(args[2])
			if err != nil {
				return "", err
			}
			z := fx80(s.status, softfloat.Floatx80{Exp: aExp, Sig: aSig}, softfloat.Floatx80{Exp: bExp, Sig: bSig})
			return fmt.Sprintf("%s  %s", formatFloatx80(z.Exp, z.Sig), s.status.Flags()), nil
		default:
			return "", errors.New("unknown format: " + firstOrEmpty(args))
		}
	}
}

func firstOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// parseFx80 parses an fx80 operand written as "exp:sig", e.g.
// "3FFF:8000000000000000".
func parseFx80(s string) (exp uint16, sig uint64, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("fx80 operand must be exp:sig, got %q", s)
	}
	exp, err = parseHex16(parts[0])
	if err != nil {
		return 0, 0, err
	}
	sig, err = parseHex64(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return exp, sig, nil
}

// runREPL drives the interactive shell: a liner-backed prompt, abbreviation-
// matched command dispatch, and tab completion over the command names.
func runREPL() {
	session := newReplSession()
	table := session.table()

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var out []string
		for _, name := range table.Names() {
			if strings.HasPrefix(name, partial) {
				out = append(out, name)
			}
		}
		return out
	})

	for {
		input, err := line.Prompt("sf> ")
		if err == nil {
			line.AppendHistory(input)
			result, runErr := table.Dispatch(input)
			if runErr != nil {
				if errors.Is(runErr, errQuit) {
					return
				}
				fmt.Println("error: " + runErr.Error())
				continue
			}
			if result != "" {
				fmt.Println(result)
			}
			continue
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("error reading line: " + err.Error())
		return
	}
}
