/*
 * softfloat - REPL command dispatch.
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

// Package replutil provides the abbreviation-matching command table the
// softfloat REPL dispatches through: a command need only be typed out to
// its minimum unambiguous length.
package replutil

import (
	"errors"
	"strings"
)

// Command is one entry in a Table: a name, the minimum number of leading
// characters that must be typed to match it, and the handler to run once
// matched.
type Command struct {
	Name string
	Min  int
	Run  func(args []string) (string, error)
}

// Table is an ordered list of commands, matched by unambiguous prefix.
type Table []Command

// matches reports whether typed is a valid abbreviation of c.Name: typed
// must be at least c.Min characters and a prefix of c.Name.
func (c Command) matches(typed string) bool {
	if len(typed) < c.Min || len(typed) > len(c.Name) {
		return false
	}
	return strings.HasPrefix(c.Name, typed)
}

// Dispatch splits line into a command word and arguments, finds the unique
// table entry whose name the command word abbreviates, and runs it. It
// returns an error if no command matches or more than one does.
func (t Table) Dispatch(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	word := strings.ToLower(fields[0])
	args := fields[1:]

	var matched []Command
	for _, c := range t {
		if c.matches(word) {
			matched = append(matched, c)
		}
	}
	switch len(matched) {
	case 0:
		return "", errors.New("unknown command: " + word)
	case 1:
		return matched[0].Run(args)
	default:
		names := make([]string, len(matched))
		for i, c := range matched {
			names[i] = c.Name
		}
		return "", errors.New("ambiguous command " + word + ": matches " + strings.Join(names, ", "))
	}
}

// Names returns every command name in the table, used to drive the REPL's
// tab-completion.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}
