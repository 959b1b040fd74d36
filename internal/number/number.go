// seehuhn.de/go/svg - render SVG graphics into PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package number scans the relaxed number syntax used in SVG attributes.
//
// Numbers need no separator when the boundary is unambiguous: "40-50" is
// two numbers, and so is "2.35.96".
package number

import (
	"fmt"
	"strconv"

	"github.com/tdewolff/parse/v2"
)

// Error reports a malformed number list.
type Error struct {
	Text string // the complete input
	Pos  int    // byte offset of the problem
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid number at offset %d in %q", e.Pos, e.Text)
}

// IsSpace reports whether c is SVG white space.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// IsSeparator reports whether c may separate two numbers.
func IsSeparator(c byte) bool {
	return c == ',' || IsSpace(c)
}

// IsStart reports whether c can be the first byte of a number.
func IsStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// Len returns the length of the number at the start of b,
// or 0 if b does not start with a number.
//
// A trailing decimal point without fraction digits ("10.") belongs to
// the number, as in the SVG grammar.
func Len(b []byte) int {
	n := parse.Number(b)
	if n > 0 && n < len(b) && b[n] == '.' && (n+1 == len(b) || !isDigit(b[n+1])) {
		if isInteger(b[:n]) {
			n++
		}
	}
	return n
}

// Tokens splits s into the text of its numbers.
// Separators are white space and at most one comma between two numbers.
func Tokens(s string) ([]string, error) {
	b := []byte(s)
	var res []string
	comma := false
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case IsSpace(c):
			i++
		case c == ',':
			if comma || len(res) == 0 {
				return nil, &Error{Text: s, Pos: i}
			}
			comma = true
			i++
		default:
			n := Len(b[i:])
			if n == 0 {
				return nil, &Error{Text: s, Pos: i}
			}
			res = append(res, s[i:i+n])
			comma = false
			i += n
		}
	}
	if comma {
		return nil, &Error{Text: s, Pos: len(b)}
	}
	return res, nil
}

// List parses a list of numbers, as used for "points", "viewBox" or
// "stroke-dasharray".
func List(s string) ([]float64, error) {
	toks, err := Tokens(s)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(toks))
	for i, tok := range toks {
		x, err := Parse(tok)
		if err != nil {
			return nil, &Error{Text: s}
		}
		res[i] = x
	}
	return res, nil
}

// Parse converts the text of a single number.
// The value is correctly rounded.
func Parse(tok string) (float64, error) {
	if Len([]byte(tok)) != len(tok) {
		return 0, &Error{Text: tok}
	}
	return strconv.ParseFloat(tok, 64)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isInteger reports whether b is an optionally signed digit sequence.
func isInteger(b []byte) bool {
	if len(b) > 0 && (b[0] == '-' || b[0] == '+') {
		b = b[1:]
	}
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if !isDigit(c) {
			return false
		}
	}
	return true
}
