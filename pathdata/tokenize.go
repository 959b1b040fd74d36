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

package pathdata

import (
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/svg/internal/number"
)

// token is one command letter together with the text of its operands.
type token struct {
	letter   byte
	pos      int
	operands []string
}

func (t token) String() string {
	if len(t.operands) == 0 {
		return string(t.letter)
	}
	return string(t.letter) + " " + strings.Join(t.operands, " ")
}

// tokenize splits path data into commands and operand texts.
// Numbers which occur before the first command are ignored.
func tokenize(d string) ([]token, error) {
	b := []byte(d)
	var toks []token
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case number.IsSeparator(c):
			i++

		case IsCommand(c):
			toks = append(toks, token{letter: c, pos: i})
			i++

		case number.IsStart(c):
			var cur *token
			if len(toks) > 0 {
				cur = &toks[len(toks)-1]
			}
			if cur != nil && isFlagPosition(cur.letter, len(cur.operands)) {
				if c != '0' && c != '1' {
					return nil, &NumberError{Op: cur.letter, Text: string(c), Pos: i}
				}
				cur.operands = append(cur.operands, d[i:i+1])
				i++
				continue
			}
			n := number.Len(b[i:])
			if n == 0 {
				if cur == nil {
					i++
					continue
				}
				return nil, &NumberError{Op: cur.letter, Text: d[i : i+1], Pos: i}
			}
			if cur != nil {
				cur.operands = append(cur.operands, d[i:i+n])
			}
			i += n

		default:
			r, _ := utf8.DecodeRune(b[i:])
			return nil, &OperatorError{Op: r, Pos: i}
		}
	}
	return toks, nil
}

// isFlagPosition reports whether operand number k of the given command is
// one of the single-character arc flags.
func isFlagPosition(letter byte, k int) bool {
	if letter != 'A' && letter != 'a' {
		return false
	}
	k %= 7
	return k == 3 || k == 4
}

// Split breaks the contents of a path "d" attribute into operator strings.
//
// Each result consists of the command letter, followed by the operands
// separated by single spaces, for example "M 10 20" or "Z".  The operand
// text is preserved as it appears in the input, after separating numbers
// which were written without a delimiter.  Empty input gives an empty
// result.
//
// Split returns an [*OperatorError] for letters which are not path
// commands, and [ErrCloseWithoutSubpath] if a close path command appears
// before any other command.
func Split(d string) ([]string, error) {
	toks, err := tokenize(d)
	if err != nil {
		return nil, err
	}
	if err := checkSubpaths(toks); err != nil {
		return nil, err
	}
	res := make([]string, len(toks))
	for i, t := range toks {
		res[i] = t.String()
	}
	return res, nil
}

func checkSubpaths(toks []token) error {
	for _, t := range toks {
		k, _ := KindOf(t.letter)
		if k != KindClosePath {
			return nil
		}
		return ErrCloseWithoutSubpath
	}
	return nil
}

// SeparateDecimalPoints inserts spaces between numbers which are written
// without a delimiter.  For example, "2.35.96 3.25-.25" becomes
// "2.35 .96 3.25 -.25".  Text which is not part of a number is kept, and
// runs of separators collapse to a single space.
func SeparateDecimalPoints(s string) string {
	b := []byte(s)
	var out strings.Builder
	for i := 0; i < len(b); {
		c := b[i]
		if number.IsSeparator(c) {
			i++
			continue
		}
		n := 0
		if number.IsStart(c) {
			n = number.Len(b[i:])
		}
		if n == 0 {
			n = 1
			for i+n < len(b) && !number.IsSeparator(b[i+n]) && !number.IsStart(b[i+n]) {
				n++
			}
		}
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(s[i : i+n])
		i += n
	}
	return out.String()
}

// ParseOperator converts a single operator string, as returned by
// [Split], into an [Operator].
func ParseOperator(s string) (Operator, error) {
	toks, err := tokenize(s)
	if err != nil {
		return Operator{}, err
	}
	switch len(toks) {
	case 0:
		return Operator{}, &NumberError{Text: strings.TrimSpace(s)}
	case 1:
		// pass
	default:
		return Operator{}, &OperatorError{Op: rune(toks[1].letter), Pos: toks[1].pos}
	}
	return toks[0].operator()
}

func (t token) operator() (Operator, error) {
	_, rel := KindOf(t.letter)
	op := Operator{
		Letter:   t.letter,
		Relative: rel,
	}
	if len(t.operands) > 0 {
		op.Operands = make([]float64, len(t.operands))
	}
	for i, text := range t.operands {
		x, err := number.Parse(text)
		if err != nil {
			return Operator{}, &NumberError{Op: t.letter, Text: text, Pos: t.pos}
		}
		op.Operands[i] = x
	}
	return op, nil
}
