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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   \n\t", []string{}},
		{"10 20", []string{}},
		{"M 10 20", []string{"M 10 20"}},
		{"M10,20L30,40", []string{"M 10 20", "L 30 40"}},
		{"M10-20l40-50z", []string{"M 10 -20", "l 40 -50", "z"}},
		{"M 0 0 L 2.35.96", []string{"M 0 0", "L 2.35 .96"}},
		{"  M 1 2   ", []string{"M 1 2"}},
		{"M0 0a10 10 0 1110 10", []string{"M 0 0", "a 10 10 0 1 1 10 10"}},
		{"M0 0A5,5,30,0,1,.5.5", []string{"M 0 0", "A 5 5 30 0 1 .5 .5"}},
		{"M 1e2 2E-3", []string{"M 1e2 2E-3"}},
		{"m0 0H1V2h3v4", []string{"m 0 0", "H 1", "V 2", "h 3", "v 4"}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Split(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestSplitExponent(t *testing.T) {
	in := "M10,9.999999999999972C203.33333333333334,9.999999999999972,396.6666666666667,1.4210854715202004e-14,590,1.4210854715202004e-14L590,41.666666666666686"
	want := []string{
		"M 10 9.999999999999972",
		"C 203.33333333333334 9.999999999999972 396.6666666666667 1.4210854715202004e-14 590 1.4210854715202004e-14",
		"L 590 41.666666666666686",
	}
	got, err := Split(in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	op, err := ParseOperator(got[1])
	if err != nil {
		t.Fatal(err)
	}
	if op.Operands[3] != 1.4210854715202004e-14 {
		t.Errorf("wrong exponent value %g", op.Operands[3])
	}
}

func TestSplitIdempotent(t *testing.T) {
	inputs := []string{
		"M10,20L30,40z",
		"M 0 0 L 2.35.96 3.25-.25",
		"M0 0a10 10 0 1110 10a5 5 0 0 0 1-1",
		"m1.5.5c1 2 3 4 5 6s1 2 3 4q1 1 2 2t5 5",
		"M 1e-5,-2E+3 H 1 2 3 V 4 5 Z",
	}
	for _, in := range inputs {
		first, err := Split(in)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Split(strings.Join(first, " "))
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(first, second); d != "" {
			t.Errorf("%q: %s", in, d)
		}
	}
}

func TestSplitErrors(t *testing.T) {
	_, err := Split("F")
	var opErr *OperatorError
	if !errors.As(err, &opErr) || opErr.Op != 'F' {
		t.Errorf("Split(F): got %v", err)
	}
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("Split(F) should be a syntax error")
	}

	_, err = Split("z")
	if !errors.Is(err, ErrCloseWithoutSubpath) {
		t.Errorf("Split(z): got %v", err)
	}

	_, err = Split("M 10 10 L 20 20 X 5")
	if !errors.As(err, &opErr) || opErr.Op != 'X' {
		t.Errorf("unknown operator not reported: %v", err)
	}

	_, err = Split("M 0 0 A 1 1 0 2 0 5 5")
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("invalid arc flag not reported: %v", err)
	}
}

func TestSeparateDecimalPoints(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2.35.96 3.25-.25", "2.35 .96 3.25 -.25"},
		{"1,2", "1 2"},
		{"40-50", "40 -50"},
		{"1e-14.5", "1e-14 .5"},
		{"", ""},
	}
	for _, c := range cases {
		if got := SeparateDecimalPoints(c.in); got != c.want {
			t.Errorf("SeparateDecimalPoints(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator("c 1 2 3 4 5 6")
	if err != nil {
		t.Fatal(err)
	}
	want := Operator{Letter: 'c', Relative: true, Operands: []float64{1, 2, 3, 4, 5, 6}}
	if d := cmp.Diff(want, op); d != "" {
		t.Error(d)
	}

	if _, err := ParseOperator("M 1 2 L 3 4"); err == nil {
		t.Error("two operators accepted")
	}
	if _, err := ParseOperator(""); err == nil {
		t.Error("empty operator accepted")
	}
}

func TestArity(t *testing.T) {
	cases := map[byte]int{
		'Z': 0, 'z': 0, 'H': 1, 'v': 1, 'M': 2, 'l': 2, 'T': 2,
		'q': 4, 'S': 4, 'C': 6, 'a': 7, 'x': -1,
	}
	for letter, want := range cases {
		if got := Arity(letter); got != want {
			t.Errorf("Arity(%c) = %d, want %d", letter, got, want)
		}
	}
}
