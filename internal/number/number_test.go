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

package number

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokens(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"1 2 3", []string{"1", "2", "3"}},
		{"1,2 , 3", []string{"1", "2", "3"}},
		{"40-50", []string{"40", "-50"}},
		{"2.35.96", []string{"2.35", ".96"}},
		{"1.4210854715202004e-14,590", []string{"1.4210854715202004e-14", "590"}},
		{"10.,5", []string{"10.", "5"}},
		{"+3-.5e2", []string{"+3", "-.5e2"}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Tokens(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestTokensErrors(t *testing.T) {
	for _, in := range []string{"1,,2", ",1", "1,", "1 x", "-"} {
		if _, err := Tokens(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestList(t *testing.T) {
	got, err := List("0 0 300 400")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{0, 0, 300, 400}, got); d != "" {
		t.Error(d)
	}

	got, err = List("9.999999999999972")
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 9.999999999999972 {
		t.Errorf("got %v", got[0])
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("1.5.5"); err == nil {
		t.Error("expected error for 1.5.5")
	}
	x, err := Parse("-2e3")
	if err != nil || x != -2000 {
		t.Errorf("Parse(-2e3) = %v, %v", x, err)
	}
}
