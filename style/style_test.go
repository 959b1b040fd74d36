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

package style

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svg/viewport"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in    string
		want  Color
		alpha float64
	}{
		{"red", RGB(1, 0, 0), 1},
		{"Red", RGB(1, 0, 0), 1},
		{"#f00", RGB(1, 0, 0), 1},
		{"#ff000080", RGB(1, 0, 0), 128.0 / 255},
		{"#0000ff", RGB(0, 0, 1), 1},
		{"rgb(255, 0, 0)", RGB(1, 0, 0), 1},
		{"rgb(100%,0%,0%)", RGB(1, 0, 0), 1},
		{"rgba(0,0,255,0.5)", RGB(0, 0, 1), 0.5},
		{"rgb(0 0 255 / 50%)", RGB(0, 0, 1), 0.5},
		{"device-cmyk(0, 1, 1, 0)", CMYK(0, 1, 1, 0), 1},
		{"cmyk(0% 0% 0% 100%)", CMYK(0, 0, 0, 1), 1},
		{"transparent", Black, 0},
	}
	for _, c := range cases {
		got, alpha, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: (-want +got)\n%s", c.in, d)
		}
		if math.Abs(alpha-c.alpha) > 1e-9 {
			t.Errorf("%q: alpha %g, want %g", c.in, alpha, c.alpha)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "nosuchcolor", "rgb(1,2,x)"} {
		_, _, err := ParseColor(in)
		if !errors.Is(err, ErrColor) {
			t.Errorf("%q: got %v, want ErrColor", in, err)
		}
	}
}

func TestLerp(t *testing.T) {
	c := Lerp(RGB(0, 0, 0), RGB(1, 0.5, 0), 0.5)
	want := RGB(0.5, 0.25, 0)
	if d := cmp.Diff(want, c); d != "" {
		t.Error(d)
	}
}

func TestParsePaint(t *testing.T) {
	p, err := ParsePaint("url(#grad) red")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != PaintURL || p.URL != "grad" {
		t.Errorf("got %v %q", p.Kind, p.URL)
	}
	if p.Fallback == nil || p.Fallback.Color != RGB(1, 0, 0) {
		t.Errorf("wrong fallback %v", p.Fallback)
	}

	p, err = ParsePaint("none")
	if err != nil || p.Kind != PaintNone {
		t.Errorf("none: %v %v", p, err)
	}
	p, err = ParsePaint("currentColor")
	if err != nil || p.Kind != PaintCurrentColor {
		t.Errorf("currentColor: %v %v", p, err)
	}
	p, err = ParsePaint("url('#x')")
	if err != nil || p.URL != "x" || p.Fallback != nil {
		t.Errorf("quoted url: %v %v", p, err)
	}

	for _, in := range []string{"url(#a", "url(x)", "url(#a) url(#b)"} {
		if _, err := ParsePaint(in); err == nil {
			t.Errorf("%q: missing error", in)
		}
	}
}

type testElement struct {
	tag     string
	id      string
	classes []string
	parent  *testElement
}

func (e *testElement) Tag() string { return e.tag }
func (e *testElement) ID() string  { return e.id }

func (e *testElement) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (e *testElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func TestStylesheet(t *testing.T) {
	sheet, err := ParseStylesheet(`
		@media print { rect { fill: black } }
		rect { fill: red; stroke: blue }
		.a { fill: green }
		#r { fill: yellow !important }
		g > rect { stroke-width: 3 }
		svg rect.a { stroke: black }
		rect:hover { fill: pink }
	`)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"rect:hover"}, sheet.Skipped); d != "" {
		t.Errorf("skipped (-want +got)\n%s", d)
	}

	root := &testElement{tag: "svg"}
	g := &testElement{tag: "g", parent: root}
	r := &testElement{tag: "rect", id: "r", classes: []string{"a"}, parent: g}

	got := sheet.Match(r)
	want := []Declaration{
		{Property: "fill", Value: "red"},
		{Property: "stroke", Value: "blue"},
		{Property: "stroke-width", Value: "3"},
		{Property: "fill", Value: "green"},
		{Property: "stroke", Value: "black"},
		{Property: "fill", Value: "yellow", Important: true},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("match (-want +got)\n%s", d)
	}

	// the child combinator requires a direct parent
	r2 := &testElement{tag: "rect", parent: root}
	got = sheet.Match(r2)
	want = []Declaration{
		{Property: "fill", Value: "red"},
		{Property: "stroke", Value: "blue"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("match (-want +got)\n%s", d)
	}
}

func TestParseSelector(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want specificity
	}{
		{"rect", true, specificity{0, 0, 1}},
		{"*", true, specificity{0, 0, 0}},
		{"#a.b.c", true, specificity{1, 2, 0}},
		{"g > rect.x", true, specificity{0, 1, 2}},
		{"g>rect", true, specificity{0, 0, 2}},
		{"> rect", false, specificity{}},
		{"g >", false, specificity{}},
		{"a[href]", false, specificity{}},
		{"a::before", false, specificity{}},
	}
	for _, c := range cases {
		sel, ok := parseSelector(c.in)
		if ok != c.ok {
			t.Errorf("%q: ok=%t, want %t", c.in, ok, c.ok)
			continue
		}
		if ok && sel.specificity != c.want {
			t.Errorf("%q: specificity %v, want %v", c.in, sel.specificity, c.want)
		}
	}
}

func TestParseDeclarations(t *testing.T) {
	for _, test := range []struct {
		in   string
		want []Declaration
	}{
		{
			in: "fill: red; Stroke-Width : 2px ;stroke:blue !important",
			want: []Declaration{
				{Property: "fill", Value: "red"},
				{Property: "stroke-width", Value: "2px"},
				{Property: "stroke", Value: "blue", Important: true},
			},
		},
		{
			in:   "fill:blue",
			want: []Declaration{{Property: "fill", Value: "blue"}},
		},
		{
			in:   " opacity: 0.5 !important ",
			want: []Declaration{{Property: "opacity", Value: "0.5", Important: true}},
		},
		{
			in:   "fill: red;",
			want: []Declaration{{Property: "fill", Value: "red"}},
		},
		{
			in:   "  ",
			want: nil,
		},
	} {
		got, err := ParseDeclarations(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%q: (-want +got)\n%s", test.in, d)
		}
	}
}

func TestDerive(t *testing.T) {
	root := Initial()
	parent, errs := root.Derive(map[string]string{
		"fill":         "blue",
		"opacity":      "0.5",
		"stroke-width": "2",
		"font-size":    "20px",
		"clip-path":    "url(#c)",
	})
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if parent.Opacity != 0.5 || parent.ClipPath != "c" || parent.FontSize != 20 {
		t.Errorf("parent: %+v", parent)
	}

	child, errs := parent.Derive(map[string]string{
		"stroke":       "red",
		"stroke-width": "bogus",
		"clip-path":    "inherit",
		"font-size":    "2em",
		"marker":       "url(#m)",
	})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	var perr *PropertyError
	if !errors.As(errs[0], &perr) || perr.Property != "stroke-width" {
		t.Errorf("unexpected error %v", errs[0])
	}

	// inherited
	if child.Fill.Color != RGB(0, 0, 1) {
		t.Errorf("fill not inherited: %v", child.Fill)
	}
	if child.StrokeWidth != viewport.Px(2) {
		t.Errorf("invalid declaration was not ignored: %v", child.StrokeWidth)
	}
	// not inherited
	if child.Opacity != 1 {
		t.Errorf("opacity %g, want 1", child.Opacity)
	}
	// explicit inherit
	if child.ClipPath != "c" {
		t.Errorf("clip-path %q, want c", child.ClipPath)
	}
	if child.FontSize != 40 {
		t.Errorf("font-size %g, want 40", child.FontSize)
	}
	if child.MarkerStart != "m" || child.MarkerMid != "m" || child.MarkerEnd != "m" {
		t.Errorf("marker shorthand not expanded: %+v", child)
	}
}

func TestDeriveStrokeProperties(t *testing.T) {
	c, errs := Initial().Derive(map[string]string{
		"stroke-linecap":    "round",
		"stroke-linejoin":   "bevel",
		"stroke-miterlimit": "10",
		"stroke-dasharray":  "5, 3 2",
		"stroke-dashoffset": "1",
		"fill-rule":         "evenodd",
		"fill-opacity":      "150%",
		"visibility":        "hidden",
		"display":           "none",
	})
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if c.LineCap != graphics.LineCapRound || c.LineJoin != graphics.LineJoinBevel {
		t.Errorf("cap/join: %v %v", c.LineCap, c.LineJoin)
	}
	if c.MiterLimit != 10 || c.FillRule != EvenOdd || c.FillOpacity != 1 {
		t.Errorf("got %+v", c)
	}
	want := []viewport.Length{viewport.Px(5), viewport.Px(3), viewport.Px(2)}
	if d := cmp.Diff(want, c.DashArray); d != "" {
		t.Errorf("dash array (-want +got)\n%s", d)
	}
	if c.Visible || c.Display {
		t.Errorf("visible=%t display=%t", c.Visible, c.Display)
	}

	_, errs = Initial().Derive(map[string]string{
		"stroke-miterlimit": "0.5",
		"stroke-dasharray":  "1 -2",
		"fill-rule":         "odd",
	})
	if len(errs) != 3 {
		t.Errorf("got %d errors, want 3", len(errs))
	}
}

func TestIsProperty(t *testing.T) {
	if !IsProperty("stroke-width") || IsProperty("width") {
		t.Error("wrong result")
	}
}
