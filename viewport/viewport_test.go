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

package viewport

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// a4 is an A4 page in PDF points.
var a4 = Rect{Width: 595, Height: 842}

func TestAlignOffset(t *testing.T) {
	cases := []struct {
		align  Alignment
		tx, ty float64
	}{
		{XMidYMid, 147.5, 221},
		{AlignNone, 0, 0},
		{XMaxYMax, 295, 442},
		{XMinYMin, 0, 0},
		{XMinYMax, 0, 442},
		{XMaxYMid, 295, 221},
	}
	for _, c := range cases {
		t.Run(c.align.String(), func(t *testing.T) {
			tx, ty := AlignOffset(AspectRatio{Align: c.align}, a4, 300, 400)
			if tx != c.tx || ty != c.ty {
				t.Errorf("got (%g, %g), want (%g, %g)", tx, ty, c.tx, c.ty)
			}
		})
	}
}

func TestParseAspectRatio(t *testing.T) {
	cases := []struct {
		in   string
		want AspectRatio
	}{
		{"", AspectRatio{Align: XMidYMid}},
		{"   ", AspectRatio{Align: XMidYMid}},
		{"none", AspectRatio{Align: AlignNone}},
		{"xMinYMax", AspectRatio{Align: XMinYMax}},
		{"xMaxYMin slice", AspectRatio{Align: XMaxYMin, Slice: true}},
		{"xMidYMid meet", AspectRatio{Align: XMidYMid}},
		{"defer xMinYMin slice", AspectRatio{Align: XMinYMin, Slice: true}},
	}
	for _, c := range cases {
		got, err := ParseAspectRatio(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"xmidymid", "xMinYMin stretch", "none meet extra"} {
		var attrErr *AttributeError
		if _, err := ParseAspectRatio(in); !errors.As(err, &attrErr) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestViewBoxTransform(t *testing.T) {
	vb := Rect{Width: 300, Height: 400}

	m := ViewBoxTransform(vb, a4, AspectRatio{})
	s := 595.0 / 300
	if math.Abs(m[0]-s) > 1e-12 || math.Abs(m[3]-s) > 1e-12 {
		t.Errorf("meet scale %v", m)
	}
	if math.Abs(m[4]) > 1e-9 || math.Abs(m[5]-(842-400*s)/2) > 1e-9 {
		t.Errorf("meet translation %v", m)
	}

	m = ViewBoxTransform(vb, a4, AspectRatio{Align: XMinYMin, Slice: true})
	s = 842.0 / 400
	if math.Abs(m[0]-s) > 1e-12 || m[4] != 0 || m[5] != 0 {
		t.Errorf("slice %v", m)
	}

	m = ViewBoxTransform(vb, a4, AspectRatio{Align: AlignNone})
	if math.Abs(m[0]-595.0/300) > 1e-12 || math.Abs(m[3]-842.0/400) > 1e-12 {
		t.Errorf("none %v", m)
	}
	if m[4] != 0 || m[5] != 0 {
		t.Errorf("none translation %v", m)
	}

	// the viewBox origin maps to the viewport origin
	vb = Rect{X: 10, Y: 20, Width: 100, Height: 100}
	vp := Rect{X: 5, Y: 5, Width: 200, Height: 200}
	m = ViewBoxTransform(vb, vp, AspectRatio{})
	if p := Apply(m, vec.Vec2{X: 10, Y: 20}); p != (vec.Vec2{X: 5, Y: 5}) {
		t.Errorf("origin maps to %v", p)
	}
	if p := Apply(m, vec.Vec2{X: 110, Y: 120}); p != (vec.Vec2{X: 205, Y: 205}) {
		t.Errorf("corner maps to %v", p)
	}
}

func TestParseViewBox(t *testing.T) {
	vb, ok, err := ParseViewBox("0,0 300 400")
	if err != nil || !ok || vb != (Rect{Width: 300, Height: 400}) {
		t.Errorf("got %v %t %v", vb, ok, err)
	}
	if _, ok, err := ParseViewBox("0 0 0 10"); err != nil || ok {
		t.Errorf("zero width: %t %v", ok, err)
	}
	if _, _, err := ParseViewBox("0 0 10"); err == nil {
		t.Error("three numbers accepted")
	}
}

func TestContext(t *testing.T) {
	c := NewContext()
	if _, err := c.Current(); !errors.Is(err, ErrNoViewport) {
		t.Errorf("empty Current: %v", err)
	}
	if _, err := c.Root(); !errors.Is(err, ErrNoViewport) {
		t.Errorf("empty Root: %v", err)
	}
	if err := c.Pop(); !errors.Is(err, ErrNoViewport) {
		t.Errorf("empty Pop: %v", err)
	}

	c.Push(a4)
	c.Push(Rect{Width: 10, Height: 10})
	clone := c.Clone()
	if err := c.Pop(); err != nil {
		t.Fatal(err)
	}
	if vp, _ := c.Current(); vp != a4 {
		t.Errorf("current after pop %v", vp)
	}
	if vp, _ := clone.Current(); vp.Width != 10 {
		t.Errorf("clone changed: %v", vp)
	}
	if clone.Depth() != 2 || c.Depth() != 1 {
		t.Errorf("depths %d %d", clone.Depth(), c.Depth())
	}
	if vp, _ := clone.Root(); vp != a4 {
		t.Errorf("root %v", vp)
	}
}

func TestRootTransform(t *testing.T) {
	m := RootTransform(Rect{X: 10, Y: 20, Width: 100, Height: 50})
	if p := Apply(m, vec.Vec2{X: 0, Y: 0}); p != (vec.Vec2{X: 10, Y: 70}) {
		t.Errorf("top left maps to %v", p)
	}
	if p := Apply(m, vec.Vec2{X: 0, Y: 50}); p != (vec.Vec2{X: 10, Y: 20}) {
		t.Errorf("bottom left maps to %v", p)
	}
}

func TestResolver(t *testing.T) {
	c := NewContext()
	c.Push(Rect{Width: 200, Height: 100})
	r, err := c.Resolver(UserSpaceOnUse, nil, 10)
	if err != nil {
		t.Fatal(err)
	}
	check := func(name string, got float64, err error, want float64) {
		t.Helper()
		if err != nil {
			t.Errorf("%s: %v", name, err)
		} else if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: got %g, want %g", name, got, want)
		}
	}
	x, err := r.X(Percent(50))
	check("x 50%", x, err, 100)
	y, err := r.Y(Percent(50))
	check("y 50%", y, err, 50)
	o, err := r.Other(Percent(100))
	check("r 100%", o, err, math.Sqrt((200*200+100*100)/2.0))
	w, err := r.Width(Length{Value: 2, Unit: UnitEm})
	check("2em", w, err, 20)
	w, err = r.Width(Length{Value: 1, Unit: UnitIn})
	check("1in", w, err, 96)
	w, err = r.Width(Length{Value: 3, Unit: UnitPt})
	check("3pt", w, err, 4)
	w, err = r.Width(Length{Value: 1, Unit: UnitRem})
	check("1rem", w, err, DefaultFontSize)

	bbox := &Rect{X: 10, Y: 20, Width: 40, Height: 80}
	r, err = c.Resolver(ObjectBoundingBox, bbox, 10)
	if err != nil {
		t.Fatal(err)
	}
	x, err = r.X(Px(0.5))
	check("bbox x 0.5", x, err, 30)
	y, err = r.Y(Percent(25))
	check("bbox y 25%", y, err, 40)
	h, err := r.Height(Px(1))
	check("bbox height 1", h, err, 80)

	if _, err := c.Resolver(ObjectBoundingBox, nil, 10); !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("missing bbox: %v", err)
	}
	r.BBox = nil
	if _, err := r.X(Px(1)); !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("missing bbox: %v", err)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"12", Length{Value: 12}},
		{" 1.5em ", Length{Value: 1.5, Unit: UnitEm}},
		{"50%", Length{Value: 50, Unit: UnitPercent}},
		{"-3PX", Length{Value: -3, Unit: UnitPx}},
		{"2mm", Length{Value: 2, Unit: UnitMM}},
		{"1e1rem", Length{Value: 10, Unit: UnitRem}},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
	for _, in := range []string{"", "abc", "12 px", "3furlong"} {
		if _, err := ParseLength(in); err == nil {
			t.Errorf("%q accepted", in)
		}
	}
}

func TestParseTransform(t *testing.T) {
	cases := []struct {
		in       string
		from, to vec.Vec2
	}{
		{"", vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 1, Y: 2}},
		{"translate(10,20) scale(2)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 12, Y: 22}},
		{"scale(2) translate(10 20)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 22, Y: 42}},
		{"rotate(90)", vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{"rotate(90, 10, 10)", vec.Vec2{X: 20, Y: 10}, vec.Vec2{X: 10, Y: 20}},
		{"matrix(1 0 0 1 5 6)", vec.Vec2{}, vec.Vec2{X: 5, Y: 6}},
		{"translate(5)", vec.Vec2{}, vec.Vec2{X: 5}},
		{"skewX(45)", vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 1}},
		{"skewY(45)", vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}},
	}
	for _, c := range cases {
		m, err := ParseTransform(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		p := Apply(m, c.from)
		if math.Abs(p.X-c.to.X) > 1e-9 || math.Abs(p.Y-c.to.Y) > 1e-9 {
			t.Errorf("%q: %v -> %v, want %v", c.in, c.from, p, c.to)
		}
	}

	for _, in := range []string{"translate(1,2", "shift(1)", "scale()", "rotate(1,2)"} {
		if _, err := ParseTransform(in); err == nil {
			t.Errorf("%q accepted", in)
		}
	}
}

func TestInvert(t *testing.T) {
	m := matrix.Matrix{2, 1, -1, 3, 5, 7}
	inv, ok := Invert(m)
	if !ok {
		t.Fatal("not invertible")
	}
	p := vec.Vec2{X: 3, Y: -4}
	q := Apply(inv, Apply(m, p))
	if math.Abs(q.X-p.X) > 1e-12 || math.Abs(q.Y-p.Y) > 1e-12 {
		t.Errorf("round trip gave %v", q)
	}
	if _, ok := Invert(matrix.Matrix{1, 2, 2, 4, 0, 0}); ok {
		t.Error("singular matrix inverted")
	}
}
