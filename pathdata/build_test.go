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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestBuildEmpty(t *testing.T) {
	for _, d := range []string{"", "   ", "12 13"} {
		shapes, _, err := Parse(d)
		if err != nil {
			t.Errorf("%q: %v", d, err)
		}
		if len(shapes) != 0 {
			t.Errorf("%q: got %d shapes", d, len(shapes))
		}
	}
}

func TestBuildHorizontalExpansion(t *testing.T) {
	shapes, _, err := Parse("M 0 0 H 10 20 30")
	if err != nil {
		t.Fatal(err)
	}
	want := []Shape{
		MoveTo{From: pt(0, 0), To: pt(0, 0)},
		HorizontalLineTo{From: pt(0, 0), To: pt(10, 0)},
		HorizontalLineTo{From: pt(10, 0), To: pt(20, 0)},
		HorizontalLineTo{From: pt(20, 0), To: pt(30, 0)},
	}
	if d := cmp.Diff(want, shapes); d != "" {
		t.Error(d)
	}
}

func TestBuildVerticalRelative(t *testing.T) {
	shapes, st, err := Parse("M 5 5 v 10 -3")
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	if shapes[2].EndPoint() != pt(5, 12) {
		t.Errorf("wrong end point %v", shapes[2].EndPoint())
	}
	if st.Current != pt(5, 12) {
		t.Errorf("wrong current point %v", st.Current)
	}
}

func TestBuildArcChain(t *testing.T) {
	shapes, _, err := Parse("M 200,300 a 10 10 0 0 0 10 10 a 10 10 0 0 0 10 10")
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	first := shapes[1].(EllipticalCurveTo)
	second := shapes[2].(EllipticalCurveTo)
	if first.To != pt(210, 310) {
		t.Errorf("first arc ends at %v", first.To)
	}
	if second.From != first.To {
		t.Errorf("second arc starts at %v", second.From)
	}
	if second.To != pt(220, 320) {
		t.Errorf("second arc ends at %v", second.To)
	}
}

func TestBuildStartPoints(t *testing.T) {
	shapes, _, err := Parse("M1 2 L3 4 C5 6 7 8 9 10 Q 1 1 2 2 A 3 3 0 0 1 8 8 Z l 1 1")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(shapes); i++ {
		if _, isMove := shapes[i].(MoveTo); isMove {
			continue
		}
		if shapes[i].StartPoint() != shapes[i-1].EndPoint() {
			t.Errorf("shape %d starts at %v, previous ends at %v",
				i, shapes[i].StartPoint(), shapes[i-1].EndPoint())
		}
	}
	// after "Z", the relative line starts from the subpath start
	last := shapes[len(shapes)-1].(LineTo)
	if last.From != pt(1, 2) || last.To != pt(2, 3) {
		t.Errorf("line after close: %v -> %v", last.From, last.To)
	}
}

func TestBuildSmooth(t *testing.T) {
	// reflection of a previous cubic
	shapes, _, err := Parse("M0 0 C 0 10 10 10 10 0 S 20 -10 20 0")
	if err != nil {
		t.Fatal(err)
	}
	s := shapes[2].(SmoothCurveTo)
	if s.C1 != pt(10, -10) {
		t.Errorf("reflected control point %v", s.C1)
	}

	// fallback after a line
	shapes, _, err = Parse("M0 0 L 5 5 S 20 -10 20 0")
	if err != nil {
		t.Fatal(err)
	}
	s = shapes[2].(SmoothCurveTo)
	if s.C1 != pt(5, 5) {
		t.Errorf("fallback control point %v", s.C1)
	}

	// a quadratic curve is not compatible with S
	shapes, _, err = Parse("M0 0 Q 5 5 10 0 S 20 -10 20 0")
	if err != nil {
		t.Fatal(err)
	}
	s = shapes[2].(SmoothCurveTo)
	if s.C1 != pt(10, 0) {
		t.Errorf("fallback control point %v", s.C1)
	}

	// quadratic reflection chains through T
	shapes, _, err = Parse("M0 0 Q 5 5 10 0 T 20 0 T 30 0")
	if err != nil {
		t.Fatal(err)
	}
	if c := shapes[2].(SmoothQuadraticCurveTo).C; c != pt(15, -5) {
		t.Errorf("first T control %v", c)
	}
	if c := shapes[3].(SmoothQuadraticCurveTo).C; c != pt(25, 5) {
		t.Errorf("second T control %v", c)
	}

	// T directly after a move-to
	shapes, _, err = Parse("M 3 4 t 1 1")
	if err != nil {
		t.Fatal(err)
	}
	q := shapes[1].(SmoothQuadraticCurveTo)
	if q.C != pt(3, 4) || q.To != pt(4, 5) {
		t.Errorf("T after M: %v %v", q.C, q.To)
	}
	for _, c := range []float64{q.C.X, q.C.Y, q.To.X, q.To.Y} {
		if math.IsNaN(c) {
			t.Error("NaN coordinate")
		}
	}
}

func TestBuildImplicitLineTo(t *testing.T) {
	shapes, _, err := Parse("m 1 1 2 2 3 3")
	if err != nil {
		t.Fatal(err)
	}
	want := []Shape{
		MoveTo{From: pt(0, 0), To: pt(1, 1)},
		LineTo{From: pt(1, 1), To: pt(3, 3)},
		LineTo{From: pt(3, 3), To: pt(6, 6)},
	}
	if d := cmp.Diff(want, shapes); d != "" {
		t.Error(d)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		d    string
		want error
	}{
		{"M", ErrArgumentCount},
		{"M 10", ErrArgumentCount},
		{"M 1 2 3", ErrArgumentCount},
		{"M 0 0 L 1", ErrArgumentCount},
		{"M 0 0 C 1 2 3 4 5", ErrArgumentCount},
		{"M 0 0 Z 5", ErrArgumentCount},
		{"Z", ErrCloseWithoutSubpath},
		{"M 0 0 L 1 1 F 2", ErrSyntax},
	}
	for _, c := range cases {
		shapes, _, err := Parse(c.d)
		if !errors.Is(err, c.want) {
			t.Errorf("%q: got %v, want %v", c.d, err, c.want)
		}
		if shapes != nil {
			t.Errorf("%q: partial result returned", c.d)
		}
	}

	var argErr *ArgumentError
	_, _, err := Parse("M 1 2 3")
	if !errors.As(err, &argErr) || argErr.Op != 'M' || argErr.Count != 3 {
		t.Errorf("wrong argument error: %v", err)
	}
}

func TestBuildArity(t *testing.T) {
	ops := []Operator{
		{Letter: 'M', Operands: []float64{0, 0}},
		{Letter: 'l', Relative: true, Operands: []float64{1, 1, 2, 2}},
		{Letter: 'C', Operands: []float64{1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6}},
		{Letter: 'A', Operands: []float64{5, 5, 0, 0, 1, 20, 20}},
		{Letter: 'Z'},
	}
	shapes, st, err := Build(ops)
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]Kind, len(shapes))
	for i, s := range shapes {
		kinds[i] = s.Kind()
	}
	want := []Kind{
		KindMoveTo, KindLineTo, KindLineTo, KindCurveTo, KindCurveTo,
		KindEllipticalCurveTo, KindClosePath,
	}
	if d := cmp.Diff(want, kinds); d != "" {
		t.Error(d)
	}
	if st.Current != pt(0, 0) || st.SubpathStart != pt(0, 0) {
		t.Errorf("final state %v", st)
	}
}

func TestBuildDegenerateArcs(t *testing.T) {
	shapes, _, err := Parse("M 0 0 A 0 5 0 0 1 10 0 A 5 5 0 0 1 10 0")
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	if l, ok := shapes[1].(LineTo); !ok || l.To != pt(10, 0) {
		t.Errorf("zero radius arc gave %#v", shapes[1])
	}
}

func TestToPath(t *testing.T) {
	shapes, _, err := Parse("M0 0 L10 0 Z L 5 5 Q 6 6 7 7")
	if err != nil {
		t.Fatal(err)
	}
	p := ToPath(shapes)
	want := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo,
	}
	if d := cmp.Diff(want, p.Cmds); d != "" {
		t.Error(d)
	}
	if p.Coords[2] != pt(0, 0) {
		t.Errorf("new subpath starts at %v", p.Coords[2])
	}
}

func TestBounds(t *testing.T) {
	shapes, _, err := Parse("M 0 0 C 0 10 10 10 10 0")
	if err != nil {
		t.Fatal(err)
	}
	b, ok := Bounds(shapes)
	if !ok {
		t.Fatal("no bounds")
	}
	if b.LLx != 0 || b.URx != 10 || b.LLy != 0 || math.Abs(b.URy-7.5) > 1e-12 {
		t.Errorf("wrong bounds %v", b)
	}

	if _, ok := Bounds([]Shape{MoveTo{To: pt(1, 1)}}); ok {
		t.Error("move-to has bounds")
	}
}

func TestVertices(t *testing.T) {
	shapes, _, err := Parse("M0 0 L10 0 L10 10")
	if err != nil {
		t.Fatal(err)
	}
	vs := Vertices(shapes)
	if len(vs) != 3 {
		t.Fatalf("got %d vertices", len(vs))
	}
	for i, want := range []float64{0, 45, 90} {
		if got := vs[i].Angle(); math.Abs(got-want) > 1e-9 {
			t.Errorf("vertex %d: angle %g, want %g", i, got, want)
		}
	}
}
