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

import "seehuhn.de/go/geom/vec"

// State is the part of the path construction state which carries over
// from one operator to the next.
type State struct {
	// Current is the current point.
	Current vec.Vec2

	// SubpathStart is the point a close path command returns to.
	SubpathStart vec.Vec2

	// Open is true once a subpath has been started, explicitly by a
	// move-to or implicitly by a drawing command.
	Open bool

	// last is the most recent segment, used for smooth curves.
	last Shape
}

// Build converts a sequence of operators into path segments.
//
// The returned state holds the final current point and the start of the
// last subpath.  If an error occurs, no segments are returned.
func Build(ops []Operator) ([]Shape, State, error) {
	var shapes []Shape
	var s State
	for _, op := range ops {
		var seg []Shape
		var err error
		seg, s, err = s.apply(op)
		if err != nil {
			return nil, State{}, err
		}
		shapes = append(shapes, seg...)
	}
	return shapes, s, nil
}

// Parse converts the contents of a path "d" attribute into path segments.
func Parse(d string) ([]Shape, State, error) {
	toks, err := tokenize(d)
	if err != nil {
		return nil, State{}, err
	}
	ops := make([]Operator, len(toks))
	for i, t := range toks {
		ops[i], err = t.operator()
		if err != nil {
			return nil, State{}, err
		}
	}
	return Build(ops)
}

// apply appends the segments for one operator.  The receiver is not
// modified; the updated state is returned.
func (s State) apply(op Operator) ([]Shape, State, error) {
	kind, rel := KindOf(op.Letter)
	if kind == 0 {
		return nil, s, &OperatorError{Op: rune(op.Letter)}
	}
	n := Arity(op.Letter)
	args := op.Operands

	if kind == KindClosePath {
		if len(args) != 0 {
			return nil, s, &ArgumentError{Op: op.Letter, Count: len(args)}
		}
		if !s.Open {
			return nil, s, ErrCloseWithoutSubpath
		}
		seg := ClosePath{From: s.Current, To: s.SubpathStart}
		s.Current = s.SubpathStart
		s.last = seg
		return []Shape{seg}, s, nil
	}

	if len(args) == 0 || len(args)%n != 0 {
		return nil, s, &ArgumentError{Op: op.Letter, Count: len(args)}
	}

	res := make([]Shape, 0, len(args)/n)
	for i := 0; i < len(args); i += n {
		k := kind
		if k == KindMoveTo && i > 0 {
			k = KindLineTo
		}
		var seg Shape
		seg, s = s.segment(k, rel, args[i:i+n])
		if seg != nil {
			res = append(res, seg)
		}
	}
	return res, s, nil
}

// segment constructs one segment from exactly Arity operands.
// The result is nil for arcs which draw nothing.
func (s State) segment(k Kind, rel bool, a []float64) (Shape, State) {
	cur := s.Current
	pt := func(x, y float64) vec.Vec2 {
		if rel {
			return vec.Vec2{X: cur.X + x, Y: cur.Y + y}
		}
		return vec.Vec2{X: x, Y: y}
	}

	if k != KindMoveTo && !s.Open {
		s.Open = true
		s.SubpathStart = cur
	}

	var seg Shape
	switch k {
	case KindMoveTo:
		to := pt(a[0], a[1])
		seg = MoveTo{From: cur, To: to}
		s.Open = true
		s.SubpathStart = to
	case KindLineTo:
		seg = LineTo{From: cur, To: pt(a[0], a[1])}
	case KindHorizontalLineTo:
		x := a[0]
		if rel {
			x += cur.X
		}
		seg = HorizontalLineTo{From: cur, To: vec.Vec2{X: x, Y: cur.Y}}
	case KindVerticalLineTo:
		y := a[0]
		if rel {
			y += cur.Y
		}
		seg = VerticalLineTo{From: cur, To: vec.Vec2{X: cur.X, Y: y}}
	case KindCurveTo:
		seg = CurveTo{From: cur, C1: pt(a[0], a[1]), C2: pt(a[2], a[3]), To: pt(a[4], a[5])}
	case KindSmoothCurveTo:
		seg = SmoothCurveTo{From: cur, C1: s.reflectCubic(), C2: pt(a[0], a[1]), To: pt(a[2], a[3])}
	case KindQuadraticCurveTo:
		seg = QuadraticCurveTo{From: cur, C: pt(a[0], a[1]), To: pt(a[2], a[3])}
	case KindSmoothQuadraticCurveTo:
		seg = SmoothQuadraticCurveTo{From: cur, C: s.reflectQuadratic(), To: pt(a[0], a[1])}
	case KindEllipticalCurveTo:
		to := pt(a[5], a[6])
		large := a[3] != 0
		sweep := a[4] != 0
		arc := ResolveArc(cur, a[0], a[1], a[2], large, sweep, to)
		switch arc.Degenerate {
		case ArcEmpty:
			s.last = nil
			return nil, s
		case ArcLine:
			seg = LineTo{From: cur, To: to}
		default:
			seg = EllipticalCurveTo{
				From:     cur,
				To:       to,
				Rx:       a[0],
				Ry:       a[1],
				Rotation: a[2],
				LargeArc: large,
				Sweep:    sweep,
				Arc:      arc,
			}
		}
	}

	s.Current = seg.EndPoint()
	s.last = seg
	return seg, s
}

// reflectCubic returns the first control point for a smooth cubic curve.
// If the previous segment was not a cubic curve, this is the current point.
func (s State) reflectCubic() vec.Vec2 {
	var c vec.Vec2
	switch prev := s.last.(type) {
	case CurveTo:
		c = prev.C2
	case SmoothCurveTo:
		c = prev.C2
	default:
		return s.Current
	}
	return s.Current.Mul(2).Sub(c)
}

// reflectQuadratic returns the control point for a smooth quadratic curve.
// If the previous segment was not a quadratic curve, this is the current
// point.
func (s State) reflectQuadratic() vec.Vec2 {
	var c vec.Vec2
	switch prev := s.last.(type) {
	case QuadraticCurveTo:
		c = prev.C
	case SmoothQuadraticCurveTo:
		c = prev.C
	default:
		return s.Current
	}
	return s.Current.Mul(2).Sub(c)
}
