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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ToPath converts path segments into a [path.Data].
//
// Arcs are approximated by cubic Bézier curves.  A segment which follows a
// close path command without an intervening move-to starts a new subpath
// at the start point of the closed one.
func ToPath(shapes []Shape) *path.Data {
	p := &path.Data{}
	needMove := true
	for _, s := range shapes {
		switch s := s.(type) {
		case MoveTo:
			p.MoveTo(s.To)
			needMove = false
			continue
		case ClosePath:
			if !needMove {
				p.Close()
				needMove = true
			}
			continue
		}

		if needMove {
			p.MoveTo(s.StartPoint())
			needMove = false
		}
		switch s := s.(type) {
		case LineTo:
			p.LineTo(s.To)
		case HorizontalLineTo:
			p.LineTo(s.To)
		case VerticalLineTo:
			p.LineTo(s.To)
		case CurveTo:
			p.CubeTo(s.C1, s.C2, s.To)
		case SmoothCurveTo:
			p.CubeTo(s.C1, s.C2, s.To)
		case QuadraticCurveTo:
			p.QuadTo(s.C, s.To)
		case SmoothQuadraticCurveTo:
			p.QuadTo(s.C, s.To)
		case EllipticalCurveTo:
			for _, c := range s.Arc.Curves() {
				p.CubeTo(c[0], c[1], c[2])
			}
		}
	}
	return p
}

// Bounds returns the smallest rectangle which encloses all drawn segments.
// Curves contribute their extreme points, not their control points.  The
// second return value is false if nothing is drawn.
func Bounds(shapes []Shape) (rect.Rect, bool) {
	b := bbox{}
	for _, s := range shapes {
		switch s := s.(type) {
		case MoveTo:
			// a move-to alone has no geometry
		case CurveTo:
			b.cubic(s.From, s.C1, s.C2, s.To)
		case SmoothCurveTo:
			b.cubic(s.From, s.C1, s.C2, s.To)
		case QuadraticCurveTo:
			b.quadratic(s.From, s.C, s.To)
		case SmoothQuadraticCurveTo:
			b.quadratic(s.From, s.C, s.To)
		case EllipticalCurveTo:
			from := s.From
			for _, c := range s.Arc.Curves() {
				b.cubic(from, c[0], c[1], c[2])
				from = c[2]
			}
		default:
			b.add(s.StartPoint())
			b.add(s.EndPoint())
		}
	}
	return b.r, b.ok
}

type bbox struct {
	r  rect.Rect
	ok bool
}

func (b *bbox) add(p vec.Vec2) {
	if !b.ok {
		b.r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		b.ok = true
		return
	}
	b.r.LLx = math.Min(b.r.LLx, p.X)
	b.r.LLy = math.Min(b.r.LLy, p.Y)
	b.r.URx = math.Max(b.r.URx, p.X)
	b.r.URy = math.Max(b.r.URy, p.Y)
}

func (b *bbox) quadratic(p0, p1, p2 vec.Vec2) {
	b.add(p0)
	b.add(p2)
	// the derivative is linear: 2(1-t)(p1-p0) + 2t(p2-p1)
	for _, t := range [2]float64{
		quadExtremum(p0.X, p1.X, p2.X),
		quadExtremum(p0.Y, p1.Y, p2.Y),
	} {
		if t > 0 && t < 1 {
			u := 1 - t
			b.add(p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t)))
		}
	}
}

func quadExtremum(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return -1
	}
	return (a - b) / den
}

func (b *bbox) cubic(p0, p1, p2, p3 vec.Vec2) {
	b.add(p0)
	b.add(p3)
	var ts [4]float64
	n := cubicExtrema(ts[:0], p0.X, p1.X, p2.X, p3.X)
	n = cubicExtrema(n, p0.Y, p1.Y, p2.Y, p3.Y)
	for _, t := range n {
		u := 1 - t
		p := p0.Mul(u * u * u).
			Add(p1.Mul(3 * u * u * t)).
			Add(p2.Mul(3 * u * t * t)).
			Add(p3.Mul(t * t * t))
		b.add(p)
	}
}

// cubicExtrema appends the parameters in (0, 1) where the derivative of a
// one-dimensional cubic Bézier curve vanishes.
func cubicExtrema(res []float64, p0, p1, p2, p3 float64) []float64 {
	// derivative / 3 = a t^2 + b t + c
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	add := func(t float64) {
		if t > 0 && t < 1 {
			res = append(res, t)
		}
	}
	if math.Abs(a) < 1e-12 {
		if b != 0 {
			add(-c / b)
		}
		return res
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return res
	}
	sq := math.Sqrt(disc)
	add((-b + sq) / (2 * a))
	add((-b - sq) / (2 * a))
	return res
}

// Vertex is a point where a marker can be placed.
type Vertex struct {
	Point vec.Vec2

	// In and Out are the directions of the path when arriving at and
	// leaving the vertex.  They are zero where no segment arrives or
	// leaves.
	In, Out vec.Vec2
}

// Angle returns the direction of the path at the vertex, in degrees.
// This is the bisector of the incoming and outgoing directions.
func (v Vertex) Angle() float64 {
	in := unit(v.In)
	out := unit(v.Out)
	d := in.Add(out)
	if d.X == 0 && d.Y == 0 {
		d = in
		if d.X == 0 && d.Y == 0 {
			d = out
		}
	}
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// Vertices lists the vertices of a path, one for the end point of every
// segment.
func Vertices(shapes []Shape) []Vertex {
	res := make([]Vertex, 0, len(shapes))
	subpathFirst := -1 // index of the first drawing segment of the subpath
	for i, s := range shapes {
		v := Vertex{Point: s.EndPoint()}
		if _, isMove := s.(MoveTo); !isMove {
			_, v.In = tangents(s)
			if subpathFirst < 0 {
				subpathFirst = i
			}
		}
		switch s.(type) {
		case MoveTo:
			subpathFirst = -1
			if i+1 < len(shapes) {
				if _, next := shapes[i+1].(MoveTo); !next {
					v.Out, _ = tangents(shapes[i+1])
				}
			}
		case ClosePath:
			if subpathFirst >= 0 && subpathFirst < i {
				v.Out, _ = tangents(shapes[subpathFirst])
			}
			subpathFirst = -1
		default:
			if i+1 < len(shapes) {
				if _, next := shapes[i+1].(MoveTo); !next {
					v.Out, _ = tangents(shapes[i+1])
				}
			}
		}
		res = append(res, v)
	}
	return res
}

// tangents returns the directions at the start and at the end of a segment.
func tangents(s Shape) (start, end vec.Vec2) {
	nonZero := func(vs ...vec.Vec2) vec.Vec2 {
		for _, v := range vs {
			if v.X != 0 || v.Y != 0 {
				return v
			}
		}
		return vec.Vec2{}
	}
	switch s := s.(type) {
	case CurveTo:
		start = nonZero(s.C1.Sub(s.From), s.C2.Sub(s.From), s.To.Sub(s.From))
		end = nonZero(s.To.Sub(s.C2), s.To.Sub(s.C1), s.To.Sub(s.From))
	case SmoothCurveTo:
		start = nonZero(s.C1.Sub(s.From), s.C2.Sub(s.From), s.To.Sub(s.From))
		end = nonZero(s.To.Sub(s.C2), s.To.Sub(s.C1), s.To.Sub(s.From))
	case QuadraticCurveTo:
		start = nonZero(s.C.Sub(s.From), s.To.Sub(s.From))
		end = nonZero(s.To.Sub(s.C), s.To.Sub(s.From))
	case SmoothQuadraticCurveTo:
		start = nonZero(s.C.Sub(s.From), s.To.Sub(s.From))
		end = nonZero(s.To.Sub(s.C), s.To.Sub(s.From))
	case EllipticalCurveTo:
		cs := s.Arc.Curves()
		if len(cs) > 0 {
			first, last := cs[0], cs[len(cs)-1]
			lastFrom := s.From
			if len(cs) > 1 {
				lastFrom = cs[len(cs)-2][2]
			}
			start = nonZero(first[0].Sub(s.From), first[2].Sub(s.From))
			end = nonZero(last[2].Sub(last[1]), last[2].Sub(lastFrom))
		}
	default:
		d := s.EndPoint().Sub(s.StartPoint())
		start, end = d, d
	}
	return start, end
}
