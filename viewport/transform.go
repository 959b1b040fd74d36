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
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/svg/internal/number"
)

// ParseTransform parses an SVG transform list, such as
// "translate(10,20) rotate(45)".  The rightmost transformation is applied
// to the coordinates first.
func ParseTransform(s string) (matrix.Matrix, error) {
	res := matrix.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open <= 0 || end < open {
			return matrix.Identity, &AttributeError{Attr: "transform", Value: s}
		}
		name := strings.TrimSpace(rest[:open])
		args, err := number.List(rest[open+1 : end])
		if err != nil {
			return matrix.Identity, &AttributeError{Attr: "transform", Value: s, Err: err}
		}
		m, ok := transformFunc(name, args)
		if !ok {
			return matrix.Identity, &AttributeError{Attr: "transform", Value: s}
		}
		res = m.Mul(res)
		rest = strings.TrimLeft(rest[end+1:], " \t\r\n,")
	}
	return res, nil
}

func transformFunc(name string, a []float64) (matrix.Matrix, bool) {
	switch name {
	case "matrix":
		if len(a) != 6 {
			return matrix.Identity, false
		}
		return matrix.Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}, true
	case "translate":
		switch len(a) {
		case 1:
			return matrix.Matrix{1, 0, 0, 1, a[0], 0}, true
		case 2:
			return matrix.Matrix{1, 0, 0, 1, a[0], a[1]}, true
		}
	case "scale":
		switch len(a) {
		case 1:
			return matrix.Matrix{a[0], 0, 0, a[0], 0, 0}, true
		case 2:
			return matrix.Matrix{a[0], 0, 0, a[1], 0, 0}, true
		}
	case "rotate":
		if len(a) != 1 && len(a) != 3 {
			return matrix.Identity, false
		}
		sin, cos := math.Sincos(a[0] * math.Pi / 180)
		rot := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
		if len(a) == 1 {
			return rot, true
		}
		cx, cy := a[1], a[2]
		m := matrix.Matrix{1, 0, 0, 1, -cx, -cy}.Mul(rot)
		return m.Mul(matrix.Matrix{1, 0, 0, 1, cx, cy}), true
	case "skewX":
		if len(a) == 1 {
			return matrix.Matrix{1, 0, math.Tan(a[0] * math.Pi / 180), 1, 0, 0}, true
		}
	case "skewY":
		if len(a) == 1 {
			return matrix.Matrix{1, math.Tan(a[0] * math.Pi / 180), 0, 1, 0, 0}, true
		}
	}
	return matrix.Identity, false
}

// Apply maps the point v using m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// Invert returns the inverse of m.  The second return value is false if m
// is singular.
func Invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	return m.Inv(), true
}

// TransformRect returns the bounding box of the image of r under m.
func TransformRect(m matrix.Matrix, r Rect) Rect {
	corners := [4]vec.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
	}
	p := Apply(m, corners[0])
	x0, y0, x1, y1 := p.X, p.Y, p.X, p.Y
	for _, c := range corners[1:] {
		p := Apply(m, c)
		x0 = min(x0, p.X)
		y0 = min(y0, p.Y)
		x1 = max(x1, p.X)
		y1 = max(y1, p.Y)
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
