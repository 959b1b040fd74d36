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

package svg

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svg/internal/number"
	"seehuhn.de/go/svg/pathdata"
	"seehuhn.de/go/svg/viewport"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// geometry is the outline of a shape element, in the element's user
// space.
type geometry struct {
	path *path.Data

	// shapes holds the segments for elements which can carry markers
	// (path, line, polyline, polygon), and is nil otherwise.
	shapes []pathdata.Shape

	bbox    viewport.Rect
	hasBBox bool
}

// geometry computes the outline of a shape element.  The result is nil if
// the element is not rendered, for example a rectangle of width zero.
func (r *renderer) geometry(h Handle, st *state) (*geometry, error) {
	n := &r.doc.nodes[h]
	res, err := r.resolver(st, viewport.UserSpaceOnUse, nil)
	if err != nil {
		return nil, r.attrError(h, "", err)
	}

	switch n.tag {
	case "path":
		shapes, _, err := pathdata.Parse(n.attrs["d"])
		if err != nil {
			return nil, r.attrError(h, "d", err)
		}
		return shapeGeometry(shapes), nil

	case "rect":
		return r.rectGeometry(h, res)

	case "circle":
		var v [3]float64
		for i, a := range []struct {
			name string
			ax   axis
		}{{"cx", posX}, {"cy", posY}, {"r", other}} {
			v[i], err = r.lengthAttr(h, res, a.name, "0", a.ax)
			if err != nil {
				return nil, err
			}
		}
		if v[2] <= 0 {
			return nil, nil
		}
		return ellipseGeometry(v[0], v[1], v[2], v[2]), nil

	case "ellipse":
		var v [4]float64
		for i, a := range []struct {
			name string
			ax   axis
		}{{"cx", posX}, {"cy", posY}, {"rx", horizontal}, {"ry", vertical}} {
			v[i], err = r.lengthAttr(h, res, a.name, "0", a.ax)
			if err != nil {
				return nil, err
			}
		}
		// "auto" radii take the value of the other radius
		if !r.hasAttr(h, "rx") {
			v[2] = v[3]
		} else if !r.hasAttr(h, "ry") {
			v[3] = v[2]
		}
		if v[2] <= 0 || v[3] <= 0 {
			return nil, nil
		}
		return ellipseGeometry(v[0], v[1], v[2], v[3]), nil

	case "line":
		var v [4]float64
		for i, a := range []struct {
			name string
			ax   axis
		}{{"x1", posX}, {"y1", posY}, {"x2", posX}, {"y2", posY}} {
			v[i], err = r.lengthAttr(h, res, a.name, "0", a.ax)
			if err != nil {
				return nil, err
			}
		}
		p0 := vec.Vec2{X: v[0], Y: v[1]}
		p1 := vec.Vec2{X: v[2], Y: v[3]}
		return shapeGeometry([]pathdata.Shape{
			pathdata.MoveTo{From: p0, To: p0},
			pathdata.LineTo{From: p0, To: p1},
		}), nil

	case "polyline", "polygon":
		xs, err := number.List(n.attrs["points"])
		if err != nil {
			return nil, r.attrError(h, "points", err)
		}
		if len(xs)%2 != 0 {
			xs = xs[:len(xs)-1]
		}
		if len(xs) < 4 {
			return nil, nil
		}
		first := vec.Vec2{X: xs[0], Y: xs[1]}
		shapes := []pathdata.Shape{pathdata.MoveTo{From: first, To: first}}
		cur := first
		for i := 2; i < len(xs); i += 2 {
			next := vec.Vec2{X: xs[i], Y: xs[i+1]}
			shapes = append(shapes, pathdata.LineTo{From: cur, To: next})
			cur = next
		}
		if n.tag == "polygon" {
			shapes = append(shapes, pathdata.ClosePath{From: cur, To: first})
		}
		return shapeGeometry(shapes), nil
	}
	return nil, nil
}

func shapeGeometry(shapes []pathdata.Shape) *geometry {
	if len(shapes) == 0 {
		return nil
	}
	g := &geometry{
		path:   pathdata.ToPath(shapes),
		shapes: shapes,
	}
	if b, ok := pathdata.Bounds(shapes); ok {
		g.bbox = viewport.Rect{X: b.LLx, Y: b.LLy, Width: b.URx - b.LLx, Height: b.URy - b.LLy}
		g.hasBBox = true
	}
	return g
}

// rectGeometry implements the rules for <rect>, including the automatic
// and clamped corner radii.
func (r *renderer) rectGeometry(h Handle, res *viewport.Resolver) (*geometry, error) {
	x, err := r.lengthAttr(h, res, "x", "0", posX)
	if err != nil {
		return nil, err
	}
	y, err := r.lengthAttr(h, res, "y", "0", posY)
	if err != nil {
		return nil, err
	}
	w, err := r.lengthAttr(h, res, "width", "0", horizontal)
	if err != nil {
		return nil, err
	}
	hh, err := r.lengthAttr(h, res, "height", "0", vertical)
	if err != nil {
		return nil, err
	}
	if w <= 0 || hh <= 0 {
		return nil, nil
	}

	rx, err := r.lengthAttr(h, res, "rx", "0", horizontal)
	if err != nil {
		return nil, err
	}
	ry, err := r.lengthAttr(h, res, "ry", "0", vertical)
	if err != nil {
		return nil, err
	}
	rxSet := r.hasAttr(h, "rx") && rx >= 0
	rySet := r.hasAttr(h, "ry") && ry >= 0
	switch {
	case rxSet && !rySet:
		ry = rx
	case rySet && !rxSet:
		rx = ry
	case !rxSet && !rySet:
		rx, ry = 0, 0
	}
	rx = min(rx, w/2)
	ry = min(ry, hh/2)

	p := &path.Data{}
	if rx <= 0 || ry <= 0 {
		p.MoveTo(vec.Vec2{X: x, Y: y})
		p.LineTo(vec.Vec2{X: x + w, Y: y})
		p.LineTo(vec.Vec2{X: x + w, Y: y + hh})
		p.LineTo(vec.Vec2{X: x, Y: y + hh})
		p.Close()
	} else {
		kx, ky := kappa*rx, kappa*ry
		x1, y1 := x+w, y+hh
		p.MoveTo(vec.Vec2{X: x + rx, Y: y})
		p.LineTo(vec.Vec2{X: x1 - rx, Y: y})
		p.CubeTo(vec.Vec2{X: x1 - rx + kx, Y: y}, vec.Vec2{X: x1, Y: y + ry - ky}, vec.Vec2{X: x1, Y: y + ry})
		p.LineTo(vec.Vec2{X: x1, Y: y1 - ry})
		p.CubeTo(vec.Vec2{X: x1, Y: y1 - ry + ky}, vec.Vec2{X: x1 - rx + kx, Y: y1}, vec.Vec2{X: x1 - rx, Y: y1})
		p.LineTo(vec.Vec2{X: x + rx, Y: y1})
		p.CubeTo(vec.Vec2{X: x + rx - kx, Y: y1}, vec.Vec2{X: x, Y: y1 - ry + ky}, vec.Vec2{X: x, Y: y1 - ry})
		p.LineTo(vec.Vec2{X: x, Y: y + ry})
		p.CubeTo(vec.Vec2{X: x, Y: y + ry - ky}, vec.Vec2{X: x + rx - kx, Y: y}, vec.Vec2{X: x + rx, Y: y})
		p.Close()
	}
	return &geometry{
		path:    p,
		bbox:    viewport.Rect{X: x, Y: y, Width: w, Height: hh},
		hasBBox: true,
	}, nil
}

func ellipseGeometry(cx, cy, rx, ry float64) *geometry {
	p := &path.Data{}
	ellipsePath(p, cx, cy, rx, ry)
	return &geometry{
		path:    p,
		bbox:    viewport.Rect{X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry},
		hasBBox: true,
	}
}

// ellipsePath appends an axis-aligned ellipse, made of four cubic arcs.
func ellipsePath(p *path.Data, cx, cy, rx, ry float64) {
	kx, ky := kappa*rx, kappa*ry
	p.MoveTo(vec.Vec2{X: cx + rx, Y: cy})
	p.CubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry})
	p.CubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy})
	p.CubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry})
	p.CubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy})
	p.Close()
}

func (r *renderer) drawShape(h Handle, st *state) error {
	g, err := r.geometry(h, st)
	if err != nil || g == nil {
		return err
	}

	ok, err := r.begin(h, st, func() (viewport.Rect, bool, error) {
		return g.bbox, g.hasBBox, nil
	})
	defer r.c.PopGraphicsState()
	if err != nil || !ok {
		return err
	}
	if st.style.Visible {
		if err := r.paint(h, st, g); err != nil {
			return err
		}
	}
	return r.drawMarkers(h, st, g)
}

// emit sends a path to the canvas, transforming all points by m.
// Quadratic segments are converted to cubic ones.
func (r *renderer) emit(p *path.Data, m matrix.Matrix) {
	tr := func(v vec.Vec2) vec.Vec2 {
		if m == matrix.Identity {
			return v
		}
		return viewport.Apply(m, v)
	}

	var cur, start vec.Vec2
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[i]
			start = cur
			q := tr(cur)
			r.c.MoveTo(q.X, q.Y)
			i++
		case path.CmdLineTo:
			cur = p.Coords[i]
			q := tr(cur)
			r.c.LineTo(q.X, q.Y)
			i++
		case path.CmdQuadTo:
			c, to := p.Coords[i], p.Coords[i+1]
			c1 := tr(cur.Add(c.Sub(cur).Mul(2.0 / 3)))
			c2 := tr(to.Add(c.Sub(to).Mul(2.0 / 3)))
			q := tr(to)
			r.c.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
			cur = to
			i += 2
		case path.CmdCubeTo:
			c1, c2 := tr(p.Coords[i]), tr(p.Coords[i+1])
			cur = p.Coords[i+2]
			q := tr(cur)
			r.c.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
			i += 3
		case path.CmdClose:
			r.c.ClosePath()
			cur = start
		}
	}
}
