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

	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

// resolvedPaint is a fill or stroke paint, ready for use.
type resolvedPaint struct {
	none   bool
	color  style.Color
	alpha  float64
	server Handle // a gradient or pattern element, or NoHandle

	// shading is set for gradient paint servers
	shading *Gradient
}

var noPaint = resolvedPaint{none: true, server: NoHandle}

// resolvePaint looks up paint servers and applies the opacity values.
func (r *renderer) resolvePaint(h Handle, st *state, p style.Paint, opacity float64) resolvedPaint {
	alpha := opacity * st.alpha
	switch p.Kind {
	case style.PaintColor:
		return resolvedPaint{color: p.Color, alpha: alpha * p.Alpha, server: NoHandle}
	case style.PaintCurrentColor:
		return resolvedPaint{color: st.style.Color, alpha: alpha, server: NoHandle}
	case style.PaintURL:
		if server, ok := r.doc.Lookup(p.URL); ok && isPaintServer(r.doc.nodes[server].tag) {
			return resolvedPaint{alpha: alpha, server: server}
		}
		if p.Fallback != nil {
			return r.resolvePaint(h, st, *p.Fallback, opacity)
		}
		r.warn(h, "paint server not found: "+p.URL, nil)
	}
	return noPaint
}

func isPaintServer(tag string) bool {
	return tag == "linearGradient" || tag == "radialGradient" || tag == "pattern"
}

// paint fills and strokes the outline of a shape.
func (r *renderer) paint(h Handle, st *state, g *geometry) error {
	cs := st.style
	fill := r.resolvePaint(h, st, cs.Fill, cs.FillOpacity)
	stroke := r.resolvePaint(h, st, cs.Stroke, cs.StrokeOpacity)
	width := 0.0
	if !stroke.none {
		var err error
		width, err = r.setStrokeStyle(h, st)
		if err != nil {
			return err
		}
		if width <= 0 {
			stroke = noPaint
		}
	}

	var err error
	fill, err = r.gradientPaint(fill, st, g, 0)
	if err != nil {
		return err
	}
	stroke, err = r.gradientPaint(stroke, st, g, width/2)
	if err != nil {
		return err
	}

	if stroke.shading != nil && !r.c.SetStrokeGradient(stroke.shading) {
		// Strokes cannot be used as clip paths, so the gradient is
		// replaced by a representative solid colour.
		stroke.color, stroke.alpha = stroke.shading.ColorAt(0.5)
		stroke.shading = nil
	}
	if !stroke.none && stroke.server != NoHandle && r.doc.nodes[stroke.server].tag == "pattern" {
		r.warn(h, "pattern strokes are not supported", nil)
		stroke = noPaint
	}
	evenOdd := cs.FillRule == style.EvenOdd

	direct := fill.shading != nil && r.c.SetFillGradient(fill.shading)
	if !direct && fill.server != NoHandle {
		r.c.PushGraphicsState()
		r.emit(g.path, matrix.Identity)
		if evenOdd {
			r.c.ClipEvenOdd()
		} else {
			r.c.ClipNonZero()
		}
		r.c.EndPath()
		err := r.fillServer(h, st, fill, g.bbox, g.hasBBox)
		r.c.PopGraphicsState()
		if err != nil {
			return err
		}
		fill = noPaint
	}

	if fill.none && stroke.none {
		return nil
	}
	if !fill.none && fill.shading == nil {
		r.c.SetFillColor(fill.color)
		if fill.alpha < 1 {
			r.c.SetFillAlpha(fill.alpha)
		}
	}
	if !stroke.none && stroke.shading == nil {
		r.c.SetStrokeColor(stroke.color)
		if stroke.alpha < 1 {
			r.c.SetStrokeAlpha(stroke.alpha)
		}
	}

	r.emit(g.path, matrix.Identity)
	switch {
	case stroke.none && evenOdd:
		r.c.FillEvenOdd()
	case stroke.none:
		r.c.Fill()
	case fill.none:
		r.c.Stroke()
	case evenOdd:
		r.c.FillAndStrokeEvenOdd()
	default:
		r.c.FillAndStroke()
	}
	return nil
}

// gradientPaint resolves the geometry of a gradient paint server.
// Gradients which reduce to a single colour are replaced by that colour.
// The margin enlarges the painted area beyond the bounding box of the
// shape, for strokes.
func (r *renderer) gradientPaint(p resolvedPaint, st *state, g *geometry, margin float64) (resolvedPaint, error) {
	if p.none || p.server == NoHandle || !isGradient(r.doc.nodes[p.server].tag) {
		return p, nil
	}
	if !g.hasBBox {
		return noPaint, nil
	}
	grad, err := r.resolveGradient(p.server)
	if err != nil {
		return noPaint, err
	}
	sh, err := r.shading(grad, st, g.bbox, margin, p.alpha)
	if err != nil || sh == nil {
		return noPaint, err
	}
	if len(sh.Stops) == 1 {
		c, alpha := sh.ColorAt(0)
		return resolvedPaint{color: c, alpha: alpha, server: NoHandle}, nil
	}
	p.shading = sh
	return p, nil
}

// setStrokeStyle sets the line width, cap, join and dash pattern, and
// returns the line width.  Nothing is set if the width is zero.
func (r *renderer) setStrokeStyle(h Handle, st *state) (float64, error) {
	cs := st.style
	res, err := r.resolver(st, viewport.UserSpaceOnUse, nil)
	if err != nil {
		return 0, r.attrError(h, "", err)
	}
	w, err := res.Other(cs.StrokeWidth)
	if err != nil {
		return 0, r.attrError(h, "stroke-width", err)
	}
	if w <= 0 {
		return 0, nil
	}
	r.c.SetLineWidth(w)
	r.c.SetLineCap(cs.LineCap)
	r.c.SetLineJoin(cs.LineJoin)
	r.c.SetMiterLimit(cs.MiterLimit)

	if cs.DashArray == nil {
		return w, nil
	}
	dash := make([]float64, 0, 2*len(cs.DashArray))
	sum := 0.0
	for _, l := range cs.DashArray {
		x, err := res.Other(l)
		if err != nil {
			return 0, r.attrError(h, "stroke-dasharray", err)
		}
		if x < 0 {
			return w, nil
		}
		dash = append(dash, x)
		sum += x
	}
	if sum <= 0 {
		return w, nil
	}
	if len(dash)%2 == 1 {
		dash = append(dash, dash...)
	}
	phase, err := res.Other(cs.DashOffset)
	if err != nil {
		return 0, r.attrError(h, "stroke-dashoffset", err)
	}
	r.c.SetLineDash(dash, phase)
	return w, nil
}

// fillServer paints the current clip region with a gradient or pattern.
// The bounding box of the painted shape is used for objectBoundingBox
// units and to limit the painted area.
func (r *renderer) fillServer(h Handle, st *state, p resolvedPaint, bbox viewport.Rect, hasBBox bool) error {
	if !hasBBox {
		return nil
	}
	if p.shading != nil {
		r.fillGradient(p.shading, bbox)
		return nil
	}
	if r.doc.nodes[p.server].tag == "pattern" {
		return r.fillPattern(h, st, p.server, bbox, p.alpha)
	}
	return nil
}
