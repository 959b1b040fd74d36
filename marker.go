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
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svg/internal/number"
	"seehuhn.de/go/svg/pathdata"
	"seehuhn.de/go/svg/viewport"
)

// drawMarkers draws the markers at the vertices of a path, line,
// polyline or polygon.
func (r *renderer) drawMarkers(h Handle, st *state, g *geometry) error {
	cs := st.style
	if g.shapes == nil || cs.MarkerStart == "" && cs.MarkerMid == "" && cs.MarkerEnd == "" {
		return nil
	}
	verts := pathdata.Vertices(g.shapes)
	if len(verts) == 0 {
		return nil
	}

	res, err := r.resolver(st, viewport.UserSpaceOnUse, nil)
	if err != nil {
		return r.attrError(h, "", err)
	}
	sw, err := res.Other(cs.StrokeWidth)
	if err != nil {
		return r.attrError(h, "stroke-width", err)
	}

	last := len(verts) - 1
	for i, v := range verts {
		var ids []string
		var starts []bool
		if i == 0 && cs.MarkerStart != "" {
			ids = append(ids, cs.MarkerStart)
			starts = append(starts, true)
		}
		if i > 0 && i < last && cs.MarkerMid != "" {
			ids = append(ids, cs.MarkerMid)
			starts = append(starts, false)
		}
		if i == last && cs.MarkerEnd != "" {
			ids = append(ids, cs.MarkerEnd)
			starts = append(starts, false)
		}
		for k, id := range ids {
			mk, ok := r.doc.Lookup(id)
			if !ok || r.doc.nodes[mk].tag != "marker" {
				r.warn(h, "marker not found: "+id, nil)
				continue
			}
			if err := r.drawMarker(h, mk, v, starts[k], sw); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawMarker draws one marker instance at vertex v.
func (r *renderer) drawMarker(h, mk Handle, v pathdata.Vertex, start bool, strokeWidth float64) error {
	if err := r.enter(h, mk, "marker"); err != nil {
		return err
	}
	defer r.leave(mk)

	mst := r.styleOf(mk)
	res, err := r.resolver(mst, viewport.UserSpaceOnUse, nil)
	if err != nil {
		return r.attrError(mk, "", err)
	}
	mw, err := r.lengthAttr(mk, res, "markerWidth", "3", horizontal)
	if err != nil {
		return err
	}
	mh, err := r.lengthAttr(mk, res, "markerHeight", "3", vertical)
	if err != nil {
		return err
	}
	if mw <= 0 || mh <= 0 {
		return nil
	}
	refX, err := r.lengthAttr(mk, res, "refX", "0", posX)
	if err != nil {
		return err
	}
	refY, err := r.lengthAttr(mk, res, "refY", "0", posY)
	if err != nil {
		return err
	}

	attrs := r.doc.nodes[mk].attrs
	s := 1.0
	switch strings.TrimSpace(attrs["markerUnits"]) {
	case "", "strokeWidth":
		s = strokeWidth
	case "userSpaceOnUse":
		// pass
	default:
		return r.attrError(mk, "markerUnits",
			&viewport.AttributeError{Attr: "markerUnits", Value: attrs["markerUnits"]})
	}

	var angle float64
	switch orient := strings.TrimSpace(attrs["orient"]); orient {
	case "", "0":
		// pass
	case "auto":
		angle = v.Angle()
	case "auto-start-reverse":
		angle = v.Angle()
		if start {
			angle += 180
		}
	default:
		angle, err = parseAngle(orient)
		if err != nil {
			return r.attrError(mk, "orient", err)
		}
	}

	vp := viewport.Rect{Width: mw, Height: mh}
	vb, hasVB, err := r.viewBoxAttr(mk)
	if err != nil {
		return err
	}
	if hasVB && vb.IsEmpty() {
		return nil
	}
	contentM := matrix.Identity
	inner := vp
	if hasVB {
		par, err := viewport.ParseAspectRatio(attrs["preserveAspectRatio"])
		if err != nil {
			return r.attrError(mk, "preserveAspectRatio", err)
		}
		contentM = viewport.ViewBoxTransform(vb, vp, par)
		inner = vb
	}
	ref := viewport.Apply(contentM, vec.Vec2{X: refX, Y: refY})

	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rot := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
	place := translate(-ref.X, -ref.Y).Mul(scale(s, s)).Mul(rot).Mul(translate(v.Point.X, v.Point.Y))

	r.c.PushGraphicsState()
	defer r.c.PopGraphicsState()
	r.c.Transform(place)
	if mst.style.Overflow != "visible" {
		r.clipRect(vp)
	}
	if contentM != matrix.Identity {
		r.c.Transform(contentM)
	}
	r.vp.Push(inner)
	defer r.vp.Pop()
	return r.drawChildren(mk, mst)
}

// parseAngle parses an angle with an optional unit and returns it in
// degrees.
func parseAngle(s string) (float64, error) {
	factor := 1.0
	for _, u := range []struct {
		suffix string
		factor float64
	}{
		{"deg", 1},
		{"grad", 0.9},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	} {
		if t, ok := strings.CutSuffix(s, u.suffix); ok {
			s, factor = t, u.factor
			break
		}
	}
	x, err := number.Parse(s)
	if err != nil {
		return 0, err
	}
	return x * factor, nil
}
