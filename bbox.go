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
	"seehuhn.de/go/svg/viewport"
)

// localBBox computes the bounding box of h in its own user space, that is
// without its transform attribute.  Strokes and markers are not included.
// The second return value is false if the element has no geometry.
func (r *renderer) localBBox(h Handle, st *state) (viewport.Rect, bool, error) {
	switch r.doc.nodes[h].tag {
	case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
		g, err := r.geometry(h, st)
		if err != nil || g == nil {
			return viewport.Rect{}, false, err
		}
		return g.bbox, g.hasBBox, nil

	case "g", "a", "switch", "symbol":
		return r.childrenBBox(h, st)

	case "svg":
		vp, err := r.svgViewport(h, st, nil, nil)
		if err != nil {
			return vp, false, err
		}
		return vp, !vp.IsEmpty(), nil

	case "use":
		target, ok := r.doc.lookupRef(r.doc.nodes[h].attrs["href"])
		if !ok {
			return viewport.Rect{}, false, nil
		}
		if err := r.enter(h, target, "href"); err != nil {
			return viewport.Rect{}, false, err
		}
		defer r.leave(target)

		res, err := r.resolver(st, viewport.UserSpaceOnUse, nil)
		if err != nil {
			return viewport.Rect{}, false, r.attrError(h, "", err)
		}
		x, err := r.lengthAttr(h, res, "x", "0", posX)
		if err != nil {
			return viewport.Rect{}, false, err
		}
		y, err := r.lengthAttr(h, res, "y", "0", posY)
		if err != nil {
			return viewport.Rect{}, false, err
		}
		tst := r.derive(target, st, false)
		if !tst.style.Display {
			return viewport.Rect{}, false, nil
		}
		b, ok, err := r.localBBox(target, tst)
		if err != nil || !ok {
			return b, false, err
		}
		tt, err := r.transformAttr(target, "transform")
		if err != nil {
			return b, false, err
		}
		return viewport.TransformRect(tt.Mul(translate(x, y)), b), true, nil
	}
	return viewport.Rect{}, false, nil
}

// childrenBBox computes the union of the bounding boxes of the children
// of h, in the user space of h.
func (r *renderer) childrenBBox(h Handle, st *state) (viewport.Rect, bool, error) {
	var res viewport.Rect
	have := false
	for _, child := range r.doc.nodes[h].children {
		cst := r.derive(child, st, false)
		if !cst.style.Display {
			continue
		}
		b, ok, err := r.localBBox(child, cst)
		if err != nil {
			return res, false, err
		}
		if !ok {
			continue
		}
		m, err := r.transformAttr(child, "transform")
		if err != nil {
			return res, false, err
		}
		b = viewport.TransformRect(m, b)
		if have {
			res = res.Union(b)
		} else {
			res = b
			have = true
		}
	}
	return res, have, nil
}
