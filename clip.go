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

// applyClipPath intersects the clip region with the clip path referenced
// by the clip-path property of h.  The result is false if nothing of the
// element remains visible.
func (r *renderer) applyClipPath(h Handle, st *state, bbox bboxFunc) (bool, error) {
	cp, ok := r.doc.Lookup(st.style.ClipPath)
	if !ok || r.doc.nodes[cp].tag != "clipPath" {
		r.warn(h, "clip path not found: "+st.style.ClipPath, nil)
		return true, nil
	}
	if err := r.enter(h, cp, "clip-path"); err != nil {
		return false, err
	}
	defer r.leave(cp)

	cst := r.styleOf(cp)
	if cst.style.ClipPath != "" {
		ok, err := r.applyClipPath(cp, cst, bbox)
		if err != nil || !ok {
			return false, err
		}
	}

	units, err := viewport.ParseUnits(r.doc.nodes[cp].attrs["clipPathUnits"], viewport.UserSpaceOnUse)
	if err != nil {
		return false, r.attrError(cp, "clipPathUnits", err)
	}
	m, err := r.transformAttr(cp, "transform")
	if err != nil {
		return false, err
	}
	if units == viewport.ObjectBoundingBox {
		b, ok, err := bbox()
		if err != nil {
			return false, err
		}
		if !ok || b.Width <= 0 || b.Height <= 0 {
			return false, nil
		}
		m = bboxMatrix(b).Mul(m)
	}

	n, evenOdd, err := r.emitClipChildren(cp, cst, m)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if evenOdd {
		r.c.ClipEvenOdd()
	} else {
		r.c.ClipNonZero()
	}
	r.c.EndPath()
	return true, nil
}

// emitClipChildren sends the outlines of all children of a clip path to
// the canvas, as one combined path.  The result is the number of outlines
// emitted and whether the even-odd rule should be used; this is only the
// case if all children use it.
func (r *renderer) emitClipChildren(cp Handle, cst *state, m matrix.Matrix) (int, bool, error) {
	count := 0
	evenOdd := true
	for _, child := range r.doc.nodes[cp].children {
		chst := r.derive(child, cst, true)
		if !chst.style.Display || !chst.style.Visible {
			continue
		}

		ct, err := r.transformAttr(child, "transform")
		if err != nil {
			return 0, false, err
		}
		shape := child
		tag := r.doc.nodes[child].tag
		if tag == "use" {
			target, ok := r.useTarget(child)
			if !ok {
				continue
			}
			res, err := r.resolver(chst, viewport.UserSpaceOnUse, nil)
			if err != nil {
				return 0, false, r.attrError(child, "", err)
			}
			x, err := r.lengthAttr(child, res, "x", "0", posX)
			if err != nil {
				return 0, false, err
			}
			y, err := r.lengthAttr(child, res, "y", "0", posY)
			if err != nil {
				return 0, false, err
			}
			tt, err := r.transformAttr(target, "transform")
			if err != nil {
				return 0, false, err
			}
			ct = tt.Mul(translate(x, y)).Mul(ct)
			shape = target
			chst = r.derive(target, chst, true)
			if !chst.style.Display || !chst.style.Visible {
				continue
			}
			tag = r.doc.nodes[target].tag
		}
		switch tag {
		case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
		case "text":
			if err := r.unsupported(shape); err != nil {
				return 0, false, err
			}
			continue
		default:
			continue
		}

		g, err := r.geometry(shape, chst)
		if err != nil {
			return 0, false, err
		}
		if g == nil {
			continue
		}
		r.emit(g.path, ct.Mul(m))
		count++
		if chst.style.ClipRule != style.EvenOdd {
			evenOdd = false
		}
	}
	return count, evenOdd, nil
}
