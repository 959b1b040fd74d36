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
	"strings"

	"seehuhn.de/go/svg/viewport"
)

// drawSVG draws an <svg> element.  If width or height is non-nil, it
// replaces the corresponding attribute; this is used when the element is
// referenced by <use>.
func (r *renderer) drawSVG(h Handle, st *state, width, height *viewport.Length) error {
	vp, err := r.svgViewport(h, st, width, height)
	if err != nil {
		return err
	}
	if vp.IsEmpty() {
		return nil
	}

	ok, err := r.begin(h, st, func() (viewport.Rect, bool, error) {
		return vp, true, nil
	})
	defer r.c.PopGraphicsState()
	if err != nil || !ok {
		return err
	}
	isRoot := r.doc.nodes[h].parent == NoHandle
	return r.drawViewport(h, st, vp, !isRoot)
}

// svgViewport determines the viewport rectangle of an <svg> element, in
// the user space of its parent.  The x and y attributes of the outermost
// element are ignored.
func (r *renderer) svgViewport(h Handle, st *state, width, height *viewport.Length) (viewport.Rect, error) {
	res, err := r.resolver(st, viewport.UserSpaceOnUse, nil)
	if err != nil {
		return viewport.Rect{}, r.attrError(h, "", err)
	}

	var vp viewport.Rect
	if r.doc.nodes[h].parent != NoHandle {
		vp.X, err = r.lengthAttr(h, res, "x", "0", posX)
		if err != nil {
			return vp, err
		}
		vp.Y, err = r.lengthAttr(h, res, "y", "0", posY)
		if err != nil {
			return vp, err
		}
	}
	if width != nil {
		vp.Width, err = res.Width(*width)
	} else {
		vp.Width, err = r.lengthAttr(h, res, "width", "100%", horizontal)
	}
	if err != nil {
		return vp, r.attrError(h, "width", err)
	}
	if height != nil {
		vp.Height, err = res.Height(*height)
	} else {
		vp.Height, err = r.lengthAttr(h, res, "height", "100%", vertical)
	}
	if err != nil {
		return vp, r.attrError(h, "height", err)
	}
	return vp, nil
}

// drawViewport draws the children of h (an <svg>, <symbol> or <marker>
// element) into the viewport vp, taking viewBox and preserveAspectRatio
// of h into account.
func (r *renderer) drawViewport(h Handle, st *state, vp viewport.Rect, clip bool) error {
	if vp.IsEmpty() {
		return nil
	}
	vb, hasVB, err := r.viewBoxAttr(h)
	if err != nil {
		return err
	}
	if hasVB && vb.IsEmpty() {
		return nil
	}
	par, err := viewport.ParseAspectRatio(r.doc.nodes[h].attrs["preserveAspectRatio"])
	if err != nil {
		return r.attrError(h, "preserveAspectRatio", err)
	}

	r.c.PushGraphicsState()
	defer r.c.PopGraphicsState()

	if clip && st.style.Overflow != "visible" {
		r.clipRect(vp)
	}
	inner := viewport.Rect{Width: vp.Width, Height: vp.Height}
	if hasVB {
		r.c.Transform(viewport.ViewBoxTransform(vb, vp, par))
		inner = vb
	} else if vp.X != 0 || vp.Y != 0 {
		r.c.Transform(translate(vp.X, vp.Y))
	}

	r.vp.Push(inner)
	defer r.vp.Pop()
	return r.drawChildren(h, st)
}

// viewBoxAttr returns the viewBox of h.  The second return value is false
// if h has no viewBox attribute.
func (r *renderer) viewBoxAttr(h Handle) (viewport.Rect, bool, error) {
	s, ok := r.doc.nodes[h].attrs["viewBox"]
	if !ok || strings.TrimSpace(s) == "" {
		return viewport.Rect{}, false, nil
	}
	vb, _, err := viewport.ParseViewBox(s)
	if err != nil {
		return vb, false, r.attrError(h, "viewBox", err)
	}
	return vb, true, nil
}

// clipRect intersects the clip region with a rectangle.
func (r *renderer) clipRect(b viewport.Rect) {
	r.rectPath(b)
	r.c.ClipNonZero()
	r.c.EndPath()
}

// drawUse draws the element referenced by a <use> element.
func (r *renderer) drawUse(h Handle, st *state) error {
	target, ok := r.useTarget(h)
	if !ok {
		return nil
	}
	for p := h; p != NoHandle; p = r.doc.nodes[p].parent {
		if p == target {
			return r.attrError(h, "href", ErrCircularReference)
		}
	}

	res, err := r.resolver(st, viewport.UserSpaceOnUse, nil)
	if err != nil {
		return r.attrError(h, "", err)
	}
	x, err := r.lengthAttr(h, res, "x", "0", posX)
	if err != nil {
		return err
	}
	y, err := r.lengthAttr(h, res, "y", "0", posY)
	if err != nil {
		return err
	}

	ok, err = r.begin(h, st, func() (viewport.Rect, bool, error) {
		return r.localBBox(h, st)
	})
	defer r.c.PopGraphicsState()
	if err != nil || !ok {
		return err
	}
	if x != 0 || y != 0 {
		r.c.Transform(translate(x, y))
	}

	if err := r.enter(h, target, "href"); err != nil {
		return err
	}
	defer r.leave(target)

	width, err := r.optionalLength(h, "width")
	if err != nil {
		return err
	}
	height, err := r.optionalLength(h, "height")
	if err != nil {
		return err
	}

	switch r.doc.nodes[target].tag {
	case "symbol":
		tst := r.derive(target, st, true)
		if !tst.style.Display {
			return nil
		}
		vp, err := r.symbolViewport(target, tst, width, height)
		if err != nil {
			return err
		}
		ok, err := r.begin(target, tst, func() (viewport.Rect, bool, error) {
			return vp, true, nil
		})
		defer r.c.PopGraphicsState()
		if err != nil || !ok {
			return err
		}
		return r.drawViewport(target, tst, vp, true)
	case "svg":
		tst := r.derive(target, st, true)
		if !tst.style.Display {
			return nil
		}
		return r.drawSVG(target, tst, width, height)
	default:
		return r.drawElement(target, st)
	}
}

// useTarget finds the element referenced by a <use> element.
func (r *renderer) useTarget(h Handle) (Handle, bool) {
	href := r.doc.nodes[h].attrs["href"]
	target, ok := r.doc.lookupRef(href)
	if !ok {
		r.warn(h, "reference not found: "+href, nil)
	}
	return target, ok
}

// symbolViewport gives the viewport of a <symbol> instantiated by <use>.
// The size defaults to 100%.
func (r *renderer) symbolViewport(h Handle, st *state, width, height *viewport.Length) (viewport.Rect, error) {
	res, err := r.resolver(st, viewport.UserSpaceOnUse, nil)
	if err != nil {
		return viewport.Rect{}, r.attrError(h, "", err)
	}
	var vp viewport.Rect
	vp.X, err = r.lengthAttr(h, res, "x", "0", posX)
	if err != nil {
		return vp, err
	}
	vp.Y, err = r.lengthAttr(h, res, "y", "0", posY)
	if err != nil {
		return vp, err
	}
	w := viewport.Percent(100)
	if width != nil {
		w = *width
	}
	hh := viewport.Percent(100)
	if height != nil {
		hh = *height
	}
	vp.Width, err = res.Width(w)
	if err != nil {
		return vp, r.attrError(h, "width", err)
	}
	vp.Height, err = res.Height(hh)
	if err != nil {
		return vp, r.attrError(h, "height", err)
	}
	return vp, nil
}
