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

	"seehuhn.de/go/svg/viewport"
)

var patternAttrs = []string{
	"x", "y", "width", "height",
	"patternUnits", "patternContentUnits", "patternTransform",
	"viewBox", "preserveAspectRatio",
}

// pattern holds the attributes of a pattern element, after following the
// href chain.
type pattern struct {
	h       Handle
	attrs   map[string]string
	content Handle // the element whose children form the tile
}

func (r *renderer) resolvePattern(h Handle) (*pattern, error) {
	p := &pattern{h: h, attrs: make(map[string]string), content: NoHandle}
	seen := make(map[Handle]bool)
	for cur := h; ; {
		if seen[cur] {
			return nil, r.attrError(h, "href", ErrCircularReference)
		}
		seen[cur] = true

		n := &r.doc.nodes[cur]
		for _, name := range patternAttrs {
			v, ok := n.attrs[name]
			if _, have := p.attrs[name]; ok && !have {
				p.attrs[name] = v
			}
		}
		if p.content == NoHandle && len(n.children) > 0 {
			p.content = cur
		}

		next, ok := r.doc.lookupRef(n.attrs["href"])
		if !ok || r.doc.nodes[next].tag != "pattern" {
			break
		}
		cur = next
	}
	return p, nil
}

// fillPattern paints the current clip region with copies of a pattern
// tile.  The element h is the one being painted, bbox its bounding box.
func (r *renderer) fillPattern(h Handle, st *state, server Handle, bbox viewport.Rect, alpha float64) error {
	pat, err := r.resolvePattern(server)
	if err != nil {
		return err
	}
	if pat.content == NoHandle {
		return nil
	}

	units, err := viewport.ParseUnits(pat.attrs["patternUnits"], viewport.ObjectBoundingBox)
	if err != nil {
		return r.attrError(server, "patternUnits", err)
	}
	contentUnits, err := viewport.ParseUnits(pat.attrs["patternContentUnits"], viewport.UserSpaceOnUse)
	if err != nil {
		return r.attrError(server, "patternContentUnits", err)
	}
	pt := matrix.Identity
	if s, ok := pat.attrs["patternTransform"]; ok {
		pt, err = viewport.ParseTransform(s)
		if err != nil {
			return r.attrError(server, "patternTransform", err)
		}
	}

	var res *viewport.Resolver
	if units == viewport.ObjectBoundingBox {
		if bbox.IsEmpty() {
			return nil
		}
		res, err = r.resolver(st, viewport.ObjectBoundingBox, &bbox)
	} else {
		res, err = r.resolver(st, viewport.UserSpaceOnUse, nil)
	}
	if err != nil {
		return r.attrError(server, "", err)
	}
	var tile viewport.Rect
	for _, a := range []struct {
		dst  *float64
		name string
		ax   axis
	}{
		{&tile.X, "x", posX},
		{&tile.Y, "y", posY},
		{&tile.Width, "width", horizontal},
		{&tile.Height, "height", vertical},
	} {
		*a.dst, err = r.mapLength(server, pat.attrs, res, a.name, "0", a.ax)
		if err != nil {
			return err
		}
	}
	if tile.IsEmpty() {
		return nil
	}

	content := matrix.Identity
	inner := viewport.Rect{Width: tile.Width, Height: tile.Height}
	if s := strings.TrimSpace(pat.attrs["viewBox"]); s != "" {
		vb, ok, err := viewport.ParseViewBox(s)
		if err != nil {
			return r.attrError(server, "viewBox", err)
		}
		if !ok {
			return nil
		}
		par, err := viewport.ParseAspectRatio(pat.attrs["preserveAspectRatio"])
		if err != nil {
			return r.attrError(server, "preserveAspectRatio", err)
		}
		content = viewport.ViewBoxTransform(vb, inner, par)
		inner = vb
	} else if contentUnits == viewport.ObjectBoundingBox {
		if bbox.IsEmpty() {
			return nil
		}
		content = scale(bbox.Width, bbox.Height)
	}

	inv, ok := viewport.Invert(pt)
	if !ok {
		return nil
	}
	region := viewport.TransformRect(inv, bbox)
	i0 := math.Floor((region.X - tile.X) / tile.Width)
	i1 := math.Ceil((region.X + region.Width - tile.X) / tile.Width)
	j0 := math.Floor((region.Y - tile.Y) / tile.Height)
	j1 := math.Ceil((region.Y + region.Height - tile.Y) / tile.Height)
	if (i1-i0)*(j1-j0) > float64(r.opt.MaxTiles) {
		r.warn(h, "too many pattern tiles", nil)
		return nil
	}

	if err := r.enter(h, server, "fill"); err != nil {
		return err
	}
	defer r.leave(server)

	cst := r.styleOf(pat.content)
	cst = &state{style: cst.style, alpha: cst.alpha * alpha}

	if pt != matrix.Identity {
		r.c.Transform(pt)
	}
	r.vp.Push(inner)
	defer r.vp.Pop()
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			r.c.PushGraphicsState()
			r.c.Transform(translate(tile.X+i*tile.Width, tile.Y+j*tile.Height))
			r.clipRect(viewport.Rect{Width: tile.Width, Height: tile.Height})
			if content != matrix.Identity {
				r.c.Transform(content)
			}
			err := r.drawChildren(pat.content, cst)
			r.c.PopGraphicsState()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
