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

// axis selects how a length is resolved.
type axis int

const (
	posX axis = iota
	posY
	horizontal
	vertical
	other
)

func (r *renderer) resolver(st *state, units viewport.Units, bbox *viewport.Rect) (*viewport.Resolver, error) {
	return r.vp.Resolver(units, bbox, st.style.FontSize)
}

func resolve(res *viewport.Resolver, l viewport.Length, ax axis) (float64, error) {
	switch ax {
	case posX:
		return res.X(l)
	case posY:
		return res.Y(l)
	case horizontal:
		return res.Width(l)
	case vertical:
		return res.Height(l)
	default:
		return res.Other(l)
	}
}

// lengthAttr resolves a length attribute of h.  The default def is used
// if the attribute is missing, empty, or "auto".
func (r *renderer) lengthAttr(h Handle, res *viewport.Resolver, name, def string, ax axis) (float64, error) {
	s := strings.TrimSpace(r.doc.nodes[h].attrs[name])
	if s == "" || s == "auto" {
		s = def
	}
	l, err := viewport.ParseLength(s)
	if err != nil {
		return 0, r.attrError(h, name, err)
	}
	x, err := resolve(res, l, ax)
	if err != nil {
		return 0, r.attrError(h, name, err)
	}
	return x, nil
}

// optionalLength parses a length attribute which may be absent.
func (r *renderer) optionalLength(h Handle, name string) (*viewport.Length, error) {
	s := strings.TrimSpace(r.doc.nodes[h].attrs[name])
	if s == "" || s == "auto" {
		return nil, nil
	}
	l, err := viewport.ParseLength(s)
	if err != nil {
		return nil, r.attrError(h, name, err)
	}
	return &l, nil
}

// hasAttr reports whether h has a non-empty attribute name.
func (r *renderer) hasAttr(h Handle, name string) bool {
	s, ok := r.doc.nodes[h].attrs[name]
	return ok && strings.TrimSpace(s) != "" && strings.TrimSpace(s) != "auto"
}
