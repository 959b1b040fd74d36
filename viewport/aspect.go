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
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/svg/internal/number"
)

// Alignment is the align part of a preserveAspectRatio attribute.
type Alignment uint8

// These are the possible alignments.  The zero value is the default,
// XMidYMid.
const (
	XMidYMid Alignment = iota
	AlignNone
	XMinYMin
	XMidYMin
	XMaxYMin
	XMinYMid
	XMaxYMid
	XMinYMax
	XMidYMax
	XMaxYMax
)

var alignNames = map[string]Alignment{
	"none":     AlignNone,
	"xMinYMin": XMinYMin,
	"xMidYMin": XMidYMin,
	"xMaxYMin": XMaxYMin,
	"xMinYMid": XMinYMid,
	"xMidYMid": XMidYMid,
	"xMaxYMid": XMaxYMid,
	"xMinYMax": XMinYMax,
	"xMidYMax": XMidYMax,
	"xMaxYMax": XMaxYMax,
}

func (a Alignment) String() string {
	for name, val := range alignNames {
		if val == a {
			return name
		}
	}
	return "invalid"
}

// factors returns the fractions of the leftover space placed before the
// content, in x and y direction.
func (a Alignment) factors() (fx, fy float64) {
	switch a {
	case XMinYMin:
		return 0, 0
	case XMidYMin:
		return 0.5, 0
	case XMaxYMin:
		return 1, 0
	case XMinYMid:
		return 0, 0.5
	case XMaxYMid:
		return 1, 0.5
	case XMinYMax:
		return 0, 1
	case XMidYMax:
		return 0.5, 1
	case XMaxYMax:
		return 1, 1
	case AlignNone:
		return 0, 0
	default:
		return 0.5, 0.5
	}
}

// AspectRatio is a parsed preserveAspectRatio attribute.
// The zero value is the SVG default "xMidYMid meet".
type AspectRatio struct {
	Align Alignment
	Slice bool
}

func (par AspectRatio) String() string {
	if par.Slice {
		return par.Align.String() + " slice"
	}
	return par.Align.String() + " meet"
}

// ParseAspectRatio parses a preserveAspectRatio attribute.
// An empty value gives the default.
func ParseAspectRatio(s string) (AspectRatio, error) {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	var par AspectRatio
	if len(fields) == 0 {
		return par, nil
	}
	align, ok := alignNames[fields[0]]
	if !ok || len(fields) > 2 {
		return AspectRatio{}, &AttributeError{Attr: "preserveAspectRatio", Value: s}
	}
	par.Align = align
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
			// pass
		case "slice":
			par.Slice = true
		default:
			return AspectRatio{}, &AttributeError{Attr: "preserveAspectRatio", Value: s}
		}
	}
	return par, nil
}

// AlignOffset returns the translation which places content of size w×h
// inside vp, relative to the viewport origin.  For "none" the offset is
// zero.
func AlignOffset(par AspectRatio, vp Rect, w, h float64) (tx, ty float64) {
	fx, fy := par.Align.factors()
	return fx * (vp.Width - w), fy * (vp.Height - h)
}

// Scale returns the scale factors which map vb onto vp.
// Unless the alignment is "none", both factors are equal.
func Scale(par AspectRatio, vb, vp Rect) (sx, sy float64) {
	sx = vp.Width / vb.Width
	sy = vp.Height / vb.Height
	if par.Align == AlignNone {
		return sx, sy
	}
	s := min(sx, sy)
	if par.Slice {
		s = max(sx, sy)
	}
	return s, s
}

// ViewBoxTransform returns the transformation which maps the viewBox vb
// onto the viewport vp.
func ViewBoxTransform(vb, vp Rect, par AspectRatio) matrix.Matrix {
	sx, sy := Scale(par, vb, vp)
	tx, ty := AlignOffset(par, vp, vb.Width*sx, vb.Height*sy)
	return matrix.Matrix{
		sx, 0,
		0, sy,
		vp.X + tx - vb.X*sx, vp.Y + ty - vb.Y*sy,
	}
}

// ParseViewBox parses a viewBox attribute.  The second return value is
// false if the width or height is not positive; SVG disables rendering of
// the element in this case.
func ParseViewBox(s string) (Rect, bool, error) {
	xs, err := number.List(s)
	if err != nil || len(xs) != 4 {
		return Rect{}, false, &AttributeError{Attr: "viewBox", Value: s, Err: err}
	}
	vb := Rect{X: xs[0], Y: xs[1], Width: xs[2], Height: xs[3]}
	return vb, !vb.IsEmpty(), nil
}
