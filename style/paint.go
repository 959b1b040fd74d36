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

package style

import (
	"strings"
)

// PaintKind distinguishes the forms of a fill or stroke value.
type PaintKind uint8

// These are the paint kinds.
const (
	PaintNone PaintKind = iota
	PaintColor
	PaintCurrentColor
	PaintURL
)

// Paint is the value of the fill or stroke property.
type Paint struct {
	Kind  PaintKind
	Color Color
	Alpha float64 // alpha of an explicit color

	// URL is the fragment identifier of the referenced paint server,
	// without the leading "#".
	URL string

	// Fallback is used if the paint server cannot be found.  It is nil
	// if no fallback was given.
	Fallback *Paint
}

// NoPaint is the paint value "none".
var NoPaint = Paint{Kind: PaintNone}

// SolidPaint returns an opaque color paint.
func SolidPaint(c Color) Paint {
	return Paint{Kind: PaintColor, Color: c, Alpha: 1}
}

// ParsePaint parses a fill or stroke value.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "none":
		return NoPaint, nil
	case "currentColor", "currentcolor":
		return Paint{Kind: PaintCurrentColor, Alpha: 1}, nil
	}
	if strings.HasPrefix(s, "url(") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return Paint{}, colorError(s)
		}
		id, ok := ParseURL(s[:end+1])
		if !ok {
			return Paint{}, colorError(s)
		}
		p := Paint{Kind: PaintURL, URL: id}
		if rest := strings.TrimSpace(s[end+1:]); rest != "" {
			fb, err := ParsePaint(rest)
			if err != nil {
				return Paint{}, err
			}
			if fb.Kind == PaintURL {
				return Paint{}, colorError(s)
			}
			p.Fallback = &fb
		}
		return p, nil
	}
	c, alpha, err := ParseColor(s)
	if err != nil {
		return Paint{}, err
	}
	return Paint{Kind: PaintColor, Color: c, Alpha: alpha}, nil
}

// ParseURL extracts the fragment identifier from a local reference of the
// form "url(#id)", optionally with quotes.
func ParseURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	inner, ok := strings.CutPrefix(s, "url(")
	if !ok {
		return "", false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return "", false
	}
	inner = strings.Trim(strings.TrimSpace(inner), `"'`)
	id, ok := strings.CutPrefix(inner, "#")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
