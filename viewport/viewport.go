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

// Package viewport resolves the nested coordinate systems of an SVG
// document.
//
// A [Context] keeps the stack of active viewports.  Lengths are resolved
// against the current viewport or against an object bounding box by a
// [Resolver].  [ViewBoxTransform] maps a viewBox onto a viewport, taking
// preserveAspectRatio into account.
package viewport

import (
	"errors"
	"fmt"
)

var (
	// ErrNoViewport is returned when a viewport is requested before any
	// viewport has been pushed.
	ErrNoViewport = errors.New("no viewport")

	// ErrNoBoundingBox is returned when a bounding box is needed, but the
	// element has no geometry.
	ErrNoBoundingBox = errors.New("no bounding box")
)

// AttributeError reports an attribute value which cannot be parsed.
type AttributeError struct {
	Attr  string
	Value string
	Err   error
}

func (e *AttributeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Attr, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Attr, e.Value)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// Rect is an axis-aligned rectangle in SVG user space, where the y-axis
// points down.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	x0 := min(r.X, s.X)
	y0 := min(r.Y, s.Y)
	x1 := max(r.X+r.Width, s.X+s.Width)
	y1 := max(r.Y+r.Height, s.Y+s.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
