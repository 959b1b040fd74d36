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

import "seehuhn.de/go/geom/matrix"

// Context is the per-document drawing state shared by all elements of one
// rendering pass.
//
// The viewport stack is pushed and popped in strict LIFO order while the
// element tree is walked.  A Context must not be used by more than one
// goroutine; use [Context.Clone] to give a parallel branch its own copy.
type Context struct {
	viewports []Rect

	// RootFontSize is the font size used for "rem" units, in user units.
	RootFontSize float64
}

// DefaultFontSize is the font size assumed where none is specified.
const DefaultFontSize = 16

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{RootFontSize: DefaultFontSize}
}

// Push makes vp the current viewport.
func (c *Context) Push(vp Rect) {
	c.viewports = append(c.viewports, vp)
}

// Pop removes the current viewport.
func (c *Context) Pop() error {
	if len(c.viewports) == 0 {
		return ErrNoViewport
	}
	c.viewports = c.viewports[:len(c.viewports)-1]
	return nil
}

// Current returns the innermost viewport.
func (c *Context) Current() (Rect, error) {
	if len(c.viewports) == 0 {
		return Rect{}, ErrNoViewport
	}
	return c.viewports[len(c.viewports)-1], nil
}

// Root returns the outermost viewport.
func (c *Context) Root() (Rect, error) {
	if len(c.viewports) == 0 {
		return Rect{}, ErrNoViewport
	}
	return c.viewports[0], nil
}

// Depth returns the number of viewports on the stack.
func (c *Context) Depth() int {
	return len(c.viewports)
}

// Clone returns an independent copy of the context.
func (c *Context) Clone() *Context {
	res := &Context{RootFontSize: c.RootFontSize}
	res.viewports = append([]Rect(nil), c.viewports...)
	return res
}

// Resolver returns a length resolver for the current viewport.
// For [UserSpaceOnUse], bbox may be nil.
func (c *Context) Resolver(units Units, bbox *Rect, fontSize float64) (*Resolver, error) {
	vp, err := c.Current()
	if err != nil {
		return nil, err
	}
	if units == ObjectBoundingBox && bbox == nil {
		return nil, ErrNoBoundingBox
	}
	return &Resolver{
		Units:        units,
		Viewport:     vp,
		BBox:         bbox,
		FontSize:     fontSize,
		RootFontSize: c.RootFontSize,
	}, nil
}

// RootTransform converts the top-down SVG coordinates of the outermost
// viewport into the bottom-up coordinates of a PDF page.  It is applied
// exactly once, at the root of the document.
func RootTransform(vp Rect) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, vp.X, vp.Y + vp.Height}
}
