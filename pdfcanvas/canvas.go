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

// Package pdfcanvas draws SVG documents into PDF content streams.
package pdfcanvas

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

// PointsPerPixel converts CSS pixels (1/96 inch) into PDF points
// (1/72 inch).
const PointsPerPixel = 0.75

var _ svg.Canvas = (*Canvas)(nil)

// Canvas forwards drawing operations to a PDF content stream builder.
// Canvas coordinates are measured in CSS pixels.
type Canvas struct {
	b     *builder.Builder
	frame viewport.Rect

	alpha alphaState
	stack []alphaState
}

type alphaState struct {
	fill, stroke float64
}

// New returns a canvas covering the rectangle from (0, 0) to (width,
// height) in pixels, where (0, 0) is the origin of the current PDF user
// space.  New emits a transformation which converts pixels to points.
func New(b *builder.Builder, width, height float64) *Canvas {
	b.Transform(matrix.Scale(PointsPerPixel, PointsPerPixel))
	return &Canvas{
		b:     b,
		frame: viewport.Rect{Width: width, Height: height},
		alpha: alphaState{fill: 1, stroke: 1},
	}
}

// BBox implements [svg.Canvas].
func (c *Canvas) BBox() (viewport.Rect, bool) {
	return c.frame, !c.frame.IsEmpty()
}

func (c *Canvas) PushGraphicsState() {
	c.stack = append(c.stack, c.alpha)
	c.b.PushGraphicsState()
}

func (c *Canvas) PopGraphicsState() {
	if n := len(c.stack); n > 0 {
		c.alpha = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.b.PopGraphicsState()
}

func (c *Canvas) Transform(m matrix.Matrix) { c.b.Transform(m) }

func (c *Canvas) MoveTo(x, y float64) { c.b.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.b.LineTo(x, y) }
func (c *Canvas) ClosePath()          { c.b.ClosePath() }

func (c *Canvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.b.CurveTo(x1, y1, x2, y2, x3, y3)
}

func (c *Canvas) Fill()                 { c.b.Fill() }
func (c *Canvas) FillEvenOdd()          { c.b.FillEvenOdd() }
func (c *Canvas) Stroke()               { c.b.Stroke() }
func (c *Canvas) FillAndStroke()        { c.b.FillAndStroke() }
func (c *Canvas) FillAndStrokeEvenOdd() { c.b.FillAndStrokeEvenOdd() }
func (c *Canvas) EndPath()              { c.b.EndPath() }
func (c *Canvas) ClipNonZero()          { c.b.ClipNonZero() }
func (c *Canvas) ClipEvenOdd()          { c.b.ClipEvenOdd() }

func (c *Canvas) SetFillColor(col style.Color)   { c.b.SetFillColor(pdfColor(col)) }
func (c *Canvas) SetStrokeColor(col style.Color) { c.b.SetStrokeColor(pdfColor(col)) }

func (c *Canvas) SetFillAlpha(alpha float64) {
	if alpha == c.alpha.fill {
		return
	}
	c.alpha.fill = alpha
	c.b.SetExtGState(&extgstate.ExtGState{
		Set:       graphics.StateFillAlpha,
		FillAlpha: alpha,
		SingleUse: true,
	})
}

func (c *Canvas) SetStrokeAlpha(alpha float64) {
	if alpha == c.alpha.stroke {
		return
	}
	c.alpha.stroke = alpha
	c.b.SetExtGState(&extgstate.ExtGState{
		Set:         graphics.StateStrokeAlpha,
		StrokeAlpha: alpha,
		SingleUse:   true,
	})
}

func (c *Canvas) SetLineWidth(w float64)               { c.b.SetLineWidth(max(w, 0)) }
func (c *Canvas) SetLineCap(lc graphics.LineCapStyle)  { c.b.SetLineCap(lc) }
func (c *Canvas) SetLineJoin(j graphics.LineJoinStyle) { c.b.SetLineJoin(j) }

func (c *Canvas) SetMiterLimit(limit float64) {
	// PDF requires a miter limit of at least 1
	c.b.SetMiterLimit(max(limit, 1))
}

func (c *Canvas) SetLineDash(pattern []float64, phase float64) {
	c.b.SetLineDash(pattern, phase)
}

// Err returns the first error encountered by the underlying builder.
func (c *Canvas) Err() error {
	return c.b.Err
}

func pdfColor(col style.Color) color.Color {
	v := col.Values
	if col.Model == style.ModelCMYK {
		return color.DeviceCMYK{v[0], v[1], v[2], v[3]}
	}
	return color.DeviceRGB{v[0], v[1], v[2]}
}
