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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

// Canvas receives the drawing operations for a document.
//
// The model follows PDF content streams: paths are built with MoveTo,
// LineTo, CurveTo and ClosePath, and are consumed by one of the painting
// methods.  ClipNonZero and ClipEvenOdd mark the current path as a clip
// path; the clip takes effect when the path is consumed, normally by
// EndPath.  Coordinates are in the current user space, which starts out
// as the canvas space with the y-axis pointing up.
type Canvas interface {
	// BBox returns the area available for drawing, in canvas space.
	// The second return value is false if the canvas has no extent.
	BBox() (viewport.Rect, bool)

	PushGraphicsState()
	PopGraphicsState()

	// Transform modifies the current transformation matrix, so that m is
	// applied to user coordinates before the previous transformation.
	Transform(m matrix.Matrix)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()

	Fill()
	FillEvenOdd()
	Stroke()
	FillAndStroke()
	FillAndStrokeEvenOdd()
	EndPath()

	ClipNonZero()
	ClipEvenOdd()

	SetFillColor(c style.Color)
	SetStrokeColor(c style.Color)
	SetFillAlpha(alpha float64)
	SetStrokeAlpha(alpha float64)

	// SetFillGradient and SetStrokeGradient select a gradient as the paint
	// for the following painting operations, including the opacity given
	// by the gradient.  The result is false if the canvas cannot paint g
	// directly.  In this case the paint is unchanged, and fills are drawn
	// as clipped bands of solid colour instead.
	SetFillGradient(g *Gradient) bool
	SetStrokeGradient(g *Gradient) bool

	SetLineWidth(w float64)
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)
	SetMiterLimit(limit float64)

	// SetLineDash sets the dash pattern.  A nil pattern gives solid lines.
	SetLineDash(pattern []float64, phase float64)
}

// Spread describes how a gradient continues outside the parameter range
// [0, 1].
type Spread uint8

// These are the spread methods of SVG gradients.
const (
	SpreadPad Spread = iota
	SpreadReflect
	SpreadRepeat
)

// GradientStop is the colour at one position of a gradient.
type GradientStop struct {
	Offset float64
	Color  style.Color
	Alpha  float64
}

// Gradient is a linear or radial colour gradient.
//
// For linear gradients the parameter t is 0 at P0 and 1 at P1, and is
// constant along lines orthogonal to P1-P0.  For radial gradients t = 0
// is the circle of radius R0 around P0, and t = 1 is the circle of radius
// R1 around P1.  Intermediate circles are interpolated linearly.
type Gradient struct {
	Radial bool
	P0, P1 vec.Vec2
	R0, R1 float64

	// Matrix maps gradient space to the current user space.
	Matrix matrix.Matrix

	// Stops has at least two elements, with non-decreasing offsets in
	// [0, 1].
	Stops  []GradientStop
	Spread Spread

	// TMin and TMax bound the values of t needed to cover the painted
	// area.  For SpreadPad they are 0 and 1.
	TMin, TMax float64

	// Alpha is multiplied with the opacity of the stops.
	Alpha float64
}

// UniformAlpha returns the opacity of the gradient, if all stops have the
// same opacity.
func (g *Gradient) UniformAlpha() (float64, bool) {
	a := g.Stops[0].Alpha
	for _, s := range g.Stops[1:] {
		if s.Alpha != a {
			return 0, false
		}
	}
	return a * g.Alpha, true
}

// ColorAt returns the colour and opacity of the gradient at parameter t,
// taking the spread method into account.
func (g *Gradient) ColorAt(t float64) (style.Color, float64) {
	t = g.spreadT(t)
	stops := g.Stops
	if t <= stops[0].Offset {
		return stops[0].Color, stops[0].Alpha * g.Alpha
	}
	for i := 1; i < len(stops); i++ {
		b := stops[i]
		if t > b.Offset {
			continue
		}
		a := stops[i-1]
		d := b.Offset - a.Offset
		if d <= 0 {
			return b.Color, b.Alpha * g.Alpha
		}
		u := (t - a.Offset) / d
		return style.Lerp(a.Color, b.Color, u), (a.Alpha + u*(b.Alpha-a.Alpha)) * g.Alpha
	}
	last := stops[len(stops)-1]
	return last.Color, last.Alpha * g.Alpha
}
