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

package pathdata

import "seehuhn.de/go/geom/vec"

// Shape is one segment of a path, with all coordinates resolved to
// absolute user space values.
//
// The concrete types are [MoveTo], [LineTo], [HorizontalLineTo],
// [VerticalLineTo], [CurveTo], [SmoothCurveTo], [QuadraticCurveTo],
// [SmoothQuadraticCurveTo], [EllipticalCurveTo] and [ClosePath].
type Shape interface {
	Kind() Kind

	// StartPoint is the current point before the segment.
	StartPoint() vec.Vec2

	// EndPoint is the current point after the segment.
	EndPoint() vec.Vec2

	isShape()
}

// MoveTo starts a new subpath at To.
type MoveTo struct {
	From, To vec.Vec2
}

// LineTo is a straight line.
type LineTo struct {
	From, To vec.Vec2
}

// HorizontalLineTo is a straight line with To.Y == From.Y.
type HorizontalLineTo struct {
	From, To vec.Vec2
}

// VerticalLineTo is a straight line with To.X == From.X.
type VerticalLineTo struct {
	From, To vec.Vec2
}

// CurveTo is a cubic Bézier curve.
type CurveTo struct {
	From, C1, C2, To vec.Vec2
}

// SmoothCurveTo is a cubic Bézier curve whose first control point C1 was
// obtained by reflecting the previous curve's second control point.
type SmoothCurveTo struct {
	From, C1, C2, To vec.Vec2
}

// QuadraticCurveTo is a quadratic Bézier curve.
type QuadraticCurveTo struct {
	From, C, To vec.Vec2
}

// SmoothQuadraticCurveTo is a quadratic Bézier curve whose control point
// was obtained by reflecting the previous curve's control point.
type SmoothQuadraticCurveTo struct {
	From, C, To vec.Vec2
}

// EllipticalCurveTo is an elliptical arc.
// The fields other than Arc record the parameters as written.
type EllipticalCurveTo struct {
	From, To vec.Vec2
	Rx, Ry   float64
	Rotation float64 // degrees
	LargeArc bool
	Sweep    bool
	Arc      Arc
}

// ClosePath draws a straight line back to the start of the subpath, To.
type ClosePath struct {
	From, To vec.Vec2
}

func (MoveTo) Kind() Kind                 { return KindMoveTo }
func (LineTo) Kind() Kind                 { return KindLineTo }
func (HorizontalLineTo) Kind() Kind       { return KindHorizontalLineTo }
func (VerticalLineTo) Kind() Kind         { return KindVerticalLineTo }
func (CurveTo) Kind() Kind                { return KindCurveTo }
func (SmoothCurveTo) Kind() Kind          { return KindSmoothCurveTo }
func (QuadraticCurveTo) Kind() Kind       { return KindQuadraticCurveTo }
func (SmoothQuadraticCurveTo) Kind() Kind { return KindSmoothQuadraticCurveTo }
func (EllipticalCurveTo) Kind() Kind      { return KindEllipticalCurveTo }
func (ClosePath) Kind() Kind              { return KindClosePath }

func (s MoveTo) StartPoint() vec.Vec2                 { return s.From }
func (s LineTo) StartPoint() vec.Vec2                 { return s.From }
func (s HorizontalLineTo) StartPoint() vec.Vec2       { return s.From }
func (s VerticalLineTo) StartPoint() vec.Vec2         { return s.From }
func (s CurveTo) StartPoint() vec.Vec2                { return s.From }
func (s SmoothCurveTo) StartPoint() vec.Vec2          { return s.From }
func (s QuadraticCurveTo) StartPoint() vec.Vec2       { return s.From }
func (s SmoothQuadraticCurveTo) StartPoint() vec.Vec2 { return s.From }
func (s EllipticalCurveTo) StartPoint() vec.Vec2      { return s.From }
func (s ClosePath) StartPoint() vec.Vec2              { return s.From }

func (s MoveTo) EndPoint() vec.Vec2                 { return s.To }
func (s LineTo) EndPoint() vec.Vec2                 { return s.To }
func (s HorizontalLineTo) EndPoint() vec.Vec2       { return s.To }
func (s VerticalLineTo) EndPoint() vec.Vec2         { return s.To }
func (s CurveTo) EndPoint() vec.Vec2                { return s.To }
func (s SmoothCurveTo) EndPoint() vec.Vec2          { return s.To }
func (s QuadraticCurveTo) EndPoint() vec.Vec2       { return s.To }
func (s SmoothQuadraticCurveTo) EndPoint() vec.Vec2 { return s.To }
func (s EllipticalCurveTo) EndPoint() vec.Vec2      { return s.To }
func (s ClosePath) EndPoint() vec.Vec2              { return s.To }

func (MoveTo) isShape()                 {}
func (LineTo) isShape()                 {}
func (HorizontalLineTo) isShape()       {}
func (VerticalLineTo) isShape()         {}
func (CurveTo) isShape()                {}
func (SmoothCurveTo) isShape()          {}
func (QuadraticCurveTo) isShape()       {}
func (SmoothQuadraticCurveTo) isShape() {}
func (EllipticalCurveTo) isShape()      {}
func (ClosePath) isShape()              {}
