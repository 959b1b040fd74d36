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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// ArcDegeneracy describes how an elliptical arc is drawn.
type ArcDegeneracy uint8

const (
	// ArcNormal is a proper elliptical arc.
	ArcNormal ArcDegeneracy = iota

	// ArcLine is an arc with a zero radius, drawn as a straight line.
	ArcLine

	// ArcEmpty is an arc whose end point equals its start point.
	// Nothing is drawn.
	ArcEmpty
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	From, To vec.Vec2
	Center   vec.Vec2

	// Rx and Ry are the radii, after scaling them up where they were too
	// small to reach from From to To.
	Rx, Ry float64

	// Rotation is the angle of the ellipse's x-axis, in radians.
	Rotation float64

	// Theta1 is the start angle and DeltaTheta the signed angular extent,
	// both in radians and measured before the rotation is applied.
	Theta1, DeltaTheta float64

	Degenerate ArcDegeneracy
}

// ResolveArc converts the endpoint parameterization of an SVG arc into
// center parameterization.  The rotation is given in degrees.
//
// Negative radii are replaced by their absolute values.  Radii which are
// too small are scaled up uniformly until the ellipse just reaches the end
// point; radii are never scaled down.
func ResolveArc(from vec.Vec2, rx, ry, rotDeg float64, large, sweep bool, to vec.Vec2) Arc {
	a := Arc{From: from, To: to}
	if from == to {
		a.Degenerate = ArcEmpty
		return a
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		a.Degenerate = ArcLine
		return a
	}

	phi := math.Mod(rotDeg, 360) * math.Pi / 180
	sin, cos := math.Sincos(phi)

	// step 1: the midpoint of the chord, in the rotated frame
	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	// correct out-of-range radii
	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// step 2: the center in the rotated frame
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// step 3: the center in user space
	a.Center = vec.Vec2{
		X: cos*cx1 - sin*cy1 + (from.X+to.X)/2,
		Y: sin*cx1 + cos*cy1 + (from.Y+to.Y)/2,
	}

	// step 4: the angles
	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := theta2 - theta1
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	a.Rx = rx
	a.Ry = ry
	a.Rotation = phi
	a.Theta1 = theta1
	a.DeltaTheta = delta
	return a
}

// point returns the point on the ellipse at parameter angle t.
func (a *Arc) point(t float64) vec.Vec2 {
	sinPhi, cosPhi := math.Sincos(a.Rotation)
	sin, cos := math.Sincos(t)
	x := a.Rx * cos
	y := a.Ry * sin
	return vec.Vec2{
		X: a.Center.X + cosPhi*x - sinPhi*y,
		Y: a.Center.Y + sinPhi*x + cosPhi*y,
	}
}

// derivative returns the derivative of the ellipse at parameter angle t.
func (a *Arc) derivative(t float64) vec.Vec2 {
	sinPhi, cosPhi := math.Sincos(a.Rotation)
	sin, cos := math.Sincos(t)
	x := -a.Rx * sin
	y := a.Ry * cos
	return vec.Vec2{
		X: cosPhi*x - sinPhi*y,
		Y: sinPhi*x + cosPhi*y,
	}
}

// Curves approximates the arc by cubic Bézier curves.
// Each element holds the two control points and the end point of one
// curve; the first curve starts at a.From.  The arc is split into pieces
// of at most 90 degrees.  For an [ArcLine] arc, the result is a single
// straight cubic.  For an [ArcEmpty] arc, the result is nil.
func (a *Arc) Curves() [][3]vec.Vec2 {
	switch a.Degenerate {
	case ArcEmpty:
		return nil
	case ArcLine:
		d := a.To.Sub(a.From)
		return [][3]vec.Vec2{{
			a.From.Add(d.Mul(1.0 / 3)),
			a.From.Add(d.Mul(2.0 / 3)),
			a.To,
		}}
	}

	n := int(math.Ceil(math.Abs(a.DeltaTheta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	delta := a.DeltaTheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	res := make([][3]vec.Vec2, n)
	t1 := a.Theta1
	p1 := a.From
	for i := range n {
		t2 := a.Theta1 + float64(i+1)*delta
		p2 := a.point(t2)
		if i == n-1 {
			p2 = a.To
		}
		res[i] = [3]vec.Vec2{
			p1.Add(a.derivative(t1).Mul(k)),
			p2.Sub(a.derivative(t2).Mul(k)),
			p2,
		}
		t1, p1 = t2, p2
	}
	return res
}
