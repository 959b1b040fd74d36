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

// Package raster converts vector paths into anti-aliased pixel coverage,
// and provides a drawing canvas for SVG documents on top of an
// [image.RGBA].
//
// Coverage is computed exactly for the flattened outline: every edge adds
// its signed area contribution to an accumulation buffer, and a running
// sum along each row gives the winding number per pixel.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0
)

// horizontalThreshold is the minimum vertical extent for an edge to
// contribute to coverage.
const horizontalThreshold = 1e-9

// Rasterizer converts paths to pixel coverage values between 0 (outside)
// and 1 (inside).  Create one instance and reuse it for many paths; the
// internal buffers grow as needed but are never freed.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output to this device space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash gives alternating on/off lengths in user space units.
	// Nil means solid lines.
	Dash      []float64
	DashPhase float64

	// accumulation buffer: one row of stride float32 values per scanline
	acc    []float32
	stride int
	cov    []float32

	// flattened outlines, in device space
	polys [][]vec.Vec2
}

// NewRasterizer returns a Rasterizer with the given clip rectangle and
// PDF default values for the other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters, keeping the allocated buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
	r.polys = r.polys[:0]
}

// fillRule selects how winding numbers map to coverage.
type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

// FillNonZero fills the path using the nonzero winding rule.  The emit
// callback receives the coverage of one row at a time, starting at pixel
// xMin; the slice is only valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flattenFill(p)
	r.rasterize(nonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flattenFill(p)
	r.rasterize(evenOdd, emit)
}

// flattenFill converts all subpaths of p into closed device space
// polygons.
func (r *Rasterizer) flattenFill(p *path.Data) {
	r.polys = r.polys[:0]
	for _, sub := range r.flatten(p) {
		poly := make([]vec.Vec2, len(sub.pts))
		for i, pt := range sub.pts {
			poly[i] = r.toDevice(pt)
		}
		r.polys = append(r.polys, poly)
	}
}

// polyline is a flattened subpath in user space.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// flatten converts curves to line segments.  The tolerance is applied in
// device space.
func (r *Rasterizer) flatten(p *path.Data) []polyline {
	var res []polyline
	var cur polyline
	var current vec.Vec2
	open, hasCurrent := false, false
	finish := func(closed bool) {
		if open {
			cur.closed = closed
			res = append(res, cur)
		}
		cur = polyline{}
		open = false
	}
	// start begins an implicit subpath after ClosePath.
	start := func() bool {
		if !open && hasCurrent {
			cur.pts = append(cur.pts, current)
			open = true
		}
		return open
	}
	emit := func(_, to vec.Vec2) {
		cur.pts = append(cur.pts, to)
	}

	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[i]
			hasCurrent = true
			cur.pts = append(cur.pts, current)
			open = true
			i++
		case path.CmdLineTo:
			if start() {
				emit(current, p.Coords[i])
				current = p.Coords[i]
			}
			i++
		case path.CmdQuadTo:
			if start() {
				r.flattenQuadratic(current, p.Coords[i], p.Coords[i+1], emit)
				current = p.Coords[i+1]
			}
			i += 2
		case path.CmdCubeTo:
			if start() {
				r.flattenCubic(current, p.Coords[i], p.Coords[i+1], p.Coords[i+2], emit)
				current = p.Coords[i+2]
			}
			i += 3
		case path.CmdClose:
			if open {
				current = cur.pts[0]
			}
			finish(true)
		}
	}
	finish(false)
	return res
}

func (r *Rasterizer) toDevice(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// transformLinear applies only the linear part of the CTM.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// rasterize computes the coverage of the polygons in r.polys.
func (r *Rasterizer) rasterize(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	first := true
	var x0, y0, x1, y1 float64
	for _, poly := range r.polys {
		for _, p := range poly {
			if first {
				x0, y0, x1, y1 = p.X, p.Y, p.X, p.Y
				first = false
				continue
			}
			x0, y0 = min(x0, p.X), min(y0, p.Y)
			x1, y1 = max(x1, p.X), max(y1, p.Y)
		}
	}
	if first {
		return
	}

	xMin := max(int(math.Floor(x0)), int(r.Clip.LLx))
	xMax := min(int(math.Ceil(x1)), int(r.Clip.URx))
	yMin := max(int(math.Floor(y0)), int(r.Clip.LLy))
	yMax := min(int(math.Ceil(y1)), int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	w := xMax - xMin
	h := yMax - yMin
	r.stride = w + 2
	n := r.stride * h
	if cap(r.acc) < n {
		r.acc = make([]float32, n)
	}
	r.acc = r.acc[:n]
	clear(r.acc)

	ox, oy := float64(xMin), float64(yMin)
	for _, poly := range r.polys {
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			r.accumulate(a.X-ox, a.Y-oy, b.X-ox, b.Y-oy, w, h)
		}
	}

	if cap(r.cov) < w {
		r.cov = make([]float32, w)
	}
	cov := r.cov[:w]
	for row := range h {
		buf := r.acc[row*r.stride : (row+1)*r.stride]
		var sum float32
		lo, hi := w, 0
		for x := range w {
			sum += buf[x]
			a := coverage(sum, rule)
			cov[x] = a
			if a > 0 {
				lo = min(lo, x)
				hi = x + 1
			}
		}
		if lo < hi {
			emit(yMin+row, xMin+lo, cov[lo:hi])
		}
	}
}

// coverage converts an accumulated winding value into pixel coverage.
func coverage(sum float32, rule fillRule) float32 {
	a := sum
	if a < 0 {
		a = -a
	}
	if rule == evenOdd {
		a = float32(math.Mod(float64(a), 2))
		if a > 1 {
			a = 2 - a
		}
	} else if a > 1 {
		a = 1
	}
	if a < 1.0/512 {
		return 0
	}
	return a
}

// accumulate adds the signed area contribution of the edge from (ax, ay)
// to (bx, by) to the accumulation buffer.  Coordinates are relative to
// the buffer origin; the buffer covers w×h pixels.
func (r *Rasterizer) accumulate(ax, ay, bx, by float64, w, h int) {
	dir := float32(1)
	if ay > by {
		dir = -1
		ax, ay, bx, by = bx, by, ax, ay
	}
	if by-ay < horizontalThreshold {
		return
	}
	dxdy := (bx - ax) / (by - ay)
	if ay < 0 {
		ax += -ay * dxdy
		ay = 0
	}

	x := ax
	y := math.Floor(ay)
	yEnd := min(math.Ceil(by), float64(h))
	for ; y < yEnd; y++ {
		dy := min(y+1, by) - max(y, ay)
		xNext := x + dy*dxdy
		buf := r.acc[int(y)*r.stride : (int(y)+1)*r.stride]
		d := float32(dy) * dir

		lo, hi := x, xNext
		if lo > hi {
			lo, hi = hi, lo
		}
		loI := math.Floor(lo)
		hiI := math.Ceil(hi)
		if hiI <= loI+1 {
			// the edge stays within one pixel column on this row
			xm := float32((x+xNext)/2 - loI)
			add(buf, int(loI), d-d*xm)
			add(buf, int(loI)+1, d*xm)
		} else {
			s := 1 / (hi - lo)
			f0 := lo - loI
			a0 := float32(0.5 * s * (1 - f0) * (1 - f0))
			f1 := hi - hiI + 1
			am := float32(0.5 * s * f1 * f1)

			add(buf, int(loI), d*a0)
			if hiI == loI+2 {
				add(buf, int(loI)+1, d*(1-a0-am))
			} else {
				a1 := float32(s * (1.5 - f0))
				add(buf, int(loI)+1, d*(a1-a0))
				ds := d * float32(s)
				start, end := int(loI)+2, min(int(hiI)-1, len(buf))
				if start < 0 {
					add(buf, 0, ds*float32(-start))
					start = 0
				}
				for xi := start; xi < end; xi++ {
					buf[xi] += ds
				}
				a2 := a1 + float32(s*(hiI-loI-3))
				add(buf, int(hiI)-1, d*(1-a2-am))
			}
			add(buf, int(hiI), d*am)
		}
		x = xNext
	}
}

// add adds v at position i of a row buffer, clamping i to the row.
// Contributions left of the row go to the first pixel, contributions
// right of the row are dropped into the spare cells at the end.
func add(buf []float32, i int, v float32) {
	if i < 0 {
		i = 0
	} else if i >= len(buf) {
		i = len(buf) - 1
	}
	buf[i] += v
}
