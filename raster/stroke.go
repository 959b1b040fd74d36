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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke rasterizes the outline of the path, using the current line width,
// cap, join, miter limit and dash settings.
//
// The outline is assembled from convex pieces in user space (one per
// segment, join and cap) which are then transformed to device space and
// filled together with the nonzero rule.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if r.Width <= 0 {
		return
	}
	lines := r.flatten(p)
	if pattern, ok := normalizeDash(r.Dash); ok {
		lines = dashPolylines(lines, pattern, r.DashPhase)
	}

	s := &stroker{
		hw:         r.Width / 2,
		cap:        r.Cap,
		join:       r.Join,
		miterLimit: r.MiterLimit,
	}
	s.circleSegments = r.circleSegments(s.hw)
	for _, line := range lines {
		s.addPolyline(line)
	}

	r.polys = r.polys[:0]
	for _, poly := range s.polys {
		dev := make([]vec.Vec2, len(poly))
		for i, pt := range poly {
			dev[i] = r.toDevice(pt)
		}
		r.polys = append(r.polys, dev)
	}
	r.rasterize(nonZero, emit)
}

// circleSegments returns the number of polygon vertices needed to
// approximate a circle of user space radius rad within the flatness
// tolerance.
func (r *Rasterizer) circleSegments(rad float64) int {
	scale := math.Sqrt(math.Abs(r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2]))
	dev := rad * scale
	if dev <= r.Flatness {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-r.Flatness/dev)))
	return min(max(n, 8), 1024)
}

// normalizeDash returns the effective dash pattern, or false if lines
// are to be drawn solid.
func normalizeDash(dash []float64) ([]float64, bool) {
	if len(dash) == 0 {
		return nil, false
	}
	sum := 0.0
	for _, d := range dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, false
		}
		sum += d
	}
	if sum <= 0 {
		return nil, false
	}
	if len(dash)%2 == 1 {
		dash = append(dash[:len(dash):len(dash)], dash...)
	}
	return dash, true
}

// dashPolylines cuts the polylines into dashes.  Every subpath restarts
// the pattern at the given phase.
func dashPolylines(lines []polyline, pattern []float64, phase float64) []polyline {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	phase = math.Mod(phase, total)
	if phase < 0 {
		phase += total
	}

	var res []polyline
	for _, line := range lines {
		pts := line.pts
		if line.closed && len(pts) > 0 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		if len(pts) < 2 {
			continue
		}

		// find the starting position within the pattern
		idx := 0
		left := pattern[0]
		for ph := phase; ph > 0; {
			if ph < left {
				left -= ph
				break
			}
			ph -= left
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}

		var cur []vec.Vec2
		on := idx%2 == 0
		if on {
			cur = append(cur, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := b.Sub(a).Length()
			pos := 0.0
			for segLen-pos > left {
				pos += left
				pt := a.Add(b.Sub(a).Mul(pos / segLen))
				if on {
					cur = append(cur, pt)
					res = append(res, polyline{pts: cur})
					cur = nil
				} else {
					cur = []vec.Vec2{pt}
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				left = pattern[idx]
			}
			left -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) > 0 {
			res = append(res, polyline{pts: cur})
		}
	}
	return res
}

// stroker collects the convex pieces making up a stroke outline.
type stroker struct {
	hw             float64
	cap            graphics.LineCapStyle
	join           graphics.LineJoinStyle
	miterLimit     float64
	circleSegments int

	polys [][]vec.Vec2
}

func (s *stroker) addPolyline(line polyline) {
	if len(line.pts) == 1 && !line.closed {
		// a lone moveto is never stroked
		return
	}

	pts := make([]vec.Vec2, 0, len(line.pts))
	for _, p := range line.pts {
		if len(pts) > 0 && p == pts[len(pts)-1] {
			continue
		}
		pts = append(pts, p)
	}
	closed := line.closed
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		s.addDot(pts[0])
		return
	}

	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	dirs := make([]vec.Vec2, n)
	for i := range n {
		d := pts[(i+1)%len(pts)].Sub(pts[i])
		dirs[i] = d.Mul(1 / d.Length())
		s.addSegment(pts[i], pts[(i+1)%len(pts)], dirs[i])
	}

	for i := 1; i < n; i++ {
		s.addJoin(pts[i], dirs[i-1], dirs[i])
	}
	if closed {
		s.addJoin(pts[0], dirs[n-1], dirs[0])
	} else {
		s.addCap(pts[0], dirs[0].Mul(-1))
		s.addCap(pts[len(pts)-1], dirs[n-1])
	}
}

// addDot handles zero-length subpaths, which only show their caps.
func (s *stroker) addDot(p vec.Vec2) {
	switch s.cap {
	case graphics.LineCapRound:
		s.addCircle(p)
	case graphics.LineCapSquare:
		h := s.hw
		s.add(
			vec.Vec2{X: p.X - h, Y: p.Y - h},
			vec.Vec2{X: p.X + h, Y: p.Y - h},
			vec.Vec2{X: p.X + h, Y: p.Y + h},
			vec.Vec2{X: p.X - h, Y: p.Y + h},
		)
	}
}

func (s *stroker) addSegment(a, b, d vec.Vec2) {
	n := normal(d).Mul(s.hw)
	s.add(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addCap adds the cap at p, for a line leaving p in direction d.
func (s *stroker) addCap(p, d vec.Vec2) {
	switch s.cap {
	case graphics.LineCapRound:
		s.addCircle(p)
	case graphics.LineCapSquare:
		n := normal(d).Mul(s.hw)
		e := d.Mul(s.hw)
		s.add(p.Add(n), p.Add(n).Add(e), p.Sub(n).Add(e), p.Sub(n))
	}
}

// addJoin adds the join at p between a segment arriving in direction d1
// and one leaving in direction d2.
func (s *stroker) addJoin(p, d1, d2 vec.Vec2) {
	cross := d1.X*d2.Y - d1.Y*d2.X
	dot := d1.Dot(d2)
	if math.Abs(cross) < 1e-12 && dot > 0 {
		return
	}

	if s.join == graphics.LineJoinRound {
		s.addCircle(p)
		return
	}

	// the outer side of the corner
	side := -1.0
	if cross < 0 {
		side = 1
	}
	n1 := normal(d1).Mul(side * s.hw)
	n2 := normal(d2).Mul(side * s.hw)

	if s.join == graphics.LineJoinMiter && 1+dot > 1e-12 {
		ratio := 1 / math.Sqrt((1+dot)/2)
		if ratio <= s.miterLimit {
			tip := p.Add(n1.Add(n2).Mul(1 / (1 + dot)))
			s.add(p, p.Add(n1), tip, p.Add(n2))
			return
		}
	}
	s.add(p, p.Add(n1), p.Add(n2))
}

func (s *stroker) addCircle(c vec.Vec2) {
	pts := make([]vec.Vec2, s.circleSegments)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(len(pts))
		pts[i] = vec.Vec2{
			X: c.X + s.hw*math.Cos(phi),
			Y: c.Y + s.hw*math.Sin(phi),
		}
	}
	s.add(pts...)
}

// add stores a convex polygon, with positive orientation so that
// overlapping pieces never cancel out.
func (s *stroker) add(pts ...vec.Vec2) {
	area := 0.0
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	s.polys = append(s.polys, pts)
}

// normal returns d rotated by 90 degrees counter-clockwise.
func normal(d vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -d.Y, Y: d.X}
}
