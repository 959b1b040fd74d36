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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestResolveArcHalfCircle(t *testing.T) {
	a := ResolveArc(pt(0, 0), 10, 10, 0, false, true, pt(20, 0))
	if a.Degenerate != ArcNormal {
		t.Fatalf("unexpected degeneracy %d", a.Degenerate)
	}
	if !near(a.Center, pt(10, 0)) {
		t.Errorf("center %v", a.Center)
	}
	if math.Abs(a.DeltaTheta-math.Pi) > 1e-9 {
		t.Errorf("extent %g", a.DeltaTheta)
	}

	cs := a.Curves()
	if len(cs) != 2 {
		t.Fatalf("got %d curves", len(cs))
	}
	if !near(cs[0][2], pt(10, -10)) {
		t.Errorf("mid point %v", cs[0][2])
	}
	if cs[1][2] != pt(20, 0) {
		t.Errorf("end point %v", cs[1][2])
	}

	// the other sweep direction passes through the other side
	b := ResolveArc(pt(0, 0), 10, 10, 0, false, false, pt(20, 0))
	if mid := b.Curves()[0][2]; !near(mid, pt(10, 10)) {
		t.Errorf("mid point %v", mid)
	}
}

func TestResolveArcScaling(t *testing.T) {
	// radii which are too small are scaled up
	a := ResolveArc(pt(0, 0), 1, 1, 0, false, true, pt(20, 0))
	if math.Abs(a.Rx-10) > 1e-9 || math.Abs(a.Ry-10) > 1e-9 {
		t.Errorf("radii %g %g", a.Rx, a.Ry)
	}

	// radii which are large enough are kept
	b := ResolveArc(pt(0, 0), 50, 30, 0, true, true, pt(20, 0))
	if b.Rx != 50 || b.Ry != 30 {
		t.Errorf("radii changed to %g %g", b.Rx, b.Ry)
	}

	// negative radii
	c := ResolveArc(pt(0, 0), -10, -10, 0, false, true, pt(20, 0))
	if c.Rx != 10 || c.Ry != 10 {
		t.Errorf("negative radii gave %g %g", c.Rx, c.Ry)
	}
}

func TestResolveArcLargeFlag(t *testing.T) {
	small := ResolveArc(pt(0, 0), 20, 20, 0, false, true, pt(20, 0))
	large := ResolveArc(pt(0, 0), 20, 20, 0, true, true, pt(20, 0))
	if math.Abs(small.DeltaTheta) >= math.Pi {
		t.Errorf("small arc extent %g", small.DeltaTheta)
	}
	if math.Abs(large.DeltaTheta) <= math.Pi {
		t.Errorf("large arc extent %g", large.DeltaTheta)
	}
	if len(large.Curves()) < 3 {
		t.Errorf("large arc uses %d curves", len(large.Curves()))
	}
}

func TestResolveArcRotation(t *testing.T) {
	// a 90 degree rotation swaps the roles of the radii
	a := ResolveArc(pt(0, 0), 20, 10, 90, false, true, pt(0, 40))
	if !near(a.Center, pt(0, 20)) {
		t.Errorf("center %v", a.Center)
	}
	if math.Abs(a.Rotation-math.Pi/2) > 1e-12 {
		t.Errorf("rotation %g", a.Rotation)
	}
}

func TestResolveArcDegenerate(t *testing.T) {
	if a := ResolveArc(pt(1, 1), 5, 5, 0, false, false, pt(1, 1)); a.Degenerate != ArcEmpty {
		t.Error("coincident end points not detected")
	} else if a.Curves() != nil {
		t.Error("empty arc has curves")
	}
	a := ResolveArc(pt(0, 0), 0, 5, 0, false, false, pt(3, 0))
	if a.Degenerate != ArcLine {
		t.Fatal("zero radius not detected")
	}
	cs := a.Curves()
	if len(cs) != 1 || cs[0][2] != pt(3, 0) || !near(cs[0][0], pt(1, 0)) {
		t.Errorf("line curves %v", cs)
	}
}

func TestArcCurvesOnEllipse(t *testing.T) {
	a := ResolveArc(pt(10, 0), 10, 5, 0, true, true, pt(-10, 0))
	for _, c := range a.Curves() {
		p := c[2].Sub(a.Center)
		r := p.X*p.X/100 + p.Y*p.Y/25
		if math.Abs(r-1) > 1e-9 {
			t.Errorf("point %v is not on the ellipse", c[2])
		}
	}
}
