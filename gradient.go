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
	"math"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svg/internal/number"
	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

// gradient holds the attributes of a gradient element, after following
// the href chain.
type gradient struct {
	h         Handle
	linear    bool
	units     viewport.Units
	transform matrix.Matrix
	spread    Spread
	attrs     map[string]string
	stops     []GradientStop
}

var (
	gradientCommon = []string{"gradientUnits", "gradientTransform", "spreadMethod"}
	linearAttrs    = []string{"x1", "y1", "x2", "y2"}
	radialAttrs    = []string{"cx", "cy", "r", "fx", "fy", "fr"}
)

func isGradient(tag string) bool {
	return tag == "linearGradient" || tag == "radialGradient"
}

// resolveGradient collects the attributes and stops of a gradient.
// Attributes which are not set on the element are taken from the
// gradients it references via href.  Geometry attributes are only taken
// from gradients of the same kind.
func (r *renderer) resolveGradient(h Handle) (*gradient, error) {
	tag := r.doc.nodes[h].tag
	g := &gradient{
		h:      h,
		linear: tag == "linearGradient",
		attrs:  make(map[string]string),
	}
	geom := radialAttrs
	if g.linear {
		geom = linearAttrs
	}

	seen := make(map[Handle]bool)
	stopSource := NoHandle
	for cur := h; ; {
		if seen[cur] {
			return nil, r.attrError(h, "href", ErrCircularReference)
		}
		seen[cur] = true

		n := &r.doc.nodes[cur]
		names := gradientCommon
		if n.tag == tag {
			names = append(slices.Clone(names), geom...)
		}
		for _, name := range names {
			v, ok := n.attrs[name]
			if _, have := g.attrs[name]; ok && !have {
				g.attrs[name] = v
			}
		}
		if stopSource == NoHandle && r.hasStops(cur) {
			stopSource = cur
		}

		next, ok := r.doc.lookupRef(n.attrs["href"])
		if !ok || !isGradient(r.doc.nodes[next].tag) {
			break
		}
		cur = next
	}

	var err error
	g.units, err = viewport.ParseUnits(g.attrs["gradientUnits"], viewport.ObjectBoundingBox)
	if err != nil {
		return nil, r.attrError(h, "gradientUnits", err)
	}
	g.transform = matrix.Identity
	if s, ok := g.attrs["gradientTransform"]; ok {
		g.transform, err = viewport.ParseTransform(s)
		if err != nil {
			return nil, r.attrError(h, "gradientTransform", err)
		}
	}
	switch s := strings.TrimSpace(g.attrs["spreadMethod"]); s {
	case "", "pad":
		g.spread = SpreadPad
	case "reflect":
		g.spread = SpreadReflect
	case "repeat":
		g.spread = SpreadRepeat
	default:
		return nil, r.attrError(h, "spreadMethod",
			&viewport.AttributeError{Attr: "spreadMethod", Value: s})
	}

	if stopSource != NoHandle {
		g.stops, err = r.gradientStops(stopSource)
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (r *renderer) hasStops(h Handle) bool {
	for _, child := range r.doc.nodes[h].children {
		if r.doc.nodes[child].tag == "stop" {
			return true
		}
	}
	return false
}

// gradientStops reads the <stop> children of h.  Offsets are clamped to
// [0, 1] and made non-decreasing.
func (r *renderer) gradientStops(h Handle) ([]GradientStop, error) {
	var stops []GradientStop
	prev := 0.0
	for _, child := range r.doc.nodes[h].children {
		if r.doc.nodes[child].tag != "stop" {
			continue
		}
		s := strings.TrimSpace(r.doc.nodes[child].attrs["offset"])
		if s == "" {
			s = "0"
		}
		var off float64
		var err error
		if p, ok := strings.CutSuffix(s, "%"); ok {
			off, err = number.Parse(p)
			off /= 100
		} else {
			off, err = number.Parse(s)
		}
		if err != nil {
			return nil, r.attrError(child, "offset", err)
		}
		off = max(min(off, 1), 0, prev)
		prev = off

		st := r.styleOf(child)
		stops = append(stops, GradientStop{
			Offset: off,
			Color:  st.style.StopColor,
			Alpha:  st.style.StopOpacity,
		})
	}
	return stops, nil
}

// shading resolves the geometry of g for painting an area with the
// bounding box bbox, enlarged by margin on all sides.  The result is nil
// if nothing is painted, and has a single stop if the gradient reduces to
// one colour.
func (r *renderer) shading(g *gradient, st *state, bbox viewport.Rect, margin, alpha float64) (*Gradient, error) {
	if len(g.stops) == 0 {
		return nil, nil
	}

	m := g.transform
	var res *viewport.Resolver
	var err error
	if g.units == viewport.ObjectBoundingBox {
		if bbox.Width <= 0 || bbox.Height <= 0 {
			return nil, nil
		}
		unit := viewport.Rect{Width: 1, Height: 1}
		res, err = r.resolver(st, viewport.ObjectBoundingBox, &unit)
		m = g.transform.Mul(bboxMatrix(bbox))
	} else {
		res, err = r.resolver(st, viewport.UserSpaceOnUse, nil)
	}
	if err != nil {
		return nil, r.attrError(g.h, "", err)
	}
	inv, ok := viewport.Invert(m)
	if !ok {
		return nil, nil
	}
	area := viewport.Rect{
		X:      bbox.X - margin,
		Y:      bbox.Y - margin,
		Width:  bbox.Width + 2*margin,
		Height: bbox.Height + 2*margin,
	}
	region := grow(viewport.TransformRect(inv, area))

	sh := &Gradient{
		Radial: !g.linear,
		Matrix: m,
		Stops:  g.stops,
		Spread: g.spread,
		TMin:   0,
		TMax:   1,
		Alpha:  alpha,
	}
	last := g.stops[len(g.stops)-1:]
	if len(g.stops) == 1 {
		return sh, nil
	}

	if g.linear {
		var v [4]float64
		for i, a := range []struct {
			name, def string
			ax        axis
		}{{"x1", "0%", posX}, {"y1", "0%", posY}, {"x2", "100%", posX}, {"y2", "0%", posY}} {
			v[i], err = r.mapLength(g.h, g.attrs, res, a.name, a.def, a.ax)
			if err != nil {
				return nil, err
			}
		}
		sh.P0 = vec.Vec2{X: v[0], Y: v[1]}
		sh.P1 = vec.Vec2{X: v[2], Y: v[3]}
		d := sh.P1.Sub(sh.P0)
		l2 := d.Dot(d)
		if l2 == 0 {
			sh.Stops = last
			return sh, nil
		}
		if sh.Spread != SpreadPad {
			tmin, tmax := math.Inf(1), math.Inf(-1)
			for _, c := range corners(region) {
				t := c.Sub(sh.P0).Dot(d) / l2
				tmin, tmax = min(tmin, t), max(tmax, t)
			}
			sh.setRange(tmin, tmax, r.opt.MaxTiles)
		}
		return sh, nil
	}

	var v [6]float64
	for i, a := range []struct {
		name, def string
		ax        axis
	}{
		{"cx", "50%", posX},
		{"cy", "50%", posY},
		{"r", "50%", other},
		{"fx", g.attrOr("cx", "50%"), posX},
		{"fy", g.attrOr("cy", "50%"), posY},
		{"fr", "0%", other},
	} {
		v[i], err = r.mapLength(g.h, g.attrs, res, a.name, a.def, a.ax)
		if err != nil {
			return nil, err
		}
	}
	c := vec.Vec2{X: v[0], Y: v[1]}
	rad := v[2]
	f := vec.Vec2{X: v[3], Y: v[4]}
	if rad <= 0 {
		sh.Stops = last
		return sh, nil
	}
	// The focal point is moved inside the end circle.
	if dist := f.Sub(c).Length(); dist > rad*0.999 {
		f = c.Add(f.Sub(c).Mul(rad * 0.999 / dist))
	}
	sh.P0, sh.R0 = f, min(max(v[5], 0), rad)
	sh.P1, sh.R1 = c, rad

	if sh.Spread != SpreadPad {
		tEnd := 1.0
		for !sh.covers(region, tEnd) && tEnd < float64(r.opt.MaxTiles) {
			tEnd++
		}
		sh.setRange(0, tEnd, r.opt.MaxTiles)
	}
	return sh, nil
}

// setRange records the parameter range of a repeating or reflecting
// gradient.  Gradients needing more than maxPeriods periods are padded
// instead.
func (g *Gradient) setRange(tmin, tmax float64, maxPeriods int) {
	if math.Ceil(tmax)-math.Floor(tmin) > float64(maxPeriods) {
		g.Spread = SpreadPad
		return
	}
	g.TMin, g.TMax = tmin, tmax
}

func (g *Gradient) center(t float64) vec.Vec2 { return g.P0.Add(g.P1.Sub(g.P0).Mul(t)) }
func (g *Gradient) radius(t float64) float64  { return g.R0 + (g.R1-g.R0)*t }

// covers reports whether the circle for parameter t contains the region.
func (g *Gradient) covers(region viewport.Rect, t float64) bool {
	for _, p := range corners(region) {
		if p.Sub(g.center(t)).Length() > g.radius(t) {
			return false
		}
	}
	return true
}

// spreadT maps a gradient parameter into [0, 1] according to the spread
// method.
func (g *Gradient) spreadT(t float64) float64 {
	switch g.Spread {
	case SpreadRepeat:
		return t - math.Floor(t)
	case SpreadReflect:
		m := math.Mod(t, 2)
		if m < 0 {
			m += 2
		}
		if m > 1 {
			m = 2 - m
		}
		return m
	default:
		return min(max(t, 0), 1)
	}
}

// band is a range [t0, t1] of gradient parameters, painted in the colour
// for parameter t.
type band struct {
	t0, t1, t float64
}

// bands divides [tmin, tmax] into colour bands.  Each period of the
// gradient uses the given number of steps.  If a repeating gradient would
// need more than maxPeriods periods, it is painted as if padded.
func (g *Gradient) bands(tmin, tmax float64, steps, maxPeriods int) []band {
	if tmax <= tmin {
		return nil
	}
	first, last := math.Floor(tmin), math.Ceil(tmax)
	if last-first > float64(maxPeriods) {
		g.Spread = SpreadPad
	}
	spread := g.Spread

	var res []band
	add := func(t0, t1 float64) {
		if t1 <= tmin || t0 >= tmax {
			return
		}
		res = append(res, band{t0: max(t0, tmin), t1: min(t1, tmax)})
	}
	if spread == SpreadPad {
		if tmin < 0 {
			res = append(res, band{t0: tmin, t1: min(0, tmax), t: 0})
		}
		for k := range steps {
			add(float64(k)/float64(steps), float64(k+1)/float64(steps))
		}
		if tmax > 1 {
			res = append(res, band{t0: max(1, tmin), t1: tmax, t: 1})
		}
	} else {
		for p := first; p < last; p++ {
			for k := range steps {
				add(p+float64(k)/float64(steps), p+float64(k+1)/float64(steps))
			}
		}
	}
	for i := range res {
		b := &res[i]
		if spread == SpreadPad && (b.t1 <= 0 || b.t0 >= 1) {
			continue
		}
		b.t = (b.t0 + b.t1) / 2
	}
	return res
}

// fillGradient paints the current clip region with a gradient, as bands
// of solid colour.  The region to cover is given by bbox, in the current
// user space.
func (r *renderer) fillGradient(g *Gradient, bbox viewport.Rect) {
	inv, ok := viewport.Invert(g.Matrix)
	if !ok {
		return
	}
	region := grow(viewport.TransformRect(inv, bbox))

	r.c.Transform(g.Matrix)
	bp := &bandPainter{r: r, current: 1}
	if len(g.Stops) == 1 {
		bp.setColor(g.ColorAt(0))
		r.rectPath(region)
		r.c.Fill()
		return
	}
	if g.Radial {
		r.radialBands(g, region, bp)
	} else {
		r.linearBands(g, region, bp)
	}
}

func (r *renderer) linearBands(g *Gradient, region viewport.Rect, bp *bandPainter) {
	p1 := g.P0
	d := g.P1.Sub(g.P0)
	l2 := d.Dot(d)
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(1 / math.Sqrt(l2))

	tmin, tmax := math.Inf(1), math.Inf(-1)
	smin, smax := math.Inf(1), math.Inf(-1)
	for _, c := range corners(region) {
		q := c.Sub(p1)
		t := q.Dot(d) / l2
		s := q.Dot(n)
		tmin, tmax = min(tmin, t), max(tmax, t)
		smin, smax = min(smin, s), max(smax, s)
	}

	at := func(t, s float64) vec.Vec2 {
		return p1.Add(d.Mul(t)).Add(n.Mul(s))
	}
	for _, b := range g.bands(tmin, tmax, r.opt.GradientSteps, r.opt.MaxTiles) {
		bp.setColor(g.ColorAt(b.t))
		q := at(b.t0, smin)
		r.c.MoveTo(q.X, q.Y)
		q = at(b.t1, smin)
		r.c.LineTo(q.X, q.Y)
		q = at(b.t1, smax)
		r.c.LineTo(q.X, q.Y)
		q = at(b.t0, smax)
		r.c.LineTo(q.X, q.Y)
		r.c.ClosePath()
		r.c.Fill()
	}
}

func (r *renderer) radialBands(g *Gradient, region viewport.Rect, bp *bandPainter) {
	tEnd := 1.0
	if g.Spread != SpreadPad {
		tEnd = g.TMax
	} else {
		// everything outside the end circle gets the last colour
		bp.setColor(g.ColorAt(1))
		p := &path.Data{}
		rectData(p, region)
		ellipsePath(p, g.P1.X, g.P1.Y, g.R1, g.R1)
		r.emit(p, matrix.Identity)
		r.c.FillEvenOdd()
	}

	for _, b := range g.bands(0, tEnd, r.opt.GradientSteps, r.opt.MaxTiles) {
		bp.setColor(g.ColorAt(b.t))
		p := &path.Data{}
		c1 := g.center(b.t1)
		ellipsePath(p, c1.X, c1.Y, g.radius(b.t1), g.radius(b.t1))
		if r0 := g.radius(b.t0); r0 > 0 {
			c0 := g.center(b.t0)
			ellipsePath(p, c0.X, c0.Y, r0, r0)
		}
		r.emit(p, matrix.Identity)
		r.c.FillEvenOdd()
	}

	if g.R0 > 0 {
		bp.setColor(g.ColorAt(0))
		p := &path.Data{}
		ellipsePath(p, g.P0.X, g.P0.Y, g.R0, g.R0)
		r.emit(p, matrix.Identity)
		r.c.Fill()
	}
}

// mapLength resolves a length from a set of attributes collected from an
// href chain starting at h.
func (r *renderer) mapLength(h Handle, attrs map[string]string, res *viewport.Resolver, name, def string, ax axis) (float64, error) {
	s := strings.TrimSpace(attrs[name])
	if s == "" {
		s = def
	}
	l, err := viewport.ParseLength(s)
	if err != nil {
		return 0, r.attrError(h, name, err)
	}
	x, err := resolve(res, l, ax)
	if err != nil {
		return 0, r.attrError(h, name, err)
	}
	return x, nil
}

// attrOr returns a gradient attribute, or def if it is not set.
func (g *gradient) attrOr(name, def string) string {
	if s := strings.TrimSpace(g.attrs[name]); s != "" {
		return s
	}
	return def
}

// bandPainter sets the fill colour for gradient bands, avoiding
// redundant changes of the fill alpha.
type bandPainter struct {
	r       *renderer
	current float64
}

func (bp *bandPainter) setColor(c style.Color, alpha float64) {
	bp.r.c.SetFillColor(c)
	if alpha != bp.current {
		bp.r.c.SetFillAlpha(alpha)
		bp.current = alpha
	}
}

func (r *renderer) rectPath(b viewport.Rect) {
	r.c.MoveTo(b.X, b.Y)
	r.c.LineTo(b.X+b.Width, b.Y)
	r.c.LineTo(b.X+b.Width, b.Y+b.Height)
	r.c.LineTo(b.X, b.Y+b.Height)
	r.c.ClosePath()
}

func rectData(p *path.Data, b viewport.Rect) {
	p.MoveTo(vec.Vec2{X: b.X, Y: b.Y})
	p.LineTo(vec.Vec2{X: b.X + b.Width, Y: b.Y})
	p.LineTo(vec.Vec2{X: b.X + b.Width, Y: b.Y + b.Height})
	p.LineTo(vec.Vec2{X: b.X, Y: b.Y + b.Height})
	p.Close()
}

func corners(b viewport.Rect) [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: b.X, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y + b.Height},
		{X: b.X, Y: b.Y + b.Height},
	}
}

// grow enlarges a rectangle slightly, so that painted areas cover the
// edges of the clip region.
func grow(b viewport.Rect) viewport.Rect {
	dx := 0.01*b.Width + 1e-6
	dy := 0.01*b.Height + 1e-6
	return viewport.Rect{X: b.X - dx, Y: b.Y - dy, Width: b.Width + 2*dx, Height: b.Height + 2*dy}
}
