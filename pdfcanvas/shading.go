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

package pdfcanvas

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/function"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/pattern"
	"seehuhn.de/go/pdf/graphics/shading"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/style"
)

// SetFillGradient implements [svg.Canvas] using a shading pattern.
func (c *Canvas) SetFillGradient(g *svg.Gradient) bool {
	col, alpha, ok := c.gradientColor(g)
	if !ok {
		return false
	}
	c.b.SetFillColor(col)
	c.SetFillAlpha(alpha)
	return true
}

// SetStrokeGradient implements [svg.Canvas] using a shading pattern.
func (c *Canvas) SetStrokeGradient(g *svg.Gradient) bool {
	col, alpha, ok := c.gradientColor(g)
	if !ok {
		return false
	}
	c.b.SetStrokeColor(col)
	c.SetStrokeAlpha(alpha)
	return true
}

// gradientColor converts g into a PDF pattern colour, together with the
// opacity to use.  PDF shadings are opaque, so gradients where the stop
// opacity varies are not converted.
func (c *Canvas) gradientColor(g *svg.Gradient) (color.Color, float64, bool) {
	if len(g.Stops) < 2 {
		return nil, 0, false
	}
	alpha, ok := g.UniformAlpha()
	if !ok {
		return nil, 0, false
	}

	space, values := stopValues(g.Stops)
	fn := stopFunction(g.Stops, values)

	// The shading parameter runs over whole periods of the gradient.
	t0, t1 := 0.0, 1.0
	if g.Spread != svg.SpreadPad {
		t0, t1 = math.Floor(g.TMin), math.Ceil(g.TMax)
		if t1 <= t0 {
			t1 = t0 + 1
		}
		fn = periodic(fn, t0, t1, g.Spread == svg.SpreadReflect)
	}
	at := func(t float64) vec.Vec2 { return g.P0.Add(g.P1.Sub(g.P0).Mul(t)) }

	var sh graphics.Shading
	if g.Radial {
		r0 := g.R0 + (g.R1-g.R0)*t0
		r1 := g.R0 + (g.R1-g.R0)*t1
		if r0 < 0 || r1 < 0 {
			return nil, 0, false
		}
		sh = &shading.Type3{
			ColorSpace:  space,
			Center1:     at(t0),
			R1:          r0,
			Center2:     at(t1),
			R2:          r1,
			F:           fn,
			TMin:        t0,
			TMax:        t1,
			ExtendStart: true,
			ExtendEnd:   true,
			SingleUse:   true,
		}
	} else {
		sh = &shading.Type2{
			ColorSpace:  space,
			P0:          at(t0),
			P1:          at(t1),
			F:           fn,
			TMin:        t0,
			TMax:        t1,
			ExtendStart: true,
			ExtendEnd:   true,
			SingleUse:   true,
		}
	}

	// Pattern space is the default space of the page, not the current
	// user space.
	pat := &pattern.Type2{
		Shading:   sh,
		Matrix:    g.Matrix.Mul(c.b.State.GState.CTM),
		SingleUse: true,
	}
	return color.PatternColored(pat), alpha, true
}

// stopValues returns the colour space and the colour components of the
// stops.  Mixed colour models are converted to RGB.
func stopValues(stops []svg.GradientStop) (color.Space, [][]float64) {
	cmyk := true
	for _, s := range stops {
		if s.Color.Model != style.ModelCMYK {
			cmyk = false
			break
		}
	}
	values := make([][]float64, len(stops))
	for i, s := range stops {
		if cmyk {
			values[i] = s.Color.Values[:]
		} else {
			r, g, b := s.Color.ToRGB()
			values[i] = []float64{r, g, b}
		}
	}
	if cmyk {
		return color.SpaceDeviceCMYK, values
	}
	return color.SpaceDeviceRGB, values
}

// stopFunction returns a function on [0, 1] which interpolates linearly
// between the stop colours.  Outside the first and last offset the
// colours are constant.
func stopFunction(stops []svg.GradientStop, values [][]float64) pdf.Function {
	offsets := make([]float64, 0, len(stops)+2)
	vals := make([][]float64, 0, len(stops)+2)
	if stops[0].Offset > 0 {
		offsets = append(offsets, 0)
		vals = append(vals, values[0])
	}
	for i, s := range stops {
		offsets = append(offsets, s.Offset)
		vals = append(vals, values[i])
	}
	if stops[len(stops)-1].Offset < 1 {
		offsets = append(offsets, 1)
		vals = append(vals, values[len(values)-1])
	}

	var pieces []pdf.Function
	var bounds, encode []float64
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			continue
		}
		if len(pieces) > 0 {
			bounds = append(bounds, offsets[i-1])
		}
		pieces = append(pieces, &function.Type2{
			XMin: 0,
			XMax: 1,
			C0:   vals[i-1],
			C1:   vals[i],
			N:    1,
		})
		encode = append(encode, 0, 1)
	}
	if len(pieces) == 1 {
		return pieces[0]
	}
	return &function.Type3{
		XMin:      0,
		XMax:      1,
		Functions: pieces,
		Bounds:    bounds,
		Encode:    encode,
	}
}

// periodic repeats fn, defined on [0, 1], over the whole periods between
// t0 and t1.  If reflect is set, every other period runs backwards.
func periodic(fn pdf.Function, t0, t1 float64, reflect bool) pdf.Function {
	n := int(t1 - t0)
	res := &function.Type3{
		XMin:      t0,
		XMax:      t1,
		Functions: make([]pdf.Function, n),
		Encode:    make([]float64, 0, 2*n),
	}
	for i := range n {
		res.Functions[i] = fn
		if i > 0 {
			res.Bounds = append(res.Bounds, t0+float64(i))
		}
		if reflect && math.Mod(t0+float64(i), 2) != 0 {
			res.Encode = append(res.Encode, 1, 0)
		} else {
			res.Encode = append(res.Encode, 0, 1)
		}
	}
	return res
}
