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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

var _ svg.Canvas = (*Canvas)(nil)

// Canvas draws onto an [image.RGBA].  It implements [svg.Canvas].
//
// One unit of canvas space corresponds to Scale pixels.
type Canvas struct {
	img   *image.RGBA
	scale float64
	w, h  int

	r *Rasterizer

	state gState
	stack []gState

	path     path.Data
	clipRule fillRule
	clipping bool
}

// gState holds the parameters saved by PushGraphicsState.
type gState struct {
	ctm matrix.Matrix

	fill, stroke           [3]float32
	fillAlpha, strokeAlpha float32

	width      float64
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64
	dash       []float64
	dashPhase  float64

	// mask holds the clip coverage of every pixel, or nil if nothing is
	// clipped.  Masks are never modified after they are installed.
	mask []float32
}

// NewCanvas returns a canvas which draws onto img.  The image is not
// cleared.
func NewCanvas(img *image.RGBA, scale float64) *Canvas {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	c := &Canvas{
		img:   img,
		scale: scale,
		w:     w,
		h:     h,
		r:     NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)}),
	}
	c.state = gState{
		ctm:         matrix.Matrix{scale, 0, 0, -scale, 0, float64(h)},
		fillAlpha:   1,
		strokeAlpha: 1,
		width:       1,
		miterLimit:  defaultMiterLimit,
	}
	return c
}

// Render draws the document onto a new image.  The image size is the
// natural size of the document, multiplied by scale.
func Render(doc *svg.Document, opt *svg.Options, scale float64) (*image.RGBA, error) {
	w, h, err := doc.Size()
	if err != nil {
		return nil, err
	}
	pw := max(int(math.Ceil(w*scale-1e-6)), 1)
	ph := max(int(math.Ceil(h*scale-1e-6)), 1)
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	c := NewCanvas(img, scale)
	err = doc.Draw(c, opt)
	return img, err
}

// BBox implements [svg.Canvas].
func (c *Canvas) BBox() (viewport.Rect, bool) {
	return viewport.Rect{
		Width:  float64(c.w) / c.scale,
		Height: float64(c.h) / c.scale,
	}, c.w > 0 && c.h > 0
}

func (c *Canvas) PushGraphicsState() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) PopGraphicsState() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) Transform(m matrix.Matrix) {
	c.state.ctm = m.Mul(c.state.ctm)
}

func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(vec.Vec2{X: x, Y: y})
}

func (c *Canvas) LineTo(x, y float64) {
	c.path.LineTo(vec.Vec2{X: x, Y: y})
}

func (c *Canvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.path.CubeTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
}

func (c *Canvas) ClosePath() {
	c.path.Close()
}

func (c *Canvas) Fill()        { c.paint(true, nonZero, false) }
func (c *Canvas) FillEvenOdd() { c.paint(true, evenOdd, false) }
func (c *Canvas) Stroke()      { c.paint(false, nonZero, true) }
func (c *Canvas) EndPath()     { c.paint(false, nonZero, false) }

func (c *Canvas) FillAndStroke()        { c.paint(true, nonZero, true) }
func (c *Canvas) FillAndStrokeEvenOdd() { c.paint(true, evenOdd, true) }

func (c *Canvas) ClipNonZero() {
	c.clipping = true
	c.clipRule = nonZero
}

func (c *Canvas) ClipEvenOdd() {
	c.clipping = true
	c.clipRule = evenOdd
}

func (c *Canvas) SetFillColor(col style.Color) {
	c.state.fill = rgb(col)
}

func (c *Canvas) SetStrokeColor(col style.Color) {
	c.state.stroke = rgb(col)
}

func (c *Canvas) SetFillAlpha(alpha float64) {
	c.state.fillAlpha = float32(min(max(alpha, 0), 1))
}

func (c *Canvas) SetStrokeAlpha(alpha float64) {
	c.state.strokeAlpha = float32(min(max(alpha, 0), 1))
}

// SetFillGradient implements [svg.Canvas].  Gradients are not painted
// directly: the renderer supplies them as bands of solid colour.
func (c *Canvas) SetFillGradient(*svg.Gradient) bool { return false }

// SetStrokeGradient implements [svg.Canvas].
func (c *Canvas) SetStrokeGradient(*svg.Gradient) bool { return false }

func (c *Canvas) SetLineWidth(w float64)               { c.state.width = w }
func (c *Canvas) SetLineCap(lc graphics.LineCapStyle)  { c.state.cap = lc }
func (c *Canvas) SetLineJoin(j graphics.LineJoinStyle) { c.state.join = j }
func (c *Canvas) SetMiterLimit(limit float64)          { c.state.miterLimit = limit }

func (c *Canvas) SetLineDash(pattern []float64, phase float64) {
	c.state.dash = pattern
	c.state.dashPhase = phase
}

func rgb(col style.Color) [3]float32 {
	r, g, b := col.ToRGB()
	return [3]float32{float32(r), float32(g), float32(b)}
}

// paint consumes the current path.  A pending clip is applied after the
// painting, as in PDF.
func (c *Canvas) paint(fill bool, rule fillRule, stroke bool) {
	p := &c.path
	r := c.r
	r.Reset(r.Clip)
	r.CTM = c.state.ctm

	if fill {
		col, alpha := c.state.fill, c.state.fillAlpha
		emit := func(y, xMin int, cov []float32) { c.composite(y, xMin, cov, col, alpha) }
		if rule == evenOdd {
			r.FillEvenOdd(p, emit)
		} else {
			r.FillNonZero(p, emit)
		}
	}
	if stroke {
		r.Width = c.state.width
		r.Cap = c.state.cap
		r.Join = c.state.join
		r.MiterLimit = c.state.miterLimit
		r.Dash = c.state.dash
		r.DashPhase = c.state.dashPhase
		col, alpha := c.state.stroke, c.state.strokeAlpha
		r.Stroke(p, func(y, xMin int, cov []float32) { c.composite(y, xMin, cov, col, alpha) })
	}
	if c.clipping {
		c.intersectClip(p, c.clipRule)
		c.clipping = false
	}

	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
}

// intersectClip restricts the clip mask to the inside of p.
func (c *Canvas) intersectClip(p *path.Data, rule fillRule) {
	n := c.w * c.h
	cov := make([]float32, n)
	emit := func(y, xMin int, row []float32) {
		copy(cov[y*c.w+xMin:], row)
	}
	c.r.Reset(c.r.Clip)
	c.r.CTM = c.state.ctm
	if rule == evenOdd {
		c.r.FillEvenOdd(p, emit)
	} else {
		c.r.FillNonZero(p, emit)
	}
	if old := c.state.mask; old != nil {
		for i := range cov {
			cov[i] *= old[i]
		}
	}
	c.state.mask = cov
}

// composite blends one row of coverage values onto the image, using the
// source-over operator on premultiplied values.
func (c *Canvas) composite(y, xMin int, cov []float32, col [3]float32, alpha float32) {
	if alpha <= 0 {
		return
	}
	row := c.img.Pix[y*c.img.Stride:]
	for i, a := range cov {
		x := xMin + i
		if c.state.mask != nil {
			a *= c.state.mask[y*c.w+x]
		}
		a *= alpha
		if a <= 0 {
			continue
		}
		pix := row[4*x : 4*x+4]
		inv := 1 - a
		for k := range 3 {
			pix[k] = toByte(col[k]*a*255 + float32(pix[k])*inv)
		}
		pix[3] = toByte(a*255 + float32(pix[3])*inv)
	}
}

func toByte(v float32) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
