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
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

// Size returns the intrinsic size of the document in user units (CSS
// pixels).
//
// Absolute width and height attributes of the outermost <svg> element are
// used where present.  A missing dimension is taken from the viewBox,
// keeping its aspect ratio, or, if there is no viewBox, from the extent
// of the drawn content.  If none of these give a size,
// [viewport.ErrNoBoundingBox] is returned.
func (d *Document) Size() (width, height float64, err error) {
	attrs := d.nodes[d.Root()].attrs
	width, wOK, err := absoluteLength(attrs["width"])
	if err != nil {
		return 0, 0, &ElementError{Path: d.path(d.Root()), Attr: "width", Err: err}
	}
	height, hOK, err := absoluteLength(attrs["height"])
	if err != nil {
		return 0, 0, &ElementError{Path: d.path(d.Root()), Attr: "height", Err: err}
	}
	if wOK && hOK {
		return width, height, nil
	}

	if s := strings.TrimSpace(attrs["viewBox"]); s != "" {
		vb, ok, err := viewport.ParseViewBox(s)
		if err != nil {
			return 0, 0, &ElementError{Path: d.path(d.Root()), Attr: "viewBox", Err: err}
		}
		if ok {
			switch {
			case wOK:
				height = width * vb.Height / vb.Width
			case hOK:
				width = height * vb.Width / vb.Height
			default:
				width, height = vb.Width, vb.Height
			}
			return width, height, nil
		}
	}

	bc := newBBoxCanvas(viewport.Rect{Width: 300, Height: 150})
	if err := d.Draw(bc, nil); err != nil {
		return 0, 0, err
	}
	if !bc.have {
		return 0, 0, viewport.ErrNoBoundingBox
	}
	// undo the flip of the y-axis
	if !wOK {
		width = bc.x1
	}
	if !hOK {
		height = bc.frame.Height - bc.y0
	}
	if width <= 0 || height <= 0 {
		return 0, 0, viewport.ErrNoBoundingBox
	}
	return width, height, nil
}

// absoluteLength parses a width or height attribute.  The second return
// value is false if the attribute is missing or is a percentage.
func absoluteLength(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return 0, false, nil
	}
	l, err := viewport.ParseLength(s)
	if err != nil {
		return 0, false, err
	}
	if l.Unit == viewport.UnitPercent {
		return 0, false, nil
	}
	res := &viewport.Resolver{FontSize: viewport.DefaultFontSize}
	x, err := res.Width(l)
	if err != nil || x <= 0 {
		return 0, false, err
	}
	return x, true, nil
}

// bboxCanvas is a Canvas which records the extent of everything painted.
// Control points of curves are included, so the result may be slightly
// too large.
type bboxCanvas struct {
	frame viewport.Rect
	ctm   matrix.Matrix
	stack []matrix.Matrix

	pending []vec.Vec2

	have           bool
	x0, y0, x1, y1 float64
}

func newBBoxCanvas(frame viewport.Rect) *bboxCanvas {
	return &bboxCanvas{frame: frame, ctm: matrix.Identity}
}

func (c *bboxCanvas) BBox() (viewport.Rect, bool) {
	return c.frame, true
}

func (c *bboxCanvas) PushGraphicsState() {
	c.stack = append(c.stack, c.ctm)
}

func (c *bboxCanvas) PopGraphicsState() {
	n := len(c.stack) - 1
	c.ctm = c.stack[n]
	c.stack = c.stack[:n]
}

func (c *bboxCanvas) Transform(m matrix.Matrix) {
	c.ctm = m.Mul(c.ctm)
}

func (c *bboxCanvas) add(x, y float64) {
	c.pending = append(c.pending, viewport.Apply(c.ctm, vec.Vec2{X: x, Y: y}))
}

func (c *bboxCanvas) MoveTo(x, y float64) { c.add(x, y) }
func (c *bboxCanvas) LineTo(x, y float64) { c.add(x, y) }

func (c *bboxCanvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.add(x1, y1)
	c.add(x2, y2)
	c.add(x3, y3)
}

func (c *bboxCanvas) ClosePath() {}

func (c *bboxCanvas) paint() {
	for _, p := range c.pending {
		if !c.have {
			c.x0, c.y0, c.x1, c.y1 = p.X, p.Y, p.X, p.Y
			c.have = true
			continue
		}
		c.x0 = min(c.x0, p.X)
		c.y0 = min(c.y0, p.Y)
		c.x1 = max(c.x1, p.X)
		c.y1 = max(c.y1, p.Y)
	}
	c.pending = c.pending[:0]
}

func (c *bboxCanvas) Fill()                 { c.paint() }
func (c *bboxCanvas) FillEvenOdd()          { c.paint() }
func (c *bboxCanvas) Stroke()               { c.paint() }
func (c *bboxCanvas) FillAndStroke()        { c.paint() }
func (c *bboxCanvas) FillAndStrokeEvenOdd() { c.paint() }
func (c *bboxCanvas) EndPath()              { c.pending = c.pending[:0] }
func (c *bboxCanvas) ClipNonZero()          {}
func (c *bboxCanvas) ClipEvenOdd()          {}

func (c *bboxCanvas) SetFillColor(style.Color)           {}
func (c *bboxCanvas) SetStrokeColor(style.Color)         {}
func (c *bboxCanvas) SetFillAlpha(float64)               {}
func (c *bboxCanvas) SetStrokeAlpha(float64)             {}
func (c *bboxCanvas) SetFillGradient(*Gradient) bool     { return true }
func (c *bboxCanvas) SetStrokeGradient(*Gradient) bool   { return true }
func (c *bboxCanvas) SetLineWidth(float64)               {}
func (c *bboxCanvas) SetLineCap(graphics.LineCapStyle)   {}
func (c *bboxCanvas) SetLineJoin(graphics.LineJoinStyle) {}
func (c *bboxCanvas) SetMiterLimit(float64)              {}
func (c *bboxCanvas) SetLineDash([]float64, float64)     {}
