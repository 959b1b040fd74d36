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
	"errors"
	"log/slog"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

// renderer holds the state of one call to [Document.Draw].
type renderer struct {
	doc *Document
	c   Canvas
	opt *Options
	log *slog.Logger
	vp  *viewport.Context

	// initial is the style of the (virtual) parent of the root element.
	initial *state

	// active holds the elements which are currently being expanded via a
	// reference.  Meeting one of them again means the references form a
	// cycle.
	active map[Handle]bool
}

// state is the inherited drawing state of an element.
type state struct {
	style *style.Computed

	// alpha is the product of the opacity values of the element and all
	// its ancestors.
	alpha float64
}

// Draw renders the document onto c.
//
// The outermost viewport is given by c.BBox; if the canvas has no
// bounding box, [viewport.ErrNoBoundingBox] is returned.  Malformed
// attributes abort drawing with an [*ElementError].
func (d *Document) Draw(c Canvas, opt *Options) error {
	opt = opt.withDefaults()
	frame, ok := c.BBox()
	if !ok || frame.IsEmpty() {
		return viewport.ErrNoBoundingBox
	}

	r := &renderer{
		doc:    d,
		c:      c,
		opt:    opt,
		log:    opt.Logger,
		vp:     viewport.NewContext(),
		active: make(map[Handle]bool),
	}
	if opt.ErrorMode != IgnoreErrors {
		for _, err := range d.warnings {
			r.log.Warn("svg: parse problem", "err", err)
		}
	}

	initial := style.Initial()
	initial.FontSize = opt.FontSize
	r.initial = &state{style: initial, alpha: 1}
	r.vp.RootFontSize = opt.FontSize
	r.vp.Push(viewport.Rect{Width: frame.Width, Height: frame.Height})

	c.PushGraphicsState()
	defer c.PopGraphicsState()
	c.Transform(viewport.RootTransform(frame))

	return r.drawElement(d.Root(), r.initial)
}

// drawElement draws h and its descendants.
func (r *renderer) drawElement(h Handle, parent *state) error {
	st := r.derive(h, parent, true)
	if !st.style.Display {
		return nil
	}

	tag := r.doc.nodes[h].tag
	switch tag {
	case "svg":
		return r.drawSVG(h, st, nil, nil)
	case "g", "a":
		return r.drawGroup(h, st)
	case "switch":
		return r.drawSwitch(h, st)
	case "use":
		return r.drawUse(h, st)
	case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
		return r.drawShape(h, st)
	}
	if unsupportedTags[tag] {
		return r.unsupported(h)
	}
	// Everything else is either not rendered directly (defs, gradients,
	// ...), or unknown and ignored.
	return nil
}

var unsupportedTags = map[string]bool{
	"text":          true,
	"tspan":         true,
	"textPath":      true,
	"image":         true,
	"foreignObject": true,
	"video":         true,
	"audio":         true,
}

// renderable lists the elements which draw something when they are
// encountered in the document tree.
var renderable = map[string]bool{
	"svg":      true,
	"g":        true,
	"a":        true,
	"switch":   true,
	"use":      true,
	"path":     true,
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
}

// derive computes the state of element h, given the state of its parent.
func (r *renderer) derive(h Handle, parent *state, report bool) *state {
	cs, errs := parent.style.Derive(r.doc.nodes[h].decls)
	if report {
		for _, err := range errs {
			r.warn(h, "invalid style ignored", err)
		}
	}
	return &state{style: cs, alpha: parent.alpha * cs.Opacity}
}

// styleOf computes the state of h from its ancestors in the document,
// independent of where it is referenced from.  This is used for the
// content of markers, patterns, clip paths and gradient stops.
func (r *renderer) styleOf(h Handle) *state {
	var chain []Handle
	for ; h != NoHandle; h = r.doc.nodes[h].parent {
		chain = append(chain, h)
	}
	st := r.initial
	for i := len(chain) - 1; i >= 0; i-- {
		st = r.derive(chain[i], st, false)
	}
	return st
}

func (r *renderer) drawChildren(h Handle, st *state) error {
	for _, child := range r.doc.nodes[h].children {
		if err := r.drawElement(child, st); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) drawGroup(h Handle, st *state) error {
	ok, err := r.begin(h, st, func() (viewport.Rect, bool, error) {
		return r.childrenBBox(h, st)
	})
	defer r.c.PopGraphicsState()
	if err != nil || !ok {
		return err
	}
	return r.drawChildren(h, st)
}

// drawSwitch draws the first direct child which can be rendered.
func (r *renderer) drawSwitch(h Handle, st *state) error {
	ok, err := r.begin(h, st, func() (viewport.Rect, bool, error) {
		return r.childrenBBox(h, st)
	})
	defer r.c.PopGraphicsState()
	if err != nil || !ok {
		return err
	}
	for _, child := range r.doc.nodes[h].children {
		n := &r.doc.nodes[child]
		if !renderable[n.tag] {
			continue
		}
		if ext, ok := n.attrs["requiredExtensions"]; ok && strings.TrimSpace(ext) != "" {
			continue
		}
		return r.drawElement(child, st)
	}
	return nil
}

// bboxFunc computes the bounding box of an element in its own user space,
// on demand.  The second return value is false if the element has no
// geometry.
type bboxFunc func() (viewport.Rect, bool, error)

// begin starts drawing element h: it saves the graphics state, applies the
// transform attribute, and applies the clip path.  The caller must always
// call PopGraphicsState afterwards.  If the result is false, the element
// is clipped away entirely and nothing should be drawn.
func (r *renderer) begin(h Handle, st *state, bbox bboxFunc) (bool, error) {
	r.c.PushGraphicsState()
	m, err := r.transformAttr(h, "transform")
	if err != nil {
		return false, err
	}
	if m != matrix.Identity {
		r.c.Transform(m)
	}
	if st.style.Mask != "" {
		if mask, ok := r.doc.Lookup(st.style.Mask); ok {
			if err := r.unsupported(mask); err != nil {
				return false, err
			}
		}
	}
	if st.style.ClipPath == "" {
		return true, nil
	}
	return r.applyClipPath(h, st, bbox)
}

func (r *renderer) transformAttr(h Handle, name string) (matrix.Matrix, error) {
	s, ok := r.doc.nodes[h].attrs[name]
	if !ok {
		return matrix.Identity, nil
	}
	m, err := viewport.ParseTransform(s)
	if err != nil {
		return matrix.Identity, r.attrError(h, name, err)
	}
	return m, nil
}

func (r *renderer) attrError(h Handle, attr string, err error) error {
	var elemErr *ElementError
	if errors.As(err, &elemErr) {
		return err
	}
	return &ElementError{Path: r.doc.path(h), Attr: attr, Err: err}
}

// unsupported handles an element which cannot be rendered, according to
// the error mode.
func (r *renderer) unsupported(h Handle) error {
	switch r.opt.ErrorMode {
	case StrictErrors:
		return &ElementError{Path: r.doc.path(h), Err: ErrUnsupported}
	case WarnErrors:
		r.log.Warn("svg: element not rendered", "element", r.doc.path(h))
	}
	return nil
}

// warn logs a problem which does not stop drawing.
func (r *renderer) warn(h Handle, msg string, err error) {
	if r.opt.ErrorMode == IgnoreErrors {
		return
	}
	if err != nil {
		r.log.Warn("svg: "+msg, "element", r.doc.path(h), "err", err)
	} else {
		r.log.Warn("svg: "+msg, "element", r.doc.path(h))
	}
}

// enter marks h as being expanded.  It fails if h is already active.
func (r *renderer) enter(from, h Handle, attr string) error {
	if r.active[h] {
		return r.attrError(from, attr, ErrCircularReference)
	}
	r.active[h] = true
	return nil
}

func (r *renderer) leave(h Handle) {
	delete(r.active, h)
}

func translate(x, y float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, x, y}
}

func scale(sx, sy float64) matrix.Matrix {
	return matrix.Matrix{sx, 0, 0, sy, 0, 0}
}

// bboxMatrix maps the unit square onto b.
func bboxMatrix(b viewport.Rect) matrix.Matrix {
	return matrix.Matrix{b.Width, 0, 0, b.Height, b.X, b.Y}
}
