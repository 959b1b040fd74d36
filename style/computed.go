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

package style

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svg/internal/number"
	"seehuhn.de/go/svg/viewport"
)

// FillRule selects the rule for the interior of a path.
type FillRule uint8

// These are the two fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// Computed holds the computed values of the presentation properties of one
// element.
type Computed struct {
	// Inherited properties.

	Color         Color
	Fill          Paint
	FillOpacity   float64
	FillRule      FillRule
	Stroke        Paint
	StrokeOpacity float64
	StrokeWidth   viewport.Length
	LineCap       graphics.LineCapStyle
	LineJoin      graphics.LineJoinStyle
	MiterLimit    float64
	DashArray     []viewport.Length // nil for solid lines
	DashOffset    viewport.Length
	ClipRule      FillRule
	Visible       bool
	FontSize      float64 // in user units

	// MarkerStart, MarkerMid and MarkerEnd are the ids of the marker
	// elements, or "" for none.
	MarkerStart string
	MarkerMid   string
	MarkerEnd   string

	// Properties which are not inherited.

	Display     bool // false for "display: none"
	Opacity     float64
	ClipPath    string // id of the clipPath element, or ""
	Mask        string // id of the mask element, or ""
	StopColor   Color
	StopOpacity float64

	// Overflow is "visible", "hidden", or "" if not specified.
	Overflow string
}

// Initial returns the initial values of all properties, as used for the
// root element.
func Initial() *Computed {
	return &Computed{
		Color:         Black,
		Fill:          SolidPaint(Black),
		FillOpacity:   1,
		Stroke:        NoPaint,
		StrokeOpacity: 1,
		StrokeWidth:   viewport.Px(1),
		LineCap:       graphics.LineCapButt,
		LineJoin:      graphics.LineJoinMiter,
		MiterLimit:    4,
		Visible:       true,
		FontSize:      viewport.DefaultFontSize,
		Display:       true,
		Opacity:       1,
		StopColor:     Black,
		StopOpacity:   1,
	}
}

// propertyNames lists the properties which can also be given as
// presentation attributes.
var propertyNames = map[string]bool{
	"clip-path":         true,
	"clip-rule":         true,
	"color":             true,
	"display":           true,
	"fill":              true,
	"fill-opacity":      true,
	"fill-rule":         true,
	"font-size":         true,
	"marker":            true,
	"marker-end":        true,
	"marker-mid":        true,
	"marker-start":      true,
	"mask":              true,
	"opacity":           true,
	"overflow":          true,
	"stop-color":        true,
	"stop-opacity":      true,
	"stroke":            true,
	"stroke-dasharray":  true,
	"stroke-dashoffset": true,
	"stroke-linecap":    true,
	"stroke-linejoin":   true,
	"stroke-miterlimit": true,
	"stroke-opacity":    true,
	"stroke-width":      true,
	"visibility":        true,
}

// IsProperty reports whether name is a presentation property known to
// this package.
func IsProperty(name string) bool {
	return propertyNames[name]
}

// ErrValue indicates a property value which cannot be parsed.
var ErrValue = errors.New("invalid property value")

// PropertyError reports an invalid declaration.  Invalid declarations are
// ignored, as in CSS.
type PropertyError struct {
	Property string
	Value    string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s: invalid value %q: %v", e.Property, e.Value, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// Derive computes the style of a child element from the style of its
// parent c and the cascaded declarations of the child.  Declarations with
// invalid values are ignored; they are reported via the returned errors.
func (c *Computed) Derive(decls map[string]string) (*Computed, []error) {
	res := *c
	res.Display = true
	res.Opacity = 1
	res.ClipPath = ""
	res.Mask = ""
	res.StopColor = Black
	res.StopOpacity = 1
	res.Overflow = ""
	if c.DashArray != nil {
		res.DashArray = append([]viewport.Length(nil), c.DashArray...)
	}

	// font-size first, since other values may be relative to it
	var errs []error
	if v, ok := decls["font-size"]; ok {
		if err := res.set(c, "font-size", v); err != nil {
			errs = append(errs, err)
		}
	}
	if v, ok := decls["color"]; ok {
		if err := res.set(c, "color", v); err != nil {
			errs = append(errs, err)
		}
	}
	if v, ok := decls["marker"]; ok {
		for _, name := range []string{"marker-start", "marker-mid", "marker-end"} {
			if err := res.set(c, name, v); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for _, name := range sortedProperties {
		v, ok := decls[name]
		if !ok || name == "font-size" || name == "color" || name == "marker" {
			continue
		}
		if err := res.set(c, name, v); err != nil {
			errs = append(errs, err)
		}
	}
	return &res, errs
}

var sortedProperties = func() []string {
	var res []string
	for name := range propertyNames {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}()

func (c *Computed) set(parent *Computed, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "inherit" {
		c.inherit(parent, name)
		return nil
	}
	err := c.parse(name, value)
	if err != nil {
		return &PropertyError{Property: name, Value: value, Err: err}
	}
	return nil
}

func (c *Computed) inherit(p *Computed, name string) {
	switch name {
	case "display":
		c.Display = p.Display
	case "opacity":
		c.Opacity = p.Opacity
	case "clip-path":
		c.ClipPath = p.ClipPath
	case "mask":
		c.Mask = p.Mask
	case "stop-color":
		c.StopColor = p.StopColor
	case "stop-opacity":
		c.StopOpacity = p.StopOpacity
	case "overflow":
		c.Overflow = p.Overflow
	}
	// inherited properties already hold the parent's value
}

func (c *Computed) parse(name, v string) error {
	switch name {
	case "color":
		col, _, err := ParseColor(v)
		if err != nil {
			return err
		}
		c.Color = col
	case "fill":
		p, err := ParsePaint(v)
		if err != nil {
			return err
		}
		c.Fill = p
	case "stroke":
		p, err := ParsePaint(v)
		if err != nil {
			return err
		}
		c.Stroke = p
	case "fill-opacity":
		return parseOpacity(v, &c.FillOpacity)
	case "stroke-opacity":
		return parseOpacity(v, &c.StrokeOpacity)
	case "opacity":
		return parseOpacity(v, &c.Opacity)
	case "stop-opacity":
		return parseOpacity(v, &c.StopOpacity)
	case "stop-color":
		if v == "currentColor" {
			c.StopColor = c.Color
			return nil
		}
		col, alpha, err := ParseColor(v)
		if err != nil {
			return err
		}
		c.StopColor = col
		if alpha < 1 {
			c.StopOpacity *= alpha
		}
	case "fill-rule":
		return parseRule(v, &c.FillRule)
	case "clip-rule":
		return parseRule(v, &c.ClipRule)
	case "stroke-width":
		l, err := viewport.ParseLength(v)
		if err != nil {
			return err
		}
		if l.Value < 0 {
			return ErrValue
		}
		c.StrokeWidth = l
	case "stroke-linecap":
		switch v {
		case "butt":
			c.LineCap = graphics.LineCapButt
		case "round":
			c.LineCap = graphics.LineCapRound
		case "square":
			c.LineCap = graphics.LineCapSquare
		default:
			return ErrValue
		}
	case "stroke-linejoin":
		switch v {
		case "miter", "miter-clip", "arcs":
			c.LineJoin = graphics.LineJoinMiter
		case "round":
			c.LineJoin = graphics.LineJoinRound
		case "bevel":
			c.LineJoin = graphics.LineJoinBevel
		default:
			return ErrValue
		}
	case "stroke-miterlimit":
		x, err := number.Parse(v)
		if err != nil || x < 1 {
			return ErrValue
		}
		c.MiterLimit = x
	case "stroke-dasharray":
		return c.parseDashArray(v)
	case "stroke-dashoffset":
		l, err := viewport.ParseLength(v)
		if err != nil {
			return err
		}
		c.DashOffset = l
	case "visibility":
		switch v {
		case "visible":
			c.Visible = true
		case "hidden", "collapse":
			c.Visible = false
		default:
			return ErrValue
		}
	case "display":
		c.Display = v != "none"
	case "font-size":
		return c.parseFontSize(v)
	case "marker-start":
		return parseRef(v, &c.MarkerStart)
	case "marker-mid":
		return parseRef(v, &c.MarkerMid)
	case "marker-end":
		return parseRef(v, &c.MarkerEnd)
	case "clip-path":
		return parseRef(v, &c.ClipPath)
	case "mask":
		return parseRef(v, &c.Mask)
	case "overflow":
		switch v {
		case "visible", "auto":
			c.Overflow = "visible"
		case "hidden", "scroll", "clip":
			c.Overflow = "hidden"
		default:
			return ErrValue
		}
	}
	return nil
}

func parseOpacity(v string, dst *float64) error {
	x, err := number.Parse(strings.TrimSuffix(v, "%"))
	if err != nil {
		return ErrValue
	}
	if strings.HasSuffix(v, "%") {
		x /= 100
	}
	*dst = clamp(x)
	return nil
}

func parseRule(v string, dst *FillRule) error {
	switch v {
	case "nonzero":
		*dst = NonZero
	case "evenodd":
		*dst = EvenOdd
	default:
		return ErrValue
	}
	return nil
}

func parseRef(v string, dst *string) error {
	if v == "none" {
		*dst = ""
		return nil
	}
	id, ok := ParseURL(v)
	if !ok {
		return ErrValue
	}
	*dst = id
	return nil
}

func (c *Computed) parseDashArray(v string) error {
	if v == "none" {
		c.DashArray = nil
		return nil
	}
	fields := strings.Fields(strings.ReplaceAll(v, ",", " "))
	res := make([]viewport.Length, 0, len(fields))
	for _, f := range fields {
		l, err := viewport.ParseLength(f)
		if err != nil {
			return err
		}
		if l.Value < 0 {
			return ErrValue
		}
		res = append(res, l)
	}
	if len(res) == 0 {
		return ErrValue
	}
	c.DashArray = res
	return nil
}

var fontKeywords = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

func (c *Computed) parseFontSize(v string) error {
	if x, ok := fontKeywords[v]; ok {
		c.FontSize = x
		return nil
	}
	switch v {
	case "smaller":
		c.FontSize /= 1.2
		return nil
	case "larger":
		c.FontSize *= 1.2
		return nil
	}
	l, err := viewport.ParseLength(v)
	if err != nil {
		return err
	}
	if l.Value < 0 {
		return ErrValue
	}
	r := viewport.Resolver{FontSize: c.FontSize}
	switch l.Unit {
	case viewport.UnitPercent:
		c.FontSize = c.FontSize * l.Value / 100
	default:
		c.FontSize, _ = r.Width(l)
	}
	return nil
}
