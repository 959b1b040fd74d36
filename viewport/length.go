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

package viewport

import (
	"errors"
	"math"
	"strings"

	"seehuhn.de/go/svg/internal/number"
)

// Unit is the unit of a [Length].
type Unit uint8

// These are the supported units.  One user unit is one CSS pixel.
const (
	UnitNone Unit = iota
	UnitPx
	UnitPt
	UnitPc
	UnitMM
	UnitCM
	UnitIn
	UnitEm
	UnitEx
	UnitRem
	UnitPercent
)

var unitNames = map[string]Unit{
	"":    UnitNone,
	"px":  UnitPx,
	"pt":  UnitPt,
	"pc":  UnitPc,
	"mm":  UnitMM,
	"cm":  UnitCM,
	"in":  UnitIn,
	"em":  UnitEm,
	"ex":  UnitEx,
	"rem": UnitRem,
	"%":   UnitPercent,
}

// Length is an SVG length or coordinate value.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a length in user units.
func Px(x float64) Length {
	return Length{Value: x}
}

// Percent returns a percentage length.
func Percent(x float64) Length {
	return Length{Value: x, Unit: UnitPercent}
}

// IsRelative reports whether the length needs a reference size or a font
// size to be resolved.
func (l Length) IsRelative() bool {
	switch l.Unit {
	case UnitEm, UnitEx, UnitRem, UnitPercent:
		return true
	}
	return false
}

var errUnit = errors.New("unknown unit")

// ParseLength parses a length such as "12", "1.5em" or "50%".
func ParseLength(s string) (Length, error) {
	t := strings.TrimSpace(s)
	n := number.Len([]byte(t))
	if n == 0 {
		return Length{}, &AttributeError{Attr: "length", Value: s}
	}
	x, err := number.Parse(t[:n])
	if err != nil {
		return Length{}, &AttributeError{Attr: "length", Value: s, Err: err}
	}
	u, ok := unitNames[strings.ToLower(t[n:])]
	if !ok {
		return Length{}, &AttributeError{Attr: "length", Value: s, Err: errUnit}
	}
	return Length{Value: x, Unit: u}, nil
}

// absolute returns the value of an absolute length in user units.
func (l Length) absolute() (float64, bool) {
	switch l.Unit {
	case UnitNone, UnitPx:
		return l.Value, true
	case UnitPt:
		return l.Value * 4 / 3, true
	case UnitPc:
		return l.Value * 16, true
	case UnitMM:
		return l.Value * 96 / 25.4, true
	case UnitCM:
		return l.Value * 96 / 2.54, true
	case UnitIn:
		return l.Value * 96, true
	}
	return 0, false
}

// Units selects the reference frame for resolving lengths.
type Units uint8

// These are the two reference frames.
const (
	UserSpaceOnUse Units = iota
	ObjectBoundingBox
)

func (u Units) String() string {
	if u == ObjectBoundingBox {
		return "objectBoundingBox"
	}
	return "userSpaceOnUse"
}

// ParseUnits parses a gradientUnits, patternUnits, clipPathUnits or
// similar attribute.  An empty value gives def.
func ParseUnits(s string, def Units) (Units, error) {
	switch strings.TrimSpace(s) {
	case "":
		return def, nil
	case "userSpaceOnUse":
		return UserSpaceOnUse, nil
	case "objectBoundingBox":
		return ObjectBoundingBox, nil
	}
	return def, &AttributeError{Attr: "units", Value: s}
}

// Resolver converts lengths into user units.
//
// With [UserSpaceOnUse], percentages refer to the viewport.  With
// [ObjectBoundingBox], numbers and percentages are fractions of the
// bounding box, and coordinates are offset by the bounding box origin.
type Resolver struct {
	Units    Units
	Viewport Rect
	BBox     *Rect

	// FontSize is used for em and ex units, RootFontSize for rem.
	FontSize     float64
	RootFontSize float64
}

// X resolves a horizontal coordinate.
func (r *Resolver) X(l Length) (float64, error) {
	if r.Units == ObjectBoundingBox {
		if r.BBox == nil {
			return 0, ErrNoBoundingBox
		}
		return r.BBox.X + r.fraction(l)*r.BBox.Width, nil
	}
	return r.user(l, r.Viewport.Width), nil
}

// Y resolves a vertical coordinate.
func (r *Resolver) Y(l Length) (float64, error) {
	if r.Units == ObjectBoundingBox {
		if r.BBox == nil {
			return 0, ErrNoBoundingBox
		}
		return r.BBox.Y + r.fraction(l)*r.BBox.Height, nil
	}
	return r.user(l, r.Viewport.Height), nil
}

// Width resolves a horizontal length.
func (r *Resolver) Width(l Length) (float64, error) {
	if r.Units == ObjectBoundingBox {
		if r.BBox == nil {
			return 0, ErrNoBoundingBox
		}
		return r.fraction(l) * r.BBox.Width, nil
	}
	return r.user(l, r.Viewport.Width), nil
}

// Height resolves a vertical length.
func (r *Resolver) Height(l Length) (float64, error) {
	if r.Units == ObjectBoundingBox {
		if r.BBox == nil {
			return 0, ErrNoBoundingBox
		}
		return r.fraction(l) * r.BBox.Height, nil
	}
	return r.user(l, r.Viewport.Height), nil
}

// Other resolves a length which is neither horizontal nor vertical, for
// example a radius or a stroke width.  Percentages refer to the
// normalized diagonal sqrt((w²+h²)/2).
func (r *Resolver) Other(l Length) (float64, error) {
	if r.Units == ObjectBoundingBox {
		if r.BBox == nil {
			return 0, ErrNoBoundingBox
		}
		return r.fraction(l) * diagonal(*r.BBox), nil
	}
	return r.user(l, diagonal(r.Viewport)), nil
}

func diagonal(b Rect) float64 {
	return math.Sqrt((b.Width*b.Width + b.Height*b.Height) / 2)
}

func (r *Resolver) user(l Length, ref float64) float64 {
	if x, ok := l.absolute(); ok {
		return x
	}
	switch l.Unit {
	case UnitPercent:
		return l.Value / 100 * ref
	case UnitEm:
		return l.Value * r.fontSize()
	case UnitEx:
		return l.Value * r.fontSize() / 2
	case UnitRem:
		root := r.RootFontSize
		if root <= 0 {
			root = DefaultFontSize
		}
		return l.Value * root
	}
	return l.Value
}

func (r *Resolver) fraction(l Length) float64 {
	if l.Unit == UnitPercent {
		return l.Value / 100
	}
	return r.user(l, 1)
}

func (r *Resolver) fontSize() float64 {
	if r.FontSize > 0 {
		return r.FontSize
	}
	return DefaultFontSize
}
