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

// Package style implements the styling model of SVG documents: colors and
// paints, CSS declarations and style sheets, and the computed values of
// the presentation properties.
package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/svg/internal/number"
)

// Model is the color model of a [Color].
type Model uint8

// These are the supported color models.
const (
	ModelRGB Model = iota
	ModelCMYK
)

// Color is an opaque device color.  The component values are in the
// range [0, 1].
type Color struct {
	Model  Model
	Values [4]float64
}

// RGB returns a DeviceRGB color.
func RGB(r, g, b float64) Color {
	return Color{Model: ModelRGB, Values: [4]float64{r, g, b}}
}

// CMYK returns a DeviceCMYK color.
func CMYK(c, m, y, k float64) Color {
	return Color{Model: ModelCMYK, Values: [4]float64{c, m, y, k}}
}

// Black is the initial value of the color property.
var Black = RGB(0, 0, 0)

// ToRGB converts the color to RGB.  CMYK colors use the naive conversion
// formula.
func (c Color) ToRGB() (r, g, b float64) {
	v := c.Values
	if c.Model == ModelCMYK {
		return (1 - v[0]) * (1 - v[3]), (1 - v[1]) * (1 - v[3]), (1 - v[2]) * (1 - v[3])
	}
	return v[0], v[1], v[2]
}

// Lerp interpolates between two colors.  If the models differ, the result
// is computed in RGB.
func Lerp(a, b Color, t float64) Color {
	if a.Model != b.Model {
		r0, g0, b0 := a.ToRGB()
		r1, g1, b1 := b.ToRGB()
		a, b = RGB(r0, g0, b0), RGB(r1, g1, b1)
	}
	res := Color{Model: a.Model}
	for i := range res.Values {
		res.Values[i] = a.Values[i] + t*(b.Values[i]-a.Values[i])
	}
	return res
}

// ErrColor indicates a malformed color value.
var ErrColor = errors.New("invalid color")

func colorError(s string) error {
	return fmt.Errorf("%w %q", ErrColor, s)
}

// ParseColor parses a CSS color value.  The second return value is the
// alpha component, which is 1 for all forms without explicit alpha and 0
// for "transparent".
//
// Supported forms are "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", rgb() and
// rgba() with numbers or percentages, device-cmyk() and the CSS color
// keywords.
func ParseColor(s string) (Color, float64, error) {
	s = strings.TrimSpace(s)
	low := strings.ToLower(s)
	switch {
	case low == "":
		return Color{}, 0, colorError(s)
	case low == "transparent":
		return Black, 0, nil
	case low[0] == '#':
		return parseHex(s)
	case strings.HasPrefix(low, "rgb(") || strings.HasPrefix(low, "rgba("):
		return parseRGBFunc(s)
	case strings.HasPrefix(low, "device-cmyk(") || strings.HasPrefix(low, "cmyk("):
		return parseCMYKFunc(s)
	}
	c, ok := colornames.Map[low]
	if !ok {
		return Color{}, 0, colorError(s)
	}
	return RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), 1, nil
}

func parseHex(s string) (Color, float64, error) {
	hex := s[1:]
	var digits []uint64
	switch len(hex) {
	case 3, 4:
		for i := range hex {
			d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Color{}, 0, colorError(s)
			}
			digits = append(digits, d*17)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			d, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return Color{}, 0, colorError(s)
			}
			digits = append(digits, d)
		}
	default:
		return Color{}, 0, colorError(s)
	}
	alpha := 1.0
	if len(digits) == 4 {
		alpha = float64(digits[3]) / 255
	}
	return RGB(float64(digits[0])/255, float64(digits[1])/255, float64(digits[2])/255), alpha, nil
}

// funcArgs returns the arguments of a functional notation like "rgb(...)".
func funcArgs(s string) ([]string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := strings.NewReplacer(",", " ", "/", " ").Replace(s[open+1 : len(s)-1])
	return strings.Fields(inner), true
}

// component parses a number or percentage; numbers are divided by scale.
func component(arg string, scale float64) (float64, bool) {
	if p, ok := strings.CutSuffix(arg, "%"); ok {
		x, err := number.Parse(p)
		if err != nil {
			return 0, false
		}
		return clamp(x / 100), true
	}
	x, err := number.Parse(arg)
	if err != nil {
		return 0, false
	}
	return clamp(x / scale), true
}

func clamp(x float64) float64 {
	return min(max(x, 0), 1)
}

func parseRGBFunc(s string) (Color, float64, error) {
	args, ok := funcArgs(s)
	if !ok || len(args) < 3 || len(args) > 4 {
		return Color{}, 0, colorError(s)
	}
	var v [3]float64
	for i := range v {
		v[i], ok = component(args[i], 255)
		if !ok {
			return Color{}, 0, colorError(s)
		}
	}
	alpha := 1.0
	if len(args) == 4 {
		alpha, ok = component(args[3], 1)
		if !ok {
			return Color{}, 0, colorError(s)
		}
	}
	return RGB(v[0], v[1], v[2]), alpha, nil
}

func parseCMYKFunc(s string) (Color, float64, error) {
	args, ok := funcArgs(s)
	if !ok || len(args) < 4 || len(args) > 5 {
		return Color{}, 0, colorError(s)
	}
	var v [4]float64
	for i := range v {
		v[i], ok = component(args[i], 1)
		if !ok {
			return Color{}, 0, colorError(s)
		}
	}
	alpha := 1.0
	if len(args) == 5 {
		alpha, ok = component(args[4], 1)
		if !ok {
			return Color{}, 0, colorError(s)
		}
	}
	return CMYK(v[0], v[1], v[2], v[3]), alpha, nil
}
