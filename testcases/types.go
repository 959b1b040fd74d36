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

// Package testcases holds a catalogue of small SVG documents, together
// with the expected colours of selected pixels.
//
// The documents are rendered at one pixel per CSS pixel.  Samples are
// placed away from shape edges, so that anti-aliasing does not affect
// the expected values.
package testcases

import (
	"fmt"
	"image/color"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string  // lowercase a-z and _ only
	SVG    string  // the complete document
	Width  int     // natural width in pixels
	Height int     // natural height in pixels
	Samples []Sample // expected pixel values
}

// Sample gives the expected colour of one pixel.
type Sample struct {
	X, Y  int
	Color color.NRGBA

	// Tol is the largest allowed difference per channel.
	Tol uint8
}

// Check compares the sample against a rendered pixel.
func (p Sample) Check(got color.Color) error {
	c := color.NRGBAModel.Convert(got).(color.NRGBA)
	if c.A == 0 && p.Color.A == 0 {
		return nil
	}
	want := p.Color
	if diff(c.R, want.R) > p.Tol || diff(c.G, want.G) > p.Tol ||
		diff(c.B, want.B) > p.Tol || diff(c.A, want.A) > p.Tol {
		return fmt.Errorf("pixel (%d,%d): got %v, want %v", p.X, p.Y, c, want)
	}
	return nil
}

func diff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// doc wraps the body of a test document in an <svg> element of the given
// size.
func doc(width, height int, body string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d">%s</svg>`,
		width, height, body)
}

// sample is a helper to create an exact Sample.
func sample(x, y int, c color.NRGBA) Sample {
	return Sample{X: x, Y: y, Color: c}
}

var (
	transparent = color.NRGBA{}
	black       = color.NRGBA{A: 255}
	red         = color.NRGBA{R: 255, A: 255}
	lime        = color.NRGBA{G: 255, A: 255}
	green       = color.NRGBA{G: 128, A: 255}
	blue        = color.NRGBA{B: 255, A: 255}
)
