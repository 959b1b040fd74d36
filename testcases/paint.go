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

package testcases

import "image/color"

var paintCases = []TestCase{
	{
		Name:   "fill_opacity",
		SVG:    doc(40, 40, `<rect width="40" height="40" fill="red" fill-opacity="0.5"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			{X: 20, Y: 20, Color: color.NRGBA{R: 255, A: 128}, Tol: 2},
		},
	},
	{
		Name:   "group_opacity",
		SVG:    doc(40, 40, `<g opacity="0.5"><rect width="20" height="40" fill="blue"/></g><rect x="20" width="20" height="40" fill="blue" opacity="0.5"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			{X: 10, Y: 20, Color: color.NRGBA{B: 255, A: 128}, Tol: 2},
			{X: 30, Y: 20, Color: color.NRGBA{B: 255, A: 128}, Tol: 2},
		},
	},
	{
		Name:   "stroke",
		SVG:    doc(40, 40, `<rect x="10" y="10" width="20" height="20" fill="none" stroke="red" stroke-width="4"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 20, red),
			sample(29, 20, red),
			sample(20, 20, transparent),
			sample(3, 20, transparent),
		},
	},
	{
		Name:   "fill_and_stroke",
		SVG:    doc(40, 40, `<circle cx="20" cy="20" r="12" fill="lime" stroke="blue" stroke-width="6"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, lime),
			sample(20, 7, blue),
			sample(20, 1, transparent),
		},
	},
	{
		Name:   "dasharray",
		SVG:    doc(40, 10, `<line x1="0" y1="5" x2="40" y2="5" stroke="black" stroke-width="10" stroke-dasharray="10"/>`),
		Width:  40,
		Height: 10,
		Samples: []Sample{
			sample(5, 5, black),
			sample(15, 5, transparent),
			sample(25, 5, black),
			sample(35, 5, transparent),
		},
	},
	{
		Name:   "current_color",
		SVG:    doc(40, 40, `<g color="green"><rect width="40" height="40" fill="currentColor"/></g>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, green),
		},
	},
	{
		Name: "linear_gradient",
		SVG: doc(100, 10, `<defs><linearGradient id="g">`+
			`<stop offset="0" stop-color="black"/><stop offset="1" stop-color="white"/>`+
			`</linearGradient></defs><rect width="100" height="10" fill="url(#g)"/>`),
		Width:  100,
		Height: 10,
		Samples: []Sample{
			{X: 5, Y: 5, Color: color.NRGBA{R: 14, G: 14, B: 14, A: 255}, Tol: 3},
			{X: 50, Y: 5, Color: color.NRGBA{R: 129, G: 129, B: 129, A: 255}, Tol: 3},
			{X: 94, Y: 5, Color: color.NRGBA{R: 241, G: 241, B: 241, A: 255}, Tol: 3},
		},
	},
	{
		Name: "radial_gradient",
		SVG: doc(40, 40, `<radialGradient id="r">`+
			`<stop offset="0" stop-color="red"/><stop offset="1" stop-color="blue"/>`+
			`</radialGradient><rect width="40" height="40" fill="url(#r)"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(1, 1, blue),
			sample(38, 38, blue),
		},
	},
	{
		Name: "pattern",
		SVG: doc(40, 40, `<pattern id="p" width="10" height="10" patternUnits="userSpaceOnUse">`+
			`<rect width="5" height="5"/></pattern><rect width="40" height="40" fill="url(#p)"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(2, 2, black),
			sample(7, 7, transparent),
			sample(12, 2, black),
			sample(17, 17, transparent),
			sample(32, 32, black),
		},
	},
	{
		Name:   "paint_fallback",
		SVG:    doc(40, 40, `<rect width="40" height="40" fill="url(#missing) red"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, red),
		},
	},
}
