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

var pathCases = []TestCase{
	{
		Name:   "absolute",
		SVG:    doc(40, 40, `<path d="M10 10 H30 V30 H10 Z"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, black),
			sample(5, 20, transparent),
		},
	},
	{
		Name:   "relative",
		SVG:    doc(40, 40, `<path d="m10 10 h20 v20 h-20 z"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, black),
			sample(35, 20, transparent),
		},
	},
	{
		Name:   "implicit_lineto",
		SVG:    doc(40, 40, `<path d="M10 10 30 10 30 30 10 30z"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, black),
			sample(20, 35, transparent),
		},
	},
	{
		Name:   "arc",
		SVG:    doc(40, 40, `<path d="M0 20 A20 20 0 0 1 40 20 Z" fill="red"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 10, red),
			sample(20, 30, transparent),
			sample(2, 2, transparent),
		},
	},
	{
		Name:   "quadratic",
		SVG:    doc(40, 40, `<path d="M0 40 Q20 -40 40 40 Z"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 30, black),
			sample(2, 2, transparent),
		},
	},
	{
		Name:   "smooth_cubic",
		SVG:    doc(40, 40, `<path d="M0 20 C0 0 20 0 20 20 S40 40 40 20 V40 H0 Z"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 10, black),
			sample(30, 25, transparent),
			sample(20, 38, black),
		},
	},
	{
		Name:   "nonzero",
		SVG:    doc(40, 40, `<path d="M0 0 H40 V40 H0 Z M10 10 H30 V30 H10 Z"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(5, 5, black),
			sample(20, 20, black),
		},
	},
	{
		Name:   "evenodd",
		SVG:    doc(40, 40, `<path fill-rule="evenodd" d="M0 0 H40 V40 H0 Z M10 10 H30 V30 H10 Z"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(5, 5, black),
			sample(20, 20, transparent),
		},
	},
}
