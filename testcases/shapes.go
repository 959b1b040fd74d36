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

var shapeCases = []TestCase{
	{
		Name:   "rect",
		SVG:    doc(40, 40, `<rect x="10" y="10" width="20" height="20" fill="red"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, red),
			sample(5, 5, transparent),
			sample(35, 35, transparent),
		},
	},
	{
		Name:   "rounded_rect",
		SVG:    doc(40, 40, `<rect width="40" height="40" rx="15" fill="blue"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(1, 1, transparent),
			sample(38, 38, transparent),
			sample(20, 1, blue),
			sample(20, 20, blue),
		},
	},
	{
		Name:   "circle",
		SVG:    doc(40, 40, `<circle cx="20" cy="20" r="15" fill="lime"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, lime),
			sample(33, 20, lime),
			sample(37, 20, transparent),
			sample(3, 3, transparent),
		},
	},
	{
		Name:   "ellipse",
		SVG:    doc(60, 40, `<ellipse cx="30" cy="20" rx="25" ry="10"/>`),
		Width:  60,
		Height: 40,
		Samples: []Sample{
			sample(30, 20, black),
			sample(8, 20, black),
			sample(30, 5, transparent),
			sample(30, 34, transparent),
		},
	},
	{
		Name:   "line",
		SVG:    doc(40, 40, `<line x1="0" y1="20" x2="40" y2="20" stroke="black" stroke-width="10"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, black),
			sample(20, 16, black),
			sample(20, 10, transparent),
			sample(20, 30, transparent),
		},
	},
	{
		Name:   "polygon",
		SVG:    doc(40, 40, `<polygon points="0,0 40,0 0,40"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(5, 5, black),
			sample(35, 35, transparent),
		},
	},
	{
		Name:   "polyline",
		SVG:    doc(40, 40, `<polyline points="0 0 40 0 40 40"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(35, 5, black),
			sample(5, 35, transparent),
		},
	},
	{
		Name:   "zero_size",
		SVG:    doc(40, 40, `<rect width="0" height="20"/><circle cx="20" cy="20" r="0"/><rect x="30" y="30" width="10" height="10"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(0, 10, transparent),
			sample(20, 20, transparent),
			sample(35, 35, black),
		},
	},
}
