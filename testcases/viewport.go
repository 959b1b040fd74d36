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

var viewportCases = []TestCase{
	{
		Name: "viewbox_scale",
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" width="40" height="40" viewBox="0 0 10 10">` +
			`<rect width="5" height="5" fill="red"/></svg>`,
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 10, red),
			sample(30, 30, transparent),
		},
	},
	{
		Name: "viewbox_meet",
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" width="80" height="40" viewBox="0 0 10 10">` +
			`<rect width="10" height="10" fill="blue"/></svg>`,
		Width:  80,
		Height: 40,
		Samples: []Sample{
			sample(40, 20, blue),
			sample(10, 20, transparent),
			sample(70, 20, transparent),
		},
	},
	{
		Name: "viewbox_slice",
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" width="80" height="40" viewBox="0 0 10 10" preserveAspectRatio="xMinYMin slice">` +
			`<rect width="10" height="2" fill="lime"/></svg>`,
		Width:  80,
		Height: 40,
		Samples: []Sample{
			sample(40, 8, lime),
			sample(40, 30, transparent),
		},
	},
	{
		Name: "viewbox_none",
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" width="80" height="40" viewBox="0 0 10 10" preserveAspectRatio="none">` +
			`<rect width="5" height="5"/></svg>`,
		Width:  80,
		Height: 40,
		Samples: []Sample{
			sample(35, 15, black),
			sample(45, 15, transparent),
			sample(35, 25, transparent),
		},
	},
	{
		Name:   "transform",
		SVG:    doc(40, 20, `<g transform="translate(20 0)"><rect width="10" height="10"/></g>`),
		Width:  40,
		Height: 20,
		Samples: []Sample{
			sample(25, 5, black),
			sample(5, 5, transparent),
		},
	},
	{
		Name:   "transform_list",
		SVG:    doc(40, 40, `<rect transform="translate(20,20) scale(2) rotate(45)" x="-2" y="-2" width="4" height="4" fill="red"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, red),
			sample(20, 16, red),
			sample(14, 14, transparent),
		},
	},
	{
		Name:   "nested_svg",
		SVG:    doc(40, 40, `<svg x="20" y="20" width="20" height="20" viewBox="0 0 1 1"><rect width="1" height="1" fill="red"/></svg>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(30, 30, red),
			sample(10, 10, transparent),
		},
	},
	{
		Name:   "nested_overflow",
		SVG:    doc(40, 40, `<svg width="20" height="20"><rect width="40" height="40"/></svg>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 10, black),
			sample(30, 30, transparent),
		},
	},
	{
		Name:   "percentages",
		SVG:    doc(40, 40, `<rect width="50%" height="50%" fill="blue"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 10, blue),
			sample(30, 30, transparent),
		},
	},
	{
		Name:   "units",
		SVG:    doc(96, 20, `<rect width="0.5in" height="10px"/>`),
		Width:  96,
		Height: 20,
		Samples: []Sample{
			sample(40, 5, black),
			sample(56, 5, transparent),
			sample(40, 15, transparent),
		},
	},
}
