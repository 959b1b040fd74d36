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

var structureCases = []TestCase{
	{
		Name:   "use",
		SVG:    doc(40, 40, `<defs><rect id="r" width="10" height="10" fill="red"/></defs><use href="#r" x="20" y="20"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(25, 25, red),
			sample(5, 5, transparent),
		},
	},
	{
		Name:   "use_xlink",
		SVG:    doc(40, 40, `<rect id="r" width="10" height="10"/><use xlink:href="#r" transform="translate(20 0)" fill="red"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(5, 5, black),
			sample(25, 5, red),
			sample(25, 25, transparent),
		},
	},
	{
		Name: "symbol",
		SVG: doc(40, 40, `<symbol id="s" viewBox="0 0 1 1"><rect width="1" height="1"/></symbol>`+
			`<use href="#s" width="20" height="20" fill="blue"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 10, blue),
			sample(30, 30, transparent),
		},
	},
	{
		Name:   "style_sheet",
		SVG:    doc(40, 40, `<style>.a { fill: lime } #b { fill: blue }</style><rect class="a" width="20" height="40" fill="red"/><rect id="b" class="a" x="20" width="20" height="40"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 20, lime),
			sample(30, 20, blue),
		},
	},
	{
		Name:   "inline_style",
		SVG:    doc(40, 40, `<style>rect { fill: red }</style><rect width="40" height="40" style="fill: blue"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, blue),
		},
	},
	{
		Name: "clip_path",
		SVG: doc(40, 40, `<clipPath id="c"><rect width="20" height="40"/></clipPath>`+
			`<rect width="40" height="40" clip-path="url(#c)"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 20, black),
			sample(30, 20, transparent),
		},
	},
	{
		Name: "clip_path_bbox",
		SVG: doc(40, 40, `<clipPath id="c" clipPathUnits="objectBoundingBox"><rect width="0.5" height="0.5"/></clipPath>`+
			`<rect x="20" y="20" width="20" height="20" fill="red" clip-path="url(#c)"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(25, 25, red),
			sample(35, 35, transparent),
			sample(10, 10, transparent),
		},
	},
	{
		Name: "marker",
		SVG: doc(40, 40, `<marker id="m" markerWidth="10" markerHeight="10" refX="5" refY="5" markerUnits="userSpaceOnUse">`+
			`<rect width="10" height="10" fill="red"/></marker>`+
			`<path d="M20 20 L35 20" stroke="black" marker-start="url(#m)"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(17, 17, red),
			sample(5, 5, transparent),
			sample(30, 30, transparent),
		},
	},
	{
		Name:   "display_none",
		SVG:    doc(40, 40, `<g display="none"><rect width="20" height="40"/></g><rect x="20" width="20" height="40" visibility="hidden"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 20, transparent),
			sample(30, 20, transparent),
		},
	},
	{
		Name: "switch",
		SVG: doc(40, 40, `<switch><rect requiredExtensions="http://example.com/ext" width="40" height="40" fill="red"/>`+
			`<rect width="40" height="40" fill="lime"/><rect width="40" height="40" fill="blue"/></switch>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(20, 20, lime),
		},
	},
	{
		Name:   "foreign_namespace",
		SVG:    doc(40, 40, `<x:rect xmlns:x="http://example.com/x" width="40" height="40"/><rect width="20" height="20"/>`),
		Width:  40,
		Height: 40,
		Samples: []Sample{
			sample(10, 10, black),
			sample(30, 30, transparent),
		},
	},
}
