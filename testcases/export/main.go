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

// Command export writes the test documents to testdata/svg, together with
// a JSON file listing the sampled pixels.  This allows to check other SVG
// renderers against the same expectations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/svg/testcases"
)

const outDir = "testdata/svg"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			err := os.WriteFile(filepath.Join(outDir, jtc.File), []byte(tc.SVG), 0644)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(filepath.Join(outDir, "samples.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	File   string      `json:"file"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Samples []jsonSample `json:"samples"`
}

type jsonSample struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	RGBA [4]uint8 `json:"rgba"`
	Tol  uint8    `json:"tol,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	name := category + "_" + tc.Name
	jtc := jsonTestCase{
		Name:   name,
		File:   name + ".svg",
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, p := range tc.Samples {
		c := p.Color
		jtc.Samples = append(jtc.Samples, jsonSample{
			X:    p.X,
			Y:    p.Y,
			RGBA: [4]uint8{c.R, c.G, c.B, c.A},
			Tol:  p.Tol,
		})
	}
	return jtc
}
