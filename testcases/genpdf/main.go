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

// Command genpdf converts the test documents into PDF files, and renders
// these to PNG images using Ghostscript.  The images can be compared
// visually with the output of the raster package.
package main

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/pdfcanvas"
	"seehuhn.de/go/svg/testcases"
)

const outDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	buf := &bytes.Buffer{}
	opt := &svg.Options{ErrorMode: svg.StrictErrors}
	err := pdfcanvas.Convert(buf, strings.NewReader(tc.SVG), opt)
	if err != nil {
		return err
	}
	return os.WriteFile(pdfPath, buf.Bytes(), 0644)
}

func renderPNG(pdfPath, pngPath string) error {
	// -r96: one pixel per CSS pixel
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pngalpha",
		"-r96",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
