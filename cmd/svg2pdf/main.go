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

// Command svg2pdf converts SVG files to PDF.  If the output file name ends
// in ".png", the drawing is rasterized instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/pdfcanvas"
	"seehuhn.de/go/svg/raster"
)

func main() {
	strict := flag.Bool("strict", false, "fail on unsupported elements")
	verbose := flag.Bool("v", false, "report problems with the input")
	scale := flag.Float64("scale", 1, "pixels per CSS pixel, for PNG output")
	opaque := flag.Bool("white", false, "use a white background for PNG output")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.svg output.pdf|output.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputFile := flag.Arg(0)
	outputFile := flag.Arg(1)

	opt := &svg.Options{ErrorMode: svg.IgnoreErrors}
	if *verbose {
		opt.ErrorMode = svg.WarnErrors
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if *strict {
		opt.ErrorMode = svg.StrictErrors
	}

	var err error
	if strings.EqualFold(filepath.Ext(outputFile), ".png") {
		err = convertPNG(outputFile, inputFile, opt, *scale, *opaque)
	} else {
		err = pdfcanvas.ConvertFile(outputFile, inputFile, opt)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inputFile, err)
		os.Exit(1)
	}
}

func convertPNG(out, in string, opt *svg.Options, scale float64, opaque bool) (err error) {
	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()

	doc, err := svg.Parse(r)
	if err != nil {
		return err
	}
	img, err := raster.Render(doc, opt, scale)
	if err != nil {
		return err
	}

	var res image.Image = img
	if opaque {
		bg := image.NewRGBA(img.Bounds())
		draw.Draw(bg, bg.Bounds(), image.White, image.Point{}, draw.Src)
		draw.Draw(bg, bg.Bounds(), img, img.Bounds().Min, draw.Over)
		res = bg
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(w, res)
}
