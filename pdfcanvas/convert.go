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

package pdfcanvas

import (
	"errors"
	"io"
	"os"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/svg"
)

// Convert reads an SVG document from r and writes a single page PDF file
// to w.  The page size is the natural size of the document.
func Convert(w io.Writer, r io.Reader, opt *svg.Options) error {
	doc, err := svg.Parse(r)
	if err != nil {
		return err
	}
	return Write(w, doc, opt)
}

// Write renders doc as a single page PDF file.
func Write(w io.Writer, doc *svg.Document, opt *svg.Options) error {
	width, height, err := doc.Size()
	if err != nil {
		return err
	}
	paper := &pdf.Rectangle{
		URx: width * PointsPerPixel,
		URy: height * PointsPerPixel,
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	c := New(page.Builder, width, height)
	drawErr := doc.Draw(c, opt)
	return errors.Join(drawErr, page.Close())
}

// ConvertFile converts the SVG file in to the PDF file out.
func ConvertFile(out, in string, opt *svg.Options) (err error) {
	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	return Convert(w, r, opt)
}
