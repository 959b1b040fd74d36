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

package raster

import (
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/testcases"
	"seehuhn.de/go/svg/viewport"
)

func TestCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				doc, err := svg.Parse(strings.NewReader(tc.SVG))
				if err != nil {
					t.Fatal(err)
				}
				img, err := Render(doc, &svg.Options{ErrorMode: svg.StrictErrors}, 1)
				if err != nil {
					t.Fatal(err)
				}

				b := img.Bounds()
				if b.Dx() != tc.Width || b.Dy() != tc.Height {
					t.Fatalf("image size %dx%d, want %dx%d", b.Dx(), b.Dy(), tc.Width, tc.Height)
				}
				for _, p := range tc.Samples {
					if err := p.Check(img.At(p.X, p.Y)); err != nil {
						t.Error(err)
					}
				}
				if t.Failed() {
					_ = writeDebugImage(name, img)
				}
			})
		}
	}
}

// writeDebugImage saves a failed rendering for inspection.
func writeDebugImage(name string, img image.Image) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func TestRenderScale(t *testing.T) {
	doc, err := svg.Parse(strings.NewReader(
		`<svg xmlns="http://www.w3.org/2000/svg" width="30" height="20"><rect x="10" width="10" height="10"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	img, err := Render(doc, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("image size %dx%d, want 60x40", b.Dx(), b.Dy())
	}
	if a := img.RGBAAt(30, 10).A; a != 255 {
		t.Errorf("inside: alpha %d, want 255", a)
	}
	if a := img.RGBAAt(10, 10).A; a != 0 {
		t.Errorf("outside: alpha %d, want 0", a)
	}
}

func TestCanvasBBox(t *testing.T) {
	c := NewCanvas(image.NewRGBA(image.Rect(0, 0, 30, 15)), 3)
	bbox, ok := c.BBox()
	if !ok {
		t.Fatal("no bounding box")
	}
	want := viewport.Rect{Width: 10, Height: 5}
	if bbox != want {
		t.Errorf("got %v, want %v", bbox, want)
	}

	c = NewCanvas(image.NewRGBA(image.Rectangle{}), 1)
	if _, ok := c.BBox(); ok {
		t.Error("empty image has a bounding box")
	}
}

// TestClipRestore checks that PopGraphicsState removes a clip path.
func TestClipRestore(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := NewCanvas(img, 1)

	rectangle := func(x0, y0, x1, y1 float64) {
		c.MoveTo(x0, y0)
		c.LineTo(x1, y0)
		c.LineTo(x1, y1)
		c.LineTo(x0, y1)
		c.ClosePath()
	}

	c.PushGraphicsState()
	rectangle(0, 0, 5, 10)
	c.ClipNonZero()
	c.EndPath()
	c.SetFillColor(style.RGB(1, 0, 0))
	rectangle(0, 0, 10, 10)
	c.Fill()
	c.PopGraphicsState()

	red := color.RGBA{R: 255, A: 255}
	if got := img.RGBAAt(2, 5); got != red {
		t.Errorf("inside clip: got %v, want %v", got, red)
	}
	if got := img.RGBAAt(7, 5); got != (color.RGBA{}) {
		t.Errorf("outside clip: got %v, want transparent", got)
	}

	c.SetFillColor(style.RGB(0, 0, 1))
	rectangle(5, 0, 10, 10)
	c.Fill()
	blue := color.RGBA{B: 255, A: 255}
	if got := img.RGBAAt(7, 5); got != blue {
		t.Errorf("after pop: got %v, want %v", got, blue)
	}
}

func TestCanvasAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c := NewCanvas(img, 1)
	c.SetFillColor(style.RGB(0, 0, 0))
	c.SetFillAlpha(0.5)
	for range 2 {
		c.MoveTo(0, 0)
		c.LineTo(4, 0)
		c.LineTo(4, 4)
		c.LineTo(0, 4)
		c.Fill()
	}

	// two layers at 50% give 75% coverage
	if a := img.RGBAAt(1, 1).A; a < 190 || a > 192 {
		t.Errorf("alpha %d, want 191", a)
	}
}
