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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content"

	"seehuhn.de/go/svg"
	"seehuhn.de/go/svg/style"
	"seehuhn.de/go/svg/viewport"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50">
<rect width="50" height="50" fill="red" fill-opacity="0.5"/>
<circle cx="75" cy="25" r="20" fill="none" stroke="blue" stroke-dasharray="4 2"/>
</svg>`

func TestConvert(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Convert(buf, strings.NewReader(testSVG), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
}

func TestConvertErrors(t *testing.T) {
	err := Convert(io.Discard, strings.NewReader(`<html/>`), nil)
	if err == nil {
		t.Error("non-SVG input accepted")
	}

	// no size information and no content
	err = Convert(io.Discard, strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"/>`), nil)
	if !errors.Is(err, viewport.ErrNoBoundingBox) {
		t.Errorf("got %v, want %v", err, viewport.ErrNoBoundingBox)
	}

	// unsupported elements fail in strict mode
	input := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><text>x</text></svg>`
	err = Convert(io.Discard, strings.NewReader(input), &svg.Options{ErrorMode: svg.StrictErrors})
	if !errors.Is(err, svg.ErrUnsupported) {
		t.Errorf("got %v, want %v", err, svg.ErrUnsupported)
	}
}

func TestOperators(t *testing.T) {
	doc, err := svg.Parse(strings.NewReader(testSVG))
	if err != nil {
		t.Fatal(err)
	}
	page, err := document.WriteSinglePage(io.Discard, &pdf.Rectangle{URx: 75, URy: 37.5}, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}

	c := New(page.Builder, 100, 50)
	if err := doc.Draw(c, nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	count := make(map[content.OpName]int)
	for _, op := range page.Builder.Stream {
		count[op.Name]++
	}
	for _, name := range []content.OpName{
		content.OpTransform,
		content.OpSetExtGState,
		content.OpFill,
		content.OpSetLineDash,
		content.OpStroke,
	} {
		if count[name] == 0 {
			t.Errorf("operator %q not used", name)
		}
	}
	if n, m := count[content.OpPushGraphicsState], count[content.OpPopGraphicsState]; n != m {
		t.Errorf("%d q operators, but %d Q operators", n, m)
	}

	if err := page.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestBBox(t *testing.T) {
	page, err := document.WriteSinglePage(io.Discard, &pdf.Rectangle{URx: 75, URy: 75}, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := New(page.Builder, 100, 100)
	bbox, ok := c.BBox()
	if !ok || bbox != (viewport.Rect{Width: 100, Height: 100}) {
		t.Errorf("got %v %t", bbox, ok)
	}
}

func TestGradientShading(t *testing.T) {
	const stops = `<stop offset="0.2" stop-color="red"/><stop offset="0.2" stop-color="lime"/><stop offset="1" stop-color="blue"/>`
	for _, test := range []struct {
		name     string
		body     string
		want     []content.OpName
		wantClip bool
	}{
		{
			name: "linear fill",
			body: `<linearGradient id="g">` + stops + `</linearGradient>` +
				`<rect width="50" height="50" fill="url(#g)"/>`,
			want: []content.OpName{content.OpSetFillColorN},
		},
		{
			name: "reflected fill",
			body: `<linearGradient id="g" x2="0.3" spreadMethod="reflect">` + stops + `</linearGradient>` +
				`<rect width="50" height="50" fill="url(#g)" fill-opacity="0.5"/>`,
			want: []content.OpName{content.OpSetFillColorN, content.OpSetExtGState},
		},
		{
			name: "radial stroke",
			body: `<radialGradient id="g" fx="0.3" spreadMethod="repeat" r="0.2">` + stops + `</radialGradient>` +
				`<circle cx="50" cy="25" r="20" fill="none" stroke="url(#g)" stroke-width="4"/>`,
			want: []content.OpName{content.OpSetStrokeColorN, content.OpStroke},
		},
		{
			name: "varying opacity",
			body: `<linearGradient id="g"><stop offset="0" stop-color="red"/><stop offset="1" stop-opacity="0.5"/></linearGradient>` +
				`<rect width="50" height="50" fill="url(#g)"/>`,
			want:     []content.OpName{content.OpSetFillRGB},
			wantClip: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			src := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50">` + test.body + `</svg>`
			doc, err := svg.Parse(strings.NewReader(src))
			if err != nil {
				t.Fatal(err)
			}
			page, err := document.WriteSinglePage(io.Discard, &pdf.Rectangle{URx: 75, URy: 37.5}, pdf.V1_7, nil)
			if err != nil {
				t.Fatal(err)
			}
			c := New(page.Builder, 100, 50)
			if err := doc.Draw(c, nil); err != nil {
				t.Fatal(err)
			}
			if err := c.Err(); err != nil {
				t.Fatal(err)
			}

			count := make(map[content.OpName]int)
			for _, op := range page.Builder.Stream {
				count[op.Name]++
			}
			for _, name := range test.want {
				if count[name] == 0 {
					t.Errorf("operator %q not used", name)
				}
			}
			if clip := count[content.OpClipNonZero] > 0; clip != test.wantClip {
				t.Errorf("clip: got %t, want %t", clip, test.wantClip)
			}

			if err := page.Close(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestStopFunction(t *testing.T) {
	stops := []svg.GradientStop{
		{Offset: 0.25, Color: style.RGB(1, 0, 0), Alpha: 1},
		{Offset: 0.25, Color: style.RGB(0, 1, 0), Alpha: 1},
		{Offset: 0.75, Color: style.RGB(0, 0, 1), Alpha: 1},
	}
	space, values := stopValues(stops)
	if space != color.SpaceDeviceRGB {
		t.Errorf("got colour space %v", space)
	}
	fn := stopFunction(stops, values)
	for _, test := range []struct {
		t    float64
		want []float64
	}{
		{0, []float64{1, 0, 0}},
		{0.5, []float64{0, 0.5, 0.5}},
		{0.9, []float64{0, 0, 1}},
	} {
		got := fn.Apply(test.t)
		if d := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("t=%g: %s", test.t, d)
		}
	}

	rep := periodic(fn, -1, 1, true)
	for _, test := range []struct {
		t, want float64
	}{
		{0.5, 0.5},
		{-0.1, 0.1},
		{-0.9, 0.9},
	} {
		got := rep.Apply(test.t)
		want := fn.Apply(test.want)
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("t=%g: %s", test.t, d)
		}
	}
}
