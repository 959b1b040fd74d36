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

package svg

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/svg/viewport"
)

func TestParseStructure(t *testing.T) {
	src := `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:x="http://example.com/x">
  <g id="g1">
    <rect id="r1" class="a b"/>
    <x:extra><rect id="hidden"/></x:extra>
  </g>
  <circle id="c1"/>
</svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	root := doc.Root()
	if doc.Tag(root) != "svg" || doc.Parent(root) != NoHandle {
		t.Fatalf("bad root element %q", doc.Tag(root))
	}
	var tags []string
	for _, h := range doc.Children(root) {
		tags = append(tags, doc.Tag(h))
	}
	if d := cmp.Diff([]string{"g", "circle"}, tags); d != "" {
		t.Error(d)
	}

	r1, ok := doc.Lookup("r1")
	if !ok {
		t.Fatal("r1 not found")
	}
	g1, _ := doc.Lookup("g1")
	if doc.Parent(r1) != g1 {
		t.Error("wrong parent for r1")
	}
	if _, ok := doc.Lookup("hidden"); ok {
		t.Error("element from foreign namespace was kept")
	}
	if got := doc.path(r1); got != "svg/g#g1/rect#r1" {
		t.Errorf("path %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`<html/>`,
		`<x:svg xmlns:x="http://example.com/x"/>`,
		`<svg xmlns="http://www.w3.org/2000/svg"><rect></svg>`,
	} {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Errorf("%q: no error", src)
		}
	}
}

func TestParseHref(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
<use id="u1" xlink:href="#a"/>
<use id="u2" href="#b" xlink:href="#a"/>
<use id="u3" xlink:href="#a" href="#b"/>
<text id="t" xml:space="preserve"/>
</svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	for id, want := range map[string]string{"u1": "#a", "u2": "#b", "u3": "#b"} {
		h, _ := doc.Lookup(id)
		if got, _ := doc.Attr(h, "href"); got != want {
			t.Errorf("%s: href %q, want %q", id, got, want)
		}
	}
	h, _ := doc.Lookup("t")
	if v, _ := doc.Attr(h, "xml:space"); v != "preserve" {
		t.Errorf("xml:space = %q", v)
	}
}

func TestParseCharset(t *testing.T) {
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\"><g id=\"caf\xe9\"/></svg>"
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.Lookup("café"); !ok {
		t.Error("id not decoded")
	}
}

func TestDuplicateIDs(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<svg><rect id="a"/><circle id="a"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	h, _ := doc.Lookup("a")
	if doc.Tag(h) != "rect" {
		t.Errorf("Lookup returned <%s>", doc.Tag(h))
	}
	if _, ok := doc.lookupRef("a"); ok {
		t.Error("reference without # accepted")
	}
	if h2, ok := doc.lookupRef(" #a "); !ok || h2 != h {
		t.Error("reference not resolved")
	}
}

func TestSize(t *testing.T) {
	for _, test := range []struct {
		attrs string
		body  string
		w, h  float64
	}{
		{`width="200" height="100"`, "", 200, 100},
		{`width="2in" height="1cm"`, "", 192, 96 / 2.54},
		{`viewBox="0 0 40 30"`, "", 40, 30},
		{`width="80" viewBox="0 0 40 30"`, "", 80, 60},
		{`height="60" viewBox="0 0 40 30"`, "", 80, 60},
		{`width="50%" height="50%" viewBox="0 0 40 30"`, "", 40, 30},
		{``, `<rect x="10" y="10" width="30" height="20"/>`, 40, 30},
		{`width="100"`, `<rect width="30" height="20"/>`, 100, 20},
	} {
		src := `<svg xmlns="http://www.w3.org/2000/svg" ` + test.attrs + `>` + test.body + `</svg>`
		doc, err := Parse(strings.NewReader(src))
		if err != nil {
			t.Fatal(err)
		}
		w, h, err := doc.Size()
		if err != nil {
			t.Errorf("%s: %v", src, err)
			continue
		}
		if !nearlyEqual(w, test.w) || !nearlyEqual(h, test.h) {
			t.Errorf("%s: got %gx%g, want %gx%g", src, w, h, test.w, test.h)
		}
	}
}

func TestSizeErrors(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := doc.Size(); !errors.Is(err, viewport.ErrNoBoundingBox) {
		t.Errorf("got %v, want %v", err, viewport.ErrNoBoundingBox)
	}

	doc, err = Parse(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg" width="abc" height="10"/>`))
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = doc.Size()
	var elemErr *ElementError
	if !errors.As(err, &elemErr) || elemErr.Attr != "width" {
		t.Errorf("got %v, want an error for the width attribute", err)
	}
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestParseWarnings(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg">
<style>rect:hover { fill: red } rect { fill: blue }</style>
<rect width="10" height="10"/>
</svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.warnings) != 1 || !strings.Contains(doc.warnings[0].Error(), "rect:hover") {
		t.Errorf("warnings: %v", doc.warnings)
	}
}
