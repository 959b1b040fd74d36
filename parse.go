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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"seehuhn.de/go/svg/style"
)

const (
	nsSVG   = "http://www.w3.org/2000/svg"
	nsXLink = "http://www.w3.org/1999/xlink"
	nsXML   = "http://www.w3.org/XML/1998/namespace"
)

// Parse reads an SVG document.
//
// Elements outside the SVG namespace are dropped together with their
// content.  Documents without namespace declarations are accepted.  Style
// sheets from <style> elements and style attributes are resolved at this
// point, so that every element carries its cascaded declarations.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = true

	d := &Document{ids: make(map[string]Handle)}
	cur := NoHandle
	skip := 0 // depth inside foreign elements
	var styleText strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 || !isSVGSpace(t.Name.Space) {
				skip++
				continue
			}
			if cur == NoHandle && len(d.nodes) > 0 {
				return nil, errors.New("svg: multiple root elements")
			}
			if cur == NoHandle && t.Name.Local != "svg" {
				return nil, errNotSVG
			}
			cur = d.add(cur, t.Name.Local, convertAttrs(t.Attr))
			if t.Name.Local == "style" {
				styleText.Reset()
			}
		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			if d.nodes[cur].tag == "style" {
				d.nodes[cur].text = styleText.String()
			}
			cur = d.nodes[cur].parent
		case xml.CharData:
			if skip == 0 && cur != NoHandle && d.nodes[cur].tag == "style" {
				styleText.Write(t)
			}
		}
	}
	if len(d.nodes) == 0 {
		return nil, errNotSVG
	}

	d.cascade()
	return d, nil
}

func isSVGSpace(ns string) bool {
	return ns == "" || ns == nsSVG
}

// convertAttrs keeps the attributes in no namespace, plus xlink:href
// (stored as "href") and the xml namespace attributes (stored as
// "xml:space" etc.).
func convertAttrs(in []xml.Attr) map[string]string {
	res := make(map[string]string, len(in))
	for _, a := range in {
		switch a.Name.Space {
		case "":
			if a.Name.Local == "xmlns" {
				continue
			}
			res[a.Name.Local] = a.Value
		case nsXLink:
			if a.Name.Local == "href" {
				if _, ok := res["href"]; !ok {
					res["href"] = a.Value
				}
			}
		case nsXML:
			res["xml:"+a.Name.Local] = a.Value
		}
	}
	// A plain href attribute takes precedence over xlink:href.
	for _, a := range in {
		if a.Name.Space == "" && a.Name.Local == "href" {
			res["href"] = a.Value
		}
	}
	return res
}

// cascade computes the declarations of every element.  The order of
// precedence, from low to high, is: presentation attributes, style sheet
// rules, the style attribute, important style sheet rules, and important
// declarations in the style attribute.
func (d *Document) cascade() {
	sheet := &style.Stylesheet{}
	for i := range d.nodes {
		n := &d.nodes[i]
		if n.tag != "style" {
			continue
		}
		if typ, ok := n.attrs["type"]; ok && typ != "" && typ != "text/css" {
			continue
		}
		s, err := style.ParseStylesheet(n.text)
		if err != nil {
			d.warnings = append(d.warnings, &ElementError{Path: d.path(Handle(i)), Err: err})
			continue
		}
		sheet.Merge(s)
	}
	for _, sel := range sheet.Skipped {
		d.warnings = append(d.warnings, fmt.Errorf("unsupported selector %q ignored", sel))
	}

	for i := range d.nodes {
		h := Handle(i)
		n := &d.nodes[i]
		decls := make(map[string]string)
		for name, value := range n.attrs {
			if style.IsProperty(name) {
				decls[name] = value
			}
		}

		matched := sheet.Match(element{d, h})
		var inline []style.Declaration
		if s, ok := n.attrs["style"]; ok {
			var err error
			inline, err = style.ParseDeclarations(s)
			if err != nil {
				d.warnings = append(d.warnings,
					&ElementError{Path: d.path(h), Attr: "style", Err: err})
			}
		}

		apply := func(ds []style.Declaration, important bool) {
			for _, decl := range ds {
				if decl.Important == important {
					decls[decl.Property] = decl.Value
				}
			}
		}
		apply(matched, false)
		apply(inline, false)
		apply(matched, true)
		apply(inline, true)
		n.decls = decls
	}
}
