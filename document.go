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

// Package svg renders SVG documents onto a vector canvas.
//
// A document is read with [Parse] and drawn with [Document.Draw].  The
// [Canvas] interface follows the PDF imaging model; the pdfcanvas package
// provides an implementation which writes PDF content streams, and the
// raster package one which draws into an image.
package svg

import (
	"slices"
	"strings"

	"seehuhn.de/go/svg/style"
)

// Handle identifies an element of a [Document].
type Handle int32

// NoHandle is the handle of no element, used as the parent of the root.
const NoHandle Handle = -1

type node struct {
	tag      string
	attrs    map[string]string
	id       string
	classes  []string
	parent   Handle
	children []Handle

	// text is the character data of <style> elements.
	text string

	// decls holds the cascaded declarations: presentation attributes,
	// style sheet rules and the style attribute, in priority order.
	decls map[string]string
}

// Document is a parsed SVG document.  All elements are stored in one
// slice and refer to each other by [Handle].  A Document is not modified
// by drawing and can be drawn any number of times.
type Document struct {
	nodes []node
	ids   map[string]Handle

	// warnings collects problems found while parsing which did not prevent
	// the document from being read, for example invalid style attributes.
	warnings []error
}

func (d *Document) add(parent Handle, tag string, attrs map[string]string) Handle {
	h := Handle(len(d.nodes))
	n := node{
		tag:    tag,
		attrs:  attrs,
		id:     attrs["id"],
		parent: parent,
	}
	if cls, ok := attrs["class"]; ok {
		n.classes = strings.Fields(cls)
	}
	d.nodes = append(d.nodes, n)
	if parent != NoHandle {
		d.nodes[parent].children = append(d.nodes[parent].children, h)
	}
	if n.id != "" {
		if _, seen := d.ids[n.id]; !seen {
			d.ids[n.id] = h
		}
	}
	return h
}

// Root returns the handle of the outermost <svg> element.
func (d *Document) Root() Handle {
	return 0
}

// Parent returns the parent of h, or [NoHandle] for the root element.
func (d *Document) Parent(h Handle) Handle {
	return d.nodes[h].parent
}

// Children returns the child elements of h.
func (d *Document) Children(h Handle) []Handle {
	return slices.Clone(d.nodes[h].children)
}

// Tag returns the local name of the element h.
func (d *Document) Tag(h Handle) string {
	return d.nodes[h].tag
}

// Attr returns the value of an attribute.  The attribute "xlink:href" is
// available under the name "href".
func (d *Document) Attr(h Handle, name string) (string, bool) {
	v, ok := d.nodes[h].attrs[name]
	return v, ok
}

// Lookup finds the element with the given id.  If several elements share
// an id, the first one in document order is returned.
func (d *Document) Lookup(id string) (Handle, bool) {
	h, ok := d.ids[id]
	return h, ok
}

// lookupRef resolves a local reference of the form "#id".
func (d *Document) lookupRef(ref string) (Handle, bool) {
	id, ok := strings.CutPrefix(strings.TrimSpace(ref), "#")
	if !ok {
		return NoHandle, false
	}
	return d.Lookup(id)
}

// path returns a human readable description of the position of h,
// like "svg/g/path#p1".
func (d *Document) path(h Handle) string {
	var parts []string
	for ; h != NoHandle; h = d.nodes[h].parent {
		n := &d.nodes[h]
		part := n.tag
		if n.id != "" {
			part += "#" + n.id
		}
		parts = append(parts, part)
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}

// element implements [style.Element] for selector matching.
type element struct {
	d *Document
	h Handle
}

func (e element) Tag() string { return e.d.nodes[e.h].tag }
func (e element) ID() string  { return e.d.nodes[e.h].id }

func (e element) HasClass(name string) bool {
	return slices.Contains(e.d.nodes[e.h].classes, name)
}

func (e element) Parent() style.Element {
	p := e.d.nodes[e.h].parent
	if p == NoHandle {
		return nil
	}
	return element{e.d, p}
}
