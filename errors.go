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
	"fmt"
)

var (
	// ErrCircularReference indicates a chain of references (use elements,
	// patterns, markers, clip paths or href attributes) which refers back
	// to one of its own elements.
	ErrCircularReference = errors.New("circular reference")

	// ErrUnsupported indicates an element which cannot be rendered.
	ErrUnsupported = errors.New("unsupported element")

	errNotSVG = errors.New("root element is not <svg>")
)

// ElementError reports a problem with an element of the document.
type ElementError struct {
	// Path identifies the element, for example "svg/g/path#p1".
	Path string

	// Attr is the name of the offending attribute, or "" if the problem
	// is not specific to one attribute.
	Attr string

	Err error
}

func (e *ElementError) Error() string {
	if e.Attr == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: attribute %q: %v", e.Path, e.Attr, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
