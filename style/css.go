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

package style

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Declaration is a single CSS property assignment.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// ParseDeclarations parses the contents of a style attribute.
// The semicolon after the last declaration is optional.
func ParseDeclarations(s string) ([]Declaration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	// douceur only completes a declaration at a ';' or '}'
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		return nil, err
	}
	return convertDeclarations(decls), nil
}

func convertDeclarations(in []*css.Declaration) []Declaration {
	res := make([]Declaration, 0, len(in))
	for _, d := range in {
		res = append(res, Declaration{
			Property:  strings.ToLower(strings.TrimSpace(d.Property)),
			Value:     strings.TrimSpace(d.Value),
			Important: d.Important,
		})
	}
	return res
}

// Element is the view of a document node needed for selector matching.
type Element interface {
	Tag() string
	ID() string
	HasClass(name string) bool

	// Parent returns the parent element, or nil for the root.
	Parent() Element
}

// Stylesheet is a parsed style sheet.
type Stylesheet struct {
	rules []rule

	// Skipped lists selectors which are not supported and were ignored.
	Skipped []string
}

type rule struct {
	sel   selector
	decls []Declaration
	order int
}

// ParseStylesheet parses the contents of a <style> element.  Rules with
// selectors outside the supported subset (type, class and id selectors,
// the universal selector, and the descendant and child combinators) are
// skipped.  At-rules are ignored.
func ParseStylesheet(s string) (*Stylesheet, error) {
	sheet, err := parser.Parse(s)
	if err != nil {
		return nil, err
	}
	res := &Stylesheet{}
	res.Add(sheet)
	return res, nil
}

// Add appends the rules of a parsed douceur style sheet.
func (s *Stylesheet) Add(sheet *css.Stylesheet) {
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule {
			continue
		}
		decls := convertDeclarations(r.Declarations)
		for _, text := range r.Selectors {
			sel, ok := parseSelector(text)
			if !ok {
				s.Skipped = append(s.Skipped, text)
				continue
			}
			s.rules = append(s.rules, rule{sel: sel, decls: decls, order: len(s.rules)})
		}
	}
}

// Merge appends the rules of another style sheet.  Rules of t come after
// all rules of s in the cascade order.
func (s *Stylesheet) Merge(t *Stylesheet) {
	for _, r := range t.rules {
		r.order = len(s.rules)
		s.rules = append(s.rules, r)
	}
	s.Skipped = append(s.Skipped, t.Skipped...)
}

// Match returns the declarations which apply to el, in cascade order:
// later declarations override earlier ones.
func (s *Stylesheet) Match(el Element) []Declaration {
	if s == nil {
		return nil
	}
	var matched []rule
	for _, r := range s.rules {
		if r.sel.matches(el) {
			matched = append(matched, r)
		}
	}
	slices.SortStableFunc(matched, func(a, b rule) int {
		if c := a.sel.specificity.compare(b.sel.specificity); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	var res []Declaration
	for _, r := range matched {
		res = append(res, r.decls...)
	}
	return res
}

// compound is a sequence of simple selectors without combinators,
// such as "rect.a.b#c".
type compound struct {
	tag     string // "" matches any tag
	id      string
	classes []string
}

func (c compound) matches(el Element) bool {
	if c.tag != "" && c.tag != el.Tag() {
		return false
	}
	if c.id != "" && c.id != el.ID() {
		return false
	}
	for _, cl := range c.classes {
		if !el.HasClass(cl) {
			return false
		}
	}
	return true
}

type specificity [3]int

func (a specificity) compare(b specificity) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// selector is a complex selector.  parts[i] is related to parts[i+1] by
// combinators[i], which is ' ' for descendant or '>' for child.
type selector struct {
	parts       []compound
	combinators []byte
	specificity specificity
}

func parseSelector(text string) (selector, bool) {
	var sel selector
	fields := strings.Fields(strings.ReplaceAll(text, ">", " > "))
	if len(fields) == 0 {
		return sel, false
	}
	comb := byte(' ')
	for i, f := range fields {
		if f == ">" {
			if i == 0 || comb == '>' {
				return sel, false
			}
			comb = '>'
			continue
		}
		c, ok := parseCompound(f)
		if !ok {
			return sel, false
		}
		if len(sel.parts) > 0 {
			sel.combinators = append(sel.combinators, comb)
		}
		sel.parts = append(sel.parts, c)
		comb = ' '

		if c.id != "" {
			sel.specificity[0]++
		}
		sel.specificity[1] += len(c.classes)
		if c.tag != "" {
			sel.specificity[2]++
		}
	}
	if comb == '>' {
		return sel, false
	}
	return sel, true
}

func parseCompound(s string) (compound, bool) {
	var c compound
	i := 0
	for i < len(s) && s[i] != '.' && s[i] != '#' {
		i++
	}
	c.tag = s[:i]
	if c.tag == "*" {
		c.tag = ""
	}
	if !isIdent(c.tag) && c.tag != "" {
		return c, false
	}
	for i < len(s) {
		kind := s[i]
		j := i + 1
		for j < len(s) && s[j] != '.' && s[j] != '#' {
			j++
		}
		name := s[i+1 : j]
		if !isIdent(name) {
			return c, false
		}
		if kind == '#' {
			if c.id != "" && c.id != name {
				return c, false
			}
			c.id = name
		} else {
			c.classes = append(c.classes, name)
		}
		i = j
	}
	return c, true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		ok := r == '-' || r == '_' || r >= '0' && r <= '9' ||
			r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 0x7f
		if !ok {
			return false
		}
	}
	return true
}

func (sel selector) matches(el Element) bool {
	n := len(sel.parts)
	if !sel.parts[n-1].matches(el) {
		return false
	}
	return sel.matchFrom(n-2, el)
}

// matchFrom checks parts[0:i+1] against the ancestors of el.
func (sel selector) matchFrom(i int, el Element) bool {
	if i < 0 {
		return true
	}
	switch sel.combinators[i] {
	case '>':
		p := el.Parent()
		return p != nil && sel.parts[i].matches(p) && sel.matchFrom(i-1, p)
	default:
		for p := el.Parent(); p != nil; p = p.Parent() {
			if sel.parts[i].matches(p) && sel.matchFrom(i-1, p) {
				return true
			}
		}
		return false
	}
}
