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

package pathdata

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the cause of all lexical errors in path data.
	ErrSyntax = errors.New("invalid path data")

	// ErrArgumentCount is the cause of all operand count errors.
	ErrArgumentCount = errors.New("wrong number of path operands")

	// ErrCloseWithoutSubpath indicates a close path command which does not
	// follow any command that could start a subpath.
	ErrCloseWithoutSubpath = errors.New("close path without subpath")
)

// OperatorError reports a letter in path data which is not one of the
// twenty path commands.
type OperatorError struct {
	Op  rune
	Pos int
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("invalid path operator %q at offset %d", e.Op, e.Pos)
}

func (e *OperatorError) Unwrap() error {
	return ErrSyntax
}

// NumberError reports a malformed operand.
type NumberError struct {
	Op   byte   // the command the operand belongs to, or 0
	Text string // the offending text
	Pos  int
}

func (e *NumberError) Error() string {
	if e.Op == 0 {
		return fmt.Sprintf("invalid number %q at offset %d", e.Text, e.Pos)
	}
	return fmt.Sprintf("invalid operand %q for %c at offset %d", e.Text, e.Op, e.Pos)
}

func (e *NumberError) Unwrap() error {
	return ErrSyntax
}

// ArgumentError reports a command with an operand count which is not a
// non-zero multiple of the command's arity.
type ArgumentError struct {
	Op    byte
	Count int
}

func (e *ArgumentError) Error() string {
	n := Arity(e.Op)
	if n == 0 {
		return fmt.Sprintf("%c takes no operands, got %d", e.Op, e.Count)
	}
	return fmt.Sprintf("%c needs a multiple of %d operands, got %d", e.Op, n, e.Count)
}

func (e *ArgumentError) Unwrap() error {
	return ErrArgumentCount
}
