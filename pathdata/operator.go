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
	"strconv"
	"strings"
)

// Kind identifies one of the ten path segment types.
type Kind uint8

// These are the segment kinds.
const (
	KindMoveTo Kind = iota + 1
	KindLineTo
	KindHorizontalLineTo
	KindVerticalLineTo
	KindCurveTo
	KindSmoothCurveTo
	KindQuadraticCurveTo
	KindSmoothQuadraticCurveTo
	KindEllipticalCurveTo
	KindClosePath
)

func (k Kind) String() string {
	switch k {
	case KindMoveTo:
		return "MoveTo"
	case KindLineTo:
		return "LineTo"
	case KindHorizontalLineTo:
		return "HorizontalLineTo"
	case KindVerticalLineTo:
		return "VerticalLineTo"
	case KindCurveTo:
		return "CurveTo"
	case KindSmoothCurveTo:
		return "SmoothCurveTo"
	case KindQuadraticCurveTo:
		return "QuadraticCurveTo"
	case KindSmoothQuadraticCurveTo:
		return "SmoothQuadraticCurveTo"
	case KindEllipticalCurveTo:
		return "EllipticalCurveTo"
	case KindClosePath:
		return "ClosePath"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf maps a path command letter to the segment kind it produces.
// Lower case letters are relative.  For letters which are not path
// commands, the kind is 0.
func KindOf(letter byte) (k Kind, relative bool) {
	relative = letter >= 'a' && letter <= 'z'
	switch letter | 0x20 {
	case 'm':
		k = KindMoveTo
	case 'l':
		k = KindLineTo
	case 'h':
		k = KindHorizontalLineTo
	case 'v':
		k = KindVerticalLineTo
	case 'c':
		k = KindCurveTo
	case 's':
		k = KindSmoothCurveTo
	case 'q':
		k = KindQuadraticCurveTo
	case 't':
		k = KindSmoothQuadraticCurveTo
	case 'a':
		k = KindEllipticalCurveTo
	case 'z':
		k = KindClosePath
	default:
		return 0, false
	}
	return k, relative
}

// IsCommand reports whether c is one of the twenty path command letters.
func IsCommand(c byte) bool {
	k, _ := KindOf(c)
	return k != 0
}

// Arity returns the number of operands consumed by one application of
// the given command, or -1 if letter is not a path command.
func Arity(letter byte) int {
	k, _ := KindOf(letter)
	switch k {
	case KindClosePath:
		return 0
	case KindHorizontalLineTo, KindVerticalLineTo:
		return 1
	case KindMoveTo, KindLineTo, KindSmoothQuadraticCurveTo:
		return 2
	case KindQuadraticCurveTo, KindSmoothCurveTo:
		return 4
	case KindCurveTo:
		return 6
	case KindEllipticalCurveTo:
		return 7
	default:
		return -1
	}
}

// Operator is a single parsed path instruction.
// Operators are created by [ParseOperator] and are not modified afterwards.
type Operator struct {
	Letter   byte
	Relative bool
	Operands []float64
}

func (op Operator) String() string {
	var b strings.Builder
	b.WriteByte(op.Letter)
	for _, x := range op.Operands {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return b.String()
}
