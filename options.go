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

import "log/slog"

// ErrorMode selects how elements which cannot be rendered are handled.
type ErrorMode int

// These are the supported error modes.
const (
	// IgnoreErrors silently skips unsupported elements.
	IgnoreErrors ErrorMode = iota

	// WarnErrors skips unsupported elements and logs a warning.
	WarnErrors

	// StrictErrors aborts drawing with an error wrapping [ErrUnsupported].
	StrictErrors
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrors:
		return "ignore"
	case WarnErrors:
		return "warn"
	case StrictErrors:
		return "strict"
	default:
		return "unknown"
	}
}

// Options control how a document is drawn.  A nil *Options is valid and
// selects the defaults.
type Options struct {
	ErrorMode ErrorMode

	// Logger receives warnings.  If this is nil, warnings are discarded.
	Logger *slog.Logger

	// FontSize is the root font size in user units, used for em and rem
	// lengths.  The default is 16.
	FontSize float64

	// GradientSteps is the number of colour bands used to approximate
	// one period of a gradient.  The default is 64.
	GradientSteps int

	// MaxTiles limits the number of pattern tiles drawn for a single
	// fill.  Fills needing more tiles are skipped.  The default is 4096.
	MaxTiles int
}

func (o *Options) withDefaults() *Options {
	res := &Options{}
	if o != nil {
		*res = *o
	}
	if res.Logger == nil {
		res.Logger = slog.New(slog.DiscardHandler)
	}
	if res.FontSize <= 0 {
		res.FontSize = 16
	}
	if res.GradientSteps <= 0 {
		res.GradientSteps = 64
	}
	if res.MaxTiles <= 0 {
		res.MaxTiles = 4096
	}
	return res
}
