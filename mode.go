// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline

// Mode is the text formatting quality mode for a formatter, read from the
// owning element when the formatter is created and fixed for the lifetime
// of that formatter instance.
type Mode int32

const (
	// ModeDefault is the unconfigured platform default, used when the
	// owning element does not support the formatting mode concept.
	ModeDefault Mode = iota

	// ModeIdeal formats with ideal, resolution-independent metrics:
	// glyph advances keep their fractional precision.
	ModeIdeal

	// ModeDisplay formats with display-optimized metrics: glyph advances
	// are rounded to whole pixels, so that text snaps to the pixel grid.
	ModeDisplay
)

func (m Mode) String() string {
	switch m {
	case ModeIdeal:
		return "ideal"
	case ModeDisplay:
		return "display"
	default:
		return "default"
	}
}

// Kind selects which formatter backend [Create] instantiates.
type Kind int32

const (
	// Native formats using the platform text shaping engine
	// (go-text harfbuzz shaping and line wrapping).
	Native Kind = iota

	// CustomGlyphRun formats through direct glyph-run assembly from
	// nominal font metrics, for when the native engine is unavailable
	// or a specific quality mode must be forced.
	CustomGlyphRun
)

func (k Kind) String() string {
	switch k {
	case CustomGlyphRun:
		return "glyphrun"
	default:
		return "native"
	}
}

// defaultKind is the process-wide backend selector. It is read by [Create]
// only; live formatter instances are never affected by changes to it.
var defaultKind = Native

// DefaultKind returns the backend kind that [Create] currently uses.
func DefaultKind() Kind {
	return defaultKind
}

// SetDefaultKind sets the backend kind used by subsequent [Create] calls.
// This is process-wide configuration state with no synchronization:
// set it at configuration time, not concurrently with active formatting.
func SetDefaultKind(k Kind) {
	defaultKind = k
}
