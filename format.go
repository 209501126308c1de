// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline

import "errors"

// MaxWidth is the paragraph width callers use to emulate unbounded width
// (no wrapping), in pixels.
const MaxWidth = 32000

var (
	// ErrInvalidArgument indicates a required input was absent or out of
	// range: owner, element, text, text source, or paragraph properties.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrReleased indicates a line-formatting call on a released formatter.
	ErrReleased = errors.New("formatter already released")

	// ErrBackend wraps an opaque shaping failure from the underlying
	// engine. Backend failures are not retried; they abort the current
	// line only and leave the formatter usable for independent calls.
	ErrBackend = errors.New("backend formatting failure")

	// ErrNoBackend indicates that no backend is registered for the
	// current [Kind]; import cogentcore.org/textline/backends.
	ErrNoBackend = errors.New("no formatter backend registered: import cogentcore.org/textline/backends")
)

// Formatter formats one line of text per call, threading line-break
// continuation state between successive calls for the same paragraph.
// A formatter is created by [Create], owns exactly one backend shaping
// resource, and must be released exactly once with Release. It is not
// internally synchronized: all calls must come from one goroutine.
type Formatter interface {

	// FormatLine formats the single line starting at rune index first in
	// src, wrapping to the given paragraph width in pixels, with para
	// supplying the paragraph-level properties and default run properties.
	// prev must be nil at the start of a paragraph, or the exact break
	// state returned by the immediately preceding call for the same
	// paragraph. The returned line is exclusively owned by the caller and
	// must be released. Returns an error wrapping [ErrInvalidArgument]
	// for absent or out-of-range inputs, [ErrReleased] after Release, and
	// [ErrBackend] for shaping failures.
	FormatLine(src Source, first int, width float32, para *ParagraphStyle, prev *LineBreak) (*Line, error)

	// Release releases the backend shaping resources held by the
	// formatter. Formatting calls after Release are rejected.
	Release() error
}

// backendNew holds the registered backend constructors, indexed by [Kind].
var backendNew [CustomGlyphRun + 1]func(mode Mode) (Formatter, error)

// RegisterBackend registers the constructor for the given backend kind.
// It is called from init functions of backend packages; see
// cogentcore.org/textline/backends.
func RegisterBackend(k Kind, fn func(mode Mode) (Formatter, error)) {
	backendNew[k] = fn
}
