// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline

import (
	"fmt"
	"image/color"
)

// Create returns a new [Formatter] bound to the given owner element's
// current configuration. The backend is the one named by [DefaultKind] at
// the time of the call; the formatting mode is read once from the owner if
// it implements [ModeProvider], and is otherwise the unconfigured default.
func Create(owner Element) (Formatter, error) {
	if owner == nil {
		return nil, fmt.Errorf("%w: owner element is nil", ErrInvalidArgument)
	}
	mode := ModeDefault
	if mp, ok := owner.(ModeProvider); ok {
		mode = mp.FormattingMode()
	}
	kind := DefaultKind()
	if kind < 0 || int(kind) >= len(backendNew) || backendNew[kind] == nil {
		return nil, fmt.Errorf("%w (kind %v)", ErrNoBackend, kind)
	}
	return backendNew[kind](mode)
}

// PropertyChangeAffectsFormatter reports whether a change to the given
// property of the owner invalidates an existing formatter, so that the
// caller should release it and create a new one. This is true exactly for
// the formatting mode property on elements that support the formatting
// mode concept; it is false, never an error, otherwise.
func PropertyChangeAffectsFormatter(owner Element, p Property) bool {
	if _, ok := owner.(ModeProvider); !ok {
		return false
	}
	return p == FormattingModeProperty
}

// LineOption is an option for [CreateLine], overriding a property
// otherwise resolved from the element's current style.
type LineOption func(o *lineOptions)

type lineOptions struct {
	families   []string
	size       float32
	foreground color.Color
}

// WithFamily sets the font family list instead of the element's font.
func WithFamily(fams ...string) LineOption {
	return func(o *lineOptions) { o.families = fams }
}

// WithSize sets the font size in pixels instead of the element's
// font size.
func WithSize(size float32) LineOption {
	return func(o *lineOptions) { o.size = size }
}

// WithForeground sets the ink color instead of the element's
// foreground brush.
func WithForeground(c color.Color) LineOption {
	return func(o *lineOptions) { o.foreground = c }
}

// CreateLine formats the given text as one single-run, non-wrapped line,
// resolving typeface, size and foreground from the element's current style
// unless overridden by options. It creates a formatter for the element,
// performs exactly one formatting call at unbounded width with no previous
// break state, and releases the formatter. Empty text yields a valid
// zero-width line.
func CreateLine(owner Element, text string, opts ...LineOption) (*Line, error) {
	if owner == nil {
		return nil, fmt.Errorf("%w: owner element is nil", ErrInvalidArgument)
	}
	o := lineOptions{
		families:   owner.FontFamily(),
		size:       owner.FontSize(),
		foreground: owner.Foreground(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	para := NewParagraphStyle()
	para.Default.Families = o.families
	para.Default.Size = o.size
	para.Default.FillColor = o.foreground
	src := NewSpans(&para.Default, text)

	ft, err := Create(owner)
	if err != nil {
		return nil, err
	}
	defer ft.Release()
	return ft.FormatLine(src, 0, MaxWidth, para, nil)
}
