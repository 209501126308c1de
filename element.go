// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline

import "image/color"

// Element is the read contract to the UI element that owns a formatter:
// the source of the default typeface, font size and foreground used when
// formatting text for that element.
type Element interface {

	// FontFamily returns the ordered font family list of the element's
	// resolved font.
	FontFamily() []string

	// FontSize returns the element's font size in pixels.
	FontSize() float32

	// Foreground returns the element's foreground brush color.
	Foreground() color.Color
}

// ModeProvider is the optional capability of an [Element] to carry a text
// formatting mode. Elements on platforms without the formatting mode
// concept simply do not implement it, and [Create] degrades gracefully to
// an unconfigured default formatter. The probe is performed once per
// Create call; the result is fixed for the formatter's lifetime.
type ModeProvider interface {

	// FormattingMode returns the element's current formatting mode.
	FormattingMode() Mode
}

// Property identifies a styleable property of an element, with a well-known
// identity usable for change-notification filtering.
type Property string

// FormattingModeProperty is the one property whose change invalidates an
// existing formatter: see [PropertyChangeAffectsFormatter].
const FormattingModeProperty Property = "text-formatting-mode"
