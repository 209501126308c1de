// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich defines the per-run formatting properties supplied by a text
// source: typeface, size, weight, slant, color and language. A [Style]
// describes one uniform run; [Settings] carries the paragraph-level language
// and script defaults used when a run does not specify its own.
package rich

import (
	"image/color"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	gtlang "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
)

// Style describes the formatting properties of one uniform run of text.
type Style struct {

	// Families is the ordered list of font family names to try, including
	// generic names such as "sans-serif" or "monospace" that the font
	// scanner resolves per platform. An empty list uses the scanner default.
	Families []string

	// Size is the font size in pixels (dots).
	Size float32

	// Weight is the font weight, in CSS units (400 = normal, 700 = bold).
	Weight Weights

	// Slant is the font slant (normal or italic).
	Slant Slants

	// FillColor is the color for inking the glyphs of this run.
	// nil means use the default foreground.
	FillColor color.Color

	// Language is the BCP 47 language (culture) of this run, used for
	// language-specific shaping. The zero tag inherits the paragraph
	// [Settings] language.
	Language language.Tag
}

// NewStyle returns a new [Style] with default values.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

func (s *Style) Defaults() {
	s.Size = 16
	s.Weight = Normal
}

// SetFamilies sets the ordered font family list.
func (s *Style) SetFamilies(fams ...string) *Style {
	s.Families = fams
	return s
}

// SetSize sets the font size in pixels.
func (s *Style) SetSize(size float32) *Style {
	s.Size = size
	return s
}

// SetWeight sets the font weight.
func (s *Style) SetWeight(w Weights) *Style {
	s.Weight = w
	return s
}

// SetSlant sets the font slant.
func (s *Style) SetSlant(sl Slants) *Style {
	s.Slant = sl
	return s
}

// SetFillColor sets the glyph ink color.
func (s *Style) SetFillColor(c color.Color) *Style {
	s.FillColor = c
	return s
}

// SetLanguage sets the run language (culture).
func (s *Style) SetLanguage(t language.Tag) *Style {
	s.Language = t
	return s
}

// Weights are the standard font weights, expressed in CSS units.
type Weights int32

const (
	Light  Weights = 300
	Normal Weights = 400
	Medium Weights = 500
	Bold   Weights = 700
	Black  Weights = 900
)

// Slants are the font slant variants.
type Slants int32

const (
	SlantNormal Slants = iota
	Italic
)

// Query returns the fontscan query parameters matching the style,
// for font selection in a [fontscan.FontMap].
func (s *Style) Query() fontscan.Query {
	return fontscan.Query{
		Families: s.Families,
		Aspect:   s.Aspect(),
	}
}

// Aspect returns the go-text font aspect parameters matching the style.
func (s *Style) Aspect() font.Aspect {
	as := font.Aspect{}
	as.Style = font.Style(1 + s.Slant)
	as.Weight = font.Weight(s.Weight)
	return as
}

// GoTextLanguage returns the go-text language for the run, falling back
// to the [Settings] default when the run has no language of its own.
func (s *Style) GoTextLanguage(sts *Settings) gtlang.Language {
	if s.Language != (language.Tag{}) {
		return gtlang.NewLanguage(s.Language.String())
	}
	return sts.GoTextLanguage()
}
