// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontset constructs the font maps used by the formatter backends:
// a set of embedded Latin Modern faces that are always available, plus the
// system fonts when enabled. Each formatter owns its own map.
package fontset

import (
	"bytes"
	"os"

	"cogentcore.org/textline/base/errors"
	"github.com/chewxy/math32"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// System controls whether newly created font maps include the system
// fonts in addition to the embedded faces. It must be set before a
// formatter is created to have an effect on that formatter. Tests disable
// it for deterministic layout.
var System = true

// embedded are the built-in faces registered in every map, keyed by the
// family name they are registered under.
var embedded = []struct {
	family string
	ttf    []byte
}{
	{"Latin Modern Roman", lmroman10regular.TTF},
	{"Latin Modern Roman", lmroman10bold.TTF},
	{"Latin Modern Roman", lmroman10italic.TTF},
	{"Latin Modern Mono", lmmono10regular.TTF},
	{"Latin Modern Sans", lmsans10regular.TTF},
}

// NewMap returns a font map with the embedded faces registered and, if
// system is true, the system fonts loaded using the user cache dir.
// System font loading failures are logged, not fatal: the embedded faces
// always remain available.
func NewMap(system bool) *fontscan.FontMap {
	fm := fontscan.NewFontMap(nil)
	if system {
		dir := errors.Log1(os.UserCacheDir())
		errors.Log(fm.UseSystemFonts(dir))
	}
	for _, ef := range embedded {
		errors.Log(fm.AddFont(bytes.NewReader(ef.ttf), ef.family, ef.family))
	}
	return fm
}

// Extents returns the ascent and descent of the given face at the given
// font size in pixels. Descent is positive below the baseline.
func Extents(face *font.Face, size float32) (ascent, descent float32) {
	ext, ok := face.FontHExtents()
	if !ok {
		// fallback to typographic convention
		return 0.8 * size, 0.2 * size
	}
	scale := size / float32(face.Upem())
	return ext.Ascender * scale, math32.Abs(ext.Descender) * scale
}
