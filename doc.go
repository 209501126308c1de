// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textline abstracts over a text shaping engine for laying out one
// line of text at a time, as needed by a text editor rendering pipeline.
// Two interchangeable formatter backends implement the same line-formatting
// contract: [Native] uses the go-text shaping engine (harfbuzz shaping plus
// UAX#14 line wrapping), and [CustomGlyphRun] assembles glyph runs directly
// from nominal font metrics. The backend is selected by the process-wide
// [DefaultKind] at the time a formatter is created, and configured with the
// owning element's formatting [Mode].
//
// The typical flow is:
//
//	ft, err := textline.Create(owner)
//	...
//	var brk *textline.LineBreak
//	for first := 0; first < src.Len(); {
//		ln, err := ft.FormatLine(src, first, width, para, brk)
//		...
//		first = ln.Runes.End
//		brk = ln.Break()
//		if brk == nil { // paragraph finished; skip the terminator
//			first++
//		}
//		ln.Release()
//	}
//	ft.Release()
//
// Importing [cogentcore.org/textline/backends] (typically as a blank import
// in the main package) registers both backends.
package textline
