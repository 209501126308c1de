// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline

import (
	"strings"

	"cogentcore.org/textline/rich"
)

// Source is the read contract through which a formatter obtains characters
// and per-run formatting properties from the surrounding editor's document.
// Indexes are rune indexes into the addressable range [0, Len()).
type Source interface {

	// Len returns the total number of addressable runes.
	Len() int

	// At returns the rune at index i.
	At(i int) rune

	// RunAt returns the formatting properties of the uniform run containing
	// index i, along with the run's start and end (exclusive) indexes.
	RunAt(i int) (sty *rich.Style, start, end int)
}

// Span is one uniform run of text in a [Spans] source.
type Span struct {
	Style *rich.Style
	Text  []rune
}

// Spans is a simple [Source] backed by a slice of styled spans. It supports
// both the single uniform run used by [CreateLine] and heterogeneous runs
// for full paragraph formatting.
type Spans []Span

// NewSpans returns a [Spans] source with a single run of the given text
// and style.
func NewSpans(sty *rich.Style, text string) Spans {
	return Spans{{Style: sty, Text: []rune(text)}}
}

// AddSpan appends a run with the given style and text.
func (sp *Spans) AddSpan(sty *rich.Style, text string) *Spans {
	*sp = append(*sp, Span{Style: sty, Text: []rune(text)})
	return sp
}

func (sp Spans) Len() int {
	n := 0
	for _, s := range sp {
		n += len(s.Text)
	}
	return n
}

func (sp Spans) At(i int) rune {
	for _, s := range sp {
		if i < len(s.Text) {
			return s.Text[i]
		}
		i -= len(s.Text)
	}
	return 0
}

func (sp Spans) RunAt(i int) (sty *rich.Style, start, end int) {
	ci := 0
	for _, s := range sp {
		sn := len(s.Text)
		if i >= ci && i < ci+sn {
			return s.Style, ci, ci + sn
		}
		ci += sn
	}
	return nil, -1, -1
}

func (sp Spans) String() string {
	var b strings.Builder
	for _, s := range sp {
		b.WriteString(string(s.Text))
	}
	return b.String()
}

// ParagraphEnd returns the end (exclusive) of the paragraph containing
// first: the index of the next newline at or after first, or src.Len().
func ParagraphEnd(src Source, first int) int {
	n := src.Len()
	for i := first; i < n; i++ {
		if src.At(i) == '\n' {
			return i
		}
	}
	return n
}
