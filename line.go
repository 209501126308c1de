// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline

import (
	"fmt"

	"cogentcore.org/textline/rich"
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"
)

// Range is a range of rune indexes into the original [Source],
// with an exclusive End.
type Range struct {
	Start, End int
}

// Len returns the number of runes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Glyph is one positioned glyph within a [Run].
type Glyph struct {

	// ID is the glyph ID in the run's font face.
	ID font.GID

	// Cluster is the rune index in the original [Source] of the cluster
	// this glyph belongs to.
	Cluster int

	// XAdvance is the horizontal advance of the glyph in pixels. Under
	// [ModeDisplay] it is rounded to a whole pixel.
	XAdvance float32

	// XOffset and YOffset are rendering offsets relative to the pen
	// position, in pixels.
	XOffset, YOffset float32
}

// Run is a span of shaped glyphs sharing one font face and style,
// in visual order within its [Line].
type Run struct {

	// Face is the font face the glyphs index into.
	Face *font.Face

	// Size is the font size in pixels.
	Size float32

	// Style holds the run formatting properties from the source.
	Style *rich.Style

	// Glyphs are the positioned glyphs of the run.
	Glyphs []Glyph

	// Advance is the total advance width of the run in pixels.
	Advance float32

	// Runes is the range of source runes this run covers.
	Runes Range
}

// Line is the result of one line-formatting call: a shaped line of glyph
// runs with the metrics needed to paint it and to hit-test against it.
// It is exclusively owned by the caller and must be released with
// [Line.Release] when no longer needed.
type Line struct {

	// Runs are the shaped glyph runs of the line, in visual order.
	Runs []Run

	// Runes is the range of source runes the line covers. The paragraph
	// terminator, if any, is not included.
	Runes Range

	// Advance is the total advance width of the line in pixels.
	Advance float32

	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the
	// line, as a positive value.
	Descent float32

	// Height is the line height, after applying the paragraph
	// line spacing.
	Height float32

	// Offset is the alignment offset from the paragraph origin along the
	// flow direction.
	Offset float32

	brk      *LineBreak
	released bool
}

// Break returns the line-break continuation state to pass to the next
// [Formatter.FormatLine] call for the same paragraph, or nil if this line
// ends the paragraph.
func (ln *Line) Break() *LineBreak {
	return ln.brk
}

// SetBreak sets the continuation state; for use by formatter backends.
func (ln *Line) SetBreak(brk *LineBreak) {
	ln.brk = brk
}

// Release releases the shaping results owned by the line. The line must
// not be used after Release; releasing twice is a no-op.
func (ln *Line) Release() {
	if ln.released {
		return
	}
	ln.released = true
	ln.Runs = nil
	ln.brk = nil
}

func (ln *Line) String() string {
	return fmt.Sprintf("line [%d,%d) runs: %d advance: %g", ln.Runes.Start, ln.Runes.End, len(ln.Runs), ln.Advance)
}

// LineBreak is the opaque continuation state produced by formatting one
// line and consumed by the next call for the same paragraph. Pass it
// through unmodified, or nil for the first line of a paragraph. Passing a
// break state from a different paragraph or out of order is undefined.
type LineBreak struct {
	next    int
	payload any
}

// NewLineBreak returns a continuation state whose next line starts at the
// given source index; for use by formatter backends, which may attach
// backend-private payload.
func NewLineBreak(next int, payload any) *LineBreak {
	return &LineBreak{next: next, payload: payload}
}

// Next returns the source rune index at which the next line starts.
func (lb *LineBreak) Next() int {
	return lb.next
}

// Payload returns the backend-private continuation data.
func (lb *LineBreak) Payload() any {
	return lb.payload
}

// FromFixed returns the float32 pixel value of a 26.6 fixed point value.
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// ToFixed returns the 26.6 fixed point value of a float32 pixel value.
func ToFixed(f float32) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}
