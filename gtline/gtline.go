// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gtline implements the [textline.Native] formatter backend on the
// go-text shaping engine: harfbuzz shaping per styled run, font selection
// through fontscan, and UAX#14 line wrapping. The paragraph remainder is
// wrapped once and cached in the returned break state, so threading the
// break state through successive calls replays lines without re-shaping.
package gtline

import (
	"fmt"
	"slices"

	"cogentcore.org/textline"
	"cogentcore.org/textline/fontset"
	"cogentcore.org/textline/rich"
	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/shaping"
)

// Formatter is the native line formatter, from go-text/shaping.
type Formatter struct {
	mode     textline.Mode
	fontMap  *fontscan.FontMap
	shaper   shaping.HarfbuzzShaper
	wrapper  shaping.LineWrapper
	splitter shaping.Segmenter

	// outBuff is the output buffer to avoid excessive memory consumption.
	outBuff []shaping.Output

	released bool
}

// New returns a native formatter configured with the given formatting
// mode, using a font map per [fontset.NewMap] and [fontset.System].
func New(mode textline.Mode) *Formatter {
	return NewWithMap(mode, fontset.NewMap(fontset.System))
}

// NewWithMap is [New] with a caller-provided font map.
func NewWithMap(mode textline.Mode, fm *fontscan.FontMap) *Formatter {
	ft := &Formatter{mode: mode, fontMap: fm}
	ft.shaper.SetFontCacheSize(32)
	return ft
}

// Release releases the backend shaping resources. The formatter must not
// be used after Release.
func (ft *Formatter) Release() error {
	ft.released = true
	ft.fontMap = nil
	ft.outBuff = nil
	return nil
}

// wrapState is the backend payload of a [textline.LineBreak]: the wrapped
// remainder of the paragraph, replayed line by line while the caller
// threads the break state through.
type wrapState struct {
	base   int     // source index of the first paragraph rune
	end    int     // source index of the paragraph end (exclusive)
	width  float32 // paragraph width the lines were wrapped at
	lines  []shaping.Line
	styles []styleSpan
	li     int // next line to emit
}

// styleSpan records the source style of a shaped range, in source indexes.
type styleSpan struct {
	start, end int
	sty        *rich.Style
}

func (st *wrapState) styleFor(i int) *rich.Style {
	for _, ss := range st.styles {
		if i >= ss.start && i < ss.end {
			return ss.sty
		}
	}
	return nil
}

// FormatLine implements [textline.Formatter.FormatLine].
func (ft *Formatter) FormatLine(src textline.Source, first int, width float32, para *textline.ParagraphStyle, prev *textline.LineBreak) (*textline.Line, error) {
	if ft.released {
		return nil, fmt.Errorf("%w", textline.ErrReleased)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: text source is nil", textline.ErrInvalidArgument)
	}
	if para == nil {
		return nil, fmt.Errorf("%w: paragraph properties are nil", textline.ErrInvalidArgument)
	}
	if first < 0 || first > src.Len() {
		return nil, fmt.Errorf("%w: first index %d out of range [0,%d]", textline.ErrInvalidArgument, first, src.Len())
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: paragraph width %g must be > 0", textline.ErrInvalidArgument, width)
	}
	if prev != nil {
		if st, ok := prev.Payload().(*wrapState); ok && st.width == width && st.li < len(st.lines) &&
			prev.Next() > st.base && prev.Next() < st.end {
			return ft.emit(st, para), nil
		}
		// width changed or foreign state: re-wrap from the continuation point
		first = prev.Next()
	}
	end := textline.ParagraphEnd(src, first)
	if end == first {
		return ft.emptyLine(first, para)
	}
	txt := make([]rune, 0, end-first)
	for i := first; i < end; i++ {
		txt = append(txt, src.At(i))
	}
	st := &wrapState{base: first, end: end, width: width}
	outs, err := ft.shape(src, first, end, txt, para, st)
	if err != nil {
		return nil, err
	}
	cfg := shaping.WrapConfig{
		Direction:                     para.Direction.ToGoText(),
		BreakPolicy:                   shaping.WhenNecessary,
		DisableTrailingWhitespaceTrim: true,
	}
	lines, _ := ft.wrapper.WrapParagraph(cfg, int(width), txt, shaping.NewSliceIterator(outs))
	if len(lines) == 0 {
		return ft.emptyLine(first, para)
	}
	st.lines = lines
	if len(lines) > 1 {
		// the wrapper recycles its buffers on the next WrapParagraph call,
		// so lines cached in the break state must be copied out
		st.lines = cloneLines(lines)
	}
	return ft.emit(st, para), nil
}

// cloneLines copies wrapped lines out of the wrapper-owned buffers.
func cloneLines(lines []shaping.Line) []shaping.Line {
	lns := make([]shaping.Line, len(lines))
	for li, lno := range lines {
		outs := slices.Clone(lno)
		for oi := range outs {
			outs[oi].Glyphs = slices.Clone(outs[oi].Glyphs)
		}
		lns[li] = outs
	}
	return lns
}

// shape shapes the source runs of the paragraph [first,end), recording the
// style of each shaped range in st.
func (ft *Formatter) shape(src textline.Source, first, end int, txt []rune, para *textline.ParagraphStyle, st *wrapState) ([]shaping.Output, error) {
	ft.outBuff = ft.outBuff[:0]
	dir := para.Direction.ToGoText()
	for i := first; i < end; {
		sty, _, rend := src.RunAt(i)
		if sty == nil {
			sty = &para.Default
			rend = end
		}
		rend = min(rend, end)
		in := shaping.Input{
			Text:      txt,
			RunStart:  i - first,
			RunEnd:    rend - first,
			Direction: dir,
			Size:      textline.ToFixed(sty.Size),
			Script:    para.Settings.Script,
			Language:  sty.GoTextLanguage(&para.Settings),
		}
		ft.fontMap.SetQuery(sty.Query())
		ins := ft.splitter.Split(in, ft.fontMap)
		for _, sin := range ins {
			if sin.Face == nil {
				return nil, fmt.Errorf("%w: no font face resolves text at [%d,%d)", textline.ErrBackend, i, rend)
			}
			ft.outBuff = append(ft.outBuff, ft.shaper.Shape(sin))
		}
		st.styles = append(st.styles, styleSpan{start: i, end: rend, sty: sty})
		i = rend
	}
	return ft.outBuff, nil
}

// emit converts the next cached wrapped line into a [textline.Line] and
// advances the replay cursor.
func (ft *Formatter) emit(st *wrapState, para *textline.ParagraphStyle) *textline.Line {
	lno := st.lines[st.li]
	st.li++
	ln := &textline.Line{Runes: textline.Range{Start: -1, End: -1}}
	var maxAsc, maxDesc float32
	for _, out := range lno {
		rstart := st.base + out.Runes.Offset
		rend := rstart + out.Runes.Count
		if ln.Runes.Start < 0 || rstart < ln.Runes.Start {
			ln.Runes.Start = rstart
		}
		ln.Runes.End = max(ln.Runes.End, rend)
		maxAsc = max(maxAsc, textline.FromFixed(out.LineBounds.Ascent))
		maxDesc = max(maxDesc, math32.Abs(textline.FromFixed(out.LineBounds.Descent)))
		run := textline.Run{
			Face:  out.Face,
			Size:  textline.FromFixed(out.Size),
			Style: st.styleFor(rstart),
			Runes: textline.Range{Start: rstart, End: rend},
		}
		run.Glyphs = make([]textline.Glyph, len(out.Glyphs))
		for gi, g := range out.Glyphs {
			adv := textline.FromFixed(g.XAdvance)
			if ft.mode == textline.ModeDisplay {
				adv = math32.Round(adv)
			}
			run.Glyphs[gi] = textline.Glyph{
				ID:       g.GlyphID,
				Cluster:  st.base + g.ClusterIndex,
				XAdvance: adv,
				XOffset:  textline.FromFixed(g.XOffset),
				YOffset:  textline.FromFixed(g.YOffset),
			}
			run.Advance += adv
		}
		ln.Advance += run.Advance
		ln.Runs = append(ln.Runs, run)
	}
	if ln.Runes.Start < 0 {
		ln.Runes = textline.Range{Start: st.base, End: st.base}
	}
	ln.Ascent = maxAsc
	ln.Descent = maxDesc
	ln.Height = para.LineSpacing * (maxAsc + maxDesc)
	ln.Offset = para.AlignOffset(ln.Advance, st.width)
	if st.li < len(st.lines) {
		next := st.base + st.lines[st.li][0].Runes.Offset
		ln.SetBreak(textline.NewLineBreak(next, st))
	}
	return ln
}

// emptyLine returns the valid zero-width line for an empty paragraph,
// with metrics from the default run properties.
func (ft *Formatter) emptyLine(first int, para *textline.ParagraphStyle) (*textline.Line, error) {
	ft.fontMap.SetQuery(para.Default.Query())
	face := ft.fontMap.ResolveFace(' ')
	if face == nil {
		return nil, fmt.Errorf("%w: no font face available", textline.ErrBackend)
	}
	asc, desc := fontset.Extents(face, para.Default.Size)
	return &textline.Line{
		Runes:   textline.Range{Start: first, End: first},
		Ascent:  asc,
		Descent: desc,
		Height:  para.LineSpacing * (asc + desc),
	}, nil
}
