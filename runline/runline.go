// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runline implements the [textline.CustomGlyphRun] formatter
// backend: direct glyph-run assembly from nominal font metrics, with
// UAX#14 segmentation for line-break opportunities and a greedy fit to
// the paragraph width. It is the fallback path for when the native
// shaping engine is unavailable or a specific quality mode must be
// forced; it trades shaping fidelity (no ligatures, no kerning) for
// having no dependency on the shaping engine itself.
package runline

import (
	"fmt"
	"unicode"

	"cogentcore.org/textline"
	"cogentcore.org/textline/fontset"
	"cogentcore.org/textline/rich"
	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/segmenter"
)

// Formatter is the custom glyph-run line formatter.
type Formatter struct {
	mode    textline.Mode
	fontMap *fontscan.FontMap
	seg     segmenter.Segmenter

	released bool
}

// New returns a glyph-run formatter configured with the given formatting
// mode, using a font map per [fontset.NewMap] and [fontset.System].
func New(mode textline.Mode) *Formatter {
	return NewWithMap(mode, fontset.NewMap(fontset.System))
}

// NewWithMap is [New] with a caller-provided font map.
func NewWithMap(mode textline.Mode, fm *fontscan.FontMap) *Formatter {
	return &Formatter{mode: mode, fontMap: fm}
}

// Release releases the formatter resources. The formatter must not be
// used after Release.
func (ft *Formatter) Release() error {
	ft.released = true
	ft.fontMap = nil
	return nil
}

// glyphInfo is the per-rune measuring result for the current paragraph.
type glyphInfo struct {
	gid  font.GID
	face *font.Face
	sty  *rich.Style
	adv  float32
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
	gis, err := ft.measure(src, first, end, txt, para)
	if err != nil {
		return nil, err
	}
	lineEnd := ft.fit(txt, gis, width)
	ln := ft.assemble(first, txt[:lineEnd], gis[:lineEnd], para, width)
	if first+lineEnd < end {
		ln.SetBreak(textline.NewLineBreak(first+lineEnd, nil))
	}
	return ln, nil
}

// measure resolves a face and nominal advance for every paragraph rune,
// querying the font map per styled source run.
func (ft *Formatter) measure(src textline.Source, first, end int, txt []rune, para *textline.ParagraphStyle) ([]glyphInfo, error) {
	gis := make([]glyphInfo, len(txt))
	for i := first; i < end; {
		sty, _, rend := src.RunAt(i)
		if sty == nil {
			sty = &para.Default
			rend = end
		}
		rend = min(rend, end)
		ft.fontMap.SetQuery(sty.Query())
		for j := i; j < rend; j++ {
			r := txt[j-first]
			face := ft.fontMap.ResolveFace(r)
			if face == nil {
				return nil, fmt.Errorf("%w: no font face resolves %q", textline.ErrBackend, r)
			}
			gid, ok := face.NominalGlyph(r)
			if !ok {
				gid = 0 // .notdef
			}
			adv := face.HorizontalAdvance(gid) * sty.Size / float32(face.Upem())
			if ft.mode == textline.ModeDisplay {
				adv = math32.Round(adv)
			}
			gis[j-first] = glyphInfo{gid: gid, face: face, sty: sty, adv: adv}
		}
		i = rend
	}
	return gis, nil
}

// fit returns the paragraph-relative end of the line: the furthest UAX#14
// break candidate whose advance, ignoring trailing whitespace, fits the
// width. When not even the first candidate fits, it breaks within the
// segment at rune granularity, keeping at least one rune.
func (ft *Formatter) fit(txt []rune, gis []glyphInfo, width float32) int {
	ft.seg.Init(txt)
	iter := ft.seg.LineIterator()
	lineEnd := 0
	for iter.Next() {
		seg := iter.Line()
		candEnd := seg.Offset + len(seg.Text)
		if ft.advance(txt, gis, candEnd) > width {
			break
		}
		lineEnd = candEnd
	}
	if lineEnd > 0 {
		return lineEnd
	}
	// first segment alone exceeds the width: emergency break
	var total float32
	for i, gi := range gis {
		total += gi.adv
		if total > width && i > 0 {
			return i
		}
	}
	return max(lineEnd, 1)
}

// advance returns the total advance of txt[:end], ignoring trailing
// whitespace, which does not count against the wrap width.
func (ft *Formatter) advance(txt []rune, gis []glyphInfo, end int) float32 {
	for end > 0 && unicode.IsSpace(txt[end-1]) {
		end--
	}
	var total float32
	for _, gi := range gis[:end] {
		total += gi.adv
	}
	return total
}

// assemble builds the line, splitting glyph runs wherever the face or
// style changes.
func (ft *Formatter) assemble(first int, txt []rune, gis []glyphInfo, para *textline.ParagraphStyle, width float32) *textline.Line {
	ln := &textline.Line{Runes: textline.Range{Start: first, End: first + len(txt)}}
	var maxAsc, maxDesc float32
	var run *textline.Run
	for i, gi := range gis {
		if run == nil || run.Face != gi.face || run.Style != gi.sty {
			ln.Runs = append(ln.Runs, textline.Run{
				Face:  gi.face,
				Size:  gi.sty.Size,
				Style: gi.sty,
				Runes: textline.Range{Start: first + i, End: first + i},
			})
			run = &ln.Runs[len(ln.Runs)-1]
			asc, desc := fontset.Extents(gi.face, gi.sty.Size)
			maxAsc = max(maxAsc, asc)
			maxDesc = max(maxDesc, desc)
		}
		run.Glyphs = append(run.Glyphs, textline.Glyph{
			ID:       gi.gid,
			Cluster:  first + i,
			XAdvance: gi.adv,
		})
		run.Advance += gi.adv
		run.Runes.End = first + i + 1
		ln.Advance += gi.adv
	}
	if len(gis) == 0 {
		// keep metrics meaningful for a zero-width line
		asc, desc := fontset.Extents(ft.resolveDefault(para), para.Default.Size)
		maxAsc, maxDesc = asc, desc
	}
	ln.Ascent = maxAsc
	ln.Descent = maxDesc
	ln.Height = para.LineSpacing * (maxAsc + maxDesc)
	ln.Offset = para.AlignOffset(ln.Advance, width)
	return ln
}

func (ft *Formatter) resolveDefault(para *textline.ParagraphStyle) *font.Face {
	ft.fontMap.SetQuery(para.Default.Query())
	return ft.fontMap.ResolveFace(' ')
}

// emptyLine returns the valid zero-width line for an empty paragraph.
func (ft *Formatter) emptyLine(first int, para *textline.ParagraphStyle) (*textline.Line, error) {
	face := ft.resolveDefault(para)
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
