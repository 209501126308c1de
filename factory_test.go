// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline_test

import (
	"image/color"
	"os"
	"testing"

	"cogentcore.org/textline"
	_ "cogentcore.org/textline/backends"
	"cogentcore.org/textline/fontset"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	fontset.System = false // embedded fonts only, for deterministic layout
	os.Exit(m.Run())
}

// testElement is a plain formatter owner without formatting mode support.
type testElement struct {
	family []string
	size   float32
}

func (el *testElement) FontFamily() []string    { return el.family }
func (el *testElement) FontSize() float32       { return el.size }
func (el *testElement) Foreground() color.Color { return color.Black }

// modeElement additionally carries a formatting mode.
type modeElement struct {
	testElement
	mode textline.Mode
}

func (el *modeElement) FormattingMode() textline.Mode { return el.mode }

func newTestElement() *testElement {
	return &testElement{family: []string{"Latin Modern Roman"}, size: 16}
}

func TestCreateNilOwner(t *testing.T) {
	ft, err := textline.Create(nil)
	assert.Nil(t, ft)
	assert.ErrorIs(t, err, textline.ErrInvalidArgument)
}

func TestCreate(t *testing.T) {
	ft, err := textline.Create(newTestElement())
	assert.NoError(t, err)
	assert.NotNil(t, ft)
	assert.NoError(t, ft.Release())
}

func TestCreateWithMode(t *testing.T) {
	el := &modeElement{testElement: *newTestElement(), mode: textline.ModeDisplay}
	ft, err := textline.Create(el)
	assert.NoError(t, err)
	assert.NotNil(t, ft)
	assert.NoError(t, ft.Release())
}

func TestPropertyChangeAffectsFormatter(t *testing.T) {
	plain := newTestElement()
	moded := &modeElement{testElement: *newTestElement()}

	// elements without formatting mode support are never affected
	assert.False(t, textline.PropertyChangeAffectsFormatter(plain, textline.FormattingModeProperty))
	assert.False(t, textline.PropertyChangeAffectsFormatter(plain, "font-size"))

	// elements with it are affected by the mode property only
	assert.True(t, textline.PropertyChangeAffectsFormatter(moded, textline.FormattingModeProperty))
	assert.False(t, textline.PropertyChangeAffectsFormatter(moded, "font-size"))
	assert.False(t, textline.PropertyChangeAffectsFormatter(moded, ""))
}

func TestCreateLine(t *testing.T) {
	ln, err := textline.CreateLine(newTestElement(), "Hello")
	assert.NoError(t, err)
	assert.NotNil(t, ln)
	assert.Equal(t, textline.Range{Start: 0, End: 5}, ln.Runes)
	assert.Nil(t, ln.Break())
	assert.Greater(t, ln.Advance, float32(0))
	assert.Greater(t, ln.Height, float32(0))
	ln.Release()
}

func TestCreateLineEmpty(t *testing.T) {
	ln, err := textline.CreateLine(newTestElement(), "")
	assert.NoError(t, err)
	assert.NotNil(t, ln)
	assert.Equal(t, 0, ln.Runes.Len())
	assert.Equal(t, float32(0), ln.Advance)
	assert.Greater(t, ln.Height, float32(0))
	assert.Nil(t, ln.Break())
	ln.Release()
}

func TestCreateLineNilOwner(t *testing.T) {
	ln, err := textline.CreateLine(nil, "Hello")
	assert.Nil(t, ln)
	assert.ErrorIs(t, err, textline.ErrInvalidArgument)
}

func TestCreateLineOptions(t *testing.T) {
	base, err := textline.CreateLine(newTestElement(), "Hello")
	assert.NoError(t, err)
	big, err := textline.CreateLine(newTestElement(), "Hello", textline.WithSize(32))
	assert.NoError(t, err)
	assert.Greater(t, big.Advance, base.Advance)
	base.Release()
	big.Release()
}

func TestFormatLineAfterRelease(t *testing.T) {
	ft, err := textline.Create(newTestElement())
	assert.NoError(t, err)
	assert.NoError(t, ft.Release())

	para := textline.NewParagraphStyle()
	src := textline.NewSpans(&para.Default, "Hello")
	ln, err := ft.FormatLine(src, 0, 200, para, nil)
	assert.Nil(t, ln)
	assert.ErrorIs(t, err, textline.ErrReleased)
}

// formatAll formats the whole source, threading the break state, and
// returns the covered rune ranges and total advance.
func formatAll(t *testing.T, ft textline.Formatter, src textline.Source, width float32, para *textline.ParagraphStyle) ([]textline.Range, float32) {
	var ranges []textline.Range
	var total float32
	first := 0
	var brk *textline.LineBreak
	for first < src.Len() {
		ln, err := ft.FormatLine(src, first, width, para, brk)
		assert.NoError(t, err)
		if err != nil {
			return ranges, total
		}
		ranges = append(ranges, ln.Runes)
		total += ln.Advance
		brk = ln.Break()
		first = ln.Runes.End
		ln.Release()
		if brk == nil {
			first++
		}
	}
	return ranges, total
}

func TestBreakThreading(t *testing.T) {
	for _, kind := range []textline.Kind{textline.Native, textline.CustomGlyphRun} {
		t.Run(kind.String(), func(t *testing.T) {
			textline.SetDefaultKind(kind)
			defer textline.SetDefaultKind(textline.Native)

			ft, err := textline.Create(newTestElement())
			assert.NoError(t, err)
			defer ft.Release()

			para := textline.NewParagraphStyle()
			para.Default.Families = []string{"Latin Modern Roman"}
			src := textline.NewSpans(&para.Default,
				"the quick brown fox jumps over the lazy dog and keeps on running")
			ranges, _ := formatAll(t, ft, src, 150, para)
			assert.Greater(t, len(ranges), 1)

			// the lines cover the source contiguously, without overlap
			assert.Equal(t, 0, ranges[0].Start)
			for i := 1; i < len(ranges); i++ {
				assert.Equal(t, ranges[i-1].End, ranges[i].Start)
			}
			assert.Equal(t, src.Len(), ranges[len(ranges)-1].End)
		})
	}
}

func TestBackendInterchangeability(t *testing.T) {
	// kerning-free ASCII measures nominally the same in both backends
	const text = "monomono"
	para := textline.NewParagraphStyle()
	para.Default.Families = []string{"Latin Modern Mono"}
	src := textline.NewSpans(&para.Default, text)

	advances := map[textline.Kind]float32{}
	for _, kind := range []textline.Kind{textline.Native, textline.CustomGlyphRun} {
		textline.SetDefaultKind(kind)
		ft, err := textline.Create(newTestElement())
		assert.NoError(t, err)
		ln, err := ft.FormatLine(src, 0, textline.MaxWidth, para, nil)
		assert.NoError(t, err)
		assert.Equal(t, textline.Range{Start: 0, End: len(text)}, ln.Runes)
		advances[kind] = ln.Advance
		ln.Release()
		assert.NoError(t, ft.Release())
	}
	textline.SetDefaultKind(textline.Native)
	assert.InDelta(t, advances[textline.Native], advances[textline.CustomGlyphRun], 2)
}

func TestCreateInvalidKind(t *testing.T) {
	textline.SetDefaultKind(textline.Kind(-1))
	defer textline.SetDefaultKind(textline.Native)

	ft, err := textline.Create(newTestElement())
	assert.Nil(t, ft)
	assert.ErrorIs(t, err, textline.ErrNoBackend)

	textline.SetDefaultKind(textline.Kind(99))
	ft, err = textline.Create(newTestElement())
	assert.Nil(t, ft)
	assert.ErrorIs(t, err, textline.ErrNoBackend)
}

func TestSetDefaultKind(t *testing.T) {
	assert.Equal(t, textline.Native, textline.DefaultKind())
	textline.SetDefaultKind(textline.CustomGlyphRun)
	assert.Equal(t, textline.CustomGlyphRun, textline.DefaultKind())
	textline.SetDefaultKind(textline.Native)
}

func TestLineRelease(t *testing.T) {
	ln, err := textline.CreateLine(newTestElement(), "Hello")
	assert.NoError(t, err)
	ln.Release()
	ln.Release() // releasing twice is a no-op
	assert.Nil(t, ln.Runs)
	assert.Nil(t, ln.Break())
}
