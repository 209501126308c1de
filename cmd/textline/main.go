// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command textline formats text from the command line or standard input
// and prints the resulting line layout, one formatted line per row:
// the covered rune range, glyph run count, advance and height. It is a
// diagnostic tool for inspecting how the formatter backends wrap and
// measure a paragraph at a given width.
package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"cogentcore.org/textline"
	_ "cogentcore.org/textline/backends"
	"cogentcore.org/textline/base/errors"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// element is the minimal formatter owner for the command line: its font
// configuration comes from the flags.
type element struct {
	family []string
	size   float32
	mode   textline.Mode
}

func (el *element) FontFamily() []string          { return el.family }
func (el *element) FontSize() float32             { return el.size }
func (el *element) Foreground() color.Color       { return color.Black }
func (el *element) FormattingMode() textline.Mode { return el.mode }

func main() {
	var (
		width  float32
		kind   string
		mode   string
		size   float32
		family []string
	)
	pflag.Float32Var(&width, "width", 0, "paragraph width in pixels (default: terminal width x 8)")
	pflag.StringVar(&kind, "kind", "native", "formatter backend: native or glyphrun")
	pflag.StringVar(&mode, "mode", "default", "formatting mode: default, ideal or display")
	pflag.Float32Var(&size, "size", 16, "font size in pixels")
	pflag.StringSliceVar(&family, "family", []string{"Latin Modern Roman"}, "font family list, in preference order")
	pflag.Parse()

	if width <= 0 {
		width = 8 * 80
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = 8 * float32(cols)
		}
	}
	switch kind {
	case "glyphrun":
		textline.SetDefaultKind(textline.CustomGlyphRun)
	case "native":
		textline.SetDefaultKind(textline.Native)
	default:
		fmt.Fprintf(os.Stderr, "unknown backend kind %q\n", kind)
		os.Exit(1)
	}
	el := &element{family: family, size: size}
	switch mode {
	case "ideal":
		el.mode = textline.ModeIdeal
	case "display":
		el.mode = textline.ModeDisplay
	case "default":
	default:
		fmt.Fprintf(os.Stderr, "unknown formatting mode %q\n", mode)
		os.Exit(1)
	}

	text := strings.Join(pflag.Args(), " ")
	if text == "" {
		b := errors.Log1(io.ReadAll(os.Stdin))
		text = string(b)
	}

	if err := run(el, text, width); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run formats every paragraph of the text at the given width and prints
// the per-line layout.
func run(el *element, text string, width float32) error {
	ft, err := textline.Create(el)
	if err != nil {
		return err
	}
	defer ft.Release()

	para := textline.NewParagraphStyle()
	para.Default.Families = el.family
	para.Default.Size = el.size
	src := textline.NewSpans(&para.Default, text)

	first := 0
	var brk *textline.LineBreak
	for first < src.Len() {
		ln, err := ft.FormatLine(src, first, width, para, brk)
		if err != nil {
			return err
		}
		fmt.Printf("[%5d,%5d) runs: %d advance: %8.2f height: %6.2f  %q\n",
			ln.Runes.Start, ln.Runes.End, len(ln.Runs), ln.Advance, ln.Height,
			text[runeOffset(text, ln.Runes.Start):runeOffset(text, ln.Runes.End)])
		brk = ln.Break()
		first = ln.Runes.End
		ln.Release()
		if brk == nil {
			first++ // skip the paragraph terminator
		}
	}
	return nil
}

// runeOffset returns the byte offset of the i-th rune of s.
func runeOffset(s string, i int) int {
	for bi := range s {
		if i == 0 {
			return bi
		}
		i--
	}
	return len(s)
}
