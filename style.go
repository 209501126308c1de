// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textline

import (
	"cogentcore.org/textline/rich"
	"github.com/go-text/typesetting/di"
)

// Aligns specifies how a formatted line is aligned along the flow
// direction within the paragraph width.
type Aligns int32

const (
	// Start aligns to the start (left in LTR) of the paragraph width.
	Start Aligns = iota

	// Center centers the line within the paragraph width.
	Center

	// End aligns to the end (right in LTR) of the paragraph width.
	End
)

// Directions specifies the paragraph flow direction.
type Directions int32

const (
	LTR Directions = iota
	RTL
)

// ToGoText returns the go-text direction value.
func (d Directions) ToGoText() di.Direction {
	if d == RTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// ParagraphStyle holds the paragraph-level formatting properties for a
// line-formatting call: alignment, flow direction, line spacing, and the
// default run properties used when the text source yields none.
type ParagraphStyle struct {

	// Align is the line alignment within the paragraph width.
	Align Aligns

	// Direction is the paragraph flow direction.
	Direction Directions

	// LineSpacing is a multiplier on the natural line height.
	LineSpacing float32

	// Default holds the default run formatting properties.
	Default rich.Style

	// Settings are the paragraph language and script defaults.
	Settings rich.Settings
}

// NewParagraphStyle returns a [ParagraphStyle] with default values.
func NewParagraphStyle() *ParagraphStyle {
	p := &ParagraphStyle{}
	p.Defaults()
	return p
}

func (p *ParagraphStyle) Defaults() {
	p.Align = Start
	p.Direction = LTR
	p.LineSpacing = 1
	p.Default.Defaults()
	p.Settings.Defaults()
}

// AlignOffset returns the offset along the flow direction for a line of
// the given advance width, aligned within the given paragraph width.
func (p *ParagraphStyle) AlignOffset(lineWidth, paraWidth float32) float32 {
	if lineWidth >= paraWidth {
		return 0
	}
	switch p.Align {
	case Center:
		return 0.5 * (paraWidth - lineWidth)
	case End:
		return paraWidth - lineWidth
	}
	return 0
}
