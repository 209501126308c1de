// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"testing"

	"github.com/go-text/typesetting/font"
	gtlang "github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestStyleDefaults(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, float32(16), s.Size)
	assert.Equal(t, Normal, s.Weight)
	assert.Equal(t, SlantNormal, s.Slant)
}

func TestQuery(t *testing.T) {
	s := NewStyle().SetFamilies("Latin Modern Roman", "serif").SetWeight(Bold).SetSlant(Italic)
	q := s.Query()
	assert.Equal(t, []string{"Latin Modern Roman", "serif"}, q.Families)
	assert.Equal(t, font.Weight(700), q.Aspect.Weight)
	assert.Equal(t, font.StyleItalic, q.Aspect.Style)

	assert.Equal(t, font.StyleNormal, NewStyle().Aspect().Style)
}

func TestGoTextLanguage(t *testing.T) {
	var sts Settings
	sts.Defaults()

	// a run without its own language inherits the paragraph default
	s := NewStyle()
	assert.Equal(t, gtlang.NewLanguage("en"), s.GoTextLanguage(&sts))

	s.SetLanguage(language.French)
	assert.Equal(t, gtlang.NewLanguage("fr"), s.GoTextLanguage(&sts))

	// and the zero settings still resolve to something usable
	empty := &Settings{}
	assert.Equal(t, gtlang.NewLanguage("en"), NewStyle().GoTextLanguage(empty))
}

func TestSettingsDefaults(t *testing.T) {
	var sts Settings
	sts.Defaults()
	assert.Equal(t, language.English, sts.Language)
	assert.Equal(t, gtlang.Latin, sts.Script)
}
