// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	gtlang "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
)

// Settings holds the paragraph-level language and script defaults,
// used for runs that do not carry their own language.
type Settings struct {

	// Language is the default BCP 47 language (culture) for shaping.
	Language language.Tag

	// Script is the unicode script for shaping.
	Script gtlang.Script
}

func (s *Settings) Defaults() {
	s.Language = language.English
	s.Script = gtlang.Latin
}

// GoTextLanguage returns the go-text form of the default language.
func (s *Settings) GoTextLanguage() gtlang.Language {
	if s.Language == (language.Tag{}) {
		return gtlang.NewLanguage("en")
	}
	return gtlang.NewLanguage(s.Language.String())
}
