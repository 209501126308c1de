// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backends registers the default formatter backends. It must be
// imported (typically as a blank import) by any program that creates
// formatters:
//
//	import _ "cogentcore.org/textline/backends"
package backends

import (
	"cogentcore.org/textline"
	"cogentcore.org/textline/gtline"
	"cogentcore.org/textline/runline"
)

func init() {
	textline.RegisterBackend(textline.Native, func(mode textline.Mode) (textline.Formatter, error) {
		return gtline.New(mode), nil
	})
	textline.RegisterBackend(textline.CustomGlyphRun, func(mode textline.Mode) (textline.Formatter, error) {
		return runline.New(mode), nil
	})
}
