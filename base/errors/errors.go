// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small wrappers around the standard errors
// package that log non-nil errors with slog, for best-effort paths
// where an error should be reported but not propagated.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error with the given text; see [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target;
// see [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join wraps the given errors into one; see [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log logs the given error with slog if it is non-nil, including the
// calling location, and returns it unchanged.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + caller())
	}
	return err
}

// Log1 is [Log] for functions returning a value and an error:
//
//	dir := errors.Log1(os.UserCacheDir())
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + caller())
	}
	return v
}

// caller returns the file:line of the caller of Log or Log1.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return file + ":" + strconv.Itoa(line)
}
