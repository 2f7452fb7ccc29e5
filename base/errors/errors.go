// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides error handling helpers on top of the
// standard errors package, whose functions used by po are
// re-exported so that this package can be imported in its place.
package errors

import (
	"errors"
	"log/slog"
)

// New is the standard [errors.New].
func New(text string) error { return errors.New(text) }

// Is is the standard [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// Join is the standard [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log logs the given error at the error level if it is non-nil,
// and returns it, for use as:
//
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Ignore1 returns the value of a (value, error) pair, dropping the
// error, for calls whose zero value on failure is the right answer:
//
//	name := errors.Ignore1(metadata.Get[string](md, "Name"))
func Ignore1[T any](v T, err error) T {
	return v
}
