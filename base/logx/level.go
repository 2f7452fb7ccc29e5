// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger setup and
// user verbosity levels for po command line tools.
package logx

import "log/slog"

// UserLevel is the minimum [slog.Level] of messages shown to the user.
// Commands set it from their verbosity flags with [LevelFromFlags].
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the verbosity flags to a level: vv is
// [slog.LevelDebug], v is [slog.LevelInfo] and q is [slog.LevelError].
// The first flag set wins, and with none set it is [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}
