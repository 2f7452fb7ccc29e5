// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// level colors, in hex
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#808080",
	slog.LevelInfo:  "#1e90ff",
	slog.LevelWarn:  "#daa520",
	slog.LevelError: "#dc143c",
}

// LevelString returns the name of the given level, colored
// for the given terminal color profile. [termenv.Ascii]
// returns the plain level name.
func LevelString(level slog.Level, profile termenv.Profile) string {
	c, ok := levelColors[level]
	if !ok {
		return level.String()
	}
	return profile.String(level.String()).Foreground(profile.Color(c)).Bold().String()
}

// NewHandler returns a new text [slog.Handler] writing to w at the
// given minimum level, with level names colored for the given profile.
func NewHandler(w io.Writer, level slog.Leveler, profile termenv.Profile) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(LevelString(lv, profile))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one that writes
// to [os.Stderr] at [UserLevel], using the color profile of the terminal.
func SetDefaultLogger() {
	SetDefaultLoggerTo(os.Stderr, termenv.EnvColorProfile())
}

// SetDefaultLoggerTo sets the default [slog] logger to write to w
// at [UserLevel], with level colors for the given profile.
func SetDefaultLoggerTo(w io.Writer, profile termenv.Profile) {
	slog.SetDefault(slog.New(NewHandler(w, UserLevel, profile)))
}
