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

// level is the dynamic level shared by every handler made by [NewHandler],
// so that changing [UserLevel] and calling [SetDefaultLogger] again
// takes effect for existing loggers.
var level = &slog.LevelVar{}

// NewHandler returns a [slog.Handler] writing text records to w,
// with level names colored for the terminal profile of the given output.
func NewHandler(out *termenv.Output) slog.Handler {
	level.Set(UserLevel)
	return slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			l, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(l.String()).Foreground(LevelColor(l)).Bold().String())
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(l slog.Level) termenv.Color {
	switch {
	case l >= slog.LevelError:
		return termenv.ANSIRed
	case l >= slog.LevelWarn:
		return termenv.ANSIYellow
	case l >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

// SetDefaultLogger sets the default [slog] logger to one writing
// colored text to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	SetDefaultLoggerTo(os.Stderr)
}

// SetDefaultLoggerTo is [SetDefaultLogger] with the given writer.
func SetDefaultLoggerTo(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(termenv.NewOutput(w))))
}
