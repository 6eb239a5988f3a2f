// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the run logger. The logger is constructed once
// in the command layer and passed down by value; no package keeps global
// logging state.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/feimaomiao/proxysheet/pkg/types"
)

// New returns a console logger on out whose level follows the configured
// verbosity: quiet logs errors only, normal logs progress, verbose adds
// a line per processed file.
func New(out io.Writer, v types.Verbosity) zerolog.Logger {
	level := zerolog.InfoLevel
	switch v {
	case types.Quiet:
		level = zerolog.ErrorLevel
	case types.Verbose:
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
