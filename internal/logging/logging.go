// Package logging configures the global zerolog logger of the CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects how the CLI logs.
type Options struct {
	// Level is one of zerolog's level names. Unknown levels fall back to info.
	Level string
	// Format is "console" or "json".
	Format  string
	NoColor bool
	Out     io.Writer
}

// InitDefault sets a console logger at info level, used until flags are parsed.
func InitDefault() {
	Init(Options{Level: "info", Format: "console"})
}

// Init replaces the global logger.
func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    opts.NoColor,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()
}
