// Package logging configures the global zerolog logger from the server config.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Configure sets the global level and output. When a log file is configured, entries are
// written to both the console and a size-rotated file. The returned closer flushes the file.
func Configure(cfg config.LoggerServer) io.Closer {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Level)

	var console io.Writer = os.Stderr
	if cfg.PrettyPrintConsole {
		console = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		})
	}

	var closer io.Closer = nopCloser{}
	out := console

	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(console, rotating)
		closer = rotating
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	return closer
}
