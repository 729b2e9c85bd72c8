// Package appctx wires the process-lifetime concerns shared by cmd/vanitybtc:
// structured logging and signal-driven cancellation. These are ambient
// concerns the teacher repo leaves to main()'s top level; here they get a
// small package of their own since the CLI gains a cancellable worker pool.
package appctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// NewLogger builds a console-rendered zerolog.Logger. Verbose raises the
// level to debug; the default level is info.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// WithSignalCancel returns a context canceled on SIGINT or SIGTERM, and a
// stop function the caller should defer to release the signal handler.
func WithSignalCancel(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
