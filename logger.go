package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger returns a structured slog.Logger with the given level. Every
// record carries the run id so output of concurrent runs can be told apart.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run_id", uuid.NewString())
}
