// Package testutil holds small helpers shared across package tests:
// fixed clocks, buffered loggers, and domain fixtures.
package testutil

import (
	"bytes"
	"log/slog"
	"time"
)

// NowAt returns a clock function pinned to t, for injecting into services
// that take a func() time.Time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics. Test use only.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// NewBufferLogger returns a text slog logger writing into a buffer, plus the
// buffer so tests can assert on emitted lines.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return logger, &buf
}
