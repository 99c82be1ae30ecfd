// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the photo gate. Request-scoped loggers
// carry trace_id and submitter_id and travel in the context; handlers and
// services pick them up with FromRequest and FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger writes JSON lines to stdout tagged with role. The caller field
// is named "func" and holds the function name rather than file:line.
func NewLogger(role string) *Logger {
	return NewLoggerTo(os.Stdout, role)
}

func NewLoggerTo(w io.Writer, role string) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().Str("role", role).Timestamp().Caller().Logger()}
}

// Nop discards everything; used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetLevel drops entries below the named level ("debug", "info", ...).
// Loggers derived afterwards inherit it.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}
	l.Logger = l.Level(lvl)
	return nil
}

// WithTraceID returns a child logger that stamps every entry with traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// WithSubmitter returns a child logger tagged with the submitter id.
func (l *Logger) WithSubmitter(submitterID int64) *Logger {
	return &Logger{l.With().Int64("submitter_id", submitterID).Logger()}
}

// FromRequest is FromContext for r.Context().
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached with WithContext. Without one it
// falls back to zerolog's disabled default, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
