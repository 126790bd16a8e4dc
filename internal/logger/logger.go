// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger shared by the
// coach-notes server and client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request-scoped loggers travel in the context: the HTTP middleware attaches
// one carrying the trace id and the actor, and the service and store layers
// read it back with FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable holding the minimum log level
// ("debug", "info", "warn", ...). Unset or unparsable values mean debug.
const LevelEnv = "LOG_LEVEL"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the server *Logger for the given role label
// (e.g. "coach-notes-server"). Entries are JSON on os.Stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// New constructs a *Logger writing JSON entries to w. Every entry carries
// the role, a timestamp and a "func" field with the calling function name.
// The global level is taken from LOG_LEVEL.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(levelFromEnv())
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewClientLogger constructs the CLI logger. Stdout belongs to command
// output, so entries go to client.log under the user cache directory
// (ClientLogPath). Logging is discarded if that file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = io.Discard
	if path, err := ClientLogPath(); err == nil {
		if err = os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
				w = f
			}
		}
	}

	return New(w, role)
}

// ClientLogPath returns the location of the CLI log file.
func ClientLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "coach-notes", "client.log"), nil
}

func levelFromEnv() zerolog.Level {
	raw, ok := os.LookupEnv(LevelEnv)
	if !ok || raw == "" {
		return zerolog.DebugLevel
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.DebugLevel
	}

	return level
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForActor returns a child logger tagged with the acting user's id and role.
func (l *Logger) ForActor(actorID, role string) *Logger {
	return &Logger{l.With().
		Str("actor_id", actorID).
		Str("actor_role", role).
		Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's
// WithContext. Without one, zerolog's default context logger is returned,
// so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
