/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package versioner

import (
	"context"
	"log/slog"
)

// WarnNotAWorkingDirectory is the warning code emitted when
// GitView.IsWorkingDirectory reports false (spec.md §4.3 Step 1).
const WarnNotAWorkingDirectory = 1001

// Logger is the leveled log sink the Versioner writes through. Every
// predicate MUST be pure and side-effect free: the walker calls them to
// decide whether to format an expensive message (column-aligned candidate
// dumps, full commit narration) at all, and a disabled level must never
// change the computed Version.
type Logger interface {
	IsTrace() bool
	IsDebug() bool
	IsInfo() bool
	IsWarn() bool

	// Trace narrates each commit visit during the walk.
	Trace(msg string, args ...any)

	// Debug lists ignored non-version tags and enumerates non-selected
	// candidates.
	Debug(msg string, args ...any)

	// Info reports selection, minimum-bump, and the final computed
	// version.
	Info(msg string, args ...any)

	// Warn reports a condition the Versioner recovered from, tagged with
	// a stable numeric code (see WarnNotAWorkingDirectory).
	Warn(msg string, code int, args ...any)
}

// NopLogger discards every log call and reports every level as disabled.
// It is the zero-cost default for callers that do not care about the
// Versioner's log side channel.
type NopLogger struct{}

func (NopLogger) IsTrace() bool            { return false }
func (NopLogger) IsDebug() bool            { return false }
func (NopLogger) IsInfo() bool             { return false }
func (NopLogger) IsWarn() bool             { return false }
func (NopLogger) Trace(string, ...any)     {}
func (NopLogger) Debug(string, ...any)     {}
func (NopLogger) Info(string, ...any)      {}
func (NopLogger) Warn(string, int, ...any) {}

var _ Logger = NopLogger{}

// LevelTrace sits one step below slog.LevelDebug. The standard library has
// no built-in trace level; this is the conventional way to add one to an
// slog handler without forking it.
const LevelTrace = slog.Level(-8)

// SlogLogger adapts a *slog.Logger to the Logger contract. No logging
// library appears anywhere in the retrieved pack — every example that logs
// at all does so through a Model's String/Redacted methods rather than a
// dedicated logger — so this is built directly on log/slog, the standard
// library's structured logger, rather than adopting an unseen dependency.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps l. A nil l falls back to slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}

func (s *SlogLogger) IsTrace() bool { return s.logger.Enabled(context.Background(), LevelTrace) }
func (s *SlogLogger) IsDebug() bool { return s.logger.Enabled(context.Background(), slog.LevelDebug) }
func (s *SlogLogger) IsInfo() bool  { return s.logger.Enabled(context.Background(), slog.LevelInfo) }
func (s *SlogLogger) IsWarn() bool  { return s.logger.Enabled(context.Background(), slog.LevelWarn) }

func (s *SlogLogger) Trace(msg string, args ...any) {
	s.logger.Log(context.Background(), LevelTrace, msg, args...)
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }

func (s *SlogLogger) Warn(msg string, code int, args ...any) {
	s.logger.Warn(msg, append([]any{"code", code}, args...)...)
}

var _ Logger = (*SlogLogger)(nil)
