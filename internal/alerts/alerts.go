// Package alerts carries the user-facing toast signals emitted by
// mutating commands. Every command that succeeds or fails emits exactly
// one signal; a Sink decides how to surface it.
package alerts

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Level distinguishes success from error toasts.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Signal is one toast. The ID lets a presentation layer de-duplicate
// signals it has already shown.
type Signal struct {
	ID      string
	Level   Level
	Message string
	At      time.Time
}

// Sink receives toast signals.
type Sink interface {
	Emit(sig Signal)
}

// Success builds and emits a success signal through sink.
func Success(sink Sink, message string) {
	sink.Emit(Signal{ID: uuid.NewString(), Level: LevelSuccess, Message: message, At: time.Now()})
}

// Error builds and emits an error signal through sink.
func Error(sink Sink, message string) {
	sink.Emit(Signal{ID: uuid.NewString(), Level: LevelError, Message: message, At: time.Now()})
}

// LogSink surfaces signals through a structured logger.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a Sink backed by logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(sig Signal) {
	if sig.Level == LevelError {
		s.logger.Warn("alert", "id", sig.ID, "message", sig.Message)
		return
	}
	s.logger.Info("alert", "id", sig.ID, "message", sig.Message)
}

// Recorder collects signals for tests and for presentation layers that
// render them later.
type Recorder struct {
	Signals []Signal
}

func (r *Recorder) Emit(sig Signal) {
	r.Signals = append(r.Signals, sig)
}
