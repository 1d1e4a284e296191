// Package logger implements the logging adapter on log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/whylabs/sketchbuild/internal/core/ports"
)

// messager describes an error that can report its own message without the
// rest of the chain. zerr.Error provides it; plain errors fall back to the
// full Error() string.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, preserving the current
// JSON mode. A nil writer resets to os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler(w))
}

// SetJSON switches between JSON and pretty output. The output destination is
// preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(l.newHandler(w))
}

// newHandler builds the handler for the current mode. Callers hold the lock.
func (l *Logger) newHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain laid out line by line.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(err))
}

// formatChain walks the error chain and renders the top message followed by
// its causes, one arrow per hop.
func formatChain(err error) string {
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			// Metadata-only layers repeat the message of the level they
			// annotate; collapse them.
			if msg := m.Message(); len(messages) == 0 || messages[len(messages)-1] != msg {
				messages = append(messages, msg)
			}
			current = errors.Unwrap(current)
			continue
		}
		// Plain error: its Error() already includes anything it wraps.
		messages = append(messages, current.Error())
		break
	}

	var formatted []string
	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formatted = append(formatted, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formatted = append(formatted, "       "+line)
			}
			continue
		}

		if i == 1 {
			formatted = append(formatted, "", "  Caused by:")
		}
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}

	return strings.Join(formatted, "\n")
}
