// Package logging provides structured JSON logging for kembang components.
//
// Events are appended to <home>/logs/kembang.log rather than stderr so the
// interactive questionnaire keeps the terminal to itself.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a config string onto a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if l == "" {
		return LevelInfo, nil
	}
	if _, ok := levelRank[l]; !ok {
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
	return l, nil
}

// Event represents a structured log event
type Event struct {
	Timestamp string         `json:"ts"`
	Level     Level          `json:"level"`
	Component string         `json:"component"`
	Event     string         `json:"event"`
	Run       string         `json:"run,omitempty"`
	Duration  int64          `json:"duration_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// sink serialises writes from loggers that share one output.
type sink struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

func (s *sink) write(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, string(data))
}

// Logger provides structured logging. A nil *Logger discards everything.
type Logger struct {
	component string
	run       string
	min       Level
	out       *sink
}

// New creates a logger for a component writing to w.
func New(w io.Writer, component string, min Level) *Logger {
	return &Logger{component: component, min: min, out: &sink{w: w}}
}

// Open creates (or reuses) <dir>/logs/kembang.log and returns a logger on it.
func Open(dir, component string, min Level) (*Logger, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, "kembang.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{component: component, min: min, out: &sink{w: f, closer: f}}, nil
}

// Nop returns a logger that drops every event.
func Nop() *Logger { return New(io.Discard, "", LevelError) }

// With returns a logger for another component sharing the same output.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{component: component, run: l.run, min: l.min, out: l.out}
}

// WithRun tags every event with a correlation id.
func (l *Logger) WithRun(run string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{component: l.component, run: run, min: l.min, out: l.out}
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.out == nil || l.out.closer == nil {
		return nil
	}
	return l.out.closer.Close()
}

func (l *Logger) enabled(level Level) bool {
	return l != nil && l.out != nil && levelRank[level] >= levelRank[l.min]
}

// log emits a structured log event
func (l *Logger) log(level Level, event string, extra map[string]any, err error, d time.Duration) {
	if !l.enabled(level) {
		return
	}
	e := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: l.component,
		Event:     event,
		Run:       l.run,
		Duration:  d.Milliseconds(),
		Extra:     extra,
	}
	if err != nil {
		e.Error = err.Error()
	}
	l.out.write(e)
}

// Debug logs a debug event
func (l *Logger) Debug(event string, extra map[string]any) {
	l.log(LevelDebug, event, extra, nil, 0)
}

// Info logs an info event
func (l *Logger) Info(event string, extra map[string]any) {
	l.log(LevelInfo, event, extra, nil, 0)
}

// Warn logs a warning event
func (l *Logger) Warn(event string, extra map[string]any, err error) {
	l.log(LevelWarn, event, extra, err, 0)
}

// Error logs an error event
func (l *Logger) Error(event string, extra map[string]any, err error) {
	l.log(LevelError, event, extra, err, 0)
}

// TimedEvent logs an event with the time elapsed since start. A non-nil err
// raises the level to error.
func (l *Logger) TimedEvent(event string, start time.Time, extra map[string]any, err error) {
	level := LevelInfo
	if err != nil {
		level = LevelError
	}
	l.log(level, event, extra, err, time.Since(start))
}
