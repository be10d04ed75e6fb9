// Package testutil holds test doubles shared across shelf packages.
package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogHandler is a slog.Handler that keeps every record it receives.
type LogHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

// NewLogHandler returns an empty LogHandler.
func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

// Logger returns a logger writing to h.
func (h *LogHandler) Logger() *slog.Logger {
	return slog.New(h)
}

// Handle implements slog.Handler.
func (h *LogHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record.Clone())
	return nil
}

// Enabled implements slog.Handler. Every level is captured.
func (h *LogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. Attributes are not tracked.
func (h *LogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler. Groups are not tracked.
func (h *LogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Messages returns the message of every captured record in order.
func (h *LogHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := make([]string, len(h.records))
	for i, r := range h.records {
		msgs[i] = r.Message
	}
	return msgs
}

// Attr returns the value of key on the first record with message msg.
func (h *LogHandler) Attr(msg, key string) (slog.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.Message != msg {
			continue
		}
		var (
			val   slog.Value
			found bool
		)
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				val, found = a.Value, true
				return false
			}
			return true
		})
		return val, found
	}
	return slog.Value{}, false
}
