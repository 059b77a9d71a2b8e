package logger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Entry is a WARN or ERROR record kept in memory for the debug panel.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// Format renders the entry as a single line.
func (e Entry) Format() string {
	return fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), e.Level, e.Message)
}

// ring keeps the most recent entries and running WARN/ERROR counters.
type ring struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool

	warns  int
	errors int
}

func newRing(size int) *ring {
	return &ring{entries: make([]Entry, size)}
}

func (r *ring) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}

	switch {
	case e.Level >= slog.LevelError:
		r.errors++
	case e.Level >= slog.LevelWarn:
		r.warns++
	}
}

func (r *ring) snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]Entry(nil), r.entries[:r.next]...)
	}
	out := make([]Entry, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}

func (r *ring) counts() (warn, err int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.warns, r.errors
}

// captureHandler copies WARN and ERROR records into a ring before passing
// them on.
type captureHandler struct {
	inner slog.Handler
	ring  *ring
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.ring.add(Entry{Time: r.Time, Level: r.Level, Message: r.Message})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{inner: h.inner.WithAttrs(attrs), ring: h.ring}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), ring: h.ring}
}
