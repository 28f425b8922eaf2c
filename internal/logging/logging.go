// Package logging provides the line-oriented slog handler used by the
// traindesign command.
//
// Each record is written as a single line:
//
//	2006/01/02 15:04:05 INFO message key=value key=value
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// TimeLayout is the timestamp layout of every line.
const TimeLayout = "2006/01/02 15:04:05"

// Handler writes records as plain text lines. It is safe for concurrent use;
// handlers derived through WithAttrs and WithGroup share the writer lock.
type Handler struct {
	out    io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewHandler returns a Handler writing to o. A nil opts logs at Info.
func NewHandler(o io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &Handler{out: o, mu: &sync.Mutex{}, level: level}
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: bad level %q: %w", s, err)
	}
	return l, nil
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := *h
	c.attrs = append(append([]string(nil), h.attrs...), h.render(attrs)...)
	return &c
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix = h.prefix + name + "."
	return &c
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	strs := []string{r.Time.Format(TimeLayout), r.Level.String(), r.Message}
	strs = append(strs, h.attrs...)

	recAttrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		recAttrs = append(recAttrs, a)
		return true
	})
	strs = append(strs, h.render(recAttrs)...)

	line := strings.Join(strs, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

func (h *Handler) render(attrs []slog.Attr) []string {
	var out []string
	for _, a := range attrs {
		out = appendAttr(out, h.prefix, a)
	}
	return out
}

func appendAttr(out []string, prefix string, a slog.Attr) []string {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, g := range v.Group() {
			out = appendAttr(out, p, g)
		}
		return out
	}
	if a.Key == "" {
		return out
	}
	s := v.String()
	if strings.ContainsAny(s, " \t\n\"=") || s == "" {
		s = fmt.Sprintf("%q", s)
	}
	return append(out, prefix+a.Key+"="+s)
}
