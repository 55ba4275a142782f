package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// TerminalHandler formats log records for a human reading stderr.
//
// Output format:
//
//	15:04:05.000 INF dispatching run root=/data reporter=rich
type TerminalHandler struct {
	writer io.Writer
	level  slog.Leveler
	color  bool
	// pre holds attributes added by WithAttrs, already rendered with the
	// groups open at the time.
	pre    []byte
	groups []string
	mu     *sync.Mutex
}

func newTerminalHandler(w io.Writer, level slog.Leveler, color bool) *TerminalHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &TerminalHandler{
		writer: w,
		level:  level,
		color:  color,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.Grow(128)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	h.styled(&buf, ansiDim, ts.Format("15:04:05.000"))
	buf.WriteByte(' ')

	color, label := levelStyle(r.Level)
	h.styled(&buf, color, label)
	buf.WriteByte(' ')
	h.styled(&buf, ansiBold, r.Message)

	buf.Write(h.pre)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, a, h.groups)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a handler that also writes attrs on every record.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var buf bytes.Buffer
	buf.Write(h.pre)
	for _, a := range attrs {
		h.appendAttr(&buf, a, h.groups)
	}
	clone := *h
	clone.pre = buf.Bytes()
	return &clone
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func (h *TerminalHandler) styled(buf *bytes.Buffer, style, s string) {
	if !h.color {
		buf.WriteString(s)
		return
	}
	buf.WriteString(style)
	buf.WriteString(s)
	buf.WriteString(ansiReset)
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return ansiCyan, "DBG"
	case level < slog.LevelWarn:
		return ansiGreen, "INF"
	case level < slog.LevelError:
		return ansiYellow, "WRN"
	default:
		return ansiRed, "ERR"
	}
}

func (h *TerminalHandler) appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, ga, prefix)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	buf.WriteByte(' ')
	h.styled(buf, ansiDim, key+"=")
	buf.WriteString(formatAttrValue(a.Value))
}

func formatAttrValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"\\=") {
			return fmt.Sprintf("%q", s)
		}
		return s
	}
	return v.String()
}
