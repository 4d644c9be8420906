package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

// HumanHandler writes one line per record as "[LEVEL] message key=value",
// without timestamps. Each line is assembled locally and written with a single
// Write call.
type HumanHandler struct {
	w     io.Writer
	level slog.Leveler
	color bool
	attrs []slog.Attr
}

// NewHumanHandler returns a HumanHandler. Levels are colorized when color is
// true.
func NewHumanHandler(w io.Writer, opts *slog.HandlerOptions, color bool) *HumanHandler {
	h := &HumanHandler{w: w, color: color}
	if opts != nil {
		h.level = opts.Level
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	return h
}

func (h *HumanHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *HumanHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 128)
	buf = append(buf, h.levelTag(r.Level)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	for _, attr := range h.attrs {
		buf = appendAttr(buf, attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, a)
		return true
	})
	buf = append(buf, '\n')

	_, err := h.w.Write(buf)
	return err
}

func (h *HumanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &HumanHandler{w: h.w, level: h.level, color: h.color, attrs: merged}
}

// WithGroup is a no-op; groups are flattened.
func (h *HumanHandler) WithGroup(_ string) slog.Handler {
	return h
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func (h *HumanHandler) levelTag(level slog.Level) string {
	var tag, color string
	switch {
	case level >= slog.LevelError:
		tag, color = "[ERROR]", colorRed
	case level >= slog.LevelWarn:
		tag, color = "[WARN]", colorYellow
	case level >= slog.LevelInfo:
		tag, color = "[INFO]", colorBlue
	default:
		tag, color = "[DEBUG]", colorGray
	}
	if !h.color {
		return tag
	}
	return color + tag + colorReset
}

func appendAttr(buf []byte, attr slog.Attr) []byte {
	if attr.Equal(slog.Attr{}) {
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, attr.Key...)
	buf = append(buf, '=')
	return appendValue(buf, attr.Value.Resolve())
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if needsQuoting(s) {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())
	case slog.KindDuration:
		return append(buf, v.Duration().String()...)
	case slog.KindTime:
		return append(buf, v.Time().Format("15:04:05")...)
	default:
		s := fmt.Sprint(v.Any())
		if needsQuoting(s) {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '"' || r == '=' {
			return true
		}
	}
	return false
}
