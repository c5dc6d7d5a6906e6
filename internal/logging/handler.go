package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Console palette. The handler decides per-writer whether to apply it.
var (
	timeColor  = color.New(color.FgHiBlack)
	traceColor = color.New(color.FgHiBlack)
	debugColor = color.New(color.FgMagenta)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
	keyColor   = color.New(color.FgCyan)
)

// Handler is the console slog.Handler: one line per record, kitchen
// time, padded level, message, then key=value attributes. Color is
// applied only when the writer is a color-capable terminal.
type Handler struct {
	opts     slog.HandlerOptions
	out      io.Writer
	mu       *sync.Mutex
	attrs    []slog.Attr
	groups   []string
	useColor bool
}

// NewHandler creates a console handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		opts:     *opts,
		out:      out,
		mu:       &sync.Mutex{},
		useColor: SupportsColor(out),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes one formatted line for the record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !r.Time.IsZero() {
		fmt.Fprintf(h.out, "%s ", h.paint(timeColor, r.Time.Format(time.Kitchen)))
	}

	fmt.Fprintf(h.out, "%-5s %s", h.paint(levelColor(r.Level), levelLabel(r.Level)), r.Message)

	for _, a := range h.attrs {
		h.appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(a)
		return true
	})

	fmt.Fprintln(h.out)
	return nil
}

// levelLabel names the record level, including the trace level this
// package defines below slog's range.
func levelLabel(level slog.Level) string {
	if level <= LevelTrace {
		return "TRACE"
	}
	return level.String()
}

func levelColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return errorColor
	case level >= slog.LevelWarn:
		return warnColor
	case level >= slog.LevelInfo:
		return infoColor
	case level > LevelTrace:
		return debugColor
	default:
		return traceColor
	}
}

// paint applies c only when the writer supports color.
func (h *Handler) paint(c *color.Color, s string) string {
	if !h.useColor {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) appendAttr(a slog.Attr) {
	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}

	// Discovery logs raw environment values; anything
	// credential-shaped gets masked before it reaches the terminal.
	value := a.Value.Any()
	if shouldMask(a.Key) {
		value = maskValue(fmt.Sprint(value))
	} else if strVal, ok := value.(string); ok && containsTokenPrefix(strVal) {
		value = maskValue(strVal)
	}

	fmt.Fprintf(h.out, " %s=%v", h.paint(keyColor, key), value)
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	newH.attrs = append(newH.attrs, attrs...)
	return &newH
}

// WithGroup returns a handler that qualifies attribute keys with name.
// Groups are rendered as dotted key prefixes.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.groups = append(append([]string(nil), h.groups...), name)
	return &newH
}
