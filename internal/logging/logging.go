package logging

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// LevelTrace sits below slog.LevelDebug for per-candidate discovery
// traces: every probed root, every skipped version directory. Debug
// keeps the per-scan summary; trace narrates the walk.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a log level:
// 0 → Warn, 1 → Info, 2 → Debug, 3+ → Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// Format selects the log output encoding.
type Format string

const (
	// FormatText is the human console format.
	FormatText Format = "text"
	// FormatJSON is the machine format, also used for --log-file.
	FormatJSON Format = "json"
)

// Config describes a logger to build.
type Config struct {
	// Level is the minimum level; lower records are dropped.
	Level slog.Level
	// Format selects the encoding. Unrecognized values mean text.
	Format Format
	// Output receives the log lines; nil means os.Stderr.
	Output io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = NewHandler(output, opts)
	}
	return slog.New(handler)
}

// NewDiscard returns a logger that drops everything. Used where a
// scanner needs a logger but the caller wants silence.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testWriter routes log lines to t.Log so scan traces show up inside
// the failing test's output.
type testWriter struct {
	t *testing.T
}

// Write implements io.Writer. The trailing newline is dropped because
// t.Log adds its own.
func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest builds a debug-level text logger writing through t.Log.
// Tests hand this to the scanner so probe traces surface on failure.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
