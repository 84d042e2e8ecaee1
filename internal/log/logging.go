// Package log provides helpers for creating a configured slog.Logger.
//
// Console output is colored when stdout is a terminal; non-error levels go
// to stdout and errors to stderr so stderr redirection catches only errors.
// With a log file, records go to the file as plain text instead.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// LevelTrace is a custom slog level below Debug for per-transfer output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds the process logger and installs it as slog's default. The
// returned closer is non-nil when a log file was opened.
func Setup(logLevel, logFile string) (*slog.Logger, io.Closer, error) {
	level := ParseLevel(logLevel)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return logger, f, nil
	}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stdout.Fd())) {
		handler = splitHandler{
			out: &ansiHandler{w: os.Stdout, min: level},
			err: &ansiHandler{w: os.Stderr, min: slog.LevelError},
		}
	} else {
		handler = splitHandler{
			out: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
			err: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
		}
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil, nil
}

// splitHandler routes error records to one handler and everything else to
// another.
type splitHandler struct {
	out slog.Handler
	err slog.Handler
}

func (s splitHandler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelError {
		return s.err
	}
	return s.out
}

func (s splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.pick(level).Enabled(ctx, level)
}

func (s splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return s.pick(r.Level).Handle(ctx, r)
}

func (s splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return splitHandler{out: s.out.WithAttrs(attrs), err: s.err.WithAttrs(attrs)}
}

func (s splitHandler) WithGroup(name string) slog.Handler {
	return splitHandler{out: s.out.WithGroup(name), err: s.err.WithGroup(name)}
}

type ansiHandler struct {
	w     io.Writer
	min   slog.Leveler
	attrs string
}

func (h *ansiHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min.Level()
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "\033[31m"
	case level >= slog.LevelWarn:
		return "\033[33m"
	case level >= slog.LevelInfo:
		return "\033[32m"
	case level >= slog.LevelDebug:
		return "\033[34m"
	default:
		return "\033[35m"
	}
}

func levelName(level slog.Level) string {
	if level == LevelTrace {
		return "TRACE"
	}
	return level.String()
}

func (h *ansiHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString("\033[90m")
	buf.WriteString(r.Time.Format("2006-01-02T15:04:05.000000Z07:00"))
	buf.WriteString("\033[0m ")

	buf.WriteString(levelColor(r.Level))
	fmt.Fprintf(&buf, "%5s", levelName(r.Level))
	buf.WriteString("\033[0m ")

	buf.WriteString(r.Message)
	buf.WriteString(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&buf, " %s=%s", a.Key, a.Value.String())
		return true
	})

	buf.WriteString("\n")
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *ansiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	joined := h.attrs
	for _, a := range attrs {
		joined += fmt.Sprintf(" %s=%s", a.Key, a.Value.String())
	}
	return &ansiHandler{w: h.w, min: h.min, attrs: joined}
}

func (h *ansiHandler) WithGroup(string) slog.Handler {
	return h
}
