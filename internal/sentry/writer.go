package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level picks how a Writer forwards each line.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// forward sends one trimmed log line to Sentry. Swapped in tests.
var forward = func(level Level, category, msg string) {
	switch level {
	case LevelError:
		gosentry.CaptureMessage(msg)
	case LevelWarning:
		gosentry.AddBreadcrumb(&gosentry.Breadcrumb{Level: gosentry.LevelWarning, Category: category, Message: msg})
	default:
		gosentry.AddBreadcrumb(&gosentry.Breadcrumb{Level: gosentry.LevelInfo, Category: category, Message: msg})
	}
}

// Writer tees log output to an inner writer and, while Sentry is enabled,
// forwards each line: errors become events, everything else a breadcrumb.
type Writer struct {
	inner    io.Writer
	level    Level
	category string
}

// NewWriter returns a Writer using the "log" breadcrumb category.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level, category: "log"}
}

// WithCategory sets the breadcrumb category.
func (w *Writer) WithCategory(category string) *Writer {
	w.category = category
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	if !enabled {
		return n, err
	}
	for _, line := range strings.Split(string(p), "\n") {
		if msg := strings.TrimSpace(line); msg != "" {
			forward(w.level, w.category, msg)
		}
	}
	return n, err
}
