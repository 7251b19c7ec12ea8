package diaglog

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// WriterSink writes "[SEVERITY] text" lines to an io.Writer.
type WriterSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

var severityColors = map[Severity]*color.Color{
	SevError:   color.New(color.FgRed, color.Bold),
	SevWarning: color.New(color.FgYellow),
	SevInfo:    color.New(color.FgCyan),
	SevVerbose: color.New(color.FgHiBlack),
}

// NewWriterSink creates a WriterSink. When colorize is true the severity
// tag is rendered with ANSI colors.
func NewWriterSink(w io.Writer, colorize bool) *WriterSink {
	return &WriterSink{w: w, color: colorize}
}

// Log writes one line per message. Write errors are ignored: logging is
// best-effort and must never disturb the caller.
func (s *WriterSink) Log(sev Severity, text string) {
	tag := sev.String()
	if s.color {
		if c, ok := severityColors[sev]; ok {
			tag = c.Sprint(tag)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, "[%s] %s\n", tag, text)
}
