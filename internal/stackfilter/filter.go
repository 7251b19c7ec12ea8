// Package stackfilter parses the textual call-stack convention of
// JS-engine traces into structured frames, drops frames by category,
// rewrites file locations, collapses runs of dropped frames, and
// re-serializes the result. Unparseable lines always pass through
// verbatim: trace text is best-effort and engine-dependent.
package stackfilter

import (
	"errors"
	"fmt"
	"strings"
)

// StackCarrier is implemented by error values that carry trace text.
// FilterError rewrites the carried stack in place.
type StackCarrier interface {
	StackTrace() string
	SetStackTrace(string)
}

// Filter runs one filtering pass over multi-line trace text. The output
// uses "\n" line endings; everything else round-trips byte-identically.
// Filtering already-filtered text with the same options is a fixed point.
func Filter(text string, opts Options) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	// Collapse state: length of the current excluded run and the
	// formatted text of its last frame.
	skipped := 0
	lastSkipped := ""

	flush := func() {
		if skipped == 0 {
			return
		}
		if skipped > 1 {
			out = append(out, summaryLine(skipped-1))
		}
		out = append(out, lastSkipped)
		skipped = 0
	}

	index := 0
	for _, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")
		frame, ok := ParseLine(line)
		if !ok {
			flush()
			out = append(out, line)
			continue
		}
		frame = opts.apply(frame)
		if opts.excluded(frame, index) {
			skipped++
			lastSkipped = frame.FormatLine()
			index++
			continue
		}
		flush()
		out = append(out, frame.FormatLine())
		index++
	}
	flush()

	return strings.Join(out, "\n")
}

// summaryLine renders the synthetic collapse line for n hidden frames.
func summaryLine(n int) string {
	if n == 1 {
		return "    ... skipping 1 frame ..."
	}
	return fmt.Sprintf("    ... skipping %d frames ...", n)
}

// FilterError applies Filter to the stack text carried by err, when it
// carries one. The error itself is returned either way.
func FilterError(err error, opts Options) error {
	var carrier StackCarrier
	if errors.As(err, &carrier) {
		carrier.SetStackTrace(Filter(carrier.StackTrace(), opts))
	}
	return err
}
