package assert

import (
	"fmt"
	"runtime"
	"strings"
)

// Failure is the panic value carried by every assertion violation.
// It is a programmer-error guard, never meant to be recovered locally.
type Failure struct {
	Message string
	stack   string
}

// Error returns the failure message.
func (f *Failure) Error() string { return f.Message }

// StackTrace returns the captured attribution stack, one "    at " line
// per frame, starting at the caller of the failing assertion.
func (f *Failure) StackTrace() string { return f.stack }

// SetStackTrace replaces the captured stack, typically with a filtered
// rendition of it.
func (f *Failure) SetStackTrace(s string) { f.stack = s }

// Fail raises a fatal failure. This is the terminal primitive every other
// assertion funnels into.
func Fail(message ...string) {
	failWith(1, first(message))
}

// failWith builds the Failure and panics. skip counts the assertion
// wrapper frames between the caller's code and this function, so the
// captured stack starts at the call site of the public assertion rather
// than inside the wrapper itself.
func failWith(skip int, message string) {
	msg := "Debug Failure."
	if message != "" {
		msg = "Debug Failure. " + message
	}
	panic(&Failure{Message: msg, stack: captureStack(skip + 2)})
}

// captureStack renders the current goroutine stack in the "    at
// function (file:line)" convention understood by the stack filter.
func captureStack(skip int) string {
	pc := make([]uintptr, 64)
	n := runtime.Callers(skip+1, pc)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pc[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "    at %s (%s:%d)\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}

// first returns the first non-empty optional message.
func first(message []string) string {
	if len(message) > 0 {
		return message[0]
	}
	return ""
}
