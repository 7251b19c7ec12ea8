// Package deprecate intercepts uses of retired API surface. Wrapped
// members keep their behavior; the first use warns through the logger,
// or every use fails when the deprecation is error-level.
package deprecate

import (
	"strings"

	"diagkit/internal/diaglog"
)

// Options configures one deprecation.
type Options struct {
	// Message is appended to the generated text; "{0}" is substituted
	// with the subject name.
	Message string
	// Since names the version that deprecated the subject.
	Since string
	// Until names the last version the subject remains usable in.
	Until string
	// Error makes every use fail instead of warning once.
	Error bool
}

// DeprecationError is the panic value raised by error-level deprecations.
type DeprecationError struct {
	Name    string
	Message string
}

// Error returns the deprecation message.
func (e *DeprecationError) Error() string { return e.Message }

// Deprecation is the stateful record behind one wrapped member.
type Deprecation struct {
	name    string
	message string
	err     bool
	warned  bool
}

// New builds the deprecation record for name.
func New(name string, opts Options) *Deprecation {
	return &Deprecation{
		name:    name,
		message: buildMessage(name, opts),
		err:     opts.Error,
	}
}

// Trigger records one use of the deprecated subject. Error-level
// deprecations fail on every call and never mutate state; otherwise the
// first call warns at severity Warning and later calls are no-ops.
func (d *Deprecation) Trigger() {
	if d.err {
		panic(&DeprecationError{Name: d.name, Message: d.message})
	}
	if d.warned {
		return
	}
	d.warned = true
	diaglog.Log(diaglog.SevWarning, d.message)
}

func buildMessage(name string, opts Options) string {
	var sb strings.Builder
	if opts.Error {
		sb.WriteString("DeprecationError: ")
	} else {
		sb.WriteString("DeprecationWarning: ")
	}
	sb.WriteString("'" + name + "' ")
	if opts.Since != "" {
		sb.WriteString("has been deprecated since " + opts.Since)
	} else {
		sb.WriteString("is deprecated")
	}
	switch {
	case opts.Error:
		sb.WriteString(" and can no longer be used.")
	case opts.Until != "":
		sb.WriteString(" and will no longer be usable after " + opts.Until + ".")
	default:
		sb.WriteString(".")
	}
	if opts.Message != "" {
		sb.WriteString(" " + strings.ReplaceAll(opts.Message, "{0}", name))
	}
	return sb.String()
}
