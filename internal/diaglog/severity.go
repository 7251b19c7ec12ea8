package diaglog

import "fmt"

// Severity ranks a diagnostic message.
type Severity uint8

const (
	// SevOff suppresses everything when used as a threshold.
	SevOff     Severity = iota // no logging
	SevError                   // failures worth surfacing
	SevWarning                 // suspicious but non-fatal
	SevInfo                    // general progress
	SevVerbose                 // everything
)

// String returns the string representation of Severity.
func (s Severity) String() string {
	switch s {
	case SevOff:
		return "off"
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevInfo:
		return "info"
	case SevVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "off", "OFF":
		return SevOff, nil
	case "error", "ERROR":
		return SevError, nil
	case "warning", "WARNING":
		return SevWarning, nil
	case "info", "INFO":
		return SevInfo, nil
	case "verbose", "VERBOSE":
		return SevVerbose, nil
	default:
		return SevOff, fmt.Errorf("invalid severity: %q (expected: off|error|warning|info|verbose)", s)
	}
}
