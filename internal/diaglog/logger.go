package diaglog

import "sync"

// Sink receives every message that passes the severity gate.
// Supplied by the host; a missing sink turns all logging into no-ops.
type Sink interface {
	Log(sev Severity, text string)
}

var (
	mu        sync.Mutex
	sink      Sink
	threshold = SevWarning
)

// SetSink installs the process-wide sink. A nil sink disables logging.
func SetSink(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	sink = s
}

// SetThreshold sets the process-wide severity threshold.
func SetThreshold(sev Severity) {
	mu.Lock()
	defer mu.Unlock()
	threshold = sev
}

// Threshold returns the current severity threshold.
func Threshold() Severity {
	mu.Lock()
	defer mu.Unlock()
	return threshold
}

// ShouldLog reports whether a message at sev would be forwarded.
// A message is emitted only while the threshold rank is <= the message rank.
func ShouldLog(sev Severity) bool {
	mu.Lock()
	defer mu.Unlock()
	return sink != nil && threshold <= sev
}

// Log forwards (sev, text) to the sink when one is registered and the
// threshold admits it. Pure pass-through: no buffering, no formatting.
func Log(sev Severity, text string) {
	mu.Lock()
	s := sink
	emit := s != nil && threshold <= sev
	mu.Unlock()
	if emit {
		s.Log(sev, text)
	}
}

// Error logs at SevError.
func Error(text string) { Log(SevError, text) }

// Warning logs at SevWarning.
func Warning(text string) { Log(SevWarning, text) }

// Info logs at SevInfo.
func Info(text string) { Log(SevInfo, text) }

// Verbose logs at SevVerbose.
func Verbose(text string) { Log(SevVerbose, text) }
