// Package batch filters many stack-trace files concurrently, reporting
// per-file progress to an optional sink.
package batch

// Stage describes a phase of one file's filtering run.
type Stage string

const (
	// StageRead is the file loading stage.
	StageRead Stage = "read"
	// StageFilter is the parse/filter/serialize stage.
	StageFilter Stage = "filter"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished cleanly.
	StatusDone Status = "done"
	// StatusError indicates the file could not be processed.
	StatusError Status = "error"
)

// Event is one progress notification.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

// ProgressSink receives progress events.
type ProgressSink interface {
	OnEvent(evt Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

// OnEvent sends the event; a nil channel drops it.
func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}
