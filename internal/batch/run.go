package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"diagkit/internal/stackfilter"
)

// Request describes one batch filtering run.
type Request struct {
	Files    []string
	Options  stackfilter.Options
	Jobs     int // max parallel workers, 0 = GOMAXPROCS
	Progress ProgressSink
}

// FileResult is the outcome for one input file, in input order.
type FileResult struct {
	Path   string
	Output string
	Err    error
}

// Run filters every requested file. Per-file read failures land in the
// corresponding FileResult; only context cancellation aborts the run.
func Run(ctx context.Context, req *Request) ([]FileResult, error) {
	if req == nil {
		return nil, fmt.Errorf("missing batch request")
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range req.Files {
		emit(req.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	// Slots are unique per goroutine, no mutex needed.
	results := make([]FileResult, len(req.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(req.Files), 1)))

	for i, path := range req.Files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(req.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
			data, err := os.ReadFile(path)
			if err != nil {
				results[i] = FileResult{Path: path, Err: fmt.Errorf("failed to read %s: %w", path, err)}
				emit(req.Progress, Event{File: path, Stage: StageRead, Status: StatusError, Err: err})
				return nil
			}

			emit(req.Progress, Event{File: path, Stage: StageFilter, Status: StatusWorking})
			results[i] = FileResult{Path: path, Output: stackfilter.Filter(string(data), req.Options)}
			emit(req.Progress, Event{File: path, Stage: StageFilter, Status: StatusDone})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
