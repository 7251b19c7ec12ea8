package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"diagkit/internal/batch"
	"diagkit/internal/ui"
)

type filterOutcome struct {
	results []batch.FileResult
	err     error
}

// runFilterWithUI runs the batch in the background while a Bubble Tea
// model renders its progress events.
func runFilterWithUI(ctx context.Context, title string, files []string, req *batch.Request) ([]batch.FileResult, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan filterOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = batch.ChannelSink{Ch: events}
		results, err := batch.Run(ctx, &reqCopy)
		outcomeCh <- filterOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
