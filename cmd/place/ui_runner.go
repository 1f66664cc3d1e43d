package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"place/internal/driver"
	"place/internal/source"
	"place/internal/ui"
)

type expandOutcome struct {
	fs      *source.FileSet
	results []driver.ExpandResult
	err     error
}

// runExpandDirWithUI runs driver.ExpandDir while a Bubble Tea model shows
// per-file progress fed through a ChannelSink.
func runExpandDirWithUI(ctx context.Context, dir string, opts driver.Options) (*source.FileSet, []driver.ExpandResult, error) {
	files, err := driver.ListInputs(dir, opts.Suffix)
	if err != nil {
		return nil, nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan expandOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ExpandDir(ctx, dir, optsCopy)
		outcomeCh <- expandOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("expanding "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// UI мог выйти раньше времени: не блокируем отправителя
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
