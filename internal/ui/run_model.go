package ui

import (
	"context"
	"errors"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// Run starts the interactive browser and blocks until it exits. Width and
// height of 0 use the detected terminal size. Extra program options (e.g.,
// custom IO) are passed through to tea.NewProgram.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	if opts.Controller == nil {
		return errors.New("ui: no controller")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	if opts.Width > 0 || opts.Height > 0 {
		w, h := opts.Width, opts.Height
		if w <= 0 || h <= 0 {
			if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				if w <= 0 {
					w = tw
				}
				if h <= 0 {
					h = th
				}
			}
		}
		if w <= 0 {
			w = defaultWidth
		}
		if h <= 0 {
			h = defaultHeight
		}
		opts.Width, opts.Height = w, h
		progOpts = append(progOpts, tea.WithWindowSize(w, h))
	}
	progOpts = append(progOpts, tea.WithContext(opts.Context))

	m := NewModel(opts)
	opts.Logger.V(1).Info("starting interactive browser", "width", m.width, "height", m.height)
	_, err := tea.NewProgram(m, progOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context.Err() != nil {
		// Cancellation is a normal exit.
		return nil
	}
	return err
}
