package tui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs fn while showing a spinner on out. Cancelling the
// spinner (ctrl+c) returns ErrAborted.
func RunWithSpinner(out io.Writer, title string, fn func(context.Context) error) error {
	accessible := os.Getenv("ACCESSIBLE") != ""

	err := spinner.New().
		Title(title).
		Accessible(accessible).
		Output(out).
		ActionWithErr(fn).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return err
	}
	return nil
}
