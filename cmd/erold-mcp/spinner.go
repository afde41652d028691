package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const spinnerFrameDelay = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a braille spinner on a TTY while an operation runs.
// On a non-TTY it prints the message once and stays quiet.
type spinner struct {
	message string
	w       io.Writer
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func newSpinner(w io.Writer, message string) *spinner {
	return &spinner{
		message: message,
		w:       w,
		done:    make(chan struct{}),
	}
}

func (s *spinner) Start() {
	if !isTTY() {
		fmt.Fprintf(s.w, "%s...\n", s.message)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		ticker := time.NewTicker(spinnerFrameDelay)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			fmt.Fprintf(s.w, "\r%s %s", style.Render(spinnerFrames[frame%len(spinnerFrames)]), s.message)
			select {
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *spinner) Stop() {
	s.once.Do(func() { close(s.done) })
	if isTTY() {
		s.wg.Wait()
		// Clear the spinner line. The frame renders ~2 columns wide.
		fmt.Fprint(s.w, "\r"+strings.Repeat(" ", len(s.message)+8)+"\r")
	}
}

// runWithSpinner runs an operation with a spinner, showing progress.
// The spinner animates while the operation runs and clears when complete.
func runWithSpinner(w io.Writer, message string, operation func() error) error {
	spin := newSpinner(w, message)
	spin.Start()
	err := operation()
	spin.Stop()
	return err
}
