package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/agbru/fibseq/internal/ui"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// SpinnerRefreshRate is the frame interval of the progress spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples the progress display from a specific spinner implementation,
// which keeps the application testable without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// nopSpinner is used when progress display is disabled.
type nopSpinner struct{}

func (nopSpinner) Start()              {}
func (nopSpinner) Stop()               {}
func (nopSpinner) UpdateSuffix(string) {}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewProgressSpinner returns a spinner drawing on out when enabled and out is
// a terminal, and a no-op spinner otherwise. Standard output is never a
// valid target: callers pass the diagnostic stream.
func NewProgressSpinner(out io.Writer, enabled bool) Spinner {
	if !enabled || !isTerminal(out) {
		return nopSpinner{}
	}
	target := spinner.WithWriter(out)
	if f, ok := out.(*os.File); ok {
		target = spinner.WithWriterFile(f)
	}
	return newSpinner(target, spinner.WithColor("fgHiCyan"))
}

// GenerationSuffix is the spinner text shown while n terms are generated.
func GenerationSuffix(n int) string {
	return fmt.Sprintf(" %sGenerating %d terms...%s", ui.ColorBold(), n, ui.ColorReset())
}
