// Package tui implements the interactive terminal interface of the sequence
// tool: a count input, the generated sequence rendered to the terminal width,
// and a key legend.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibseq/internal/cli"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
)

const (
	// defaultWidth is used until the first tea.WindowSizeMsg arrives.
	defaultWidth = 80
	// inputCharLimit bounds the count input; any longer token overflows int.
	inputCharLimit = 20
)

// GenerateFunc produces the sequence for a count. The application passes a
// function that also records logs, metrics and traces.
type GenerateFunc func(n int) []uint64

// InputErrorFunc is notified of every rejected count.
type InputErrorFunc func(err error)

// Model is the root bubbletea model of the interactive interface.
type Model struct {
	input  textinput.Model
	help   help.Model
	keymap KeyMap

	generate     GenerateFunc
	onInputError InputErrorFunc
	version      string

	count    int
	sequence []uint64
	err      error
	width    int
}

// NewModel creates a model with a focused count input.
func NewModel(generate GenerateFunc, onInputError InputErrorFunc, version string) Model {
	ti := textinput.New()
	ti.Placeholder = "number of terms"
	ti.Prompt = "n> "
	ti.CharLimit = inputCharLimit
	ti.Focus()

	if onInputError == nil {
		onInputError = func(error) {}
	}

	return Model{
		input:        ti,
		help:         help.New(),
		keymap:       DefaultKeyMap(),
		generate:     generate,
		onInputError: onInputError,
		version:      version,
		width:        defaultWidth,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Submit):
			return m.submit(), nil
		case key.Matches(msg, m.keymap.Clear):
			m.sequence, m.err, m.count = nil, nil, 0
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the input the same way the prompt mode does and generates
// the sequence. A rejected count keeps the previous input for correction.
func (m Model) submit() Model {
	n, err := cli.ReadCount(strings.NewReader(m.input.Value()))
	if err != nil {
		m.err = err
		m.sequence = nil
		m.onInputError(err)
		return m
	}

	m.err = nil
	m.count = n
	m.sequence = m.generate(n)
	m.input.Reset()
	return m
}

// Sequence returns the last generated sequence.
func (m Model) Sequence() []uint64 { return m.sequence }

// Err returns the last input error, if any.
func (m Model) Err() error { return m.err }

// View renders the interface.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fibseq " + m.version))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	contentWidth := m.width - panelStyle.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.sequence != nil:
		var body strings.Builder
		body.WriteString(headingStyle.Render(fmt.Sprintf("%s (%d terms)", strings.TrimSuffix(cli.Heading, ":"), len(m.sequence))))
		body.WriteString("\n")
		body.WriteString(valuesStyle.Width(contentWidth).Render(cli.FormatSequence(m.sequence)))
		if len(m.sequence) > 1 {
			body.WriteString("\n\n")
			body.WriteString(sparkStyle.Render(RenderSparkline(GrowthSamples(m.sequence, contentWidth))))
		}
		if !fibonacci.Exact(m.count) {
			body.WriteString("\n")
			body.WriteString(noteStyle.Render(fmt.Sprintf("terms past F(%d) wrap modulo 2^64", fibonacci.MaxExactTerms-1)))
		}
		b.WriteString(panelStyle.Render(body.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render(m.help.View(m.keymap)))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive interface and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, generate GenerateFunc, onInputError InputErrorFunc, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(generate, onInputError, version)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
