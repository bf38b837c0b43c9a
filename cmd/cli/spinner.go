package main

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

type workDoneMsg struct{}

// spinnerModel shows a spinner and a label until it receives workDoneMsg.
type spinnerModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newSpinnerModel(label string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = spinnerStyle
	return spinnerModel{spinner: sp, label: label}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(workDoneMsg); ok {
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label + "...\n"
}

// withSpinner runs work while a spinner is drawn on stderr. With --quiet, or
// when stderr is not a terminal, work runs without it.
func withSpinner(ctx context.Context, label string, work func(context.Context) error) error {
	if quiet || !isTerminal(os.Stderr) {
		return work(ctx)
	}

	program := tea.NewProgram(newSpinnerModel(label),
		tea.WithOutput(os.Stderr),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- work(ctx)
		program.Send(workDoneMsg{})
	}()

	// The spinner is cosmetic; only the work result is reported.
	_, _ = program.Run()
	return <-errCh
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
