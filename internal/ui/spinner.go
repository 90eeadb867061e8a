package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunSpinner shows a Bubble Tea spinner while the action runs, e.g. during
// the uv install or the remote project listing. It returns the action's
// error, or the context error if the context is canceled first.
func RunSpinner(ctx context.Context, title string, action func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	done := make(chan error, 1)
	go func() {
		done <- action()
	}()

	m := &spinnerModel{
		title: title,
		spin:  newSpin(),
		ctx:   ctx,
		done:  done,
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.err
}

func newSpin() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle
	return s
}

type actionDoneMsg struct{ err error }

type spinnerModel struct {
	title    string
	spin     spinner.Model
	ctx      context.Context
	done     chan error
	finished bool
	err      error
}

func (m *spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.waitForAction())
}

func (m *spinnerModel) waitForAction() tea.Cmd {
	return func() tea.Msg {
		select {
		case err := <-m.done:
			return actionDoneMsg{err: err}
		case <-m.ctx.Done():
			return actionDoneMsg{err: m.ctx.Err()}
		}
	}
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.err = fmt.Errorf("operation canceled")
			m.finished = true
			return m, tea.Quit
		}
	case actionDoneMsg:
		m.err = msg.err
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	line := lipgloss.NewStyle().Padding(0, 1)
	if m.finished {
		if m.err != nil {
			return line.Render("✗ " + m.title + " (" + m.err.Error() + ")\n")
		}
		return line.Render("✓ " + m.title + "\n")
	}
	return line.Render(m.spin.View() + " " + m.title)
}
