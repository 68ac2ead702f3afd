package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// spinnerModel shows a spinner until a doneMsg arrives.
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	result  string
	err     error
}

// doneMsg signals that the wrapped step finished.
type doneMsg struct {
	result string
	err    error
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return spinnerModel{spinner: s, message: message}
}

// Init implements tea.Model.
func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m spinnerModel) View() string {
	if m.done {
		return finishLine(m.result, m.err) + "\n"
	}
	return m.spinner.View() + " " + MessageStyle.Render(m.message)
}

func finishLine(result string, err error) string {
	if err != nil {
		return ErrorStyle.Render(SymbolCross + " " + err.Error())
	}
	return SuccessStyle.Render(SymbolCheck + " " + result)
}

// Step is a blocking unit of work. The returned string is shown on success.
type Step func(ctx context.Context) (string, error)

// RunWithSpinner runs step while showing message. With interactive set a
// bubbletea spinner animates on out; otherwise one line is printed before
// and one after. The step's error is returned unchanged.
func RunWithSpinner(ctx context.Context, out io.Writer, interactive bool, message string, step Step) error {
	if !interactive {
		fmt.Fprintf(out, "%s...\n", message)
		result, err := step(ctx)
		fmt.Fprintln(out, finishLine(result, err))
		return err
	}

	p := tea.NewProgram(newSpinnerModel(message),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)

	var (
		result  string
		stepErr error
	)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		result, stepErr = step(ctx)
		p.Send(doneMsg{result: result, err: stepErr})
	}()

	if _, err := p.Run(); err != nil {
		// The program stops early on context cancellation; the step
		// observes the same context.
		<-finished
		if stepErr != nil {
			return stepErr
		}
		return err
	}
	<-finished
	return stepErr
}
