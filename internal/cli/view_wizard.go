package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/slatehq/slate/internal/cli/formatter"
)

// wizardView wraps a huh.Form as a View on the navigation stack.
// The done callback runs while the wizard is still on the stack: a
// rejected save surfaces as a mutationFailedMsg and the form is
// rebuilt in place, so the typed draft survives and the user can fix
// and resubmit. Only a successful (or chaining) outcome pops the view
// via wizardCompleteMsg.
type wizardView struct {
	state    *SharedState
	makeForm func() *huh.Form
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd

	submitted bool
}

// wizardOutcomeMsg carries the result of the done callback back to the
// wizard that submitted it.
type wizardOutcomeMsg struct {
	inner tea.Msg
}

func newWizardView(state *SharedState, title string, makeForm func() *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{
		state:    state,
		makeForm: makeForm,
		form:     makeForm(),
		titleStr: title,
		done:     done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the wizard.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: statusLine(formatter.Dim("Cancelled."))}
		}
	}

	if outcome, ok := msg.(wizardOutcomeMsg); ok {
		if failed, ok := outcome.inner.(mutationFailedMsg); ok {
			// Rebuild the form from the same value bindings. The huh
			// fields re-read their pointers, so everything the user
			// typed is still there.
			v.submitted = false
			v.form = v.makeForm()
			return v, tea.Batch(v.form.Init(), statusLine(formatter.StyleRed.Render(failed.text)))
		}
		inner := outcome.inner
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: func() tea.Msg { return inner }}
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.submitted {
		v.submitted = true
		if v.done == nil {
			return v, tea.Batch(cmd, func() tea.Msg { return wizardCompleteMsg{} })
		}
		doneCmd := v.done()
		if doneCmd == nil {
			return v, tea.Batch(cmd, func() tea.Msg { return wizardCompleteMsg{} })
		}
		return v, tea.Batch(cmd, func() tea.Msg {
			return wizardOutcomeMsg{inner: doneCmd()}
		})
	}

	return v, cmd
}

func (v *wizardView) View() string {
	return v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// startWizard pushes a wizardView; a nil factory short-circuits to done.
func startWizard(state *SharedState, title string, makeForm func() *huh.Form, done func() tea.Cmd) tea.Cmd {
	if makeForm == nil {
		if done != nil {
			return done()
		}
		return nil
	}
	return pushView(newWizardView(state, title, makeForm, done))
}
