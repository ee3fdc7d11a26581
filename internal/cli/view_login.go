package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/slatehq/slate/internal/cli/formatter"
)

// loginResultMsg reports the outcome of a credential exchange.
type loginResultMsg struct {
	err error
}

// loginView asks for credentials and establishes the session.
type loginView struct {
	state    *SharedState
	form     *huh.Form
	username string
	password string

	submitting bool
	errLine    string
	notice     string
}

func newLoginView(state *SharedState) *loginView {
	v := &loginView{state: state}
	v.form = v.buildForm()
	return v
}

func (v *loginView) buildForm() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&v.username).
				Validate(validateRequired("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password).
				Validate(validateRequired("password")),
		),
	)
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Sign in" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) submit() tea.Cmd {
	app := v.state.App
	username, password := v.username, v.password
	return func() tea.Msg {
		err := app.Session.Login(context.Background(), username, password)
		return loginResultMsg{err: err}
	}
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		v.submitting = false
		if msg.err != nil {
			v.errLine = msg.err.Error()
			v.password = ""
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		return v, replaceView(newDashboardView(v.state))
	}

	if v.submitting {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.submitting = true
		v.errLine = ""
		return v, tea.Batch(cmd, v.submit())
	}

	return v, cmd
}

func (v *loginView) View() string {
	var out string
	out += "\n  " + formatter.Header("Sign in to slate") + "\n\n"
	if v.notice != "" {
		out += "  " + formatter.StyleYellow.Render(v.notice) + "\n\n"
	}
	if v.errLine != "" {
		out += "  " + formatter.StyleRed.Render(v.errLine) + "\n\n"
	}
	if v.submitting {
		out += "  " + formatter.Dim("Signing in...") + "\n"
		return out
	}
	out += v.form.View()
	return out
}
