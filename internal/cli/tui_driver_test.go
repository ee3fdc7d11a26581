package cli

import (
	"testing"

	"github.com/slatehq/slate/internal/teatest"
)

// TestDriver wraps teatest.Driver with slate-specific inspection
// methods reaching into appModel internals the generic driver cannot
// see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets a terminal size, and
// drains Init(), which performs the first view's reads against the
// fake backend.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Feedback returns the transient status line text.
func (d *TestDriver) Feedback() string {
	return d.appModel().feedback
}

// CmdBarFocused reports whether the command bar has focus.
func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// IsQuitting reports whether the app has signaled a quit, either via
// model state (q, ctrl+c) or a tea.QuitMsg seen during drain.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Command focuses the command bar with ':', types the command, and
// presses Enter. Output-only commands leave the bar focused, so it is
// blurred before returning.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}
