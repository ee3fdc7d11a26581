package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slatehq/slate/internal/query"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg tells every view on the stack to reload its data.
// Broadcast after mutations so views under a form pick up the change.
type refreshViewMsg struct{}

// sessionExpiredMsg is sent by any view whose request came back
// unauthorized. The appModel clears the session and resets the stack
// to the login view.
type sessionExpiredMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// statusLineMsg carries transient feedback text shown above the
// status bar (mutation results, shell output).
type statusLineMsg struct {
	text string
}

// mutationFailedMsg reports a rejected save. An open wizard intercepts
// it to keep the form (and the typed draft) on screen; anywhere else it
// is shown as plain feedback.
type mutationFailedMsg struct {
	text string
}

// queryChangedMsg reports that a watched cache key was invalidated or
// picked up a background refresh. Broadcast to the whole stack; each
// view reloads only for its own keys.
type queryChangedMsg struct {
	key query.Key
}

// quitMsg requests TUI shutdown.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// refreshViews returns a tea.Cmd that broadcasts a reload.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// sessionExpired returns a tea.Cmd that reports a rejected token.
func sessionExpired() tea.Cmd {
	return func() tea.Msg { return sessionExpiredMsg{} }
}

// statusLine returns a tea.Cmd that shows transient feedback.
func statusLine(text string) tea.Cmd {
	return func() tea.Msg { return statusLineMsg{text: text} }
}

// watchQuery waits for the next tick on a Store.Subscribe channel and
// reports it as a queryChangedMsg. Re-arm after each message; the
// channel is buffered, so a tick between messages is not lost.
func watchQuery(ch <-chan struct{}, key query.Key) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return queryChangedMsg{key: key}
	}
}
