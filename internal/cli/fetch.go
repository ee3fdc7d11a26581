package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
)

// authGuard lets a view surface a read or write error. An expired
// session overrides whatever message the view would show; everything
// else renders as a visible error line instead of an empty list.
func authGuard(err error, fallback func(error) tea.Msg) tea.Msg {
	if errors.Is(err, api.ErrUnauthorized) {
		return sessionExpiredMsg{}
	}
	return fallback(err)
}

// errorLine renders a read error the way every view shows it.
func errorLine(err error) string {
	return "\n  " + formatter.StyleRed.Render("Error: "+err.Error())
}

// loadingLine renders the shared loading placeholder.
func loadingLine() string {
	return "\n  " + formatter.Dim("Loading...")
}
