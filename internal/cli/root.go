package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/query"
	"github.com/slatehq/slate/internal/session"
)

// App holds every client and store the CLI commands and TUI views
// depend on. It is assembled once in main and passed down; nothing in
// this package reaches for global state.
type App struct {
	Auth       *api.AuthClient
	Projects   *api.ProjectsClient
	Tasks      *api.TasksClient
	CRM        *api.CRMClient
	HR         *api.HRClient
	Accounting *api.AccountingClient
	Equipment  *api.EquipmentClient
	Production *api.ProductionClient
	Dashboard  *api.DashboardClient
	Users      *api.UsersClient

	Queries *query.Store
	Session *session.Store

	// ConfigDir is where the token and shell history live.
	ConfigDir string

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "slate" command and registers all
// subcommands against the provided App. Invoked with no arguments on
// a terminal, it launches the TUI instead.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "slate",
		Short: "Operations console for a video production studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newDashboardCmd(app),
		newProjectsCmd(app),
		newTasksCmd(app),
		newCRMCmd(app),
		newHRCmd(app),
		newAccountingCmd(app),
		newEquipmentCmd(app),
		newProductionCmd(app),
		newUsersCmd(app),
	)

	return root
}

// runAuthed wraps a command action with uniform auth handling: a
// rejected token clears the stored session and tells the user to log
// in again. Navigation decisions live here, never in the transport.
func runAuthed(app *App, fn func(ctx context.Context) error) error {
	err := fn(context.Background())
	if errors.Is(err, api.ErrUnauthorized) {
		app.Session.HandleUnauthorized()
		return fmt.Errorf("session expired, run `slate login`")
	}
	return err
}
