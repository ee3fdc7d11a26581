package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate/internal/cli/formatter"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the studio backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Session.Login(ctx, username, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			user := app.Session.CurrentUser()
			if user != nil {
				fmt.Printf("Logged in as %s (%s)\n", user.DisplayName(), user.Role)
			} else {
				fmt.Println("Logged in.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				if err := app.Session.FetchIdentity(ctx); err != nil {
					return err
				}
				user := app.Session.CurrentUser()
				fmt.Printf("%s\n", formatter.Bold(user.DisplayName()))
				fmt.Printf("  %s  %s\n", formatter.Dim("email"), user.Email)
				fmt.Printf("  %s   %s\n", formatter.Dim("role"), user.Role)
				return nil
			})
		},
	}
}
