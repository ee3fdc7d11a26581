package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newUsersListCmd(app), newUsersCreateCmd(app))

	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				users, err := query.Fetch(ctx, app.Queries, resourceKey("users", nil),
					func(ctx context.Context) ([]domain.User, error) {
						return app.Users.List(ctx)
					})
				if err != nil {
					return err
				}
				if len(users) == 0 {
					fmt.Println("No users found.")
					return nil
				}
				rows := make([][]string, 0, len(users))
				for _, u := range users {
					active := formatter.StyleGreen.Render("yes")
					if !u.IsActive {
						active = formatter.Dim("no")
					}
					rows = append(rows, []string{
						formatter.StyleGreen.Render(u.Username),
						u.FullName,
						u.Email,
						string(u.Role),
						active,
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Username", "Name", "Email", "Role", "Active"}, rows))
				return nil
			})
		},
	}
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var email, username, password, fullName, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				req := api.CreateUserRequest{
					Email:    email,
					Username: username,
					Password: password,
					FullName: fullName,
					Role:     role,
				}
				var created *domain.User
				err := app.Queries.Mutate(ctx, func(ctx context.Context) error {
					var err error
					created, err = app.Users.Create(ctx, req)
					return err
				}, resourceKey("users", nil))
				if err != nil {
					return err
				}
				fmt.Printf("Created user %s (%s)\n", created.Username, created.Role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleEmployee), "Role")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
