package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

// resolveProjectID accepts a numeric ID or a project code and returns
// the numeric ID, listing projects to match codes.
func resolveProjectID(ctx context.Context, app *App, input string) (int, error) {
	if input == "" {
		return 0, fmt.Errorf("project ID or code is required")
	}
	if id, err := strconv.Atoi(input); err == nil {
		return id, nil
	}

	projects, err := query.Fetch(ctx, app.Queries, resourceKey("projects", nil),
		func(ctx context.Context) ([]domain.Project, error) {
			return app.Projects.List(ctx, api.ProjectFilter{})
		})
	if err != nil {
		return 0, err
	}
	for _, p := range projects {
		if p.Code == input {
			return p.ID, nil
		}
	}
	return 0, fmt.Errorf("project not found: %q", input)
}

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectsListCmd(app),
		newProjectsInspectCmd(app),
		newProjectsCreateCmd(app),
		newProjectsArchiveCmd(app),
		newProjectsSprintsCmd(app),
	)

	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var status string
	var clientID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.ProjectFilter{Status: status}
				if clientID > 0 {
					f.ClientID = &clientID
				}
				projects, err := query.Fetch(ctx, app.Queries, resourceKey("projects", f.Values()),
					func(ctx context.Context) ([]domain.Project, error) {
						return app.Projects.List(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(projects) == 0 {
					fmt.Println("No projects found.")
					return nil
				}
				rows := make([][]string, 0, len(projects))
				for _, p := range projects {
					rows = append(rows, []string{
						formatter.StyleGreen.Render(p.Code),
						p.Name,
						formatter.ProjectStatusPill(p.Status),
						string(p.ProjectType),
						formatter.Date(p.TargetEndDate),
						formatter.Pct(p.ProgressPercentage),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Code", "Name", "Status", "Type", "Target", "Progress"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (planning, production, completed, ...)")
	cmd.Flags().IntVar(&clientID, "client", 0, "Filter by client ID")

	return cmd
}

func newProjectsInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				p, err := query.Fetch(ctx, app.Queries, detailKey("projects", id),
					func(ctx context.Context) (*domain.Project, error) {
						return app.Projects.Get(ctx, id)
					})
				if err != nil {
					return err
				}

				fmt.Println(formatter.Header(fmt.Sprintf("%s · %s", p.Code, p.Name)))
				fmt.Printf("  %s %s\n", formatter.Dim("status  "), formatter.ProjectStatusPill(p.Status))
				fmt.Printf("  %s %s\n", formatter.Dim("type    "), p.ProjectType)
				fmt.Printf("  %s %s → %s\n", formatter.Dim("dates   "), formatter.Date(p.StartDate), formatter.Date(p.TargetEndDate))
				fmt.Printf("  %s %s estimated, %s actual\n", formatter.Dim("budget  "),
					formatter.Money(p.EstimatedBudget, "USD"), formatter.Money(p.ActualBudget, "USD"))
				fmt.Printf("  %s %s\n", formatter.Dim("progress"), formatter.RenderProgress(p.ProgressPercentage/100, 20))
				if p.Description != "" {
					fmt.Printf("\n  %s\n", p.Description)
				}
				return nil
			})
		},
	}
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var name, code, projectType, start string
	var clientID int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				req := api.CreateProjectRequest{
					Name:        name,
					Code:        code,
					ProjectType: projectType,
					StartDate:   start,
				}
				if clientID > 0 {
					req.ClientID = &clientID
				}
				var created *domain.Project
				err := app.Queries.Mutate(ctx, func(ctx context.Context) error {
					var err error
					created, err = app.Projects.Create(ctx, req)
					return err
				}, resourceKey("projects", nil))
				if err != nil {
					return err
				}
				fmt.Printf("Created project %s [%s]\n", created.Name, created.Code)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&code, "code", "", "Project code (e.g. ACME-SPOT)")
	cmd.Flags().StringVar(&projectType, "type", string(domain.ProjectCommercial), "Project type")
	cmd.Flags().Var(dateFlag{&start}, "start", "Start date")
	cmd.Flags().IntVar(&clientID, "client", 0, "Client ID")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newProjectsArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				archived := true
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					_, err := app.Projects.Update(ctx, id, api.UpdateProjectRequest{IsArchived: &archived})
					return err
				}, resourceKey("projects", nil), detailKey("projects", id))
				if err != nil {
					return err
				}
				fmt.Printf("Archived project #%d\n", id)
				return nil
			})
		},
	}
}

func newProjectsSprintsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sprints ID",
		Short: "List a project's sprints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				sprints, err := query.Fetch(ctx, app.Queries, detailKey("projects/sprints", id),
					func(ctx context.Context) ([]domain.Sprint, error) {
						return app.Projects.ListSprints(ctx, id)
					})
				if err != nil {
					return err
				}
				if len(sprints) == 0 {
					fmt.Println("No sprints.")
					return nil
				}
				rows := make([][]string, 0, len(sprints))
				for _, s := range sprints {
					state := formatter.Dim("planned")
					switch {
					case s.IsCompleted:
						state = formatter.Dim("completed")
					case s.IsActive:
						state = formatter.StyleGreen.Render("active")
					}
					rows = append(rows, []string{
						s.Name,
						s.Goal,
						formatter.Date(s.StartDate),
						formatter.Date(s.EndDate),
						state,
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Name", "Goal", "Start", "End", "State"}, rows))
				return nil
			})
		},
	}
}
