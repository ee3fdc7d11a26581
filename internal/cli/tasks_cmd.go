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

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksCreateCmd(app),
		newTasksMoveCmd(app),
		newTasksAssignCmd(app),
		newTasksDeleteCmd(app),
	)

	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var project, status string
	var assignee int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				var tasks []domain.Task
				var err error
				if project != "" {
					var projectID int
					projectID, err = resolveProjectID(ctx, app, project)
					if err != nil {
						return err
					}
					f := api.ProjectTaskFilter{Status: status}
					tasks, err = query.Fetch(ctx, app.Queries,
						resourceKey(fmt.Sprintf("projects/%d/tasks", projectID), f.Values()),
						func(ctx context.Context) ([]domain.Task, error) {
							return app.Tasks.ListByProject(ctx, projectID, f)
						})
				} else {
					f := api.TaskFilter{Status: status}
					if assignee > 0 {
						f.AssigneeID = &assignee
					}
					tasks, err = query.Fetch(ctx, app.Queries, resourceKey("tasks", f.Values()),
						func(ctx context.Context) ([]domain.Task, error) {
							return app.Tasks.ListAll(ctx, f)
						})
				}
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					fmt.Println("No tasks found.")
					return nil
				}
				rows := make([][]string, 0, len(tasks))
				for _, t := range tasks {
					assigneeCell := formatter.Dim("—")
					if t.AssigneeID != nil {
						assigneeCell = fmt.Sprintf("#%d", *t.AssigneeID)
					}
					rows = append(rows, []string{
						formatter.StyleGreen.Render(t.TaskKey),
						t.Title,
						formatter.TaskStatusPill(t.Status),
						formatter.PriorityPill(t.Priority),
						assigneeCell,
						formatter.Date(t.DueDate),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Key", "Title", "Status", "Priority", "Assignee", "Due"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or code")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (backlog, todo, in_progress, ...)")
	cmd.Flags().IntVar(&assignee, "assignee", 0, "Filter by assignee user ID (ignored with --project)")

	return cmd
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var project, title, taskType, priority, due string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				req := api.CreateTaskRequest{
					ProjectID: projectID,
					Title:     title,
					TaskType:  taskType,
					Priority:  priority,
					DueDate:   due,
				}
				var created *domain.Task
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					var err error
					created, err = app.Tasks.Create(ctx, req)
					return err
				}, resourceKey(fmt.Sprintf("projects/%d/tasks", projectID), nil))
				if err != nil {
					return err
				}
				fmt.Printf("Created task %s: %s\n", created.TaskKey, created.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or code")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&taskType, "type", string(domain.TaskKindTask), "Task type")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority")
	cmd.Flags().Var(dateFlag{&due}, "due", "Due date")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

var taskStatusNames = map[string]bool{
	string(domain.TaskBacklog):    true,
	string(domain.TaskTodo):       true,
	string(domain.TaskInProgress): true,
	string(domain.TaskInReview):   true,
	string(domain.TaskBlocked):    true,
	string(domain.TaskDone):       true,
}

func newTasksMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Move a task to another board column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid task ID %q", args[0])
				}
				status := args[1]
				if !taskStatusNames[status] {
					return fmt.Errorf("unknown status %q", status)
				}
				var moved *domain.Task
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					var err error
					moved, err = app.Tasks.Update(ctx, id, api.UpdateTaskRequest{Status: &status})
					return err
				}, resourceKey(fmt.Sprintf("projects/%d/tasks", taskProject(ctx, app, id)), nil))
				if err != nil {
					return err
				}
				fmt.Printf("%s → %s\n", moved.TaskKey, moved.Status)
				return nil
			})
		},
	}
}

// taskProject looks up the owning project so the right cached list is
// invalidated. A lookup failure returns 0, which only misses the
// invalidation, never the move itself.
func taskProject(ctx context.Context, app *App, taskID int) int {
	t, err := app.Tasks.Get(ctx, taskID)
	if err != nil {
		return 0
	}
	return t.ProjectID
}

func newTasksAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign ID USER_ID",
		Short: "Assign a task to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid task ID %q", args[0])
				}
				userID, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid user ID %q", args[1])
				}
				var updated *domain.Task
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					var err error
					updated, err = app.Tasks.Update(ctx, id, api.UpdateTaskRequest{AssigneeID: &userID})
					return err
				}, resourceKey(fmt.Sprintf("projects/%d/tasks", taskProject(ctx, app, id)), nil))
				if err != nil {
					return err
				}
				fmt.Printf("Assigned %s to user #%d\n", updated.TaskKey, userID)
				return nil
			})
		},
	}
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid task ID %q", args[0])
				}
				projectID := taskProject(ctx, app, id)
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					return app.Tasks.Delete(ctx, id)
				}, resourceKey(fmt.Sprintf("projects/%d/tasks", projectID), nil))
				if err != nil {
					return err
				}
				fmt.Printf("Deleted task #%d\n", id)
				return nil
			})
		},
	}
}
