package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Studio overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				stats, err := query.Fetch(ctx, app.Queries, resourceKey("dashboard/stats", nil),
					func(ctx context.Context) (*domain.DashboardStats, error) {
						return app.Dashboard.Stats(ctx)
					})
				if err != nil {
					return err
				}

				fmt.Println(formatter.Header("Studio"))
				fmt.Printf("  %s %d active, %d completed\n", formatter.Dim("projects "), stats.Projects.Active, stats.Projects.Completed)
				fmt.Printf("  %s %d total, %d in progress\n", formatter.Dim("tasks    "), stats.Tasks.Total, stats.Tasks.InProgress)
				fmt.Printf("  %s %d clients, %d new leads, %d open deals (%s pipeline)\n",
					formatter.Dim("crm      "), stats.CRM.ActiveClients, stats.CRM.NewLeads, stats.CRM.OpenDeals,
					formatter.Money(stats.CRM.PipelineValue, "USD"))
				fmt.Printf("  %s %d pending (%s), %d overdue\n",
					formatter.Dim("invoices "), stats.Finance.PendingInvoices,
					formatter.Money(stats.Finance.PendingAmount, "USD"), stats.Finance.OverdueInvoices)
				fmt.Printf("  %s %d available, %d in use\n", formatter.Dim("equipment"), stats.Equipment.Available, stats.Equipment.InUse)
				fmt.Printf("  %s %d employees, %d pending leave requests\n", formatter.Dim("hr       "), stats.HR.TotalEmployees, stats.HR.PendingLeaveRequests)
				fmt.Printf("  %s %d upcoming shoots\n", formatter.Dim("shoots   "), stats.Production.UpcomingShoots)
				return nil
			})
		},
	}

	cmd.AddCommand(newMyTasksCmd(app))

	return cmd
}

func newMyTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "my-tasks",
		Short: "Tasks assigned to the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				tasks, err := query.Fetch(ctx, app.Queries, resourceKey("dashboard/my-tasks", nil),
					func(ctx context.Context) ([]domain.MyTask, error) {
						return app.Dashboard.MyTasks(ctx)
					})
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					fmt.Println("Nothing assigned to you.")
					return nil
				}
				rows := make([][]string, 0, len(tasks))
				for _, t := range tasks {
					rows = append(rows, []string{
						formatter.StyleGreen.Render(t.TaskKey),
						t.Title,
						formatter.TaskStatusPill(t.Status),
						formatter.PriorityPill(t.Priority),
						formatter.Date(t.DueDate),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Key", "Title", "Status", "Priority", "Due"}, rows))
				return nil
			})
		},
	}
}
