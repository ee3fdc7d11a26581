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

func newHRCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hr",
		Short: "Employees, departments and leave",
	}

	cmd.AddCommand(
		newHREmployeesCmd(app),
		newHRDepartmentsCmd(app),
		newHRLeaveCmd(app),
	)

	return cmd
}

func newHREmployeesCmd(app *App) *cobra.Command {
	var departmentID int

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.EmployeeFilter{}
				if departmentID > 0 {
					f.DepartmentID = &departmentID
				}
				employees, err := query.Fetch(ctx, app.Queries, resourceKey("hr/employees", f.Values()),
					func(ctx context.Context) ([]domain.Employee, error) {
						return app.HR.ListEmployees(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(employees) == 0 {
					fmt.Println("No employees found.")
					return nil
				}
				rows := make([][]string, 0, len(employees))
				for _, e := range employees {
					dept := formatter.Dim("—")
					if e.DepartmentID != nil {
						dept = fmt.Sprintf("#%d", *e.DepartmentID)
					}
					rows = append(rows, []string{
						formatter.StyleGreen.Render(e.EmployeeCode),
						e.JobTitle,
						string(e.EmploymentType),
						dept,
						formatter.Date(e.HireDate),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Code", "Title", "Type", "Dept", "Hired"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&departmentID, "department", 0, "Filter by department ID")

	return cmd
}

func newHRDepartmentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				departments, err := query.Fetch(ctx, app.Queries, resourceKey("hr/departments", nil),
					func(ctx context.Context) ([]domain.Department, error) {
						return app.HR.ListDepartments(ctx)
					})
				if err != nil {
					return err
				}
				if len(departments) == 0 {
					fmt.Println("No departments found.")
					return nil
				}
				rows := make([][]string, 0, len(departments))
				for _, d := range departments {
					rows = append(rows, []string{
						formatter.StyleGreen.Render(d.Code),
						d.Name,
						formatter.Money(d.Budget, "USD"),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Code", "Name", "Budget"}, rows))
				return nil
			})
		},
	}
}

func newHRLeaveCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "leave",
		Short: "List leave requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.LeaveRequestFilter{Status: status}
				requests, err := query.Fetch(ctx, app.Queries, resourceKey("hr/leave-requests", f.Values()),
					func(ctx context.Context) ([]domain.LeaveRequest, error) {
						return app.HR.ListLeaveRequests(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(requests) == 0 {
					fmt.Println("No leave requests found.")
					return nil
				}
				rows := make([][]string, 0, len(requests))
				for _, l := range requests {
					rows = append(rows, []string{
						fmt.Sprintf("#%d", l.ID),
						fmt.Sprintf("employee #%d", l.EmployeeID),
						string(l.LeaveType),
						formatter.Date(l.StartDate),
						formatter.Date(l.EndDate),
						formatter.LeaveStatusPill(l.Status),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"ID", "Employee", "Type", "From", "To", "Status"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, approved, rejected)")

	cmd.AddCommand(newHRLeaveApproveCmd(app), newHRLeaveRejectCmd(app))

	return cmd
}

func decideLeave(app *App, id int, status string, reason *string) error {
	return runAuthed(app, func(ctx context.Context) error {
		err := app.Queries.Mutate(ctx, func(ctx context.Context) error {
			_, err := app.HR.UpdateLeaveRequest(ctx, id, api.UpdateLeaveRequestRequest{
				Status:          &status,
				RejectionReason: reason,
			})
			return err
		}, resourceKey("hr/leave-requests", nil))
		if err != nil {
			return err
		}
		fmt.Printf("Leave request #%d %s\n", id, status)
		return nil
	})
}

func newHRLeaveApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Approve a leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid leave request ID %q", args[0])
			}
			return decideLeave(app, id, string(domain.LeaveApproved), nil)
		},
	}
}

func newHRLeaveRejectCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject ID",
		Short: "Reject a leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid leave request ID %q", args[0])
			}
			return decideLeave(app, id, string(domain.LeaveRejected), &reason)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}
