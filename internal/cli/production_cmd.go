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

func newProductionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "production",
		Short: "Shoot schedules, locations and crew",
	}

	cmd.AddCommand(
		newSchedulesCmd(app),
		newLocationsCmd(app),
		newCrewCmd(app),
	)

	return cmd
}

func newSchedulesCmd(app *App) *cobra.Command {
	var project, status string

	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "List shoot days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.ScheduleFilter{Status: status}
				if project != "" {
					id, err := resolveProjectID(ctx, app, project)
					if err != nil {
						return err
					}
					f.ProjectID = &id
				}
				schedules, err := query.Fetch(ctx, app.Queries, resourceKey("production/schedules", f.Values()),
					func(ctx context.Context) ([]domain.ProductionSchedule, error) {
						return app.Production.ListSchedules(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(schedules) == 0 {
					fmt.Println("No shoot days scheduled.")
					return nil
				}
				rows := make([][]string, 0, len(schedules))
				for _, s := range schedules {
					rows = append(rows, []string{
						fmt.Sprintf("#%d", s.ID),
						s.Title,
						fmt.Sprintf("project #%d", s.ProjectID),
						formatter.Date(s.Date),
						string(s.ShootType),
						s.CallTime,
						formatter.ScheduleStatusPill(s.Status),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"ID", "Title", "Project", "Date", "Type", "Call", "Status"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Filter by project ID or code")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (tentative, confirmed, completed, ...)")

	return cmd
}

func newLocationsCmd(app *App) *cobra.Command {
	var locationType string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List shoot locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.LocationFilter{LocationType: locationType}
				locations, err := query.Fetch(ctx, app.Queries, resourceKey("production/locations", f.Values()),
					func(ctx context.Context) ([]domain.Location, error) {
						return app.Production.ListLocations(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(locations) == 0 {
					fmt.Println("No locations found.")
					return nil
				}
				rows := make([][]string, 0, len(locations))
				for _, l := range locations {
					rate := formatter.Dim("—")
					if l.RentalRate != nil {
						rate = formatter.Money(*l.RentalRate, "USD")
					}
					permit := ""
					if l.PermitRequired {
						permit = formatter.StyleYellow.Render("permit required")
					}
					rows = append(rows, []string{
						l.Name,
						l.LocationType,
						l.City,
						l.ContactName,
						rate,
						permit,
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Name", "Type", "City", "Contact", "Rate/day", ""}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&locationType, "type", "", "Filter by location type")

	return cmd
}

func newCrewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "crew SCHEDULE_ID",
		Short: "Show the call sheet for a shoot day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				scheduleID, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid schedule ID %q", args[0])
				}
				crew, err := query.Fetch(ctx, app.Queries, detailKey("production/schedules/crew", scheduleID),
					func(ctx context.Context) ([]domain.CrewAssignment, error) {
						return app.Production.ListCrew(ctx, scheduleID)
					})
				if err != nil {
					return err
				}
				if len(crew) == 0 {
					fmt.Println("No crew assigned.")
					return nil
				}
				rows := make([][]string, 0, len(crew))
				for _, c := range crew {
					who := c.ExternalName
					if c.EmployeeID != nil {
						who = fmt.Sprintf("employee #%d", *c.EmployeeID)
					}
					confirmed := formatter.Dim("pending")
					if c.IsConfirmed {
						confirmed = formatter.StyleGreen.Render("confirmed")
					}
					rows = append(rows, []string{
						c.Role,
						who,
						c.CallTime,
						confirmed,
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Role", "Who", "Call", ""}, rows))
				return nil
			})
		},
	}
}
