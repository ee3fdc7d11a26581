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

func newEquipmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"gear"},
		Short:   "Gear inventory and bookings",
	}

	cmd.AddCommand(
		newEquipmentListCmd(app),
		newEquipmentBookCmd(app),
		newEquipmentBookingsCmd(app),
	)

	return cmd
}

func newEquipmentListCmd(app *App) *cobra.Command {
	var category, status string
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.EquipmentFilter{Category: category, Status: status}
				if availableOnly {
					t := true
					f.IsAvailable = &t
				}
				gear, err := query.Fetch(ctx, app.Queries, resourceKey("equipment", f.Values()),
					func(ctx context.Context) ([]domain.Equipment, error) {
						return app.Equipment.List(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(gear) == 0 {
					fmt.Println("No equipment found.")
					return nil
				}
				rows := make([][]string, 0, len(gear))
				for _, g := range gear {
					rate := formatter.Dim("—")
					if g.DailyRate != nil {
						rate = formatter.Money(*g.DailyRate, "USD")
					}
					rows = append(rows, []string{
						formatter.StyleGreen.Render(g.Code),
						g.Name,
						string(g.Category),
						g.Brand,
						formatter.EquipmentStatusPill(g.Status),
						rate,
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Code", "Name", "Category", "Brand", "Status", "Rate/day"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (camera, lens, lighting, ...)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (available, in_use, maintenance, ...)")
	cmd.Flags().BoolVar(&availableOnly, "available", false, "Only available gear")

	return cmd
}

func newEquipmentBookCmd(app *App) *cobra.Command {
	var start, end, purpose string
	var projectID int

	cmd := &cobra.Command{
		Use:   "book ID",
		Short: "Book a piece of equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid equipment ID %q", args[0])
				}
				req := api.CreateBookingRequest{
					EquipmentID: id,
					StartDate:   start,
					EndDate:     end,
					Purpose:     purpose,
				}
				if projectID > 0 {
					req.ProjectID = &projectID
				}
				var booking *domain.EquipmentBooking
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					var err error
					booking, err = app.Equipment.CreateBooking(ctx, req)
					return err
				}, resourceKey("equipment/bookings", nil), resourceKey("equipment", nil))
				if err != nil {
					return err
				}
				fmt.Printf("Booked equipment #%d, %s → %s (booking #%d)\n",
					id, formatter.Date(booking.StartDate), formatter.Date(booking.EndDate), booking.ID)
				return nil
			})
		},
	}

	cmd.Flags().Var(dateFlag{&start}, "start", "Start date")
	cmd.Flags().Var(dateFlag{&end}, "end", "End date")
	cmd.Flags().IntVar(&projectID, "project", 0, "Project ID")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Booking purpose")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newEquipmentBookingsCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List equipment bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.BookingFilter{Status: status}
				bookings, err := query.Fetch(ctx, app.Queries, resourceKey("equipment/bookings", f.Values()),
					func(ctx context.Context) ([]domain.EquipmentBooking, error) {
						return app.Equipment.ListBookings(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(bookings) == 0 {
					fmt.Println("No bookings found.")
					return nil
				}
				rows := make([][]string, 0, len(bookings))
				for _, b := range bookings {
					project := formatter.Dim("—")
					if b.ProjectID != nil {
						project = fmt.Sprintf("#%d", *b.ProjectID)
					}
					rows = append(rows, []string{
						fmt.Sprintf("#%d", b.ID),
						fmt.Sprintf("gear #%d", b.EquipmentID),
						formatter.Date(b.StartDate),
						formatter.Date(b.EndDate),
						project,
						formatter.BookingStatusPill(b.Status),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"ID", "Equipment", "From", "To", "Project", "Status"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, confirmed, checked_out, ...)")

	cmd.AddCommand(newBookingReturnCmd(app))

	return cmd
}

func newBookingReturnCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "return ID",
		Short: "Mark a booking as returned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid booking ID %q", args[0])
				}
				returned := string(domain.BookingReturned)
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					_, err := app.Equipment.UpdateBooking(ctx, id, api.UpdateBookingRequest{Status: &returned})
					return err
				}, resourceKey("equipment/bookings", nil), resourceKey("equipment", nil))
				if err != nil {
					return err
				}
				fmt.Printf("Booking #%d returned\n", id)
				return nil
			})
		},
	}
}
