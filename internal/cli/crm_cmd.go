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

func newCRMCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crm",
		Short: "Clients, leads, deals and contacts",
	}

	cmd.AddCommand(
		newCRMClientsCmd(app),
		newCRMLeadsCmd(app),
		newCRMDealsCmd(app),
		newCRMContactsCmd(app),
	)

	return cmd
}

func newCRMClientsCmd(app *App) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.ClientFilter{}
				if activeOnly {
					t := true
					f.IsActive = &t
				}
				clients, err := query.Fetch(ctx, app.Queries, resourceKey("crm/clients", f.Values()),
					func(ctx context.Context) ([]domain.Client, error) {
						return app.CRM.ListClients(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(clients) == 0 {
					fmt.Println("No clients found.")
					return nil
				}
				rows := make([][]string, 0, len(clients))
				for _, c := range clients {
					active := formatter.StyleGreen.Render("yes")
					if !c.IsActive {
						active = formatter.Dim("no")
					}
					rows = append(rows, []string{
						formatter.StyleGreen.Render(c.Code),
						c.Name,
						string(c.ClientType),
						c.Industry,
						c.Country,
						active,
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Code", "Name", "Type", "Industry", "Country", "Active"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only active clients")

	return cmd
}

func newCRMLeadsCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.LeadFilter{Status: status}
				leads, err := query.Fetch(ctx, app.Queries, resourceKey("crm/leads", f.Values()),
					func(ctx context.Context) ([]domain.Lead, error) {
						return app.CRM.ListLeads(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(leads) == 0 {
					fmt.Println("No leads found.")
					return nil
				}
				rows := make([][]string, 0, len(leads))
				for _, l := range leads {
					value := formatter.Dim("—")
					if l.EstimatedValue != nil {
						value = formatter.Money(*l.EstimatedValue, "USD")
					}
					rows = append(rows, []string{
						l.Title,
						l.CompanyName,
						formatter.LeadStatusPill(l.Status),
						value,
						formatter.Pct(l.Probability),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Title", "Company", "Status", "Value", "Prob."}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (new, contacted, qualified, ...)")

	cmd.AddCommand(newCRMLeadMoveCmd(app))

	return cmd
}

func newCRMLeadMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Move a lead through the funnel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid lead ID %q", args[0])
				}
				status := args[1]
				var moved *domain.Lead
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					var err error
					moved, err = app.CRM.UpdateLead(ctx, id, api.UpdateLeadRequest{Status: &status})
					return err
				}, resourceKey("crm/leads", nil))
				if err != nil {
					return err
				}
				fmt.Printf("%s → %s\n", moved.Title, moved.Status)
				return nil
			})
		},
	}
}

func newCRMDealsCmd(app *App) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "deals",
		Short: "List deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.DealFilter{Stage: stage}
				deals, err := query.Fetch(ctx, app.Queries, resourceKey("crm/deals", f.Values()),
					func(ctx context.Context) ([]domain.Deal, error) {
						return app.CRM.ListDeals(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(deals) == 0 {
					fmt.Println("No deals found.")
					return nil
				}
				rows := make([][]string, 0, len(deals))
				for _, d := range deals {
					rows = append(rows, []string{
						d.Name,
						formatter.DealStagePill(d.Stage),
						formatter.Money(d.Amount, "USD"),
						formatter.Pct(d.Probability),
						formatter.Date(d.ExpectedCloseDate),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Name", "Stage", "Amount", "Prob.", "Close"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Filter by stage (discovery, proposal, negotiation, ...)")

	return cmd
}

func newCRMContactsCmd(app *App) *cobra.Command {
	var clientID int

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.ContactFilter{}
				if clientID > 0 {
					f.ClientID = &clientID
				}
				contacts, err := query.Fetch(ctx, app.Queries, resourceKey("crm/contacts", f.Values()),
					func(ctx context.Context) ([]domain.Contact, error) {
						return app.CRM.ListContacts(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(contacts) == 0 {
					fmt.Println("No contacts found.")
					return nil
				}
				rows := make([][]string, 0, len(contacts))
				for _, c := range contacts {
					client := formatter.Dim("—")
					if c.ClientID != nil {
						client = fmt.Sprintf("#%d", *c.ClientID)
					}
					rows = append(rows, []string{
						c.FirstName + " " + c.LastName,
						c.JobTitle,
						c.Email,
						c.Phone,
						client,
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Name", "Title", "Email", "Phone", "Client"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&clientID, "client", 0, "Filter by client ID")

	return cmd
}
