package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

func newAccountingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounting",
		Aliases: []string{"acct"},
		Short:   "Invoices, expenses and budgets",
	}

	cmd.AddCommand(
		newInvoicesCmd(app),
		newExpensesCmd(app),
		newBudgetsCmd(app),
	)

	return cmd
}

func newInvoicesCmd(app *App) *cobra.Command {
	var status string
	var clientID int

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.InvoiceFilter{Status: status}
				if clientID > 0 {
					f.ClientID = &clientID
				}
				invoices, err := query.Fetch(ctx, app.Queries, resourceKey("accounting/invoices", f.Values()),
					func(ctx context.Context) ([]domain.Invoice, error) {
						return app.Accounting.ListInvoices(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(invoices) == 0 {
					fmt.Println("No invoices found.")
					return nil
				}
				rows := make([][]string, 0, len(invoices))
				for _, inv := range invoices {
					currency := inv.Currency
					if currency == "" {
						currency = "USD"
					}
					rows = append(rows, []string{
						formatter.StyleGreen.Render(inv.InvoiceNumber),
						fmt.Sprintf("#%d", inv.ClientID),
						formatter.InvoiceStatusPill(inv.Status),
						formatter.Money(inv.TotalAmount, currency),
						formatter.Money(inv.BalanceDue, currency),
						formatter.Date(inv.DueDate),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Invoice", "Client", "Status", "Total", "Due", "Due date"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (draft, sent, paid, overdue, ...)")
	cmd.Flags().IntVar(&clientID, "client", 0, "Filter by client ID")

	cmd.AddCommand(newInvoiceInspectCmd(app), newInvoicePayCmd(app), newInvoiceSendCmd(app))

	return cmd
}

func newInvoiceInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show an invoice with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid invoice ID %q", args[0])
				}
				inv, err := query.Fetch(ctx, app.Queries, detailKey("accounting/invoices", id),
					func(ctx context.Context) (*domain.Invoice, error) {
						return app.Accounting.GetInvoice(ctx, id)
					})
				if err != nil {
					return err
				}
				currency := inv.Currency
				if currency == "" {
					currency = "USD"
				}

				fmt.Println(formatter.Header(inv.InvoiceNumber))
				fmt.Printf("  %s %s\n", formatter.Dim("status "), formatter.InvoiceStatusPill(inv.Status))
				fmt.Printf("  %s #%d\n", formatter.Dim("client "), inv.ClientID)
				fmt.Printf("  %s %s, due %s\n", formatter.Dim("issued "), formatter.Date(inv.IssueDate), formatter.Date(inv.DueDate))
				if len(inv.Items) > 0 {
					fmt.Println()
					rows := make([][]string, 0, len(inv.Items))
					for _, item := range inv.Items {
						rows = append(rows, []string{
							"  " + item.Description,
							fmt.Sprintf("%g", item.Quantity),
							formatter.Money(item.UnitPrice, currency),
							formatter.Money(item.Amount, currency),
						})
					}
					fmt.Println(formatter.RenderTable([]string{"  Item", "Qty", "Unit", "Amount"}, rows))
				}
				fmt.Printf("\n  %s %s\n", formatter.Dim("subtotal"), formatter.Money(inv.Subtotal, currency))
				if inv.TaxAmount > 0 {
					fmt.Printf("  %s %s (%s)\n", formatter.Dim("tax     "), formatter.Money(inv.TaxAmount, currency), formatter.Pct(inv.TaxRate))
				}
				fmt.Printf("  %s %s\n", formatter.Dim("total   "), formatter.Bold(formatter.Money(inv.TotalAmount, currency)))
				fmt.Printf("  %s %s paid, %s due\n", formatter.Dim("balance "),
					formatter.Money(inv.AmountPaid, currency), formatter.Money(inv.BalanceDue, currency))
				return nil
			})
		},
	}
}

func newInvoicePayCmd(app *App) *cobra.Command {
	var amount float64
	var date, method, reference string

	cmd := &cobra.Command{
		Use:   "pay ID",
		Short: "Record a payment against an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid invoice ID %q", args[0])
				}
				if date == "" {
					date = time.Now().Format("2006-01-02")
				}
				req := api.RecordPaymentRequest{
					Amount:        amount,
					PaymentDate:   date,
					PaymentMethod: method,
					Reference:     reference,
				}
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					_, err := app.Accounting.RecordPayment(ctx, id, req)
					return err
				}, resourceKey("accounting/invoices", nil), detailKey("accounting/invoices", id))
				if err != nil {
					return err
				}
				fmt.Printf("Recorded %s against invoice #%d\n", formatter.Money(amount, "USD"), id)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Payment amount")
	cmd.Flags().Var(dateFlag{&date}, "date", "Payment date (default today)")
	cmd.Flags().StringVar(&method, "method", "bank_transfer", "Payment method")
	cmd.Flags().StringVar(&reference, "reference", "", "Payment reference")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newInvoiceSendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send ID",
		Short: "Mark an invoice as sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid invoice ID %q", args[0])
				}
				sent := string(domain.InvoiceSent)
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					_, err := app.Accounting.UpdateInvoice(ctx, id, api.UpdateInvoiceRequest{Status: &sent})
					return err
				}, resourceKey("accounting/invoices", nil), detailKey("accounting/invoices", id))
				if err != nil {
					return err
				}
				fmt.Printf("Invoice #%d marked as sent\n", id)
				return nil
			})
		},
	}
}

func newExpensesCmd(app *App) *cobra.Command {
	var status string
	var projectID int

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.ExpenseFilter{Status: status}
				if projectID > 0 {
					f.ProjectID = &projectID
				}
				expenses, err := query.Fetch(ctx, app.Queries, resourceKey("accounting/expenses", f.Values()),
					func(ctx context.Context) ([]domain.Expense, error) {
						return app.Accounting.ListExpenses(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(expenses) == 0 {
					fmt.Println("No expenses found.")
					return nil
				}
				rows := make([][]string, 0, len(expenses))
				for _, e := range expenses {
					currency := e.Currency
					if currency == "" {
						currency = "USD"
					}
					rows = append(rows, []string{
						formatter.StyleGreen.Render(e.ExpenseNumber),
						e.Category,
						e.Description,
						formatter.Money(e.Amount, currency),
						formatter.ExpenseStatusPill(e.Status),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Expense", "Category", "Description", "Amount", "Status"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, approved, rejected)")
	cmd.Flags().IntVar(&projectID, "project", 0, "Filter by project ID")

	cmd.AddCommand(newExpenseApproveCmd(app))

	return cmd
}

func newExpenseApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Approve an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid expense ID %q", args[0])
				}
				approved := string(domain.ExpenseApproved)
				err = app.Queries.Mutate(ctx, func(ctx context.Context) error {
					_, err := app.Accounting.UpdateExpense(ctx, id, api.UpdateExpenseRequest{Status: &approved})
					return err
				}, resourceKey("accounting/expenses", nil))
				if err != nil {
					return err
				}
				fmt.Printf("Expense #%d approved\n", id)
				return nil
			})
		},
	}
}

func newBudgetsCmd(app *App) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "List budget lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthed(app, func(ctx context.Context) error {
				f := api.BudgetFilter{}
				if projectID > 0 {
					f.ProjectID = &projectID
				}
				budgets, err := query.Fetch(ctx, app.Queries, resourceKey("accounting/budgets", f.Values()),
					func(ctx context.Context) ([]domain.Budget, error) {
						return app.Accounting.ListBudgets(ctx, f)
					})
				if err != nil {
					return err
				}
				if len(budgets) == 0 {
					fmt.Println("No budget lines found.")
					return nil
				}
				rows := make([][]string, 0, len(budgets))
				for _, b := range budgets {
					rows = append(rows, []string{
						fmt.Sprintf("#%d", b.ProjectID),
						b.Category,
						formatter.Money(b.PlannedAmount, "USD"),
						formatter.Money(b.ActualAmount, "USD"),
						formatter.Money(b.PlannedAmount-b.ActualAmount, "USD"),
					})
				}
				fmt.Println(formatter.RenderTable([]string{"Project", "Category", "Planned", "Actual", "Remaining"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Filter by project ID")

	return cmd
}
