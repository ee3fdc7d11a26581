package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

const (
	acctTabInvoices = iota
	acctTabExpenses
	acctTabBudgets
	acctTabCount
)

var acctTabLabels = []string{"Invoices", "Expenses", "Budgets"}

type acctLoadedMsg struct {
	tab      int
	invoices []domain.Invoice
	expenses []domain.Expense
	budgets  []domain.Budget
	err      error
}

// accountingView shows invoices, expenses and budgets. The invoice
// wizard chains a header form with any number of line-item forms
// before posting the whole invoice in one request.
type accountingView struct {
	state    *SharedState
	tab      int
	cursor   int
	loading  bool
	err      error
	invoices []domain.Invoice
	expenses []domain.Expense
	budgets  []domain.Budget
}

func newAccountingView(state *SharedState) *accountingView {
	return &accountingView{state: state, loading: true}
}

func (v *accountingView) ID() ViewID    { return ViewAccounting }
func (v *accountingView) Title() string { return "Accounting" }

func (v *accountingView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	}
	if v.tab == acctTabInvoices {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "record payment")))
	}
	return append(bindings, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")))
}

func (v *accountingView) Init() tea.Cmd {
	return v.loadData()
}

func (v *accountingView) loadData() tea.Cmd {
	app := v.state.App
	tab := v.tab
	return func() tea.Msg {
		ctx := context.Background()
		fail := func(err error) tea.Msg {
			return authGuard(err, func(err error) tea.Msg { return acctLoadedMsg{tab: tab, err: err} })
		}
		switch tab {
		case acctTabInvoices:
			invoices, err := query.Fetch(ctx, app.Queries, resourceKey("accounting/invoices", nil),
				func(ctx context.Context) ([]domain.Invoice, error) {
					return app.Accounting.ListInvoices(ctx, api.InvoiceFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return acctLoadedMsg{tab: tab, invoices: invoices}
		case acctTabExpenses:
			expenses, err := query.Fetch(ctx, app.Queries, resourceKey("accounting/expenses", nil),
				func(ctx context.Context) ([]domain.Expense, error) {
					return app.Accounting.ListExpenses(ctx, api.ExpenseFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return acctLoadedMsg{tab: tab, expenses: expenses}
		default:
			budgets, err := query.Fetch(ctx, app.Queries, resourceKey("accounting/budgets", nil),
				func(ctx context.Context) ([]domain.Budget, error) {
					return app.Accounting.ListBudgets(ctx, api.BudgetFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return acctLoadedMsg{tab: tab, budgets: budgets}
		}
	}
}

func (v *accountingView) rowCount() int {
	switch v.tab {
	case acctTabInvoices:
		return len(v.invoices)
	case acctTabExpenses:
		return len(v.expenses)
	default:
		return len(v.budgets)
	}
}

func (v *accountingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case acctLoadedMsg:
		if msg.tab != v.tab {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.invoices, v.expenses, v.budgets = msg.invoices, msg.expenses, msg.budgets
		if v.cursor >= v.rowCount() {
			v.cursor = max(0, v.rowCount()-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.tab = nextTab(v.tab, acctTabCount, +1)
			v.cursor = 0
			v.loading = true
			v.err = nil
			return v, v.loadData()
		case "shift+tab":
			v.tab = nextTab(v.tab, acctTabCount, -1)
			v.cursor = 0
			v.loading = true
			v.err = nil
			return v, v.loadData()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < v.rowCount()-1 {
				v.cursor++
			}
		case "p":
			if v.tab == acctTabInvoices {
				return v, v.startPaymentWizard()
			}
		case "n":
			switch v.tab {
			case acctTabInvoices:
				return v, v.startInvoiceWizard()
			case acctTabExpenses:
				return v, v.startExpenseWizard()
			default:
				return v, v.startBudgetWizard()
			}
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *accountingView) mutate(resource, okText string, fn func(ctx context.Context) error) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.Queries.Mutate(context.Background(), fn, resourceKey(resource, nil))
		if err != nil {
			return authGuard(err, func(err error) tea.Msg {
				return mutationFailedMsg{text: "Save failed: " + err.Error()}
			})
		}
		return statusLineMsg{text: formatter.StyleGreen.Render(okText)}
	}
}

// invoiceDraft accumulates state across the chained invoice forms.
type invoiceDraft struct {
	invoiceNumber string
	clientID      string
	projectID     string
	issueDate     string
	dueDate       string
	taxRate       string
	items         []api.InvoiceItemRequest
}

func (d *invoiceDraft) request() api.CreateInvoiceRequest {
	req := api.CreateInvoiceRequest{
		InvoiceNumber: d.invoiceNumber,
		ProjectID:     parseOptionalID(d.projectID),
		IssueDate:     d.issueDate,
		DueDate:       d.dueDate,
		TaxRate:       parseAmount(d.taxRate),
		Items:         d.items,
	}
	if id := parseOptionalID(d.clientID); id != nil {
		req.ClientID = *id
	}
	return req
}

// startInvoiceWizard opens the header form, then chains line-item
// forms until the user stops adding, then posts everything at once.
func (v *accountingView) startInvoiceWizard() tea.Cmd {
	draft := &invoiceDraft{issueDate: time.Now().Format("2006-01-02")}

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Invoice number").Placeholder("e.g. INV-2026-041").Value(&draft.invoiceNumber).Validate(validateRequired("invoice number")),
				huh.NewInput().Title("Client ID").Value(&draft.clientID).Validate(validateRequired("client ID")),
				huh.NewInput().Title("Project ID (optional)").Value(&draft.projectID).Validate(validateOptionalID),
				huh.NewInput().Title("Issue date").Placeholder("YYYY-MM-DD").Value(&draft.issueDate).Validate(validateOptionalDate),
				huh.NewInput().Title("Due date (optional)").Placeholder("YYYY-MM-DD").Value(&draft.dueDate).Validate(validateOptionalDate),
				huh.NewInput().Title("Tax rate % (optional)").Value(&draft.taxRate).Validate(validateOptionalAmount),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, "New invoice", makeForm, func() tea.Cmd {
		return view.startItemWizard(draft)
	})
}

// startItemWizard collects one line item. Quantity left blank means 1.
// Choosing to add another chains into a fresh item form; otherwise the
// accumulated draft is submitted as a single create.
func (v *accountingView) startItemWizard(draft *invoiceDraft) tea.Cmd {
	var description, quantity, unitPrice string
	addAnother := false

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Description").Value(&description).Validate(validateRequired("description")),
				huh.NewInput().Title("Quantity").Placeholder("1").Value(&quantity).Validate(validateOptionalQuantity),
				huh.NewInput().Title("Unit price").Value(&unitPrice).Validate(validateAmount),
				huh.NewConfirm().Title("Add another item?").Affirmative("Yes").Negative("No, save invoice").Value(&addAnother),
			),
		)
	}

	state := v.state
	view := v
	slot := len(draft.items)
	title := fmt.Sprintf("Invoice item %d · %s", slot+1, draft.invoiceNumber)
	return startWizard(state, title, makeForm, func() tea.Cmd {
		qty := 1.0
		if quantity != "" {
			qty = parseAmount(quantity)
		}
		item := api.InvoiceItemRequest{
			Description: description,
			Quantity:    qty,
			UnitPrice:   parseAmount(unitPrice),
		}
		// A rejected save re-runs this callback, so write the item into
		// its slot instead of appending a duplicate.
		if slot < len(draft.items) {
			draft.items[slot] = item
		} else {
			draft.items = append(draft.items, item)
		}
		if addAnother {
			return view.startItemWizard(draft)
		}
		app := state.App
		req := draft.request()
		return view.mutate("accounting/invoices", "Invoice "+req.InvoiceNumber+" created.",
			func(ctx context.Context) error {
				_, err := app.Accounting.CreateInvoice(ctx, req)
				return err
			})
	})
}

func (v *accountingView) startPaymentWizard() tea.Cmd {
	if v.cursor >= len(v.invoices) {
		return nil
	}
	inv := v.invoices[v.cursor]
	var amount, date, method, reference string
	date = time.Now().Format("2006-01-02")

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Amount").Placeholder(fmt.Sprintf("%.2f due", inv.BalanceDue)).Value(&amount).Validate(validateAmount),
				huh.NewInput().Title("Payment date").Placeholder("YYYY-MM-DD").Value(&date).Validate(validateOptionalDate),
				huh.NewSelect[string]().Title("Method").Options(
					huh.NewOption("Bank transfer", "bank_transfer"),
					huh.NewOption("Credit card", "credit_card"),
					huh.NewOption("Check", "check"),
					huh.NewOption("Cash", "cash"),
					huh.NewOption("Other", "other"),
				).Value(&method),
				huh.NewInput().Title("Reference (optional)").Value(&reference),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, "Record payment · "+inv.InvoiceNumber, makeForm, func() tea.Cmd {
		app := state.App
		req := api.RecordPaymentRequest{
			Amount:        parseAmount(amount),
			PaymentDate:   date,
			PaymentMethod: method,
			Reference:     reference,
		}
		return view.mutate("accounting/invoices", "Payment recorded.", func(ctx context.Context) error {
			_, err := app.Accounting.RecordPayment(ctx, inv.ID, req)
			return err
		})
	})
}

func (v *accountingView) startExpenseWizard() tea.Cmd {
	var category, description, amount, date, vendor string
	reimbursable := false
	date = time.Now().Format("2006-01-02")

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Category").Placeholder("e.g. equipment_rental").Value(&category).Validate(validateRequired("category")),
				huh.NewInput().Title("Description").Value(&description).Validate(validateRequired("description")),
				huh.NewInput().Title("Amount").Value(&amount).Validate(validateAmount),
				huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&date).Validate(validateOptionalDate),
				huh.NewInput().Title("Vendor (optional)").Value(&vendor),
				huh.NewConfirm().Title("Reimbursable?").Value(&reimbursable),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, "New expense", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateExpenseRequest{
			Category:       category,
			Description:    description,
			Amount:         parseAmount(amount),
			ExpenseDate:    date,
			VendorName:     vendor,
			IsReimbursable: reimbursable,
		}
		return view.mutate("accounting/expenses", "Expense created.", func(ctx context.Context) error {
			_, err := app.Accounting.CreateExpense(ctx, req)
			return err
		})
	})
}

func (v *accountingView) startBudgetWizard() tea.Cmd {
	var projectID, category, planned string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Project ID").Value(&projectID).Validate(validateRequired("project ID")),
				huh.NewInput().Title("Category").Placeholder("e.g. post_production").Value(&category).Validate(validateRequired("category")),
				huh.NewInput().Title("Planned amount").Value(&planned).Validate(validateAmount),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, "New budget line", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateBudgetRequest{
			Category:      category,
			PlannedAmount: parseAmount(planned),
		}
		if id := parseOptionalID(projectID); id != nil {
			req.ProjectID = *id
		}
		return view.mutate("accounting/budgets", "Budget line created.", func(ctx context.Context) error {
			_, err := app.Accounting.CreateBudget(ctx, req)
			return err
		})
	})
}

func (v *accountingView) View() string {
	out := "\n" + renderTabs(acctTabLabels, v.tab) + "\n\n"
	if v.loading {
		return out + loadingLine()
	}
	if v.err != nil {
		return out + errorLine(v.err)
	}

	switch v.tab {
	case acctTabInvoices:
		return out + v.renderInvoices()
	case acctTabExpenses:
		return out + v.renderExpenses()
	default:
		return out + v.renderBudgets()
	}
}

func (v *accountingView) cursorCell(i int) string {
	if i == v.cursor {
		return formatter.StyleGreen.Render("▸ ")
	}
	return "  "
}

func (v *accountingView) renderInvoices() string {
	if len(v.invoices) == 0 {
		return "  " + formatter.Dim("No invoices.") + "\n"
	}
	rows := make([][]string, 0, len(v.invoices))
	for i, inv := range v.invoices {
		currency := inv.Currency
		if currency == "" {
			currency = "USD"
		}
		rows = append(rows, []string{
			v.cursorCell(i) + formatter.StyleGreen.Render(inv.InvoiceNumber),
			fmt.Sprintf("#%d", inv.ClientID),
			formatter.InvoiceStatusPill(inv.Status),
			formatter.Money(inv.TotalAmount, currency),
			formatter.Money(inv.BalanceDue, currency),
			formatter.Date(inv.DueDate),
		})
	}
	return formatter.RenderTable([]string{"  Invoice", "Client", "Status", "Total", "Due", "Due date"}, rows)
}

func (v *accountingView) renderExpenses() string {
	if len(v.expenses) == 0 {
		return "  " + formatter.Dim("No expenses.") + "\n"
	}
	rows := make([][]string, 0, len(v.expenses))
	for i, e := range v.expenses {
		currency := e.Currency
		if currency == "" {
			currency = "USD"
		}
		rows = append(rows, []string{
			v.cursorCell(i) + formatter.StyleGreen.Render(e.ExpenseNumber),
			e.Category,
			e.Description,
			formatter.Money(e.Amount, currency),
			formatter.Date(e.ExpenseDate),
			formatter.ExpenseStatusPill(e.Status),
		})
	}
	return formatter.RenderTable([]string{"  Expense", "Category", "Description", "Amount", "Date", "Status"}, rows)
}

func (v *accountingView) renderBudgets() string {
	if len(v.budgets) == 0 {
		return "  " + formatter.Dim("No budget lines.") + "\n"
	}
	rows := make([][]string, 0, len(v.budgets))
	for i, b := range v.budgets {
		variance := b.PlannedAmount - b.ActualAmount
		varianceCell := formatter.Money(variance, "USD")
		if variance < 0 {
			varianceCell = formatter.StyleRed.Render(varianceCell)
		}
		rows = append(rows, []string{
			v.cursorCell(i) + fmt.Sprintf("#%d", b.ProjectID),
			b.Category,
			formatter.Money(b.PlannedAmount, "USD"),
			formatter.Money(b.ActualAmount, "USD"),
			varianceCell,
		})
	}
	return formatter.RenderTable([]string{"  Project", "Category", "Planned", "Actual", "Variance"}, rows)
}
