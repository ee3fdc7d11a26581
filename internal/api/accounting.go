package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// AccountingClient covers invoices, payments, expenses and budgets.
type AccountingClient struct {
	c *Client
}

func NewAccountingClient(c *Client) *AccountingClient {
	return &AccountingClient{c: c}
}

// Invoices

type InvoiceFilter struct {
	Status    string
	ClientID  *int
	ProjectID *int
}

func (f InvoiceFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "client_id", f.ClientID)
	setInt(v, "project_id", f.ProjectID)
	return v
}

// InvoiceItemRequest is one line item in a create-invoice body.
// Quantity defaults to 1 when callers leave it zero; the wizard fills
// it in before the request is built.
type InvoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber      string               `json:"invoice_number"`
	ClientID           int                  `json:"client_id"`
	ProjectID          *int                 `json:"project_id,omitempty"`
	IssueDate          string               `json:"issue_date,omitempty"`
	DueDate            string               `json:"due_date,omitempty"`
	TaxRate            float64              `json:"tax_rate,omitempty"`
	DiscountPercentage float64              `json:"discount_percentage,omitempty"`
	Currency           string               `json:"currency,omitempty"`
	Notes              string               `json:"notes,omitempty"`
	Terms              string               `json:"terms,omitempty"`
	Items              []InvoiceItemRequest `json:"items"`
}

type UpdateInvoiceRequest struct {
	Status  *string `json:"status,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Terms   *string `json:"terms,omitempty"`
}

func (a *AccountingClient) ListInvoices(ctx context.Context, f InvoiceFilter) ([]domain.Invoice, error) {
	var out []domain.Invoice
	if err := a.c.Get(ctx, "/accounting/invoices", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AccountingClient) GetInvoice(ctx context.Context, id int) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := a.c.Get(ctx, fmt.Sprintf("/accounting/invoices/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AccountingClient) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := a.c.Post(ctx, "/accounting/invoices", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AccountingClient) UpdateInvoice(ctx context.Context, id int, req UpdateInvoiceRequest) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := a.c.Put(ctx, fmt.Sprintf("/accounting/invoices/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPaymentRequest is the body for recording a payment against an
// invoice.
type RecordPaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Reference     string  `json:"reference,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

func (a *AccountingClient) RecordPayment(ctx context.Context, invoiceID int, req RecordPaymentRequest) (*domain.Payment, error) {
	var out domain.Payment
	if err := a.c.Post(ctx, fmt.Sprintf("/accounting/invoices/%d/payments", invoiceID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Expenses

type ExpenseFilter struct {
	Status    string
	ProjectID *int
}

func (f ExpenseFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "project_id", f.ProjectID)
	return v
}

type CreateExpenseRequest struct {
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	ExpenseDate    string  `json:"expense_date,omitempty"`
	ProjectID      *int    `json:"project_id,omitempty"`
	VendorName     string  `json:"vendor_name,omitempty"`
	IsReimbursable bool    `json:"is_reimbursable,omitempty"`
}

type UpdateExpenseRequest struct {
	Status      *string  `json:"status,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	VendorName  *string  `json:"vendor_name,omitempty"`
}

func (a *AccountingClient) ListExpenses(ctx context.Context, f ExpenseFilter) ([]domain.Expense, error) {
	var out []domain.Expense
	if err := a.c.Get(ctx, "/accounting/expenses", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AccountingClient) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*domain.Expense, error) {
	var out domain.Expense
	if err := a.c.Post(ctx, "/accounting/expenses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AccountingClient) UpdateExpense(ctx context.Context, id int, req UpdateExpenseRequest) (*domain.Expense, error) {
	var out domain.Expense
	if err := a.c.Put(ctx, fmt.Sprintf("/accounting/expenses/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Budgets

type BudgetFilter struct {
	ProjectID *int
}

func (f BudgetFilter) Values() url.Values {
	v := url.Values{}
	setInt(v, "project_id", f.ProjectID)
	return v
}

type CreateBudgetRequest struct {
	ProjectID     int     `json:"project_id"`
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
	PlannedAmount float64 `json:"planned_amount"`
}

func (a *AccountingClient) ListBudgets(ctx context.Context, f BudgetFilter) ([]domain.Budget, error) {
	var out []domain.Budget
	if err := a.c.Get(ctx, "/accounting/budgets", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AccountingClient) CreateBudget(ctx context.Context, req CreateBudgetRequest) (*domain.Budget, error) {
	var out domain.Budget
	if err := a.c.Post(ctx, "/accounting/budgets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
