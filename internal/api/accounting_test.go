package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/testutil"
)

func TestCreateInvoiceBodyCarriesAllItems(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/accounting/invoices", http.StatusCreated, domain.Invoice{ID: 12})

	accounting := api.NewAccountingClient(newClient(backend, "tok"))
	_, err := accounting.CreateInvoice(context.Background(), api.CreateInvoiceRequest{
		InvoiceNumber: "INV-2026-014",
		ClientID:      4,
		IssueDate:     "2026-08-01",
		DueDate:       "2026-08-31",
		TaxRate:       8.5,
		Items: []api.InvoiceItemRequest{
			{Description: "Principal photography, day rate", Quantity: 3, UnitPrice: 2500},
			{Description: "Drone unit", Quantity: 1, UnitPrice: 900},
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"invoice_number": "INV-2026-014",
		"client_id": 4,
		"issue_date": "2026-08-01",
		"due_date": "2026-08-31",
		"tax_rate": 8.5,
		"items": [
			{"description": "Principal photography, day rate", "quantity": 3, "unit_price": 2500},
			{"description": "Drone unit", "quantity": 1, "unit_price": 900}
		]
	}`, string(backend.LastBody(http.MethodPost, "/accounting/invoices")))
}

func TestRecordPaymentPostsToInvoice(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/accounting/invoices/12/payments", http.StatusCreated, domain.Payment{ID: 3})

	accounting := api.NewAccountingClient(newClient(backend, "tok"))
	_, err := accounting.RecordPayment(context.Background(), 12, api.RecordPaymentRequest{
		Amount:        1200.50,
		PaymentDate:   "2026-08-15",
		PaymentMethod: "bank_transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.Calls(http.MethodPost, "/accounting/invoices/12/payments"))
}
