package cli

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/domain"
)

func TestE2E_LoginFlow(t *testing.T) {
	app, backend := testAppLoggedOut(t)
	seedDashboard(backend)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusOK,
		api.TokenResponse{AccessToken: "tok-abc", TokenType: "bearer"})
	backend.Handle(http.MethodGet, "/auth/me", http.StatusOK,
		domain.User{ID: 1, Username: "ada", FullName: "Ada Marsh", Role: domain.RoleAdmin})

	d := NewTestDriver(t, app)
	require.Equal(t, ViewLogin, d.ActiveViewID())

	// In huh, Enter advances through fields within a group, then
	// submits the group.
	d.Type("ada")
	d.PressEnter()
	d.Type("hunter2")
	d.PressEnter()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.True(t, app.Session.HasToken())
	require.NotNil(t, app.Session.CurrentUser())
	assert.Equal(t, "ada", app.Session.CurrentUser().Username)
}

func TestE2E_LoginFailureStaysOnLogin(t *testing.T) {
	app, backend := testAppLoggedOut(t)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusUnauthorized,
		map[string]string{"detail": "bad credentials"})

	d := NewTestDriver(t, app)

	d.Type("ada")
	d.PressEnter()
	d.Type("nope")
	d.PressEnter()

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.False(t, app.Session.HasToken())
	assert.Contains(t, d.View(), "401")
}

func TestE2E_InvoiceWizardPostsOnce(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	backend.Handle(http.MethodGet, "/accounting/invoices", http.StatusOK, []domain.Invoice{})
	backend.Handle(http.MethodPost, "/accounting/invoices", http.StatusCreated, domain.Invoice{ID: 12})

	d := NewTestDriver(t, app)
	d.Send(pushViewMsg{view: newAccountingView(d.State())})
	require.Equal(t, ViewAccounting, d.ActiveViewID())

	// Header form: number, client, project, issue date, due date, tax.
	d.PressKey('n')
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.Type("INV-2026-041")
	d.PressEnter()
	d.Type("4")
	d.PressEnter()
	d.PressEnter() // project (blank)
	d.PressEnter() // issue date (pre-filled with today)
	d.PressEnter() // due date (blank)
	d.PressEnter() // tax rate (blank)

	// First item; toggle the confirm to keep adding.
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.Type("Principal photography, day rate")
	d.PressEnter()
	d.PressEnter() // quantity blank, defaults to 1
	d.Type("2500")
	d.PressEnter()
	d.PressKey('h') // Yes, add another
	d.PressEnter()

	// Second item; leave the confirm on "No, save invoice".
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.Type("Drone unit")
	d.PressEnter()
	d.Type("2")
	d.PressEnter()
	d.Type("900")
	d.PressEnter()
	d.PressEnter()

	// One request carries the whole draft.
	assert.Equal(t, ViewAccounting, d.ActiveViewID())
	require.Equal(t, 1, backend.Calls(http.MethodPost, "/accounting/invoices"))

	var req api.CreateInvoiceRequest
	require.NoError(t, json.Unmarshal(backend.LastBody(http.MethodPost, "/accounting/invoices"), &req))
	assert.Equal(t, "INV-2026-041", req.InvoiceNumber)
	assert.Equal(t, 4, req.ClientID)
	assert.Equal(t, time.Now().Format("2006-01-02"), req.IssueDate)
	require.Len(t, req.Items, 2)
	assert.Equal(t, "Principal photography, day rate", req.Items[0].Description)
	assert.Equal(t, 1.0, req.Items[0].Quantity)
	assert.Equal(t, 2500.0, req.Items[0].UnitPrice)
	assert.Equal(t, "Drone unit", req.Items[1].Description)
	assert.Equal(t, 2.0, req.Items[1].Quantity)
	assert.Equal(t, 900.0, req.Items[1].UnitPrice)

	assert.Contains(t, d.Feedback(), "INV-2026-041")
}

func TestE2E_InvoiceWizardRejectedSaveKeepsDraft(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	backend.Handle(http.MethodGet, "/accounting/invoices", http.StatusOK, []domain.Invoice{})
	backend.Handle(http.MethodPost, "/accounting/invoices", http.StatusUnprocessableEntity,
		map[string]string{"detail": "invoice number already exists"})

	d := NewTestDriver(t, app)
	d.Send(pushViewMsg{view: newAccountingView(d.State())})

	d.PressKey('n')
	require.Equal(t, ViewForm, d.ActiveViewID())
	// number, client, project, issue date, due date, tax
	d.FormFill("INV-2026-041", "4", "", "", "", "")
	// one item, confirm left on "No, save invoice"
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.FormFill("Drone unit", "2", "900", "")

	// The save was rejected: the form stays up with the typed draft,
	// and the error is visible.
	require.Equal(t, 1, backend.Calls(http.MethodPost, "/accounting/invoices"))
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.Feedback(), "Save failed")
	assert.Contains(t, d.View(), "Drone unit")

	// Fix the backend and resubmit; every field is prefilled, so Enter
	// walks straight through. No duplicate line item sneaks in.
	backend.Handle(http.MethodPost, "/accounting/invoices", http.StatusCreated, domain.Invoice{ID: 12})
	d.FormFill("", "", "", "")

	assert.Equal(t, ViewAccounting, d.ActiveViewID())
	require.Equal(t, 2, backend.Calls(http.MethodPost, "/accounting/invoices"))

	var req api.CreateInvoiceRequest
	require.NoError(t, json.Unmarshal(backend.LastBody(http.MethodPost, "/accounting/invoices"), &req))
	assert.Equal(t, "INV-2026-041", req.InvoiceNumber)
	require.Len(t, req.Items, 1)
	assert.Equal(t, "Drone unit", req.Items[0].Description)
	assert.Equal(t, 2.0, req.Items[0].Quantity)
}

func TestE2E_WizardEscCancelsWithoutPosting(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	backend.Handle(http.MethodGet, "/accounting/invoices", http.StatusOK, []domain.Invoice{})

	d := NewTestDriver(t, app)
	d.Send(pushViewMsg{view: newAccountingView(d.State())})

	d.PressKey('n')
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.Type("INV-1")
	d.PressEsc()

	assert.Equal(t, ViewAccounting, d.ActiveViewID())
	assert.Equal(t, 0, backend.Calls(http.MethodPost, "/accounting/invoices"))
}

func TestE2E_CommandBarNavigation(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	backend.Handle(http.MethodGet, "/accounting/invoices", http.StatusOK, []domain.Invoice{})

	d := NewTestDriver(t, app)
	require.Equal(t, ViewDashboard, d.ActiveViewID())

	d.Command("accounting")
	assert.Equal(t, ViewAccounting, d.ActiveViewID())

	d.Command("dashboard")
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestE2E_CommandBarLogout(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)

	d := NewTestDriver(t, app)
	d.Command("logout")

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.False(t, app.Session.HasToken())
}
