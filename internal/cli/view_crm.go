package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

const (
	crmTabClients = iota
	crmTabLeads
	crmTabDeals
	crmTabContacts
	crmTabCount
)

var crmTabLabels = []string{"Clients", "Leads", "Deals", "Contacts"}

type crmLoadedMsg struct {
	tab      int
	clients  []domain.Client
	leads    []domain.Lead
	deals    []domain.Deal
	contacts []domain.Contact
	err      error
}

// crmView shows clients, leads, deals and contacts under one roof.
type crmView struct {
	state    *SharedState
	tab      int
	cursor   int
	loading  bool
	err      error
	clients  []domain.Client
	leads    []domain.Lead
	deals    []domain.Deal
	contacts []domain.Contact
}

func newCRMView(state *SharedState) *crmView {
	return &crmView{state: state, loading: true}
}

func (v *crmView) ID() ViewID    { return ViewCRM }
func (v *crmView) Title() string { return "CRM" }

func (v *crmView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *crmView) Init() tea.Cmd {
	return v.loadData()
}

func (v *crmView) loadData() tea.Cmd {
	app := v.state.App
	tab := v.tab
	return func() tea.Msg {
		ctx := context.Background()
		fail := func(err error) tea.Msg {
			return authGuard(err, func(err error) tea.Msg { return crmLoadedMsg{tab: tab, err: err} })
		}
		switch tab {
		case crmTabClients:
			clients, err := query.Fetch(ctx, app.Queries, resourceKey("crm/clients", nil),
				func(ctx context.Context) ([]domain.Client, error) {
					return app.CRM.ListClients(ctx, api.ClientFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return crmLoadedMsg{tab: tab, clients: clients}
		case crmTabLeads:
			leads, err := query.Fetch(ctx, app.Queries, resourceKey("crm/leads", nil),
				func(ctx context.Context) ([]domain.Lead, error) {
					return app.CRM.ListLeads(ctx, api.LeadFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return crmLoadedMsg{tab: tab, leads: leads}
		case crmTabDeals:
			deals, err := query.Fetch(ctx, app.Queries, resourceKey("crm/deals", nil),
				func(ctx context.Context) ([]domain.Deal, error) {
					return app.CRM.ListDeals(ctx, api.DealFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return crmLoadedMsg{tab: tab, deals: deals}
		default:
			contacts, err := query.Fetch(ctx, app.Queries, resourceKey("crm/contacts", nil),
				func(ctx context.Context) ([]domain.Contact, error) {
					return app.CRM.ListContacts(ctx, api.ContactFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return crmLoadedMsg{tab: tab, contacts: contacts}
		}
	}
}

func (v *crmView) rowCount() int {
	switch v.tab {
	case crmTabClients:
		return len(v.clients)
	case crmTabLeads:
		return len(v.leads)
	case crmTabDeals:
		return len(v.deals)
	default:
		return len(v.contacts)
	}
}

func (v *crmView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case crmLoadedMsg:
		if msg.tab != v.tab {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.clients, v.leads, v.deals, v.contacts = msg.clients, msg.leads, msg.deals, msg.contacts
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
			v.tab = nextTab(v.tab, crmTabCount, +1)
			v.cursor = 0
			v.loading = true
			v.err = nil
			return v, v.loadData()
		case "shift+tab":
			v.tab = nextTab(v.tab, crmTabCount, -1)
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
		case "n":
			return v, v.startCreateWizard()
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *crmView) startCreateWizard() tea.Cmd {
	switch v.tab {
	case crmTabClients:
		return v.startClientWizard()
	case crmTabLeads:
		return v.startLeadWizard()
	case crmTabDeals:
		return v.startDealWizard()
	default:
		return v.startContactWizard()
	}
}

// mutate runs a creation through the store so the active tab refetches.
func (v *crmView) mutate(resource, okText string, fn func(ctx context.Context) error) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.Queries.Mutate(context.Background(), fn, resourceKey(resource, nil))
		if err != nil {
			return authGuard(err, func(err error) tea.Msg {
				return mutationFailedMsg{text: "Create failed: " + err.Error()}
			})
		}
		return statusLineMsg{text: formatter.StyleGreen.Render(okText)}
	}
}

func (v *crmView) startClientWizard() tea.Cmd {
	var name, email, industry, clientType string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name).Validate(validateRequired("name")),
				huh.NewSelect[string]().Title("Type").Options(
					huh.NewOption("Agency", string(domain.ClientAgency)),
					huh.NewOption("Brand", string(domain.ClientBrand)),
					huh.NewOption("Production company", string(domain.ClientProductionCompany)),
					huh.NewOption("Broadcaster", string(domain.ClientBroadcaster)),
					huh.NewOption("Individual", string(domain.ClientIndividual)),
					huh.NewOption("Non-profit", string(domain.ClientNonProfit)),
					huh.NewOption("Government", string(domain.ClientGovernment)),
					huh.NewOption("Other", string(domain.ClientOther)),
				).Value(&clientType),
				huh.NewInput().Title("Email (optional)").Value(&email),
				huh.NewInput().Title("Industry (optional)").Value(&industry),
			),
		)
	}

	state := v.state
	return startWizard(state, "New client", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateClientRequest{Name: name, ClientType: clientType, Email: email, Industry: industry}
		return v.mutate("crm/clients", "Client created.", func(ctx context.Context) error {
			_, err := app.CRM.CreateClient(ctx, req)
			return err
		})
	})
}

func (v *crmView) startLeadWizard() tea.Cmd {
	var title, contactName, contactEmail, companyName, source, value string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Title").Value(&title).Validate(validateRequired("title")),
				huh.NewInput().Title("Company (optional)").Value(&companyName),
				huh.NewInput().Title("Contact name (optional)").Value(&contactName),
				huh.NewInput().Title("Contact email (optional)").Value(&contactEmail),
				huh.NewSelect[string]().Title("Source").Options(
					huh.NewOption("Website", string(domain.SourceWebsite)),
					huh.NewOption("Referral", string(domain.SourceReferral)),
					huh.NewOption("Social media", string(domain.SourceSocialMedia)),
					huh.NewOption("Cold call", string(domain.SourceColdCall)),
					huh.NewOption("Trade show", string(domain.SourceTradeShow)),
					huh.NewOption("Repeat client", string(domain.SourceRepeatClient)),
					huh.NewOption("Other", string(domain.SourceOther)),
				).Value(&source),
				huh.NewInput().Title("Estimated value (optional)").Value(&value).Validate(validateOptionalAmount),
			),
		)
	}

	state := v.state
	return startWizard(state, "New lead", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateLeadRequest{
			Title:        title,
			Source:       source,
			ContactName:  contactName,
			ContactEmail: contactEmail,
			CompanyName:  companyName,
		}
		if value != "" {
			amt := parseAmount(value)
			req.EstimatedValue = &amt
		}
		return v.mutate("crm/leads", "Lead created.", func(ctx context.Context) error {
			_, err := app.CRM.CreateLead(ctx, req)
			return err
		})
	})
}

func (v *crmView) startDealWizard() tea.Cmd {
	var name, clientID, amount, closeDate string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name).Validate(validateRequired("name")),
				huh.NewInput().Title("Client ID").Value(&clientID).Validate(validateRequired("client ID")),
				huh.NewInput().Title("Amount (optional)").Value(&amount).Validate(validateOptionalAmount),
				huh.NewInput().Title("Expected close (optional)").Placeholder("YYYY-MM-DD").Value(&closeDate).Validate(validateOptionalDate),
			),
		)
	}

	state := v.state
	return startWizard(state, "New deal", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateDealRequest{
			Name:              name,
			Amount:            parseAmount(amount),
			ExpectedCloseDate: closeDate,
		}
		if id := parseOptionalID(clientID); id != nil {
			req.ClientID = *id
		}
		return v.mutate("crm/deals", "Deal created.", func(ctx context.Context) error {
			_, err := app.CRM.CreateDeal(ctx, req)
			return err
		})
	})
}

func (v *crmView) startContactWizard() tea.Cmd {
	var firstName, lastName, email, clientID, jobTitle string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("First name").Value(&firstName).Validate(validateRequired("first name")),
				huh.NewInput().Title("Last name").Value(&lastName).Validate(validateRequired("last name")),
				huh.NewInput().Title("Email (optional)").Value(&email),
				huh.NewInput().Title("Job title (optional)").Value(&jobTitle),
				huh.NewInput().Title("Client ID (optional)").Value(&clientID).Validate(validateOptionalID),
			),
		)
	}

	state := v.state
	return startWizard(state, "New contact", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateContactRequest{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			JobTitle:  jobTitle,
			ClientID:  parseOptionalID(clientID),
		}
		return v.mutate("crm/contacts", "Contact created.", func(ctx context.Context) error {
			_, err := app.CRM.CreateContact(ctx, req)
			return err
		})
	})
}

func (v *crmView) View() string {
	out := "\n" + renderTabs(crmTabLabels, v.tab) + "\n\n"
	if v.loading {
		return out + loadingLine()
	}
	if v.err != nil {
		return out + errorLine(v.err)
	}

	switch v.tab {
	case crmTabClients:
		return out + v.renderClients()
	case crmTabLeads:
		return out + v.renderLeads()
	case crmTabDeals:
		return out + v.renderDeals()
	default:
		return out + v.renderContacts()
	}
}

func (v *crmView) cursorCell(i int) string {
	if i == v.cursor {
		return formatter.StyleGreen.Render("▸ ")
	}
	return "  "
}

func (v *crmView) renderClients() string {
	if len(v.clients) == 0 {
		return "  " + formatter.Dim("No clients.") + "\n"
	}
	rows := make([][]string, 0, len(v.clients))
	for i, c := range v.clients {
		active := formatter.StyleGreen.Render("active")
		if !c.IsActive {
			active = formatter.Dim("inactive")
		}
		rows = append(rows, []string{
			v.cursorCell(i) + formatter.StyleGreen.Render(c.Code),
			c.Name,
			string(c.ClientType),
			c.Industry,
			c.Country,
			active,
		})
	}
	return formatter.RenderTable([]string{"  Code", "Name", "Type", "Industry", "Country", "Active"}, rows)
}

func (v *crmView) renderLeads() string {
	if len(v.leads) == 0 {
		return "  " + formatter.Dim("No leads.") + "\n"
	}
	rows := make([][]string, 0, len(v.leads))
	for i, l := range v.leads {
		value := formatter.Dim("—")
		if l.EstimatedValue != nil {
			value = formatter.Money(*l.EstimatedValue, "USD")
		}
		rows = append(rows, []string{
			v.cursorCell(i) + l.Title,
			l.CompanyName,
			formatter.LeadStatusPill(l.Status),
			value,
			formatter.Pct(l.Probability),
			formatter.Date(l.NextFollowUp),
		})
	}
	return formatter.RenderTable([]string{"  Title", "Company", "Status", "Value", "Prob.", "Follow-up"}, rows)
}

func (v *crmView) renderDeals() string {
	if len(v.deals) == 0 {
		return "  " + formatter.Dim("No deals.") + "\n"
	}
	rows := make([][]string, 0, len(v.deals))
	for i, d := range v.deals {
		rows = append(rows, []string{
			v.cursorCell(i) + d.Name,
			formatter.DealStagePill(d.Stage),
			formatter.Money(d.Amount, "USD"),
			formatter.Pct(d.Probability),
			formatter.Money(d.ExpectedRevenue, "USD"),
			formatter.Date(d.ExpectedCloseDate),
		})
	}
	return formatter.RenderTable([]string{"  Name", "Stage", "Amount", "Prob.", "Expected", "Close"}, rows)
}

func (v *crmView) renderContacts() string {
	if len(v.contacts) == 0 {
		return "  " + formatter.Dim("No contacts.") + "\n"
	}
	rows := make([][]string, 0, len(v.contacts))
	for i, c := range v.contacts {
		primary := ""
		if c.IsPrimary {
			primary = formatter.StyleYellow.Render("★")
		}
		clientID := formatter.Dim("—")
		if c.ClientID != nil {
			clientID = fmt.Sprintf("#%d", *c.ClientID)
		}
		rows = append(rows, []string{
			v.cursorCell(i) + c.FirstName + " " + c.LastName,
			c.JobTitle,
			c.Email,
			clientID,
			primary,
		})
	}
	return formatter.RenderTable([]string{"  Name", "Title", "Email", "Client", ""}, rows)
}
