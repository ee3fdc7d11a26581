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
	equipTabInventory = iota
	equipTabBookings
	equipTabCount
)

var equipTabLabels = []string{"Inventory", "Bookings"}

type equipLoadedMsg struct {
	tab      int
	gear     []domain.Equipment
	bookings []domain.EquipmentBooking
	err      error
}

var equipCategoryCycle = []string{
	"",
	string(domain.EquipCamera),
	string(domain.EquipLens),
	string(domain.EquipLighting),
	string(domain.EquipAudio),
	string(domain.EquipGrip),
	string(domain.EquipDrone),
	string(domain.EquipMonitor),
	string(domain.EquipComputer),
}

// equipmentView shows the gear inventory and its booking calendar.
type equipmentView struct {
	state          *SharedState
	tab            int
	cursor         int
	loading        bool
	err            error
	gear           []domain.Equipment
	bookings       []domain.EquipmentBooking
	categoryFilter string
}

func newEquipmentView(state *SharedState) *equipmentView {
	return &equipmentView{state: state, loading: true}
}

func (v *equipmentView) ID() ViewID    { return ViewEquipment }
func (v *equipmentView) Title() string { return "Equipment" }

func (v *equipmentView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	}
	if v.tab == equipTabInventory {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
			key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book")),
		)
	}
	return append(bindings, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")))
}

func (v *equipmentView) inventoryFilter() api.EquipmentFilter {
	return api.EquipmentFilter{Category: v.categoryFilter}
}

func (v *equipmentView) Init() tea.Cmd {
	return v.loadData()
}

func (v *equipmentView) loadData() tea.Cmd {
	app := v.state.App
	tab := v.tab
	f := v.inventoryFilter()
	return func() tea.Msg {
		ctx := context.Background()
		fail := func(err error) tea.Msg {
			return authGuard(err, func(err error) tea.Msg { return equipLoadedMsg{tab: tab, err: err} })
		}
		if tab == equipTabInventory {
			gear, err := query.Fetch(ctx, app.Queries, resourceKey("equipment", f.Values()),
				func(ctx context.Context) ([]domain.Equipment, error) {
					return app.Equipment.List(ctx, f)
				})
			if err != nil {
				return fail(err)
			}
			return equipLoadedMsg{tab: tab, gear: gear}
		}
		bookings, err := query.Fetch(ctx, app.Queries, resourceKey("equipment/bookings", nil),
			func(ctx context.Context) ([]domain.EquipmentBooking, error) {
				return app.Equipment.ListBookings(ctx, api.BookingFilter{})
			})
		if err != nil {
			return fail(err)
		}
		return equipLoadedMsg{tab: tab, bookings: bookings}
	}
}

func (v *equipmentView) rowCount() int {
	if v.tab == equipTabInventory {
		return len(v.gear)
	}
	return len(v.bookings)
}

func (v *equipmentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case equipLoadedMsg:
		if msg.tab != v.tab {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.gear, v.bookings = msg.gear, msg.bookings
		if v.cursor >= v.rowCount() {
			v.cursor = max(0, v.rowCount()-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			v.tab = nextTab(v.tab, equipTabCount, +1)
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
		case "f":
			if v.tab == equipTabInventory {
				for i, c := range equipCategoryCycle {
					if c == v.categoryFilter {
						v.categoryFilter = equipCategoryCycle[(i+1)%len(equipCategoryCycle)]
						break
					}
				}
				v.loading = true
				return v, v.loadData()
			}
		case "b":
			if v.tab == equipTabInventory {
				return v, v.startBookingWizard(true)
			}
		case "n":
			if v.tab == equipTabInventory {
				return v, v.startEquipmentWizard()
			}
			return v, v.startBookingWizard(false)
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *equipmentView) mutate(resource, okText string, fn func(ctx context.Context) error) tea.Cmd {
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

func (v *equipmentView) startEquipmentWizard() tea.Cmd {
	var name, category, brand, model, dailyRate string
	rentable := false

	categoryOptions := make([]huh.Option[string], 0, len(equipCategoryCycle))
	for _, c := range equipCategoryCycle[1:] {
		categoryOptions = append(categoryOptions, huh.NewOption(c, c))
	}
	categoryOptions = append(categoryOptions, huh.NewOption("other", string(domain.EquipOther)))

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name).Validate(validateRequired("name")),
				huh.NewSelect[string]().Title("Category").Options(categoryOptions...).Value(&category),
				huh.NewInput().Title("Brand (optional)").Value(&brand),
				huh.NewInput().Title("Model (optional)").Value(&model),
				huh.NewInput().Title("Daily rate (optional)").Value(&dailyRate).Validate(validateOptionalAmount),
				huh.NewConfirm().Title("Rentable?").Value(&rentable),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, "New equipment", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateEquipmentRequest{
			Name:       name,
			Category:   category,
			Brand:      brand,
			Model:      model,
			IsRentable: rentable,
		}
		if dailyRate != "" {
			rate := parseAmount(dailyRate)
			req.DailyRate = &rate
		}
		return view.mutate("equipment", "Equipment created.", func(ctx context.Context) error {
			_, err := app.Equipment.Create(ctx, req)
			return err
		})
	})
}

// startBookingWizard books gear. When preselect is set the selected
// inventory row fills in the equipment ID.
func (v *equipmentView) startBookingWizard(preselect bool) tea.Cmd {
	var equipmentID, startDate, endDate, projectID, purpose string
	title := "New booking"
	if preselect && v.cursor < len(v.gear) {
		g := v.gear[v.cursor]
		equipmentID = fmt.Sprintf("%d", g.ID)
		title = "Book · " + g.Name
	}

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Equipment ID").Value(&equipmentID).Validate(validateRequired("equipment ID")),
				huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").Value(&startDate).Validate(validateRequired("start date")),
				huh.NewInput().Title("End date").Placeholder("YYYY-MM-DD").Value(&endDate).Validate(validateRequired("end date")),
				huh.NewInput().Title("Project ID (optional)").Value(&projectID).Validate(validateOptionalID),
				huh.NewInput().Title("Purpose (optional)").Value(&purpose),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, title, makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateBookingRequest{
			StartDate: startDate,
			EndDate:   endDate,
			ProjectID: parseOptionalID(projectID),
			Purpose:   purpose,
		}
		if id := parseOptionalID(equipmentID); id != nil {
			req.EquipmentID = *id
		}
		return view.mutate("equipment/bookings", "Booking created.", func(ctx context.Context) error {
			_, err := app.Equipment.CreateBooking(ctx, req)
			return err
		})
	})
}

func (v *equipmentView) View() string {
	out := "\n" + renderTabs(equipTabLabels, v.tab) + "\n"
	if v.tab == equipTabInventory && v.categoryFilter != "" {
		out += "  " + formatter.Dim("filter: category=") + formatter.StyleYellow.Render(v.categoryFilter) + "\n"
	}
	out += "\n"
	if v.loading {
		return out + loadingLine()
	}
	if v.err != nil {
		return out + errorLine(v.err)
	}
	if v.tab == equipTabInventory {
		return out + v.renderInventory()
	}
	return out + v.renderBookings()
}

func (v *equipmentView) cursorCell(i int) string {
	if i == v.cursor {
		return formatter.StyleGreen.Render("▸ ")
	}
	return "  "
}

func (v *equipmentView) renderInventory() string {
	if len(v.gear) == 0 {
		return "  " + formatter.Dim("No equipment.") + "\n"
	}
	rows := make([][]string, 0, len(v.gear))
	for i, g := range v.gear {
		rate := formatter.Dim("—")
		if g.DailyRate != nil {
			rate = formatter.Money(*g.DailyRate, "USD") + formatter.Dim("/day")
		}
		rows = append(rows, []string{
			v.cursorCell(i) + formatter.StyleGreen.Render(g.Code),
			g.Name,
			string(g.Category),
			g.Brand,
			formatter.EquipmentStatusPill(g.Status),
			rate,
		})
	}
	return formatter.RenderTable([]string{"  Code", "Name", "Category", "Brand", "Status", "Rate"}, rows)
}

func (v *equipmentView) renderBookings() string {
	if len(v.bookings) == 0 {
		return "  " + formatter.Dim("No bookings.") + "\n"
	}
	rows := make([][]string, 0, len(v.bookings))
	for i, b := range v.bookings {
		project := formatter.Dim("—")
		if b.ProjectID != nil {
			project = fmt.Sprintf("#%d", *b.ProjectID)
		}
		rows = append(rows, []string{
			v.cursorCell(i) + fmt.Sprintf("#%d", b.EquipmentID),
			formatter.Date(b.StartDate),
			formatter.Date(b.EndDate),
			project,
			b.Purpose,
			formatter.BookingStatusPill(b.Status),
		})
	}
	return formatter.RenderTable([]string{"  Gear", "From", "To", "Project", "Purpose", "Status"}, rows)
}
