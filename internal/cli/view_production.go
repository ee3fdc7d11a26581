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
	prodTabSchedules = iota
	prodTabLocations
	prodTabCrew
	prodTabCount
)

var prodTabLabels = []string{"Schedules", "Locations", "Crew"}

type prodLoadedMsg struct {
	tab       int
	schedules []domain.ProductionSchedule
	locations []domain.Location
	crew      []domain.CrewAssignment
	err       error
}

// productionView shows shoot schedules and locations. Selecting a
// schedule and switching to the crew tab lists its call sheet.
type productionView struct {
	state      *SharedState
	tab        int
	cursor     int
	loading    bool
	err        error
	schedules  []domain.ProductionSchedule
	locations  []domain.Location
	crew       []domain.CrewAssignment
	scheduleID int
}

func newProductionView(state *SharedState) *productionView {
	return &productionView{state: state, loading: true}
}

func (v *productionView) ID() ViewID    { return ViewProduction }
func (v *productionView) Title() string { return "Production" }

func (v *productionView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	}
	if v.tab == prodTabSchedules {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "crew")))
	}
	return append(bindings, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")))
}

func (v *productionView) Init() tea.Cmd {
	return v.loadData()
}

func (v *productionView) loadData() tea.Cmd {
	app := v.state.App
	tab := v.tab
	scheduleID := v.scheduleID
	return func() tea.Msg {
		ctx := context.Background()
		fail := func(err error) tea.Msg {
			return authGuard(err, func(err error) tea.Msg { return prodLoadedMsg{tab: tab, err: err} })
		}
		switch tab {
		case prodTabSchedules:
			schedules, err := query.Fetch(ctx, app.Queries, resourceKey("production/schedules", nil),
				func(ctx context.Context) ([]domain.ProductionSchedule, error) {
					return app.Production.ListSchedules(ctx, api.ScheduleFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return prodLoadedMsg{tab: tab, schedules: schedules}
		case prodTabLocations:
			locations, err := query.Fetch(ctx, app.Queries, resourceKey("production/locations", nil),
				func(ctx context.Context) ([]domain.Location, error) {
					return app.Production.ListLocations(ctx, api.LocationFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return prodLoadedMsg{tab: tab, locations: locations}
		default:
			if scheduleID == 0 {
				return prodLoadedMsg{tab: tab}
			}
			crew, err := query.Fetch(ctx, app.Queries, detailKey("production/schedules/crew", scheduleID),
				func(ctx context.Context) ([]domain.CrewAssignment, error) {
					return app.Production.ListCrew(ctx, scheduleID)
				})
			if err != nil {
				return fail(err)
			}
			return prodLoadedMsg{tab: tab, crew: crew}
		}
	}
}

func (v *productionView) rowCount() int {
	switch v.tab {
	case prodTabSchedules:
		return len(v.schedules)
	case prodTabLocations:
		return len(v.locations)
	default:
		return len(v.crew)
	}
}

func (v *productionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prodLoadedMsg:
		if msg.tab != v.tab {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.schedules, v.locations, v.crew = msg.schedules, msg.locations, msg.crew
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
			v.tab = nextTab(v.tab, prodTabCount, +1)
			v.cursor = 0
			v.loading = true
			v.err = nil
			return v, v.loadData()
		case "shift+tab":
			v.tab = nextTab(v.tab, prodTabCount, -1)
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
		case "enter":
			if v.tab == prodTabSchedules && v.cursor < len(v.schedules) {
				v.scheduleID = v.schedules[v.cursor].ID
				v.tab = prodTabCrew
				v.cursor = 0
				v.loading = true
				v.err = nil
				return v, v.loadData()
			}
		case "n":
			switch v.tab {
			case prodTabSchedules:
				return v, v.startScheduleWizard()
			case prodTabLocations:
				return v, v.startLocationWizard()
			default:
				return v, v.startCrewWizard()
			}
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *productionView) mutate(key query.Key, okText string, fn func(ctx context.Context) error) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.Queries.Mutate(context.Background(), fn, key)
		if err != nil {
			return authGuard(err, func(err error) tea.Msg {
				return mutationFailedMsg{text: "Save failed: " + err.Error()}
			})
		}
		return statusLineMsg{text: formatter.StyleGreen.Render(okText)}
	}
}

func (v *productionView) startScheduleWizard() tea.Cmd {
	var projectID, title, date, shootType, callTime, locationID string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Project ID").Value(&projectID).Validate(validateRequired("project ID")),
				huh.NewInput().Title("Title").Value(&title).Validate(validateRequired("title")),
				huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&date).Validate(validateRequired("date")),
				huh.NewSelect[string]().Title("Shoot type").Options(
					huh.NewOption("Studio", string(domain.ShootStudio)),
					huh.NewOption("On location", string(domain.ShootOnLocation)),
					huh.NewOption("Green screen", string(domain.ShootGreenScreen)),
					huh.NewOption("Interview", string(domain.ShootInterview)),
					huh.NewOption("B-roll", string(domain.ShootBRoll)),
					huh.NewOption("Aerial", string(domain.ShootAerial)),
					huh.NewOption("Live event", string(domain.ShootLiveEvent)),
					huh.NewOption("Other", string(domain.ShootOther)),
				).Value(&shootType),
				huh.NewInput().Title("Call time (optional)").Placeholder("HH:MM").Value(&callTime),
				huh.NewInput().Title("Location ID (optional)").Value(&locationID).Validate(validateOptionalID),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, "New shoot day", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateScheduleRequest{
			Title:      title,
			Date:       date,
			ShootType:  shootType,
			CallTime:   callTime,
			LocationID: parseOptionalID(locationID),
		}
		if id := parseOptionalID(projectID); id != nil {
			req.ProjectID = *id
		}
		return view.mutate(resourceKey("production/schedules", nil), "Shoot day created.",
			func(ctx context.Context) error {
				_, err := app.Production.CreateSchedule(ctx, req)
				return err
			})
	})
}

func (v *productionView) startLocationWizard() tea.Cmd {
	var name, locationType, address, city, contactName, contactPhone, rate string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name).Validate(validateRequired("name")),
				huh.NewSelect[string]().Title("Type").Options(
					huh.NewOption("Studio", "studio"),
					huh.NewOption("Outdoor", "outdoor"),
					huh.NewOption("Office", "office"),
					huh.NewOption("Residence", "residence"),
					huh.NewOption("Venue", "venue"),
					huh.NewOption("Other", "other"),
				).Value(&locationType),
				huh.NewInput().Title("Address (optional)").Value(&address),
				huh.NewInput().Title("City (optional)").Value(&city),
				huh.NewInput().Title("Contact name (optional)").Value(&contactName),
				huh.NewInput().Title("Contact phone (optional)").Value(&contactPhone),
				huh.NewInput().Title("Rental rate (optional)").Value(&rate).Validate(validateOptionalAmount),
			),
		)
	}

	state := v.state
	view := v
	return startWizard(state, "New location", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateLocationRequest{
			Name:         name,
			LocationType: locationType,
			AddressLine1: address,
			City:         city,
			ContactName:  contactName,
			ContactPhone: contactPhone,
		}
		if rate != "" {
			r := parseAmount(rate)
			req.RentalRate = &r
		}
		return view.mutate(resourceKey("production/locations", nil), "Location created.",
			func(ctx context.Context) error {
				_, err := app.Production.CreateLocation(ctx, req)
				return err
			})
	})
}

func (v *productionView) startCrewWizard() tea.Cmd {
	if v.scheduleID == 0 {
		return statusLine(formatter.Dim("Select a schedule first (enter on the schedules tab)."))
	}
	var role, employeeID, externalName, callTime, dayRate string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Role").Placeholder("e.g. gaffer").Value(&role).Validate(validateRequired("role")),
				huh.NewInput().Title("Employee ID (optional)").Value(&employeeID).Validate(validateOptionalID),
				huh.NewInput().Title("External name (optional)").Value(&externalName),
				huh.NewInput().Title("Call time (optional)").Placeholder("HH:MM").Value(&callTime),
				huh.NewInput().Title("Day rate (optional)").Value(&dayRate).Validate(validateOptionalAmount),
			),
		)
	}

	state := v.state
	view := v
	scheduleID := v.scheduleID
	return startWizard(state, fmt.Sprintf("Add crew · schedule #%d", scheduleID), makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateCrewAssignmentRequest{
			ScheduleID:   scheduleID,
			Role:         role,
			EmployeeID:   parseOptionalID(employeeID),
			ExternalName: externalName,
			CallTime:     callTime,
		}
		if dayRate != "" {
			r := parseAmount(dayRate)
			req.DayRate = &r
		}
		return view.mutate(detailKey("production/schedules/crew", scheduleID), "Crew member added.",
			func(ctx context.Context) error {
				_, err := app.Production.CreateCrewAssignment(ctx, req)
				return err
			})
	})
}

func (v *productionView) View() string {
	out := "\n" + renderTabs(prodTabLabels, v.tab) + "\n\n"
	if v.loading {
		return out + loadingLine()
	}
	if v.err != nil {
		return out + errorLine(v.err)
	}

	switch v.tab {
	case prodTabSchedules:
		return out + v.renderSchedules()
	case prodTabLocations:
		return out + v.renderLocations()
	default:
		return out + v.renderCrew()
	}
}

func (v *productionView) cursorCell(i int) string {
	if i == v.cursor {
		return formatter.StyleGreen.Render("▸ ")
	}
	return "  "
}

func (v *productionView) renderSchedules() string {
	if len(v.schedules) == 0 {
		return "  " + formatter.Dim("No shoot days scheduled.") + "\n"
	}
	rows := make([][]string, 0, len(v.schedules))
	for i, s := range v.schedules {
		location := formatter.Dim("—")
		if s.LocationID != nil {
			location = fmt.Sprintf("#%d", *s.LocationID)
		}
		rows = append(rows, []string{
			v.cursorCell(i) + s.Title,
			fmt.Sprintf("#%d", s.ProjectID),
			formatter.Date(s.Date),
			string(s.ShootType),
			s.CallTime,
			location,
			formatter.ScheduleStatusPill(s.Status),
		})
	}
	return formatter.RenderTable([]string{"  Title", "Project", "Date", "Type", "Call", "Loc", "Status"}, rows)
}

func (v *productionView) renderLocations() string {
	if len(v.locations) == 0 {
		return "  " + formatter.Dim("No locations.") + "\n"
	}
	rows := make([][]string, 0, len(v.locations))
	for i, l := range v.locations {
		rate := formatter.Dim("—")
		if l.RentalRate != nil {
			rate = formatter.Money(*l.RentalRate, "USD") + formatter.Dim("/day")
		}
		permit := ""
		if l.PermitRequired {
			permit = formatter.StyleYellow.Render("permit")
		}
		rows = append(rows, []string{
			v.cursorCell(i) + l.Name,
			l.LocationType,
			l.City,
			l.ContactName,
			rate,
			permit,
		})
	}
	return formatter.RenderTable([]string{"  Name", "Type", "City", "Contact", "Rate", ""}, rows)
}

func (v *productionView) renderCrew() string {
	if v.scheduleID == 0 {
		return "  " + formatter.Dim("Select a schedule first (enter on the schedules tab).") + "\n"
	}
	header := "  " + formatter.Dim(fmt.Sprintf("schedule #%d", v.scheduleID)) + "\n\n"
	if len(v.crew) == 0 {
		return header + "  " + formatter.Dim("No crew assigned.") + "\n"
	}
	rows := make([][]string, 0, len(v.crew))
	for i, c := range v.crew {
		who := c.ExternalName
		if c.EmployeeID != nil {
			who = fmt.Sprintf("employee #%d", *c.EmployeeID)
		}
		rate := formatter.Dim("—")
		if c.DayRate != nil {
			rate = formatter.Money(*c.DayRate, "USD")
		}
		confirmed := formatter.Dim("pending")
		if c.IsConfirmed {
			confirmed = formatter.StyleGreen.Render("confirmed")
		}
		rows = append(rows, []string{
			v.cursorCell(i) + c.Role,
			who,
			c.CallTime,
			rate,
			confirmed,
		})
	}
	return header + formatter.RenderTable([]string{"  Role", "Who", "Call", "Rate", ""}, rows)
}
