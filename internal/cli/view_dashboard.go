package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

// dashboardData holds the loaded data for the dashboard view.
type dashboardData struct {
	stats    *domain.DashboardStats
	activity *domain.RecentActivity
	myTasks  []domain.MyTask
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

// dashboardView is the home screen of the TUI: aggregate counters,
// recent activity, and the signed-in user's open tasks.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
	err     error

	watches []<-chan struct{}
}

// dashboardKeys are the cache keys the dashboard reads and watches.
func dashboardKeys() []query.Key {
	return []query.Key{
		resourceKey("dashboard/stats", nil),
		resourceKey("dashboard/recent-activity", nil),
		resourceKey("dashboard/my-tasks", nil),
	}
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "crm")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "accounting")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "equipment")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	cmds := []tea.Cmd{v.loadData()}
	if v.watches == nil {
		for _, key := range dashboardKeys() {
			ch := v.state.App.Queries.Subscribe(key)
			v.watches = append(v.watches, ch)
			cmds = append(cmds, watchQuery(ch, key))
		}
	}
	return tea.Batch(cmds...)
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := query.Fetch(ctx, app.Queries, resourceKey("dashboard/stats", nil),
			app.Dashboard.Stats)
		if err != nil {
			return authGuard(err, func(err error) tea.Msg { return dashboardLoadedMsg{err: err} })
		}
		activity, err := query.Fetch(ctx, app.Queries, resourceKey("dashboard/recent-activity", nil),
			app.Dashboard.RecentActivity)
		if err != nil {
			return authGuard(err, func(err error) tea.Msg { return dashboardLoadedMsg{err: err} })
		}
		myTasks, err := query.Fetch(ctx, app.Queries, resourceKey("dashboard/my-tasks", nil),
			app.Dashboard.MyTasks)
		if err != nil {
			return authGuard(err, func(err error) tea.Msg { return dashboardLoadedMsg{err: err} })
		}

		return dashboardLoadedMsg{data: dashboardData{
			stats:    stats,
			activity: activity,
			myTasks:  myTasks,
		}}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.data = &msg.data
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
		return v, v.loadData()

	case queryChangedMsg:
		for i, key := range dashboardKeys() {
			if key == msg.key && i < len(v.watches) {
				return v, tea.Batch(v.loadData(), watchQuery(v.watches[i], key))
			}
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return v, pushView(newProjectsView(v.state))
		case "c":
			return v, pushView(newCRMView(v.state))
		case "i":
			return v, pushView(newAccountingView(v.state))
		case "e":
			return v, pushView(newEquipmentView(v.state))
		case "h":
			return v, pushView(newHRView(v.state))
		case "s":
			return v, pushView(newProductionView(v.state))
		case "u":
			return v, pushView(newUsersView(v.state))
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return loadingLine()
	}
	if v.err != nil {
		return errorLine(v.err)
	}
	if v.data == nil {
		return ""
	}

	left := v.renderStats()
	right := v.renderActivity() + "\n" + v.renderMyTasks()

	if v.state.Width < 90 {
		return "\n" + left + "\n" + right
	}

	leftCol := lipgloss.NewStyle().Width(44).Render(left)
	divider := formatter.StyleDim.Render("│")
	rightCol := lipgloss.NewStyle().Width(v.state.Width - 48).Render(right)
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

func (v *dashboardView) renderStats() string {
	s := v.data.stats
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Studio") + "\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", formatter.Dim(label), value))
	}

	row("Active projects", fmt.Sprintf("%d", s.Projects.Active))
	row("Completed projects", fmt.Sprintf("%d", s.Projects.Completed))
	row("Tasks in progress", fmt.Sprintf("%d / %d", s.Tasks.InProgress, s.Tasks.Total))
	b.WriteString("\n")
	row("Active clients", fmt.Sprintf("%d", s.CRM.ActiveClients))
	row("New leads", fmt.Sprintf("%d", s.CRM.NewLeads))
	row("Open deals", fmt.Sprintf("%d", s.CRM.OpenDeals))
	row("Pipeline", formatter.Money(s.CRM.PipelineValue, ""))
	b.WriteString("\n")
	row("Pending invoices", fmt.Sprintf("%d", s.Finance.PendingInvoices))
	row("Pending amount", formatter.Money(s.Finance.PendingAmount, ""))
	if s.Finance.OverdueInvoices > 0 {
		row("Overdue", formatter.StyleRed.Render(fmt.Sprintf("%d", s.Finance.OverdueInvoices)))
	}
	b.WriteString("\n")
	row("Gear available", fmt.Sprintf("%d", s.Equipment.Available))
	row("Gear in use", fmt.Sprintf("%d", s.Equipment.InUse))
	row("Employees", fmt.Sprintf("%d", s.HR.TotalEmployees))
	if s.HR.PendingLeaveRequests > 0 {
		row("Leave pending", formatter.StyleYellow.Render(fmt.Sprintf("%d", s.HR.PendingLeaveRequests)))
	}
	row("Upcoming shoots", fmt.Sprintf("%d", s.Production.UpcomingShoots))

	return b.String()
}

func (v *dashboardView) renderActivity() string {
	a := v.data.activity
	var b strings.Builder
	b.WriteString(formatter.Header("Recent activity") + "\n")

	if a == nil || (len(a.RecentProjects) == 0 && len(a.RecentTasks) == 0 && len(a.RecentLeads) == 0) {
		b.WriteString(formatter.Dim("Nothing yet.") + "\n")
		return b.String()
	}
	for _, p := range a.RecentProjects {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			formatter.StyleGreen.Render(p.Code), p.Name, formatter.ProjectStatusPill(p.Status)))
	}
	for _, t := range a.RecentTasks {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			formatter.StyleBlue.Render(t.TaskKey), t.Title, formatter.TaskStatusPill(t.Status)))
	}
	for _, l := range a.RecentLeads {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			formatter.Dim("lead"), l.Title, formatter.LeadStatusPill(l.Status)))
	}
	return b.String()
}

func (v *dashboardView) renderMyTasks() string {
	var b strings.Builder
	b.WriteString(formatter.Header("My tasks") + "\n")
	if len(v.data.myTasks) == 0 {
		b.WriteString(formatter.Dim("All clear.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(v.data.myTasks))
	for _, t := range v.data.myTasks {
		rows = append(rows, []string{
			t.TaskKey,
			t.Title,
			formatter.TaskStatusPill(t.Status),
			formatter.PriorityPill(t.Priority),
			formatter.Date(t.DueDate),
		})
	}
	b.WriteString(formatter.RenderTable([]string{"Key", "Title", "Status", "Priority", "Due"}, rows))
	return b.String()
}
