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
	hrTabEmployees = iota
	hrTabDepartments
	hrTabLeave
	hrTabCount
)

var hrTabLabels = []string{"Employees", "Departments", "Leave"}

type hrLoadedMsg struct {
	tab         int
	employees   []domain.Employee
	departments []domain.Department
	leave       []domain.LeaveRequest
	err         error
}

type leaveDecidedMsg struct {
	status domain.LeaveStatus
	err    error
}

// hrView shows employees, departments and leave requests. Pending
// leave can be approved or rejected from the leave tab.
type hrView struct {
	state       *SharedState
	tab         int
	cursor      int
	loading     bool
	err         error
	employees   []domain.Employee
	departments []domain.Department
	leave       []domain.LeaveRequest
}

func newHRView(state *SharedState) *hrView {
	return &hrView{state: state, loading: true}
}

func (v *hrView) ID() ViewID    { return ViewHR }
func (v *hrView) Title() string { return "HR" }

func (v *hrView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	}
	if v.tab == hrTabLeave {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reject")),
		)
	}
	return append(bindings, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")))
}

func (v *hrView) Init() tea.Cmd {
	return v.loadData()
}

func (v *hrView) loadData() tea.Cmd {
	app := v.state.App
	tab := v.tab
	return func() tea.Msg {
		ctx := context.Background()
		fail := func(err error) tea.Msg {
			return authGuard(err, func(err error) tea.Msg { return hrLoadedMsg{tab: tab, err: err} })
		}
		switch tab {
		case hrTabEmployees:
			employees, err := query.Fetch(ctx, app.Queries, resourceKey("hr/employees", nil),
				func(ctx context.Context) ([]domain.Employee, error) {
					return app.HR.ListEmployees(ctx, api.EmployeeFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return hrLoadedMsg{tab: tab, employees: employees}
		case hrTabDepartments:
			departments, err := query.Fetch(ctx, app.Queries, resourceKey("hr/departments", nil),
				func(ctx context.Context) ([]domain.Department, error) {
					return app.HR.ListDepartments(ctx)
				})
			if err != nil {
				return fail(err)
			}
			return hrLoadedMsg{tab: tab, departments: departments}
		default:
			leave, err := query.Fetch(ctx, app.Queries, resourceKey("hr/leave-requests", nil),
				func(ctx context.Context) ([]domain.LeaveRequest, error) {
					return app.HR.ListLeaveRequests(ctx, api.LeaveRequestFilter{})
				})
			if err != nil {
				return fail(err)
			}
			return hrLoadedMsg{tab: tab, leave: leave}
		}
	}
}

func (v *hrView) rowCount() int {
	switch v.tab {
	case hrTabEmployees:
		return len(v.employees)
	case hrTabDepartments:
		return len(v.departments)
	default:
		return len(v.leave)
	}
}

func (v *hrView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hrLoadedMsg:
		if msg.tab != v.tab {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.employees, v.departments, v.leave = msg.employees, msg.departments, msg.leave
		if v.cursor >= v.rowCount() {
			v.cursor = max(0, v.rowCount()-1)
		}
		return v, nil

	case leaveDecidedMsg:
		if msg.err != nil {
			return v, statusLine(formatter.StyleRed.Render("Update failed: " + msg.err.Error()))
		}
		return v, tea.Batch(
			statusLine(formatter.Dim("Leave request "+string(msg.status)+".")),
			refreshViews(),
		)

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.tab = nextTab(v.tab, hrTabCount, +1)
			v.cursor = 0
			v.loading = true
			v.err = nil
			return v, v.loadData()
		case "shift+tab":
			v.tab = nextTab(v.tab, hrTabCount, -1)
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
		case "a":
			if v.tab == hrTabLeave {
				return v, v.decideLeave(domain.LeaveApproved, nil)
			}
		case "x":
			if v.tab == hrTabLeave {
				return v, v.startRejectWizard()
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

// decideLeave sets the status of the selected pending request.
func (v *hrView) decideLeave(status domain.LeaveStatus, reason *string) tea.Cmd {
	if v.cursor >= len(v.leave) {
		return nil
	}
	req := v.leave[v.cursor]
	if req.Status != domain.LeavePending {
		return statusLine(formatter.Dim("Only pending requests can be decided."))
	}
	app := v.state.App
	s := string(status)
	return func() tea.Msg {
		err := app.Queries.Mutate(context.Background(), func(ctx context.Context) error {
			_, err := app.HR.UpdateLeaveRequest(ctx, req.ID, api.UpdateLeaveRequestRequest{
				Status:          &s,
				RejectionReason: reason,
			})
			return err
		}, resourceKey("hr/leave-requests", nil))
		if err != nil {
			return authGuard(err, func(err error) tea.Msg { return leaveDecidedMsg{err: err} })
		}
		return leaveDecidedMsg{status: status}
	}
}

func (v *hrView) startRejectWizard() tea.Cmd {
	if v.cursor >= len(v.leave) {
		return nil
	}
	if v.leave[v.cursor].Status != domain.LeavePending {
		return statusLine(formatter.Dim("Only pending requests can be decided."))
	}
	var reason string
	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Rejection reason").Value(&reason).Validate(validateRequired("reason")),
			),
		)
	}
	view := v
	return startWizard(v.state, "Reject leave request", makeForm, func() tea.Cmd {
		return view.decideLeave(domain.LeaveRejected, &reason)
	})
}

func (v *hrView) startCreateWizard() tea.Cmd {
	switch v.tab {
	case hrTabEmployees:
		return v.startEmployeeWizard()
	case hrTabDepartments:
		return v.startDepartmentWizard()
	default:
		return v.startLeaveWizard()
	}
}

func (v *hrView) mutate(resource, okText string, fn func(ctx context.Context) error) tea.Cmd {
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

func (v *hrView) startEmployeeWizard() tea.Cmd {
	var userID, jobTitle, employmentType, hireDate, departmentID string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("User ID").Value(&userID).Validate(validateRequired("user ID")),
				huh.NewInput().Title("Job title (optional)").Value(&jobTitle),
				huh.NewSelect[string]().Title("Employment type").Options(
					huh.NewOption("Full time", string(domain.EmployFullTime)),
					huh.NewOption("Part time", string(domain.EmployPartTime)),
					huh.NewOption("Contract", string(domain.EmployContract)),
					huh.NewOption("Freelance", string(domain.EmployFreelance)),
					huh.NewOption("Intern", string(domain.EmployIntern)),
				).Value(&employmentType),
				huh.NewInput().Title("Hire date (optional)").Placeholder("YYYY-MM-DD").Value(&hireDate).Validate(validateOptionalDate),
				huh.NewInput().Title("Department ID (optional)").Value(&departmentID).Validate(validateOptionalID),
			),
		)
	}

	state := v.state
	return startWizard(state, "New employee", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateEmployeeRequest{
			JobTitle:       jobTitle,
			EmploymentType: employmentType,
			HireDate:       hireDate,
			DepartmentID:   parseOptionalID(departmentID),
		}
		if id := parseOptionalID(userID); id != nil {
			req.UserID = *id
		}
		return v.mutate("hr/employees", "Employee created.", func(ctx context.Context) error {
			_, err := app.HR.CreateEmployee(ctx, req)
			return err
		})
	})
}

func (v *hrView) startDepartmentWizard() tea.Cmd {
	var name, code, budget string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name).Validate(validateRequired("name")),
				huh.NewInput().Title("Code (optional)").Value(&code),
				huh.NewInput().Title("Budget (optional)").Value(&budget).Validate(validateOptionalAmount),
			),
		)
	}

	state := v.state
	return startWizard(state, "New department", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateDepartmentRequest{Name: name, Code: code, Budget: parseAmount(budget)}
		return v.mutate("hr/departments", "Department created.", func(ctx context.Context) error {
			_, err := app.HR.CreateDepartment(ctx, req)
			return err
		})
	})
}

func (v *hrView) startLeaveWizard() tea.Cmd {
	var employeeID, leaveType, startDate, endDate, reason string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Employee ID").Value(&employeeID).Validate(validateRequired("employee ID")),
				huh.NewSelect[string]().Title("Type").Options(
					huh.NewOption("Annual", string(domain.LeaveAnnual)),
					huh.NewOption("Sick", string(domain.LeaveSick)),
					huh.NewOption("Personal", string(domain.LeavePersonal)),
					huh.NewOption("Maternity", string(domain.LeaveMaternity)),
					huh.NewOption("Paternity", string(domain.LeavePaternity)),
					huh.NewOption("Unpaid", string(domain.LeaveUnpaid)),
				).Value(&leaveType),
				huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").Value(&startDate).Validate(validateRequired("start date")),
				huh.NewInput().Title("End date").Placeholder("YYYY-MM-DD").Value(&endDate).Validate(validateRequired("end date")),
				huh.NewInput().Title("Reason (optional)").Value(&reason),
			),
		)
	}

	state := v.state
	return startWizard(state, "New leave request", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateLeaveRequestRequest{
			LeaveType: leaveType,
			StartDate: startDate,
			EndDate:   endDate,
			Reason:    reason,
		}
		if id := parseOptionalID(employeeID); id != nil {
			req.EmployeeID = *id
		}
		return v.mutate("hr/leave-requests", "Leave request created.", func(ctx context.Context) error {
			_, err := app.HR.CreateLeaveRequest(ctx, req)
			return err
		})
	})
}

func (v *hrView) View() string {
	out := "\n" + renderTabs(hrTabLabels, v.tab) + "\n\n"
	if v.loading {
		return out + loadingLine()
	}
	if v.err != nil {
		return out + errorLine(v.err)
	}

	switch v.tab {
	case hrTabEmployees:
		return out + v.renderEmployees()
	case hrTabDepartments:
		return out + v.renderDepartments()
	default:
		return out + v.renderLeave()
	}
}

func (v *hrView) cursorCell(i int) string {
	if i == v.cursor {
		return formatter.StyleGreen.Render("▸ ")
	}
	return "  "
}

func (v *hrView) renderEmployees() string {
	if len(v.employees) == 0 {
		return "  " + formatter.Dim("No employees.") + "\n"
	}
	rows := make([][]string, 0, len(v.employees))
	for i, e := range v.employees {
		dept := formatter.Dim("—")
		if e.DepartmentID != nil {
			dept = fmt.Sprintf("#%d", *e.DepartmentID)
		}
		rows = append(rows, []string{
			v.cursorCell(i) + formatter.StyleGreen.Render(e.EmployeeCode),
			e.JobTitle,
			string(e.EmploymentType),
			dept,
			formatter.Date(e.HireDate),
			fmt.Sprintf("%.1fd", e.AnnualLeaveBalance),
		})
	}
	return formatter.RenderTable([]string{"  Code", "Title", "Type", "Dept", "Hired", "Leave"}, rows)
}

func (v *hrView) renderDepartments() string {
	if len(v.departments) == 0 {
		return "  " + formatter.Dim("No departments.") + "\n"
	}
	rows := make([][]string, 0, len(v.departments))
	for i, d := range v.departments {
		active := formatter.StyleGreen.Render("active")
		if !d.IsActive {
			active = formatter.Dim("inactive")
		}
		rows = append(rows, []string{
			v.cursorCell(i) + formatter.StyleGreen.Render(d.Code),
			d.Name,
			formatter.Money(d.Budget, "USD"),
			active,
		})
	}
	return formatter.RenderTable([]string{"  Code", "Name", "Budget", "Active"}, rows)
}

func (v *hrView) renderLeave() string {
	if len(v.leave) == 0 {
		return "  " + formatter.Dim("No leave requests.") + "\n"
	}
	rows := make([][]string, 0, len(v.leave))
	for i, l := range v.leave {
		rows = append(rows, []string{
			v.cursorCell(i) + fmt.Sprintf("#%d", l.EmployeeID),
			string(l.LeaveType),
			formatter.Date(l.StartDate),
			formatter.Date(l.EndDate),
			fmt.Sprintf("%dd", l.TotalDays),
			formatter.LeaveStatusPill(l.Status),
		})
	}
	return formatter.RenderTable([]string{"  Employee", "Type", "From", "To", "Days", "Status"}, rows)
}
