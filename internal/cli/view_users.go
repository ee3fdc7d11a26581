package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

type usersLoadedMsg struct {
	users []domain.User
	err   error
}

// usersView lists backend accounts. Creation needs admin rights on the
// server side; the view does not second-guess that.
type usersView struct {
	state   *SharedState
	rows    []domain.User
	cursor  int
	loading bool
	err     error
}

func newUsersView(state *SharedState) *usersView {
	return &usersView{state: state, loading: true}
}

func (v *usersView) ID() ViewID    { return ViewUsers }
func (v *usersView) Title() string { return "Users" }

func (v *usersView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *usersView) Init() tea.Cmd {
	return v.loadData()
}

func (v *usersView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		users, err := query.Fetch(context.Background(), app.Queries, resourceKey("users", nil),
			func(ctx context.Context) ([]domain.User, error) {
				return app.Users.List(ctx)
			})
		if err != nil {
			return authGuard(err, func(err error) tea.Msg { return usersLoadedMsg{err: err} })
		}
		return usersLoadedMsg{users: users}
	}
}

func (v *usersView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.rows = msg.users
		if v.cursor >= len(v.rows) {
			v.cursor = max(0, len(v.rows)-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
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

func (v *usersView) startCreateWizard() tea.Cmd {
	var email, username, password, fullName, role string

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email).Validate(validateRequired("email")),
				huh.NewInput().Title("Username").Value(&username).Validate(validateRequired("username")),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password).Validate(validateRequired("password")),
				huh.NewInput().Title("Full name (optional)").Value(&fullName),
				huh.NewSelect[string]().Title("Role").Options(
					huh.NewOption("Employee", string(domain.RoleEmployee)),
					huh.NewOption("Producer", string(domain.RoleProducer)),
					huh.NewOption("Editor", string(domain.RoleEditor)),
					huh.NewOption("Cameraman", string(domain.RoleCameraman)),
					huh.NewOption("Accountant", string(domain.RoleAccountant)),
					huh.NewOption("HR", string(domain.RoleHR)),
					huh.NewOption("Sales", string(domain.RoleSales)),
					huh.NewOption("Manager", string(domain.RoleManager)),
					huh.NewOption("Admin", string(domain.RoleAdmin)),
				).Value(&role),
			),
		)
	}

	state := v.state
	return startWizard(state, "New user", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateUserRequest{
			Email:    email,
			Username: username,
			Password: password,
			FullName: fullName,
			Role:     role,
		}
		return func() tea.Msg {
			err := app.Queries.Mutate(context.Background(), func(ctx context.Context) error {
				_, err := app.Users.Create(ctx, req)
				return err
			}, resourceKey("users", nil))
			if err != nil {
				return authGuard(err, func(err error) tea.Msg {
					return mutationFailedMsg{text: "Create failed: " + err.Error()}
				})
			}
			return statusLineMsg{text: formatter.StyleGreen.Render("User created.")}
		}
	})
}

func (v *usersView) View() string {
	if v.loading {
		return loadingLine()
	}
	if v.err != nil {
		return errorLine(v.err)
	}
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim("No users.") + "\n"
	}

	rows := make([][]string, 0, len(v.rows))
	for i, u := range v.rows {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		active := formatter.StyleGreen.Render("active")
		if !u.IsActive {
			active = formatter.Dim("inactive")
		}
		rows = append(rows, []string{
			cursor + formatter.StyleGreen.Render(u.Username),
			u.FullName,
			u.Email,
			string(u.Role),
			active,
		})
	}
	return "\n" + formatter.RenderTable([]string{"  Username", "Name", "Email", "Role", "Active"}, rows)
}
