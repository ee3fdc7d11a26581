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

// projectsLoadedMsg signals that the project list has been loaded.
type projectsLoadedMsg struct {
	projects []domain.Project
	err      error
}

// projectsView lists projects; enter opens the task board.
type projectsView struct {
	state   *SharedState
	rows    []domain.Project
	cursor  int
	loading bool
	err     error

	// status filter cycles through "" and every project status
	statusFilter string
}

func newProjectsView(state *SharedState) *projectsView {
	return &projectsView{state: state, loading: true}
}

func (v *projectsView) ID() ViewID    { return ViewProjects }
func (v *projectsView) Title() string { return "Projects" }

func (v *projectsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "board")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *projectsView) filter() api.ProjectFilter {
	return api.ProjectFilter{Status: v.statusFilter}
}

func (v *projectsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *projectsView) loadData() tea.Cmd {
	app := v.state.App
	f := v.filter()
	return func() tea.Msg {
		ctx := context.Background()
		projects, err := query.Fetch(ctx, app.Queries, resourceKey("projects", f.Values()),
			func(ctx context.Context) ([]domain.Project, error) {
				return app.Projects.List(ctx, f)
			})
		if err != nil {
			return authGuard(err, func(err error) tea.Msg { return projectsLoadedMsg{err: err} })
		}
		return projectsLoadedMsg{projects: projects}
	}
}

var projectFilterCycle = []string{
	"",
	string(domain.ProjectPlanning),
	string(domain.ProjectPreProduction),
	string(domain.ProjectProduction),
	string(domain.ProjectPostProduction),
	string(domain.ProjectReview),
	string(domain.ProjectCompleted),
	string(domain.ProjectOnHold),
}

func (v *projectsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.rows = msg.projects
		if v.cursor >= len(v.rows) {
			v.cursor = max(0, len(v.rows)-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
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
		case "enter":
			if v.cursor < len(v.rows) {
				v.state.SetActiveProject(&v.rows[v.cursor])
				return v, pushView(newBoardView(v.state))
			}
		case "n":
			return v, v.startCreateWizard()
		case "f":
			for i, s := range projectFilterCycle {
				if s == v.statusFilter {
					v.statusFilter = projectFilterCycle[(i+1)%len(projectFilterCycle)]
					break
				}
			}
			v.loading = true
			return v, v.loadData()
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

// startCreateWizard opens the new-project form. On submit the create
// goes through the mutation contract so the project list refetches.
func (v *projectsView) startCreateWizard() tea.Cmd {
	var name, code, projectType, startDate, clientID string

	typeOptions := []huh.Option[string]{
		huh.NewOption("Commercial", string(domain.ProjectCommercial)),
		huh.NewOption("Corporate", string(domain.ProjectCorporate)),
		huh.NewOption("Documentary", string(domain.ProjectDocumentary)),
		huh.NewOption("Music video", string(domain.ProjectMusicVideo)),
		huh.NewOption("Short film", string(domain.ProjectShortFilm)),
		huh.NewOption("Social media", string(domain.ProjectSocialMedia)),
		huh.NewOption("Other", string(domain.ProjectOther)),
	}

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name).Validate(validateRequired("name")),
				huh.NewInput().Title("Code").Placeholder("e.g. ACME-SPOT").Value(&code).Validate(validateRequired("code")),
				huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(&projectType),
				huh.NewInput().Title("Client ID (optional)").Value(&clientID).Validate(validateOptionalID),
				huh.NewInput().Title("Start date (optional)").Placeholder("YYYY-MM-DD").Value(&startDate).Validate(validateOptionalDate),
			),
		)
	}

	state := v.state
	return startWizard(state, "New project", makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateProjectRequest{
			Name:        name,
			Code:        code,
			ProjectType: projectType,
			ClientID:    parseOptionalID(clientID),
			StartDate:   startDate,
		}
		return func() tea.Msg {
			err := app.Queries.Mutate(context.Background(), func(ctx context.Context) error {
				_, err := app.Projects.Create(ctx, req)
				return err
			}, resourceKey("projects", nil))
			if err != nil {
				return authGuard(err, func(err error) tea.Msg {
					return mutationFailedMsg{text: "Create failed: " + err.Error()}
				})
			}
			return statusLineMsg{text: formatter.StyleGreen.Render("Project created.")}
		}
	})
}

func (v *projectsView) View() string {
	if v.loading {
		return loadingLine()
	}
	if v.err != nil {
		return errorLine(v.err)
	}

	out := "\n"
	if v.statusFilter != "" {
		out += "  " + formatter.Dim("filter: status=") + formatter.StyleYellow.Render(v.statusFilter) + "\n\n"
	}
	if len(v.rows) == 0 {
		return out + "  " + formatter.Dim("No projects. Press 'n' to create one.") + "\n"
	}

	rows := make([][]string, 0, len(v.rows))
	for i, p := range v.rows {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		rows = append(rows, []string{
			cursor + formatter.StyleGreen.Render(p.Code),
			p.Name,
			formatter.ProjectStatusPill(p.Status),
			string(p.ProjectType),
			formatter.Date(p.TargetEndDate),
			formatter.RenderProgress(p.ProgressPercentage/100, 8),
		})
	}
	out += formatter.RenderTable(
		[]string{"  Code", "Name", "Status", "Type", "Target", "Progress"}, rows)
	out += "\n  " + formatter.Dim(fmt.Sprintf("%d projects", len(v.rows)))
	return out
}
