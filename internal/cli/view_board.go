package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
)

// boardLoadedMsg carries the project's tasks, grouped later by status.
type boardLoadedMsg struct {
	tasks []domain.Task
	err   error
}

// boardMovedMsg reports the outcome of a card move.
type boardMovedMsg struct {
	taskKey string
	status  domain.TaskStatus
	err     error
}

// boardView renders the project task board as one column per status,
// blocked included, with keyboard-driven card movement.
type boardView struct {
	state   *SharedState
	columns map[domain.TaskStatus][]domain.Task
	col     int
	row     int
	loading bool
	moving  bool
	err     error

	// Ticks when the task cache for this project is invalidated or
	// refreshed behind the scenes.
	watch <-chan struct{}
}

func newBoardView(state *SharedState) *boardView {
	return &boardView{
		state:   state,
		columns: map[domain.TaskStatus][]domain.Task{},
		loading: true,
	}
}

func (v *boardView) ID() ViewID { return ViewBoard }

func (v *boardView) Title() string {
	return "Board · " + v.state.ActiveProjectCode
}

func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "column")),
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "card")),
		key.NewBinding(key.WithKeys("<", ">"), key.WithHelp("</>", "move card")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *boardView) tasksKey() query.Key {
	return resourceKey(fmt.Sprintf("projects/%d/tasks", v.state.ActiveProjectID), nil)
}

func (v *boardView) Init() tea.Cmd {
	if v.watch == nil {
		v.watch = v.state.App.Queries.Subscribe(v.tasksKey())
	}
	return tea.Batch(v.loadData(), watchQuery(v.watch, v.tasksKey()))
}

func (v *boardView) loadData() tea.Cmd {
	app := v.state.App
	projectID := v.state.ActiveProjectID
	key := v.tasksKey()
	return func() tea.Msg {
		tasks, err := query.Fetch(context.Background(), app.Queries, key,
			func(ctx context.Context) ([]domain.Task, error) {
				return app.Tasks.ListByProject(ctx, projectID, api.ProjectTaskFilter{})
			})
		if err != nil {
			return authGuard(err, func(err error) tea.Msg { return boardLoadedMsg{err: err} })
		}
		return boardLoadedMsg{tasks: tasks}
	}
}

func (v *boardView) group(tasks []domain.Task) {
	cols := map[domain.TaskStatus][]domain.Task{}
	for _, t := range tasks {
		cols[t.Status] = append(cols[t.Status], t)
	}
	for _, list := range cols {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Position < list[j].Position })
	}
	v.columns = cols
	v.clampCursor()
}

func (v *boardView) clampCursor() {
	if v.col >= len(domain.BoardColumns) {
		v.col = len(domain.BoardColumns) - 1
	}
	if n := len(v.columns[domain.BoardColumns[v.col]]); v.row >= n {
		v.row = max(0, n-1)
	}
}

func (v *boardView) selected() *domain.Task {
	list := v.columns[domain.BoardColumns[v.col]]
	if v.row < len(list) {
		return &list[v.row]
	}
	return nil
}

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.group(msg.tasks)
		return v, nil

	case boardMovedMsg:
		v.moving = false
		if msg.err != nil {
			return v, statusLine(formatter.StyleRed.Render("Move failed: " + msg.err.Error()))
		}
		return v, tea.Batch(
			statusLine(formatter.Dim(msg.taskKey+" → "+string(msg.status))),
			refreshViews(),
		)

	case refreshViewMsg:
		return v, v.loadData()

	case queryChangedMsg:
		if msg.key != v.tasksKey() {
			return v, nil
		}
		return v, tea.Batch(v.loadData(), watchQuery(v.watch, v.tasksKey()))

	case tea.KeyMsg:
		switch msg.String() {
		case "h", "left":
			if v.col > 0 {
				v.col--
				v.clampCursor()
			}
		case "l", "right":
			if v.col < len(domain.BoardColumns)-1 {
				v.col++
				v.clampCursor()
			}
		case "k", "up":
			if v.row > 0 {
				v.row--
			}
		case "j", "down":
			if v.row < len(v.columns[domain.BoardColumns[v.col]])-1 {
				v.row++
			}
		case "<":
			return v, v.moveSelected(-1)
		case ">":
			return v, v.moveSelected(+1)
		case "n":
			return v, v.startCreateWizard()
		case "r":
			return v, v.loadData()
		}
	}

	return v, nil
}

// moveSelected shifts the selected card one column. The update sends
// only the new status; position within the target column is left to
// the server.
func (v *boardView) moveSelected(dir int) tea.Cmd {
	if v.moving {
		return nil
	}
	task := v.selected()
	if task == nil {
		return nil
	}
	target := v.col + dir
	if target < 0 || target >= len(domain.BoardColumns) {
		return nil
	}
	v.moving = true

	app := v.state.App
	key := v.tasksKey()
	taskID := task.ID
	taskKey := task.TaskKey
	status := domain.BoardColumns[target]
	return func() tea.Msg {
		s := string(status)
		err := app.Queries.Mutate(context.Background(), func(ctx context.Context) error {
			_, err := app.Tasks.Update(ctx, taskID, api.UpdateTaskRequest{Status: &s})
			return err
		}, key)
		if err != nil {
			return authGuard(err, func(err error) tea.Msg {
				return boardMovedMsg{taskKey: taskKey, err: err}
			})
		}
		return boardMovedMsg{taskKey: taskKey, status: status}
	}
}

func (v *boardView) startCreateWizard() tea.Cmd {
	var title, taskType, priority, dueDate, estimate string

	typeOptions := []huh.Option[string]{
		huh.NewOption("Task", string(domain.TaskKindTask)),
		huh.NewOption("Bug", string(domain.TaskKindBug)),
		huh.NewOption("Story", string(domain.TaskKindStory)),
		huh.NewOption("Milestone", string(domain.TaskKindMilestone)),
	}
	priorityOptions := []huh.Option[string]{
		huh.NewOption("Lowest", string(domain.PriorityLowest)),
		huh.NewOption("Low", string(domain.PriorityLow)),
		huh.NewOption("Medium", string(domain.PriorityMedium)),
		huh.NewOption("High", string(domain.PriorityHigh)),
		huh.NewOption("Highest", string(domain.PriorityHighest)),
	}

	makeForm := func() *huh.Form {
		return newForm(
			huh.NewGroup(
				huh.NewInput().Title("Title").Value(&title).Validate(validateRequired("title")),
				huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(&taskType),
				huh.NewSelect[string]().Title("Priority").Options(priorityOptions...).Value(&priority),
				huh.NewInput().Title("Due date (optional)").Placeholder("YYYY-MM-DD").Value(&dueDate).Validate(validateOptionalDate),
				huh.NewInput().Title("Estimated hours (optional)").Value(&estimate).Validate(validateOptionalAmount),
			),
		)
	}

	state := v.state
	key := v.tasksKey()
	return startWizard(state, "New task · "+state.ActiveProjectCode, makeForm, func() tea.Cmd {
		app := state.App
		req := api.CreateTaskRequest{
			ProjectID: state.ActiveProjectID,
			Title:     title,
			TaskType:  taskType,
			Priority:  priority,
			DueDate:   dueDate,
		}
		if estimate != "" {
			h := parseAmount(estimate)
			req.EstimatedHours = &h
		}
		return func() tea.Msg {
			err := app.Queries.Mutate(context.Background(), func(ctx context.Context) error {
				_, err := app.Tasks.Create(ctx, req)
				return err
			}, key)
			if err != nil {
				return authGuard(err, func(err error) tea.Msg {
					return mutationFailedMsg{text: "Create failed: " + err.Error()}
				})
			}
			return statusLineMsg{text: formatter.StyleGreen.Render("Task created.")}
		}
	})
}

var boardColumnTitles = map[domain.TaskStatus]string{
	domain.TaskBacklog:    "Backlog",
	domain.TaskTodo:       "To do",
	domain.TaskInProgress: "In progress",
	domain.TaskInReview:   "In review",
	domain.TaskBlocked:    "Blocked",
	domain.TaskDone:       "Done",
}

func (v *boardView) View() string {
	if v.loading {
		return loadingLine()
	}
	if v.err != nil {
		return errorLine(v.err)
	}

	colWidth := 24
	if v.state.Width > 0 {
		if w := v.state.Width/len(domain.BoardColumns) - 2; w >= 16 {
			colWidth = w
		}
	}

	rendered := make([]string, 0, len(domain.BoardColumns))
	for ci, status := range domain.BoardColumns {
		rendered = append(rendered, v.renderColumn(ci, status, colWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return "\n" + board
}

func (v *boardView) renderColumn(ci int, status domain.TaskStatus, width int) string {
	list := v.columns[status]
	title := fmt.Sprintf("%s (%d)", boardColumnTitles[status], len(list))
	if ci == v.col {
		title = formatter.StyleGreen.Bold(true).Render(title)
	} else {
		title = formatter.StyleHeader.Render(title)
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", width)) + "\n")
	if len(list) == 0 {
		b.WriteString(formatter.Dim("·") + "\n")
	}
	for ri, t := range list {
		b.WriteString(v.renderCard(t, ci == v.col && ri == v.row, width) + "\n")
	}

	return lipgloss.NewStyle().Width(width).MarginRight(2).Render(b.String())
}

func (v *boardView) renderCard(t domain.Task, selected bool, width int) string {
	title := ansi.Truncate(t.Title, width-2, "…")
	line := formatter.StyleGreen.Render(t.TaskKey) + " " + formatter.PriorityPill(t.Priority)
	body := line + "\n" + title
	if t.DueDate != "" {
		body += "\n" + formatter.DueDateStyled(t.DueDate, time.Now())
	}
	style := lipgloss.NewStyle().Width(width-2).Padding(0, 1)
	if selected {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(formatter.ColorGreen).Width(width - 2)
	} else {
		style = style.Border(lipgloss.HiddenBorder())
	}
	return style.Render(body)
}
