package cli

import (
	"context"
	"net/http"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
	"github.com/slatehq/slate/internal/testutil"
)

func seedBoard(backend *testutil.Backend) {
	backend.Handle(http.MethodGet, "/projects/5/tasks", http.StatusOK, []domain.Task{
		{ID: 7, ProjectID: 5, TaskKey: "NOVA-7", Title: "Cut trailer", Status: domain.TaskTodo, Priority: domain.PriorityMedium, Position: 1},
		{ID: 8, ProjectID: 5, TaskKey: "NOVA-8", Title: "Location permit", Status: domain.TaskBlocked, Priority: domain.PriorityHigh, Position: 1},
		{ID: 9, ProjectID: 5, TaskKey: "NOVA-9", Title: "Storyboard", Status: domain.TaskTodo, Priority: domain.PriorityLow, Position: 2},
	})
}

func openBoard(t *testing.T, d *TestDriver) {
	t.Helper()
	d.State().SetActiveProject(&domain.Project{ID: 5, Code: "NOVA", Name: "Nova"})
	d.Send(pushViewMsg{view: newBoardView(d.State())})
	require.Equal(t, ViewBoard, d.ActiveViewID())
}

func TestTUI_Board_RendersEveryColumnIncludingBlocked(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	seedBoard(backend)

	d := NewTestDriver(t, app)
	openBoard(t, d)

	view := d.View()
	assert.Contains(t, view, "Backlog (0)")
	assert.Contains(t, view, "To do (2)")
	assert.Contains(t, view, "In progress (0)")
	assert.Contains(t, view, "In review (0)")
	assert.Contains(t, view, "Blocked (1)")
	assert.Contains(t, view, "Done (0)")
	assert.Contains(t, view, "NOVA-7")
	assert.Contains(t, view, "NOVA-8")
}

func TestTUI_Board_MoveSendsStatusOnly(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	seedBoard(backend)
	backend.Handle(http.MethodPut, "/projects/tasks/7", http.StatusOK,
		domain.Task{ID: 7, ProjectID: 5, TaskKey: "NOVA-7", Status: domain.TaskInProgress})

	d := NewTestDriver(t, app)
	openBoard(t, d)

	// Cursor starts in the backlog column; NOVA-7 sits first in To do.
	d.PressKey('l')
	d.PressKey('>')

	assert.Equal(t, 1, backend.Calls(http.MethodPut, "/projects/tasks/7"))
	assert.JSONEq(t, `{"status":"in_progress"}`,
		string(backend.LastBody(http.MethodPut, "/projects/tasks/7")))
	assert.Contains(t, d.Feedback(), "NOVA-7")
}

func TestTUI_Board_MoveOffEdgeDoesNothing(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	seedBoard(backend)

	d := NewTestDriver(t, app)
	openBoard(t, d)

	// Backlog is the leftmost column; "<" has nowhere to go, and the
	// column is empty anyway.
	d.PressKey('<')
	assert.Equal(t, 0, backend.Calls(http.MethodPut, "/projects/tasks/7"))
}

func TestTUI_Board_MoveFailureShowsFeedback(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	seedBoard(backend)
	backend.Handle(http.MethodPut, "/projects/tasks/7", http.StatusUnprocessableEntity,
		map[string]string{"detail": "task is locked"})

	d := NewTestDriver(t, app)
	openBoard(t, d)

	d.PressKey('l')
	d.PressKey('>')

	assert.Contains(t, d.Feedback(), "Move failed")
	assert.Equal(t, ViewBoard, d.ActiveViewID())
}

func TestTUI_Board_UnauthorizedReadResetsToLogin(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	backend.Handle(http.MethodGet, "/projects/5/tasks", http.StatusUnauthorized,
		map[string]string{"detail": "token expired"})

	d := NewTestDriver(t, app)
	d.State().SetActiveProject(&domain.Project{ID: 5, Code: "NOVA", Name: "Nova"})
	d.Send(pushViewMsg{view: newBoardView(d.State())})

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.False(t, app.Session.HasToken())
	assert.Contains(t, d.View(), "Session expired. Sign in again.")
}

func TestTUI_Board_ReadErrorRendersVisibly(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	backend.Handle(http.MethodGet, "/projects/5/tasks", http.StatusInternalServerError,
		map[string]string{"detail": "boom"})

	d := NewTestDriver(t, app)
	d.State().SetActiveProject(&domain.Project{ID: 5, Code: "NOVA", Name: "Nova"})
	d.Send(pushViewMsg{view: newBoardView(d.State())})

	assert.Equal(t, ViewBoard, d.ActiveViewID())
	assert.Contains(t, d.View(), "Error:")
}

func TestTUI_Board_SubscribesToTaskCache(t *testing.T) {
	app, backend := testApp(t)
	seedBoard(backend)

	state := &SharedState{App: app}
	state.SetActiveProject(&domain.Project{ID: 5, Code: "NOVA", Name: "Nova"})
	v := newBoardView(state)
	_ = v.Init()

	// An invalidation anywhere (a mutation, a background refresh) must
	// reach the armed watch command.
	done := make(chan tea.Msg, 1)
	go func() { done <- watchQuery(v.watch, v.tasksKey())() }()
	app.Queries.Invalidate(v.tasksKey())

	select {
	case msg := <-done:
		assert.Equal(t, queryChangedMsg{key: v.tasksKey()}, msg)
	case <-time.After(time.Second):
		t.Fatal("no tick after invalidation")
	}
}

func TestTUI_Board_ReloadsWhenTaskCacheChanges(t *testing.T) {
	app, backend := testApp(t)
	seedDashboard(backend)
	seedBoard(backend)

	d := NewTestDriver(t, app)
	openBoard(t, d)
	require.Contains(t, d.View(), "NOVA-7")
	require.NotContains(t, d.View(), "NOVA-10")

	// A task lands server-side and something invalidates the cache.
	backend.Handle(http.MethodGet, "/projects/5/tasks", http.StatusOK, []domain.Task{
		{ID: 7, ProjectID: 5, TaskKey: "NOVA-7", Title: "Cut trailer", Status: domain.TaskTodo, Priority: domain.PriorityMedium, Position: 1},
		{ID: 8, ProjectID: 5, TaskKey: "NOVA-8", Title: "Location permit", Status: domain.TaskBlocked, Priority: domain.PriorityHigh, Position: 1},
		{ID: 9, ProjectID: 5, TaskKey: "NOVA-9", Title: "Storyboard", Status: domain.TaskTodo, Priority: domain.PriorityLow, Position: 2},
		{ID: 10, ProjectID: 5, TaskKey: "NOVA-10", Title: "Sound mix", Status: domain.TaskTodo, Priority: domain.PriorityMedium, Position: 3},
	})
	key := resourceKey("projects/5/tasks", nil)
	app.Queries.Invalidate(key)

	// First tick: the stale list is served while the refresh runs.
	d.Send(queryChangedMsg{key: key})

	// Wait for the background refresh to land in the cache.
	fetchCached := func() []domain.Task {
		tasks, err := query.Fetch(context.Background(), app.Queries, key,
			func(ctx context.Context) ([]domain.Task, error) {
				return app.Tasks.ListByProject(ctx, 5, api.ProjectTaskFilter{})
			})
		require.NoError(t, err)
		return tasks
	}
	require.Eventually(t, func() bool { return len(fetchCached()) == 4 },
		2*time.Second, 10*time.Millisecond)

	// Second tick: the refresh completed, the board re-renders fresh.
	d.Send(queryChangedMsg{key: key})
	assert.Contains(t, d.View(), "NOVA-10")
}

func TestTUI_Board_CardTruncatesWideTitlesCleanly(t *testing.T) {
	v := &boardView{state: &SharedState{}}
	task := domain.Task{
		ID: 11, TaskKey: "NOVA-11",
		Title:    "Färgkorrigering – råmaterial från nattscenerna",
		Status:   domain.TaskTodo,
		Priority: domain.PriorityMedium,
	}

	card := v.renderCard(task, false, 18)

	// Truncation is by display cells, never mid-rune.
	assert.True(t, utf8.ValidString(card))
	assert.Contains(t, card, "…")
	assert.NotContains(t, card, "�")
}
