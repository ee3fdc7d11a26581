package cli

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }

func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtDashboardWithToken(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDashboard, m.activeView().ID())
}

func TestNewAppModelStartsAtLoginWithoutToken(t *testing.T) {
	app, _ := testAppLoggedOut(t)
	m := newAppModel(app)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewLogin, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	v2 := newStubView(ViewProjects, "Projects", "projects view")
	v3 := newStubView(ViewBoard, "Board", "board view")

	model, _ := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, View(v2), m.activeView())

	model, _ = m.Update(replaceViewMsg{view: v3})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, View(v3), m.activeView())

	model, cmd := m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDashboard, m.activeView().ID())

	// The bottom view never pops.
	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
}

func TestAppModel_RefreshBroadcastsToWholeStack(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	bottom := newStubView(ViewProjects, "Projects", "projects")
	top := newStubView(ViewBoard, "Board", "board")
	m.viewStack = []View{bottom, top}

	model, _ := m.Update(refreshViewMsg{})
	m = model.(appModel)

	require.Len(t, bottom.updateSeen, 1)
	require.Len(t, top.updateSeen, 1)
	assert.IsType(t, refreshViewMsg{}, bottom.updateSeen[0])
	assert.IsType(t, refreshViewMsg{}, top.updateSeen[0])
}

func TestAppModel_StatusLineFeedback(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)

	model, _ := m.Update(statusLineMsg{text: "Task created."})
	m = model.(appModel)
	assert.Equal(t, "Task created.", m.feedback)
	assert.Contains(t, m.View(), "Task created.")

	// Any keypress clears the feedback line.
	m.viewStack = []View{newStubView(ViewProjects, "Projects", "projects")}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = model.(appModel)
	assert.Empty(t, m.feedback)
}

func TestAppModel_SessionExpiredResetsToLogin(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	m.viewStack = []View{
		newStubView(ViewDashboard, "Dashboard", "dashboard"),
		newStubView(ViewProjects, "Projects", "projects"),
		newStubView(ViewBoard, "Board", "board"),
	}
	m.state.ActiveProjectID = 4
	m.state.ActiveProjectCode = "NOVA"

	model, _ := m.Update(sessionExpiredMsg{})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewLogin, m.activeView().ID())
	assert.False(t, app.Session.HasToken())
	assert.Zero(t, m.state.ActiveProjectID)
	assert.Contains(t, m.View(), "Session expired. Sign in again.")
}

func TestAppModel_WizardCompletePopsAndRefreshes(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	under := newStubView(ViewAccounting, "Accounting", "accounting")
	m.viewStack = []View{under, newStubView(ViewForm, "New invoice", "form")}

	var ran bool
	next := func() tea.Msg { ran = true; return nil }

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, View(under), m.activeView())

	// The batch carries both the follow-up command and the refresh.
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, sub := range batch {
		if sub != nil {
			sub()
		}
	}
	assert.True(t, ran)
}

func TestAppModel_KeyHandling(t *testing.T) {
	t.Run("colon focuses command bar", func(t *testing.T) {
		app, _ := testApp(t)
		m := newAppModel(app)
		m.viewStack = []View{newStubView(ViewDashboard, "Dashboard", "dashboard")}

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{':'}})
		m = model.(appModel)
		assert.True(t, m.cmdBar.Focused())
	})

	t.Run("q quits when view does not capture input", func(t *testing.T) {
		app, _ := testApp(t)
		m := newAppModel(app)
		m.viewStack = []View{newStubView(ViewDashboard, "Dashboard", "dashboard")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("capturing view receives q", func(t *testing.T) {
		app, _ := testApp(t)
		m := newAppModel(app)
		v := newStubView(ViewForm, "New task", "form")
		m.viewStack = []View{v}

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("esc pops back stack", func(t *testing.T) {
		app, _ := testApp(t)
		m := newAppModel(app)
		m.viewStack = []View{
			newStubView(ViewDashboard, "Dashboard", "dashboard"),
			newStubView(ViewProjects, "Projects", "projects"),
		}

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Len(t, m.viewStack, 1)
		assert.Equal(t, ViewDashboard, m.activeView().ID())
	})
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	v := newStubView(ViewProjects, "Projects", "projects")
	m.viewStack = []View{v}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	require.Len(t, v.updateSeen, 1)
	assert.IsType(t, tea.WindowSizeMsg{}, v.updateSeen[0])
}

func TestAppModel_HeaderShowsBreadcrumb(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	m.viewStack = []View{
		newStubView(ViewProjects, "Projects", "projects"),
		newStubView(ViewBoard, "Board · NOVA", "board"),
	}

	out := m.View()
	assert.Contains(t, out, "slate")
	assert.Contains(t, out, "Projects")
	assert.Contains(t, out, "Board · NOVA")
}
