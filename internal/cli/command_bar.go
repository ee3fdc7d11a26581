package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slatehq/slate/internal/cli/formatter"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history
// navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	histFile   string
	history    []string
	historyIdx int
}

// barCommands maps command names to the view each one opens.
var barCommands = []string{
	"dashboard", "projects", "board", "crm", "hr", "accounting",
	"equipment", "production", "users", "refresh", "logout", "quit",
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadHistory(historyPath(state.App.ConfigDir))

	return commandBar{
		input:      ti,
		state:      state,
		histFile:   historyPath(state.App.ConfigDir),
		history:    hist,
		historyIdx: len(hist),
	}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len("slate > ") - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		c.Blur()
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.execute(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	if !c.focused {
		return c.promptPrefix() + formatter.Dim("press : to type a command")
	}
	return c.promptPrefix() + c.input.View()
}

func (c *commandBar) promptPrefix() string {
	return formatter.StylePurple.Render("slate") + " " + formatter.Dim("❯") + " "
}

// execute dispatches a typed command, mostly navigation.
func (c *commandBar) execute(input string) tea.Cmd {
	state := c.state
	switch strings.ToLower(input) {
	case "dashboard", "home":
		return replaceView(newDashboardView(state))
	case "projects":
		return replaceView(newProjectsView(state))
	case "board":
		if state.ActiveProjectID == 0 {
			return statusLine(formatter.StyleYellow.Render("Open a project first."))
		}
		return replaceView(newBoardView(state))
	case "crm":
		return replaceView(newCRMView(state))
	case "hr":
		return replaceView(newHRView(state))
	case "accounting", "invoices":
		return replaceView(newAccountingView(state))
	case "equipment":
		return replaceView(newEquipmentView(state))
	case "production":
		return replaceView(newProductionView(state))
	case "users":
		return replaceView(newUsersView(state))
	case "refresh":
		return refreshViews()
	case "logout":
		return func() tea.Msg { return sessionExpiredMsg{} }
	case "quit", "exit":
		return func() tea.Msg { return quitMsg{} }
	default:
		return statusLine(formatter.StyleYellow.Render("Unknown command: " + input))
	}
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
	appendHistory(c.histFile, line)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (c *commandBar) updateSuggestions() {
	text := strings.ToLower(c.input.Value())
	if text == "" {
		c.input.SetSuggestions(nil)
		return
	}
	var matches []string
	for _, name := range barCommands {
		if strings.HasPrefix(name, text) {
			matches = append(matches, name)
		}
	}
	c.input.SetSuggestions(matches)
}
