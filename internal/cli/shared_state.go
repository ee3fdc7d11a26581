package cli

import "github.com/slatehq/slate/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active project context for the task board
	ActiveProjectID   int
	ActiveProjectCode string
	ActiveProjectName string

	// Terminal dimensions
	Width  int
	Height int
}

// SetActiveProject sets the active project context from a loaded project.
func (s *SharedState) SetActiveProject(p *domain.Project) {
	s.ActiveProjectID = p.ID
	s.ActiveProjectCode = p.Code
	s.ActiveProjectName = p.Name
}

// ClearActiveProject resets the active project context.
func (s *SharedState) ClearActiveProject() {
	s.ActiveProjectID = 0
	s.ActiveProjectCode = ""
	s.ActiveProjectName = ""
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
