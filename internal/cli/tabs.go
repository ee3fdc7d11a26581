package cli

import (
	"strings"

	"github.com/slatehq/slate/internal/cli/formatter"
)

// renderTabs draws a one-line tab strip with the active tab highlighted.
// Tab/shift+tab switching is handled by each view.
func renderTabs(labels []string, active int) string {
	var b strings.Builder
	for i, label := range labels {
		if i > 0 {
			b.WriteString(formatter.Dim(" │ "))
		}
		if i == active {
			b.WriteString(formatter.StyleGreen.Bold(true).Render(label))
		} else {
			b.WriteString(formatter.Dim(label))
		}
	}
	return "  " + b.String()
}

// nextTab advances the active tab, wrapping in either direction.
func nextTab(active, count, dir int) int {
	return (active + dir + count) % count
}
