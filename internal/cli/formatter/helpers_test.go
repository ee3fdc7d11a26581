package formatter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/cli/formatter"
	"github.com/slatehq/slate/internal/domain"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "USD 1,500.00", formatter.Money(1500, "USD"))
	assert.Equal(t, "EUR 1,234,567.89", formatter.Money(1234567.89, "EUR"))
	assert.Equal(t, "USD 0.50", formatter.Money(0.5, "USD"))
	assert.Equal(t, "-250.00", formatter.Money(-250, ""))
	assert.Equal(t, "999.99", formatter.Money(999.99, ""))
}

func TestParseMoneyRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 0.5, 999.99, 1500, 1234567.89, -250} {
		rendered := formatter.Money(amount, "USD")
		parsed, currency, err := formatter.ParseMoney(rendered)
		require.NoError(t, err)
		assert.Equal(t, amount, parsed)
		assert.Equal(t, "USD", currency)
	}
}

func TestParseMoneyRejectsGarbage(t *testing.T) {
	_, _, err := formatter.ParseMoney("USD lots")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Aug 15, 2026", formatter.Date("2026-08-15"))
	assert.Equal(t, "Aug 15, 2026", formatter.Date("2026-08-15T10:30:00"))
	assert.Equal(t, "--", formatter.Date(""))
	// Unparseable input passes through, never disappears.
	assert.Equal(t, "soon", formatter.Date("soon"))
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", formatter.RelativeDateFrom(now, now))
	assert.Equal(t, "Tomorrow", formatter.RelativeDateFrom(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Yesterday", formatter.RelativeDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "In 5d", formatter.RelativeDateFrom(now.AddDate(0, 0, 5), now))
	assert.Equal(t, "In 3w", formatter.RelativeDateFrom(now.AddDate(0, 0, 21), now))
	assert.Equal(t, "3d ago", formatter.RelativeDateFrom(now.AddDate(0, 0, -3), now))
}

func TestStatusPillsFallBackToRawValue(t *testing.T) {
	// The service may grow enum values the client has never seen.
	assert.Contains(t, formatter.ProjectStatusPill("holographic"), "holographic")
	assert.Contains(t, formatter.TaskStatusPill("paused"), "paused")
	assert.Contains(t, formatter.InvoiceStatusPill("disputed"), "disputed")
}

func TestTaskStatusPillCoversBlocked(t *testing.T) {
	assert.Contains(t, formatter.TaskStatusPill(domain.TaskBlocked), "Blocked")
}

func TestRenderTableAlignsStyledCells(t *testing.T) {
	out := formatter.RenderTable(
		[]string{"Code", "Status"},
		[][]string{
			{"NOVA", formatter.ProjectStatusPill(domain.ProjectProduction)},
			{"Q3-SPOT", formatter.ProjectStatusPill(domain.ProjectCompleted)},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Code")
	assert.Contains(t, lines[2], "NOVA")
	assert.Contains(t, lines[3], "Q3-SPOT")
	// Cell text survives styling verbatim.
	assert.Contains(t, out, "Production")
	assert.Contains(t, out, "Completed")
}

func TestRenderProgressClamps(t *testing.T) {
	assert.Contains(t, formatter.RenderProgress(1.5, 8), "100%")
	assert.Contains(t, formatter.RenderProgress(-0.2, 8), "0%")
	assert.Contains(t, formatter.RenderProgress(0.5, 8), "50%")
}
