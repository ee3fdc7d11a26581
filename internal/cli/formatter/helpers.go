package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/slatehq/slate/internal/domain"
)

// Money renders an amount with a currency code and thousands
// separators, e.g. "USD 1,500.00". Empty currency renders the bare
// amount. The rendering is reversible via ParseMoney.
func Money(amount float64, currency string) string {
	neg := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	s := fmt.Sprintf("%s.%02d", strings.Join(groups, ","), frac)
	if neg {
		s = "-" + s
	}
	if currency == "" {
		return s
	}
	return currency + " " + s
}

// ParseMoney is the inverse of Money.
func ParseMoney(s string) (float64, string, error) {
	currency := ""
	if i := strings.IndexByte(s, ' '); i > 0 {
		currency = s[:i]
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, ",", "")
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parsing amount: %w", err)
	}
	return amount, currency, nil
}

// Date renders a service date string (date or RFC3339 timestamp) as
// "Jan 2, 2006". Unparseable input passes through unchanged so the
// table never hides what the service sent.
func Date(s string) string {
	if s == "" {
		return "--"
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

// RelativeDateFrom returns a human-friendly relative date string from
// a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// DueDateStyled renders a service date string relatively with urgency
// coloring. Unparseable input passes through dimmed.
func DueDateStyled(s string, now time.Time) string {
	if s == "" {
		return StyleDim.Render("--")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			t = t2
		} else {
			return StyleDim.Render(s)
		}
	}
	text := RelativeDateFrom(t, now)
	days := int(math.Round(t.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 2:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// Pct renders a 0-100 percentage.
func Pct(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// Status pills. Every pill falls back to a dim render of the raw
// value: the service may grow enum values the client has never seen,
// and those must display rather than error.

func ProjectStatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectPlanning:
		return StyleBlue.Render("◌ Planning")
	case domain.ProjectPreProduction:
		return StyleBlue.Render("○ Pre-production")
	case domain.ProjectProduction:
		return StyleGreen.Render("● Production")
	case domain.ProjectPostProduction:
		return StyleYellow.Render("◑ Post-production")
	case domain.ProjectReview:
		return StylePurple.Render("◍ Review")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectOnHold:
		return StyleYellow.Render("◌ On hold")
	case domain.ProjectCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskBacklog:
		return StyleDim.Render("◌ Backlog")
	case domain.TaskTodo:
		return StyleBlue.Render("○ Todo")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskInReview:
		return StylePurple.Render("◍ In Review")
	case domain.TaskBlocked:
		return StyleRed.Render("■ Blocked")
	case domain.TaskDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

func PriorityPill(p domain.TaskPriority) string {
	switch p {
	case domain.PriorityHighest:
		return StyleRed.Render("▲ Highest")
	case domain.PriorityHigh:
		return StyleYellow.Render("▲ High")
	case domain.PriorityMedium:
		return StyleFg.Render("— Medium")
	case domain.PriorityLow:
		return StyleDim.Render("▽ Low")
	case domain.PriorityLowest:
		return StyleDim.Render("▽ Lowest")
	default:
		return StyleDim.Render(string(p))
	}
}

func LeadStatusPill(status domain.LeadStatus) string {
	switch status {
	case domain.LeadNew:
		return StyleBlue.Render("○ New")
	case domain.LeadContacted:
		return StyleYellow.Render("◌ Contacted")
	case domain.LeadQualified:
		return StyleGreen.Render("● Qualified")
	case domain.LeadProposalSent:
		return StylePurple.Render("◍ Proposal sent")
	case domain.LeadNegotiation:
		return StylePurple.Render("◍ Negotiation")
	case domain.LeadWon:
		return StyleGreen.Render("✔ Won")
	case domain.LeadLost:
		return StyleDim.Render("✖ Lost")
	default:
		return StyleDim.Render(string(status))
	}
}

func DealStagePill(stage domain.DealStage) string {
	switch stage {
	case domain.DealDiscovery:
		return StyleBlue.Render("○ Discovery")
	case domain.DealProposal:
		return StyleYellow.Render("◌ Proposal")
	case domain.DealNegotiation:
		return StylePurple.Render("◍ Negotiation")
	case domain.DealContract:
		return StyleBlue.Render("◑ Contract")
	case domain.DealClosedWon:
		return StyleGreen.Render("✔ Won")
	case domain.DealClosedLost:
		return StyleDim.Render("✖ Lost")
	default:
		return StyleDim.Render(string(stage))
	}
}

func InvoiceStatusPill(status domain.InvoiceStatus) string {
	switch status {
	case domain.InvoiceDraft:
		return StyleDim.Render("◌ Draft")
	case domain.InvoiceSent:
		return StyleBlue.Render("○ Sent")
	case domain.InvoiceViewed:
		return StyleBlue.Render("◍ Viewed")
	case domain.InvoicePartial:
		return StyleYellow.Render("◑ Partial")
	case domain.InvoicePaid:
		return StyleGreen.Render("✔ Paid")
	case domain.InvoiceOverdue:
		return StyleRed.Render("▲ Overdue")
	case domain.InvoiceCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

func ExpenseStatusPill(status domain.ExpenseStatus) string {
	switch status {
	case domain.ExpensePending:
		return StyleYellow.Render("◌ Pending")
	case domain.ExpenseApproved:
		return StyleGreen.Render("● Approved")
	case domain.ExpenseRejected:
		return StyleRed.Render("✖ Rejected")
	case domain.ExpenseReimbursed:
		return StyleDim.Render("✔ Reimbursed")
	default:
		return StyleDim.Render(string(status))
	}
}

func EquipmentStatusPill(status domain.EquipmentStatus) string {
	switch status {
	case domain.EquipAvailable:
		return StyleGreen.Render("● Available")
	case domain.EquipInUse:
		return StyleYellow.Render("◑ In use")
	case domain.EquipReserved:
		return StyleBlue.Render("○ Reserved")
	case domain.EquipMaintenance:
		return StylePurple.Render("◍ Maintenance")
	case domain.EquipDamaged:
		return StyleRed.Render("■ Damaged")
	case domain.EquipRetired:
		return StyleDim.Render("✖ Retired")
	default:
		return StyleDim.Render(string(status))
	}
}

func BookingStatusPill(status domain.BookingStatus) string {
	switch status {
	case domain.BookingPending:
		return StyleYellow.Render("◌ Pending")
	case domain.BookingConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.BookingCheckedOut:
		return StyleBlue.Render("◑ Checked out")
	case domain.BookingReturned:
		return StyleDim.Render("✔ Returned")
	case domain.BookingCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

func LeaveStatusPill(status domain.LeaveStatus) string {
	switch status {
	case domain.LeavePending:
		return StyleYellow.Render("◌ Pending")
	case domain.LeaveApproved:
		return StyleGreen.Render("✔ Approved")
	case domain.LeaveRejected:
		return StyleRed.Render("✖ Rejected")
	case domain.LeaveCancelled:
		return StyleDim.Render("⊘ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

func ScheduleStatusPill(status domain.ScheduleStatus) string {
	switch status {
	case domain.ScheduleTentative:
		return StyleYellow.Render("◌ Tentative")
	case domain.ScheduleConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.ScheduleInProgress:
		return StyleBlue.Render("◑ In progress")
	case domain.ScheduleCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ScheduleCancelled:
		return StyleDim.Render("✖ Cancelled")
	case domain.SchedulePostponed:
		return StyleYellow.Render("⊘ Postponed")
	default:
		return StyleDim.Render(string(status))
	}
}
