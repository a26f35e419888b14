package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/crewplan/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
// In plain mode the border and padding are dropped.
func RenderBox(title string, content string) string {
	inner := content
	if title != "" {
		inner = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	if plain {
		return strings.TrimRight(inner, "\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)
	return boxStyle.Render(strings.TrimRight(inner, "\n"))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Day renders a calendar day in the storage layout.
func Day(t time.Time) string {
	return t.UTC().Format(scheduler.DateLayout)
}

// Clock renders the UTC time of day of a block edge.
func Clock(t time.Time) string {
	return t.UTC().Format("15:04")
}

// Hours renders an hour amount with an "h" suffix ("8h", "2.5h").
func Hours(h float64) string {
	return scheduler.FormatHours(h) + "h"
}

// Money renders a decimal amount with two places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Timestamp renders an audit or creation time in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
