package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles. SetPlain swaps them for unstyled ones.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var plain bool

func init() {
	SetPlain(false)
}

// SetPlain turns styling and box borders off, for output that is piped or
// redirected rather than shown on a terminal.
func SetPlain(on bool) {
	plain = on
	if on {
		none := lipgloss.NewStyle()
		StyleGreen, StyleYellow, StyleRed, StyleBlue, StylePurple = none, none, none, none, none
		StyleDim, StyleFg, StyleHeader, StyleBold = none, none, none, none
		return
	}
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// StatusPill returns a colored indicator for an assignment status.
func StatusPill(status domain.AssignmentStatus) string {
	switch status {
	case domain.AssignmentActive:
		return StyleGreen.Render("● Active")
	case domain.AssignmentProposed:
		return StyleBlue.Render("○ Proposed")
	case domain.AssignmentCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.AssignmentCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// LoadStyle colors a day's booked hours by how full the day is.
func LoadStyle(hours float64) lipgloss.Style {
	switch {
	case hours <= 0:
		return StyleDim
	case hours >= 8:
		return StyleRed
	case hours >= 6:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
