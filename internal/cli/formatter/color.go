package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"greenlight/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// VerdictStyle returns the lipgloss style for the given verdict.
func VerdictStyle(v domain.Verdict) lipgloss.Style {
	switch v {
	case domain.VerdictGreen:
		return StyleGreen
	case domain.VerdictAmber:
		return StyleYellow
	case domain.VerdictRed:
		return StyleRed
	default:
		return StyleDim
	}
}

// VerdictBadge returns a colored verdict indicator such as "● AMBER".
func VerdictBadge(v domain.Verdict) string {
	switch v {
	case domain.VerdictGreen:
		return StyleGreen.Render("● GREEN")
	case domain.VerdictAmber:
		return StyleYellow.Render("● AMBER")
	case domain.VerdictRed:
		return StyleRed.Render("● RED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SeverityTag returns a colored severity marker for a rule flag.
func SeverityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return StyleRed.Render("[HIGH]")
	case domain.SeverityMedium:
		return StyleYellow.Render("[MED] ")
	default:
		return StyleDim.Render("[LOW] ")
	}
}

// StatusMark returns the traffic-light mark for an assumption comparison.
func StatusMark(s domain.AssumptionStatus) string {
	switch s {
	case domain.AssumptionAligned:
		return StyleGreen.Render("✓")
	case domain.AssumptionStretched:
		return StyleYellow.Render("~")
	default:
		return StyleRed.Render("✗")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// TruncID shortens a UUID to its first segment for display.
func TruncID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return StyleDim.Render(id[:i])
	}
	if len(id) > 8 {
		return StyleDim.Render(id[:8])
	}
	return StyleDim.Render(id)
}

// Money formats an amount in thousands, e.g. "£142.5k", dropping the
// decimal for whole thousands.
func Money(amount float64) string {
	k := amount / 1000
	if k == float64(int(k)) {
		return fmt.Sprintf("£%.0fk", k)
	}
	return fmt.Sprintf("£%.1fk", k)
}

// MoneyRange formats a min/max pair in thousands.
func MoneyRange(min, max float64) string {
	return fmt.Sprintf("%s – %s", Money(min), Money(max))
}
