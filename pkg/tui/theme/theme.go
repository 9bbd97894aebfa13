package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultAccent is used when the configured accent cannot be parsed.
const DefaultAccent = "#007AFF"

// Theme centralizes Lip Gloss styles for the picker UI.
type Theme struct {
	Accent string
	Tabs   TabTheme
	Search SearchTheme
	Title  lipgloss.Style
	Grid   GridTheme
	Footer FooterTheme
	Help   lipgloss.Style
}

// TabTheme styles the category tab bar.
type TabTheme struct {
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Indicator lipgloss.Style
}

// SearchTheme styles the search input row.
type SearchTheme struct {
	Frame       lipgloss.Style
	Placeholder lipgloss.Style
}

// GridTheme styles the emoji grid.
type GridTheme struct {
	Cell     lipgloss.Style
	Selected lipgloss.Style
	NotFound lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// New derives the picker theme from one accent colour.
func New(accent string) Theme {
	c, err := colorful.Hex(accent)
	if err != nil {
		accent = DefaultAccent
		c, _ = colorful.Hex(accent)
	}
	grey, _ := colorful.Hex("#808080")
	muted := c.BlendLab(grey, 0.6).Clamped().Hex()
	soft := c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.75).Clamped().Hex()

	return Theme{
		Accent: accent,
		Tabs: TabTheme{
			Active:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
			Inactive:  lipgloss.NewStyle().Faint(true),
			Indicator: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		},
		Search: SearchTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(muted)).
				Padding(0, 1),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Bold(true),
		Grid: GridTheme{
			Cell:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color(soft)),
			NotFound: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)),
	}
}
