package tui

import "github.com/charmbracelet/lipgloss"

// ThemeName selects a color palette. It is part of the studio's state;
// every style is derived from it at render time.
type ThemeName string

const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// ParseTheme returns the named theme, defaulting to dark.
func ParseTheme(s string) ThemeName {
	if ThemeName(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Next returns the other theme.
func (t ThemeName) Next() ThemeName {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type palette struct {
	accent, text, muted, faint, border, success, failure, tabBg string
}

var palettes = map[ThemeName]palette{
	ThemeDark: {
		accent: "205", text: "252", muted: "245", faint: "240",
		border: "238", success: "28", failure: "196", tabBg: "236",
	},
	ThemeLight: {
		accent: "125", text: "235", muted: "241", faint: "246",
		border: "250", success: "22", failure: "160", tabBg: "254",
	},
}

// Styles is the full set of lipgloss styles for one theme.
type Styles struct {
	Title        lipgloss.Style
	ActiveTab    lipgloss.Style
	InactiveTab  lipgloss.Style
	TabBar       lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Prompt       lipgloss.Style
	Field        lipgloss.Style
	FocusedField lipgloss.Style
	Option       lipgloss.Style
	Suggestion   lipgloss.Style
	Preview      lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Hint         lipgloss.Style
}

// NewStyles derives the styles for theme t.
func NewStyles(t ThemeName) Styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[ThemeDark]
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)).
			Background(lipgloss.Color(p.tabBg)).
			Padding(0, 2),

		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 2),

		TabBar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(p.border)),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),

		FocusedLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Bold(true),

		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),

		FocusedField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(0, 1),

		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)).
			Bold(true),

		Suggestion: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.faint)).
			Italic(true),

		Preview: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.failure)).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.faint)),
	}
}
