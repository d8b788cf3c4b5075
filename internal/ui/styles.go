package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the shell
const (
	ColorAccent  = "33"  // Blue - brand hover, active nav, card icons
	ColorActive  = "17"  // Deep blue - active nav background
	ColorBadge   = "160" // Red - pending-count badges
	ColorOnBadge = "231" // White - badge text
	ColorText    = "252" // Light gray - for normal text
	ColorHeading = "255" // Near white - titles
	ColorMuted   = "243" // Gray - for dimmed text, hints
	ColorBorder  = "238" // Dark gray - dividers, card borders
	ColorTile    = "235" // Stat tile background
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Header
	Brand     lipgloss.Style // Brand/home button
	Nav       lipgloss.Style // Inline nav button
	NavActive lipgloss.Style // Inline nav button for the current section
	Toggle    lipgloss.Style // Mobile menu toggle
	Divider   lipgloss.Style // Header bottom rule
	Badge     lipgloss.Style // Pending-count badge

	// Drawer
	Drawer       lipgloss.Style // Slide-in panel
	DrawerItem   lipgloss.Style
	DrawerActive lipgloss.Style
	DrawerCursor lipgloss.Style

	// Content
	Title       lipgloss.Style // Page title
	Heading     lipgloss.Style // Section heading
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardIcon    lipgloss.Style
	CardLabel   lipgloss.Style
	StatsBox    lipgloss.Style
	StatTile    lipgloss.Style
	StatLabel   lipgloss.Style
	StatValue   lipgloss.Style

	// Text styles
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Focused  lipgloss.Style // Applied on top of a control that has keyboard focus
	HelpBox  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHeading)).
		Padding(0, 1),
	Nav: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorActive)).
		Bold(true).
		Padding(0, 1),
	Toggle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOnBadge)).
		Background(lipgloss.Color(ColorBadge)).
		Bold(true).
		Padding(0, 1),

	Drawer: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 1),
	DrawerItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	DrawerActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorActive)).
		Bold(true),
	DrawerCursor: lipgloss.NewStyle().
		Underline(true),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHeading)),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHeading)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	CardFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	CardIcon: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	CardLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHeading)),
	StatsBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	StatTile: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorTile)).
		Padding(0, 1),
	StatLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	StatValue: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHeading)),

	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Focused: lipgloss.NewStyle().
		Underline(true),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// withFocus layers the focus style over s when focused.
func withFocus(s lipgloss.Style, focused bool) lipgloss.Style {
	if !focused {
		return s
	}
	return s.Inherit(Styles.Focused)
}
