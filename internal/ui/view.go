package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition for interactive regions that keep their
// own input state (the mobile drawer). Stateless regions render directly
// from nav.State instead.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
