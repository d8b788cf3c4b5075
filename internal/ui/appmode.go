package ui

import "fitjourney/internal/nav"

// AppMode is what the shell currently shows; keybind hints are filtered by it.
type AppMode int

const (
	ModeHome AppMode = iota
	ModeSection
	ModeDrawer
)

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeSection:
		return "Section"
	case ModeDrawer:
		return "Drawer"
	default:
		return "Unknown"
	}
}

// modeFor derives the mode from state and layout. The drawer only counts
// when it is actually visible.
func modeFor(s nav.State, l Layout) AppMode {
	if s.MobileMenuOpen && l.Mobile() {
		return ModeDrawer
	}
	if s.OnHome() {
		return ModeHome
	}
	return ModeSection
}
