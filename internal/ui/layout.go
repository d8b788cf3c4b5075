package ui

// Default terminal size assumed before the first tea.WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// contentPadX is the horizontal margin around the main content.
const contentPadX = 2

// drawerWidth is the preferred width of the mobile drawer panel.
const drawerWidth = 34

// Layout captures the terminal geometry a render is made for.
type Layout struct {
	Width      int
	Height     int
	Breakpoint int // below this width the mobile layout is used
	NavWidth   int // columns the inline header nav needs; 0 when unknown
}

// Mobile reports whether the narrow layout applies: inline nav hidden,
// menu toggle and drawer available. A terminal too narrow for the inline nav
// is mobile whatever the breakpoint.
func (l Layout) Mobile() bool {
	return l.Width < l.Breakpoint || l.Width < l.NavWidth
}

// wide is the threshold for the three-column card grid.
func (l Layout) wide() bool {
	return l.Width >= l.Breakpoint*4/3
}

// ContentWidth is the usable width inside the content margins.
func (l Layout) ContentWidth() int {
	w := l.Width - 2*contentPadX
	if w < 1 {
		return 1
	}
	return w
}

// CardColumns is the number of dashboard card columns.
func (l Layout) CardColumns() int {
	switch {
	case l.Mobile():
		return 1
	case l.wide():
		return 3
	default:
		return 2
	}
}

// StatColumns is the number of weekly summary tiles per row.
func (l Layout) StatColumns() int {
	if l.Mobile() {
		return 1
	}
	return 4
}

// DrawerWidth is the panel width, bounded by the terminal.
func (l Layout) DrawerWidth() int {
	if l.Width < drawerWidth {
		return l.Width
	}
	return drawerWidth
}
