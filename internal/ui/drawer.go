package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitjourney/internal/nav"
	"fitjourney/internal/ui/textutil"
)

// DrawerView is the mobile navigation panel. It slides in from the right
// under the header; everything else below the header is backdrop.
type DrawerView struct {
	Menu    nav.Menu
	Current nav.Section
	Cursor  int

	layout Layout
	height int
}

// Ensure DrawerView implements View.
var _ View = (*DrawerView)(nil)

// NewDrawerView creates a drawer with the cursor on the current section.
func NewDrawerView(menu nav.Menu, current nav.Section) *DrawerView {
	d := &DrawerView{
		Menu:    menu,
		Current: current,
		layout:  Layout{Width: defaultWidth, Height: defaultHeight, Breakpoint: defaultWidth + 1},
		height:  menu.Len() + 2,
	}
	d.Init()
	return d
}

// Resize sets the geometry the drawer renders into. height is the number of
// rows below the header.
func (d *DrawerView) Resize(l Layout, height int) {
	d.layout = l
	d.height = height
}

// Init implements View. The drawer opens with the cursor on the current
// section.
func (d *DrawerView) Init() tea.Cmd {
	d.Cursor = 0
	for i, it := range d.Menu.Items() {
		if it.ID == d.Current {
			d.Cursor = i
		}
	}
	return nil
}

// Update implements View. Esc is handled by the overlay's dismiss key.
func (d *DrawerView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch km.String() {
	case "up", "k", "shift+tab":
		if d.Cursor > 0 {
			d.Cursor--
		}
	case "down", "j", "tab":
		if d.Cursor < d.Menu.Len()-1 {
			d.Cursor++
		}
	case "enter":
		item, ok := d.Menu.At(d.Cursor)
		if !ok {
			return d, nil
		}
		return d, func() tea.Msg {
			return NavigateMsg{Section: item.ID, Source: "drawer"}
		}
	}
	return d, nil
}

// View implements View.
func (d *DrawerView) View() string {
	return d.Render().body
}

// Render draws the panel right-aligned over a blank backdrop. Hotspots are
// relative to the first row below the header: entries, then the panel
// itself, then the backdrop.
func (d *DrawerView) Render() rendered {
	l := d.layout
	pw := l.DrawerWidth()
	inner := pw - Styles.Drawer.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	panelX := l.Width - pw

	var rows []string
	var hits HitMap
	top := Styles.Drawer.GetPaddingTop() + Styles.Drawer.GetBorderTopSize()
	for i, item := range d.Menu.Items() {
		rows = append(rows, d.row(item, i, inner))
		hits = append(hits, Hotspot{Target: DrawerTarget(item.ID), X: panelX, Y: top + i, W: pw, H: 1})
	}
	panel := Styles.Drawer.Width(pw - Styles.Drawer.GetBorderLeftSize()).Render(strings.Join(rows, "\n"))

	lines := strings.Split(panel, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(l.Width, lipgloss.Right, line)
	}
	for len(lines) < d.height {
		lines = append(lines, strings.Repeat(" ", l.Width))
	}

	height := max(d.height, len(lines))
	hits = append(hits,
		Hotspot{Target: TargetPanel, X: panelX, Y: 0, W: pw, H: lipgloss.Height(panel)},
		Hotspot{Target: TargetBackdrop, X: 0, Y: 0, W: l.Width, H: height},
	)
	return rendered{body: strings.Join(lines, "\n"), hits: hits}
}

func (d *DrawerView) row(item nav.MenuItem, i, width int) string {
	right := nav.IconChevron
	if item.HasBadge() {
		right = Badge(item) + " " + right
	}
	labelWidth := width - textutil.Width(right) - textutil.Width(item.Icon) - 2
	left := item.Icon + " " + textutil.Truncate(item.Label, labelWidth)

	style := Styles.DrawerItem
	if item.ID == d.Current {
		style = Styles.DrawerActive
	}
	if i == d.Cursor {
		style = style.Inherit(Styles.DrawerCursor)
	}
	return style.Render(textutil.JoinEnds(left, right, width))
}
