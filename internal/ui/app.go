package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"fitjourney/internal/config"
	"fitjourney/internal/logger"
	"fitjourney/internal/nav"
	"fitjourney/internal/trace"
)

// AppModel is the root of the shell. It owns nav.State exclusively; the
// header, drawer and content only read it and request changes through
// NavigateMsg and ToggleMobileMenuMsg.
type AppModel struct {
	State      nav.State
	Menu       nav.Menu
	Header     HeaderView
	Content    ContentView
	Overlays   OverlayStack
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Recorder   *trace.Recorder
	Log        logrus.FieldLogger

	breakpoint int
	navWidth   int
	width      int
	height     int
	viewport   viewport.Model

	// Cached output of the last refresh.
	headerBody   string
	headerHits   HitMap
	headerHeight int
	bodyHeight   int
	drawerBody   string
	bodyHits     HitMap
	footer       string
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.SetWindowTitle(TextBrand)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.handle(msg)
	a.refresh()
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.viewport.View()
	if a.drawerVisible() {
		body = a.drawerBody
	}
	return a.headerBody + "\n" + body + "\n" + a.footer
}

func (a *AppModel) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return nil
	case NavigateMsg:
		return a.navigate(msg)
	case ToggleMobileMenuMsg:
		return a.toggleMobileMenu(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	}
	return nil
}

// navigate applies NavigateMsg: select the section, close the menu.
func (a *AppModel) navigate(msg NavigateMsg) tea.Cmd {
	if !msg.Section.Valid() {
		a.Log.WithField("section", msg.Section).Warn("ignoring navigation to unknown section")
		return nil
	}
	wasOpen := a.State.MobileMenuOpen
	from := a.State.NavigateTo(msg.Section)
	cmd := a.syncDrawer()
	a.viewport.GotoTop()

	a.Log.WithFields(logrus.Fields{
		"from":   from,
		"to":     msg.Section,
		"source": msg.Source,
	}).Info("navigate")
	a.Recorder.Navigate(context.Background(), from, msg.Section, wasOpen, msg.Source)
	return cmd
}

func (a *AppModel) toggleMobileMenu(msg ToggleMobileMenuMsg) tea.Cmd {
	open := a.State.ToggleMobileMenu()
	cmd := a.syncDrawer()

	a.Log.WithFields(logrus.Fields{
		"open":   open,
		"source": msg.Source,
	}).Debug("toggle mobile menu")
	a.Recorder.ToggleMobileMenu(context.Background(), open, msg.Source)
	return cmd
}

// syncDrawer keeps the overlay stack in line with State.MobileMenuOpen.
func (a *AppModel) syncDrawer() tea.Cmd {
	if !a.State.MobileMenuOpen {
		a.Overlays.CloseAll()
		return nil
	}
	if a.Overlays.Len() > 0 {
		return nil
	}
	return a.Overlays.Open(Overlay{View: NewDrawerView(a.Menu, a.State.Current), Dismiss: "esc"})
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}

	if a.drawerVisible() {
		cmd, dismissed := a.Overlays.Route(msg)
		if dismissed {
			return a.handle(ToggleMobileMenuMsg{Source: "esc"})
		}
		return cmd
	}

	switch msg.String() {
	case "tab":
		a.Focus.Next()
		return nil
	case "shift+tab":
		a.Focus.Prev()
		return nil
	case "esc":
		a.Focus.Blur()
		return nil
	case "enter":
		return a.activate(Target(a.Focus.Current))
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if a.drawerVisible() {
			return nil
		}
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	case tea.MouseButtonLeft:
		if t, ok := a.hitTest(msg.X, msg.Y); ok {
			a.Focus.SetFocus(string(t))
			return a.activate(t)
		}
	}
	return nil
}

// activate performs the click action of t.
func (a *AppModel) activate(t Target) tea.Cmd {
	if t == "" {
		return nil
	}
	if m := t.Msg(); m != nil {
		return a.handle(m)
	}
	return nil
}

// hitTest maps a screen cell to the target under it.
func (a *AppModel) hitTest(x, y int) (Target, bool) {
	if t, ok := a.headerHits.At(x, y); ok {
		return t, true
	}
	y -= a.headerHeight
	if y < 0 || y >= a.bodyHeight {
		return "", false
	}
	if a.drawerVisible() {
		return a.bodyHits.At(x, y)
	}
	return a.bodyHits.At(x, y+a.viewport.YOffset)
}

func (a *AppModel) layout() Layout {
	l := Layout{Width: a.width, Height: a.height, Breakpoint: a.breakpoint, NavWidth: a.navWidth}
	if l.Width <= 0 {
		l.Width = defaultWidth
	}
	if l.Height <= 0 {
		l.Height = defaultHeight
	}
	return l
}

// drawer returns the open drawer overlay, if any.
func (a *AppModel) drawer() (*DrawerView, bool) {
	top, ok := a.Overlays.Top()
	if !ok {
		return nil, false
	}
	d, ok := top.View.(*DrawerView)
	return d, ok
}

// drawerVisible reports whether the drawer is on screen: the menu is open
// and the layout is narrow.
func (a *AppModel) drawerVisible() bool {
	if !a.State.MobileMenuOpen || !a.layout().Mobile() {
		return false
	}
	_, ok := a.drawer()
	return ok
}

// Mode returns the current AppMode.
func (a *AppModel) Mode() AppMode {
	return modeFor(a.State, a.layout())
}

// refresh re-renders every region from state and rebuilds the hit map and
// focus order. Called after each update.
func (a *AppModel) refresh() {
	l := a.layout()
	a.footer = renderFooter(a.KeyHandler, a.Mode(), l.Width)
	focus := Target(a.Focus.Current)

	hdr := a.Header.Render(a.State, l, focus)
	a.headerBody, a.headerHits = hdr.body, hdr.hits
	a.headerHeight = lipgloss.Height(hdr.body)
	a.bodyHeight = max(l.Height-a.headerHeight-lipgloss.Height(a.footer), 1)

	order := a.headerHits.Focusable()
	if d, ok := a.drawer(); ok && a.drawerVisible() {
		d.Current = a.State.Current
		d.Resize(l, a.bodyHeight)
		body := d.Render()
		a.drawerBody, a.bodyHits = body.body, body.hits
	} else {
		body := a.Content.Render(a.State, l, focus)
		a.viewport.Width = l.Width
		a.viewport.Height = a.bodyHeight
		a.viewport.SetContent(body.body)
		a.drawerBody, a.bodyHits = "", body.hits
		order = append(order, a.bodyHits.Focusable()...)
	}
	a.Focus.SetOrder(order)
}

// ScreenLines returns the last rendered frame split into lines. Used by tests
// and debugging output.
func (a *AppModel) ScreenLines() []string {
	return strings.Split((&appModelAdapter{AppModel: a}).View(), "\n")
}

// NewAppModel creates the root application model.
func NewAppModel(cfg config.UIConfig, log logrus.FieldLogger, rec *trace.Recorder) *AppModel {
	if log == nil {
		log = logger.Discard()
	}
	menu := nav.DefaultMenu()
	reg := NewKeybindRegistry()
	registerShellBindings(reg, menu)

	m := &AppModel{
		State:      nav.NewState(),
		Menu:       menu,
		Header:     HeaderView{Menu: menu},
		Content:    ContentView{Menu: menu},
		Focus:      &FocusManager{},
		KeyHandler: NewKeyHandler(reg),
		Recorder:   rec,
		Log:        logger.WithComponent(log, "ui"),
		breakpoint: cfg.Breakpoint,
		viewport:   viewport.New(defaultWidth, defaultHeight),
	}
	if m.breakpoint <= 0 {
		m.breakpoint = 110
	}
	m.navWidth = m.Header.InlineWidth()
	m.Focus.OnChange = func(from, to string) {
		m.Log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("focus")
	}
	m.refresh()
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
