package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitjourney/internal/nav"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		width       int
		mobile      bool
		cardCols    int
		statCols    int
		drawerWidth int
	}{
		{width: 40, mobile: true, cardCols: 1, statCols: 1, drawerWidth: 34},
		{width: 20, mobile: true, cardCols: 1, statCols: 1, drawerWidth: 20},
		{width: 109, mobile: true, cardCols: 1, statCols: 1, drawerWidth: 34},
		{width: 110, mobile: false, cardCols: 2, statCols: 4, drawerWidth: 34},
		{width: 145, mobile: false, cardCols: 2, statCols: 4, drawerWidth: 34},
		{width: 146, mobile: false, cardCols: 3, statCols: 4, drawerWidth: 34},
	}
	for _, tt := range tests {
		l := Layout{Width: tt.width, Height: 24, Breakpoint: 110}
		assert.Equal(t, tt.mobile, l.Mobile(), "width %d", tt.width)
		assert.Equal(t, tt.cardCols, l.CardColumns(), "width %d", tt.width)
		assert.Equal(t, tt.statCols, l.StatColumns(), "width %d", tt.width)
		assert.Equal(t, tt.drawerWidth, l.DrawerWidth(), "width %d", tt.width)
	}
	assert.Equal(t, 1, Layout{Width: 2}.ContentWidth())
}

func TestModeFor(t *testing.T) {
	narrow := Layout{Width: 80, Breakpoint: 110}
	wide := Layout{Width: 120, Breakpoint: 110}

	s := nav.NewState()
	assert.Equal(t, ModeHome, modeFor(s, narrow))
	s.ToggleMobileMenu()
	assert.Equal(t, ModeDrawer, modeFor(s, narrow))
	assert.Equal(t, ModeHome, modeFor(s, wide))
	s.NavigateTo(nav.Workouts)
	assert.Equal(t, ModeSection, modeFor(s, narrow))
	assert.Equal(t, "Drawer", ModeDrawer.String())
}

func TestTarget(t *testing.T) {
	s, ok := NavTarget(nav.Profile).Section()
	assert.True(t, ok)
	assert.Equal(t, nav.Profile, s)

	s, ok = TargetBrand.Section()
	assert.True(t, ok)
	assert.Equal(t, nav.Home, s)

	_, ok = Target("card:settings").Section()
	assert.False(t, ok)
	_, ok = TargetToggle.Section()
	assert.False(t, ok)

	assert.Equal(t, "header", TargetBrand.Source())
	assert.Equal(t, "header", NavTarget(nav.Progress).Source())
	assert.Equal(t, "drawer", DrawerTarget(nav.Progress).Source())
	assert.Equal(t, "card", CardTarget(nav.Progress).Source())
	assert.Equal(t, "backdrop", TargetBackdrop.Source())

	assert.Equal(t, ToggleMobileMenuMsg{Source: "toggle"}, TargetToggle.Msg())
	assert.Equal(t, ToggleMobileMenuMsg{Source: "backdrop"}, TargetBackdrop.Msg())
	assert.Equal(t, NavigateMsg{Section: nav.Nutrition, Source: "drawer"}, DrawerTarget(nav.Nutrition).Msg())
	assert.Nil(t, Target("nav:").Msg())
}

func TestHitMap(t *testing.T) {
	m := HitMap{
		{Target: DrawerTarget(nav.Profile), X: 10, Y: 1, W: 5, H: 1},
		{Target: TargetBackdrop, X: 0, Y: 0, W: 20, H: 10},
	}
	got, ok := m.At(12, 1)
	assert.True(t, ok)
	assert.Equal(t, DrawerTarget(nav.Profile), got, "earlier hotspots win")

	got, ok = m.At(12, 2)
	assert.True(t, ok)
	assert.Equal(t, TargetBackdrop, got)

	_, ok = m.At(20, 0)
	assert.False(t, ok, "right edge is exclusive")

	assert.Equal(t, []string{string(DrawerTarget(nav.Profile))}, m.Focusable())

	withPanel := HitMap{{Target: TargetPanel, X: 0, Y: 0, W: 1, H: 1}, m[0]}
	assert.Equal(t, []string{string(DrawerTarget(nav.Profile))}, withPanel.Focusable())
	assert.Nil(t, TargetPanel.Msg(), "panel clicks do nothing")
}

func TestFocusManager(t *testing.T) {
	var changes []string
	f := &FocusManager{OnChange: func(from, to string) { changes = append(changes, from+">"+to) }}

	assert.Equal(t, "", f.Next(), "no order")
	f.SetOrder([]string{"a", "b", "c"})
	assert.Equal(t, "a", f.Next())
	assert.Equal(t, "b", f.Next())
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next(), "wraps")
	assert.Equal(t, "c", f.Prev(), "wraps back")

	f.Blur()
	assert.Equal(t, "c", f.Prev(), "prev from nothing starts at the end")

	assert.False(t, f.SetFocus("z"))
	assert.True(t, f.SetFocus("b"))

	f.SetOrder([]string{"b", "d"})
	assert.Equal(t, "b", f.Current, "kept while present")
	f.SetOrder([]string{"d"})
	assert.Equal(t, "", f.Current)

	assert.Equal(t, []string{">a", "a>b", "b>c", "c>a", "a>c", "c>", ">c", "c>b", "b>"}, changes)
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	cmd, dismissed := s.Route(keyMsg("j"))
	assert.Nil(t, cmd)
	assert.False(t, dismissed)
	_, ok := s.Top()
	assert.False(t, ok)

	d := &DrawerView{Menu: nav.DefaultMenu(), Current: nav.Progress}
	assert.Nil(t, s.Open(Overlay{View: d, Dismiss: "esc"}))
	assert.Equal(t, 3, d.Cursor, "opening runs Init")

	_, dismissed = s.Route(keyMsg("j"))
	assert.False(t, dismissed)
	assert.Equal(t, 4, d.Cursor)

	_, dismissed = s.Route(keyMsg("esc"))
	assert.True(t, dismissed)
	assert.Equal(t, 1, s.Len(), "closing is left to the caller")

	s.CloseAll()
	assert.Equal(t, 0, s.Len())
}

func TestOverlay_NoDismissKey(t *testing.T) {
	var s OverlayStack
	d := NewDrawerView(nav.DefaultMenu(), nav.Home)
	s.Open(Overlay{View: d})
	_, dismissed := s.Route(keyMsg("esc"))
	assert.False(t, dismissed)
}

func TestStrings(t *testing.T) {
	menu := nav.DefaultMenu()
	nutrition, _ := menu.Lookup(nav.Nutrition)
	profile, _ := menu.Lookup(nav.Profile)
	assert.Equal(t, "2 atualizações pendentes", PendingText(nutrition))
	assert.Equal(t, TextNoPending, PendingText(profile))
	assert.Equal(t, TextNoPending, PendingText(nav.MenuItem{ID: nav.Profile, Notifications: nav.Count(0)}))

	assert.Equal(t, "Seção De Plano Nutricional", SectionHeading("Plano Nutricional"))
	assert.Equal(t, "Seção De Notificações", SectionHeading("Notificações"))
	assert.Equal(t, "Seção De Perfil", SectionHeading("Perfil"))
}

func TestHeaderView_Desktop(t *testing.T) {
	h := HeaderView{Menu: nav.DefaultMenu()}
	l := Layout{Width: 120, Height: 24, Breakpoint: 110}
	out := h.Render(nav.NewState(), l, "")

	lines := strings.Split(out.body, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 120, len([]rune(lines[0])))
	assert.Equal(t, strings.Repeat("─", 120), lines[1])
	assert.NotContains(t, lines[0], nav.IconMenu)

	require.Len(t, out.hits, 1+nav.DefaultMenu().Len())
	assert.Equal(t, TargetBrand, out.hits[0].Target)
	last := out.hits[len(out.hits)-1]
	assert.Equal(t, NavTarget(nav.Notifications), last.Target)
	assert.Equal(t, 120-headerMarginX, last.X+last.W, "nav is right aligned")
}

func TestHeaderView_Mobile(t *testing.T) {
	h := HeaderView{Menu: nav.DefaultMenu()}
	l := Layout{Width: 60, Height: 24, Breakpoint: 110}

	s := nav.NewState()
	out := h.Render(s, l, "")
	line := strings.Split(out.body, "\n")[0]
	assert.Contains(t, line, nav.IconMenu)
	assert.NotContains(t, line, "Perfil")
	require.Len(t, out.hits, 2)
	assert.Equal(t, TargetToggle, out.hits[1].Target)
	assert.Equal(t, nav.IconMenu, strings.TrimSpace(cells(line, out.hits[1].X, out.hits[1].W)))

	s.ToggleMobileMenu()
	out = h.Render(s, l, "")
	assert.Contains(t, strings.Split(out.body, "\n")[0], nav.IconClose)
}

func TestHeaderView_NoBadgeForZeroCount(t *testing.T) {
	menu := nav.NewMenu(
		nav.MenuItem{ID: nav.Profile, Label: "Perfil", Icon: nav.IconProfile},
		nav.MenuItem{ID: nav.Notifications, Label: "Avisos", Icon: nav.IconNotifications, Notifications: nav.Count(0)},
	)
	out := HeaderView{Menu: menu}.Render(nav.NewState(), Layout{Width: 120, Height: 24, Breakpoint: 110}, "")
	line := strings.Split(out.body, "\n")[0]
	assert.True(t, strings.HasSuffix(strings.TrimRight(line, " "), "Avisos"))
	assert.NotContains(t, line, " 0 ")
}

func TestDrawerView_Cursor(t *testing.T) {
	d := NewDrawerView(nav.DefaultMenu(), nav.Home)
	assert.Equal(t, 0, d.Cursor, "home is not in the menu")

	d.Update(keyMsg("k"))
	assert.Equal(t, 0, d.Cursor)
	for range 10 {
		d.Update(keyMsg("down"))
	}
	assert.Equal(t, 4, d.Cursor)

	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Section: nav.Notifications, Source: "drawer"}, cmd())

	_, cmd = d.Update(tea.WindowSizeMsg{})
	assert.Nil(t, cmd)
}

func TestDrawerView_Render(t *testing.T) {
	d := NewDrawerView(nav.DefaultMenu(), nav.Workouts)
	d.Resize(Layout{Width: 80, Height: 30, Breakpoint: 110}, 20)
	out := d.Render()

	lines := strings.Split(out.body, "\n")
	assert.Len(t, lines, 20)
	require.Len(t, out.hits, 7)
	panel := out.hits[5]
	assert.Equal(t, TargetPanel, panel.Target)
	assert.Equal(t, Hotspot{Target: TargetPanel, X: 46, Y: 0, W: 34, H: 7}, panel, "padding rows included")
	assert.Equal(t, TargetBackdrop, out.hits[6].Target)
	assert.Equal(t, 20, out.hits[6].H)
	for i, h := range out.hits[:5] {
		assert.Equal(t, 80-34, h.X)
		assert.Equal(t, 34, h.W)
		assert.Equal(t, 1+i, h.Y)
	}
	assert.Equal(t, strings.Repeat(" ", 46), cells(lines[1], 0, 46), "backdrop left of the panel")
}

func TestContentView_Home(t *testing.T) {
	c := ContentView{Menu: nav.DefaultMenu()}
	out := c.Render(nav.NewState(), Layout{Width: 120, Height: 40, Breakpoint: 110}, "")

	assert.Contains(t, out.body, TextWelcome)
	assert.Contains(t, out.body, TextWeeklySummary)
	for _, s := range nav.WeeklySummary() {
		assert.Contains(t, out.body, s.Label)
		assert.Contains(t, out.body, s.Value)
	}
	for _, item := range nav.DefaultMenu().Items() {
		assert.Contains(t, out.body, item.Label)
		assert.Contains(t, out.body, PendingText(item))
	}

	require.Len(t, out.hits, 5)
	assert.Equal(t, out.hits[0].Y, out.hits[1].Y, "two columns")
	assert.Greater(t, out.hits[2].Y, out.hits[0].Y)
	assert.Equal(t, contentPadX, out.hits[0].X)
	assert.Equal(t, 4, out.hits[0].H)
}

func TestContentView_Section(t *testing.T) {
	c := ContentView{Menu: nav.DefaultMenu()}
	s := nav.NewState()
	s.NavigateTo(nav.Nutrition)
	out := c.Render(s, Layout{Width: 80, Height: 24, Breakpoint: 110}, "")

	assert.Contains(t, out.body, "Seção De Plano Nutricional")
	assert.Contains(t, out.body, TextPlaceholderBody)
	assert.NotContains(t, out.body, TextWelcome)
	assert.Empty(t, out.hits)
}

func TestContentView_FocusedCardStyle(t *testing.T) {
	c := ContentView{Menu: nav.DefaultMenu()}
	l := Layout{Width: 80, Height: 24, Breakpoint: 110}
	plain := c.Render(nav.NewState(), l, "")
	focused := c.Render(nav.NewState(), l, CardTarget(nav.Profile))
	assert.Equal(t, plain.hits, focused.hits, "focus does not move hotspots")
}

func TestLayout_NarrowerThanInlineNav(t *testing.T) {
	h := HeaderView{Menu: nav.DefaultMenu()}
	need := h.InlineWidth()

	l := Layout{Width: need - 1, Height: 24, Breakpoint: 60, NavWidth: need}
	assert.True(t, l.Mobile(), "above the breakpoint but the nav does not fit")
	assert.Equal(t, 1, l.CardColumns())

	l.Width = need
	assert.False(t, l.Mobile())
	out := h.Render(nav.NewState(), l, "")
	line := strings.Split(out.body, "\n")[0]
	assert.Equal(t, need, len([]rune(line)), "inline nav fills the row exactly")
	assert.Equal(t, headerMarginX, out.hits[0].X)
	last := out.hits[len(out.hits)-1]
	assert.Equal(t, need-headerMarginX, last.X+last.W)
}

func TestHeaderView_MobileBrandTruncated(t *testing.T) {
	h := HeaderView{Menu: nav.DefaultMenu()}
	for _, width := range []int{12, 16, 20, 40} {
		l := Layout{Width: width, Height: 24, Breakpoint: 110}
		out := h.Render(nav.NewState(), l, "")
		line := strings.Split(out.body, "\n")[0]
		assert.Equal(t, width, len([]rune(line)), "width %d", width)
		for _, hs := range out.hits {
			assert.LessOrEqual(t, hs.X+hs.W, width, "%s at width %d", hs.Target, width)
		}
	}

	out := h.Render(nav.NewState(), Layout{Width: 12, Height: 24, Breakpoint: 110}, "")
	assert.Contains(t, out.body, "⌂ F…")
	out = h.Render(nav.NewState(), Layout{Width: 40, Height: 24, Breakpoint: 110}, "")
	assert.Contains(t, out.body, TextBrand)
}

func TestContentView_ExactlyFourStatTiles(t *testing.T) {
	c := ContentView{Menu: nav.DefaultMenu()}
	for _, width := range []int{80, 120} {
		out := c.Render(nav.NewState(), Layout{Width: width, Height: 40, Breakpoint: 110}, "")
		stats := nav.WeeklySummary()
		require.Len(t, stats, 4)
		for _, s := range stats {
			assert.Equal(t, 1, strings.Count(out.body, s.Label), "width %d", width)
			assert.Equal(t, 1, strings.Count(out.body, s.Value), "width %d", width)
		}
		for _, v := range []string{"4/5", "2.100", "2.5L", "75kg"} {
			assert.Contains(t, out.body, v)
		}
	}

	// Desktop puts the four tiles side by side on one row.
	out := c.Render(nav.NewState(), Layout{Width: 120, Height: 40, Breakpoint: 110}, "")
	for _, line := range strings.Split(out.body, "\n") {
		if strings.Contains(line, "4/5") {
			assert.Contains(t, line, "2.100")
			assert.Contains(t, line, "2.5L")
			assert.Contains(t, line, "75kg")
		}
	}
}

func TestZeroCount_NoBadgeAnywhere(t *testing.T) {
	menu := nav.NewMenu(
		nav.MenuItem{ID: nav.Notifications, Label: "Avisos", Icon: nav.IconNotifications, Notifications: nav.Count(0)},
	)

	d := NewDrawerView(menu, nav.Home)
	d.Resize(Layout{Width: 80, Height: 24, Breakpoint: 110}, 10)
	out := d.Render()
	row := strings.Split(out.body, "\n")[out.hits[0].Y]
	assert.Contains(t, row, "Avisos")
	assert.NotContains(t, row, "0")
	assert.True(t, strings.HasSuffix(strings.TrimRight(row, " "), nav.IconChevron))

	home := ContentView{Menu: menu}.Render(nav.NewState(), Layout{Width: 120, Height: 40, Breakpoint: 110}, "")
	require.Len(t, home.hits, 1)
	assert.Contains(t, home.body, TextNoPending)
	assert.NotContains(t, home.body, "0 atualizações")
}
