package ui

import (
	"strconv"
	"strings"

	"fitjourney/internal/nav"
	"fitjourney/internal/ui/textutil"
)

// headerMarginX is the blank column at each end of the header bar.
const headerMarginX = 1

// HeaderView renders the top bar: brand button, inline nav (desktop) or the
// menu toggle (mobile), and a divider rule.
type HeaderView struct {
	Menu nav.Menu
}

// InlineWidth is the number of columns the desktop header needs: brand,
// every nav button with its badge, gaps and margins.
func (h HeaderView) InlineWidth() int {
	w := 2*headerMarginX + textutil.Width(h.brand(brandText(), false)) + 1
	for i, item := range h.Menu.Items() {
		if i > 0 {
			w++
		}
		w += textutil.Width(h.navButton(item, false, false))
	}
	return w
}

// Render draws the header for state. Hotspots are relative to the top-left
// of the header.
func (h HeaderView) Render(state nav.State, l Layout, focus Target) rendered {
	var right string
	var hits HitMap
	var brand string

	if l.Mobile() {
		icon := nav.IconMenu
		if state.MobileMenuOpen {
			icon = nav.IconClose
		}
		right = withFocus(Styles.Toggle, focus == TargetToggle).Render(icon)
		tw := textutil.Width(right)

		room := l.Width - 2*headerMarginX - tw - 1 - Styles.Brand.GetHorizontalFrameSize()
		brand = h.brand(textutil.Truncate(brandText(), room), focus == TargetBrand)
		hits = append(hits, Hotspot{Target: TargetToggle, X: l.Width - headerMarginX - tw, Y: 0, W: tw, H: 1})
	} else {
		brand = h.brand(brandText(), focus == TargetBrand)
		buttons := make([]string, 0, h.Menu.Len())
		x := l.Width - headerMarginX
		for _, item := range h.Menu.Items() {
			b := h.navButton(item, state.Current == item.ID, focus == NavTarget(item.ID))
			buttons = append(buttons, b)
			x -= textutil.Width(b) + 1
		}
		right = strings.Join(buttons, " ")
		x++
		for i, item := range h.Menu.Items() {
			w := textutil.Width(buttons[i])
			hits = append(hits, Hotspot{Target: NavTarget(item.ID), X: x, Y: 0, W: w, H: 1})
			x += w + 1
		}
	}
	hits = append(HitMap{{Target: TargetBrand, X: headerMarginX, Y: 0, W: textutil.Width(brand), H: 1}}, hits...)

	left := strings.Repeat(" ", headerMarginX) + brand
	line := textutil.JoinEnds(left, right+strings.Repeat(" ", headerMarginX), l.Width)
	rule := Styles.Divider.Render(strings.Repeat("─", l.Width))
	return rendered{body: line + "\n" + rule, hits: hits}
}

func brandText() string {
	return nav.IconHome + " " + TextBrand
}

func (h HeaderView) brand(text string, focused bool) string {
	return withFocus(Styles.Brand, focused).Render(text)
}

// navButton renders one inline nav entry: icon, label and optional badge.
func (h HeaderView) navButton(item nav.MenuItem, active, focused bool) string {
	style := Styles.Nav
	if active {
		style = Styles.NavActive
	}
	text := item.Icon + " " + item.Label
	if item.HasBadge() {
		text += " " + Badge(item)
	}
	return withFocus(style, focused).Render(text)
}

// Badge renders the pending-count indicator for item, or "" when the item
// has no badge.
func Badge(item nav.MenuItem) string {
	if !item.HasBadge() {
		return ""
	}
	return Styles.Badge.Render(strconv.Itoa(item.PendingCount()))
}
