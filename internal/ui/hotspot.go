package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fitjourney/internal/nav"
)

// Target names a clickable control.
type Target string

const (
	TargetBrand    Target = "brand"
	TargetToggle   Target = "toggle"
	TargetBackdrop Target = "backdrop"
	TargetPanel    Target = "panel" // drawer chrome; absorbs clicks
)

const (
	prefixNav    = "nav:"
	prefixDrawer = "drawer:"
	prefixCard   = "card:"
)

// NavTarget is the header button for s.
func NavTarget(s nav.Section) Target { return Target(prefixNav + string(s)) }

// DrawerTarget is the drawer entry for s.
func DrawerTarget(s nav.Section) Target { return Target(prefixDrawer + string(s)) }

// CardTarget is the dashboard card for s.
func CardTarget(s nav.Section) Target { return Target(prefixCard + string(s)) }

// Section returns the section a navigation target points at.
func (t Target) Section() (nav.Section, bool) {
	if t == TargetBrand {
		return nav.Home, true
	}
	for _, p := range []string{prefixNav, prefixDrawer, prefixCard} {
		if rest, ok := strings.CutPrefix(string(t), p); ok {
			s := nav.Section(rest)
			return s, s.Valid()
		}
	}
	return "", false
}

// Source names the kind of control for logs and spans.
func (t Target) Source() string {
	switch {
	case t == TargetBrand, strings.HasPrefix(string(t), prefixNav):
		return "header"
	case strings.HasPrefix(string(t), prefixDrawer):
		return "drawer"
	case strings.HasPrefix(string(t), prefixCard):
		return "card"
	default:
		return string(t)
	}
}

// Msg returns the message activating t produces, or nil for the panel and
// unknown targets.
func (t Target) Msg() tea.Msg {
	switch t {
	case TargetToggle, TargetBackdrop:
		return ToggleMobileMenuMsg{Source: string(t)}
	}
	if s, ok := t.Section(); ok {
		return NavigateMsg{Section: s, Source: t.Source()}
	}
	return nil
}

// Hotspot is a rectangular clickable region in cell coordinates.
type Hotspot struct {
	Target Target
	X, Y   int
	W, H   int
}

// Contains reports whether cell (x, y) lies inside the region.
func (h Hotspot) Contains(x, y int) bool {
	return x >= h.X && x < h.X+h.W && y >= h.Y && y < h.Y+h.H
}

// HitMap is the set of clickable regions of one render, in priority order.
type HitMap []Hotspot

// At returns the first target containing (x, y).
func (m HitMap) At(x, y int) (Target, bool) {
	for _, h := range m {
		if h.Contains(x, y) {
			return h.Target, true
		}
	}
	return "", false
}

// Focusable returns the targets keyboard focus can visit, in order.
// The backdrop and drawer panel are click-only.
func (m HitMap) Focusable() []string {
	out := make([]string, 0, len(m))
	for _, h := range m {
		if h.Target == TargetBackdrop || h.Target == TargetPanel {
			continue
		}
		out = append(out, string(h.Target))
	}
	return out
}

// rendered is the output of a stateless region: its text and its hotspots
// relative to the region's top-left cell.
type rendered struct {
	body string
	hits HitMap
}
