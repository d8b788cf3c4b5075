package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fitjourney/internal/nav"
	"fitjourney/internal/ui/textutil"
)

// ContentView renders the main area: the home dashboard, or the placeholder
// panel of any other section.
type ContentView struct {
	Menu nav.Menu
}

// Render draws the content for state. Hotspots are relative to the top-left
// of the content (before scrolling).
func (c ContentView) Render(state nav.State, l Layout, focus Target) rendered {
	if state.OnHome() {
		return c.renderHome(l, focus)
	}
	return c.renderSection(state.Current, l)
}

// block accumulates vertically stacked, left-padded content and tracks the
// current row so hotspots can be placed.
type block struct {
	lines []string
	hits  HitMap
}

func (b *block) add(s string) {
	pad := strings.Repeat(" ", contentPadX)
	for _, line := range strings.Split(s, "\n") {
		b.lines = append(b.lines, pad+line)
	}
}

func (b *block) row() int { return len(b.lines) }

func (c ContentView) renderHome(l Layout, focus Target) rendered {
	var b block
	b.add("")
	b.add(Styles.Title.Render(TextWelcome))
	b.add("")

	cols := l.CardColumns()
	items := c.Menu.Items()
	cardWidth := (l.ContentWidth() - (cols - 1)) / cols
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		var cells []string
		x := contentPadX
		y := b.row()
		for _, item := range items[start:end] {
			cell := c.card(item, cardWidth, focus == CardTarget(item.ID))
			w, h := lipgloss.Size(cell)
			b.hits = append(b.hits, Hotspot{Target: CardTarget(item.ID), X: x, Y: y, W: w, H: h})
			cells = append(cells, cell)
			x += w + 1
		}
		b.add(joinCells(cells))
	}

	b.add("")
	b.add(c.weeklySummary(l))
	b.add("")
	return rendered{body: strings.Join(b.lines, "\n"), hits: b.hits}
}

// card renders one dashboard entry: icon, label, pending text, chevron.
func (c ContentView) card(item nav.MenuItem, width int, focused bool) string {
	style := Styles.Card
	if focused {
		style = Styles.CardFocused
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}
	icon := Styles.CardIcon.Render(item.Icon)
	chevron := Styles.Muted.Render(nav.IconChevron)
	textWidth := inner - textutil.Width(icon) - textutil.Width(chevron) - 2

	title := Styles.CardLabel.Render(textutil.Truncate(item.Label, textWidth))
	sub := Styles.Muted.Render(textutil.Truncate(PendingText(item), textWidth))

	line1 := textutil.JoinEnds(icon+" "+title, chevron, inner)
	line2 := strings.Repeat(" ", textutil.Width(icon)+1) + sub
	return style.Width(width - style.GetBorderLeftSize() - style.GetBorderRightSize()).Render(line1 + "\n" + line2)
}

// weeklySummary renders the static statistics block.
func (c ContentView) weeklySummary(l Layout) string {
	box := Styles.StatsBox
	inner := l.ContentWidth() - box.GetHorizontalFrameSize()
	cols := l.StatColumns()
	tileWidth := (inner - (cols - 1)) / cols
	if tileWidth < 1 {
		tileWidth = 1
	}

	stats := nav.WeeklySummary()
	var rows []string
	for start := 0; start < len(stats); start += cols {
		end := min(start+cols, len(stats))
		var cells []string
		for _, s := range stats[start:end] {
			cells = append(cells, statTile(s, tileWidth))
		}
		rows = append(rows, joinCells(cells))
	}

	body := Styles.Heading.Render(TextWeeklySummary) + "\n\n" + strings.Join(rows, "\n")
	return box.Width(l.ContentWidth() - box.GetBorderLeftSize() - box.GetBorderRightSize()).Render(body)
}

func statTile(s nav.Stat, width int) string {
	inner := width - Styles.StatTile.GetHorizontalFrameSize()
	label := Styles.StatLabel.Render(textutil.PadRight(s.Label, inner))
	value := Styles.StatValue.Render(textutil.PadRight(s.Value, inner))
	return Styles.StatTile.Width(width).Render(label + "\n" + value)
}

func (c ContentView) renderSection(s nav.Section, l Layout) rendered {
	var b block
	w := l.ContentWidth()
	b.add("")
	b.add(textutil.Center(Styles.Heading.Render(SectionHeading(c.Menu.Label(s))), w))
	b.add("")
	b.add(textutil.Center(Styles.Muted.Render(TextPlaceholderBody), w))
	return rendered{body: strings.Join(b.lines, "\n")}
}

// joinCells places cells side by side with a one-column gutter.
func joinCells(cells []string) string {
	parts := make([]string, 0, 2*len(cells))
	for i, cell := range cells {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
