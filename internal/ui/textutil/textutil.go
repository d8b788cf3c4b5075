// Package textutil provides unicode-aware text fitting for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. ANSI sequences
// from lipgloss styling are ignored.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens unstyled text to at most maxWidth columns, ending with an
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads unstyled text with spaces to exactly width columns,
// truncating it first if it is wider.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// Center pads s on both sides to width columns. Extra space goes right.
func Center(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// JoinEnds places left and right (either may be styled) at the two ends of
// a line width columns wide. If they do not fit, they are separated by one space.
func JoinEnds(left, right string, width int) string {
	gap := width - Width(left) - Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
