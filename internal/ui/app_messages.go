package ui

import "fitjourney/internal/nav"

// NavigateMsg selects a section and closes the mobile menu.
type NavigateMsg struct {
	Section nav.Section
	Source  string // control that fired it: header, drawer, card, key
}

// ToggleMobileMenuMsg flips the mobile menu.
type ToggleMobileMenuMsg struct {
	Source string
}
