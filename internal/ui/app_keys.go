package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"fitjourney/internal/nav"
)

// sectionKeys are the keys after "SPC g" for each menu section.
var sectionKeys = map[nav.Section]string{
	nav.Profile:       "p",
	nav.Nutrition:     "n",
	nav.Workouts:      "w",
	nav.Progress:      "r",
	nav.Notifications: "a",
}

const gotoPrefix = "SPC g"

func navigateCmd(s nav.Section) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Section: s, Source: "key"}
	}
}

func toggleMobileMenuCmd() tea.Msg {
	return ToggleMobileMenuMsg{Source: "key"}
}

// registerShellBindings installs the global keys: quit, home, menu toggle,
// digits for the menu entries in order, and the SPC g submenu labelled from
// the menu itself.
func registerShellBindings(reg *KeybindRegistry, menu nav.Menu) {
	for _, seq := range []string{"q", "ctrl+c", "SPC q"} {
		reg.Bind(seq, "Sair", tea.Quit)
	}
	reg.Bind("m", "Menu", toggleMobileMenuCmd)
	reg.Bind("SPC m", "Menu", toggleMobileMenuCmd)

	reg.Group(gotoPrefix, "Ir para")
	reg.Bind("h", "Início", navigateCmd(nav.Home))
	reg.BindIn([]AppMode{ModeSection, ModeDrawer}, gotoPrefix+" h", "Início", navigateCmd(nav.Home))

	for i, item := range menu.Items() {
		if i < 9 {
			reg.Bind(strconv.Itoa(i+1), item.Label, navigateCmd(item.ID))
		}
		if k, ok := sectionKeys[item.ID]; ok {
			reg.Bind(gotoPrefix+" "+k, item.Label, navigateCmd(item.ID))
		}
	}
}
