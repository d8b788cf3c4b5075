package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"fitjourney/internal/ui/textutil"
)

// leaderKeys adapts the pending leader hints to help.KeyMap.
type leaderKeys struct {
	hints []Hint
}

var _ help.KeyMap = leaderKeys{}

// ShortHelp implements help.KeyMap. esc is always offered last.
func (k leaderKeys) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.hints)+1)
	for _, h := range k.hints {
		out = append(out, key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Label)))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")))
}

// FullHelp implements help.KeyMap.
func (k leaderKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// RenderKeybindHelp produces the transient help bar shown after SPC: the
// keys that may follow the pending sequence in mode. width bounds the bar;
// 0 means unbounded.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode, width int) string {
	if keyHandler == nil || keyHandler.Registry == nil || !keyHandler.Waiting() {
		return ""
	}
	prefix := keyHandler.Pending()
	hints := keyHandler.Registry.Next(prefix, mode)
	if len(hints) == 0 {
		return ""
	}

	hm := help.New()
	hm.Styles.ShortKey = Styles.HelpKey
	hm.Styles.ShortDesc = Styles.HelpDesc
	hm.Styles.ShortSeparator = Styles.HelpDesc
	if width > 0 {
		hm.Width = max(width-Styles.HelpBox.GetHorizontalFrameSize()-len(prefix)-1, 1)
	}
	content := Styles.HelpDesc.Render(prefix) + " " + hm.ShortHelpView(leaderKeys{hints: hints}.ShortHelp())
	return Styles.HelpBox.Render(content)
}

// renderFooter is the bottom bar: leader help while a sequence is pending,
// otherwise a one-line hint.
func renderFooter(keyHandler *KeyHandler, mode AppMode, width int) string {
	if h := RenderKeybindHelp(keyHandler, mode, width); h != "" {
		return h
	}
	return Styles.Hint.Render(" " + textutil.Truncate(TextFooterHint, width-1))
}
