package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a view drawn over the content area. It sees keys before the
// shell's focus handling and is closed by its Dismiss key.
type Overlay struct {
	View    View
	Dismiss string
}

func (o Overlay) dismissedBy(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds the open overlays, topmost last.
type OverlayStack struct {
	layers []Overlay
}

// Open puts o on top and returns its Init command.
func (s *OverlayStack) Open(o Overlay) tea.Cmd {
	s.layers = append(s.layers, o)
	return o.View.Init()
}

// CloseAll drops every overlay.
func (s *OverlayStack) CloseAll() {
	s.layers = nil
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.layers)
}

// Top returns the overlay receiving input.
func (s *OverlayStack) Top() (Overlay, bool) {
	if len(s.layers) == 0 {
		return Overlay{}, false
	}
	return s.layers[len(s.layers)-1], true
}

// Route delivers a key to the top overlay. When the key is the overlay's
// dismiss key it is not delivered and dismissed is true; closing is left to
// the caller, which owns the state the overlay reflects.
func (s *OverlayStack) Route(msg tea.KeyMsg) (cmd tea.Cmd, dismissed bool) {
	if len(s.layers) == 0 {
		return nil, false
	}
	top := &s.layers[len(s.layers)-1]
	if top.dismissedBy(msg.String()) {
		return nil, true
	}
	top.View, cmd = top.View.Update(msg)
	return cmd, false
}
