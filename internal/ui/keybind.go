package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// leaderToken is how the space leader is written in key sequences.
const leaderToken = "SPC"

// binding is one key sequence of the shell.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty: every mode
}

func (b binding) allows(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeybindRegistry maps key sequences ("q", "SPC g w") to commands. Groups
// name a sequence prefix so the help bar can offer "g Ir para" before the
// final key is typed.
type KeybindRegistry struct {
	bindings map[string]binding
	groups   map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		groups:   make(map[string]string),
	}
}

// Bind registers seq in every mode. A later Bind of the same seq replaces it.
func (r *KeybindRegistry) Bind(seq, desc string, cmd tea.Cmd) {
	r.BindIn(nil, seq, desc, cmd)
}

// BindIn registers seq for the given modes only. Lookup ignores the modes;
// they decide which hints are offered.
func (r *KeybindRegistry) BindIn(modes []AppMode, seq, desc string, cmd tea.Cmd) {
	r.bindings[canonicalSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Group labels a prefix such as "SPC g".
func (r *KeybindRegistry) Group(prefix, label string) {
	r.groups[canonicalSeq(prefix)] = label
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[canonicalSeq(seq)].cmd
}

// isPrefix reports whether some longer sequence starts with seq.
func (r *KeybindRegistry) isPrefix(seq string) bool {
	p := canonicalSeq(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Hint is one entry of the leader help bar.
type Hint struct {
	Key   string
	Label string
}

// Next lists the keys that may follow prefix in mode, sorted by key. A key
// that only continues a longer sequence is labelled with its group name.
func (r *KeybindRegistry) Next(prefix string, mode AppMode) []Hint {
	p := canonicalSeq(prefix) + " "
	labels := make(map[string]string)
	for seq, b := range r.bindings {
		rest, ok := strings.CutPrefix(seq, p)
		if !ok || b.cmd == nil || !b.allows(mode) {
			continue
		}
		k, more, _ := strings.Cut(rest, " ")
		switch {
		case more != "":
			if _, seen := labels[k]; !seen {
				labels[k] = r.groupLabel(p + k)
			}
		case b.desc != "":
			labels[k] = b.desc
		default:
			labels[k] = seq
		}
	}

	hints := make([]Hint, 0, len(labels))
	for k, l := range labels {
		hints = append(hints, Hint{Key: k, Label: l})
	}
	sort.Slice(hints, func(i, j int) bool { return hints[i].Key < hints[j].Key })
	return hints
}

func (r *KeybindRegistry) groupLabel(prefix string) string {
	if l, ok := r.groups[prefix]; ok {
		return l
	}
	_, last, _ := strings.Cut(prefix, " ")
	return last + "…"
}

// canonicalSeq writes seq with single spaces and the leader as SPC.
func canonicalSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = seqToken(p)
	}
	return strings.Join(parts, " ")
}

// seqToken maps a tea key string to its sequence token.
func seqToken(key string) string {
	if key == " " || key == "space" {
		return leaderToken
	}
	return key
}

// KeyHandler resolves key presses against the registry. Space starts a
// leader sequence that ends on a bound command, an unknown key, or esc.
type KeyHandler struct {
	Registry *KeybindRegistry

	pending []string // tokens typed since the leader; nil when idle
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Waiting reports whether a leader sequence is in progress.
func (h *KeyHandler) Waiting() bool {
	return len(h.pending) > 0
}

// Pending returns the sequence typed so far, e.g. "SPC g".
func (h *KeyHandler) Pending() string {
	return strings.Join(h.pending, " ")
}

func (h *KeyHandler) reset() {
	h.pending = nil
}

// Handle consumes msg when it belongs to a key binding. Unconsumed keys go to
// focus handling, the drawer, or the viewport.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	tok := seqToken(msg.String())

	if h.Waiting() {
		if tok == "esc" {
			h.reset()
			return true, nil
		}
		seq := h.Pending() + " " + tok
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		if h.Registry.isPrefix(seq) {
			h.pending = append(h.pending, tok)
		} else {
			h.reset()
		}
		return true, nil
	}

	if tok == leaderToken {
		h.pending = []string{leaderToken}
		return true, nil
	}
	if c := h.Registry.Lookup(tok); c != nil {
		return true, c
	}
	return false, nil
}
