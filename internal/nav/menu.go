package nav

// Icons used by the shell chrome and the menu entries.
const (
	IconHome          = "⌂"
	IconMenu          = "☰"
	IconClose         = "✕"
	IconChevron       = "›"
	IconProfile       = "◉"
	IconNutrition     = "❦"
	IconWorkouts      = "⚒"
	IconProgress      = "↗"
	IconNotifications = "✉"
)

// MenuItem describes a navigable section.
type MenuItem struct {
	ID            Section
	Label         string
	Icon          string
	Notifications *int // nil when the section has nothing pending
}

// HasBadge reports whether a pending-count badge should be shown.
// A present count of zero is treated the same as an absent one.
func (m MenuItem) HasBadge() bool {
	return m.Notifications != nil && *m.Notifications != 0
}

// PendingCount returns the notification count, or 0 when absent.
func (m MenuItem) PendingCount() int {
	if m.Notifications == nil {
		return 0
	}
	return *m.Notifications
}

// Count is a convenience for building MenuItem.Notifications literals.
func Count(n int) *int {
	return &n
}

// Menu is an immutable ordered list of menu entries.
type Menu struct {
	items []MenuItem
}

// NewMenu builds a menu from the given entries, preserving order.
func NewMenu(items ...MenuItem) Menu {
	cp := make([]MenuItem, len(items))
	copy(cp, items)
	return Menu{items: cp}
}

// DefaultMenu returns the five FitJourney sections reachable from the header.
// Home has no entry; it is reached through the brand button.
func DefaultMenu() Menu {
	return NewMenu(
		MenuItem{ID: Profile, Label: "Perfil", Icon: IconProfile},
		MenuItem{ID: Nutrition, Label: "Plano Nutricional", Icon: IconNutrition, Notifications: Count(2)},
		MenuItem{ID: Workouts, Label: "Treinos", Icon: IconWorkouts, Notifications: Count(1)},
		MenuItem{ID: Progress, Label: "Progresso", Icon: IconProgress},
		MenuItem{ID: Notifications, Label: "Notificações", Icon: IconNotifications, Notifications: Count(3)},
	)
}

// Items returns a copy of the entries.
func (m Menu) Items() []MenuItem {
	cp := make([]MenuItem, len(m.items))
	copy(cp, m.items)
	return cp
}

// Len returns the number of entries.
func (m Menu) Len() int {
	return len(m.items)
}

// At returns the i-th entry. Returns false if i is out of range.
func (m Menu) At(i int) (MenuItem, bool) {
	if i < 0 || i >= len(m.items) {
		return MenuItem{}, false
	}
	return m.items[i], true
}

// Lookup finds the entry for a section.
func (m Menu) Lookup(s Section) (MenuItem, bool) {
	for _, it := range m.items {
		if it.ID == s {
			return it, true
		}
	}
	return MenuItem{}, false
}

// Label returns the display label for s, or "" when s has no entry.
func (m Menu) Label(s Section) string {
	it, _ := m.Lookup(s)
	return it.Label
}
