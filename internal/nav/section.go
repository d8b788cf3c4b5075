// Package nav holds the navigation model of the FitJourney shell: the closed
// set of sections, the static menu, and the two-field UI state mutated by
// navigation and the mobile menu toggle.
package nav

import "slices"

// Section identifies one of the fixed views the shell can display.
type Section string

const (
	Home          Section = "home"
	Profile       Section = "profile"
	Nutrition     Section = "nutrition"
	Workouts      Section = "workouts"
	Progress      Section = "progress"
	Notifications Section = "notifications"
)

// Sections returns every section in display order, home first.
func Sections() []Section {
	return []Section{Home, Profile, Nutrition, Workouts, Progress, Notifications}
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	return slices.Contains(Sections(), s)
}

func (s Section) String() string {
	return string(s)
}
