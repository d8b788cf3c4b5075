package nav

// State is the local UI state of the shell. It lives for the session and is
// never persisted.
type State struct {
	Current        Section
	MobileMenuOpen bool
}

// NewState returns the startup state: home selected, mobile menu closed.
func NewState() State {
	return State{Current: Home}
}

// NavigateTo selects section and closes the mobile menu, whatever its prior
// state. Returns the previously selected section.
func (s *State) NavigateTo(section Section) Section {
	from := s.Current
	s.Current = section
	s.MobileMenuOpen = false
	return from
}

// ToggleMobileMenu flips the mobile menu flag and returns the new value.
func (s *State) ToggleMobileMenu() bool {
	s.MobileMenuOpen = !s.MobileMenuOpen
	return s.MobileMenuOpen
}

// OnHome reports whether the home dashboard is selected.
func (s State) OnHome() bool {
	return s.Current == Home || s.Current == ""
}
