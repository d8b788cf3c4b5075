package ui

// FocusManager tracks keyboard focus across the clickable targets of the
// current render. Order is rebuilt after every render.
type FocusManager struct {
	Current  string   // Target with focus; "" when nothing is focused
	Order    []string // Tab order
	OnChange func(from, to string)
}

// SetOrder replaces the tab order. Focus is dropped if the current target is
// no longer present.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if f.Current == "" {
		return
	}
	for _, id := range order {
		if id == f.Current {
			return
		}
	}
	f.set("")
}

// Next advances focus to the next target in order, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	f.set(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous target in order, wrapping around.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	prev := idx - 1
	if prev < 0 {
		prev = len(f.Order) - 1
	}
	f.set(f.Order[prev])
	return f.Current
}

// SetFocus sets focus to the given target ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

// Blur clears focus.
func (f *FocusManager) Blur() {
	f.set("")
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
