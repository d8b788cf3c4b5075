// Package ui is the FitJourney terminal shell built on Bubble Tea.
//
// The root AppModel owns nav.State and renders three regions from it:
//   - HeaderView: brand button, inline nav (wide terminals) or menu toggle (narrow)
//   - DrawerView: the mobile navigation panel, pushed as an Overlay while open
//   - ContentView: home dashboard or a section placeholder, scrolled in a viewport
//
// Every render also yields a HitMap so mouse presses and keyboard focus
// (FocusManager) resolve to the same Targets. Global keys go through the
// leader-key KeybindRegistry.
package ui
