package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/passpredict/internal/screen"
)

// SwitchTabMsg requests the router to activate the tab at Index.
type SwitchTabMsg struct {
	Index int
}

// ReplaceScreenMsg requests the router to swap the active tab's screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router manages a fixed row of tabs, one screen per tab. Tab state
// survives switching away and back.
type Router struct {
	tabs    []screen.Screen
	active  int
	started []bool
}

// New creates a Router with the given tabs; the first one is active.
func New(tabs ...screen.Screen) *Router {
	return &Router{
		tabs:    tabs,
		started: make([]bool, len(tabs)),
	}
}

// Init starts the active tab.
func (r *Router) Init() tea.Cmd {
	return r.start(r.active)
}

// start runs a tab's Init the first time it is shown.
func (r *Router) start(i int) tea.Cmd {
	if i < 0 || i >= len(r.tabs) || r.started[i] {
		return nil
	}
	r.started[i] = true
	return r.tabs[i].Init()
}

// Select activates tab i. Out-of-range indexes are ignored.
func (r *Router) Select(i int) tea.Cmd {
	if i < 0 || i >= len(r.tabs) {
		return nil
	}
	r.active = i
	return r.start(i)
}

// Next activates the tab to the right, wrapping around.
func (r *Router) Next() tea.Cmd {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.Select((r.active + 1) % len(r.tabs))
}

// Prev activates the tab to the left, wrapping around.
func (r *Router) Prev() tea.Cmd {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.Select((r.active - 1 + len(r.tabs)) % len(r.tabs))
}

// Replace swaps the active tab's screen and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.tabs) == 0 {
		return nil
	}
	r.tabs[r.active] = s
	r.started[r.active] = true
	return s.Init()
}

// Active returns the screen of the active tab.
func (r *Router) Active() screen.Screen {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.tabs[r.active]
}

// ActiveIndex returns the index of the active tab.
func (r *Router) ActiveIndex() int {
	return r.active
}

// Len returns the number of tabs.
func (r *Router) Len() int {
	return len(r.tabs)
}

// Names returns the tab titles in order.
func (r *Router) Names() []string {
	names := make([]string, len(r.tabs))
	for i, s := range r.tabs {
		names[i] = s.Title()
	}
	return names
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SwitchTabMsg:
		return r.Select(msg.Index)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.tabs[r.active] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
