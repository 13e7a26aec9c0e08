package client

import (
	"context"
	"strings"
	"sync"

	"alumni-portal/models"
)

// ViewState is the listing screen's lifecycle: Loading on activation, then
// Ready or Failed. Failed is terminal until the view is re-activated.
type ViewState int

const (
	StateLoading ViewState = iota
	StateReady
	StateFailed
)

// EventsView owns the listing screen's state: the fetched set, the search
// text and the selected category. Filtering never goes back to the server.
type EventsView struct {
	api *API

	mu         sync.Mutex
	state      ViewState
	errMsg     string
	events     []models.Event
	search     string
	category   string
	generation int
	active     bool
}

func NewEventsView(api *API) *EventsView {
	return &EventsView{api: api}
}

// Activate transitions to Loading and issues a single listing request. A
// response that lands after Deactivate (or after a newer Activate) is
// discarded so it cannot touch a dead view.
func (v *EventsView) Activate(ctx context.Context) {
	v.mu.Lock()
	v.active = true
	v.state = StateLoading
	v.errMsg = ""
	v.generation++
	gen := v.generation
	v.mu.Unlock()

	events, err := v.api.GetEvents(ctx, false)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.active || gen != v.generation {
		return // stale response
	}
	if err != nil {
		v.state = StateFailed
		v.errMsg = err.Error()
		if v.errMsg == "" {
			v.errMsg = "Failed to fetch events."
		}
		return
	}
	v.events = events
	v.state = StateReady
}

// Deactivate marks the view dead; any in-flight response is ignored.
func (v *EventsView) Deactivate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = false
	v.generation++
}

func (v *EventsView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *EventsView) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

func (v *EventsView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
}

func (v *EventsView) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = category
}

// Visible returns the filtered listing for the current criteria. Only
// meaningful in Ready state; otherwise it is empty.
func (v *EventsView) Visible() []models.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StateReady {
		return nil
	}
	return FilterEvents(v.events, v.search, v.category)
}

// FilterEvents is the pure listing filter. An event passes when the search
// term appears (case-insensitively) in its title, description or location,
// and its type matches the selected category; an empty term matches
// everything, and an empty or "all" category disables the type check.
// Order is preserved and the input is never mutated.
func FilterEvents(events []models.Event, search, category string) []models.Event {
	term := strings.ToLower(search)
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(e.Title), term) ||
			(e.Description != "" && strings.Contains(strings.ToLower(e.Description), term)) ||
			strings.Contains(strings.ToLower(e.Location), term)
		matchesCategory := category == "" || category == "all" || string(e.Type) == category

		if matchesSearch && matchesCategory {
			out = append(out, e)
		}
	}
	return out
}
