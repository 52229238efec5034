// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all
// context captured, registered on specific objects.
type Listeners map[Types][]func(ev Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a listener function for the given event type.
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// HasListeners returns whether there is at least one listener
// registered for the given event type.
func (ls *Listeners) HasListeners(typ Types) bool {
	if *ls == nil {
		return false
	}
	return len((*ls)[typ]) > 0
}

// Count returns the number of listeners registered for the given type.
func (ls *Listeners) Count(typ Types) int {
	if *ls == nil {
		return 0
	}
	return len((*ls)[typ])
}

// Call calls all functions registered for the given event.
// It goes in reverse order so the last functions added are the first
// called, and it stops when the event is marked as Handled. This
// allows for a natural and optional override behavior.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}
