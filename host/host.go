// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host abstracts the host environment's native input focus
// capability. Charts render into a host surface (a browser DOM, a
// desktop window system) that owns the real keyboard focus; chart
// elements that participate in keyboard navigation are backed by a
// host element that can receive that focus. The [Focuser] interface
// captures exactly the operations the accessibility layer needs,
// so it never depends on a concrete host.
package host

import (
	"a11ychart.org/core/events"
)

// Focuser is the capability interface for a host element that can
// receive native input focus. Implementations must be safe to call
// on the single UI thread with no internal locking.
type Focuser interface {

	// CanFocus returns whether the element is currently able to
	// receive native input focus.
	CanFocus() bool

	// Focus gives the element native input focus, dispatching the
	// corresponding focus events to registered listeners.
	Focus()

	// HideFocusOutline suppresses the host's default focus outline on
	// the element, leaving it focused but without a native focus ring.
	HideFocusOutline()

	// On registers a listener function for the given event type.
	On(typ events.Types, fun func(ev events.Event))

	// HasListeners returns whether at least one listener is
	// registered for the given event type.
	HasListeners(typ events.Types) bool
}

// Element is a concrete host proxy element implementing [Focuser].
// It models the invisible focusable elements that back chart content
// for assistive technology, and is also what tests run against.
type Element struct {
	// Name identifies the element for debugging.
	Name string

	// Focusable is whether the element can currently receive focus.
	Focusable bool

	// Focused is whether the element currently has native focus.
	Focused bool

	// OutlineHidden is whether the default focus outline has been
	// suppressed (outline style set to none).
	OutlineHidden bool

	// Listeners holds the registered event listener functions.
	Listeners events.Listeners
}

// NewElement returns a new focusable [Element] with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name, Focusable: true}
}

func (el *Element) CanFocus() bool {
	return el != nil && el.Focusable
}

// Focus gives the element native focus and dispatches a
// [events.FocusIn] event to any registered listeners.
func (el *Element) Focus() {
	if !el.CanFocus() {
		return
	}
	el.Focused = true
	el.Listeners.Call(events.NewBase(events.FocusIn))
}

// Blur removes native focus from the element, dispatching
// [events.FocusLost] to any registered listeners.
func (el *Element) Blur() {
	if el == nil || !el.Focused {
		return
	}
	el.Focused = false
	el.Listeners.Call(events.NewBase(events.FocusLost))
}

func (el *Element) HideFocusOutline() {
	el.OutlineHidden = true
}

func (el *Element) On(typ events.Types, fun func(ev events.Event)) {
	el.Listeners.Add(typ, fun)
}

func (el *Element) HasListeners(typ events.Types) bool {
	return el.Listeners.HasListeners(typ)
}
