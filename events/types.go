// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the event types and listener registries used
// for chart interaction and accessibility focus management. The type
// names follow the standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// names where a direct correspondence exists.
package events

import "strconv"

// Types determines the type of event, and also the level at which
// one can select which events to listen to.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// Click represents a pointer press and release in sequence
	// on the same element.
	Click

	// Focus is sent to a focusable element when it gains focus.
	Focus

	// FocusIn is sent to a focusable element when it or one of its
	// children gains focus. It corresponds to the DOM focusin event,
	// which, unlike focus, bubbles.
	FocusIn

	// FocusLost is sent to a focusable element when it loses focus.
	FocusLost

	// KeyDown is sent when a key is pressed while an element is focused.
	KeyDown
)

var typeNames = map[Types]string{
	UnknownType: "UnknownType",
	Click:       "Click",
	Focus:       "Focus",
	FocusIn:     "FocusIn",
	FocusLost:   "FocusLost",
	KeyDown:     "KeyDown",
}

func (t Types) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Types(" + strconv.Itoa(int(t)) + ")"
}
