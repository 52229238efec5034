// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"
)

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event associated with this event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// stopping propagation to any remaining listeners.
	SetHandled()
}

// Base is the base type for all events, implementing [Event].
// Most events only need to set the type and relevant fields.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// GenTime is when the event was generated.
	GenTime time.Time

	// Handled is whether the event has been processed.
	Handled bool
}

// NewBase returns a new [Base] event of the given type,
// timestamped with the current time.
func NewBase(typ Types) *Base {
	return &Base{Typ: typ, GenTime: time.Now()}
}

func (ev *Base) Type() Types     { return ev.Typ }
func (ev *Base) Time() time.Time { return ev.GenTime }
func (ev *Base) IsHandled() bool { return ev.Handled }
func (ev *Base) SetHandled()     { ev.Handled = true }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05"))
}
