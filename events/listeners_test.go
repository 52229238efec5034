// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersAddCall(t *testing.T) {
	var ls Listeners
	assert.False(t, ls.HasListeners(FocusIn))
	assert.Equal(t, 0, ls.Count(FocusIn))

	order := []int{}
	ls.Add(FocusIn, func(ev Event) { order = append(order, 1) })
	ls.Add(FocusIn, func(ev Event) { order = append(order, 2) })
	assert.True(t, ls.HasListeners(FocusIn))
	assert.Equal(t, 2, ls.Count(FocusIn))
	assert.False(t, ls.HasListeners(FocusLost))

	ls.Call(NewBase(FocusIn))
	// reverse order: last added runs first
	assert.Equal(t, []int{2, 1}, order)
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	ran := []int{}
	ls.Add(Click, func(ev Event) { ran = append(ran, 1) })
	ls.Add(Click, func(ev Event) {
		ran = append(ran, 2)
		ev.SetHandled()
	})
	ls.Call(NewBase(Click))
	assert.Equal(t, []int{2}, ran)

	ev := NewBase(Click)
	ev.SetHandled()
	ls.Call(ev)
	assert.Equal(t, []int{2}, ran)
}

func TestListenersOtherType(t *testing.T) {
	var ls Listeners
	ran := false
	ls.Add(FocusLost, func(ev Event) { ran = true })
	ls.Call(NewBase(FocusIn))
	assert.False(t, ran)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "FocusIn", FocusIn.String())
	assert.Equal(t, "Types(99)", Types(99).String())
}
