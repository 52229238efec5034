// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package a11y

import (
	"a11ychart.org/core/events"
	"a11ychart.org/core/host"
	"a11ychart.org/core/scene"
)

// Chart is the capability interface a chart instance provides to the
// focus coordination logic: its scene, its resolved focus border
// options, and its single active-focus slot. At most one element is
// recorded in the slot at any time, and it is mutated only through
// [SetFocusToElement] and chart teardown.
type Chart interface {

	// ChartScene returns the scene the chart renders into.
	ChartScene() *scene.Scene

	// FocusBorder returns the chart's resolved focus border options.
	FocusBorder() *FocusBorderOptions

	// FocusElement returns the element currently recorded as having
	// chart-level focus, or nil.
	FocusElement() scene.Node

	// SetFocusElement records the given element as having chart-level
	// focus, replacing the previous one.
	SetFocusElement(n scene.Node)
}

// SetFocusToElement gives chart-level focus to the given element:
// it sets native input focus on the host focus target and draws the
// focus indicator border, removing the border from the previously
// focused element so the chart never shows two at once.
//
// The host focus target is the given target if non-nil, else the
// element's own host proxy. A target that cannot receive focus is
// silently skipped; the border is still drawn. When the focus border
// is disabled in the options, native focus is still assigned but no
// border is drawn and the active-focus slot is left unchanged.
func SetFocusToElement(c Chart, n scene.Node, target host.Focuser) {
	opts := c.FocusBorder()
	if target == nil {
		target = n.AsNodeBase().Proxy
	}
	if target != nil && target.CanFocus() {
		// Some screen reader and browser combinations do not announce
		// a programmatic focus change unless a focusin listener is
		// registered on the element, so ensure one exists first.
		if !target.HasListeners(events.FocusIn) {
			target.On(events.FocusIn, func(events.Event) {})
		}
		target.Focus()
		if opts.HideBrowserFocusOutline {
			target.HideFocusOutline()
		}
	}
	if !opts.Enabled {
		return
	}
	// Remove before add, so two borders never coexist on the chart.
	if cur := c.FocusElement(); cur != nil {
		RemoveFocusBorder(cur)
	}
	AddFocusBorder(c.ChartScene(), n, opts.Margin, &opts.Style)
	c.SetFocusElement(n)
}
