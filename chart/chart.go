// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart provides the chart instance: the scene it renders
// into, its accessibility options, and its per-chart focus state.
package chart

import (
	"io"

	"a11ychart.org/core/a11y"
	"a11ychart.org/core/host"
	"a11ychart.org/core/scene"
	"a11ychart.org/core/styles"
)

// Chart is a single chart instance.
type Chart struct {

	// Scene is the scene graph the chart renders into.
	Scene *scene.Scene

	// Accessibility are the chart's accessibility options.
	Accessibility a11y.Options

	// focusElement is the element currently owning the chart-level
	// focus border. At most one element is recorded at any time; it
	// is mutated only through [a11y.SetFocusToElement] and [Chart.Destroy].
	focusElement scene.Node
}

// NewChart returns a new [Chart] with the given name and scene size,
// with default accessibility options.
func NewChart(name string, width, height float32) *Chart {
	ch := &Chart{Scene: scene.NewScene(name, width, height)}
	ch.Accessibility.Defaults()
	return ch
}

// ChartScene implements [a11y.Chart].
func (ch *Chart) ChartScene() *scene.Scene { return ch.Scene }

// FocusBorder implements [a11y.Chart], returning the chart's
// resolved focus border options.
func (ch *Chart) FocusBorder() *a11y.FocusBorderOptions {
	return &ch.Accessibility.KeyboardNavigation.FocusBorder
}

// FocusElement implements [a11y.Chart].
func (ch *Chart) FocusElement() scene.Node { return ch.focusElement }

// SetFocusElement implements [a11y.Chart].
func (ch *Chart) SetFocusElement(n scene.Node) { ch.focusElement = n }

// SetFocus gives chart-level focus to the given element, using the
// element's own host proxy as the native focus target.
// See [a11y.SetFocusToElement].
func (ch *Chart) SetFocus(n scene.Node) {
	a11y.SetFocusToElement(ch, n, nil)
}

// SetFocusTarget gives chart-level focus to the given element, using
// the given host element as the native focus target.
func (ch *Chart) SetFocusTarget(n scene.Node, target host.Focuser) {
	a11y.SetFocusToElement(ch, n, target)
}

// OpenAccessibilityOptions loads accessibility options from the given
// TOML file, replacing the chart's current options.
func (ch *Chart) OpenAccessibilityOptions(filename string) error {
	o, err := a11y.OpenOptions(filename)
	if err != nil {
		return err
	}
	ch.Accessibility = *o
	return nil
}

// ApplyStylesheet parses the given CSS text as the chart's external
// stylesheet and puts the chart in styled mode, in which elements are
// created without inline presentation attributes.
func (ch *Chart) ApplyStylesheet(src string) error {
	if err := ch.Scene.SetSheet(src); err != nil {
		return err
	}
	ch.Scene.StyledMode = true
	return nil
}

// EffectiveFocusStyle returns the focus border style that will be
// visible to the user: in styled mode the style resolved from the
// stylesheet rule for the focus border class, otherwise the
// configured options style.
func (ch *Chart) EffectiveFocusStyle() styles.FocusStyle {
	if ch.Scene.StyledMode && ch.Scene.Sheet != nil {
		if fs, ok := ch.Scene.Sheet.FocusStyle("." + a11y.FocusBorderClass); ok {
			return fs
		}
	}
	return ch.FocusBorder().Style
}

// WriteSVG writes the chart's scene as indented SVG XML.
func (ch *Chart) WriteSVG(w io.Writer) error {
	return ch.Scene.WriteXML(w, true)
}

// Destroy tears down the chart, removing any active focus border and
// destroying the scene tree. The chart must not be used afterward.
func (ch *Chart) Destroy() {
	if ch.focusElement != nil {
		a11y.RemoveFocusBorder(ch.focusElement)
		ch.focusElement = nil
	}
	if ch.Scene != nil {
		ch.Scene.Destroy()
	}
}
