// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package a11y_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "a11ychart.org/core/a11y"
	"a11ychart.org/core/events"
	"a11ychart.org/core/host"
	"a11ychart.org/core/math32"
	"a11ychart.org/core/scene"
)

// testChart is a minimal [Chart] implementation for coordinator tests.
type testChart struct {
	sc    *scene.Scene
	opts  FocusBorderOptions
	focus scene.Node
}

func newTestChart() *testChart {
	tc := &testChart{sc: scene.NewScene("chart", 400, 300)}
	tc.opts.Defaults()
	return tc
}

func (tc *testChart) ChartScene() *scene.Scene         { return tc.sc }
func (tc *testChart) FocusBorder() *FocusBorderOptions { return &tc.opts }
func (tc *testChart) FocusElement() scene.Node         { return tc.focus }
func (tc *testChart) SetFocusElement(n scene.Node)     { tc.focus = n }

func TestSetFocusSingleBorder(t *testing.T) {
	tc := newTestChart()
	g := scene.NewGroup(tc.sc.Root, "series-group")
	a := scene.NewRect(g, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	b := scene.NewRect(g, "b", math32.Vec2(20, 0), math32.Vec2(10, 10))

	SetFocusToElement(tc, a, nil)
	require.NotNil(t, a.FocusBorder)
	assert.Equal(t, scene.Node(a), tc.FocusElement())

	SetFocusToElement(tc, b, nil)
	assert.Nil(t, a.FocusBorder)
	require.NotNil(t, b.FocusBorder)
	assert.Equal(t, scene.Node(b), tc.FocusElement())

	borders := 0
	for _, kid := range g.Children {
		if kid.AsNodeBase().Class == FocusBorderClass {
			borders++
		}
	}
	assert.Equal(t, 1, borders)
}

func TestSetFocusRefocusSameElement(t *testing.T) {
	tc := newTestChart()
	g := scene.NewGroup(tc.sc.Root, "series-group")
	a := scene.NewRect(g, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))

	SetFocusToElement(tc, a, nil)
	first := a.FocusBorder
	SetFocusToElement(tc, a, nil)
	require.NotNil(t, a.FocusBorder)
	assert.NotSame(t, first, a.FocusBorder)
	assert.Equal(t, scene.Node(a), tc.FocusElement())
}

func TestSetFocusDisabledBorder(t *testing.T) {
	tc := newTestChart()
	tc.opts.Enabled = false
	g := scene.NewGroup(tc.sc.Root, "series-group")
	a := scene.NewRect(g, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	proxy := host.NewElement("a-proxy")
	a.Proxy = proxy

	SetFocusToElement(tc, a, nil)
	assert.Nil(t, a.FocusBorder)
	assert.Nil(t, tc.FocusElement())
	assert.True(t, proxy.Focused) // native focus still applied
}

func TestSetFocusProxyFocus(t *testing.T) {
	tc := newTestChart()
	a := scene.NewRect(tc.sc.Root, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	proxy := host.NewElement("a-proxy")
	a.Proxy = proxy

	SetFocusToElement(tc, a, nil)
	assert.True(t, proxy.Focused)
	assert.True(t, proxy.OutlineHidden) // hideBrowserFocusOutline default
	require.NotNil(t, a.FocusBorder)
}

func TestSetFocusExplicitTarget(t *testing.T) {
	tc := newTestChart()
	a := scene.NewRect(tc.sc.Root, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	proxy := host.NewElement("a-proxy")
	a.Proxy = proxy
	target := host.NewElement("group-proxy")

	SetFocusToElement(tc, a, target)
	assert.True(t, target.Focused)
	assert.False(t, proxy.Focused)
}

func TestSetFocusKeepOutline(t *testing.T) {
	tc := newTestChart()
	tc.opts.HideBrowserFocusOutline = false
	a := scene.NewRect(tc.sc.Root, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	proxy := host.NewElement("a-proxy")
	a.Proxy = proxy

	SetFocusToElement(tc, a, nil)
	assert.True(t, proxy.Focused)
	assert.False(t, proxy.OutlineHidden)
}

func TestSetFocusUnfocusableTarget(t *testing.T) {
	tc := newTestChart()
	a := scene.NewRect(tc.sc.Root, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	proxy := &host.Element{Name: "a-proxy"} // not focusable

	SetFocusToElement(tc, a, proxy)
	assert.False(t, proxy.Focused)
	assert.False(t, proxy.HasListeners(events.FocusIn)) // workaround skipped too
	require.NotNil(t, a.FocusBorder)                    // border still drawn
}

func TestSetFocusNoTarget(t *testing.T) {
	tc := newTestChart()
	a := scene.NewRect(tc.sc.Root, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))

	SetFocusToElement(tc, a, nil) // no proxy, no target: border only
	require.NotNil(t, a.FocusBorder)
	assert.Equal(t, scene.Node(a), tc.FocusElement())
}

func TestFocusinListenerWorkaround(t *testing.T) {
	tc := newTestChart()
	a := scene.NewRect(tc.sc.Root, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	proxy := host.NewElement("a-proxy")
	a.Proxy = proxy

	SetFocusToElement(tc, a, nil)
	assert.Equal(t, 1, proxy.Listeners.Count(events.FocusIn))
	SetFocusToElement(tc, a, nil)
	assert.Equal(t, 1, proxy.Listeners.Count(events.FocusIn)) // no duplicate
}

func TestFocusinListenerPreRegistered(t *testing.T) {
	tc := newTestChart()
	a := scene.NewRect(tc.sc.Root, "a", math32.Vec2(0, 0), math32.Vec2(10, 10))
	proxy := host.NewElement("a-proxy")
	got := 0
	proxy.On(events.FocusIn, func(ev events.Event) { got++ })
	a.Proxy = proxy

	SetFocusToElement(tc, a, nil)
	assert.Equal(t, 1, proxy.Listeners.Count(events.FocusIn)) // no extra no-op added
	assert.Equal(t, 1, got)                                   // existing listener fired
}
