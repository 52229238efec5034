// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package a11y_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "a11ychart.org/core/a11y"
	"a11ychart.org/core/math32"
	"a11ychart.org/core/scene"
	"a11ychart.org/core/styles"
)

func newTestScene() (*scene.Scene, *scene.Group) {
	sc := scene.NewScene("chart", 400, 300)
	return sc, scene.NewGroup(sc.Root, "series-group")
}

func TestAddFocusBorderRect(t *testing.T) {
	sc, g := newTestScene()
	r := scene.NewRect(g, "point", math32.Vec2(10, 20), math32.Vec2(30, 5))
	r.Translate = math32.Vec2(5, 0)

	AddFocusBorder(sc, r, 3, nil)
	border := r.FocusBorder
	require.NotNil(t, border)
	assert.Equal(t, math32.Vec2(12, 17), border.Pos)
	assert.Equal(t, math32.Vec2(36, 11), border.Size)
	assert.Equal(t, scene.Node(g), border.Parent)
	assert.Equal(t, FocusBorderClass, border.Class)
	assert.Equal(t, 99, border.ZIndex)
}

func TestAddFocusBorderDefaultMargin(t *testing.T) {
	sc, g := newTestScene()
	r := scene.NewRect(g, "point", math32.Vec2(10, 10), math32.Vec2(20, 20))

	AddFocusBorder(sc, r, -1, nil)
	require.NotNil(t, r.FocusBorder)
	assert.Equal(t, math32.Vec2(7, 7), r.FocusBorder.Pos)
	assert.Equal(t, math32.Vec2(26, 26), r.FocusBorder.Size)
}

// newTestLabel returns a text element with position (100, 50) and
// measured extents 40 x 10.
func newTestLabel(parent scene.Node) *scene.Text {
	txt := scene.NewText(parent, "label", math32.Vec2(100, 50), "April")
	txt.Width = 40
	txt.Height = 10
	return txt
}

func TestAddFocusBorderText(t *testing.T) {
	sc, g := newTestScene()
	txt := newTestLabel(g)

	AddFocusBorder(sc, txt, 3, nil)
	border := txt.FocusBorder
	require.NotNil(t, border)
	assert.InDelta(t, 77, border.Pos.X, 0.001)
	assert.InDelta(t, 41.32, border.Pos.Y, 0.001)
	assert.InDelta(t, 46, border.Size.X, 0.001)
	assert.InDelta(t, 16, border.Size.Y, 0.001)
}

func TestAddFocusBorderTextGecko(t *testing.T) {
	sc, g := newTestScene()
	sc.Engine = scene.Gecko
	txt := newTestLabel(g)

	AddFocusBorder(sc, txt, 3, nil)
	require.NotNil(t, txt.FocusBorder)
	assert.InDelta(t, 77, txt.FocusBorder.Pos.X, 0.001)
	assert.InDelta(t, 39.5, txt.FocusBorder.Pos.Y, 0.001)
}

func TestAddFocusBorderTextRotated(t *testing.T) {
	sc, g := newTestScene()
	txt := newTestLabel(g)
	txt.Rotation = 45

	AddFocusBorder(sc, txt, 3, nil)
	require.NotNil(t, txt.FocusBorder)
	// rotated: horizontal baseline correction, no vertical one
	assert.InDelta(t, 77.68, txt.FocusBorder.Pos.X, 0.001)
	assert.InDelta(t, 42, txt.FocusBorder.Pos.Y, 0.001)
}

func TestAddFocusBorderIdempotent(t *testing.T) {
	sc, g := newTestScene()
	r := scene.NewRect(g, "point", math32.Vec2(10, 20), math32.Vec2(30, 5))

	AddFocusBorder(sc, r, 3, nil)
	first := r.FocusBorder
	AddFocusBorder(sc, r, 3, nil)
	second := r.FocusBorder
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.True(t, first.IsDestroyed())
	assert.Equal(t, first.Pos, second.Pos)
	assert.Equal(t, first.Size, second.Size)

	borders := 0
	for _, kid := range g.Children {
		if kid.AsNodeBase().Class == FocusBorderClass {
			borders++
		}
	}
	assert.Equal(t, 1, borders)
}

func TestRemoveFocusBorder(t *testing.T) {
	sc, g := newTestScene()
	r := scene.NewRect(g, "point", math32.Vec2(0, 0), math32.Vec2(10, 10))

	RemoveFocusBorder(r) // no-op without a border
	AddFocusBorder(sc, r, 3, nil)
	border := r.FocusBorder
	require.NotNil(t, border)

	RemoveFocusBorder(r)
	assert.Nil(t, r.FocusBorder)
	assert.True(t, border.IsDestroyed())
	assert.Len(t, g.Children, 1) // only the element itself remains
	RemoveFocusBorder(r)         // still a no-op
}

func TestAddFocusBorderStyle(t *testing.T) {
	sc, g := newTestScene()
	r := scene.NewRect(g, "point", math32.Vec2(0, 0), math32.Vec2(10, 10))

	st := &styles.FocusStyle{Color: "#335cad", LineWidth: 2, BorderRadius: "4px"}
	AddFocusBorder(sc, r, 3, st)
	border := r.FocusBorder
	require.NotNil(t, border)
	assert.Equal(t, "#335cad", border.Stroke)
	assert.Equal(t, float32(2), border.StrokeWidth)
	assert.Equal(t, 4, border.Radius)
}

func TestAddFocusBorderStyledMode(t *testing.T) {
	sc, g := newTestScene()
	sc.StyledMode = true
	r := scene.NewRect(g, "point", math32.Vec2(0, 0), math32.Vec2(10, 10))

	st := &styles.FocusStyle{Color: "#335cad", LineWidth: 2, BorderRadius: 3}
	AddFocusBorder(sc, r, 3, st)
	border := r.FocusBorder
	require.NotNil(t, border)
	assert.Empty(t, border.Stroke)
	assert.Zero(t, border.StrokeWidth)
	assert.Equal(t, 3, border.Radius) // geometry still applies in styled mode
}

func TestAddFocusBorderBadColor(t *testing.T) {
	sc, g := newTestScene()
	r := scene.NewRect(g, "point", math32.Vec2(0, 0), math32.Vec2(10, 10))

	AddFocusBorder(sc, r, 3, &styles.FocusStyle{Color: "nonsense"})
	require.NotNil(t, r.FocusBorder)
	assert.Empty(t, r.FocusBorder.Stroke)
}

func TestAddFocusBorderZeroSize(t *testing.T) {
	sc, g := newTestScene()
	r := scene.NewRect(g, "point", math32.Vec2(10, 10), math32.Vec2(0, 0))

	AddFocusBorder(sc, r, 0, nil)
	border := r.FocusBorder
	require.NotNil(t, border)
	assert.Equal(t, math32.Vec2(10, 10), border.Pos)
	assert.Equal(t, math32.Vec2(0, 0), border.Size)
}
