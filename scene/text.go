// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"a11ychart.org/core/math32"
)

// Text renders a text label, such as an axis label, data label,
// or legend item text.
type Text struct {
	NodeBase

	// Pos is the explicit x/y reference position of the text,
	// at the left baseline.
	Pos math32.Vector2

	// Text is the text string to render.
	Text string

	// FontSize is the font size in pixels; 0 means the default of 12.
	FontSize float32

	// Width and Height are the measured extents of the rendered text,
	// set by layout via [Text.Measure] or directly from a text shaper.
	Width  float32
	Height float32
}

// NewText adds a new [Text] to the given parent,
// with the given name, position, and text.
func NewText(parent Node, name string, pos math32.Vector2, text string) *Text {
	g := &Text{}
	initNode(g, parent, name)
	g.Pos = pos
	g.Text = text
	g.Measure()
	return g
}

func (g *Text) SVGName() string { return "text" }

// Measure estimates the rendered extents of the text from its font
// size and content, for use when no text shaper has supplied real
// metrics. The heuristic is the usual average advance approximation.
func (g *Text) Measure() {
	fs := g.FontSize
	if fs == 0 {
		fs = 12
	}
	g.Width = 0.6 * fs * float32(len([]rune(g.Text)))
	g.Height = 1.2 * fs
}

// LocalBBox returns the estimated bounding box of the text.
// Text bounding boxes are anchored at the baseline and vary across
// rendering engines, so consumers needing engine-stable geometry
// should work from [Text.Pos] directly rather than this box.
func (g *Text) LocalBBox() math32.Box2 {
	return math32.B2(g.Pos.X, g.Pos.Y-g.Height*0.8, g.Pos.X+g.Width, g.Pos.Y+g.Height*0.2)
}
