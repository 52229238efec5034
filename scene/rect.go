// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"a11ychart.org/core/math32"
)

// Rect is a rectangle element, optionally with rounded corners.
type Rect struct {
	NodeBase

	// Pos is the position of the top-left of the rectangle.
	Pos math32.Vector2

	// Size is the size of the rectangle.
	Size math32.Vector2

	// Radius is the corner radius in pixels, or 0 for square corners.
	Radius int

	// Fill is the fill color as a CSS color string,
	// or empty for no fill attribute.
	Fill string

	// Stroke is the stroke color as a CSS color string,
	// or empty for no stroke attribute.
	Stroke string

	// StrokeWidth is the stroke width in pixels,
	// or 0 for no stroke-width attribute.
	StrokeWidth float32
}

// NewRect adds a new [Rect] to the given parent,
// with the given name, position, and size.
func NewRect(parent Node, name string, pos, size math32.Vector2) *Rect {
	g := &Rect{}
	initNode(g, parent, name)
	g.Pos = pos
	g.Size = size
	return g
}

func (g *Rect) SVGName() string { return "rect" }

func (g *Rect) LocalBBox() math32.Box2 {
	return math32.Box2{Min: g.Pos, Max: g.Pos.Add(g.Size)}
}
