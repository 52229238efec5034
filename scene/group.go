// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"a11ychart.org/core/math32"
)

// Group groups together chart elements, establishing a shared
// translation for everything below it. Series, axes, and the legend
// each render into their own group.
type Group struct {
	NodeBase
}

// NewGroup adds a new [Group] to the given parent, with the given name.
func NewGroup(parent Node, name string) *Group {
	g := &Group{}
	initNode(g, parent, name)
	return g
}

func (g *Group) SVGName() string { return "g" }

// LocalBBox returns the union of the bounding boxes of all children,
// each translated by its own translation offset.
func (g *Group) LocalBBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, kid := range g.Children {
		kb := kid.LocalBBox()
		if kb.IsEmpty() {
			continue
		}
		bb = bb.Union(kb.Translate(kid.AsNodeBase().Translate))
	}
	return bb
}
