// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the retained scene graph that charts render
// into: a tree of [Node] elements (groups, rectangles, text) under a
// [Scene] root, serializable to SVG. The scene also carries the
// rendering-mode and engine-identity state that element styling and
// accessibility geometry corrections depend on.
package scene

import (
	"strconv"

	"a11ychart.org/core/math32"
	"a11ychart.org/core/styles"
)

// Engine identifies the rendering engine a scene is displayed by.
// Engine-specific geometry corrections (e.g., text baseline offsets)
// key off this tag; it is supplied by the embedding environment at
// scene construction, never detected per call.
type Engine int32

const (
	// Blink is the Chromium rendering engine, the default.
	Blink Engine = iota

	// Gecko is the Firefox rendering engine.
	Gecko

	// WebKit is the Safari rendering engine.
	WebKit
)

var engineNames = map[Engine]string{
	Blink:  "Blink",
	Gecko:  "Gecko",
	WebKit: "WebKit",
}

func (e Engine) String() string {
	if s, ok := engineNames[e]; ok {
		return s
	}
	return "Engine(" + strconv.Itoa(int(e)) + ")"
}

// Scene is the root of a chart scene graph.
type Scene struct {
	// Name is the name of the scene, used as the root id.
	Name string

	// Size is the size of the scene in pixels.
	Size math32.Vector2

	// StyledMode, when set, omits inline presentation attributes
	// (stroke, fill, widths) from created elements, leaving all
	// appearance to the external [Scene.Sheet] stylesheet.
	StyledMode bool

	// Engine is the rendering engine identity for this scene.
	Engine Engine

	// Sheet is the external stylesheet governing appearance in
	// styled mode, or nil.
	Sheet *styles.Sheet

	// Root is the root group of the scene tree.
	Root *Group
}

// NewScene returns a new [Scene] with the given name and size,
// with an initialized root group.
func NewScene(name string, width, height float32) *Scene {
	sc := &Scene{Name: name, Size: math32.Vec2(width, height)}
	sc.Root = &Group{}
	initNode(sc.Root, nil, name)
	return sc
}

// SetSheet parses the given CSS text and sets it as the scene's
// external stylesheet, for use in styled mode.
func (sc *Scene) SetSheet(src string) error {
	sh, err := styles.ParseSheet(src)
	if err != nil {
		return err
	}
	sc.Sheet = sh
	return nil
}

// Destroy destroys the scene tree, releasing all node resources.
func (sc *Scene) Destroy() {
	if sc.Root != nil {
		sc.Root.Destroy()
	}
}
