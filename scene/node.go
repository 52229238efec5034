// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/jinzhu/copier"

	"a11ychart.org/core/host"
	"a11ychart.org/core/math32"
)

// Walk function return values, for readability.
const (
	// Continue = true can be returned from walk functions to continue
	// to the next node.
	Continue = true

	// Break = false can be returned from walk functions to stop
	// descending into the current node.
	Break = false
)

// Node is the interface for all nodes in a chart scene graph.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// LocalBBox returns the bounding box of the node in local
	// (pre-translation) coordinates.
	LocalBBox() math32.Box2

	// SVGName returns the SVG element name (e.g., "rect", "text").
	SVGName() string
}

// NodeBase is the base type for all elements within a chart scene
// graph. It implements the [Node] interface and contains the core
// tree functionality.
type NodeBase struct {

	// Name is the name of this node, unique relative to other
	// children of the same parent, used for finding and serializing.
	Name string

	// Class contains user-defined class name(s), used primarily for
	// attaching external CSS styles to display elements in styled
	// mode. Multiple class names are separated by spaces.
	Class string

	// This is the value of this node as its true underlying type,
	// which allows methods defined on base types to call methods
	// defined on higher-level types. It is set to nil when the node
	// is destroyed.
	This Node `copier:"-"`

	// Parent is the parent of this node, set automatically when the
	// node is added as a child of a parent.
	Parent Node `copier:"-"`

	// Children is the list of children of this node.
	Children []Node `copier:"-"`

	// Properties is a property map for arbitrary key-value properties,
	// serialized as extra attributes.
	Properties map[string]any `copier:"-"`

	// Translate is the translation offset applied to this node's
	// local geometry.
	Translate math32.Vector2

	// Rotation is the rotation of this node in degrees, or 0 for none.
	Rotation float32

	// ZIndex determines the stacking order relative to siblings:
	// higher values render later (on top). Siblings with equal ZIndex
	// keep their insertion order.
	ZIndex int

	// Proxy is the optional host element backing this node for native
	// input focus, used by accessibility keyboard navigation.
	Proxy host.Focuser `copier:"-"`

	// FocusBorder is the focus indicator overlay currently owned by
	// this node, or nil. At most one exists per node at any time.
	// It is managed exclusively by the a11y package.
	FocusBorder *Rect `copier:"-"`
}

func (nb *NodeBase) AsNodeBase() *NodeBase  { return nb }
func (nb *NodeBase) LocalBBox() math32.Box2 { return math32.B2Empty() }
func (nb *NodeBase) SVGName() string        { return "g" }

// initNode sets the This back-reference and name, and adds the node
// to the given parent if non-nil.
func initNode(n Node, parent Node, name string) {
	nb := n.AsNodeBase()
	nb.This = n
	nb.Name = name
	if parent != nil {
		parent.AsNodeBase().AddChild(n)
	}
}

// AddChild adds the given node as a child of this node,
// setting its parent accordingly.
func (nb *NodeBase) AddChild(kid Node) {
	kid.AsNodeBase().Parent = nb.This
	nb.Children = append(nb.Children, kid)
}

// IndexInParent returns the index of this node in its parent's
// children list, or -1 if it has no parent.
func (nb *NodeBase) IndexInParent() int {
	if nb.Parent == nil {
		return -1
	}
	return slices.IndexFunc(nb.Parent.AsNodeBase().Children, func(k Node) bool {
		return k.AsNodeBase() == nb
	})
}

// Delete removes this node from its parent's children list.
// It does not destroy the node; see [NodeBase.Destroy].
func (nb *NodeBase) Delete() {
	idx := nb.IndexInParent()
	if idx < 0 {
		return
	}
	pb := nb.Parent.AsNodeBase()
	pb.Children = slices.Delete(pb.Children, idx, idx+1)
	nb.Parent = nil
}

// Destroy removes this node from its parent and recursively destroys
// it and all of its children, releasing their resources. A destroyed
// node must not be used further; it is safe to call Destroy again.
func (nb *NodeBase) Destroy() {
	if nb.This == nil {
		return
	}
	nb.Delete()
	nb.destroy()
}

func (nb *NodeBase) destroy() {
	for _, kid := range nb.Children {
		kid.AsNodeBase().destroy()
	}
	nb.Children = nil
	nb.Parent = nil
	nb.Proxy = nil
	nb.FocusBorder = nil
	nb.This = nil
}

// IsDestroyed returns whether this node has been destroyed.
func (nb *NodeBase) IsDestroyed() bool {
	return nb.This == nil
}

// SetProperty sets the given arbitrary key-value property.
func (nb *NodeBase) SetProperty(key string, val any) {
	if nb.Properties == nil {
		nb.Properties = make(map[string]any)
	}
	nb.Properties[key] = val
}

// Property returns the value of the given property,
// or nil if it is not set.
func (nb *NodeBase) Property(key string) any {
	return nb.Properties[key]
}

// WalkDown calls the given function on this node and then each of its
// children recursively, depth first. The walk stops descending into a
// node when the function returns [Break].
func (nb *NodeBase) WalkDown(fun func(n Node) bool) {
	if nb.This == nil {
		return
	}
	if !fun(nb.This) {
		return
	}
	for _, kid := range nb.Children {
		kid.AsNodeBase().WalkDown(fun)
	}
}

// Clone returns a copy of this node without any children or parent,
// copying all of the concrete field values.
func (nb *NodeBase) Clone() Node {
	if nb.This == nil {
		return nil
	}
	nc := reflect.New(reflect.TypeOf(nb.This).Elem()).Interface().(Node)
	ncb := nc.AsNodeBase()
	if err := copier.Copy(nc, nb.This); err != nil {
		slog.Error("scene.NodeBase.Clone: copy failed", "node", nb.Name, "err", err)
	}
	// copier does not honor the skip tags on embedded struct fields,
	// so the tree references must be cleared here or the clone would
	// share Children with (and point back into) the original tree.
	ncb.Parent = nil
	ncb.Children = nil
	ncb.Proxy = nil
	ncb.FocusBorder = nil
	ncb.Properties = maps.Clone(nb.Properties)
	ncb.This = nc
	return nc
}
