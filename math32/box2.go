// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this bounding box: Max - Min.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ExpandByPoint grows the bounding box as needed to include the given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExpandByScalar expands each dimension by scalar on both sides.
func (b Box2) ExpandByScalar(scalar float32) Box2 {
	return Box2{b.Min.SubScalar(scalar), b.Max.AddScalar(scalar)}
}

// Translate returns this bounding box translated by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// ContainsPoint returns whether this bounding box contains the given point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// Union returns the smallest bounding box containing both this box and other.
// Empty boxes do not contribute.
func (b Box2) Union(other Box2) Box2 {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Intersect returns the intersection with other, which is empty
// if the boxes do not overlap.
func (b Box2) Intersect(other Box2) Box2 {
	nb := Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
	if nb.IsEmpty() {
		return B2Empty()
	}
	return nb
}

// ToRect returns the [image.Rectangle] version of this bounding box,
// with min values floored and max values ceiled to fully contain it.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}
