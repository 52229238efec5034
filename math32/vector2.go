// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with both components set to scalar.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{X: scalar, Y: scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Set sets the X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets both components to scalar.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// Add returns the vector sum v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// AddScalar adds scalar to each component.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vec2(v.X+scalar, v.Y+scalar)
}

// Sub returns the vector difference v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// SubScalar subtracts scalar from each component.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	return Vec2(v.X-scalar, v.Y-scalar)
}

// Mul returns the component-wise product with other.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar multiplies each component by scalar.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vec2(v.X*scalar, v.Y*scalar)
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

// Min returns the component-wise minimum with other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// Max returns the component-wise maximum with other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// Length returns the length (magnitude) of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the distance from this point to other.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}

// ToPointFloor returns the [image.Point] with floored components.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{X: int(Floor(v.X)), Y: int(Floor(v.Y))}
}

// ToPointCeil returns the [image.Point] with ceiled components.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{X: int(Ceil(v.X)), Y: int(Ceil(v.Y))}
}
