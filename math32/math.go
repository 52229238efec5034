// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides a float32 based 2D vector and bounding box
// math layer for chart geometry, wrapping [github.com/chewxy/math32]
// for the scalar functions, which has optimized implementations.
package math32

import (
	"github.com/chewxy/math32"
)

const (
	// Pi is the float32 circle constant.
	Pi = math32.Pi

	// Infinity is positive infinity as a float32.
	Infinity = math32.MaxFloat32

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// DegToRad converts a number of degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * DegToRadFactor
}
