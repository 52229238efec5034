// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package a11y implements chart accessibility: the visible focus
// indicator border drawn around the chart element that currently has
// keyboard focus, and the coordination of that border with the host
// environment's native input focus.
package a11y

import (
	"log/slog"

	"a11ychart.org/core/math32"
	"a11ychart.org/core/scene"
	"a11ychart.org/core/styles"
)

const (
	// DefaultFocusMargin is the margin in pixels between an element's
	// bounding box and its focus border when none is specified.
	DefaultFocusMargin = 3

	// FocusBorderClass is the class set on focus border overlay
	// elements, for styling and selection.
	FocusBorderClass = "a11ychart-focus-border"

	// focusBorderZIndex stacks the overlay above sibling content.
	focusBorderZIndex = 99
)

// Text bounding boxes are anchored at the baseline and reported
// differently across rendering engines, so the border position for
// text elements is derived from the element's explicit x/y position,
// corrected by these empirically calibrated per-engine baseline
// factors. Do not change them: they are tuned to match rendered text
// and any drift is directly visible as a misaligned border.
const (
	textBaselineFactor  = 0.068
	geckoBaselineFactor = 0.25
)

// baselineFactor returns the vertical baseline correction factor for
// non-rotated text on the given engine.
func baselineFactor(eng scene.Engine) float32 {
	if eng == scene.Gecko {
		return geckoBaselineFactor
	}
	return textBaselineFactor
}

// AddFocusBorder draws a focus indicator border around the given
// element, replacing any border the element already owns. The border
// is a rectangle enclosing the element's bounding box plus margin
// (negative margin selects [DefaultFocusMargin]), attached as a
// sibling within the element's parent group so it follows the chart's
// coordinate transforms. In styled mode the stroke attributes from
// style are omitted and left to the external stylesheet.
func AddFocusBorder(sc *scene.Scene, n scene.Node, margin float32, style *styles.FocusStyle) {
	nb := n.AsNodeBase()
	if nb.FocusBorder != nil {
		RemoveFocusBorder(n)
	}
	if margin < 0 {
		margin = DefaultFocusMargin
	}
	if style == nil {
		style = &styles.FocusStyle{}
	}

	bb := n.LocalBBox()
	if bb.IsEmpty() { // e.g., a group with no children
		bb = math32.Box2{}
	}
	sz := bb.Size()
	pos := bb.Min.Add(nb.Translate).SubScalar(margin)
	if txt, ok := n.(*scene.Text); ok {
		rotated := nb.Rotation != 0
		pos.X = txt.Pos.X - sz.X*0.5 - margin
		pos.Y = txt.Pos.Y - sz.Y*0.5 - margin
		if rotated {
			pos.X += sz.Y * textBaselineFactor
		} else {
			pos.Y -= sz.Y * baselineFactor(sc.Engine)
		}
	}

	parent := nb.Parent
	if parent == nil {
		parent = sc.Root
	}
	border := scene.NewRect(parent, nb.Name+"-focus-border", pos, sz.AddScalar(2*margin))
	border.Class = FocusBorderClass
	border.ZIndex = focusBorderZIndex
	border.Radius = styles.RadiusInt(style.BorderRadius)
	if !sc.StyledMode {
		if style.Color != "" {
			c, err := styles.ParseColor(style.Color)
			if err != nil {
				slog.Error("a11y.AddFocusBorder: invalid focus border color",
					"color", style.Color, "err", err)
			} else {
				border.Stroke = styles.AsHex(c)
			}
		}
		border.StrokeWidth = style.LineWidth
	}
	nb.FocusBorder = border
}

// RemoveFocusBorder removes and destroys the focus border owned by
// the given element, if any. It is a no-op on an element without one,
// so repeated calls are always safe.
func RemoveFocusBorder(n scene.Node) {
	nb := n.AsNodeBase()
	if nb.FocusBorder == nil {
		return
	}
	nb.FocusBorder.Destroy()
	nb.FocusBorder = nil
}
