// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the style values consumed by chart
// rendering and accessibility focus indication, including CSS color
// parsing and external stylesheet handling for styled mode.
package styles

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color string into a [color.RGBA].
// It supports hex (#rgb, #rrggbb, #rrggbbaa), rgb(...) and rgba(...)
// functional notation, and the standard SVG 1.1 color keywords.
func ParseColor(str string) (color.RGBA, error) {
	s := strings.TrimSpace(strings.ToLower(str))
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("styles.ParseColor: empty color string")
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGB(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("styles.ParseColor: unknown color %q", str)
}

// AsHex returns the #rrggbb hex representation of the given color,
// with an aa alpha suffix when the color is not fully opaque.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func parseHex(s string) (color.RGBA, error) {
	h := s[1:]
	var r, g, b, a uint64
	var err error
	a = 0xff
	switch len(h) {
	case 3:
		r, err = strconv.ParseUint(strings.Repeat(h[0:1], 2), 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(strings.Repeat(h[1:2], 2), 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(strings.Repeat(h[2:3], 2), 16, 8)
		}
	case 6, 8:
		r, err = strconv.ParseUint(h[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(h[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(h[4:6], 16, 8)
		}
		if err == nil && len(h) == 8 {
			a, err = strconv.ParseUint(h[6:8], 16, 8)
		}
	default:
		return color.RGBA{}, fmt.Errorf("styles.ParseColor: invalid hex color %q", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("styles.ParseColor: invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func parseRGB(s string) (color.RGBA, error) {
	open := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if open < 0 || end < open {
		return color.RGBA{}, fmt.Errorf("styles.ParseColor: malformed color %q", s)
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("styles.ParseColor: malformed color %q", s)
	}
	var vals [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("styles.ParseColor: bad component in %q", s)
		}
		vals[i] = uint8(v)
	}
	a := uint8(255)
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 32)
		if err != nil || f < 0 || f > 1 {
			return color.RGBA{}, fmt.Errorf("styles.ParseColor: bad alpha in %q", s)
		}
		a = uint8(f*255 + 0.5)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: a}, nil
}
