// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"strconv"
	"strings"
)

// FocusStyle specifies the appearance of the focus indicator border
// drawn around the chart element that has keyboard focus.
// In styled mode the Color and LineWidth are ignored and the border
// appearance is governed by the external stylesheet instead.
type FocusStyle struct {

	// Color is the stroke color of the focus border, as a CSS color
	// string. Empty leaves the stroke unset.
	Color string `toml:"color"`

	// LineWidth is the stroke width of the focus border in pixels.
	// Zero leaves the stroke width unset.
	LineWidth float32 `toml:"lineWidth"`

	// BorderRadius is the corner radius of the focus border.
	// It accepts loosely typed configuration values (number or numeric
	// string); anything non-numeric resolves to 0. Use [RadiusInt] to
	// read it.
	BorderRadius any `toml:"borderRadius"`
}

// RadiusInt returns the given loosely typed corner radius value as an
// integer number of pixels. Numeric values are truncated; absent or
// non-numeric values resolve to 0.
func RadiusInt(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return x
	case int64:
		return int(x)
	case float32:
		return int(x)
	case float64:
		return int(x)
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(x), "px"))
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 32); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}
