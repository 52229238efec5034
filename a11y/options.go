// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package a11y

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"a11ychart.org/core/styles"
)

// Options are the accessibility options for a chart.
type Options struct {

	// Enabled enables accessibility functionality for the chart.
	Enabled bool `toml:"enabled"`

	// Description is a textual description of the chart exposed
	// to assistive technology.
	Description string `toml:"description,omitempty"`

	// KeyboardNavigation configures keyboard navigation of
	// chart elements.
	KeyboardNavigation KeyboardNavigationOptions `toml:"keyboardNavigation"`
}

// KeyboardNavigationOptions configure keyboard navigation of
// chart elements.
type KeyboardNavigationOptions struct {

	// Enabled enables keyboard navigation for the chart.
	Enabled bool `toml:"enabled"`

	// FocusBorder configures the visible focus indicator drawn
	// around the chart element that has keyboard focus.
	FocusBorder FocusBorderOptions `toml:"focusBorder"`
}

// FocusBorderOptions configure the visible focus indicator border.
type FocusBorderOptions struct {

	// Enabled draws the focus border around the focused element.
	// When off, native focus is still assigned but no border is drawn.
	Enabled bool `toml:"enabled"`

	// HideBrowserFocusOutline suppresses the native focus outline on
	// the focused host element, leaving the drawn border as the only
	// visible focus indicator.
	HideBrowserFocusOutline bool `toml:"hideBrowserFocusOutline"`

	// Margin is the distance in pixels between the element's bounding
	// box and the drawn border.
	Margin float32 `toml:"margin"`

	// Style is the appearance of the drawn border. Ignored in
	// styled mode, where the external stylesheet governs appearance.
	Style styles.FocusStyle `toml:"style"`
}

// Defaults sets default accessibility option values.
func (o *Options) Defaults() {
	o.Enabled = true
	o.KeyboardNavigation.Defaults()
}

// Defaults sets default keyboard navigation option values.
func (kn *KeyboardNavigationOptions) Defaults() {
	kn.Enabled = true
	kn.FocusBorder.Defaults()
}

// Defaults sets default focus border option values.
func (fb *FocusBorderOptions) Defaults() {
	fb.Enabled = true
	fb.HideBrowserFocusOutline = true
	fb.Margin = 2
	fb.Style = styles.FocusStyle{
		Color:        "#334eff",
		LineWidth:    2,
		BorderRadius: 3,
	}
}

// OpenOptions reads accessibility options in TOML format from the
// given file, layered over the defaults.
func OpenOptions(filename string) (*Options, error) {
	o := &Options{}
	o.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("a11y.OpenOptions: %w", err)
	}
	if err := toml.Unmarshal(b, o); err != nil {
		return nil, fmt.Errorf("a11y.OpenOptions: %q: %w", filename, err)
	}
	return o, nil
}
