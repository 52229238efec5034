// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Sheet is a parsed external stylesheet, used when a chart runs in
// styled mode: inline stroke attributes are omitted from rendered
// elements and their appearance is governed by these rules instead.
type Sheet struct {
	// rules maps each selector to its property declarations,
	// later rules overriding earlier ones per normal cascade order.
	rules map[string]map[string]string
}

// ParseSheet parses CSS text into a [Sheet].
func ParseSheet(src string) (*Sheet, error) {
	ss, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("styles.ParseSheet: %w", err)
	}
	sh := &Sheet{rules: make(map[string]map[string]string)}
	sh.addRules(ss.Rules)
	return sh, nil
}

func (sh *Sheet) addRules(rules []*css.Rule) {
	for _, r := range rules {
		if r.Kind == css.AtRule {
			sh.addRules(r.Rules)
			continue
		}
		for _, sel := range r.Selectors {
			sel = strings.TrimSpace(sel)
			props := sh.rules[sel]
			if props == nil {
				props = make(map[string]string)
				sh.rules[sel] = props
			}
			for _, d := range r.Declarations {
				props[strings.ToLower(d.Property)] = strings.TrimSpace(d.Value)
			}
		}
	}
}

// Properties returns the declared property map for the given selector,
// or nil if the sheet has no rule for it.
func (sh *Sheet) Properties(selector string) map[string]string {
	if sh == nil {
		return nil
	}
	return sh.rules[selector]
}

// FocusStyle resolves a [FocusStyle] from the rule for the given
// selector, reading the stroke, stroke-width, and rx properties.
// It reports false if the sheet has no rule for the selector.
func (sh *Sheet) FocusStyle(selector string) (FocusStyle, bool) {
	props := sh.Properties(selector)
	if props == nil {
		return FocusStyle{}, false
	}
	fs := FocusStyle{Color: props["stroke"]}
	if sw, ok := props["stroke-width"]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(sw, "px"), 32); err == nil {
			fs.LineWidth = float32(f)
		}
	}
	if rx, ok := props["rx"]; ok {
		fs.BorderRadius = rx
	}
	return fs, true
}
