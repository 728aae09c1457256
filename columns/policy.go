// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package columns

import (
	"fmt"
	"strings"
)

// WidthPolicy determines the width of a column that has no explicit
// width. An explicit width greater than zero always wins.
type WidthPolicy int32

const (
	// Fit sizes the column to its widest value text, or header name.
	Fit WidthPolicy = iota

	// Minimal gives the column a width of one pixel.
	Minimal

	// Fixed gives the column the default width of the layout metrics.
	Fixed
)

var policyNames = [...]string{"fit", "minimal", "fixed"}

func (p WidthPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("WidthPolicy(%d)", int32(p))
	}
	return policyNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p WidthPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *WidthPolicy) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, nm := range policyNames {
		if nm == s {
			*p = WidthPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("columns: unknown width policy %q", string(text))
}
