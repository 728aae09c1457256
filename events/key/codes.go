// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key codes that inline editors react to.
package key

import "fmt"

// Codes are the codes of the keys delivered to inline editors.
// Keys without a dedicated code are delivered as [CodeUnknown]
// with their text.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeReturnEnter
	CodeEscape
	CodeTab
	CodeSpacebar
	CodeBackspace
	CodeUpArrow
	CodeDownArrow
)

var codeNames = [...]string{"Unknown", "ReturnEnter", "Escape", "Tab", "Spacebar", "Backspace", "UpArrow", "DownArrow"}

func (c Codes) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("Codes(%d)", int32(c))
	}
	return codeNames[c]
}

// IsAccept returns whether the code commits an edit.
func (c Codes) IsAccept() bool {
	return c == CodeReturnEnter
}

// IsCancel returns whether the code cancels an edit.
func (c Codes) IsCancel() bool {
	return c == CodeEscape
}

// FromRune returns the code for the given rune, as delivered by
// toolkits reporting key presses as characters.
func FromRune(r rune) Codes {
	switch r {
	case '\r', '\n':
		return CodeReturnEnter
	case 0x1b:
		return CodeEscape
	case '\t':
		return CodeTab
	case ' ':
		return CodeSpacebar
	case '\b', 0x7f:
		return CodeBackspace
	}
	return CodeUnknown
}
