// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import "cogentcore.org/richtree/math32"

// Widget is a native editor widget of the host toolkit, attached as
// a child of the tree view while an edit session is active.
type Widget interface {

	// SetBounds positions the widget over the edited cell,
	// in viewport coordinates.
	SetBounds(b math32.Box2)

	// Dispose detaches and destroys the widget.
	Dispose()
}

// TextBox is a single line text input.
type TextBox interface {
	Widget
	Text() string
	SetText(text string)
}

// CheckBox is a two state check box.
type CheckBox interface {
	Widget
	IsChecked() bool
	SetChecked(checked bool)
}

// ComboBox is an editable drop down list.
type ComboBox interface {
	Widget
	SetItems(items []string)

	// Selected returns the index of the selected item, or -1.
	Selected() int
	SetSelected(i int)

	// Text returns the text typed into the editable field.
	Text() string
}

// Host creates native editor widgets.
type Host interface {
	NewTextBox() TextBox
	NewCheckBox() CheckBox
	NewComboBox() ComboBox
}
