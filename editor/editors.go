// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"strconv"
	"strings"

	"cogentcore.org/richtree/variant"
)

// Editor is the strategy editing one value with one native widget.
type Editor interface {

	// Widget returns the native widget of the editor.
	Widget() Widget

	// Accept returns the value to commit when the accept key is
	// pressed, given the value the session started with.
	Accept(original variant.Value) (variant.Value, bool)

	// Changed returns the value to commit right after the widget
	// changed its state, for editors that commit immediately.
	Changed(original variant.Value) (variant.Value, bool)
}

// Factory creates an editor for the given value, seeded with it.
// It returns nil when the value can not be edited.
type Factory func(h Host, v variant.Value) Editor

// TextEditor edits String and Number values in a [TextBox].
type TextEditor struct {
	Box TextBox
}

// NewTextEditor is the [Factory] of [TextEditor].
func NewTextEditor(h Host, v variant.Value) Editor {
	tb := h.NewTextBox()
	tb.SetText(v.Text())
	return &TextEditor{Box: tb}
}

func (e *TextEditor) Widget() Widget { return e.Box }

// Accept commits the typed text. A blank text restores the original
// value. Number values stay numbers when the text parses as one.
func (e *TextEditor) Accept(original variant.Value) (variant.Value, bool) {
	text := e.Box.Text()
	if strings.TrimSpace(text) == "" {
		e.Box.SetText(original.Text())
		return original, true
	}
	if original.Kind() == variant.Number {
		if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return variant.NumberOf(f), true
		}
	}
	return variant.StringOf(text), true
}

func (e *TextEditor) Changed(original variant.Value) (variant.Value, bool) {
	return original, false
}

// BoolEditor edits Bool values in a [CheckBox], committing on toggle.
type BoolEditor struct {
	Box CheckBox
}

// NewBoolEditor is the [Factory] of [BoolEditor].
func NewBoolEditor(h Host, v variant.Value) Editor {
	cb := h.NewCheckBox()
	cb.SetChecked(v.Bool())
	return &BoolEditor{Box: cb}
}

func (e *BoolEditor) Widget() Widget { return e.Box }

func (e *BoolEditor) Accept(original variant.Value) (variant.Value, bool) {
	return variant.BoolOf(e.Box.IsChecked()), true
}

func (e *BoolEditor) Changed(original variant.Value) (variant.Value, bool) {
	return variant.BoolOf(e.Box.IsChecked()), true
}

// ListEditor edits List values in a [ComboBox].
type ListEditor struct {
	Box ComboBox
}

// NewListEditor is the [Factory] of [ListEditor]. It returns nil for
// lists without elements, since there is nothing to select.
func NewListEditor(h Host, v variant.Value) Editor {
	if v.Len() == 0 {
		return nil
	}
	cb := h.NewComboBox()
	cb.SetItems(v.Items())
	cb.SetSelected(v.Selected())
	return &ListEditor{Box: cb}
}

func (e *ListEditor) Widget() Widget { return e.Box }

// Accept appends the typed text to the list if it is not already
// there, and selects it. Without typed text, it commits the selection.
func (e *ListEditor) Accept(original variant.Value) (variant.Value, bool) {
	if text := strings.TrimSpace(e.Box.Text()); text != "" {
		return original.WithItem(text), true
	}
	return original.WithSelected(e.Box.Selected())
}

// Changed commits a new selection.
func (e *ListEditor) Changed(original variant.Value) (variant.Value, bool) {
	if e.Box.Selected() == original.Selected() {
		return original, false
	}
	return original.WithSelected(e.Box.Selected())
}
