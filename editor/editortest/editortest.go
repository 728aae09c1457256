// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editortest provides in-memory editor widgets for tests.
package editortest

import (
	"slices"

	"cogentcore.org/richtree/editor"
	"cogentcore.org/richtree/math32"
)

// Widget is the state common to all fake widgets.
type Widget struct {
	Bounds   math32.Box2
	Disposed bool
}

func (w *Widget) SetBounds(b math32.Box2) { w.Bounds = b }

func (w *Widget) Dispose() { w.Disposed = true }

// TextBox is a fake [editor.TextBox].
type TextBox struct {
	Widget
	Value string
}

func (tb *TextBox) Text() string { return tb.Value }

func (tb *TextBox) SetText(text string) { tb.Value = text }

// CheckBox is a fake [editor.CheckBox].
type CheckBox struct {
	Widget
	Checked bool
}

func (cb *CheckBox) IsChecked() bool { return cb.Checked }

func (cb *CheckBox) SetChecked(checked bool) { cb.Checked = checked }

// ComboBox is a fake [editor.ComboBox].
type ComboBox struct {
	Widget
	Items []string
	Index int

	// Typed is the text typed into the editable field.
	Typed string
}

func (cb *ComboBox) SetItems(items []string) { cb.Items = slices.Clone(items) }

func (cb *ComboBox) Selected() int { return cb.Index }

func (cb *ComboBox) SetSelected(i int) { cb.Index = i }

func (cb *ComboBox) Text() string { return cb.Typed }

// Host is a fake [editor.Host] that keeps every widget it created.
type Host struct {
	TextBoxes  []*TextBox
	CheckBoxes []*CheckBox
	ComboBoxes []*ComboBox
}

func (h *Host) NewTextBox() editor.TextBox {
	tb := &TextBox{}
	h.TextBoxes = append(h.TextBoxes, tb)
	return tb
}

func (h *Host) NewCheckBox() editor.CheckBox {
	cb := &CheckBox{}
	h.CheckBoxes = append(h.CheckBoxes, cb)
	return cb
}

func (h *Host) NewComboBox() editor.ComboBox {
	cb := &ComboBox{}
	h.ComboBoxes = append(h.ComboBoxes, cb)
	return cb
}

// Live returns the number of created widgets that were not disposed.
func (h *Host) Live() int {
	n := 0
	for _, w := range h.TextBoxes {
		if !w.Disposed {
			n++
		}
	}
	for _, w := range h.CheckBoxes {
		if !w.Disposed {
			n++
		}
	}
	for _, w := range h.ComboBoxes {
		if !w.Disposed {
			n++
		}
	}
	return n
}

// LastTextBox returns the most recently created text box, or nil.
func (h *Host) LastTextBox() *TextBox {
	if len(h.TextBoxes) == 0 {
		return nil
	}
	return h.TextBoxes[len(h.TextBoxes)-1]
}

// LastCheckBox returns the most recently created check box, or nil.
func (h *Host) LastCheckBox() *CheckBox {
	if len(h.CheckBoxes) == 0 {
		return nil
	}
	return h.CheckBoxes[len(h.CheckBoxes)-1]
}

// LastComboBox returns the most recently created combo box, or nil.
func (h *Host) LastComboBox() *ComboBox {
	if len(h.ComboBoxes) == 0 {
		return nil
	}
	return h.ComboBoxes[len(h.ComboBoxes)-1]
}
