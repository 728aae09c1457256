// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"slices"

	"cogentcore.org/richtree/editor"
	"cogentcore.org/richtree/layout"
	"cogentcore.org/richtree/math32"
)

// host is a headless [treeview.Host]. Its viewport never scrolls, and
// its editor widgets only keep their state, which --set edits fill in.
type host struct {
	layout.Measurer

	content math32.Vector2
	passes  int

	// widget is the most recently created editor widget.
	widget editor.Widget
}

func (h *host) SetContentSize(size math32.Vector2) { h.content = size }

func (h *host) ScrollOffset() math32.Vector2 { return math32.Vector2{} }

func (h *host) Invalidate() { h.passes++ }

func (h *host) NewTextBox() editor.TextBox {
	tb := &textBox{}
	h.widget = tb
	return tb
}

func (h *host) NewCheckBox() editor.CheckBox {
	cb := &checkBox{}
	h.widget = cb
	return cb
}

func (h *host) NewComboBox() editor.ComboBox {
	cb := &comboBox{}
	h.widget = cb
	return cb
}

type field struct {
	bounds   math32.Box2
	disposed bool
}

func (f *field) SetBounds(b math32.Box2) { f.bounds = b }

func (f *field) Dispose() { f.disposed = true }

type textBox struct {
	field
	text string
}

func (tb *textBox) Text() string { return tb.text }

func (tb *textBox) SetText(text string) { tb.text = text }

type checkBox struct {
	field
	checked bool
}

func (cb *checkBox) IsChecked() bool { return cb.checked }

func (cb *checkBox) SetChecked(checked bool) { cb.checked = checked }

type comboBox struct {
	field
	items    []string
	selected int
	typed    string
}

func (cb *comboBox) SetItems(items []string) { cb.items = slices.Clone(items) }

func (cb *comboBox) Selected() int { return cb.selected }

func (cb *comboBox) SetSelected(i int) { cb.selected = i }

func (cb *comboBox) Text() string { return cb.typed }
