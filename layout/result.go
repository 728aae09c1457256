// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image"

	"cogentcore.org/richtree/columns"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render/cell"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

// ItemKinds are the kinds of positioned [Item]s.
type ItemKinds int32

const (
	// LabelItem is the label of a node.
	LabelItem ItemKinds = iota

	// ValueItem is one value of a node, in its column.
	ValueItem
)

func (k ItemKinds) String() string {
	if k == ValueItem {
		return "Value"
	}
	return "Label"
}

// Item is a positioned text item: a node label or a node value.
type Item struct {
	Kind ItemKinds
	Node *tree.Node

	// Index is the value index of a [ValueItem], and -1 for labels.
	Index int

	// Depth is the tree depth of the node, 0 for children of the root.
	Depth int

	// Row is the visible row of the node.
	Row int

	Text   string
	Bounds math32.Box2

	// Value and Renderer are the value of a [ValueItem] and the
	// renderer drawing it.
	Value    variant.Value
	Renderer cell.Renderer
}

// MarkerKinds are the kinds of positioned [Marker]s.
type MarkerKinds int32

const (
	// CheckMarker is a check box.
	CheckMarker MarkerKinds = iota

	// IconMarker is a node icon.
	IconMarker
)

// Marker is a positioned check box or icon.
type Marker struct {
	Kind MarkerKinds
	Node *tree.Node

	// Index is the value index of a check box shown for a boolean value,
	// and -1 for markers bound to the node itself.
	Index int

	Bounds  math32.Box2
	Checked bool
	Icon    image.Image

	// Value and Renderer are the value of a check box bound to a value
	// slot and the renderer drawing it. Renderer is nil for markers
	// bound to the node itself.
	Value    variant.Value
	Renderer cell.Renderer
}

// IsValue returns whether the marker is bound to a value slot.
func (m *Marker) IsValue() bool {
	return m.Index >= 0
}

// Header is the positioned name of a registered column.
type Header struct {
	Column *columns.Column
	Index  int
	Text   string
	Bounds math32.Box2
}

// Line is a separator line.
type Line struct {
	From math32.Vector2
	To   math32.Vector2
}

// Column is the geometry of one column index in a layout pass.
type Column struct {
	Index int

	// Column is the registered column at the index, or nil.
	Column *columns.Column

	Left  float32
	Right float32

	// Bindings are the value slots registered at this index.
	Bindings []columns.Binding
}

// Result is the complete set of positioned visual items of one layout
// pass. It is recreated by every pass and never patched.
type Result struct {
	Labels     []Item
	Values     []Item
	Checks     []Marker
	Icons      []Marker
	Headers    []Header
	Separators []Line
	Columns    []Column

	// Rows is the number of visible node rows.
	Rows int

	// Top is the top of the first row.
	Top float32

	// RowHeight is the fixed height of each row.
	RowHeight float32

	// LabelExtent is the right edge of the widest label.
	LabelExtent float32

	// Size is the content size, which bounds every item.
	Size math32.Vector2
}

// ItemAt returns the label or value item containing the given point
// in content coordinates.
func (r *Result) ItemAt(pt math32.Vector2) (*Item, bool) {
	for i := range r.Values {
		if r.Values[i].Bounds.ContainsPoint(pt) {
			return &r.Values[i], true
		}
	}
	for i := range r.Labels {
		if r.Labels[i].Bounds.ContainsPoint(pt) {
			return &r.Labels[i], true
		}
	}
	return nil, false
}

// CheckAt returns the check box whose hit rectangle contains the given
// point in content coordinates.
func (r *Result) CheckAt(pt math32.Vector2) (*Marker, bool) {
	for i := range r.Checks {
		if r.Checks[i].Bounds.ContainsPoint(pt) {
			return &r.Checks[i], true
		}
	}
	return nil, false
}

// RowBounds returns the bounds of the full row starting at the given y.
func (r *Result) RowBounds(y float32) math32.Box2 {
	return math32.B2(0, y, r.Size.X, y+r.RowHeight)
}

// LabelOf returns the label item of the given node, or nil if the node
// was not laid out.
func (r *Result) LabelOf(n *tree.Node) *Item {
	for i := range r.Labels {
		if r.Labels[i].Node == n {
			return &r.Labels[i]
		}
	}
	return nil
}

// ValueOf returns the value item of the given node value slot, or nil.
// Boolean values are laid out as check markers; see [Result.CheckOf].
func (r *Result) ValueOf(n *tree.Node, index int) *Item {
	for i := range r.Values {
		if r.Values[i].Node == n && r.Values[i].Index == index {
			return &r.Values[i]
		}
	}
	return nil
}

// CheckOf returns the check marker of the given node and value index,
// which is -1 for the check box of the node itself, or nil.
func (r *Result) CheckOf(n *tree.Node, index int) *Marker {
	for i := range r.Checks {
		if r.Checks[i].Node == n && r.Checks[i].Index == index {
			return &r.Checks[i]
		}
	}
	return nil
}

// IconOf returns the icon marker of the given node, or nil.
func (r *Result) IconOf(n *tree.Node) *Marker {
	for i := range r.Icons {
		if r.Icons[i].Node == n {
			return &r.Icons[i]
		}
	}
	return nil
}
