// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the hierarchical node entity shown by the
// multi-column tree view, centered on [Node]. A node owns its
// children and holds no reference to its parent: traversal is always
// top-down from a root. Every mutation through the node methods raises
// a [Change] notification to the node's observers.
package tree

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"cogentcore.org/richtree/variant"
)

// ErrIndexOutOfRange is returned by child and value operations given an
// index outside of the valid range.
var ErrIndexOutOfRange = errors.New("index out of range")

// Node is one entry of the hierarchical tree: a label, an optional icon,
// optional typed values laid out into columns, and ordered children.
// The zero value is a valid empty node; see [NewRoot] for the root.
type Node struct {
	text    string
	icon    image.Image
	checked bool
	hidden  bool

	// values is nil when the node has no values, which is distinct
	// from an empty slice only in that neither contributes columns.
	values []variant.Value

	children  []*Node
	observers observers
}

// NewRoot returns a new root node. The root has no visual representation
// of its own; only its children are laid out and painted.
func NewRoot() *Node {
	return &Node{}
}

// New returns a new detached node with the given text and values.
func New(text string, values ...variant.Value) *Node {
	n := &Node{text: text}
	if len(values) > 0 {
		n.values = slices.Clone(values)
	}
	return n
}

// String returns the text of the node.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	return n.text
}

// Text returns the label text of the node.
func (n *Node) Text() string {
	return n.text
}

// SetText sets the label text and raises a [Structure] change
// with a nil detail.
func (n *Node) SetText(text string) *Node {
	if n.text == text {
		return n
	}
	n.text = text
	n.notify(Change{Type: Structure, Node: n, Source: n, Index: -1})
	return n
}

// Icon returns the icon of the node, which may be nil.
func (n *Node) Icon() image.Image {
	return n.icon
}

// SetIcon sets the icon and raises a [Structure] change with a nil detail.
func (n *Node) SetIcon(icon image.Image) *Node {
	n.icon = icon
	n.notify(Change{Type: Structure, Node: n, Source: n, Index: -1})
	return n
}

// IsChecked returns the checked flag of the node.
func (n *Node) IsChecked() bool {
	return n.checked
}

// SetChecked sets the checked flag and raises a [Check] change if it changed.
func (n *Node) SetChecked(checked bool) *Node {
	if n.checked == checked {
		return n
	}
	n.checked = checked
	n.notify(Change{Type: Check, Node: n, Source: n, Index: -1})
	return n
}

// IsHidden returns whether the node is hidden. Layout skips
// the whole subtree rooted at a hidden node.
func (n *Node) IsHidden() bool {
	return n.hidden
}

// SetHidden sets the hidden flag and raises a [Visibility] change
// if it changed.
func (n *Node) SetHidden(hidden bool) *Node {
	if n.hidden == hidden {
		return n
	}
	n.hidden = hidden
	n.notify(Change{Type: Visibility, Node: n, Source: n, Index: -1})
	return n
}

// HasValues returns whether the node has at least one value.
func (n *Node) HasValues() bool {
	return len(n.values) > 0
}

// NumValues returns the number of values, which is the number of
// columns the node contributes to.
func (n *Node) NumValues() int {
	return len(n.values)
}

// Values returns a copy of the values of the node.
func (n *Node) Values() []variant.Value {
	return slices.Clone(n.values)
}

// Value returns the value at the given index and whether it exists.
func (n *Node) Value(i int) (variant.Value, bool) {
	if i < 0 || i >= len(n.values) {
		return variant.Value{}, false
	}
	return n.values[i], true
}

// SetValues replaces all the values and raises a [Value] change.
// No values means the node has no values.
func (n *Node) SetValues(values ...variant.Value) *Node {
	n.values = nil
	if len(values) > 0 {
		n.values = slices.Clone(values)
	}
	n.notify(Change{Type: Value, Node: n, Source: n, Index: -1})
	return n
}

// SetValue assigns the value at the given index and raises a [Value]
// change. It is a raw assignment: the kind of the new value is not
// checked against the kind previously stored at that index.
func (n *Node) SetValue(i int, v variant.Value) error {
	if i < 0 || i >= len(n.values) {
		return fmt.Errorf("tree: value %d of %q (%d values): %w", i, n.text, len(n.values), ErrIndexOutOfRange)
	}
	n.values[i] = v
	n.notify(Change{Type: Value, Node: n, Source: n, Index: i})
	return nil
}
