// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"image"
	"slices"

	"cogentcore.org/richtree/variant"
)

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// HasChildren returns whether the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// CanExpand returns whether the node has an expand / collapse affordance,
// which is the case exactly when it has children.
func (n *Node) CanExpand() bool {
	return len(n.children) > 0
}

// Child returns the child at the given index, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the list of children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// IndexOf returns the index of the given direct child, or -1.
func (n *Node) IndexOf(child *Node) int {
	return slices.Index(n.children, child)
}

// Add appends a new child with the given text and values and returns it.
// It always succeeds and raises a [Structure] change with the new node
// as payload.
func (n *Node) Add(text string, values ...variant.Value) *Node {
	return n.AddChild(New(text, values...))
}

// AddIcon is [Node.Add] with an icon.
func (n *Node) AddIcon(text string, icon image.Image, values ...variant.Value) *Node {
	child := New(text, values...)
	child.icon = icon
	return n.AddChild(child)
}

// AddChild appends the given detached node as a child and returns it.
// The child starts observed by every observer of n.
func (n *Node) AddChild(child *Node) *Node {
	for _, o := range n.observers {
		child.ObserveTree(o)
	}
	n.children = append(n.children, child)
	n.notify(Change{Type: Structure, Node: child, Source: n, Detail: &Detail{Action: Added, Index: len(n.children) - 1}, Index: -1})
	return child
}

// Remove removes the child at the given index. It returns an error
// wrapping [ErrIndexOutOfRange] if the index is outside [0, NumChildren).
// It raises a [Structure] change with the removed node as payload.
func (n *Node) Remove(i int) error {
	if err := n.checkIndex(i); err != nil {
		return err
	}
	child := n.children[i]
	n.children = slices.Delete(n.children, i, i+1)
	n.notify(Change{Type: Structure, Node: child, Source: n, Detail: &Detail{Action: Removed, Index: i}, Index: -1})
	return nil
}

// Edit replaces the text of the child at the given index. It raises a
// [Structure] change carrying the edited node with a nil detail.
func (n *Node) Edit(i int, text string) error {
	if err := n.checkIndex(i); err != nil {
		return err
	}
	child := n.children[i]
	child.text = text
	n.notify(Change{Type: Structure, Node: child, Source: n, Index: -1})
	return nil
}

func (n *Node) checkIndex(i int) error {
	if i < 0 || i >= len(n.children) {
		return fmt.Errorf("tree: child %d of %q (%d children): %w", i, n.text, len(n.children), ErrIndexOutOfRange)
	}
	return nil
}

// IsExpanded returns whether the node can expand and its children are
// currently shown.
func (n *Node) IsExpanded() bool {
	if !n.CanExpand() {
		return false
	}
	return slices.ContainsFunc(n.children, func(c *Node) bool { return !c.hidden })
}

// Collapse hides every transitive descendant of the node.
func (n *Node) Collapse() {
	n.setDescendantsHidden(true)
}

// Expand shows every transitive descendant of the node.
func (n *Node) Expand() {
	n.setDescendantsHidden(false)
}

// Toggle collapses the node if it is expanded and expands it otherwise.
// It returns whether the node is expanded afterwards. Nodes that can not
// expand are left unchanged.
func (n *Node) Toggle() bool {
	if !n.CanExpand() {
		return false
	}
	if n.IsExpanded() {
		n.Collapse()
		return false
	}
	n.Expand()
	return true
}

func (n *Node) setDescendantsHidden(hidden bool) {
	for _, c := range n.children {
		c.WalkDown(func(d *Node) bool {
			d.SetHidden(hidden)
			return Continue
		})
	}
}
