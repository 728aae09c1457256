// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package columns

import "cogentcore.org/richtree/tree"

// Binding binds one node value slot to the row at which the node was laid out.
type Binding struct {
	Node  *tree.Node
	Index int

	// Y is the top of the row of the node.
	Y float32
}

// Bindings aggregates, for each distinct value index seen during one
// layout pass, the list of bindings registered at that index. It is
// rebuilt for every pass and is never mutated independently of the tree.
type Bindings struct {
	columns [][]Binding
}

// Bind registers the value slot at the given index of the node, creating
// the column entries up to the index if they were not seen yet.
func (b *Bindings) Bind(index int, node *tree.Node, y float32) {
	if index < 0 {
		return
	}
	for len(b.columns) <= index {
		b.columns = append(b.columns, nil)
	}
	b.columns[index] = append(b.columns[index], Binding{Node: node, Index: index, Y: y})
}

// BindNode registers every value slot of the node.
func (b *Bindings) BindNode(node *tree.Node, y float32) {
	for i := range node.NumValues() {
		b.Bind(i, node, y)
	}
}

// Len returns the number of column indexes seen.
func (b *Bindings) Len() int {
	return len(b.columns)
}

// Column returns the bindings registered at the given column index.
func (b *Bindings) Column(i int) []Binding {
	if i < 0 || i >= len(b.columns) {
		return nil
	}
	return b.columns[i]
}

// Reset clears all bindings.
func (b *Bindings) Reset() {
	b.columns = b.columns[:0]
}
