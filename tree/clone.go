// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// Clone returns a deep copy of the subtree rooted at the node.
// Icons are shared, and observers are not copied.
func (n *Node) Clone() *Node {
	c := &Node{
		text:    n.text,
		icon:    n.icon,
		checked: n.checked,
		hidden:  n.hidden,
		values:  slices.Clone(n.values),
	}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, k := range n.children {
			c.children[i] = k.Clone()
		}
	}
	return c
}
