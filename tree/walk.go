// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the node and all of its descendants
// in depth-first pre-order, using an explicit stack. If the function
// returns [Break], the children of that node are not visited.
func (n *Node) WalkDown(fun func(d *Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fun(cur) {
			continue
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
}

// WalkVisible calls the given function with each visible descendant of
// the node and its depth below n (children of n have depth 0), in
// depth-first pre-order. Hidden nodes and their subtrees are skipped.
// The node itself is not visited, as is the case for a root.
func (n *Node) WalkVisible(fun func(d *Node, depth int)) {
	type frame struct {
		node  *Node
		depth int
	}
	stack := make([]frame, 0, len(n.children))
	for i := len(n.children) - 1; i >= 0; i-- {
		stack = append(stack, frame{n.children[i], 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.hidden {
			continue
		}
		fun(f.node, f.depth)
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.children[i], f.depth + 1})
		}
	}
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	c := 0
	n.WalkDown(func(d *Node) bool {
		c++
		return Continue
	})
	return c
}
