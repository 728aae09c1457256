// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Observe subscribes the observer to the changes raised by this node.
// A node holds at most one subscription per observer identity; Observe
// returns false if the observer was already subscribed.
func (n *Node) Observe(o Observer) bool {
	return n.observers.add(o)
}

// Unobserve removes the observer, returning whether it was subscribed.
func (n *Node) Unobserve(o Observer) bool {
	return n.observers.remove(o)
}

// IsObserved returns whether the given observer is subscribed to the node.
func (n *Node) IsObserved(o Observer) bool {
	for _, x := range n.observers {
		if x == o {
			return true
		}
	}
	return false
}

// NumObservers returns the number of observers of the node.
func (n *Node) NumObservers() int {
	return len(n.observers)
}

// ObserveTree subscribes the observer to the node and all of its
// descendants. It is idempotent.
func (n *Node) ObserveTree(o Observer) {
	n.WalkDown(func(d *Node) bool {
		d.observers.add(o)
		return Continue
	})
}

// UnobserveTree removes the observer from the node and all of its descendants.
func (n *Node) UnobserveTree(o Observer) {
	n.WalkDown(func(d *Node) bool {
		d.observers.remove(o)
		return Continue
	})
}

func (n *Node) notify(c Change) {
	n.observers.notify(c)
}
