// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// ChangeTypes are the kinds of change notifications raised by a [Node].
type ChangeTypes int32

const (
	// Structure is raised when a child is added, removed, or edited,
	// or when the text or icon of a node changes.
	Structure ChangeTypes = iota

	// Value is raised when the values of a node change.
	Value

	// Visibility is raised when the hidden flag of a node changes.
	Visibility

	// Check is raised when the checked flag of a node changes.
	Check
)

func (t ChangeTypes) String() string {
	switch t {
	case Structure:
		return "Structure"
	case Value:
		return "Value"
	case Visibility:
		return "Visibility"
	case Check:
		return "Check"
	}
	return fmt.Sprintf("ChangeTypes(%d)", int32(t))
}

// Actions are the children collection actions carried by a [Detail].
type Actions int32

const (
	// Added means a child was appended.
	Added Actions = iota

	// Removed means a child was removed.
	Removed
)

func (a Actions) String() string {
	if a == Removed {
		return "Removed"
	}
	return "Added"
}

// Detail describes a change of a children collection.
type Detail struct {
	Action Actions

	// Index is the index of the child in the collection
	// at the time of the change.
	Index int
}

// Change is a notification raised by a [Node].
type Change struct {
	Type ChangeTypes

	// Node is the payload: the added, removed, or edited child for
	// [Structure] changes, and the changed node otherwise.
	Node *Node

	// Source is the node that raised the change. For collection
	// changes it is the parent of Node.
	Source *Node

	// Detail is set for add and remove. It is nil for edits,
	// which distinguishes a shape change from a collection change.
	Detail *Detail

	// Index is the value index for [Value] changes of a single slot,
	// and -1 otherwise.
	Index int
}

// IsEdit returns whether the change is a structure change without
// a collection detail.
func (c Change) IsEdit() bool {
	return c.Type == Structure && c.Detail == nil
}

func (c Change) String() string {
	s := c.Type.String()
	if c.Detail != nil {
		s += fmt.Sprintf("[%v %d]", c.Detail.Action, c.Detail.Index)
	}
	if c.Node != nil {
		s += fmt.Sprintf(" %q", c.Node.Text())
	}
	return s
}

// Observer receives the change notifications of the nodes it observes.
// Observers are compared by identity, so implementations should be
// pointer types.
type Observer interface {
	NodeChanged(c Change)
}

// ObserverFunc is a function adapter for [Observer]. Because functions
// are not comparable, it must be used through a pointer:
//
//	obs := tree.ObserverFunc(func(c tree.Change) { ... })
//	n.Observe(&obs)
type ObserverFunc func(c Change)

// NodeChanged calls the function.
func (f *ObserverFunc) NodeChanged(c Change) {
	(*f)(c)
}

// observers is an ordered set of observers.
type observers []Observer

// add adds the observer if it is not already present.
func (os *observers) add(o Observer) bool {
	if o == nil || slices.Contains(*os, o) {
		return false
	}
	*os = append(*os, o)
	return true
}

// remove removes the observer if present.
func (os *observers) remove(o Observer) bool {
	i := slices.Index(*os, o)
	if i < 0 {
		return false
	}
	*os = slices.Delete(*os, i, i+1)
	return true
}

// notify sends the change to a snapshot of the observers, so that
// observers may subscribe or unsubscribe during delivery.
func (os observers) notify(c Change) {
	for _, o := range slices.Clone(os) {
		o.NodeChanged(c)
	}
}
