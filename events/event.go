// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events a tree view receives from
// the host toolkit and the notifications it sends to the host application,
// along with a simple listener registry for them.
package events

import (
	"fmt"
	"image"

	"cogentcore.org/richtree/events/key"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

// Event is the interface of all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as handled, so that no further
	// listeners are called.
	SetHandled()
}

// Base is the base type for events.
type Base struct {
	Typ     Types
	Handled bool
}

// Type implements [Event].
func (ev *Base) Type() Types {
	return ev.Typ
}

// IsHandled implements [Event].
func (ev *Base) IsHandled() bool {
	return ev.Handled
}

// SetHandled implements [Event].
func (ev *Base) SetHandled() {
	ev.Handled = true
}

func (ev *Base) String() string {
	return ev.Typ.String()
}

// Mouse is a pointer event, in viewport coordinates.
type Mouse struct {
	Base
	Where image.Point
}

// NewMouse returns a new [Mouse] event of the given type.
func NewMouse(typ Types, where image.Point) *Mouse {
	ev := &Mouse{Where: where}
	ev.Typ = typ
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Pos: %v}", ev.Typ, ev.Where)
}

// Key is a key press delivered to the active inline editor.
type Key struct {
	Base
	Code key.Codes

	// Text is the text of the key, if any.
	Text string
}

// NewKey returns a new [KeyDown] event.
func NewKey(code key.Codes, text string) *Key {
	ev := &Key{Code: code, Text: text}
	ev.Typ = KeyDown
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v}", ev.Typ, ev.Code)
}

// Change is a notification about a node, and for value notifications
// about one value slot of it.
type Change struct {
	Base
	Node *tree.Node

	// Index is the value index, or -1 when the change concerns
	// the node itself.
	Index int

	// Value is the committed or toggled value, if any.
	Value variant.Value
}

// NewChange returns a new [Change] notification.
func NewChange(typ Types, n *tree.Node, index int, v variant.Value) *Change {
	ev := &Change{Node: n, Index: index, Value: v}
	ev.Typ = typ
	return ev
}

func (ev *Change) String() string {
	return fmt.Sprintf("%v{Node: %v, Index: %d, Value: %v}", ev.Typ, ev.Node, ev.Index, ev.Value)
}
