// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of an event, and also the level at which
// one can select which events to listen to. Input events are sent to
// the tree view by the host toolkit; the others are notifications sent
// by the tree view to the host application.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Click is a single click of the pointer.
	Click

	// DoubleClick represents two Click events in a row in rapid succession.
	DoubleClick

	// KeyDown is a key press delivered to the active inline editor.
	KeyDown

	// ItemAdded is sent after a node was added to the tree.
	ItemAdded

	// ItemRemoved is sent after a node was removed from the tree.
	ItemRemoved

	// ItemEdited is sent after the text or icon of a node changed.
	ItemEdited

	// ValueCommitted is sent after an inline editor wrote a value back.
	ValueCommitted

	// NodeExpanded is sent after the descendants of a node were shown.
	NodeExpanded

	// NodeCollapsed is sent after the descendants of a node were hidden.
	NodeCollapsed

	// Checked is sent after a check box was toggled by the user.
	Checked

	// Selected is sent after a row was selected by a click.
	Selected

	// EditorOpened is sent after an inline editor was opened.
	EditorOpened

	// EditorCanceled is sent after an inline editor was closed
	// without writing back.
	EditorCanceled

	// TypesN is the number of event types.
	TypesN
)

var typeNames = [...]string{"UnknownType", "Click", "DoubleClick", "KeyDown", "ItemAdded", "ItemRemoved", "ItemEdited", "ValueCommitted", "NodeExpanded", "NodeCollapsed", "Checked", "Selected", "EditorOpened", "EditorCanceled"}

func (t Types) String() string {
	if t < 0 || t >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typeNames[t]
}
