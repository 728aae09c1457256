// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treeview

import (
	"fmt"
	"log/slog"

	"cogentcore.org/richtree/base/errors"
	"cogentcore.org/richtree/editor"
	"cogentcore.org/richtree/events"
	"cogentcore.org/richtree/layout"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

// contentPoint converts a viewport point to content coordinates.
func (v *View) contentPoint(ev *events.Mouse) math32.Vector2 {
	return math32.Vector2FromPoint(ev.Where).Add(v.host.ScrollOffset())
}

// HandleMouse handles a [events.Click] or [events.DoubleClick] event.
// It returns the error of opening an inline editor, except for values
// without an editor, which are display only.
func (v *View) HandleMouse(ev *events.Mouse) error {
	if v.result == nil || ev.IsHandled() {
		return nil
	}
	v.send(ev)
	if ev.IsHandled() {
		return nil
	}
	pt := v.contentPoint(ev)
	switch ev.Type() {
	case events.Click:
		v.click(pt)
	case events.DoubleClick:
		return v.doubleClick(pt)
	}
	return nil
}

// click selects the row of the item under the pointer, and toggles
// the check box under it.
func (v *View) click(pt math32.Vector2) {
	r := v.result
	if it, ok := r.ItemAt(pt); ok {
		v.selected = it.Node
		v.painter.Highlight = r.RowBounds(it.Bounds.Min.Y)
		v.host.Invalidate()
		v.send(events.NewChange(events.Selected, it.Node, it.Index, variant.Value{}))
	}
	if m, ok := r.CheckAt(pt); ok {
		v.toggleCheck(*m)
	}
}

// toggleCheck toggles the boolean bound to the check box and writes
// it back to the node or value slot.
func (v *View) toggleCheck(m layout.Marker) {
	checked := !m.Checked
	if m.IsValue() {
		if err := m.Node.SetValue(m.Index, variant.BoolOf(checked)); err != nil {
			slog.Error("treeview: toggling check box", "node", m.Node, "index", m.Index, "err", err)
			return
		}
	} else {
		m.Node.SetChecked(checked)
	}
	v.send(events.NewChange(events.Checked, m.Node, m.Index, variant.BoolOf(checked)))
}

// doubleClick opens an editor on a value item, or toggles the
// expansion of an expandable label.
func (v *View) doubleClick(pt math32.Vector2) error {
	it, ok := v.result.ItemAt(pt)
	if !ok {
		return nil
	}
	if it.Kind == layout.ValueItem {
		return v.Edit(it.Node, it.Index)
	}
	n := it.Node
	if !n.CanExpand() {
		return nil
	}
	var expanded bool
	v.Update(func() {
		expanded = n.Toggle()
	})
	typ := events.NodeCollapsed
	if expanded {
		typ = events.NodeExpanded
	}
	v.send(events.NewChange(typ, n, -1, variant.Value{}))
	return nil
}

// Edit opens an inline editor on value index of the node, over its
// cell in the latest layout. Values without an editor are display only,
// and are not an error. Values of nodes that are not shown can not be
// edited once the view is laid out.
func (v *View) Edit(n *tree.Node, index int) error {
	bounds, shown := v.cellBounds(n, index)
	if v.result != nil && !shown && n != nil {
		if _, ok := n.Value(index); ok {
			return fmt.Errorf("%w: value %d of %q is not shown", editor.ErrInvalidArgument, index, n.Text())
		}
	}
	err := v.editors.Open(n, index, bounds)
	if errors.Is(err, editor.ErrNoEditor) {
		slog.Debug("treeview: display only value", "node", n, "index", index)
		return nil
	}
	if err != nil {
		return err
	}
	s := v.editors.Session()
	v.send(events.NewChange(events.EditorOpened, s.Node, s.Index, s.Original))
	return nil
}

// cellBounds returns the viewport bounds of the cell of value index
// of the node in the latest layout: its text cell, or its check box.
func (v *View) cellBounds(n *tree.Node, index int) (math32.Box2, bool) {
	if v.result == nil || n == nil || index < 0 {
		return math32.Box2{}, false
	}
	var b math32.Box2
	if it := v.result.ValueOf(n, index); it != nil {
		b = it.Bounds
	} else if m := v.result.CheckOf(n, index); m != nil {
		b = m.Bounds
	} else {
		return math32.Box2{}, false
	}
	scroll := v.host.ScrollOffset()
	return b.Translate(math32.Vec2(-scroll.X, -scroll.Y)), true
}

// followEditor keeps the active editor over its cell after a layout
// pass, and cancels it when the cell is no longer shown.
func (v *View) followEditor() {
	s := v.editors.Session()
	if s == nil {
		return
	}
	b, ok := v.cellBounds(s.Node, s.Index)
	if !ok {
		slog.Debug("treeview: edited cell hidden", "node", s.Node, "index", s.Index)
		v.editors.Cancel()
		return
	}
	v.editors.Move(b)
}

// columnEditor returns the editor factory of the column of the value
// index, or nil.
func (v *View) columnEditor(n *tree.Node, index int) editor.Factory {
	if c := v.cols.At(index); c != nil {
		return c.Editor
	}
	return nil
}

// HandleKey forwards a key press to the active inline editor,
// marking the event as handled if the editor used it.
func (v *View) HandleKey(ev *events.Key) error {
	handled, err := v.editors.Key(ev.Code)
	if handled {
		ev.SetHandled()
	}
	return err
}

// EditorChanged is called by the host when the state of the active
// editor widget changed, such as a check box toggle.
func (v *View) EditorChanged() error {
	return v.editors.Changed()
}
