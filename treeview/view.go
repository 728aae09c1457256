// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treeview provides [View], a multi-column tree view widget.
// A View owns a tree of nodes and a registry of value columns. It lays
// them out after every change, paints the latest layout onto the host
// surface, and turns pointer and key input into selection, check box
// toggles, expansion, and inline editing.
//
// All methods must be called from the single UI thread of the host.
package treeview

import (
	"log/slog"

	"cogentcore.org/richtree/columns"
	"cogentcore.org/richtree/editor"
	"cogentcore.org/richtree/events"
	"cogentcore.org/richtree/layout"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render"
	"cogentcore.org/richtree/render/cell"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

// Host is the host toolkit collaborator of a [View].
type Host interface {
	layout.Measurer
	render.Viewport
	editor.Host

	// Invalidate requests a repaint, after which the host
	// calls [View.Paint].
	Invalidate()
}

// View is the tree view widget.
type View struct {
	host    Host
	root    *tree.Node
	cols    *columns.Registry
	opts    layout.Options
	painter *render.Painter
	editors *editor.Dispatcher

	listeners events.Listeners

	// result is the latest layout, nil before the first pass.
	result *layout.Result

	// selected is the node of the highlighted row.
	selected *tree.Node

	realized bool
	deferred []func()

	// updating is > 0 while a batch of changes is applied,
	// which mark the layout as dirty instead of running it.
	updating int
	dirty    bool
}

// New returns a new view. It does not lay out until [View.Realize].
func New(host Host) *View {
	v := &View{
		host:    host,
		root:    tree.NewRoot(),
		cols:    &columns.Registry{},
		opts:    layout.DefaultOptions(),
		painter: render.NewPainter(),
		editors: editor.NewDispatcher(host),
	}
	v.root.ObserveTree(v)
	v.cols.OnChange(func(e columns.Events, c *columns.Column) {
		slog.Debug("treeview: column change", "event", e, "column", c)
		v.needsLayout()
	})
	v.editors.Override = v.columnEditor
	v.editors.OnCommit = v.committed
	v.editors.OnCancel = func(s *editor.Session) {
		v.send(events.NewChange(events.EditorCanceled, s.Node, s.Index, s.Original))
	}
	return v
}

// Root returns the root node. Only the descendants of the root
// are shown.
func (v *View) Root() *tree.Node {
	return v.root
}

// Columns returns the column registry.
func (v *View) Columns() *columns.Registry {
	return v.cols
}

// Editors returns the inline editor dispatcher.
func (v *View) Editors() *editor.Dispatcher {
	return v.editors
}

// Painter returns the painter, whose theme can be changed.
func (v *View) Painter() *render.Painter {
	return v.painter
}

// Renderers returns the registry of value renderers.
func (v *View) Renderers() *cell.Registry {
	return v.opts.Renderers
}

// Options returns the current layout options.
func (v *View) Options() layout.Options {
	return v.opts
}

// CheckMode returns whether every node shows a check box.
func (v *View) CheckMode() bool {
	return v.opts.CheckMode
}

// SetCheckMode sets whether every node shows a check box.
func (v *View) SetCheckMode(on bool) *View {
	if v.opts.CheckMode != on {
		v.opts.CheckMode = on
		v.needsLayout()
	}
	return v
}

// SetMetrics sets the layout metrics.
func (v *View) SetMetrics(m layout.Metrics) *View {
	v.opts.Metrics = m
	v.needsLayout()
	return v
}

// SetWidthPolicy sets the width policy of columns without explicit width.
func (v *View) SetWidthPolicy(p columns.WidthPolicy) *View {
	if v.opts.WidthPolicy != p {
		v.opts.WidthPolicy = p
		v.needsLayout()
	}
	return v
}

// SetEditorPolicy sets what opening an editor does while one is active.
func (v *View) SetEditorPolicy(p editor.Policy) *View {
	v.editors.Policy = p
	return v
}

// On adds a listener for the given event type. Listeners added last
// are called first, and can stop the others by handling the event.
func (v *View) On(typ events.Types, fun func(ev events.Event)) {
	v.listeners.Add(typ, fun)
}

func (v *View) send(ev events.Event) {
	v.listeners.Call(ev)
}

// Defer queues the function to run once the view is realized, or runs
// it right away if it already is.
func (v *View) Defer(fun func()) {
	if v.realized {
		fun()
		return
	}
	v.deferred = append(v.deferred, fun)
}

// Realize is called by the host once the widget is attached. It runs
// the first layout pass, and then the deferred functions in order.
// Later calls do nothing.
func (v *View) Realize() {
	if v.realized {
		return
	}
	v.realized = true
	v.Relayout()
	fns := v.deferred
	v.deferred = nil
	for _, fun := range fns {
		fun()
	}
}

// IsRealized returns whether [View.Realize] was called.
func (v *View) IsRealized() bool {
	return v.realized
}

// Update runs the function as one batch of changes, with at most one
// layout pass at the end of it. Batches can be nested.
func (v *View) Update(fun func()) {
	v.updating++
	defer func() {
		v.updating--
		if v.updating == 0 && v.dirty {
			v.needsLayout()
		}
	}()
	fun()
}

// needsLayout runs a layout pass, or marks the layout as dirty
// while the view is not realized or is applying a batch.
func (v *View) needsLayout() {
	if !v.realized || v.updating > 0 {
		v.dirty = true
		return
	}
	v.Relayout()
}

// Relayout runs a full layout pass and returns its result. It pushes
// the content size to the viewport and invalidates the view. The row
// highlight follows the selected node, and is cleared if the node is
// no longer shown. The active editor follows its cell, and is canceled
// if the cell is no longer shown.
func (v *View) Relayout() *layout.Result {
	v.root.ObserveTree(v)
	r := layout.Layout(v.root, v.cols, v.host, v.opts)
	v.result = r
	v.dirty = false
	v.painter.Highlight = math32.B2Empty()
	if v.selected != nil {
		if lbl := r.LabelOf(v.selected); lbl != nil {
			v.painter.Highlight = r.RowBounds(lbl.Bounds.Min.Y)
		} else {
			v.selected = nil
		}
	}
	v.followEditor()
	v.host.SetContentSize(r.Size)
	v.host.Invalidate()
	slog.Debug("treeview: layout", "rows", r.Rows, "columns", len(r.Columns), "size", r.Size)
	return r
}

// Layout returns the latest layout result, which is nil before the
// view is realized.
func (v *View) Layout() *layout.Result {
	return v.result
}

// Paint paints the latest layout onto the surface, at the current
// scroll offset of the viewport.
func (v *View) Paint(s render.Surface) {
	v.painter.Paint(s, v.result, v.host.ScrollOffset())
}

// Selected returns the node of the highlighted row, or nil.
func (v *View) Selected() *tree.Node {
	return v.selected
}

// NodeChanged implements [tree.Observer], relaying node changes as
// view events and laying out again.
func (v *View) NodeChanged(c tree.Change) {
	switch {
	case c.Type == tree.Structure && c.Detail != nil && c.Detail.Action == tree.Added:
		v.send(events.NewChange(events.ItemAdded, c.Node, -1, variant.Value{}))
	case c.Type == tree.Structure && c.Detail != nil && c.Detail.Action == tree.Removed:
		c.Node.UnobserveTree(v)
		if s := v.editors.Session(); s != nil && inSubtree(c.Node, s.Node) {
			v.editors.Cancel()
		}
		v.send(events.NewChange(events.ItemRemoved, c.Node, -1, variant.Value{}))
	case c.IsEdit():
		v.send(events.NewChange(events.ItemEdited, c.Node, -1, variant.Value{}))
	}
	v.needsLayout()
}

// inSubtree returns whether n is root or one of its descendants.
func inSubtree(root, n *tree.Node) bool {
	found := false
	root.WalkDown(func(d *tree.Node) bool {
		if d == n {
			found = true
		}
		return !found
	})
	return found
}

// committed is called by the editors after a value was written back.
func (v *View) committed(s *editor.Session, val variant.Value) {
	v.send(events.NewChange(events.ValueCommitted, s.Node, s.Index, val))
}
