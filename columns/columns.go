// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package columns provides the registry of named value columns of a
// tree view, and the per layout pass aggregate of the (node, value slot)
// bindings discovered for each column index.
package columns

import (
	"fmt"
	"slices"

	"cogentcore.org/richtree/editor"
	"cogentcore.org/richtree/render/cell"
	"cogentcore.org/richtree/tree"
)

// Column is a named, width configurable value column. The order of
// columns in a [Registry] defines the correspondence with the indexes
// of node values.
type Column struct {
	// Name is the header text of the column.
	Name string

	// Render overrides the renderer of the values in the column,
	// which is otherwise chosen by the kind of each value.
	Render cell.Renderer

	// Editor overrides the inline editor of the values in the column,
	// which is otherwise chosen by the kind of each value.
	Editor editor.Factory

	width int

	onWidth func(c *Column)
}

// Width returns the configured width. A width of 0 means the width is
// chosen by the [WidthPolicy] of the layout.
func (c *Column) Width() int {
	return c.width
}

// SetWidth sets the width, clamping negative values to 0, and
// notifies the registry of the change.
func (c *Column) SetWidth(width int) *Column {
	c.width = max(width, 0)
	if c.onWidth != nil {
		c.onWidth(c)
	}
	return c
}

func (c *Column) String() string {
	return fmt.Sprintf("%s(%d)", c.Name, c.width)
}

// Events are the kinds of registry changes passed to [Registry.OnChange].
type Events int32

const (
	// ColumnAdded is sent after a column is added.
	ColumnAdded Events = iota

	// ColumnRemoved is sent after a column is removed.
	ColumnRemoved

	// WidthChanged is sent after the width of a column is set.
	WidthChanged
)

func (e Events) String() string {
	switch e {
	case ColumnAdded:
		return "ColumnAdded"
	case ColumnRemoved:
		return "ColumnRemoved"
	}
	return "WidthChanged"
}

// Registry is the ordered list of named columns of a tree view.
type Registry struct {
	columns  []*Column
	onChange []func(e Events, c *Column)
}

// Len returns the number of columns.
func (r *Registry) Len() int {
	return len(r.columns)
}

// At returns the column at the given index, or nil if out of range.
func (r *Registry) At(i int) *Column {
	if i < 0 || i >= len(r.columns) {
		return nil
	}
	return r.columns[i]
}

// All returns a copy of the list of columns.
func (r *Registry) All() []*Column {
	return slices.Clone(r.columns)
}

// Add adds a new column with the given name and optional width,
// and returns it.
func (r *Registry) Add(name string, width ...int) *Column {
	c := &Column{Name: name}
	if len(width) > 0 {
		c.width = max(width[0], 0)
	}
	r.AddColumn(c)
	return c
}

// AddColumn adds the given column.
func (r *Registry) AddColumn(c *Column) {
	c.onWidth = func(c *Column) { r.send(WidthChanged, c) }
	r.columns = append(r.columns, c)
	r.send(ColumnAdded, c)
}

// Contains returns whether the column is in the registry.
func (r *Registry) Contains(c *Column) bool {
	return slices.Contains(r.columns, c)
}

// Remove removes the given column, returning whether it was present.
func (r *Registry) Remove(c *Column) bool {
	i := slices.Index(r.columns, c)
	if i < 0 {
		return false
	}
	r.removeAt(i)
	return true
}

// RemoveAt removes the column at the given index. It returns an error
// wrapping [tree.ErrIndexOutOfRange] if the index is out of range.
func (r *Registry) RemoveAt(i int) error {
	if i < 0 || i >= len(r.columns) {
		return fmt.Errorf("columns: column %d (%d columns): %w", i, len(r.columns), tree.ErrIndexOutOfRange)
	}
	r.removeAt(i)
	return nil
}

func (r *Registry) removeAt(i int) {
	c := r.columns[i]
	r.columns = slices.Delete(r.columns, i, i+1)
	c.onWidth = nil
	r.send(ColumnRemoved, c)
}

// Clear removes all columns, last to first.
func (r *Registry) Clear() {
	for len(r.columns) > 0 {
		r.removeAt(len(r.columns) - 1)
	}
}

// OnChange adds a function called after every registry change.
func (r *Registry) OnChange(fun func(e Events, c *Column)) {
	r.onChange = append(r.onChange, fun)
}

func (r *Registry) send(e Events, c *Column) {
	for _, fun := range r.onChange {
		fun(e, c)
	}
}

// HasHeader returns whether a header row is shown, which is the case
// when the first column has a name.
func (r *Registry) HasHeader() bool {
	return len(r.columns) > 0 && r.columns[0].Name != ""
}
