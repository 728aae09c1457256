// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes the positions of everything a tree view
// shows: node labels, icons, and check boxes in the tree area, and the
// values of the nodes aligned into columns to the right of the widest
// label. A layout pass is a pure function of the tree, the columns, and
// the options: it reads them without changing them, and its [Result] is
// used both for painting and for hit testing.
package layout

import (
	"slices"

	"cogentcore.org/richtree/columns"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render/cell"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

// frame is one pending node of the traversal stack.
type frame struct {
	node  *tree.Node
	depth int

	// x is the left edge of the tree level of the node.
	x float32
}

// pass holds the accumulators of one layout pass.
type pass struct {
	opts     Options
	met      Metrics
	measure  Measurer
	res      *Result
	bindings columns.Bindings
	lineH    float32
}

// Layout lays out the visible children of root and their values.
// cols may be nil, in which case columns have no names or explicit widths.
// Nodes that are hidden are skipped together with their subtrees.
func Layout(root *tree.Node, cols *columns.Registry, m Measurer, opts Options) *Result {
	if cols == nil {
		cols = &columns.Registry{}
	}
	p := &pass{opts: opts, met: opts.Metrics, measure: m, res: &Result{}}
	p.lineH = m.MeasureText("Ag").Y
	p.res.RowHeight = p.lineH + p.met.RowGap
	p.res.Top = p.met.Top
	if cols.HasHeader() {
		p.res.Top = m.MeasureText(cols.At(0).Name).Y + p.met.HeaderGap
	}
	p.walk(root)
	p.layoutColumns(cols)
	p.finish()
	return p.res
}

// walk places the visible nodes in depth-first pre-order, using an
// explicit stack of frames instead of recursion.
func (p *pass) walk(root *tree.Node) {
	indent := p.met.Indent
	if p.opts.CheckMode {
		indent = p.met.CheckIndent
	}
	stack := pushChildren(nil, root, 0, p.met.Margin)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.IsHidden() {
			continue
		}
		p.place(f)
		stack = pushChildren(stack, f.node, f.depth+1, f.x+indent)
	}
}

// pushChildren pushes the children of n in reverse order, so that they
// are popped in order.
func pushChildren(stack []frame, n *tree.Node, depth int, x float32) []frame {
	kids := n.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: kids[i], depth: depth, x: x})
	}
	return stack
}

// place lays out the label, icon, and check box of one visible node,
// and registers its values.
func (p *pass) place(f frame) {
	r := p.res
	n := f.node
	y := r.Top + float32(r.Rows)*r.RowHeight

	gutter := p.met.IconAdvance
	if p.opts.CheckMode {
		gutter += p.met.CheckAdvance
	}
	labelX := f.x + gutter
	size := p.measure.MeasureText(n.Text())
	r.Labels = append(r.Labels, Item{
		Kind:   LabelItem,
		Node:   n,
		Index:  -1,
		Depth:  f.depth,
		Row:    r.Rows,
		Text:   n.Text(),
		Bounds: math32.B2(labelX, y, labelX+size.X, y+p.lineH),
	})
	r.LabelExtent = max(r.LabelExtent, labelX+size.X)

	// markers sit right to left from the label
	x := labelX
	if icon := n.Icon(); icon != nil {
		x -= p.met.IconAdvance
		r.Icons = append(r.Icons, Marker{
			Kind:   IconMarker,
			Node:   n,
			Index:  -1,
			Bounds: math32.B2FromPos(math32.Vec2(x, y), math32.Vector2Scalar(p.met.IconSize)),
			Icon:   icon,
		})
	}
	if p.opts.CheckMode {
		x -= p.met.CheckAdvance
		r.Checks = append(r.Checks, Marker{
			Kind:    CheckMarker,
			Node:    n,
			Index:   -1,
			Bounds:  math32.B2FromPos(math32.Vec2(x, y), math32.Vector2Scalar(p.met.CheckSize)),
			Checked: n.IsChecked(),
		})
	}

	if n.HasValues() {
		p.bindings.BindNode(n, y)
	}
	r.Rows++
}

// layoutColumns places the registered value slots column by column,
// left to right, starting right of the widest label.
func (p *pass) layoutColumns(cols *columns.Registry) {
	r := p.res
	left := max(r.LabelExtent, p.met.Margin) + p.met.ColumnGap
	ncols := max(p.bindings.Len(), cols.Len())
	var seps []float32
	for i := range ncols {
		col := cols.At(i)
		bindings := p.bindings.Column(i)
		width := p.columnWidth(col, bindings)
		right := left + width
		if col != nil {
			if col.Name != "" {
				size := p.measure.MeasureText(col.Name)
				r.Headers = append(r.Headers, Header{
					Column: col,
					Index:  i,
					Text:   col.Name,
					Bounds: math32.B2(left, p.met.Margin, right, p.met.Margin+size.Y),
				})
			}
		}
		for _, b := range bindings {
			if b.Node.IsHidden() {
				continue
			}
			p.placeValue(b, col, left, right)
		}
		sx := left - 1
		if !slices.Contains(seps, sx) {
			seps = append(seps, sx)
		}
		r.Columns = append(r.Columns, Column{Index: i, Column: col, Left: left, Right: right, Bindings: bindings})
		left = right + p.met.ColumnGap
	}
	for _, sx := range seps {
		r.Separators = append(r.Separators, Line{From: math32.Vec2(sx, 0)})
	}
}

// renderer returns the renderer of a value in the column.
func (p *pass) renderer(col *columns.Column, v variant.Value) cell.Renderer {
	var override cell.Renderer
	if col != nil {
		override = col.Render
	}
	return p.opts.Renderers.For(override, v)
}

// placeValue places one value slot within the column bounds.
func (p *pass) placeValue(b columns.Binding, col *columns.Column, left, right float32) {
	r := p.res
	v, _ := b.Node.Value(b.Index)
	rd := p.renderer(col, v)
	if rd.Mode() == cell.CheckMode {
		r.Checks = append(r.Checks, Marker{
			Kind:     CheckMarker,
			Node:     b.Node,
			Index:    b.Index,
			Bounds:   math32.B2FromPos(math32.Vec2(left, b.Y), math32.Vector2Scalar(p.met.CheckSize)),
			Checked:  v.Bool(),
			Value:    v,
			Renderer: rd,
		})
		return
	}
	row := 0
	if r.RowHeight > 0 {
		row = int(math32.Round((b.Y - r.Top) / r.RowHeight))
	}
	r.Values = append(r.Values, Item{
		Kind:     ValueItem,
		Node:     b.Node,
		Index:    b.Index,
		Row:      row,
		Text:     rd.Text(v),
		Bounds:   math32.B2(left, b.Y, right, b.Y+p.lineH),
		Value:    v,
		Renderer: rd,
	})
}

// columnWidth returns the width of a column: its explicit width when
// set, and otherwise the width given by the width policy.
func (p *pass) columnWidth(col *columns.Column, bindings []columns.Binding) float32 {
	if col != nil && col.Width() > 0 {
		return float32(col.Width())
	}
	switch p.opts.WidthPolicy {
	case columns.Minimal:
		return 1
	case columns.Fixed:
		return p.met.DefaultWidth
	}
	width := p.met.MinColumnWidth
	if col != nil {
		width = max(width, p.measure.MeasureText(col.Name).X)
	}
	for _, b := range bindings {
		if b.Node.IsHidden() {
			continue
		}
		v, _ := b.Node.Value(b.Index)
		rd := p.renderer(col, v)
		if rd.Mode() == cell.CheckMode {
			width = max(width, p.met.CheckSize)
			continue
		}
		width = max(width, p.measure.MeasureText(rd.Text(v)).X)
	}
	return width
}

// finish computes the content size and extends the separators to it.
func (p *pass) finish() {
	r := p.res
	w := r.LabelExtent
	if n := len(r.Columns); n > 0 {
		w = max(w, r.Columns[n-1].Right)
	}
	r.Size = math32.Vec2(w+p.met.Margin, r.Top+float32(r.Rows)*r.RowHeight)
	for i := range r.Separators {
		r.Separators[i].To = math32.Vec2(r.Separators[i].From.X, r.Size.Y)
	}
}
