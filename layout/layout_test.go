// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/richtree/columns"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render/cell"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

var mono = Monospace{CharWidth: 6, LineHeight: 13}

// positions counts the positions assigned to each node value slot.
func positions(r *Result) map[*tree.Node]map[int]int {
	res := map[*tree.Node]map[int]int{}
	add := func(n *tree.Node, i int) {
		if res[n] == nil {
			res[n] = map[int]int{}
		}
		res[n][i]++
	}
	for _, it := range r.Labels {
		add(it.Node, -1)
	}
	for _, it := range r.Values {
		add(it.Node, it.Index)
	}
	for _, m := range r.Checks {
		if m.IsValue() {
			add(m.Node, m.Index)
		}
	}
	return res
}

func TestScenarioTwoChildren(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("A", variant.Values("x", true, 3)...)
	b := root.Add("B")

	r := Layout(root, nil, mono, DefaultOptions())
	require.Len(t, r.Columns, 3)
	for i, c := range r.Columns {
		assert.Equal(t, i, c.Index)
		require.Len(t, c.Bindings, 1)
		assert.Equal(t, a, c.Bindings[0].Node)
	}
	require.Len(t, r.Labels, 2)
	assert.Equal(t, b, r.Labels[1].Node)

	pos := positions(r)
	assert.Equal(t, map[int]int{-1: 1}, pos[b], "B contributes only a label")
	assert.Equal(t, map[int]int{-1: 1, 0: 1, 1: 1, 2: 1}, pos[a])

	assert.Equal(t, "x", r.ValueOf(a, 0).Text)
	assert.Nil(t, r.ValueOf(a, 1), "booleans are check markers")
	require.NotNil(t, r.CheckOf(a, 1))
	assert.True(t, r.CheckOf(a, 1).Checked)
	assert.Equal(t, "3", r.ValueOf(a, 2).Text)
}

func TestLabelGeometry(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("abc")
	a1 := a.Add("child1")
	root.Add("qqq")

	met := DefaultMetrics()
	r := Layout(root, nil, mono, DefaultOptions())
	require.Len(t, r.Labels, 3)
	assert.Equal(t, float32(18), r.RowHeight)
	assert.Equal(t, met.Top, r.Top)

	la := r.LabelOf(a)
	assert.Equal(t, math32.B2(met.Margin+met.IconAdvance, met.Top, met.Margin+met.IconAdvance+18, met.Top+13), la.Bounds)
	l1 := r.LabelOf(a1)
	assert.Equal(t, la.Bounds.Min.X+met.Indent, l1.Bounds.Min.X)
	assert.Equal(t, la.Bounds.Min.Y+r.RowHeight, l1.Bounds.Min.Y)
	assert.Equal(t, 1, l1.Depth)
	assert.Equal(t, 1, l1.Row)
	assert.Equal(t, 2, r.Labels[2].Row)
	assert.Equal(t, l1.Bounds.Max.X, r.LabelExtent)
	assert.Equal(t, float32(met.Top+3*18), r.Size.Y)
	assert.Equal(t, r.LabelExtent+met.Margin, r.Size.X)
}

func TestHiddenSubtree(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("a", variant.Values("v")...)
	a1 := a.Add("a1", variant.Values("w", "z")...)
	a1.Add("a11", variant.Values(1)...)
	b := root.Add("b", variant.Values(true)...)

	a.Collapse()
	r := Layout(root, nil, mono, DefaultOptions())
	pos := positions(r)
	assert.Len(t, r.Labels, 2)
	assert.NotContains(t, pos, a1)
	assert.Equal(t, map[int]int{-1: 1, 0: 1}, pos[a])
	assert.Equal(t, map[int]int{-1: 1, 0: 1}, pos[b])
	assert.Len(t, r.Columns, 1, "hidden nodes register no columns")

	b.SetHidden(true)
	r = Layout(root, nil, mono, DefaultOptions())
	assert.Len(t, r.Labels, 1)
	assert.Nil(t, r.CheckOf(b, 0))
}

func TestLayoutAfterMutations(t *testing.T) {
	root := tree.NewRoot()
	for i := range 4 {
		n := root.Add("n", variant.Values(i, "s")...)
		n.Add("k", variant.Values(nil)...)
	}
	require.NoError(t, root.Remove(1))
	require.NoError(t, root.Edit(0, "renamed"))
	root.Child(2).Collapse()

	r := Layout(root, nil, mono, DefaultOptions())
	pos := positions(r)
	visible := 0
	root.WalkVisible(func(n *tree.Node, depth int) {
		visible++
		want := map[int]int{-1: 1}
		for i := range n.NumValues() {
			want[i] = 1
		}
		assert.Equal(t, want, pos[n], n.Text())
	})
	assert.Equal(t, visible, len(r.Labels))
	assert.Equal(t, 5, visible)
}

func TestCheckModeIconOffset(t *testing.T) {
	root := tree.NewRoot()
	icon := image.NewRGBA(image.Rect(0, 0, 14, 14))
	withIcon := root.AddIcon("icon", icon)
	plain := root.Add("plain")

	opts := DefaultOptions()
	opts.CheckMode = true
	r := Layout(root, nil, mono, opts)

	ci := r.CheckOf(withIcon, -1)
	cp := r.CheckOf(plain, -1)
	require.NotNil(t, ci)
	require.NotNil(t, cp)
	assert.Less(t, ci.Bounds.Min.X, cp.Bounds.Min.X)
	assert.Equal(t, opts.Metrics.IconAdvance, cp.Bounds.Min.X-ci.Bounds.Min.X)

	assert.Equal(t, r.LabelOf(withIcon).Bounds.Min.X, r.LabelOf(plain).Bounds.Min.X, "labels stay aligned")
	im := r.IconOf(withIcon)
	require.NotNil(t, im)
	assert.Less(t, ci.Bounds.Min.X, im.Bounds.Min.X)
	assert.Less(t, im.Bounds.Min.X, r.LabelOf(withIcon).Bounds.Min.X)
	assert.Nil(t, r.IconOf(plain))

	off := Layout(root, nil, mono, DefaultOptions())
	assert.Empty(t, off.Checks)
	assert.Equal(t, opts.Metrics.CheckAdvance, r.LabelOf(plain).Bounds.Min.X-off.LabelOf(plain).Bounds.Min.X)
}

func TestCheckModeIndent(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("a")
	a1 := a.Add("a1")
	opts := DefaultOptions()
	opts.CheckMode = true
	r := Layout(root, nil, mono, opts)
	assert.Equal(t, opts.Metrics.CheckIndent, r.LabelOf(a1).Bounds.Min.X-r.LabelOf(a).Bounds.Min.X)
	a.SetChecked(true)
	r = Layout(root, nil, mono, opts)
	assert.True(t, r.CheckOf(a, -1).Checked)
	assert.False(t, r.CheckOf(a1, -1).Checked)
}

func TestListValue(t *testing.T) {
	root := tree.NewRoot()
	n := root.Add("n", variant.ListOf("qewr", "asdf"), variant.ListOf())

	r := Layout(root, nil, mono, DefaultOptions())
	assert.Equal(t, "qewr", r.ValueOf(n, 0).Text)
	assert.Equal(t, variant.EmptyListText, r.ValueOf(n, 1).Text)

	v, _ := n.Value(0)
	sel, ok := v.WithSelected(1)
	require.True(t, ok)
	require.NoError(t, n.SetValue(0, sel))
	for range 2 {
		r = Layout(root, nil, mono, DefaultOptions())
		assert.Equal(t, "asdf", r.ValueOf(n, 0).Text)
	}
}

func TestNullValue(t *testing.T) {
	root := tree.NewRoot()
	n := root.Add("n", variant.Values(1234, true, "qwer", nil, nil, "cxz")...)
	r := Layout(root, nil, mono, DefaultOptions())
	assert.Len(t, r.Columns, 6)
	assert.Equal(t, "", r.ValueOf(n, 3).Text)
	assert.Equal(t, "", r.ValueOf(n, 4).Text)
	assert.Equal(t, "cxz", r.ValueOf(n, 5).Text)
}

func TestColumns(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("a", variant.Values("long value", "s")...)
	b := root.Add("bbbbbbbbb", variant.Values("v")...)

	cols := &columns.Registry{}
	qwe := cols.Add("qwe", 123)
	met := DefaultMetrics()

	r := Layout(root, cols, mono, DefaultOptions())
	assert.Equal(t, float32(13)+met.HeaderGap, r.Top)
	require.Len(t, r.Headers, 1)
	assert.Equal(t, "qwe", r.Headers[0].Text)
	assert.Equal(t, met.Margin, r.Headers[0].Bounds.Min.Y)

	require.Len(t, r.Columns, 2)
	c0, c1 := r.Columns[0], r.Columns[1]
	assert.Equal(t, r.LabelExtent+met.ColumnGap, c0.Left)
	assert.Equal(t, c0.Left+123, c0.Right)
	assert.Same(t, qwe, c0.Column)
	assert.Nil(t, c1.Column)
	assert.Equal(t, c0.Right+met.ColumnGap, c1.Left)
	assert.Equal(t, c1.Left+met.MinColumnWidth, c1.Right, "fit column at least the minimum width")
	assert.Len(t, c0.Bindings, 2)
	assert.Len(t, c1.Bindings, 1)

	va := r.ValueOf(a, 0)
	vb := r.ValueOf(b, 0)
	assert.Equal(t, c0.Left, va.Bounds.Min.X)
	assert.Equal(t, c0.Right, va.Bounds.Max.X)
	assert.Equal(t, va.Bounds.Min.X, vb.Bounds.Min.X, "values align in their column")
	assert.Equal(t, r.LabelOf(b).Bounds.Min.Y, vb.Bounds.Min.Y, "values align with their row")
	assert.Equal(t, c1.Right+met.Margin, r.Size.X)

	require.Len(t, r.Separators, 2)
	assert.Equal(t, c0.Left-1, r.Separators[0].From.X)
	assert.Equal(t, r.Size.Y, r.Separators[1].To.Y)
	assert.NotEqual(t, r.Separators[0].From.X, r.Separators[1].From.X)
}

func TestWidthPolicy(t *testing.T) {
	root := tree.NewRoot()
	root.Add("a", variant.Values("0123456789")...)

	opts := DefaultOptions()
	r := Layout(root, nil, mono, opts)
	assert.Equal(t, float32(60), r.Columns[0].Right-r.Columns[0].Left)

	opts.WidthPolicy = columns.Minimal
	r = Layout(root, nil, mono, opts)
	assert.Equal(t, float32(1), r.Columns[0].Right-r.Columns[0].Left)

	opts.WidthPolicy = columns.Fixed
	r = Layout(root, nil, mono, opts)
	assert.Equal(t, opts.Metrics.DefaultWidth, r.Columns[0].Right-r.Columns[0].Left)

	cols := &columns.Registry{}
	cols.Add("name header wide")
	opts.WidthPolicy = columns.Fit
	r = Layout(root, cols, mono, opts)
	assert.Equal(t, float32(16*6), r.Columns[0].Right-r.Columns[0].Left)
}

func TestRegisteredColumnsWithoutValues(t *testing.T) {
	root := tree.NewRoot()
	root.Add("a")
	cols := &columns.Registry{}
	cols.Add("one", 50)
	cols.Add("two", 50)
	r := Layout(root, cols, mono, DefaultOptions())
	assert.Len(t, r.Columns, 2)
	assert.Len(t, r.Headers, 2)
	assert.Empty(t, r.Columns[1].Bindings)
}

func TestEmptyTree(t *testing.T) {
	r := Layout(tree.NewRoot(), nil, mono, DefaultOptions())
	assert.Empty(t, r.Labels)
	assert.Empty(t, r.Columns)
	assert.Equal(t, 0, r.Rows)
	_, ok := r.ItemAt(math32.Vec2(10, 40))
	assert.False(t, ok)
}

func TestHitTest(t *testing.T) {
	root := tree.NewRoot()
	a := root.Add("aaaa", variant.Values("vvvv", false)...)
	b := root.Add("bbbb")

	opts := DefaultOptions()
	opts.CheckMode = true
	r := Layout(root, nil, mono, opts)

	la := r.LabelOf(a)
	it, ok := r.ItemAt(la.Bounds.Min.Add(math32.Vec2(1, 1)))
	require.True(t, ok)
	assert.Equal(t, LabelItem, it.Kind)
	assert.Equal(t, a, it.Node)

	va := r.ValueOf(a, 0)
	it, ok = r.ItemAt(va.Bounds.Min.Add(math32.Vec2(2, 2)))
	require.True(t, ok)
	assert.Equal(t, ValueItem, it.Kind)
	assert.Equal(t, 0, it.Index)

	cb := r.CheckOf(b, -1)
	m, ok := r.CheckAt(cb.Bounds.Min.Add(math32.Vec2(opts.Metrics.CheckSize-1, 1)))
	require.True(t, ok)
	assert.Equal(t, b, m.Node)
	assert.False(t, m.IsValue())

	cv := r.CheckOf(a, 1)
	m, ok = r.CheckAt(cv.Bounds.Min)
	require.True(t, ok)
	assert.True(t, m.IsValue())

	_, ok = r.CheckAt(math32.Vec2(-10, -10))
	assert.False(t, ok)

	row := r.RowBounds(la.Bounds.Min.Y)
	assert.Equal(t, float32(0), row.Min.X)
	assert.Equal(t, r.Size.X, row.Max.X)
	assert.Equal(t, r.RowHeight, row.Size().Y)
}

func TestStateless(t *testing.T) {
	root := tree.NewRoot()
	root.Add("a", variant.Values("x")...).Add("b", variant.Values(1, 2)...)
	r1 := Layout(root, nil, mono, DefaultOptions())
	r2 := Layout(root, nil, mono, DefaultOptions())
	assert.Equal(t, r1, r2)
}

// hashes shows every value as a run of hash marks.
type hashes struct{}

func (hashes) Mode() cell.Modes { return cell.TextMode }

func (hashes) Text(v variant.Value) string { return "##########" }

func (hashes) Draw(s cell.Surface, v variant.Value, b math32.Box2, p *cell.Palette) {}

func TestRenderers(t *testing.T) {
	root := tree.NewRoot()
	n := root.Add("n", variant.Values("abc", true)...)

	r := Layout(root, nil, mono, Options{Metrics: DefaultMetrics()})
	assert.Nil(t, r.ValueOf(n, 1), "bool values are check boxes without a registry")
	require.NotNil(t, r.CheckOf(n, 1))
	assert.Equal(t, cell.Check{}, r.CheckOf(n, 1).Renderer)

	opts := DefaultOptions()
	opts.Renderers.Register(variant.Bool, cell.Text{})
	r = Layout(root, nil, mono, opts)
	assert.Nil(t, r.CheckOf(n, 1))
	require.NotNil(t, r.ValueOf(n, 1))
	assert.Equal(t, "true", r.ValueOf(n, 1).Text)
	assert.Equal(t, variant.BoolOf(true), r.ValueOf(n, 1).Value)
}

func TestColumnRenderer(t *testing.T) {
	root := tree.NewRoot()
	n := root.Add("n", variant.Values("abc", "x")...)
	cols := &columns.Registry{}
	c0 := cols.Add("")
	c1 := cols.Add("")
	c0.Render = hashes{}
	c1.Render = cell.Check{}

	r := Layout(root, cols, mono, DefaultOptions())
	v := r.ValueOf(n, 0)
	require.NotNil(t, v)
	assert.Equal(t, "##########", v.Text)
	assert.Equal(t, float32(60), r.Columns[0].Right-r.Columns[0].Left, "measured with the renderer text")

	assert.Nil(t, r.ValueOf(n, 1))
	m := r.CheckOf(n, 1)
	require.NotNil(t, m)
	assert.False(t, m.Checked)
	assert.Equal(t, variant.StringOf("x"), m.Value)
}
