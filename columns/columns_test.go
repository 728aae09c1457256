// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

func TestRegistry(t *testing.T) {
	r := &Registry{}
	var events []Events
	r.OnChange(func(e Events, c *Column) { events = append(events, e) })

	qwe := r.Add("qwe", 123)
	c1 := r.Add("column1")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, qwe, r.At(0))
	assert.Nil(t, r.At(2))
	assert.Equal(t, 123, qwe.Width())
	assert.Equal(t, 0, c1.Width())
	assert.True(t, r.HasHeader())

	c1.SetWidth(-5)
	assert.Equal(t, 0, c1.Width(), "negative widths clamp to 0")
	c1.SetWidth(100)
	assert.Equal(t, 100, c1.Width())

	assert.True(t, r.Remove(qwe))
	assert.False(t, r.Remove(qwe))
	assert.False(t, r.Contains(qwe))
	qwe.SetWidth(10)

	assert.ErrorIs(t, r.RemoveAt(1), tree.ErrIndexOutOfRange)
	require.NoError(t, r.RemoveAt(0))
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.HasHeader())

	assert.Equal(t, []Events{ColumnAdded, ColumnAdded, WidthChanged, WidthChanged, ColumnRemoved, ColumnRemoved}, events)
}

func TestClear(t *testing.T) {
	r := &Registry{}
	a := r.Add("A")
	r.Add("B")
	var removed []string
	r.OnChange(func(e Events, c *Column) {
		if e == ColumnRemoved {
			removed = append(removed, c.Name)
		}
	})
	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, []string{"B", "A"}, removed)
	a.SetWidth(10)
	assert.Len(t, removed, 2, "removed columns do not notify")
}

func TestWidthPolicyText(t *testing.T) {
	var p WidthPolicy
	require.NoError(t, p.UnmarshalText([]byte(" Minimal ")))
	assert.Equal(t, Minimal, p)
	b, err := Fixed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fixed", string(b))
	assert.Error(t, p.UnmarshalText([]byte("huge")))
	assert.Equal(t, "WidthPolicy(7)", WidthPolicy(7).String())
}

func TestBindings(t *testing.T) {
	a := tree.New("A", variant.Values("x", true, 3)...)
	b := tree.New("B")
	c := tree.New("C", variant.Values(nil, nil, nil, nil, nil, "cxz")...)

	bs := &Bindings{}
	bs.BindNode(a, 10)
	bs.BindNode(b, 30)
	assert.Equal(t, 3, bs.Len())
	for i := range 3 {
		require.Len(t, bs.Column(i), 1)
		assert.Equal(t, Binding{Node: a, Index: i, Y: 10}, bs.Column(i)[0])
	}

	bs.BindNode(c, 50)
	assert.Equal(t, 6, bs.Len())
	assert.Len(t, bs.Column(0), 2)
	assert.Len(t, bs.Column(5), 1)
	assert.Nil(t, bs.Column(6))

	bs.Bind(-1, a, 0)
	bs.Reset()
	assert.Equal(t, 0, bs.Len())
	bs.Bind(1, a, 0)
	assert.Nil(t, bs.Column(0))
	assert.Len(t, bs.Column(1), 1)
}
