// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/richtree/editor"
	"cogentcore.org/richtree/editor/editortest"
	"cogentcore.org/richtree/events/key"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

func setup() (*editortest.Host, *editor.Dispatcher, *tree.Node) {
	h := &editortest.Host{}
	d := editor.NewDispatcher(h)
	n := tree.New("A", variant.StringOf("x"), variant.BoolOf(true), variant.NumberOf(3),
		variant.ListOf("red", "green"), variant.ListOf(), variant.NullValue())
	return h, d, n
}

var cell = math32.B2(10, 20, 50, 33)

func TestTextCommit(t *testing.T) {
	h, d, n := setup()
	var committed []variant.Value
	d.OnCommit = func(s *editor.Session, v variant.Value) {
		assert.Same(t, n, s.Node)
		committed = append(committed, v)
	}
	require.NoError(t, d.Open(n, 0, cell))
	assert.True(t, d.Active())
	tb := h.LastTextBox()
	assert.Equal(t, "x", tb.Value, "seeded with the current text")
	assert.Equal(t, cell, tb.Bounds)

	tb.Value = "hello"
	handled, err := d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.False(t, d.Active())
	assert.True(t, tb.Disposed)
	v, _ := n.Value(0)
	assert.Equal(t, variant.StringOf("hello"), v)
	assert.Equal(t, []variant.Value{variant.StringOf("hello")}, committed)
}

func TestTextEmptyRestores(t *testing.T) {
	h, d, n := setup()
	require.NoError(t, d.Open(n, 0, cell))
	h.LastTextBox().Value = ""
	_, err := d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	v, _ := n.Value(0)
	assert.Equal(t, variant.StringOf("x"), v)
	assert.Equal(t, "x", h.LastTextBox().Value)
}

func TestNumberCommit(t *testing.T) {
	h, d, n := setup()
	require.NoError(t, d.Open(n, 2, cell))
	assert.Equal(t, "3", h.LastTextBox().Value)
	h.LastTextBox().Value = " 4.5 "
	_, err := d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	v, _ := n.Value(2)
	assert.Equal(t, variant.NumberOf(4.5), v)

	require.NoError(t, d.Open(n, 2, cell))
	h.LastTextBox().Value = "many"
	_, err = d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	v, _ = n.Value(2)
	assert.Equal(t, variant.StringOf("many"), v, "raw assignment of the text")
}

func TestBoolImmediate(t *testing.T) {
	h, d, n := setup()
	require.NoError(t, d.Open(n, 1, cell))
	cb := h.LastCheckBox()
	assert.True(t, cb.Checked)
	cb.Checked = false
	require.NoError(t, d.Changed())
	assert.False(t, d.Active())
	assert.True(t, cb.Disposed)
	v, _ := n.Value(1)
	assert.Equal(t, variant.BoolOf(false), v)
}

func TestListAppendSelect(t *testing.T) {
	h, d, n := setup()
	require.NoError(t, d.Open(n, 3, cell))
	cb := h.LastComboBox()
	assert.Equal(t, []string{"red", "green"}, cb.Items)
	assert.Equal(t, 0, cb.Index)

	cb.Typed = "blue"
	_, err := d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	v, _ := n.Value(3)
	assert.Equal(t, []string{"red", "green", "blue"}, v.Items())
	assert.Equal(t, 2, v.Selected())
	assert.Equal(t, "blue", v.Text())

	require.NoError(t, d.Open(n, 3, cell))
	h.LastComboBox().Typed = "red"
	_, err = d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	v, _ = n.Value(3)
	assert.Equal(t, 3, v.Len(), "present text is not appended")
	assert.Equal(t, 0, v.Selected())
}

func TestListSelectionChanged(t *testing.T) {
	h, d, n := setup()
	require.NoError(t, d.Open(n, 3, cell))
	require.NoError(t, d.Changed())
	assert.True(t, d.Active(), "no change, no commit")
	h.LastComboBox().Index = 1
	require.NoError(t, d.Changed())
	assert.False(t, d.Active())
	v, _ := n.Value(3)
	assert.Equal(t, "green", v.Text())
}

func TestNoEditor(t *testing.T) {
	h, d, n := setup()
	assert.ErrorIs(t, d.Open(n, 4, cell), editor.ErrNoEditor, "empty list")
	assert.ErrorIs(t, d.Open(n, 5, cell), editor.ErrNoEditor, "null")
	assert.False(t, d.Active())
	assert.Empty(t, h.ComboBoxes)

	d.Registry.Register(variant.String, nil)
	assert.ErrorIs(t, d.Open(n, 0, cell), editor.ErrNoEditor)
}

func TestInvalidArguments(t *testing.T) {
	_, d, n := setup()
	assert.ErrorIs(t, d.Open(nil, 0, cell), editor.ErrInvalidArgument)
	assert.ErrorIs(t, d.Open(n, -1, cell), editor.ErrInvalidArgument)
	assert.ErrorIs(t, d.Open(n, 6, cell), editor.ErrInvalidArgument)
	assert.ErrorIs(t, d.Commit(variant.StringOf("y")), editor.ErrNotEditing)

	assert.ErrorIs(t, editor.Apply(nil, 0, variant.StringOf("y")), editor.ErrInvalidArgument)
	assert.ErrorIs(t, editor.Apply(n, -1, variant.StringOf("y")), editor.ErrInvalidArgument)
	assert.ErrorIs(t, editor.Apply(n, 9, variant.StringOf("y")), tree.ErrIndexOutOfRange)
	assert.NoError(t, editor.Apply(n, 0, variant.StringOf("y")))
}

func TestCancel(t *testing.T) {
	h, d, n := setup()
	canceled := 0
	d.OnCancel = func(s *editor.Session) { canceled++ }
	d.OnCommit = func(s *editor.Session, v variant.Value) { t.Error("unexpected commit") }
	require.NoError(t, d.Open(n, 0, cell))
	h.LastTextBox().Value = "changed"
	handled, err := d.Key(key.CodeEscape)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, 1, canceled)
	assert.Equal(t, 0, h.Live())
	v, _ := n.Value(0)
	assert.Equal(t, variant.StringOf("x"), v)

	handled, err = d.Key(key.CodeEscape)
	assert.NoError(t, err)
	assert.False(t, handled, "idle")
	d.Cancel()
	assert.Equal(t, 1, canceled)
}

func TestOtherKeys(t *testing.T) {
	_, d, n := setup()
	require.NoError(t, d.Open(n, 0, cell))
	handled, err := d.Key(key.CodeTab)
	assert.NoError(t, err)
	assert.False(t, handled)
	assert.True(t, d.Active())
}

func TestPolicies(t *testing.T) {
	h, d, n := setup()
	require.NoError(t, d.Open(n, 0, cell))
	first := d.Session()
	require.NoError(t, d.Open(n, 2, cell))
	assert.NotSame(t, first, d.Session())
	assert.Equal(t, 2, d.Session().Index)
	assert.Equal(t, 1, h.Live(), "one editor at a time")
	assert.True(t, h.TextBoxes[0].Disposed)

	d.Policy = editor.RejectActive
	assert.ErrorIs(t, d.Open(n, 0, cell), editor.ErrEditorActive)
	assert.Equal(t, 2, d.Session().Index)
	assert.Equal(t, 1, h.Live())

	var p editor.Policy
	assert.NoError(t, p.UnmarshalText([]byte(" Reject ")))
	assert.Equal(t, editor.RejectActive, p)
	assert.Error(t, p.UnmarshalText([]byte("close")))
	b, _ := editor.ReplaceActive.MarshalText()
	assert.Equal(t, "replace", string(b))
}

func TestCommitStaleSlot(t *testing.T) {
	h, d, n := setup()
	require.NoError(t, d.Open(n, 3, cell))
	n.SetValues(variant.StringOf("only"))
	h.LastComboBox().Index = 1
	assert.ErrorIs(t, d.Changed(), tree.ErrIndexOutOfRange)
	assert.False(t, d.Active())
	assert.Equal(t, 0, h.Live())
}

func TestRegisterCustom(t *testing.T) {
	h, d, n := setup()
	d.Registry.Register(variant.Null, func(h editor.Host, v variant.Value) editor.Editor {
		return editor.NewTextEditor(h, v)
	})
	f, ok := d.Registry.Lookup(variant.Null)
	assert.True(t, ok)
	assert.NotNil(t, f)
	require.NoError(t, d.Open(n, 5, cell))
	h.LastTextBox().Value = "set"
	_, err := d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	v, _ := n.Value(5)
	assert.Equal(t, variant.StringOf("set"), v)
}

func TestOpenNoEditorKeepsSession(t *testing.T) {
	h, d, n := setup()
	canceled := 0
	d.OnCancel = func(s *editor.Session) { canceled++ }
	require.NoError(t, d.Open(n, 0, cell))
	h.LastTextBox().Value = "typed"

	assert.ErrorIs(t, d.Open(n, 5, cell), editor.ErrNoEditor)
	assert.ErrorIs(t, d.Open(n, 4, cell), editor.ErrNoEditor)
	require.True(t, d.Active())
	assert.Equal(t, 0, d.Session().Index)
	assert.Equal(t, 0, canceled)
	assert.Equal(t, 1, h.Live())

	handled, err := d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	assert.True(t, handled)
	v, _ := n.Value(0)
	assert.Equal(t, variant.StringOf("typed"), v)
}

func TestOverride(t *testing.T) {
	h, d, n := setup()
	d.Override = func(on *tree.Node, index int) editor.Factory {
		if on == n && index == 2 {
			return editor.NewListEditor
		}
		return nil
	}
	assert.ErrorIs(t, d.Open(n, 2, cell), editor.ErrNoEditor, "the override replaces the registry")
	assert.Empty(t, h.ComboBoxes)
	assert.Empty(t, h.TextBoxes)

	d.Override = func(on *tree.Node, index int) editor.Factory {
		if index == 5 {
			return editor.NewTextEditor
		}
		return nil
	}
	require.NoError(t, d.Open(n, 5, cell), "null value edited through the override")
	h.LastTextBox().Value = "set"
	_, err := d.Key(key.CodeReturnEnter)
	require.NoError(t, err)
	v, _ := n.Value(5)
	assert.Equal(t, variant.StringOf("set"), v)

	require.NoError(t, d.Open(n, 0, cell), "no override falls back to the registry")
	assert.Equal(t, 2, len(h.TextBoxes))
}

func TestMove(t *testing.T) {
	h, d, n := setup()
	d.Move(cell)
	require.NoError(t, d.Open(n, 0, cell))
	moved := cell.Translate(math32.Vec2(0, 18))
	d.Move(moved)
	assert.Equal(t, moved, d.Session().Bounds)
	assert.Equal(t, moved, h.LastTextBox().Bounds)
}
