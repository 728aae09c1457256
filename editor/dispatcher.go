// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides the inline editors of value cells. A
// [Dispatcher] runs at most one edit session at a time: it chooses an
// editor for the kind of the edited value through a [Registry], places
// its native widget over the cell, and writes the value back to the
// node on commit.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/richtree/events/key"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/variant"
)

var (
	// ErrInvalidArgument is returned for a nil node or an invalid
	// value index.
	ErrInvalidArgument = errors.New("editor: invalid argument")

	// ErrNoEditor is returned by [Dispatcher.Open] when the value
	// has no editor.
	ErrNoEditor = errors.New("editor: no editor for value")

	// ErrEditorActive is returned by [Dispatcher.Open] under the
	// [RejectActive] policy while another session is active.
	ErrEditorActive = errors.New("editor: an editor is already active")

	// ErrNotEditing is returned by commits without an active session.
	ErrNotEditing = errors.New("editor: no active editor")
)

// Policy determines what opening an editor does while another
// session is active.
type Policy int32

const (
	// ReplaceActive cancels the active session, without writing back,
	// and opens the new one.
	ReplaceActive Policy = iota

	// RejectActive keeps the active session and fails with [ErrEditorActive].
	RejectActive
)

var policyNames = [...]string{"replace", "reject"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int32(p))
	}
	return policyNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Policy) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, nm := range policyNames {
		if nm == s {
			*p = Policy(i)
			return nil
		}
	}
	return fmt.Errorf("editor: unknown policy %q", string(text))
}

// Session is an active edit session of one value slot.
type Session struct {
	Node  *tree.Node
	Index int

	// Original is the value at the time the session opened.
	Original variant.Value

	Editor Editor
	Bounds math32.Box2
}

// Dispatcher is the state machine of inline editing, which is Idle
// without a session and Editing with one.
type Dispatcher struct {
	Host     Host
	Registry *Registry
	Policy   Policy

	// OnCommit is called after a value was written back and the
	// session was closed.
	OnCommit func(s *Session, v variant.Value)

	// OnCancel is called after a session was closed without writing back.
	OnCancel func(s *Session)

	// Override returns the factory replacing the registry for value
	// index of the node, or nil. It is used for column editors.
	Override func(n *tree.Node, index int) Factory

	session *Session
}

// NewDispatcher returns a new idle dispatcher with the default registry.
func NewDispatcher(h Host) *Dispatcher {
	return &Dispatcher{Host: h, Registry: NewRegistry()}
}

// Active returns whether a session is active.
func (d *Dispatcher) Active() bool {
	return d.session != nil
}

// Session returns the active session, or nil.
func (d *Dispatcher) Session() *Session {
	return d.session
}

// Open starts a session editing value index of the node, with the
// editor widget placed at the given bounds. It returns [ErrNoEditor]
// when the value has no editor, in which case the cell is display only
// and an active session is kept.
func (d *Dispatcher) Open(n *tree.Node, index int, bounds math32.Box2) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidArgument)
	}
	v, ok := n.Value(index)
	if !ok {
		return fmt.Errorf("%w: value index %d of %q (%d values)", ErrInvalidArgument, index, n.Text(), n.NumValues())
	}
	if d.session != nil && d.Policy == RejectActive {
		return ErrEditorActive
	}
	ed := d.newEditor(n, index, v)
	if ed == nil {
		return fmt.Errorf("%w: %v", ErrNoEditor, v.Kind())
	}
	d.Cancel()
	ed.Widget().SetBounds(bounds)
	d.session = &Session{Node: n, Index: index, Original: v, Editor: ed, Bounds: bounds}
	slog.Debug("editor: opened", "node", n.Text(), "index", index, "kind", v.Kind())
	return nil
}

// newEditor returns a new editor for the value, or nil.
func (d *Dispatcher) newEditor(n *tree.Node, index int, v variant.Value) Editor {
	if d.Override != nil {
		if f := d.Override(n, index); f != nil {
			return f(d.Host, v)
		}
	}
	return d.Registry.New(d.Host, v)
}

// Move places the widget of the active session at the given bounds.
func (d *Dispatcher) Move(bounds math32.Box2) {
	s := d.session
	if s == nil || s.Bounds == bounds {
		return
	}
	s.Bounds = bounds
	s.Editor.Widget().SetBounds(bounds)
}

// Key handles a key press for the active session: the accept key
// commits and the escape key cancels. It returns whether the key was
// handled.
func (d *Dispatcher) Key(code key.Codes) (bool, error) {
	s := d.session
	if s == nil {
		return false, nil
	}
	switch {
	case code.IsAccept():
		v, ok := s.Editor.Accept(s.Original)
		if !ok {
			return true, nil
		}
		return true, d.Commit(v)
	case code.IsCancel():
		d.Cancel()
		return true, nil
	}
	return false, nil
}

// Changed is called by the host after the editor widget changed its
// state. Editors committing immediately, like check boxes, commit here.
func (d *Dispatcher) Changed() error {
	s := d.session
	if s == nil {
		return nil
	}
	v, ok := s.Editor.Changed(s.Original)
	if !ok {
		return nil
	}
	return d.Commit(v)
}

// Commit closes the session, disposes the widget, writes the value back
// to the edited slot, and calls [Dispatcher.OnCommit].
func (d *Dispatcher) Commit(v variant.Value) error {
	s := d.session
	if s == nil {
		return ErrNotEditing
	}
	d.session = nil
	s.Editor.Widget().Dispose()
	err := Apply(s.Node, s.Index, v)
	if err != nil {
		return err
	}
	slog.Debug("editor: committed", "node", s.Node.Text(), "index", s.Index, "value", v)
	if d.OnCommit != nil {
		d.OnCommit(s, v)
	}
	return nil
}

// Cancel disposes the widget of the active session without writing
// back, and calls [Dispatcher.OnCancel].
func (d *Dispatcher) Cancel() {
	s := d.session
	if s == nil {
		return
	}
	s.Editor.Widget().Dispose()
	d.session = nil
	slog.Debug("editor: canceled", "node", s.Node.Text(), "index", s.Index)
	if d.OnCancel != nil {
		d.OnCancel(s)
	}
}

// Apply writes v into value index of the node. It returns
// [ErrInvalidArgument] for a nil node or a negative index.
func Apply(n *tree.Node, index int, v variant.Value) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidArgument)
	}
	if index < 0 {
		return fmt.Errorf("%w: negative value index %d", ErrInvalidArgument, index)
	}
	return n.SetValue(index, v)
}
