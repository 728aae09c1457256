// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import "cogentcore.org/richtree/variant"

// Registry maps value kinds to editor factories.
type Registry struct {
	factories map[variant.Kind]Factory
}

// NewRegistry returns a registry with the default editors:
// text for String and Number, check box for Bool, and combo box for List.
// Null values have no editor.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(variant.String, NewTextEditor)
	r.Register(variant.Number, NewTextEditor)
	r.Register(variant.Bool, NewBoolEditor)
	r.Register(variant.List, NewListEditor)
	return r
}

// Register sets the factory for the given kind. A nil factory removes it.
func (r *Registry) Register(k variant.Kind, f Factory) {
	if f == nil {
		delete(r.factories, k)
		return
	}
	if r.factories == nil {
		r.factories = make(map[variant.Kind]Factory)
	}
	r.factories[k] = f
}

// Lookup returns the factory for the given kind.
func (r *Registry) Lookup(k variant.Kind) (Factory, bool) {
	f, ok := r.factories[k]
	return f, ok
}

// New returns a new editor for the given value, or nil if there is none.
func (r *Registry) New(h Host, v variant.Value) Editor {
	f, ok := r.Lookup(v.Kind())
	if !ok {
		return nil
	}
	return f(h, v)
}
