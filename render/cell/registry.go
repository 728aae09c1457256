// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "cogentcore.org/richtree/variant"

// Registry maps value kinds to renderers. Kinds without a
// registered renderer are drawn as [Text].
type Registry struct {
	renderers map[variant.Kind]Renderer
}

// NewRegistry returns a registry with the default renderers:
// check box for Bool, and text for every other kind.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(variant.Bool, Check{})
	return r
}

// Register sets the renderer for the given kind. A nil renderer removes it.
func (r *Registry) Register(k variant.Kind, rd Renderer) {
	if rd == nil {
		delete(r.renderers, k)
		return
	}
	if r.renderers == nil {
		r.renderers = make(map[variant.Kind]Renderer)
	}
	r.renderers[k] = rd
}

// Lookup returns the renderer for the given kind, which is never nil.
func (r *Registry) Lookup(k variant.Kind) Renderer {
	if r != nil {
		if rd, ok := r.renderers[k]; ok {
			return rd
		}
	}
	return Text{}
}

// For returns the renderer of the value: the override when it is
// not nil, and otherwise the registered renderer of its kind.
func (r *Registry) For(override Renderer, v variant.Value) Renderer {
	if override != nil {
		return override
	}
	return r.Lookup(v.Kind())
}
