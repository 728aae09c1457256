// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package outline loads tree documents, which describe the columns and
// nodes of a tree view in YAML, TOML, or JSON, and builds them into a
// tree or a [treeview.View].
package outline

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"cogentcore.org/richtree/base/iox/imagex"
	"cogentcore.org/richtree/base/iox/jsonx"
	"cogentcore.org/richtree/base/iox/tomlx"
	"cogentcore.org/richtree/base/iox/yamlx"
	"cogentcore.org/richtree/tree"
	"cogentcore.org/richtree/treeview"
	"cogentcore.org/richtree/variant"
)

// Formats are the supported document formats.
type Formats int32

const (
	YAML Formats = iota
	TOML
	JSON
)

// FormatOf returns the format given by the extension of the filename.
func FormatOf(filename string) (Formats, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return YAML, fmt.Errorf("outline: unknown document format %q", ext)
	}
}

// Node is one node of a document.
type Node struct {
	Text string `toml:"text" yaml:"text" json:"text"`

	// Icon is the filename of the icon image, relative to the document.
	Icon string `toml:"icon,omitempty" yaml:"icon,omitempty" json:"icon,omitempty"`

	Checked bool `toml:"checked,omitempty" yaml:"checked,omitempty" json:"checked,omitempty"`
	Hidden  bool `toml:"hidden,omitempty" yaml:"hidden,omitempty" json:"hidden,omitempty"`

	// Collapsed hides all descendants of the node.
	Collapsed bool `toml:"collapsed,omitempty" yaml:"collapsed,omitempty" json:"collapsed,omitempty"`

	// Values are converted with [variant.Of]: booleans, numbers,
	// strings, null, and lists of strings.
	Values []any `toml:"values,omitempty" yaml:"values,omitempty" json:"values,omitempty"`

	Children []Node `toml:"children,omitempty" yaml:"children,omitempty" json:"children,omitempty"`
}

// Document is a tree document.
type Document struct {
	CheckMode bool `toml:"check-mode" yaml:"check-mode" json:"check-mode"`

	Columns []treeview.ColumnSettings `toml:"columns" yaml:"columns" json:"columns"`

	Nodes []Node `toml:"nodes" yaml:"nodes" json:"nodes"`

	// Dir is the directory icons are relative to.
	Dir string `toml:"-" yaml:"-" json:"-"`

	icons map[string]image.Image
}

// Open opens the document in the given file.
func Open(filename string) (*Document, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	d := &Document{Dir: filepath.Dir(filename)}
	switch f {
	case YAML:
		err = yamlx.Open(d, filename)
	case TOML:
		err = tomlx.Open(d, filename)
	case JSON:
		err = jsonx.Open(d, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("outline: opening %q: %w", filename, err)
	}
	return d, nil
}

// Read reads a document in the given format from the given bytes.
// Icons are relative to the current directory.
func Read(data []byte, f Formats) (*Document, error) {
	d := &Document{}
	var err error
	switch f {
	case YAML:
		err = yamlx.ReadBytes(d, data)
	case TOML:
		err = tomlx.ReadBytes(d, data)
	case JSON:
		err = jsonx.ReadBytes(d, data)
	default:
		err = fmt.Errorf("unknown format %d", f)
	}
	if err != nil {
		return nil, fmt.Errorf("outline: reading document: %w", err)
	}
	return d, nil
}

// Count returns the number of nodes of the document.
func (d *Document) Count() int {
	n := 0
	stack := make([]*Node, 0, len(d.Nodes))
	for i := range d.Nodes {
		stack = append(stack, &d.Nodes[i])
	}
	for len(stack) > 0 {
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for i := range nd.Children {
			stack = append(stack, &nd.Children[i])
		}
	}
	return n
}

// Build adds the nodes of the document as children of the given node.
func (d *Document) Build(parent *tree.Node) error {
	for i := range d.Nodes {
		if err := d.build(parent, &d.Nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) build(parent *tree.Node, nd *Node) error {
	child := tree.New(nd.Text, variant.Values(nd.Values...)...)
	if nd.Icon != "" {
		icon, err := d.icon(nd.Icon)
		if err != nil {
			return err
		}
		child.SetIcon(icon)
	}
	child.SetChecked(nd.Checked)
	parent.AddChild(child)
	for i := range nd.Children {
		if err := d.build(child, &nd.Children[i]); err != nil {
			return err
		}
	}
	if nd.Collapsed {
		child.Collapse()
	}
	child.SetHidden(nd.Hidden)
	return nil
}

// icon opens the icon with the given filename, once per filename.
func (d *Document) icon(name string) (image.Image, error) {
	if img, ok := d.icons[name]; ok {
		return img, nil
	}
	fn := name
	if !filepath.IsAbs(fn) {
		fn = filepath.Join(d.Dir, fn)
	}
	img, _, err := imagex.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("outline: icon %q: %w", name, err)
	}
	if d.icons == nil {
		d.icons = make(map[string]image.Image)
	}
	d.icons[name] = img
	return img, nil
}

// Apply sets the check mode and columns of the view from the
// document, and adds its nodes to the root of the view, with a
// single layout pass.
func (d *Document) Apply(v *treeview.View) error {
	var err error
	v.Update(func() {
		v.SetCheckMode(d.CheckMode)
		if len(d.Columns) > 0 {
			v.SetColumns(d.Columns)
		}
		err = d.Build(v.Root())
	})
	return err
}
