// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/richtree/events"
	"cogentcore.org/richtree/events/key"
	"cogentcore.org/richtree/tree"
)

// edit is a parsed --set flag: path:index=value, where path is the
// slash separated labels of the node from the top level.
type edit struct {
	path  []string
	index int
	value string
}

func parseEdit(s string) (edit, error) {
	lhs, value, ok := strings.Cut(s, "=")
	if !ok {
		return edit{}, fmt.Errorf("edit %q: missing =value", s)
	}
	i := strings.LastIndex(lhs, ":")
	if i < 0 {
		return edit{}, fmt.Errorf("edit %q: missing :index", s)
	}
	index, err := strconv.Atoi(lhs[i+1:])
	if err != nil {
		return edit{}, fmt.Errorf("edit %q: %w", s, err)
	}
	return edit{path: strings.Split(lhs[:i], "/"), index: index, value: value}, nil
}

// find returns the node at the path of labels below root, or nil.
func find(root *tree.Node, path []string) *tree.Node {
	n := root
	for _, label := range path {
		var next *tree.Node
		for _, c := range n.Children() {
			if c.Text() == label {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		n = next
	}
	return n
}

// set applies one --set edit through the inline editor of the value,
// as typing into it and pressing enter would.
func (sc *scene) set(s string) error {
	e, err := parseEdit(s)
	if err != nil {
		return err
	}
	v := sc.view
	n := find(v.Root(), e.path)
	if n == nil {
		return fmt.Errorf("edit %q: no node %q", s, strings.Join(e.path, "/"))
	}
	if err := v.Edit(n, e.index); err != nil {
		return fmt.Errorf("edit %q: %w", s, err)
	}
	if !v.Editors().Active() {
		return fmt.Errorf("edit %q: value is display only", s)
	}
	switch w := sc.host.widget.(type) {
	case *checkBox:
		b, err := strconv.ParseBool(e.value)
		if err != nil {
			v.Editors().Cancel()
			return fmt.Errorf("edit %q: %w", s, err)
		}
		w.checked = b
		return v.EditorChanged()
	case *textBox:
		w.text = e.value
	case *comboBox:
		w.typed = e.value
	}
	return v.HandleKey(events.NewKey(key.CodeReturnEnter, ""))
}
