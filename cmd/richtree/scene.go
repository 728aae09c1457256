// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/richtree/layout"
	"cogentcore.org/richtree/outline"
	"cogentcore.org/richtree/treeview"
)

// scene is a realized view of a loaded document.
type scene struct {
	view *treeview.View
	host *host
}

// load opens the document into a new view measuring text with m,
// applies the optional settings, whose columns replace the document
// columns, and then the --set edits.
func load(cfg *Config, docFile string, m layout.Measurer) (*scene, error) {
	doc, err := outline.Open(docFile)
	if err != nil {
		return nil, err
	}
	sc := &scene{host: &host{Measurer: m}}
	v := treeview.New(sc.host)
	sc.view = v
	check := doc.CheckMode || cfg.Check
	if err := doc.Apply(v); err != nil {
		return nil, err
	}
	if cfg.Settings != "" {
		s, err := treeview.OpenSettings(cfg.Settings)
		if err != nil {
			return nil, err
		}
		if err := v.Apply(s); err != nil {
			return nil, err
		}
		check = check || s.CheckMode
	}
	v.SetCheckMode(check)
	v.Realize()
	for _, e := range cfg.Edits {
		if err := sc.set(e); err != nil {
			return nil, err
		}
	}
	slog.Info("loaded document", "file", docFile, "nodes", v.Root().Count()-1, "columns", v.Columns().Len(), "edits", len(cfg.Edits))
	return sc, nil
}
