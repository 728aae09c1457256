// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treeview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/richtree/base/errors"
	"cogentcore.org/richtree/base/iox/jsonx"
	"cogentcore.org/richtree/base/iox/tomlx"
	"cogentcore.org/richtree/base/iox/yamlx"
	"cogentcore.org/richtree/columns"
	"cogentcore.org/richtree/editor"
	"cogentcore.org/richtree/layout"
	"cogentcore.org/richtree/render"
)

// ColumnSettings are the settings of one column.
type ColumnSettings struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	// Width is the explicit width, or 0 to use the width policy.
	Width int `toml:"width" yaml:"width" json:"width"`
}

// Settings are the view settings that can be loaded from a file.
type Settings struct {
	CheckMode bool `toml:"check-mode" yaml:"check-mode" json:"check-mode"`

	WidthPolicy columns.WidthPolicy `toml:"width-policy" yaml:"width-policy" json:"width-policy"`

	EditorPolicy editor.Policy `toml:"editor-policy" yaml:"editor-policy" json:"editor-policy"`

	// Theme is "light" or "dark".
	Theme string `toml:"theme" yaml:"theme" json:"theme"`

	// Metrics override the default metrics. Zero fields keep
	// their default value.
	Metrics layout.Metrics `toml:"metrics" yaml:"metrics" json:"metrics"`

	// Columns replace the registered columns when not empty.
	Columns []ColumnSettings `toml:"columns" yaml:"columns" json:"columns"`
}

// OpenSettings opens settings from the given file, with the format
// given by its extension: .toml, .yaml, .yml, or .json.
func OpenSettings(filename string) (*Settings, error) {
	s := &Settings{}
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	case ".json":
		err = jsonx.Open(s, filename)
	default:
		return nil, fmt.Errorf("treeview: settings file %q has unknown format %q", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("treeview: opening settings %q: %w", filename, err)
	}
	return s, nil
}

// MergedMetrics returns the default metrics with the non-zero
// metrics of the settings copied over them.
func (s *Settings) MergedMetrics() layout.Metrics {
	m := layout.DefaultMetrics()
	errors.Log(copier.CopyWithOption(&m, &s.Metrics, copier.Option{IgnoreEmpty: true}))
	return m
}

// Apply applies the settings to the view, with a single layout pass.
func (v *View) Apply(s *Settings) error {
	var err error
	v.Update(func() {
		v.SetCheckMode(s.CheckMode)
		v.SetWidthPolicy(s.WidthPolicy)
		v.SetEditorPolicy(s.EditorPolicy)
		v.SetMetrics(s.MergedMetrics())
		switch strings.ToLower(s.Theme) {
		case "", "light":
			v.painter.Theme = render.DefaultTheme()
		case "dark":
			v.painter.Theme = render.DarkTheme()
		default:
			err = fmt.Errorf("treeview: unknown theme %q", s.Theme)
		}
		if len(s.Columns) == 0 {
			return
		}
		v.SetColumns(s.Columns)
	})
	return err
}

// SetColumns replaces the registered columns.
func (v *View) SetColumns(cols []ColumnSettings) {
	v.Update(func() {
		v.cols.Clear()
		for _, c := range cols {
			v.cols.Add(c.Name, c.Width)
		}
	})
}

// Settings returns the current settings of the view.
func (v *View) Settings() *Settings {
	s := &Settings{
		CheckMode:    v.opts.CheckMode,
		WidthPolicy:  v.opts.WidthPolicy,
		EditorPolicy: v.editors.Policy,
		Metrics:      v.opts.Metrics,
	}
	for _, c := range v.cols.All() {
		s.Columns = append(s.Columns, ColumnSettings{Name: c.Name, Width: c.Width()})
	}
	return s
}
