// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"unicode/utf8"

	"cogentcore.org/richtree/columns"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render/cell"
)

// Measurer measures the size of rendered text. It is provided by the
// host toolkit, typically from its font metrics.
type Measurer interface {
	MeasureText(text string) math32.Vector2
}

// Monospace is a [Measurer] for fixed cell fonts, where every rune
// occupies the same width.
type Monospace struct {
	CharWidth  float32
	LineHeight float32
}

// MeasureText implements [Measurer].
func (m Monospace) MeasureText(text string) math32.Vector2 {
	return math32.Vec2(float32(utf8.RuneCountInString(text))*m.CharWidth, m.LineHeight)
}

// Metrics are the fixed distances used by layout, in pixels.
type Metrics struct {

	// Margin is the left margin of the tree, and the top of the header row.
	Margin float32 `toml:"margin" yaml:"margin" json:"margin"`

	// HeaderGap is the space between the top of the header row
	// and the first node row, in addition to the header text height.
	HeaderGap float32 `toml:"header-gap" yaml:"header-gap" json:"header-gap"`

	// Top is the top of the first node row when there is no header row.
	Top float32 `toml:"top" yaml:"top" json:"top"`

	// Indent is the horizontal step for each tree level.
	Indent float32 `toml:"indent" yaml:"indent" json:"indent"`

	// CheckIndent replaces Indent when check mode is enabled.
	CheckIndent float32 `toml:"check-indent" yaml:"check-indent" json:"check-indent"`

	// IconSize is the width and height of node icons.
	IconSize float32 `toml:"icon-size" yaml:"icon-size" json:"icon-size"`

	// IconAdvance is the horizontal space reserved left of a label for its icon.
	IconAdvance float32 `toml:"icon-advance" yaml:"icon-advance" json:"icon-advance"`

	// CheckSize is the width and height of check boxes, which is also
	// their hit rectangle.
	CheckSize float32 `toml:"check-size" yaml:"check-size" json:"check-size"`

	// CheckAdvance is the horizontal space reserved for a check box.
	CheckAdvance float32 `toml:"check-advance" yaml:"check-advance" json:"check-advance"`

	// RowGap is added to the text line height to give the row height.
	RowGap float32 `toml:"row-gap" yaml:"row-gap" json:"row-gap"`

	// ColumnGap is the space between the label area and the first
	// column, and between columns.
	ColumnGap float32 `toml:"column-gap" yaml:"column-gap" json:"column-gap"`

	// MinColumnWidth is the smallest width of a [columns.Fit] column.
	MinColumnWidth float32 `toml:"min-column-width" yaml:"min-column-width" json:"min-column-width"`

	// DefaultWidth is the width of a [columns.Fixed] column.
	DefaultWidth float32 `toml:"default-width" yaml:"default-width" json:"default-width"`
}

// DefaultMetrics returns the default metrics.
func DefaultMetrics() Metrics {
	return Metrics{
		Margin:         5,
		HeaderGap:      10,
		Top:            30,
		Indent:         20,
		CheckIndent:    34,
		IconSize:       14,
		IconAdvance:    20,
		CheckSize:      14,
		CheckAdvance:   18,
		RowGap:         5,
		ColumnGap:      8,
		MinColumnWidth: 24,
		DefaultWidth:   80,
	}
}

// Options are the inputs of a layout pass besides the tree and columns.
type Options struct {

	// CheckMode shows a check box for every node.
	CheckMode bool

	// WidthPolicy sizes columns without an explicit width.
	WidthPolicy columns.WidthPolicy

	Metrics Metrics

	// Renderers choose the renderer of each value kind. Columns can
	// override it with [columns.Column.Render]. When nil, Bool values
	// are check boxes and every other value is text.
	Renderers *cell.Registry
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{Metrics: DefaultMetrics(), Renderers: cell.NewRegistry()}
}
