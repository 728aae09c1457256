// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cell provides the renderers of value cells. A [Renderer] is
// the strategy that shows the values of one [variant.Kind]: it decides
// whether the cell is a text cell or a check box, the text that is
// measured for it, and how it is drawn. A [Registry] chooses the
// renderer of each kind.
package cell

import (
	"image"
	"image/color"

	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/variant"
)

// Surface is the paint API of the host toolkit. All coordinates are
// viewport coordinates, in pixels.
type Surface interface {

	// FillBox fills the given box with the given color.
	FillBox(b math32.Box2, clr color.Color)

	// StrokeBox draws a one pixel outline of the given box.
	StrokeBox(b math32.Box2, clr color.Color)

	// DrawLine draws a one pixel line between the two points.
	DrawLine(from, to math32.Vector2, clr color.Color)

	// DrawText draws the text with its top-left corner at pos.
	DrawText(text string, pos math32.Vector2, clr color.Color)

	// DrawImage draws the image scaled into the given box.
	DrawImage(img image.Image, b math32.Box2)
}

// Modes are the interaction modes of a rendered cell.
type Modes int32

const (
	// TextMode cells show text, and are edited in place on double click.
	TextMode Modes = iota

	// CheckMode cells show a check box, which toggles on click.
	CheckMode
)

func (m Modes) String() string {
	if m == CheckMode {
		return "Check"
	}
	return "Text"
}

// Palette contains the colors renderers draw with.
type Palette struct {
	Text        color.Color
	CheckBorder color.Color
	CheckMark   color.Color
}

// Renderer shows values in their cells.
type Renderer interface {

	// Mode returns the interaction mode of the cells.
	Mode() Modes

	// Text returns the text measured for the value. Check mode
	// cells have the size of a check box instead.
	Text(v variant.Value) string

	// Draw draws the value into the cell bounds.
	Draw(s Surface, v variant.Value, b math32.Box2, p *Palette)
}

// Text is the renderer drawing the display text of values.
type Text struct{}

func (Text) Mode() Modes { return TextMode }

func (Text) Text(v variant.Value) string { return v.Text() }

func (Text) Draw(s Surface, v variant.Value, b math32.Box2, p *Palette) {
	s.DrawText(v.Text(), b.Min, p.Text)
}

// Check is the renderer drawing boolean values as check boxes.
type Check struct{}

func (Check) Mode() Modes { return CheckMode }

func (Check) Text(v variant.Value) string { return "" }

func (Check) Draw(s Surface, v variant.Value, b math32.Box2, p *Palette) {
	DrawCheck(s, b, v.Bool(), p)
}

// DrawCheck draws a check box outline, with a check mark when checked.
func DrawCheck(s Surface, b math32.Box2, checked bool, p *Palette) {
	s.StrokeBox(b, p.CheckBorder)
	if !checked {
		return
	}
	sz := b.Size()
	a := b.Min.Add(math32.Vec2(sz.X*0.2, sz.Y*0.5))
	m := b.Min.Add(math32.Vec2(sz.X*0.4, sz.Y*0.75))
	e := b.Min.Add(math32.Vec2(sz.X*0.8, sz.Y*0.25))
	s.DrawLine(a, m, p.CheckMark)
	s.DrawLine(m, e, p.CheckMark)
}
