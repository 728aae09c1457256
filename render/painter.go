// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/richtree/layout"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render/cell"
)

// Painter paints layout results with a [Theme].
type Painter struct {
	Theme Theme

	// Highlight is the selected row in content coordinates.
	// It is not painted when empty.
	Highlight math32.Box2
}

// NewPainter returns a new painter with the default theme
// and no highlight.
func NewPainter() *Painter {
	return &Painter{Theme: DefaultTheme(), Highlight: math32.B2Empty()}
}

// Paint paints the result onto the surface in the order background,
// highlight, separators, headers, labels, values, icons, check boxes.
// Values and their check boxes are drawn by their renderers.
// Everything is translated by the negated scroll offset.
func (p *Painter) Paint(s Surface, r *layout.Result, scroll math32.Vector2) {
	if r == nil {
		return
	}
	off := math32.Vec2(-scroll.X, -scroll.Y)
	th := &p.Theme
	s.FillBox(math32.B2FromPos(off, r.Size), th.Background)
	if !p.Highlight.IsEmpty() {
		s.FillBox(p.Highlight.Translate(off), th.Highlight)
	}
	for _, l := range r.Separators {
		s.DrawLine(l.From.Add(off), l.To.Add(off), th.Separator)
	}
	for _, h := range r.Headers {
		s.DrawText(h.Text, h.Bounds.Min.Add(off), th.Header)
	}
	for _, it := range r.Labels {
		s.DrawText(it.Text, it.Bounds.Min.Add(off), th.Text)
	}
	pal := th.Palette()
	for _, it := range r.Values {
		if it.Renderer == nil {
			s.DrawText(it.Text, it.Bounds.Min.Add(off), th.Text)
			continue
		}
		it.Renderer.Draw(s, it.Value, it.Bounds.Translate(off), &pal)
	}
	for _, m := range r.Icons {
		s.DrawImage(m.Icon, m.Bounds.Translate(off))
	}
	for _, m := range r.Checks {
		if m.Renderer == nil {
			cell.DrawCheck(s, m.Bounds.Translate(off), m.Checked, &pal)
			continue
		}
		m.Renderer.Draw(s, m.Value, m.Bounds.Translate(off), &pal)
	}
}
