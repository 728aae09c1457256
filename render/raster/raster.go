// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides an offscreen [render.Surface] backed by an
// [image.RGBA], which also measures text as a [layout.Measurer] with
// the same font face it draws with.
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/richtree/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Surface paints into an RGBA image.
type Surface struct {
	Image *image.RGBA

	// Face is the font face used for drawing and measuring text.
	Face font.Face

	ras *vector.Rasterizer
}

// New returns a new surface of the given size using the basic
// 7x13 fixed font.
func New(size image.Point) *Surface {
	return &Surface{
		Image: image.NewRGBA(image.Rectangle{Max: size}),
		Face:  basicfont.Face7x13,
	}
}

// Resize replaces the image with a new blank image of the given size,
// unless it already has that size.
func (s *Surface) Resize(size image.Point) {
	if s.Image != nil && s.Image.Bounds().Size() == size {
		return
	}
	s.Image = image.NewRGBA(image.Rectangle{Max: size})
}

// MeasureText implements [layout.Measurer]. The height is the line
// height of the face.
func (s *Surface) MeasureText(text string) math32.Vector2 {
	adv := font.MeasureString(s.Face, text)
	return math32.Vec2(math32.FromFixed(adv), math32.FromFixed(s.Face.Metrics().Height))
}

// FillBox implements [render.Surface].
func (s *Surface) FillBox(b math32.Box2, clr color.Color) {
	r := b.ToRect().Intersect(s.Image.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.Image, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// StrokeBox implements [render.Surface]. The outline lies inside the box.
func (s *Surface) StrokeBox(b math32.Box2, clr color.Color) {
	r := b.ToRect()
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y)
	z := s.rasterizer()
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
	if r.Dx() > 2 && r.Dy() > 2 {
		// the inner edge runs the other way, leaving a one pixel ring
		z.MoveTo(x0+1, y0+1)
		z.LineTo(x0+1, y1-1)
		z.LineTo(x1-1, y1-1)
		z.LineTo(x1-1, y0+1)
		z.ClosePath()
	}
	s.fill(clr)
}

// DrawLine implements [render.Surface]. The line is a one pixel wide
// path through the centers of the end pixels, with square caps.
func (s *Surface) DrawLine(from, to math32.Vector2, clr color.Color) {
	a := math32.Vector2FromPoint(from.ToPoint()).AddScalar(0.5)
	b := math32.Vector2FromPoint(to.ToPoint()).AddScalar(0.5)
	d := b.Sub(a).Normal().MulScalar(0.5)
	if d == (math32.Vector2{}) {
		d = math32.Vec2(0.5, 0)
	}
	n := math32.Vec2(-d.Y, d.X)
	a, b = a.Sub(d), b.Add(d)
	z := s.rasterizer()
	z.MoveTo(a.X+n.X, a.Y+n.Y)
	z.LineTo(b.X+n.X, b.Y+n.Y)
	z.LineTo(b.X-n.X, b.Y-n.Y)
	z.LineTo(a.X-n.X, a.Y-n.Y)
	z.ClosePath()
	s.fill(clr)
}

// rasterizer returns the path rasterizer, reset to the image size.
func (s *Surface) rasterizer() *vector.Rasterizer {
	sz := s.Image.Bounds().Size()
	if s.ras == nil {
		s.ras = vector.NewRasterizer(sz.X, sz.Y)
	} else {
		s.ras.Reset(sz.X, sz.Y)
	}
	return s.ras
}

// fill draws the current path of the rasterizer with the color.
func (s *Surface) fill(clr color.Color) {
	s.ras.Draw(s.Image, s.Image.Bounds(), image.NewUniform(clr), image.Point{})
}

// DrawText implements [render.Surface]. pos is the top-left corner
// of the line box, so the baseline is one ascent below it.
func (s *Surface) DrawText(text string, pos math32.Vector2, clr color.Color) {
	d := &font.Drawer{
		Dst:  s.Image,
		Src:  image.NewUniform(clr),
		Face: s.Face,
		Dot:  fixed.Point26_6{X: math32.ToFixed(pos.X), Y: math32.ToFixed(pos.Y) + s.Face.Metrics().Ascent},
	}
	d.DrawString(text)
}

// DrawImage implements [render.Surface], scaling the image bilinearly.
func (s *Surface) DrawImage(img image.Image, b math32.Box2) {
	if img == nil {
		return
	}
	r := b.ToRect()
	if r.Empty() {
		return
	}
	draw.BiLinear.Scale(s.Image, r, img, img.Bounds(), draw.Over, nil)
}
