// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	assert.Equal(t, Vector2{4, 6}, Vec2(1, 2).Add(Vec2(3, 4)))
	assert.Equal(t, image.Pt(2, 3), Vec2(1.2, 2.1).ToPointCeil())
}

func TestFixed(t *testing.T) {
	assert.Equal(t, float32(1.5), FromFixed(fixed.I(3)/2))
	assert.Equal(t, float32(-2.25), FromFixed(-fixed.I(9)/4))
	assert.Equal(t, fixed.I(7), ToFixed(7))
}

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 5)
	assert.True(t, b.ContainsPoint(Vec2(0, 0)))
	assert.True(t, b.ContainsPoint(Vec2(9.9, 4.9)))
	assert.False(t, b.ContainsPoint(Vec2(10, 2)))
	assert.False(t, b.ContainsPoint(Vec2(-1, 2)))
	assert.Equal(t, Vec2(10, 5), b.Size())
	assert.Equal(t, B2(2, 3, 12, 8), b.Translate(Vec2(2, 3)))

	e := B2Empty()
	assert.True(t, e.IsEmpty())
	e.ExpandByBox(b)
	assert.Equal(t, b, e)
	assert.Equal(t, image.Rect(0, 0, 10, 5), b.ToRect())
	assert.Equal(t, B2(0, 0, 20, 20), b.Union(B2(5, 5, 20, 20)))
}

func TestVector2Length(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(5), v.Length())
	n := v.Normal()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
	assert.Equal(t, Vector2{}, Vector2{}.Normal())
	assert.Equal(t, Vec2(3.5, 4.5), v.AddScalar(0.5))
	assert.Equal(t, Vec2(1.5, 2), v.MulScalar(0.5))
	assert.Equal(t, Vector2{}, v.DivScalar(0))
}
