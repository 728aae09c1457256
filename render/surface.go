// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render paints a [layout.Result] onto a host paint surface.
// Painting never lays out: it is a pure consumer of the latest result.
package render

import (
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render/cell"
)

// Surface is the paint API of the host toolkit. All coordinates are
// viewport coordinates, in pixels.
type Surface = cell.Surface

// Viewport is the scrollable viewport of the host toolkit.
type Viewport interface {

	// SetContentSize sets the size of the scrollable content.
	SetContentSize(size math32.Vector2)

	// ScrollOffset returns the current scroll position, which is
	// the content point shown at the top-left of the viewport.
	ScrollOffset() math32.Vector2
}
