// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"cogentcore.org/richtree/render/cell"
)

// Theme contains the colors used by a [Painter].
type Theme struct {
	Background color.Color
	Text       color.Color
	Header     color.Color
	Separator  color.Color

	// Highlight fills the selected row.
	Highlight color.Color

	// CheckBorder outlines check boxes.
	CheckBorder color.Color

	// CheckMark is the color of the mark in checked check boxes.
	CheckMark color.Color
}

// DefaultTheme returns the light default theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  colornames.White,
		Text:        colornames.Black,
		Header:      colornames.Dimgray,
		Separator:   colornames.Lightgray,
		Highlight:   colornames.Lightsteelblue,
		CheckBorder: colornames.Gray,
		CheckMark:   colornames.Black,
	}
}

// DarkTheme returns a dark theme.
func DarkTheme() Theme {
	return Theme{
		Background:  color.RGBA{0x1e, 0x1e, 0x1e, 0xff},
		Text:        colornames.Whitesmoke,
		Header:      colornames.Darkgray,
		Separator:   colornames.Dimgray,
		Highlight:   colornames.Darkslateblue,
		CheckBorder: colornames.Darkgray,
		CheckMark:   colornames.Whitesmoke,
	}
}

// Palette returns the colors of the theme used by cell renderers.
func (t *Theme) Palette() cell.Palette {
	return cell.Palette{Text: t.Text, CheckBorder: t.CheckBorder, CheckMark: t.CheckMark}
}
