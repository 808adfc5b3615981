// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cells

import (
	"github.com/gdamore/tcell/v2"
)

// TcellColor converts a cell color to its tcell equivalent.
func TcellColor(c Color) tcell.Color {
	switch c.Mode {
	case ColorModeStandard, ColorMode256:
		return tcell.PaletteColor(int(c.Value))
	case ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

// StyleOf converts a cell's styling to a tcell.Style for screen drawing.
func StyleOf(c Cell) tcell.Style {
	st := tcell.StyleDefault.Foreground(TcellColor(c.FG)).Background(TcellColor(c.BG))
	if c.Attr&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attr&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attr&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attr&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attr&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attr&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if c.Attr&AttrStrikethrough != 0 {
		st = st.StrikeThrough(true)
	}
	return st
}
