// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cells/render.go
// Summary: Flattens rich text into styled cells via a running style state.
// Usage: RenderLine for single lines; Style for callers tracking state across lines themselves.
// Notes: Marks the cell model cannot express are skipped, not errored.

package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeltext/richtext"
)

// Style is the running attribute state while flattening rich text.
type Style struct {
	FG   Color
	BG   Color
	Attr Attr
}

// Reset restores the default style.
func (s *Style) Reset() {
	s.FG = DefaultFG
	s.BG = DefaultBG
	s.Attr = 0
}

// Apply folds one mark into the style. Color marks take a palette index or
// an RGB triple; attribute marks set bits; normal resets. Marks with no
// cell representation are ignored.
func (s *Style) Apply(m richtext.Mark) {
	switch m.Attr {
	case richtext.AttrNormal:
		s.Reset()
	case richtext.AttrBold:
		s.Attr |= AttrBold
	case richtext.AttrDim:
		s.Attr |= AttrDim
	case richtext.AttrItalic:
		s.Attr |= AttrItalic
	case richtext.AttrUnderline:
		s.Attr |= AttrUnderline
	case richtext.AttrBlink:
		s.Attr |= AttrBlink
	case richtext.AttrReverse:
		s.Attr |= AttrReverse
	case richtext.AttrStrikethrough:
		s.Attr |= AttrStrikethrough
	case richtext.AttrColor:
		if c, ok := colorFromArgs(m.Args); ok {
			s.FG = c
		}
	case richtext.AttrOnColor:
		if c, ok := colorFromArgs(m.Args); ok {
			s.BG = c
		}
	}
}

func colorFromArgs(args []int) (Color, bool) {
	switch len(args) {
	case 1:
		n := args[0]
		if n < 0 || n > 255 {
			return Color{}, false
		}
		if n < 16 {
			return Color{Mode: ColorModeStandard, Value: uint8(n)}, true
		}
		return Color{Mode: ColorMode256, Value: uint8(n)}, true
	case 3:
		for _, v := range args {
			if v < 0 || v > 255 {
				return Color{}, false
			}
		}
		return Color{Mode: ColorModeRGB, R: uint8(args[0]), G: uint8(args[1]), B: uint8(args[2])}, true
	}
	return Color{}, false
}

// Cell stamps the current style onto a rune.
func (s *Style) Cell(r rune) Cell {
	return Cell{
		Rune: r,
		FG:   s.FG,
		BG:   s.BG,
		Attr: s.Attr,
		Wide: runewidth.RuneWidth(r) == 2,
	}
}

// RenderLine flattens t into one styled cell per visible rune, resolving
// marks along the way. The input is expected to be a single line; newlines
// become ordinary cells.
func RenderLine(t richtext.Text) []Cell {
	var style Style
	style.Reset()
	cells := make([]Cell, 0, t.Len())
	it := t.Items()
	for it.Next() {
		if m, ok := it.Mark(); ok {
			style.Apply(m)
			continue
		}
		cells = append(cells, style.Cell(it.Rune()))
	}
	return cells
}

// LineString returns the runes of a cell line as a string.
func LineString(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// LineWidth returns the column count of a cell line, counting wide cells
// twice.
func LineWidth(cells []Cell) int {
	w := 0
	for _, c := range cells {
		if c.Wide {
			w += 2
		} else {
			w++
		}
	}
	return w
}

// ClipOrPad fits a cell line to exactly width columns, clipping the tail
// or padding with unstyled spaces. A wide cell straddling the clip point
// is dropped and its column padded.
func ClipOrPad(line []Cell, width int) []Cell {
	if width <= 0 {
		return nil
	}
	out := make([]Cell, 0, width)
	used := 0
	for _, c := range line {
		cw := 1
		if c.Wide {
			cw = 2
		}
		if used+cw > width {
			break
		}
		out = append(out, c)
		used += cw
	}
	for used < width {
		out = append(out, Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG})
		used++
	}
	return out
}

// TrimTrailing removes unstyled trailing spaces from a cell line.
func TrimTrailing(line []Cell) []Cell {
	for len(line) > 0 {
		last := line[len(line)-1]
		if last.Rune == ' ' && last.FG == DefaultFG && last.BG == DefaultBG && last.Attr == 0 {
			line = line[:len(line)-1]
		} else {
			break
		}
	}
	return line
}
