// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cells/cell.go
// Summary: Screen-cell model for projecting rich text onto terminal grids.
// Usage: Consumed by compositors that want resolved per-cell styling instead of escape streams.
// Notes: One Cell per rune; wide runes carry a flag rather than a spacer cell.

package cells

// Attr is a bitmask of cell text attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// String returns a human-readable representation of the attribute flags.
func (a Attr) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrDim != 0 {
		parts = append(parts, "dim")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrBlink != 0 {
		parts = append(parts, "blink")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	if a&AttrStrikethrough != 0 {
		parts = append(parts, "strikethrough")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // default terminal color
	ColorModeStandard                  // the 16 basic ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // color code for Standard (0-15) and 256 mode
	R, G, B uint8 // channel values for RGB mode
}

// Cell is a single character cell with resolved styling.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Attr Attr
	Wide bool // true for runes that occupy two columns
}

// Predefined default colors for convenience.
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)
