// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package theme names the terminal palette. It turns color names into
// bound richtext marks and quantizes 24-bit RGB onto the xterm 256-color
// palette for backends and importers that cannot pass truecolor through.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/framegrace/texeltext/richtext"
)

// palette maps the sixteen ANSI color names to their standard indexes.
var palette = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright_black":   8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
	"gray":           8,
	"grey":           8,
}

// Index resolves a color name to its palette index. Names are matched
// case-insensitively.
func Index(name string) (int, bool) {
	n, ok := palette[strings.ToLower(name)]
	return n, ok
}

// Names returns the canonical color names in palette order.
func Names() []string {
	out := make([]string, 0, len(palette))
	for name := range palette {
		if name == "gray" || name == "grey" {
			continue
		}
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return palette[out[i]] < palette[out[j]] })
	return out
}

// Color returns a foreground color mark for the named palette entry.
func Color(name string) (richtext.Mark, error) {
	n, ok := Index(name)
	if !ok {
		return richtext.Mark{}, fmt.Errorf("theme: no color named %q", name)
	}
	return richtext.Get(richtext.AttrColor).With(n), nil
}

// OnColor returns a background color mark for the named palette entry.
func OnColor(name string) (richtext.Mark, error) {
	n, ok := Index(name)
	if !ok {
		return richtext.Mark{}, fmt.Errorf("theme: no color named %q", name)
	}
	return richtext.Get(richtext.AttrOnColor).With(n), nil
}

// cubeLevels holds the channel values of the xterm 6x6x6 color cube.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

func cubeIndex(v int) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}

func sqDist(a, b int) int {
	d := a - b
	return d * d
}

// Index256 maps a 24-bit RGB color to the closest entry of the xterm
// 256-color palette, choosing between the 6x6x6 cube and the grayscale
// ramp by squared channel distance.
func Index256(r, g, b uint8) int {
	ri, gi, bi := int(r), int(g), int(b)

	cr, cg, cb := cubeIndex(ri), cubeIndex(gi), cubeIndex(bi)
	cubeCol := 16 + 36*cr + 6*cg + cb
	cubeErr := sqDist(ri, cubeLevels[cr]) + sqDist(gi, cubeLevels[cg]) + sqDist(bi, cubeLevels[cb])

	avg := (ri + gi + bi) / 3
	gray := (avg - 3) / 10
	if gray < 0 {
		gray = 0
	}
	if gray > 23 {
		gray = 23
	}
	level := 8 + 10*gray
	grayErr := sqDist(ri, level) + sqDist(gi, level) + sqDist(bi, level)

	if grayErr < cubeErr {
		return 232 + gray
	}
	return cubeCol
}
