// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termcap/sgr.go
// Summary: Raw ANSI SGR backend, no capability database involved.
// Usage: The fallback backend when terminfo is unavailable; also the wire format most tests read.
// Notes: Colors take one palette index 0-255, or an RGB triple for truecolor.

package termcap

import (
	"fmt"

	"github.com/framegrace/texeltext/richtext"
)

// SGR emits hard-coded ANSI SGR sequences. It works on anything
// VT100-shaped and never consults the environment.
type SGR struct{}

func init() {
	Register("sgr", func() (Backend, error) { return SGR{}, nil })
}

// Normal returns the reset-all sequence.
func (SGR) Normal() string { return "\x1b[0m" }

// Sequence resolves an attribute to its SGR escape. The following span is
// ignored; SGR styles stay open until reset.
func (SGR) Sequence(attr string, args []int, _ string) (string, error) {
	switch attr {
	case richtext.AttrBold:
		return "\x1b[1m", nil
	case richtext.AttrDim:
		return "\x1b[2m", nil
	case richtext.AttrItalic:
		return "\x1b[3m", nil
	case richtext.AttrUnderline:
		return "\x1b[4m", nil
	case richtext.AttrBlink:
		return "\x1b[5m", nil
	case richtext.AttrReverse:
		return "\x1b[7m", nil
	case richtext.AttrStrikethrough:
		return "\x1b[9m", nil
	case richtext.AttrColor:
		return sgrColor(attr, args, 30, 90, 38)
	case richtext.AttrOnColor:
		return sgrColor(attr, args, 40, 100, 48)
	}
	return "", fmt.Errorf("sgr: %q: %w", attr, richtext.ErrUnknownAttribute)
}

// sgrColor renders a color argument list: one palette index, or an RGB
// triple. Standard colors use the compact 30-37/90-97 style forms, the
// rest go through the extended 38/48 selectors.
func sgrColor(attr string, args []int, base, bright, ext int) (string, error) {
	switch len(args) {
	case 1:
		n := args[0]
		switch {
		case n < 0 || n > 255:
			return "", fmt.Errorf("sgr: %s index %d out of range: %w", attr, n, richtext.ErrUnknownAttribute)
		case n < 8:
			return fmt.Sprintf("\x1b[%dm", base+n), nil
		case n < 16:
			return fmt.Sprintf("\x1b[%dm", bright+n-8), nil
		default:
			return fmt.Sprintf("\x1b[%d;5;%dm", ext, n), nil
		}
	case 3:
		for _, v := range args {
			if v < 0 || v > 255 {
				return "", fmt.Errorf("sgr: %s channel %d out of range: %w", attr, v, richtext.ErrUnknownAttribute)
			}
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", ext, args[0], args[1], args[2]), nil
	}
	return "", fmt.Errorf("sgr: %s wants 1 or 3 args, got %d: %w", attr, len(args), richtext.ErrUnknownAttribute)
}
