// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termcap/terminfo.go
// Summary: Terminfo-backed rendering via the tcell capability database.
// Usage: Picked by Open("terminfo") or through "auto" when TERM resolves.
// Notes: Color requests past the terminal's reported depth fail as unknown attributes.

package termcap

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base"
	"github.com/gdamore/tcell/v2/terminfo/dynamic"

	"github.com/framegrace/texeltext/richtext"
	"github.com/framegrace/texeltext/theme"
)

// Terminfo resolves attributes against a terminfo entry, so the escape
// sequences match what the terminal actually advertises.
type Terminfo struct {
	ti *terminfo.Terminfo
}

func init() {
	Register("terminfo", func() (Backend, error) { return NewTerminfo("") })
}

// NewTerminfo looks up the named terminal, or $TERM when name is empty.
// The compiled-in database is tried first, then the system's terminfo
// files.
func NewTerminfo(name string) (*Terminfo, error) {
	if name == "" {
		name = os.Getenv("TERM")
	}
	if name == "" {
		return nil, errors.New("termcap: TERM is not set")
	}
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		ti, _, err = dynamic.LoadTerminfo(name)
		if err != nil {
			return nil, fmt.Errorf("termcap: no terminfo entry for %q: %w", name, err)
		}
	}
	return &Terminfo{ti: ti}, nil
}

// Name returns the resolved terminal name.
func (t *Terminfo) Name() string { return t.ti.Name }

// Colors returns the palette depth the entry advertises.
func (t *Terminfo) Colors() int { return t.ti.Colors }

// Normal returns the attribute-off sequence.
func (t *Terminfo) Normal() string { return t.ti.AttrOff }

// Sequence resolves an attribute through the capability table. Missing
// capabilities and out-of-depth colors report ErrUnknownAttribute.
func (t *Terminfo) Sequence(attr string, args []int, _ string) (string, error) {
	switch attr {
	case richtext.AttrBold:
		return t.capability(attr, t.ti.Bold)
	case richtext.AttrDim:
		return t.capability(attr, t.ti.Dim)
	case richtext.AttrItalic:
		return t.capability(attr, t.ti.Italic)
	case richtext.AttrUnderline:
		return t.capability(attr, t.ti.Underline)
	case richtext.AttrBlink:
		return t.capability(attr, t.ti.Blink)
	case richtext.AttrReverse:
		return t.capability(attr, t.ti.Reverse)
	case richtext.AttrStrikethrough:
		return t.capability(attr, t.ti.StrikeThrough)
	case richtext.AttrColor:
		return t.color(attr, t.ti.SetFg, args)
	case richtext.AttrOnColor:
		return t.color(attr, t.ti.SetBg, args)
	}
	return "", fmt.Errorf("termcap: %q: %w", attr, richtext.ErrUnknownAttribute)
}

func (t *Terminfo) capability(attr, seq string) (string, error) {
	if seq == "" {
		return "", fmt.Errorf("termcap: %s lacks %q: %w", t.ti.Name, attr, richtext.ErrUnknownAttribute)
	}
	return seq, nil
}

func (t *Terminfo) color(attr, seq string, args []int) (string, error) {
	if seq == "" {
		return "", fmt.Errorf("termcap: %s cannot set %s: %w", t.ti.Name, attr, richtext.ErrUnknownAttribute)
	}
	n, err := paletteArg(attr, args)
	if err != nil {
		return "", err
	}
	if n >= t.ti.Colors {
		return "", fmt.Errorf("termcap: %s has %d colors, want %d: %w",
			t.ti.Name, t.ti.Colors, n, richtext.ErrUnknownAttribute)
	}
	return t.ti.TParm(seq, n), nil
}

// paletteArg reduces a color argument list to one palette index. RGB
// triples are quantized onto the 256-color palette.
func paletteArg(attr string, args []int) (int, error) {
	switch len(args) {
	case 1:
		n := args[0]
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("termcap: %s index %d out of range: %w", attr, n, richtext.ErrUnknownAttribute)
		}
		return n, nil
	case 3:
		for _, v := range args {
			if v < 0 || v > 255 {
				return 0, fmt.Errorf("termcap: %s channel %d out of range: %w", attr, v, richtext.ErrUnknownAttribute)
			}
		}
		return theme.Index256(uint8(args[0]), uint8(args[1]), uint8(args[2])), nil
	}
	return 0, fmt.Errorf("termcap: %s wants 1 or 3 args, got %d: %w", attr, len(args), richtext.ErrUnknownAttribute)
}
