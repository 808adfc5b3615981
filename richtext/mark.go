// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: richtext/mark.go
// Summary: Zero-width formatting marks and the deferred render contract.
// Usage: Marks are built with Get/With and resolved against a Terminal at draw time.
// Notes: Unknown attribute names fail at render, not at construction.

package richtext

import (
	"errors"
	"strconv"
	"strings"
)

// Attribute names understood by the backends in the termcap package. Get
// accepts any name; an unsupported one surfaces ErrUnknownAttribute when
// the text is rendered.
const (
	AttrNormal        = "normal"
	AttrBold          = "bold"
	AttrDim           = "dim"
	AttrItalic        = "italic"
	AttrUnderline     = "underline"
	AttrBlink         = "blink"
	AttrReverse       = "reverse"
	AttrStrikethrough = "strikethrough"
	AttrColor         = "color"
	AttrOnColor       = "on_color"
)

// Terminal resolves an attribute name and its arguments to a concrete
// escape sequence. following carries the visible run the attribute will
// apply to, for backends that emit payload-aware sequences; most ignore it.
type Terminal interface {
	Sequence(attr string, args []int, following string) (string, error)
}

var (
	// ErrUnknownAttribute reports a mark naming a capability the backend
	// cannot resolve.
	ErrUnknownAttribute = errors.New("richtext: unknown attribute")

	// ErrInvalidWidth reports a wrap width below one.
	ErrInvalidWidth = errors.New("richtext: wrap width must be at least 1")
)

// Mark is a zero-width formatting token. It sits between visible characters,
// contributes no visible length, and is resolved to an escape sequence only
// once a Terminal is supplied.
type Mark struct {
	Attr string
	Args []int
}

// Get returns a fresh mark for the named attribute. Every call yields an
// independent value, so binding arguments at one call site can never leak
// into another.
func Get(attr string) Mark {
	return Mark{Attr: attr}
}

// Parameterized reports whether the attribute takes arguments.
func (m Mark) Parameterized() bool {
	return m.Attr == AttrColor || m.Attr == AttrOnColor
}

// With returns a copy of the mark bound to args, leaving the receiver
// untouched.
func (m Mark) With(args ...int) Mark {
	m.Args = append([]int(nil), args...)
	return m
}

// Equal reports structural equality of name and arguments.
func (m Mark) Equal(o Mark) bool {
	if m.Attr != o.Attr || len(m.Args) != len(o.Args) {
		return false
	}
	for i, a := range m.Args {
		if o.Args[i] != a {
			return false
		}
	}
	return true
}

// String returns a debug form such as "bold" or "color(2)". A mark never
// contributes visible text of its own.
func (m Mark) String() string {
	if len(m.Args) == 0 {
		return m.Attr
	}
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = strconv.Itoa(a)
	}
	return m.Attr + "(" + strings.Join(args, ",") + ")"
}

// Render resolves the mark against term. A normal mark renders as the
// supplied normal string without consulting the backend; anything else is
// looked up by name, with following forwarded so the backend can account
// for the run the style covers.
func (m Mark) Render(normal, following string, term Terminal) (string, error) {
	if m.Attr == AttrNormal {
		return normal, nil
	}
	return term.Sequence(m.Attr, m.Args, following)
}

// Text promotes the mark to a single-segment Text.
func (m Mark) Text() Text {
	return Text{segs: []segment{markSeg(m)}}
}

// Styled wraps s between the mark and a normal reset.
func (m Mark) Styled(s string) Text {
	var b Builder
	b.WriteMark(m)
	b.WriteString(s)
	b.WriteMark(Get(AttrNormal))
	return b.Text()
}
