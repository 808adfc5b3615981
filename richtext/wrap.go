// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: richtext/wrap.go
// Summary: Greedy word wrapper over rich text, marks treated as zero-width.
// Usage: Wrap/WrapString for one-shot calls, Wrapper for a fixed width.
// Notes: Interior whitespace runs survive; only line-boundary whitespace is stripped.

package richtext

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// chunk is the wrapping token: a single zero-width mark, a whitespace run,
// or a word run. Marks cut runs, so a word with a mark inside arrives as
// two word chunks around it and may break between them.
type chunk struct {
	mark *Mark
	text string
}

// chunkText tokenizes t. A transition between mark, whitespace and word
// characters starts a new chunk.
func chunkText(t Text) []chunk {
	var out []chunk
	for _, seg := range t.segs {
		if seg.isMark() {
			out = append(out, chunk{mark: seg.mark})
			continue
		}
		start := 0
		inSpace := false
		for i, r := range seg.run {
			sp := unicode.IsSpace(r)
			if i > 0 && sp != inSpace {
				out = append(out, chunk{text: seg.run[start:i]})
				start = i
			}
			inSpace = sp
		}
		out = append(out, chunk{text: seg.run[start:]})
	}
	return out
}

// Wrapper breaks rich text into lines no longer than a fixed width. Width
// counts visible runes; NewCellWrapper counts terminal columns instead, so
// wide East Asian runes take two.
type Wrapper struct {
	width int
	cells bool
}

// NewWrapper returns a rune-counting wrapper, or ErrInvalidWidth when
// width is below one.
func NewWrapper(width int) (*Wrapper, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, width)
	}
	return &Wrapper{width: width}, nil
}

// NewCellWrapper returns a wrapper measuring display columns instead of
// runes.
func NewCellWrapper(width int) (*Wrapper, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, width)
	}
	return &Wrapper{width: width, cells: true}, nil
}

func (w *Wrapper) size(c chunk) int {
	if c.mark != nil {
		return 0
	}
	if w.cells {
		return runewidth.StringWidth(c.text)
	}
	return utf8.RuneCountInString(c.text)
}

// cut splits s so the prefix fits budget. In cell mode a wide rune that
// straddles the budget stays in the suffix; mustTake forces the first rune
// through anyway so an empty line always makes progress.
func (w *Wrapper) cut(s string, budget int, mustTake bool) (string, string) {
	used := 0
	for i, r := range s {
		rw := 1
		if w.cells {
			rw = runewidth.RuneWidth(r)
		}
		if used+rw > budget {
			if i == 0 && mustTake {
				_, sz := utf8.DecodeRuneInString(s)
				return s[:sz], s[sz:]
			}
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

// Wrap breaks t into lines of at most the configured width. Whitespace
// chunks at line boundaries are dropped; marks are never stripped and never
// count toward width. A word chunk wider than a whole line is hard-split at
// the remaining space. Empty input yields a single empty line.
func (w *Wrapper) Wrap(t Text) []Text {
	remaining := chunkText(t)
	var lines []Text
	for len(remaining) > 0 {
		remaining = stripLead(remaining)
		var line []chunk
		lineLen := 0
		chunkLen := 0
		for len(remaining) > 0 {
			chunkLen = w.size(remaining[0])
			if lineLen+chunkLen > w.width {
				break
			}
			line = append(line, remaining[0])
			remaining = remaining[1:]
			lineLen += chunkLen
		}
		if chunkLen > w.width {
			prefix, rest := w.cut(remaining[0].text, w.width-lineLen, len(line) == 0)
			line = append(line, chunk{text: prefix})
			if rest == "" {
				remaining = remaining[1:]
			} else {
				remaining[0].text = rest
			}
		}
		line = stripTail(line)
		lines = append(lines, joinChunks(line))
	}
	if lines == nil {
		lines = []Text{{}}
	}
	return lines
}

// stripLead deletes blank runs before the first word, skipping marks.
func stripLead(cs []chunk) []chunk {
	for i := 0; i < len(cs); {
		c := cs[i]
		if c.mark != nil {
			i++
			continue
		}
		if strings.TrimSpace(c.text) != "" {
			break
		}
		cs = append(cs[:i], cs[i+1:]...)
	}
	return cs
}

// stripTail deletes blank runs after the last word, skipping marks.
func stripTail(cs []chunk) []chunk {
	for i := len(cs) - 1; i >= 0; i-- {
		c := cs[i]
		if c.mark != nil {
			continue
		}
		if strings.TrimSpace(c.text) != "" {
			break
		}
		cs = append(cs[:i], cs[i+1:]...)
	}
	return cs
}

func joinChunks(line []chunk) Text {
	var b Builder
	for _, c := range line {
		if c.mark != nil {
			b.WriteMark(*c.mark)
		} else {
			b.WriteString(c.text)
		}
	}
	return b.Text()
}

// Wrap breaks t into lines of at most width visible runes.
func Wrap(t Text, width int) ([]Text, error) {
	w, err := NewWrapper(width)
	if err != nil {
		return nil, err
	}
	return w.Wrap(t), nil
}

// WrapString wraps plain text, returning plain lines.
func WrapString(s string, width int) ([]string, error) {
	lines, err := Wrap(New(s), width)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out, nil
}
