// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: richtext/text.go
// Summary: Rich text value type: visible runs interleaved with zero-width marks.
// Usage: Built via Builder or Concat, consumed by the wrapper, backends and renderers.
// Notes: Adjacent runs are always fused, so equality and slicing work over a canonical form.

package richtext

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// segment is one element of a Text: a non-empty visible run, or a single
// zero-width mark when mark is non-nil.
type segment struct {
	run  string
	mark *Mark
}

func runSeg(s string) segment { return segment{run: s} }

func markSeg(m Mark) segment { return segment{mark: &m} }

func (s segment) isMark() bool { return s.mark != nil }

// Text is an immutable sequence of visible runs and zero-width marks.
// Every operation returns a new value; the zero value is the empty text.
// Visible positions are counted in runes, so length stays additive under
// concatenation. Display columns are a separate measure, see Width.
type Text struct {
	segs []segment
}

// New returns a Text holding s and no marks.
func New(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{segs: []segment{runSeg(s)}}
}

// Concat fuses parts into one Text, merging runs that meet at the seams.
func Concat(parts ...Text) Text {
	var b Builder
	for _, p := range parts {
		b.WriteText(p)
	}
	return b.Text()
}

// Builder assembles a Text incrementally, fusing adjacent runs as it goes.
// The zero value is ready to use.
type Builder struct {
	segs []segment
}

// WriteString appends a visible run. Empty strings are dropped.
func (b *Builder) WriteString(s string) {
	if s == "" {
		return
	}
	if n := len(b.segs); n > 0 && !b.segs[n-1].isMark() {
		b.segs[n-1].run += s
		return
	}
	b.segs = append(b.segs, runSeg(s))
}

// WriteRune appends a single visible rune.
func (b *Builder) WriteRune(r rune) {
	b.WriteString(string(r))
}

// WriteMark appends a zero-width mark.
func (b *Builder) WriteMark(m Mark) {
	b.segs = append(b.segs, markSeg(m))
}

// WriteText appends all segments of t.
func (b *Builder) WriteText(t Text) {
	for _, seg := range t.segs {
		if seg.isMark() {
			b.WriteMark(*seg.mark)
		} else {
			b.WriteString(seg.run)
		}
	}
}

// Text returns the assembled value. The builder stays usable; later writes
// do not alias the returned Text.
func (b *Builder) Text() Text {
	if len(b.segs) == 0 {
		return Text{}
	}
	segs := make([]segment, len(b.segs))
	copy(segs, b.segs)
	return Text{segs: segs}
}

// Reset empties the builder for reuse.
func (b *Builder) Reset() {
	b.segs = b.segs[:0]
}

// Len returns the number of visible runes. Marks contribute nothing.
func (t Text) Len() int {
	n := 0
	for _, seg := range t.segs {
		if !seg.isMark() {
			n += utf8.RuneCountInString(seg.run)
		}
	}
	return n
}

// Width returns the display width in terminal columns, counting wide East
// Asian runes as two.
func (t Text) Width() int {
	w := 0
	for _, seg := range t.segs {
		if !seg.isMark() {
			w += runewidth.StringWidth(seg.run)
		}
	}
	return w
}

// String returns the visible text with every mark elided.
func (t Text) String() string {
	var sb strings.Builder
	for _, seg := range t.segs {
		if !seg.isMark() {
			sb.WriteString(seg.run)
		}
	}
	return sb.String()
}

// IsEmpty reports whether the text holds neither runs nor marks.
func (t Text) IsEmpty() bool {
	return len(t.segs) == 0
}

// Marks returns every mark in order.
func (t Text) Marks() []Mark {
	var ms []Mark
	for _, seg := range t.segs {
		if seg.isMark() {
			ms = append(ms, *seg.mark)
		}
	}
	return ms
}

// ContainsMark reports whether a structurally equal mark is present.
func (t Text) ContainsMark(m Mark) bool {
	for _, seg := range t.segs {
		if seg.isMark() && seg.mark.Equal(m) {
			return true
		}
	}
	return false
}

// Contains reports whether the visible text contains substr.
func (t Text) Contains(substr string) bool {
	return strings.Contains(t.String(), substr)
}

// Equal reports structural equality segment by segment. Because every
// construction fuses adjacent runs, this amounts to comparing visible text
// plus mark placement.
func (t Text) Equal(o Text) bool {
	if len(t.segs) != len(o.segs) {
		return false
	}
	for i, seg := range t.segs {
		os := o.segs[i]
		if seg.isMark() != os.isMark() {
			return false
		}
		if seg.isMark() {
			if !seg.mark.Equal(*os.mark) {
				return false
			}
		} else if seg.run != os.run {
			return false
		}
	}
	return true
}

// Append returns t followed by o.
func (t Text) Append(o Text) Text {
	return Concat(t, o)
}

// AppendString returns t followed by a visible run.
func (t Text) AppendString(s string) Text {
	var b Builder
	b.WriteText(t)
	b.WriteString(s)
	return b.Text()
}

// AppendMark returns t followed by a mark.
func (t Text) AppendMark(m Mark) Text {
	var b Builder
	b.WriteText(t)
	b.WriteMark(m)
	return b.Text()
}

// Slice returns the visible range [start, stop) as a new Text. Bounds are
// clamped to [0, Len()], never an error. Marks at or before start are
// carried over and lead the slice in their original order, so styling that
// was open at the cut is asserted again; marks inside the range keep their
// place; marks at or past stop are dropped.
func (t Text) Slice(start, stop int) Text {
	n := t.Len()
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if stop > n {
		stop = n
	}
	if stop < start {
		stop = start
	}
	var b Builder
	pos := 0
	for _, seg := range t.segs {
		if seg.isMark() {
			if pos < stop {
				b.WriteMark(*seg.mark)
			}
			continue
		}
		cnt := utf8.RuneCountInString(seg.run)
		from := pos
		pos += cnt
		if from >= stop {
			break
		}
		if pos <= start {
			continue
		}
		lo, hi := start-from, stop-from
		if lo < 0 {
			lo = 0
		}
		if hi > cnt {
			hi = cnt
		}
		b.WriteString(runeRange(seg.run, lo, hi))
	}
	return b.Text()
}

// runeRange returns the substring of s spanning rune indexes [lo, hi).
func runeRange(s string, lo, hi int) string {
	if lo >= hi {
		return ""
	}
	start, end := len(s), len(s)
	i := 0
	for bi := range s {
		if i == lo {
			start = bi
		}
		if i == hi {
			end = bi
			break
		}
		i++
	}
	return s[start:end]
}

// Split splits every run on sep, keeping marks as singleton elements. The
// result alternates fragments and marks in segment order; fragments may be
// empty where a separator touches a run edge.
func (t Text) Split(sep string) []Text {
	var out []Text
	for _, seg := range t.segs {
		if seg.isMark() {
			out = append(out, seg.mark.Text())
			continue
		}
		for _, part := range strings.Split(seg.run, sep) {
			out = append(out, New(part))
		}
	}
	return out
}

// Fields splits every run around whitespace, dropping empty fragments and
// keeping marks as singleton elements.
func (t Text) Fields() []Text {
	var out []Text
	for _, seg := range t.segs {
		if seg.isMark() {
			out = append(out, seg.mark.Text())
			continue
		}
		for _, f := range strings.Fields(seg.run) {
			out = append(out, New(f))
		}
	}
	return out
}

// Lines splits on newline runes, dropping the newlines. Marks sitting at a
// break carry onto the following line through the slice rule, so each line
// renders standalone. A trailing newline yields a final empty line.
func (t Text) Lines() []Text {
	var cuts []int
	pos := 0
	for _, seg := range t.segs {
		if seg.isMark() {
			continue
		}
		for _, r := range seg.run {
			if r == '\n' {
				cuts = append(cuts, pos)
			}
			pos++
		}
	}
	lines := make([]Text, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		lines = append(lines, t.Slice(prev, c))
		prev = c + 1
	}
	return append(lines, t.Slice(prev, t.Len()))
}

// Truncate bounds the text to width display columns, appending tail when
// anything was cut. Marks before the cut survive; a wide rune that would
// straddle the boundary is cut entirely.
func (t Text) Truncate(width int, tail string) Text {
	if t.Width() <= width {
		return t
	}
	budget := width - runewidth.StringWidth(tail)
	cut, used := 0, 0
scan:
	for _, seg := range t.segs {
		if seg.isMark() {
			continue
		}
		for _, r := range seg.run {
			rw := runewidth.RuneWidth(r)
			if used+rw > budget {
				break scan
			}
			used += rw
			cut++
		}
	}
	return t.Slice(0, cut).AppendString(tail)
}

// Render flattens the text into a terminal string: runs pass through
// verbatim, marks resolve against term, and normal marks become the
// supplied normal string. Each mark is handed the visible run that follows
// it. The first backend failure aborts the render.
func (t Text) Render(normal string, term Terminal) (string, error) {
	var sb strings.Builder
	for i, seg := range t.segs {
		if !seg.isMark() {
			sb.WriteString(seg.run)
			continue
		}
		following := ""
		if i+1 < len(t.segs) && !t.segs[i+1].isMark() {
			following = t.segs[i+1].run
		}
		s, err := seg.mark.Render(normal, following, term)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// ItemIter walks a Text item by item: visible runes and the marks between
// them, in segment order. Obtain one with Items; it is independent of the
// text and restartable by taking a new one.
type ItemIter struct {
	segs []segment
	si   int
	rest string
	r    rune
	m    *Mark
}

// Items returns an iterator positioned before the first item.
func (t Text) Items() *ItemIter {
	return &ItemIter{segs: t.segs}
}

// Next advances to the next item, reporting false past the end.
func (it *ItemIter) Next() bool {
	it.m = nil
	for it.rest == "" {
		if it.si >= len(it.segs) {
			return false
		}
		seg := it.segs[it.si]
		it.si++
		if seg.isMark() {
			it.m = seg.mark
			return true
		}
		it.rest = seg.run
	}
	r, sz := utf8.DecodeRuneInString(it.rest)
	it.r = r
	it.rest = it.rest[sz:]
	return true
}

// Mark returns the current item as a mark, if it is one.
func (it *ItemIter) Mark() (Mark, bool) {
	if it.m == nil {
		return Mark{}, false
	}
	return *it.m, true
}

// Rune returns the current visible rune, or zero when the item is a mark.
func (it *ItemIter) Rune() rune {
	if it.m != nil {
		return 0
	}
	return it.r
}
