package richtext

import (
	"errors"
	"testing"
)

func TestText_LenIgnoresMarks(t *testing.T) {
	txt := Concat(Get(AttrBold).Text(), New("hello"), Get(AttrNormal).Text())
	if got := txt.Len(); got != 5 {
		t.Errorf("expected length 5, got %d", got)
	}
	if got := txt.String(); got != "hello" {
		t.Errorf("expected visible %q, got %q", "hello", got)
	}
}

func TestText_LenAdditiveUnderConcat(t *testing.T) {
	parts := []Text{
		New("hello"),
		Get(AttrBold).Styled("big"),
		New(""),
		Get(AttrColor).With(3).Text(),
		New("日本語"),
	}
	for _, a := range parts {
		for _, b := range parts {
			sum := Concat(a, b)
			if sum.Len() != a.Len()+b.Len() {
				t.Errorf("len(%q+%q) = %d, want %d",
					a.String(), b.String(), sum.Len(), a.Len()+b.Len())
			}
		}
	}
}

func TestText_ConcatFusesRuns(t *testing.T) {
	got := Concat(New("foo"), New("bar"))
	if !got.Equal(New("foobar")) {
		t.Errorf("piecewise build is not canonical: %#v", got)
	}
}

func TestText_RuneAtATimeIsCanonical(t *testing.T) {
	const s = "the quick brown fox"
	var b Builder
	for _, r := range s {
		b.WriteRune(r)
	}
	got := b.Text()
	if !got.Equal(New(s)) {
		t.Error("rune-at-a-time build differs from whole-string build")
	}
	if got.String() != s {
		t.Errorf("expected %q, got %q", s, got.String())
	}
}

func TestText_WidthCountsColumns(t *testing.T) {
	txt := Concat(Get(AttrBold).Text(), New("日本"), New("ab"))
	if got := txt.Len(); got != 4 {
		t.Errorf("expected 4 runes, got %d", got)
	}
	if got := txt.Width(); got != 6 {
		t.Errorf("expected 6 columns, got %d", got)
	}
}

func TestText_Equal(t *testing.T) {
	bold := Get(AttrBold)
	tests := []struct {
		name string
		a, b Text
		want bool
	}{
		{"empty", Text{}, New(""), true},
		{"same runs", New("ab"), Concat(New("a"), New("b")), true},
		{"different text", New("ab"), New("ba"), false},
		{"mark position matters", Concat(New("a"), bold.Text(), New("b")),
			Concat(bold.Text(), New("ab")), false},
		{"same marked", Concat(bold.Text(), New("ab")),
			Concat(bold.Text(), New("a"), New("b")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestText_SliceVisibleRange(t *testing.T) {
	txt := New("hello world")
	tests := []struct {
		name        string
		start, stop int
		want        string
	}{
		{"prefix", 0, 5, "hello"},
		{"suffix", 6, 11, "world"},
		{"interior", 3, 8, "lo wo"},
		{"whole", 0, 11, "hello world"},
		{"empty", 4, 4, ""},
		{"clamped stop", 6, 99, "world"},
		{"clamped start", -3, 5, "hello"},
		{"inverted", 8, 2, ""},
		{"past end", 40, 50, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := txt.Slice(tt.start, tt.stop)
			if got.String() != tt.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.stop, got.String(), tt.want)
			}
		})
	}
}

func TestText_SliceLengthLaw(t *testing.T) {
	txt := Concat(Get(AttrBold).Text(), New("abc"), Get(AttrDim).Text(), New("defg"))
	n := txt.Len()
	for i := 0; i <= n; i++ {
		for j := i; j <= n; j++ {
			if got := txt.Slice(i, j).Len(); got != j-i {
				t.Errorf("Slice(%d, %d).Len() = %d, want %d", i, j, got, j-i)
			}
		}
	}
}

func TestText_SliceCarriesOpenMarks(t *testing.T) {
	bold := Get(AttrBold)
	dim := Get(AttrDim)
	txt := Concat(bold.Text(), New("hello "), dim.Text(), New("world"))

	got := txt.Slice(6, 11)
	want := Concat(bold.Text(), dim.Text(), New("world"))
	if !got.Equal(want) {
		t.Errorf("expected still-open marks re-asserted, got %v render-segments", got.Marks())
	}
}

func TestText_SliceKeepsInteriorMarks(t *testing.T) {
	bold := Get(AttrBold)
	txt := Concat(New("a"), bold.Text(), New("b"))
	got := txt.Slice(0, 2)
	if !got.Equal(txt) {
		t.Error("interior mark did not keep its position")
	}
}

func TestText_SliceDropsTrailingMarks(t *testing.T) {
	bold := Get(AttrBold)
	txt := New("ab").AppendMark(bold)
	got := txt.Slice(0, 2)
	if got.ContainsMark(bold) {
		t.Error("mark at the stop boundary should be dropped")
	}
	if got.String() != "ab" {
		t.Errorf("expected %q, got %q", "ab", got.String())
	}
}

func TestText_SlicePastEndIsMarkless(t *testing.T) {
	// Out-of-range bounds clamp to the end, so a past-end slice behaves
	// exactly like the empty slice there and keeps no trailing marks.
	bold := Get(AttrBold)
	txt := New("ab").AppendMark(bold)
	for _, bounds := range [][2]int{{2, 2}, {40, 50}, {3, 2}} {
		got := txt.Slice(bounds[0], bounds[1])
		if got.ContainsMark(bold) || !got.IsEmpty() {
			t.Errorf("Slice(%d, %d) should be empty and markless, got %q with %v",
				bounds[0], bounds[1], got.String(), got.Marks())
		}
	}
}

func TestText_SliceMultibyte(t *testing.T) {
	txt := New("héllo wörld")
	if got := txt.Slice(1, 5).String(); got != "éllo" {
		t.Errorf("expected %q, got %q", "éllo", got)
	}
	if got := txt.Slice(6, 11).String(); got != "wörld" {
		t.Errorf("expected %q, got %q", "wörld", got)
	}
}

func TestText_SplitKeepsMarksAsElements(t *testing.T) {
	bold := Get(AttrBold)
	txt := Concat(New("one two "), bold.Text(), New("three"))
	parts := txt.Split(" ")

	want := []string{"one", "two", "", "", "three"}
	if len(parts) != len(want) {
		t.Fatalf("expected %d parts, got %d", len(want), len(parts))
	}
	for i, w := range want {
		if parts[i].String() != w {
			t.Errorf("part %d = %q, want %q", i, parts[i].String(), w)
		}
	}
	if !parts[3].ContainsMark(bold) {
		t.Error("mark should survive as its own element")
	}
}

func TestText_Fields(t *testing.T) {
	bold := Get(AttrBold)
	txt := Concat(New("  one two "), bold.Text(), New(" three  "))
	parts := txt.Fields()
	if len(parts) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(parts))
	}
	if parts[0].String() != "one" || parts[1].String() != "two" || parts[3].String() != "three" {
		t.Errorf("unexpected fields: %v", parts)
	}
	if !parts[2].ContainsMark(bold) {
		t.Error("mark should appear between the fields")
	}
}

func TestText_Lines(t *testing.T) {
	bold := Get(AttrBold)
	txt := Concat(bold.Text(), New("one\ntwo\n"))
	lines := txt.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].String() != "one" || lines[1].String() != "two" || lines[2].String() != "" {
		t.Errorf("unexpected lines: %q %q %q", lines[0], lines[1], lines[2])
	}
	if !lines[0].ContainsMark(bold) {
		t.Error("first line lost its mark")
	}
	if !lines[1].ContainsMark(bold) {
		t.Error("open mark should re-assert on the next line")
	}
}

func TestText_Truncate(t *testing.T) {
	bold := Get(AttrBold)
	tests := []struct {
		name  string
		txt   Text
		width int
		tail  string
		want  string
	}{
		{"fits", New("abc"), 5, "…", "abc"},
		{"cut", New("abcdef"), 4, "…", "abc…"},
		{"cut no tail", New("abcdef"), 4, "", "abcd"},
		{"wide rune straddles", New("ab日本"), 5, "", "ab日"},
		{"marked", Concat(bold.Text(), New("abcdef")), 4, "…", "abc…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.txt.Truncate(tt.width, tt.tail)
			if got.String() != tt.want {
				t.Errorf("Truncate(%d, %q) = %q, want %q", tt.width, tt.tail, got.String(), tt.want)
			}
		})
	}
	marked := Concat(bold.Text(), New("abcdef")).Truncate(4, "…")
	if !marked.ContainsMark(bold) {
		t.Error("leading mark lost in truncation")
	}
}

func TestText_Render(t *testing.T) {
	txt := Concat(
		Get(AttrBold).Text(),
		New("hello "),
		Get(AttrColor).With(2).Text(),
		New("world"),
		Get(AttrNormal).Text(),
	)
	got, err := txt.Render("N", stubTerm{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<bold>hello <color:2>worldN"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_RenderUnknownAttribute(t *testing.T) {
	txt := Concat(New("a"), Get("sparkle").Text(), New("b"))
	_, err := txt.Render("N", stubTerm{})
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}
}

func TestText_ContainsMark(t *testing.T) {
	bold := Get(AttrBold)
	txt := Concat(New("hi "), bold.Text(), New("there"))
	if !txt.ContainsMark(Get(AttrBold)) {
		t.Error("structurally equal mark should be found")
	}
	if txt.ContainsMark(Get(AttrDim)) {
		t.Error("absent mark reported present")
	}
	if !txt.Contains("there") {
		t.Error("visible substring not found")
	}
}

func TestText_ItemsIterator(t *testing.T) {
	bold := Get(AttrBold)
	txt := Concat(New("ab"), bold.Text(), New("c"))

	var runes []rune
	marks := 0
	it := txt.Items()
	for it.Next() {
		if m, ok := it.Mark(); ok {
			marks++
			if !m.Equal(bold) {
				t.Errorf("unexpected mark %v", m)
			}
			continue
		}
		runes = append(runes, it.Rune())
	}
	if string(runes) != "abc" {
		t.Errorf("expected runes %q, got %q", "abc", string(runes))
	}
	if marks != 1 {
		t.Errorf("expected 1 mark, got %d", marks)
	}

	// A fresh iterator starts over.
	it2 := txt.Items()
	if !it2.Next() || it2.Rune() != 'a' {
		t.Error("fresh iterator should restart at the beginning")
	}
}

func TestBuilder_Reuse(t *testing.T) {
	var b Builder
	b.WriteString("one")
	first := b.Text()
	b.WriteString(" more")
	if first.String() != "one" {
		t.Errorf("earlier snapshot mutated to %q", first.String())
	}
	b.Reset()
	b.WriteString("two")
	if got := b.Text().String(); got != "two" {
		t.Errorf("expected %q after reset, got %q", "two", got)
	}
}
