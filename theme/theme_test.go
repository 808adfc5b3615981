package theme

import (
	"testing"

	"github.com/framegrace/texeltext/richtext"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
		ok   bool
	}{
		{"black", 0, true},
		{"red", 1, true},
		{"bright_white", 15, true},
		{"RED", 1, true},
		{"gray", 8, true},
		{"grey", 8, true},
		{"mauve", 0, false},
	}
	for _, tt := range tests {
		n, ok := Index(tt.name)
		if ok != tt.ok || (ok && n != tt.want) {
			t.Errorf("Index(%q) = %d, %v; want %d, %v", tt.name, n, ok, tt.want, tt.ok)
		}
	}
}

func TestColorMarks(t *testing.T) {
	m, err := Color("green")
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	if !m.Equal(richtext.Get(richtext.AttrColor).With(2)) {
		t.Errorf("expected color(2), got %v", m)
	}

	bg, err := OnColor("blue")
	if err != nil {
		t.Fatalf("OnColor: %v", err)
	}
	if !bg.Equal(richtext.Get(richtext.AttrOnColor).With(4)) {
		t.Errorf("expected on_color(4), got %v", bg)
	}

	if _, err := Color("nope"); err == nil {
		t.Error("expected an error for an unknown name")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 16 {
		t.Fatalf("expected 16 canonical names, got %d", len(names))
	}
	if names[0] != "black" || names[15] != "bright_white" {
		t.Errorf("unexpected ordering: first %q last %q", names[0], names[15])
	}
}

func TestIndex256(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    int
	}{
		{0, 0, 0, 16},
		{255, 255, 255, 231},
		{255, 0, 0, 196},
		{0, 0, 255, 21},
		{95, 95, 95, 59},
		{128, 128, 128, 244},
	}
	for _, tt := range tests {
		if got := Index256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Index256(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
