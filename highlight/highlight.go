// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package highlight renders source code as rich text using Chroma
// lexers. Token colors arrive as truecolor marks, so each backend
// decides for itself how to degrade them.
package highlight

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texeltext/richtext"
)

const defaultStyleName = "catppuccin-mocha"

// Code tokenizes src and returns it as rich text with color and
// attribute marks around each styled token. An empty lang auto-detects
// from content; an empty styleName uses the package default. Tokens
// whose color matches the style's base text color get no color mark,
// so the terminal default shows through.
func Code(src, lang, styleName string) (richtext.Text, error) {
	lexer := lexerFor(lang, src)
	lexer = chroma.Coalesce(lexer)

	tokens, err := chroma.Tokenise(lexer, nil, src)
	if err != nil {
		return richtext.Text{}, fmt.Errorf("highlight: tokenize: %w", err)
	}

	style := styleFor(styleName)
	base := style.Get(chroma.Text).Colour

	var b richtext.Builder
	var open bool
	var prev []richtext.Mark
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		marks := tokenMarks(style.Get(tok.Type), base)
		if !sameMarks(marks, prev) {
			if open {
				b.WriteMark(richtext.Get(richtext.AttrNormal))
			}
			for _, m := range marks {
				b.WriteMark(m)
			}
			open = len(marks) > 0
			prev = marks
		}
		b.WriteString(tok.Value)
	}
	if open {
		b.WriteMark(richtext.Get(richtext.AttrNormal))
	}
	return b.Text(), nil
}

// classifierLangs are the candidates handed to enry's Bayesian
// classifier, by canonical enry name. The classifier scores candidates
// only, so this set bounds what content-only detection can return.
var classifierLangs = []string{
	"C", "C++", "C#", "CSS", "Go", "HTML", "Java", "JavaScript",
	"Kotlin", "Lua", "PHP", "Perl", "Python", "R", "Ruby", "Rust",
	"Scala", "Shell", "SQL", "Swift", "TypeScript",
}

// DetectLang guesses a language name for src. A non-empty filename
// gives enry its full strategy chain; with content alone it tries the
// shebang and then the Bayesian classifier, which catches scripting
// languages that Chroma's own Analyse misses.
func DetectLang(filename, src string) string {
	if filename == "" && src == "" {
		return ""
	}
	content := []byte(src)
	if filename != "" {
		if lang := enry.GetLanguage(filepath.Base(filename), content); lang != "" {
			return lang
		}
	}
	if lang, ok := enry.GetLanguageByShebang(content); ok {
		return lang
	}
	if len(content) == 0 {
		return ""
	}
	// The classifier returns every candidate ranked by probability, so
	// take the head rather than relying on its single-match flag.
	if langs := enry.GetLanguagesByClassifier("", content, classifierLangs); len(langs) > 0 {
		return langs[0]
	}
	return ""
}

// tokenMarks extracts the marks for a style entry. The base text color
// is skipped so unstyled tokens stay on the terminal default.
func tokenMarks(entry chroma.StyleEntry, base chroma.Colour) []richtext.Mark {
	var marks []richtext.Mark
	if entry.Colour.IsSet() && entry.Colour != base {
		c := entry.Colour
		marks = append(marks, richtext.Get(richtext.AttrColor).With(int(c.Red()), int(c.Green()), int(c.Blue())))
	}
	if entry.Bold == chroma.Yes {
		marks = append(marks, richtext.Get(richtext.AttrBold))
	}
	if entry.Italic == chroma.Yes {
		marks = append(marks, richtext.Get(richtext.AttrItalic))
	}
	if entry.Underline == chroma.Yes {
		marks = append(marks, richtext.Get(richtext.AttrUnderline))
	}
	return marks
}

func sameMarks(a, b []richtext.Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// lexerFor returns a Chroma lexer by name, or auto-detects from content.
func lexerFor(name, src string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(src); l != nil {
		return l
	}
	return lexers.Fallback
}

// styleFor resolves a style name, falling back to the default.
func styleFor(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}
