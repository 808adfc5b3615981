// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// texeltext is a command-line formatter built on the richtext packages.
// It reads a file or stdin, optionally imports ANSI escapes or applies
// syntax highlighting, wraps to a column width, and renders through a
// terminal backend.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texeltext/ansi"
	"github.com/framegrace/texeltext/config"
	"github.com/framegrace/texeltext/highlight"
	"github.com/framegrace/texeltext/richtext"
	"github.com/framegrace/texeltext/termcap"
)

func main() {
	cfg := config.System()
	width := flag.Int("width", cfg.GetInt("render", "width", 0), "wrap to this many columns (0 = terminal width, no wrap when piped)")
	termName := flag.String("term", cfg.GetString("render", "backend", "auto"), "output backend: auto, sgr, terminfo, plain")
	plain := flag.Bool("plain", false, "strip all formatting (same as -term plain)")
	cells := flag.Bool("cells", cfg.GetBool("render", "cells", false), "count display cells instead of runes when wrapping")
	decode := flag.Bool("decode", false, "import ANSI escapes in the input as marks")
	doHighlight := flag.Bool("highlight", false, "syntax-highlight the input")
	lang := flag.String("lang", "", "language for -highlight (default: detect)")
	style := flag.String("style", cfg.GetString("highlight", "style", ""), "chroma style name for -highlight")
	flag.Parse()

	if *plain {
		*termName = "plain"
	}

	if err := run(flag.Arg(0), *width, *termName, *cells, *decode, *doHighlight, *lang, *style); err != nil {
		log.Fatalf("texeltext: %v", err)
	}
}

func run(filename string, width int, termName string, cells, decode, doHighlight bool, lang, style string) error {
	src, err := readInput(filename)
	if err != nil {
		return err
	}

	rt, err := buildText(src, filename, decode, doHighlight, lang, style)
	if err != nil {
		return err
	}

	backend, err := termcap.Open(termName)
	if err != nil {
		return err
	}

	wrapper, err := buildWrapper(width, cells)
	if err != nil {
		return err
	}

	if rt.IsEmpty() {
		return nil
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	lines := rt.Lines()
	if n := len(lines); n > 1 && lines[n-1].Len() == 0 {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		chunks := []richtext.Text{line}
		if wrapper != nil {
			chunks = wrapper.Wrap(line)
		}
		for _, chunk := range chunks {
			rendered, err := chunk.Render(backend.Normal(), backend)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, rendered)
		}
	}
	if len(rt.Marks()) > 0 {
		fmt.Fprint(out, backend.Normal())
	}
	return nil
}

func readInput(filename string) (string, error) {
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func buildText(src, filename string, decode, doHighlight bool, lang, style string) (richtext.Text, error) {
	switch {
	case decode:
		return ansi.Decode(src), nil
	case doHighlight:
		if lang == "" {
			lang = highlight.DetectLang(filename, src)
		}
		return highlight.Code(src, lang, style)
	default:
		return richtext.New(src), nil
	}
}

// buildWrapper resolves the effective wrap width. Zero means use the
// terminal width, or no wrapping at all when stdout is not a terminal.
func buildWrapper(width int, cells bool) (*richtext.Wrapper, error) {
	if width == 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	if width <= 0 {
		return nil, nil
	}
	if cells {
		return richtext.NewCellWrapper(width)
	}
	return richtext.NewWrapper(width)
}
