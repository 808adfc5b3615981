// Package ansi imports SGR-styled strings into richtext values, so output
// captured from other programs can be re-wrapped and re-rendered without
// corrupting its styling.
package ansi

import (
	"unicode/utf8"

	"github.com/framegrace/texeltext/richtext"
)

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEsc
	stateCharset
)

// Decode parses s, turning SGR sequences into marks and keeping all other
// visible text. Non-SGR escape sequences are dropped. Reset and the
// per-attribute off codes all map onto the normal mark; the mark
// vocabulary has no partial off.
func Decode(s string) richtext.Text {
	var b richtext.Builder
	data := []byte(s)
	st := stateGround
	var params []int
	current := 0
	private := false

	for i := 0; i < len(data); {
		c := data[i]
		size := 1

		switch st {
		case stateGround:
			if c == 0x1b {
				st = stateEscape
			} else {
				r, sz := utf8.DecodeRune(data[i:])
				size = sz
				b.WriteRune(r)
			}
		case stateEscape:
			switch c {
			case '[':
				st = stateCSI
				params = params[:0]
				current = 0
				private = false
			case ']':
				st = stateOSC
			case '(':
				st = stateCharset
			default:
				st = stateGround
			}
		case stateCSI:
			switch {
			case c >= '0' && c <= '9':
				current = current*10 + int(c-'0')
			case c == ';' || c == ':':
				params = append(params, current)
				current = 0
			case c == '?':
				private = true
			case c >= '@' && c <= '~':
				params = append(params, current)
				if c == 'm' && !private {
					sgrMarks(&b, params)
				}
				st = stateGround
			}
		case stateOSC:
			// Terminated by BEL or ST.
			if c == 0x07 {
				st = stateGround
			} else if c == 0x1b {
				st = stateOSCEsc
			}
		case stateOSCEsc:
			if c == '\\' {
				st = stateGround
			} else {
				st = stateOSC
			}
		case stateCharset:
			st = stateGround
		}
		i += size
	}
	return b.Text()
}

// Strip returns only the visible text of an SGR-styled string.
func Strip(s string) string {
	return Decode(s).String()
}

// sgrMarks translates one SGR parameter list into marks.
func sgrMarks(b *richtext.Builder, params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			b.WriteMark(richtext.Get(richtext.AttrNormal))
		case p == 1:
			b.WriteMark(richtext.Get(richtext.AttrBold))
		case p == 2:
			b.WriteMark(richtext.Get(richtext.AttrDim))
		case p == 3:
			b.WriteMark(richtext.Get(richtext.AttrItalic))
		case p == 4:
			b.WriteMark(richtext.Get(richtext.AttrUnderline))
		case p == 5:
			b.WriteMark(richtext.Get(richtext.AttrBlink))
		case p == 7:
			b.WriteMark(richtext.Get(richtext.AttrReverse))
		case p == 9:
			b.WriteMark(richtext.Get(richtext.AttrStrikethrough))
		case p >= 21 && p <= 29, p == 39, p == 49:
			b.WriteMark(richtext.Get(richtext.AttrNormal))
		case p >= 30 && p <= 37:
			b.WriteMark(richtext.Get(richtext.AttrColor).With(p - 30))
		case p >= 90 && p <= 97:
			b.WriteMark(richtext.Get(richtext.AttrColor).With(p - 90 + 8))
		case p >= 40 && p <= 47:
			b.WriteMark(richtext.Get(richtext.AttrOnColor).With(p - 40))
		case p >= 100 && p <= 107:
			b.WriteMark(richtext.Get(richtext.AttrOnColor).With(p - 100 + 8))
		case p == 38 || p == 48:
			attr := richtext.AttrColor
			if p == 48 {
				attr = richtext.AttrOnColor
			}
			if i+2 < len(params) && params[i+1] == 5 {
				b.WriteMark(richtext.Get(attr).With(params[i+2]))
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 {
				b.WriteMark(richtext.Get(attr).With(params[i+2], params[i+3], params[i+4]))
				i += 4
			}
		}
	}
}
