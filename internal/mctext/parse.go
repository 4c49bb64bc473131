package mctext

import (
	"strings"
	"unicode"
)

// style is the scanner state. It is a local value threaded through the scan
// loop, never shared between calls.
type style struct {
	color         string
	bold          bool
	italic        bool
	underlined    bool
	strikethrough bool
	obfuscated    bool
}

func (st style) segment(text string) Segment {
	return Segment{
		Text:          text,
		Color:         st.color,
		Bold:          st.bold,
		Italic:        st.italic,
		Underlined:    st.underlined,
		Strikethrough: st.strikethrough,
		Obfuscated:    st.obfuscated,
	}
}

// Parse scans text for two-character "&x" escape codes and returns the
// ordered styled segments they encode.
//
// Color codes (0-9, a-f, case-insensitive) flush the pending run and start a
// fresh style carrying only the new color; format codes (k/l/m/n/o) flush and
// set a single flag; "r" flushes and restores the caller defaults. An "&"
// followed by anything else is literal text. The function never fails: every
// input, including one ending in a lone "&", produces segments.
//
// Empty input (or input reduced to nothing by consumed codes) yields exactly
// one empty segment carrying the defaults.
func Parse(text, defaultColor string, defaultItalic bool) []Segment {
	cur := style{color: defaultColor, italic: defaultItalic}
	var buf strings.Builder
	var segs []Segment

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		segs = append(segs, cur.segment(buf.String()))
		buf.Reset()
	}

	rs := []rune(text)
	for i := 0; i < len(rs); {
		if rs[i] == '&' && i+1 < len(rs) {
			code := unicode.ToLower(rs[i+1])
			if color, ok := colorNames[code]; ok {
				flush()
				cur = style{color: color}
				i += 2
				continue
			}
			switch code {
			case 'k':
				flush()
				cur.obfuscated = true
			case 'l':
				flush()
				cur.bold = true
			case 'm':
				flush()
				cur.strikethrough = true
			case 'n':
				flush()
				cur.underlined = true
			case 'o':
				flush()
				cur.italic = true
			case 'r':
				flush()
				cur = style{color: defaultColor, italic: defaultItalic}
			default:
				// Not a recognized code: the "&" is literal.
				buf.WriteRune(rs[i])
				i++
				continue
			}
			i += 2
			continue
		}
		buf.WriteRune(rs[i])
		i++
	}
	flush()

	if len(segs) == 0 {
		return []Segment{{Text: "", Color: defaultColor, Italic: defaultItalic}}
	}
	return segs
}
