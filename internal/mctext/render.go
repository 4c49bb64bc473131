package mctext

import (
	"strings"

	"github.com/muesli/termenv"
)

// ansiColors maps component color names onto the 16 ANSI palette entries,
// the closest terminal equivalents of the in-game colors.
var ansiColors = map[string]string{
	"black":        "0",
	"dark_blue":    "4",
	"dark_green":   "2",
	"dark_aqua":    "6",
	"dark_red":     "1",
	"dark_purple":  "5",
	"gold":         "3",
	"gray":         "7",
	"dark_gray":    "8",
	"blue":         "12",
	"green":        "10",
	"aqua":         "14",
	"red":          "9",
	"light_purple": "13",
	"yellow":       "11",
	"white":        "15",
}

// Render draws segments to a terminal string using the given termenv profile.
// Obfuscated runs have no terminal equivalent and render as plain text.
func Render(segs []Segment, profile termenv.Profile) string {
	var b strings.Builder
	for _, seg := range segs {
		s := termenv.String(seg.Text)
		if ansi, ok := ansiColors[seg.Color]; ok {
			s = s.Foreground(profile.Color(ansi))
		}
		if seg.Bold {
			s = s.Bold()
		}
		if seg.Italic {
			s = s.Italic()
		}
		if seg.Underlined {
			s = s.Underline()
		}
		if seg.Strikethrough {
			s = s.CrossOut()
		}
		b.WriteString(s.String())
	}
	return b.String()
}
