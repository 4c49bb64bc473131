// Package mctext parses the legacy "&"-prefixed Minecraft formatting codes
// used in the spreadsheet columns (names, lore) into styled text segments,
// and serializes those segments as rich-text components for generated files.
package mctext

import (
	"encoding/json"
	"strings"
)

// Segment is one contiguous run of text sharing a single style.
// The JSON shape matches a Minecraft rich-text component; italic is always
// serialized because item names default to italic in-game and must be able
// to carry an explicit false.
type Segment struct {
	Text          string `json:"text"`
	Color         string `json:"color,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic"`
	Underlined    bool   `json:"underlined,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Obfuscated    bool   `json:"obfuscated,omitempty"`
}

// colorNames maps the 16 legacy color codes to their component color names.
var colorNames = map[rune]string{
	'0': "black",
	'1': "dark_blue",
	'2': "dark_green",
	'3': "dark_aqua",
	'4': "dark_red",
	'5': "dark_purple",
	'6': "gold",
	'7': "gray",
	'8': "dark_gray",
	'9': "blue",
	'a': "green",
	'b': "aqua",
	'c': "red",
	'd': "light_purple",
	'e': "yellow",
	'f': "white",
}

// ComponentList renders segments as a JSON array of rich-text components,
// ready to splice into an mcfunction or loot table.
func ComponentList(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		b, err := json.Marshal(s)
		if err != nil {
			continue // cannot happen for a plain struct, but keep the row going
		}
		parts = append(parts, string(b))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// LineComponent renders one line of text as a single rich-text component:
// a plain object when the line parses to one segment, a component array
// otherwise (Minecraft treats a nested array as one component).
func LineComponent(line, defaultColor string, defaultItalic bool) string {
	segs := Parse(line, defaultColor, defaultItalic)
	if len(segs) == 1 {
		b, err := json.Marshal(segs[0])
		if err == nil {
			return string(b)
		}
	}
	return ComponentList(segs)
}

// Strip removes all recognized escape codes and returns the plain text.
// Unrecognized sequences keep their literal "&", matching Parse.
func Strip(text string) string {
	var b strings.Builder
	for _, s := range Parse(text, "white", false) {
		b.WriteString(s.Text)
	}
	return b.String()
}
