package mctext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avuorina/MOBgenerator/internal/mctext"
)

func TestParse_PlainText(t *testing.T) {
	segs := mctext.Parse("ただのテキスト", "gray", true)
	require.Len(t, segs, 1)
	assert.Equal(t, "ただのテキスト", segs[0].Text)
	assert.Equal(t, "gray", segs[0].Color)
	assert.True(t, segs[0].Italic)
	assert.False(t, segs[0].Bold)
}

func TestParse_ColorAndFormat(t *testing.T) {
	segs := mctext.Parse("&cRed &lBold&r End", "white", false)
	require.Len(t, segs, 3)

	assert.Equal(t, mctext.Segment{Text: "Red ", Color: "red"}, segs[0])
	assert.Equal(t, mctext.Segment{Text: "Bold", Color: "red", Bold: true}, segs[1])
	assert.Equal(t, mctext.Segment{Text: " End", Color: "white"}, segs[2])
}

func TestParse_EmptyInput(t *testing.T) {
	segs := mctext.Parse("", "gold", true)
	require.Len(t, segs, 1)
	assert.Equal(t, mctext.Segment{Text: "", Color: "gold", Italic: true}, segs[0])
}

func TestParse_OnlyCodes(t *testing.T) {
	// Codes with no text in between collapse to the single default segment.
	segs := mctext.Parse("&c&l&r", "white", false)
	require.Len(t, segs, 1)
	assert.Equal(t, mctext.Segment{Text: "", Color: "white"}, segs[0])
}

func TestParse_ColorResetsFormat(t *testing.T) {
	// A color code clears every flag, including a default italic.
	segs := mctext.Parse("&lbold&athen green", "white", true)
	require.Len(t, segs, 2)
	assert.True(t, segs[0].Bold)
	assert.True(t, segs[0].Italic, "flags set before the color keep the inherited italic")
	assert.Equal(t, mctext.Segment{Text: "then green", Color: "green"}, segs[1])
}

func TestParse_FormatFlagsAccumulate(t *testing.T) {
	segs := mctext.Parse("&l&n&mall three", "white", false)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].Bold)
	assert.True(t, segs[0].Underlined)
	assert.True(t, segs[0].Strikethrough)
	assert.Equal(t, "white", segs[0].Color)
}

func TestParse_UppercaseCodes(t *testing.T) {
	segs := mctext.Parse("&CRed&Lbold", "white", false)
	require.Len(t, segs, 2)
	assert.Equal(t, "red", segs[0].Color)
	assert.True(t, segs[1].Bold)
}

func TestParse_LiteralAmpersand(t *testing.T) {
	t.Run("unknown code", func(t *testing.T) {
		segs := mctext.Parse("salt & pepper", "white", false)
		require.Len(t, segs, 1)
		assert.Equal(t, "salt & pepper", segs[0].Text)
	})

	t.Run("trailing ampersand", func(t *testing.T) {
		segs := mctext.Parse("abc&", "white", false)
		require.Len(t, segs, 1)
		assert.Equal(t, "abc&", segs[0].Text)
	})

	t.Run("doubled ampersand before code", func(t *testing.T) {
		// "&&c": the first "&" is literal ("&" is not a code), then "&c" recolors.
		segs := mctext.Parse("&&cx", "white", false)
		require.Len(t, segs, 2)
		assert.Equal(t, "&", segs[0].Text)
		assert.Equal(t, mctext.Segment{Text: "x", Color: "red"}, segs[1])
	})
}

func TestParse_ReconstructedTextIsStable(t *testing.T) {
	// Once codes are consumed, reparsing the joined plain text is a no-op.
	segs := mctext.Parse("&6Gold&o item &rname", "white", false)
	var plain strings.Builder
	for _, s := range segs {
		plain.WriteString(s.Text)
	}
	again := mctext.Parse(plain.String(), "white", false)
	require.Len(t, again, 1)
	assert.Equal(t, plain.String(), again[0].Text)
}

func TestParse_ResetRestoresDefaults(t *testing.T) {
	segs := mctext.Parse("&c&lX&rY", "gray", true)
	require.Len(t, segs, 2)
	assert.Equal(t, mctext.Segment{Text: "X", Color: "red", Bold: true}, segs[0])
	assert.Equal(t, mctext.Segment{Text: "Y", Color: "gray", Italic: true}, segs[1])
}

func TestComponentList(t *testing.T) {
	segs := mctext.Parse("&7Lv5", "white", false)
	got := mctext.ComponentList(segs)
	assert.Equal(t, `[{"text":"Lv5","color":"gray","italic":false}]`, got)
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "Red Bold End", mctext.Strip("&cRed &lBold&r End"))
	assert.Equal(t, "a&zb", mctext.Strip("a&zb"))
}
