package carousel

import (
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// unrenderable covers the code-point ranges the brand fonts cannot draw:
// miscellaneous symbols and dingbats, variation selectors, and everything
// outside the Basic Multilingual Plane (emoji live at U+1F000 and above).
var unrenderable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x10FFFF, Stride: 1},
	},
}

var sanitizer = runes.Remove(runes.In(unrenderable))

// Sanitize strips code points the resolved fonts cannot render. All text
// passes through here before measurement, so callers must not assume the
// rendered text equals the input text.
func Sanitize(s string) string {
	out, _, err := transform.String(sanitizer, s)
	if err != nil {
		return s
	}
	return out
}

// Wrap greedily word-wraps text so that each returned line measures at
// most maxWidth pixels under face. Words are whitespace-delimited and
// never split: a single word wider than maxWidth occupies its own line
// unmodified. Empty input yields exactly one empty line.
func Wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// capLines truncates lines to at most n entries. The truncation caps on
// titles and bullets are what keep the vertical flow from overflowing the
// footer on long content.
func capLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
