package carousel

import (
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 advances 7 px per glyph, which makes wrap widths
// easy to reason about in tests.
var testFace = basicfont.Face7x13

func TestWrap_NeverExceedsWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	maxWidth := 80 // 11 glyphs

	lines := Wrap(testFace, text, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		w := font.MeasureString(testFace, line).Ceil()
		if w > maxWidth {
			t.Errorf("line %d %q measures %d px, exceeds %d", i, line, w, maxWidth)
		}
	}
}

func TestWrap_RejoinPreservesWords(t *testing.T) {
	text := "una frase con varias palabras que debe envolverse"
	lines := Wrap(testFace, text, 70)

	rejoined := strings.Join(lines, " ")
	if rejoined != text {
		t.Errorf("rejoined lines = %q, want %q", rejoined, text)
	}
}

func TestWrap_OverwideWordOwnLine(t *testing.T) {
	// 20 glyphs = 140 px, wider than the 70 px limit.
	wide := "supercalifragilistic"
	lines := Wrap(testFace, "a "+wide+" b", 70)

	found := false
	for _, line := range lines {
		if line == wide {
			found = true
		}
	}
	if !found {
		t.Errorf("over-wide word should occupy its own line unmodified, got %q", lines)
	}
}

func TestWrap_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		lines := Wrap(testFace, input, 100)
		if len(lines) != 1 || lines[0] != "" {
			t.Errorf("Wrap(%q) = %q, want exactly one empty line", input, lines)
		}
	}
}

func TestWrap_SingleShortWord(t *testing.T) {
	lines := Wrap(testFace, "hola", 100)
	if len(lines) != 1 || lines[0] != "hola" {
		t.Errorf("Wrap = %q, want [hola]", lines)
	}
}

func TestSanitize_StripsEmoji(t *testing.T) {
	in := "Plazo final \U0001F680 confirmado ✅"
	got := Sanitize(in)
	want := "Plazo final  confirmado "
	if got != want {
		t.Errorf("Sanitize = %q, want %q", got, want)
	}
}

func TestSanitize_StripsVariationSelectors(t *testing.T) {
	in := "ok\uFE0Fok"
	if got := Sanitize(in); got != "okok" {
		t.Errorf("Sanitize = %q, want %q", got, "okok")
	}
}

func TestSanitize_KeepsRenderableText(t *testing.T) {
	in := "Atención: trámites, año 2026, ¿vale?"
	if got := Sanitize(in); got != in {
		t.Errorf("Sanitize altered renderable text: %q -> %q", in, got)
	}
}
