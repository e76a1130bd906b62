package carousel

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestFace_FallsBackToBuiltin(t *testing.T) {
	// A cache with no usable candidates must still hand out a face.
	fc := NewFontCache()
	fc.candidates = []string{"/nonexistent/a.ttf", "/nonexistent/b.ttf"}

	face := fc.Face(42, WeightBold)
	if face == nil {
		t.Fatal("Face returned nil")
	}
	if face != basicfont.Face7x13 {
		t.Errorf("expected builtin fallback face, got %T", face)
	}
}

func TestFace_NonPositiveSize(t *testing.T) {
	fc := NewFontCache()
	if face := fc.Face(0, WeightRegular); face == nil {
		t.Error("Face(0) returned nil")
	}
	if face := fc.Face(-5, WeightBold); face == nil {
		t.Error("Face(-5) returned nil")
	}
}

func TestFace_Cached(t *testing.T) {
	fc := NewFontCache()
	a := fc.Face(30, WeightRegular)
	b := fc.Face(30, WeightRegular)
	if a != b {
		t.Error("same (size, weight) should return the cached face")
	}
}

func TestFace_SystemFont(t *testing.T) {
	fc := NewFontCache()
	face := fc.Face(24, WeightBold)
	if face == basicfont.Face7x13 {
		t.Skip("no brand fonts on this host, fallback in use")
	}
	if w := font.MeasureString(face, "Hola").Ceil(); w <= 0 {
		t.Errorf("expected positive width from TrueType face, got %d", w)
	}
}

func TestLoadFontData_Invalid(t *testing.T) {
	fc := NewFontCache()
	if err := fc.LoadFontData(WeightRegular, []byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
