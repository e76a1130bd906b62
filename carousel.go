// Package carousel renders branded slide carousels into pixel-accurate
// raster images and exports them as PNG buffers, a paginated PDF document,
// and a fixed-cadence slideshow video.
//
// The package is the rendering core of a larger publishing system: an
// upstream content generator produces the deck description (topic plus an
// ordered slide list), and downstream collaborators receive the encoded
// byte buffers. Nothing here persists state or talks to the network; the
// only external dependency is an optional out-of-process video encoder.
//
// See the Version variable for the current library version.
package carousel

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
)

// ErrEmptyDeck is returned when a deck contains no slides. It is the only
// input condition that aborts an export; every other problem degrades the
// affected output instead.
var ErrEmptyDeck = errors.New("carousel: deck has no slides")

// Deck is one carousel: a topic and an ordered, non-empty slide sequence.
// The engine reads a Deck and never mutates it.
type Deck struct {
	Topic  string      `json:"topic"`
	Slides []SlideSpec `json:"slides"`
}

// SlideSpec describes one slide. Bullets and Body are alternatives: Body
// is only rendered when Bullets is empty. The slide's variant is not
// stored here; it is derived from the slide's position via VariantFor.
type SlideSpec struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets,omitempty"`
	TipBox  string   `json:"tip_box,omitempty"`
	Body    string   `json:"body,omitempty"`
}

// UnmarshalJSON accepts "headline" as an alias for "title", matching the
// upstream generator's output which uses either key.
func (s *SlideSpec) UnmarshalJSON(data []byte) error {
	type plain SlideSpec
	aux := struct {
		*plain
		Headline string `json:"headline"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.Title == "" {
		s.Title = aux.Headline
	}
	return nil
}

// DecodeDeck parses a carousel deck from the upstream generator's JSON.
// Fields that belong to the publishing collaborators (caption, hashtags,
// slide_number) are ignored.
func DecodeDeck(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return &d, nil
}

// Variant selects a slide's layout template.
type Variant int

const (
	// VariantCover is the first slide of every deck.
	VariantCover Variant = iota
	// VariantContent is the template for all middle slides.
	VariantContent
	// VariantCTA is the call-to-action template for the last slide of
	// decks longer than two slides.
	VariantCTA
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantCover:
		return "cover"
	case VariantContent:
		return "content"
	case VariantCTA:
		return "cta"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// VariantFor derives a slide's variant from its position. Slide 0 is
// always the cover. The last slide is the CTA only when the deck has more
// than two slides; a 2-slide deck renders its second slide as content.
func VariantFor(index, total int) Variant {
	switch {
	case index == 0:
		return VariantCover
	case index == total-1 && total > 2:
		return VariantCTA
	default:
		return VariantContent
	}
}

// BrandAssets holds the two optional brand logos, already decoded and
// chroma-keyed. A nil logo simply means the corresponding pill or
// watermark is not drawn.
type BrandAssets struct {
	Wide   image.Image
	Square image.Image
}

// LoadBrandAssets loads and chroma-keys both logos. Missing or unreadable
// files leave the corresponding logo nil; brand rendering degrades
// gracefully rather than failing the request.
func LoadBrandAssets(widePath, squarePath string) BrandAssets {
	var a BrandAssets
	if img, ok := LoadLogo(widePath); ok {
		a.Wide = img
	}
	if img, ok := LoadLogo(squarePath); ok {
		a.Square = img
	}
	return a
}

// RenderedSlide is one composed slide: an immutable RGBA canvas plus the
// slide's index in the deck.
type RenderedSlide struct {
	Index int
	Image *image.RGBA
}

// ExportBundle is the tri-part result of an export. Images is always
// index-aligned with the deck. Document and Video are nil when their
// stage failed or was skipped; callers must treat that as a normal
// outcome on hosts lacking the relevant capability.
type ExportBundle struct {
	Images   [][]byte
	Document []byte
	Video    []byte
}
