package carousel

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontWeight selects between the two brand weights.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightBold
)

// faceKey uniquely identifies a cached face by size and weight.
type faceKey struct {
	size   float64
	weight FontWeight
}

// defaultFontPaths is the ordered candidate list probed for brand fonts,
// covering Debian/Ubuntu (fonts-dejavu-core) and Arch layouts.
var defaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// maxFontFileSize limits the size of individual font files loaded into memory.
const maxFontFileSize = 20 << 20 // 20 MB

// FontCache resolves brand fonts by (size, weight) and caches the
// resulting faces. Resolution probes an ordered list of candidate paths:
// first a path whose filename matches the requested weight, then any
// existing candidate, and finally a built-in bitmap face. It never fails;
// a host without font files renders with the fallback face.
type FontCache struct {
	mu         sync.Mutex
	candidates []string
	fonts      map[FontWeight]*opentype.Font
	faces      map[faceKey]font.Face
	probed     bool
}

// NewFontCache creates a FontCache probing the default candidate paths
// plus any extra paths, in order.
func NewFontCache(extraPaths ...string) *FontCache {
	return &FontCache{
		candidates: append(append([]string{}, defaultFontPaths...), extraPaths...),
		fonts:      make(map[FontWeight]*opentype.Font),
		faces:      make(map[faceKey]font.Face),
	}
}

// Face returns a font.Face for the given point size and weight. The
// returned face is cached and shared; it is never nil.
func (fc *FontCache) Face(sizePt float64, weight FontWeight) font.Face {
	if sizePt <= 0 {
		sizePt = 10
	}
	key := faceKey{size: sizePt, weight: weight}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if face, ok := fc.faces[key]; ok {
		return face
	}

	fc.ensureProbed()
	f := fc.fonts[weight]
	if f == nil {
		// The other weight is better than the bitmap fallback.
		f = fc.fonts[otherWeight(weight)]
	}
	if f == nil {
		fc.faces[key] = basicfont.Face7x13
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		fc.faces[key] = basicfont.Face7x13
		return basicfont.Face7x13
	}
	fc.faces[key] = face
	return face
}

// LoadFontData registers an in-memory font for the given weight,
// replacing whatever path probing found. Useful for tests and for
// deployments that embed their fonts.
func (fc *FontCache) LoadFontData(weight FontWeight, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	fc.mu.Lock()
	fc.ensureProbed()
	fc.fonts[weight] = f
	// Drop faces built from the replaced font.
	for key := range fc.faces {
		if key.weight == weight {
			delete(fc.faces, key)
		}
	}
	fc.mu.Unlock()
	return nil
}

// ensureProbed walks the candidate list once. Callers hold fc.mu.
func (fc *FontCache) ensureProbed() {
	if fc.probed {
		return
	}
	fc.probed = true

	for _, weight := range []FontWeight{WeightRegular, WeightBold} {
		if path := fc.findPath(weight); path != "" {
			if f := parseFontFile(path); f != nil {
				fc.fonts[weight] = f
				continue
			}
		}
		Logger().Warn("brand font not found, weight will fall back",
			"weight", weightName(weight))
	}
}

// findPath returns the first candidate matching the weight, or failing
// that the first candidate that exists at all.
func (fc *FontCache) findPath(weight FontWeight) string {
	for _, p := range fc.candidates {
		if pathMatchesWeight(p, weight) && fileExists(p) {
			return p
		}
	}
	for _, p := range fc.candidates {
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func pathMatchesWeight(path string, weight FontWeight) bool {
	bold := strings.Contains(strings.ToLower(path), "bold")
	return bold == (weight == WeightBold)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func parseFontFile(path string) *opentype.Font {
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxFontFileSize {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil
	}
	return f
}

func otherWeight(w FontWeight) FontWeight {
	if w == WeightBold {
		return WeightRegular
	}
	return WeightBold
}

func weightName(w FontWeight) string {
	if w == WeightBold {
		return "bold"
	}
	return "regular"
}
