package carousel

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
)

// chromaKeyThreshold is the mean-RGB brightness below which a logo pixel
// is treated as background and made transparent.
const chromaKeyThreshold = 60

// LoadLogo reads, decodes, and chroma-keys a brand logo. A missing path,
// unreadable file, or undecodable image yields (nil, false); the caller
// renders without the logo rather than failing the request.
func LoadLogo(path string) (image.Image, bool) {
	if path == "" {
		return nil, false
	}
	f, err := os.Open(path)
	if err != nil {
		Logger().Warn("logo unavailable, rendering without it", "path", path, "err", err)
		return nil, false
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		Logger().Warn("logo undecodable, rendering without it", "path", path, "err", err)
		return nil, false
	}
	return ChromaKey(img), true
}

// ChromaKey makes every pixel whose mean RGB brightness falls below the
// threshold fully transparent, approximating "remove black background".
// The per-pixel cut has no edge anti-aliasing; faint fringing around logo
// edges is an accepted artifact of the brand assets, not a defect.
func ChromaKey(src image.Image) *image.NRGBA {
	out := imaging.Clone(src)
	for i := 0; i < len(out.Pix); i += 4 {
		r := int(out.Pix[i])
		g := int(out.Pix[i+1])
		b := int(out.Pix[i+2])
		if (r+g+b)/3 < chromaKeyThreshold {
			out.Pix[i+3] = 0
		}
	}
	return out
}

// FitToHeight resizes an image to the target height, preserving aspect
// ratio, with Lanczos resampling.
func FitToHeight(src image.Image, targetHeight int) image.Image {
	b := src.Bounds()
	if b.Dy() == 0 || targetHeight <= 0 {
		return src
	}
	w := b.Dx() * targetHeight / b.Dy()
	if w < 1 {
		w = 1
	}
	return imaging.Resize(src, w, targetHeight, imaging.Lanczos)
}

// FaintCopy returns a copy with a uniform alpha channel, used for the
// square-logo watermark. The alpha band is replaced outright, so pixels
// the chroma key made transparent become faintly visible again; this
// matches the watermark's intentionally washed-out look.
func FaintCopy(src image.Image, alpha uint8) *image.NRGBA {
	out := imaging.Clone(src)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = alpha
	}
	return out
}
