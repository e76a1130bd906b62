package carousel

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"codeberg.org/go-pdf/fpdf"
)

// ExportOptions configures an export. Zero-value fields get defaults.
type ExportOptions struct {
	// Theme overrides the brand theme. Nil selects DefaultTheme.
	Theme *Theme
	// FontCache allows sharing resolved fonts across exports. Nil
	// creates a fresh cache probing the default paths.
	FontCache *FontCache
	// SecondsPerSlide is the duration of each video segment. Default: 4.
	SecondsPerSlide int
	// FrameRate is the video output frame rate. Default: 30.
	FrameRate int
	// VideoEncoder produces the slideshow video. Nil skips the video
	// stage entirely (nil Video in the bundle).
	VideoEncoder VideoEncoder
}

// DefaultExportOptions returns options matching the brand defaults: 4
// seconds per slide at 30 fps, encoded by ffmpeg when present on the host.
func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		SecondsPerSlide: 4,
		FrameRate:       30,
		VideoEncoder:    NewFFmpegEncoder(),
	}
}

// Export renders the deck and produces the full bundle: per-slide PNG
// buffers, a paginated PDF, and a slideshow video.
//
// Only an empty deck returns an error. The document and video stages are
// individually fault-tolerant: a failure (or an absent encoder) leaves
// the corresponding bundle field nil without affecting the other outputs.
func Export(ctx context.Context, deck *Deck, assets BrandAssets, opts *ExportOptions) (*ExportBundle, error) {
	if opts == nil {
		opts = DefaultExportOptions()
	}
	secondsPerSlide := opts.SecondsPerSlide
	if secondsPerSlide <= 0 {
		secondsPerSlide = 4
	}
	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}

	composer := NewComposer(opts.Theme, opts.FontCache, assets)
	slides, err := composer.RenderDeck(deck)
	if err != nil {
		return nil, err
	}

	bundle := &ExportBundle{}

	// Stage 1: encode each slide to PNG, index-aligned with the deck.
	bundle.Images = make([][]byte, len(slides))
	for i, slide := range slides {
		data, err := encodePNG(slide.Image)
		if err != nil {
			return nil, fmt.Errorf("encode slide %d: %w", i, err)
		}
		bundle.Images[i] = data
	}

	// Stage 2: paginated document. Failure degrades to a nil document.
	doc, err := assembleDocument(bundle.Images, composer.theme.Width, composer.theme.Height)
	if err != nil {
		Logger().Warn("document assembly failed, continuing without it", "err", err)
	} else {
		bundle.Document = doc
	}

	// Stage 3: slideshow video. Absent or failing encoders degrade to a
	// nil video; callers must treat that as a normal outcome.
	if enc := opts.VideoEncoder; enc != nil && enc.Available() {
		frames := make([]image.Image, len(slides))
		for i, slide := range slides {
			frames[i] = slide.Image
		}
		video, err := enc.Encode(ctx, frames, secondsPerSlide, frameRate)
		if err != nil {
			Logger().Warn("video encoding failed, continuing without it", "err", err)
		} else {
			bundle.Video = video
		}
	} else {
		Logger().Debug("no video encoder available, skipping video stage")
	}

	return bundle, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// assembleDocument builds a PDF with one full-bleed page per slide, in
// deck order. Page size equals the canvas size in points so the PNGs map
// 1:1 onto their pages.
func assembleDocument(pngs [][]byte, width, height int) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	for i, data := range pngs {
		pdf.AddPage()
		name := fmt.Sprintf("slide-%02d", i)
		pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))
		pdf.ImageOptions(name, 0, 0, float64(width), float64(height), false, opt, 0, "")
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
