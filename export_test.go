package carousel

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
)

// stubEncoder records what it was asked to encode and returns canned bytes.
type stubEncoder struct {
	available       bool
	err             error
	frames          int
	secondsPerFrame int
	frameRate       int
}

func (s *stubEncoder) Available() bool { return s.available }

func (s *stubEncoder) Encode(_ context.Context, frames []image.Image, secondsPerFrame, frameRate int) ([]byte, error) {
	s.frames = len(frames)
	s.secondsPerFrame = secondsPerFrame
	s.frameRate = frameRate
	if s.err != nil {
		return nil, s.err
	}
	return []byte("mp4"), nil
}

func TestExport_FullBundle(t *testing.T) {
	enc := &stubEncoder{available: true}
	bundle, err := Export(context.Background(), testDeck(5), BrandAssets{}, &ExportOptions{
		VideoEncoder: enc,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if len(bundle.Images) != 5 {
		t.Errorf("got %d images, want 5", len(bundle.Images))
	}
	for i, img := range bundle.Images {
		if !bytes.HasPrefix(img, []byte("\x89PNG")) {
			t.Errorf("image %d is not a PNG", i)
		}
	}
	if !bytes.HasPrefix(bundle.Document, []byte("%PDF")) {
		t.Error("document is not a PDF")
	}
	if string(bundle.Video) != "mp4" {
		t.Errorf("video = %q, want encoder output", bundle.Video)
	}

	// The slideshow cadence derives from the defaults: 4 s per slide at
	// 30 fps, one frame per slide.
	if enc.frames != 5 {
		t.Errorf("encoder got %d frames, want 5", enc.frames)
	}
	if enc.secondsPerFrame != 4 {
		t.Errorf("secondsPerFrame = %d, want 4", enc.secondsPerFrame)
	}
	if enc.frameRate != 30 {
		t.Errorf("frameRate = %d, want 30", enc.frameRate)
	}
}

func TestExport_SingleSlide(t *testing.T) {
	bundle, err := Export(context.Background(), testDeck(1), BrandAssets{}, &ExportOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(bundle.Images) != 1 {
		t.Errorf("got %d images, want 1", len(bundle.Images))
	}
	if bundle.Document == nil {
		t.Error("expected a document for a single-slide deck")
	}
}

func TestExport_EmptyDeck(t *testing.T) {
	_, err := Export(context.Background(), &Deck{Topic: "vacío"}, BrandAssets{}, nil)
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("err = %v, want ErrEmptyDeck", err)
	}
}

func TestExport_NoEncoder(t *testing.T) {
	bundle, err := Export(context.Background(), testDeck(2), BrandAssets{}, &ExportOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if bundle.Video != nil {
		t.Error("nil encoder should leave Video nil")
	}
	if len(bundle.Images) != 2 || bundle.Document == nil {
		t.Error("images and document must be unaffected by the missing encoder")
	}
}

func TestExport_UnavailableEncoder(t *testing.T) {
	enc := &stubEncoder{available: false}
	bundle, err := Export(context.Background(), testDeck(2), BrandAssets{}, &ExportOptions{
		VideoEncoder: enc,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if bundle.Video != nil {
		t.Error("unavailable encoder should leave Video nil")
	}
	if enc.frames != 0 {
		t.Error("unavailable encoder must not be invoked")
	}
}

func TestExport_EncoderFailureDegrades(t *testing.T) {
	enc := &stubEncoder{available: true, err: errors.New("codec exploded")}
	bundle, err := Export(context.Background(), testDeck(3), BrandAssets{}, &ExportOptions{
		VideoEncoder: enc,
	})
	if err != nil {
		t.Fatalf("Export must not fail on encoder errors: %v", err)
	}
	if bundle.Video != nil {
		t.Error("failed encoding should leave Video nil")
	}
	if len(bundle.Images) != 3 || bundle.Document == nil {
		t.Error("images and document must survive the encoder failure")
	}
}

func TestExport_CustomCadence(t *testing.T) {
	enc := &stubEncoder{available: true}
	_, err := Export(context.Background(), testDeck(2), BrandAssets{}, &ExportOptions{
		SecondsPerSlide: 7,
		FrameRate:       24,
		VideoEncoder:    enc,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if enc.secondsPerFrame != 7 || enc.frameRate != 24 {
		t.Errorf("cadence = (%d s, %d fps), want (7, 24)", enc.secondsPerFrame, enc.frameRate)
	}
}

func TestDefaultExportOptions(t *testing.T) {
	opts := DefaultExportOptions()
	if opts.SecondsPerSlide != 4 || opts.FrameRate != 30 {
		t.Errorf("defaults = (%d s, %d fps), want (4, 30)", opts.SecondsPerSlide, opts.FrameRate)
	}
	if opts.VideoEncoder == nil {
		t.Error("default options should carry an ffmpeg encoder")
	}
}
