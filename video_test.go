package carousel

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"
)

func TestFFmpegEncoder_NotAvailable(t *testing.T) {
	enc := &FFmpegEncoder{Path: ""}
	if enc.Available() {
		t.Error("empty path must report unavailable")
	}
	if _, err := enc.Encode(context.Background(), testFrames(1), 1, 30); err == nil {
		t.Error("Encode without a binary should fail")
	}
}

func TestFFmpegEncoder_NoFrames(t *testing.T) {
	enc := NewFFmpegEncoder()
	if !enc.Available() {
		t.Skip("ffmpeg not installed")
	}
	if _, err := enc.Encode(context.Background(), nil, 1, 30); err == nil {
		t.Error("Encode with no frames should fail")
	}
}

func TestFFmpegEncoder_Encode(t *testing.T) {
	enc := NewFFmpegEncoder()
	if !enc.Available() {
		t.Skip("ffmpeg not installed")
	}
	enc.Width, enc.Height = 64, 80
	enc.Timeout = 30 * time.Second

	data, err := enc.Encode(context.Background(), testFrames(3), 1, 10)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty video output")
	}
	// MP4 containers carry "ftyp" at byte offset 4.
	if string(data[4:8]) != "ftyp" {
		t.Errorf("output does not look like an MP4: % x", data[:12])
	}
}

func TestFFmpegEncoder_ContextCancel(t *testing.T) {
	enc := NewFFmpegEncoder()
	if !enc.Available() {
		t.Skip("ffmpeg not installed")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := enc.Encode(ctx, testFrames(2), 1, 10); err == nil {
		t.Error("Encode with a cancelled context should fail")
	}
}

func testFrames(n int) []image.Image {
	frames := make([]image.Image, n)
	for i := range frames {
		img := image.NewRGBA(image.Rect(0, 0, 64, 80))
		c := color.RGBA{R: uint8(40 * (i + 1)), G: 80, B: 120, A: 255}
		for y := 0; y < 80; y++ {
			for x := 0; x < 64; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		frames[i] = img
	}
	return frames
}
