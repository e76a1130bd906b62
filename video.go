package carousel

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// VideoEncoder turns an ordered frame sequence into an encoded slideshow
// video. Implementations own all process-management concerns; the
// composition pipeline only sees bytes or an error.
type VideoEncoder interface {
	// Available reports whether the encoder can run on this host.
	Available() bool
	// Encode produces a video where each frame plays for secondsPerFrame
	// seconds at the given output frame rate.
	Encode(ctx context.Context, frames []image.Image, secondsPerFrame, frameRate int) ([]byte, error)
}

// FFmpegEncoder encodes slideshows by invoking the ffmpeg binary. Each
// invocation writes its frames to an isolated temp directory (removed on
// return) so parallel exports cannot collide, and runs under a hard
// wall-clock timeout.
type FFmpegEncoder struct {
	// Path is the resolved ffmpeg binary; empty means not found.
	Path string
	// Timeout bounds one encoder run. Default: 60 s.
	Timeout time.Duration
	// Width and Height are the scale target. Defaults: the brand canvas.
	Width  int
	Height int
}

// NewFFmpegEncoder resolves ffmpeg from PATH. The returned encoder
// reports Available() == false when the binary is missing; that is not
// an error, the video stage is simply skipped.
func NewFFmpegEncoder() *FFmpegEncoder {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		path = ""
	}
	return &FFmpegEncoder{
		Path:    path,
		Timeout: 60 * time.Second,
		Width:   1080,
		Height:  1350,
	}
}

// Available reports whether an ffmpeg binary was resolved.
func (e *FFmpegEncoder) Available() bool { return e.Path != "" }

// Encode writes the frames as numbered PNGs and runs ffmpeg over them:
// libx264, fast preset, CRF 20, yuv420p, faststart. On timeout or
// non-zero exit the returned error carries ffmpeg's stderr.
func (e *FFmpegEncoder) Encode(ctx context.Context, frames []image.Image, secondsPerFrame, frameRate int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("ffmpeg not available")
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to encode")
	}
	if secondsPerFrame <= 0 {
		secondsPerFrame = 4
	}
	if frameRate <= 0 {
		frameRate = 30
	}

	tmpDir, err := os.MkdirTemp("", "carousel-video-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	for i, frame := range frames {
		if err := writePNG(filepath.Join(tmpDir, fmt.Sprintf("slide_%02d.png", i)), frame); err != nil {
			return nil, fmt.Errorf("write frame %d: %w", i, err)
		}
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	outPath := filepath.Join(tmpDir, "output.mp4")
	cmd := exec.CommandContext(ctx, e.Path,
		"-y",
		"-framerate", fmt.Sprintf("1/%d", secondsPerFrame),
		"-i", filepath.Join(tmpDir, "slide_%02d.png"),
		"-vf", fmt.Sprintf("scale=%d:%d,format=yuv420p", e.Width, e.Height),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "20",
		"-r", fmt.Sprintf("%d", frameRate),
		"-movflags", "+faststart",
		outPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed: %w\nstderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read encoded video: %w", err)
	}
	return data, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
