// Command carouselrender renders a carousel deck JSON file into slide
// PNGs, a PDF, and (when ffmpeg is present) an MP4, written to an output
// directory. It is a development harness for the carousel library; the
// production callers consume the library directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	carousel "github.com/tuspapeles2026/carousel"
)

func main() {
	deckPath := flag.String("deck", "deck.json", "carousel deck JSON file")
	widePath := flag.String("wide", "", "wide logo image path")
	squarePath := flag.String("square", "", "square logo image path")
	outDir := flag.String("out", "out", "output directory")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		carousel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		carousel.SetLogger(slog.Default())
	}

	data, err := os.ReadFile(*deckPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read deck: %v\n", err)
		os.Exit(1)
	}
	deck, err := carousel.DecodeDeck(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode deck: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	assets := carousel.LoadBrandAssets(*widePath, *squarePath)
	bundle, err := carousel.Export(context.Background(), deck, assets, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}

	for i, img := range bundle.Images {
		path := filepath.Join(*outDir, fmt.Sprintf("slide_%02d.png", i))
		if err := os.WriteFile(path, img, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
	}
	if bundle.Document != nil {
		if err := os.WriteFile(filepath.Join(*outDir, "carousel.pdf"), bundle.Document, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write pdf: %v\n", err)
			os.Exit(1)
		}
	}
	if bundle.Video != nil {
		if err := os.WriteFile(filepath.Join(*outDir, "carousel.mp4"), bundle.Video, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write video: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Rendered %d slides to %s (pdf: %v, video: %v)\n",
		len(bundle.Images), *outDir, bundle.Document != nil, bundle.Video != nil)
}
