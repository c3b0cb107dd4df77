package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/carousel/compose"
	"github.com/ByLCY/carousel/export"
	"github.com/ByLCY/carousel/fonts"
	"github.com/ByLCY/carousel/markup"
	"github.com/ByLCY/carousel/render"
)

func main() {
	deckPath := flag.String("deck", "deck.json", "deck JSON file (title + content slides)")
	bgPath := flag.String("bg", "", "background image (PNG/JPEG/GIF); blank when empty")
	outDir := flag.String("out", "", "directory for individual slide PNGs")
	zipPath := flag.String("zip", "", "path for a ZIP archive of all slides")
	pdfPath := flag.String("pdf", "", "path for a page-per-slide PDF")
	dataJSON := flag.String("data", "", "JSON data bound to ${path} placeholders in the deck")
	flag.Parse()

	if *outDir == "" && *zipPath == "" && *pdfPath == "" {
		log.Fatal("nothing to do: pass at least one of -out, -zip, -pdf")
	}
	if err := run(*deckPath, *bgPath, *outDir, *zipPath, *pdfPath, *dataJSON); err != nil {
		log.Fatalf("generate carousel: %v", err)
	}
}

// run chains deck loading, slide composition and export.
func run(deckPath, bgPath, outDir, zipPath, pdfPath, dataJSON string) error {
	file, err := os.Open(deckPath)
	if err != nil {
		return fmt.Errorf("open deck %s: %w", deckPath, err)
	}
	deck, err := compose.LoadDeck(file)
	file.Close()
	if err != nil {
		return err
	}
	if dataJSON != "" {
		var data any
		if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
			return fmt.Errorf("parse data JSON: %w", err)
		}
		deck.Bind(data)
	}

	var background image.Image = render.BlankBackground(compose.ImageSize)
	if bgPath != "" {
		background, err = render.LoadBackground(bgPath, compose.ImageSize)
		if err != nil {
			return err
		}
	}

	composer := compose.NewComposer(background, render.NewFontSet(fonts.Detect()))
	slides := composer.Render(deck)

	if outDir != "" {
		if err := writeSlides(slides, outDir); err != nil {
			return err
		}
	}
	if zipPath != "" {
		if err := writeArtifact(export.Zip{}, slides, zipPath); err != nil {
			return err
		}
	}
	if pdfPath != "" {
		enc := &export.PDF{Title: markup.Plain(deck.Title)}
		if err := writeArtifact(enc, slides, pdfPath); err != nil {
			return err
		}
	}

	fmt.Printf("rendered %d slides\n", len(slides))
	return nil
}

func writeSlides(slides []*image.RGBA, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for i, slide := range slides {
		path := filepath.Join(dir, export.SlideFileName(i))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := png.Encode(f, slide); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

func writeArtifact(enc export.Encoder, slides []*image.RGBA, path string) error {
	data, err := enc.Encode(slides)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
