package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// LoadBackground decodes the image at path and normalises it to a
// size×size square. An unreadable or undecodable file is a reportable
// failure; backgrounds are never silently substituted.
func LoadBackground(path string, size int) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == size && b.Dy() == size {
		return img, nil
	}
	return ResizeSquare(img, size), nil
}

// BlankBackground returns an opaque black square, used when no background
// image is configured.
func BlankBackground(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return img
}

// ResizeSquare scales src to fit inside a size×size square, preserving
// its aspect ratio, centred on a transparent canvas.
func ResizeSquare(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	sb := src.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 {
		return dst
	}
	ratio := math.Min(float64(size)/float64(sb.Dx()), float64(size)/float64(sb.Dy()))
	w := int(float64(sb.Dx()) * ratio)
	h := int(float64(sb.Dy()) * ratio)
	x := (size - w) / 2
	y := (size - h) / 2
	xdraw.CatmullRom.Scale(dst, image.Rect(x, y, x+w, y+h), src, sb, xdraw.Over, nil)
	return dst
}
