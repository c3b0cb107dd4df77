package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// SlideFilePrefix names the PNG entries inside the archive; slide numbers
// start at 1.
const SlideFilePrefix = "carousel_slide_"

// Zip packages each slide as a PNG entry in a single archive.
type Zip struct{}

var _ Encoder = Zip{}

// Encode implements Encoder.
func (Zip) Encode(slides []*image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, slide := range slides {
		entry, err := zw.Create(SlideFileName(i))
		if err != nil {
			return nil, fmt.Errorf("create archive entry %d: %w", i+1, err)
		}
		if err := png.Encode(entry, slide); err != nil {
			return nil, fmt.Errorf("encode slide %d: %w", i+1, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// SlideFileName returns the PNG file name for the slide at index i.
func SlideFileName(i int) string {
	return fmt.Sprintf("%s%d.png", SlideFilePrefix, i+1)
}
