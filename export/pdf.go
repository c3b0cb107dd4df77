package export

import (
	"bytes"
	"fmt"
	"image"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
)

// PDF writes one page per slide with the page size equal to the slide's
// pixel size, so each slide fills its page edge to edge.
type PDF struct {
	Title  string
	Author string
}

var _ Encoder = (*PDF)(nil)

// Encode implements Encoder.
func (p *PDF) Encode(slides []*image.RGBA) ([]byte, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("no slides to export")
	}

	first := slides[0].Bounds()
	var buf bytes.Buffer
	writer := pdf.New(&buf, float64(first.Dx()), float64(first.Dy()), nil)
	writer.SetInfo(p.Title, "", "", p.Author, "carousel")

	for i, slide := range slides {
		b := slide.Bounds()
		if i > 0 {
			writer.NewPage(float64(b.Dx()), float64(b.Dy()))
		}
		c := canvas.New(float64(b.Dx()), float64(b.Dy()))
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV)
		ctx.DrawImage(0, 0, slide, canvas.DPMM(1.0))
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close pdf: %w", err)
	}
	return buf.Bytes(), nil
}
