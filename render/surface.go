// Package render draws text onto canvases and turns them into raster
// images. It implements the layout engine's surface capability on top of
// github.com/tdewolff/canvas.
package render

import (
	"image"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/carousel/layout"
)

// Surface adapts a canvas drawing context to layout.Surface. Coordinates
// are pixels with the origin at the top-left corner. The caller keeps
// ownership of the underlying canvas; the surface only draws into it.
type Surface struct {
	ctx   *canvas.Context
	fonts *FontSet
}

var _ layout.Surface = (*Surface)(nil)

// NewSurface wraps ctx, switching it to a top-left origin so canvas
// coordinates match the layout cursor model.
func NewSurface(ctx *canvas.Context, fonts *FontSet) *Surface {
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &Surface{ctx: ctx, fonts: fonts}
}

// Measure reports the pixel width and height of content at fontSize. It
// always measures with the regular face: one consistent face keeps
// alignment math stable across differently styled lines.
func (s *Surface) Measure(content string, fontSize float64) (float64, float64) {
	face := s.fonts.Face(fontSize, false, false, canvas.Black)
	width := face.TextWidth(content)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent
	if height <= 0 {
		// Degenerate metrics: fall back to the laid-out line's bounds.
		bounds := canvas.NewTextLine(face, content, canvas.Left).Bounds()
		width, height = bounds.W(), bounds.H()
	}
	return width, height
}

// DrawText renders content with its top-left corner at (x, y) using the
// requested style variant and color.
func (s *Surface) DrawText(x, y float64, content string, style layout.Style, clr color.Color) {
	face := s.fonts.Face(style.Size, style.Bold, style.Italic, clr)
	line := canvas.NewTextLine(face, content, canvas.Left)
	// The line anchors at its baseline, one ascent below the top.
	s.ctx.DrawText(x, y+face.Metrics().Ascent, line)
}

// Rasterize flattens a canvas into an RGBA image at one dot per unit, so
// a 2048x2048-unit canvas yields a 2048x2048-pixel image.
func Rasterize(c *canvas.Canvas) *image.RGBA {
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}
