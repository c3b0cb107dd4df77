// Package compose assembles carousel slides: copies of a shared
// background with a heading block and a body block flowed on top, plus
// the deck model tying a title slide and its content slides together.
package compose

import (
	"image"
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/carousel/layout"
	"github.com/ByLCY/carousel/render"
)

// Reference geometry at the 2048x2048 output scale.
const (
	ImageSize       = 2048
	Padding         = 150
	MaxTextWidth    = ImageSize - 2*Padding
	TitleFontSize   = 150
	HeadingFontSize = 120
	ContentFontSize = 80

	// blockSpacing separates the heading from the body text.
	blockSpacing = 100
	// verticalBias places the stacked blocks at 40% of the free height
	// rather than dead centre, leaving more air below the text.
	verticalBias = 0.4
	// minTopY keeps tall blocks from hugging the top edge.
	minTopY = Padding + 200
	// Character widths for the vertical pre-centering estimate. The real
	// flow re-wraps against the pixel budget, so these only pick the
	// starting cursor; the two passes may disagree slightly.
	titleEstimateWidth   = 40
	headingEstimateWidth = 50
	contentEstimateWidth = 80
	// titleWidthTrim narrows the title box: display-size glyphs overshoot
	// the width heuristic more than body text does.
	titleWidthTrim = 100
)

// TextColor is the fill used for all slide text.
var TextColor color.Color = color.White

// Composer renders slides over a shared background with a shared font
// set. Both are read-only after construction.
type Composer struct {
	background image.Image
	fonts      *render.FontSet
}

// NewComposer creates a Composer. background must already be
// ImageSize×ImageSize (see render.LoadBackground / render.BlankBackground).
func NewComposer(background image.Image, fonts *render.FontSet) *Composer {
	return &Composer{background: background, fonts: fonts}
}

// newSlide starts a fresh canvas with the background drawn and a surface
// over it.
func (c *Composer) newSlide() (*canvas.Canvas, *render.Surface) {
	cv := canvas.New(ImageSize, ImageSize)
	ctx := canvas.NewContext(cv)
	surf := render.NewSurface(ctx, c.fonts)
	ctx.DrawImage(0, 0, c.background, canvas.DPMM(1.0))
	return cv, surf
}

// TitleSlide renders the opening slide: one display-size block.
func (c *Composer) TitleSlide(title string) *image.RGBA {
	cv, surf := c.newSlide()
	titleHeight := layout.EstimateHeight(title, TitleFontSize, titleEstimateWidth)
	layout.Flow(surf, layout.Block{
		Text:     title,
		X:        Padding,
		Y:        (ImageSize - titleHeight) * verticalBias,
		MaxWidth: MaxTextWidth - titleWidthTrim,
		FontSize: TitleFontSize,
		Color:    TextColor,
	})
	return render.Rasterize(cv)
}

// ContentSlide renders an optional heading stacked over body content.
// The vertical start comes from the cheap height pre-estimate; the flow's
// returned cursor chains the body under the heading with a fixed gap.
func (c *Composer) ContentSlide(heading, content string) *image.RGBA {
	cv, surf := c.newSlide()

	hasHeading := strings.TrimSpace(heading) != ""
	var headingHeight, spacing float64
	if hasHeading {
		headingHeight = layout.EstimateHeight(heading, HeadingFontSize, headingEstimateWidth)
		spacing = blockSpacing
	}
	contentHeight := layout.EstimateHeight(content, ContentFontSize, contentEstimateWidth)

	start := (ImageSize - (headingHeight + spacing + contentHeight)) * verticalBias
	if start < minTopY {
		start = minTopY
	}

	contentY := start
	if hasHeading {
		lastY := layout.Flow(surf, layout.Block{
			Text:     heading,
			X:        Padding,
			Y:        start,
			MaxWidth: MaxTextWidth,
			FontSize: HeadingFontSize,
			Color:    TextColor,
		})
		contentY = lastY + spacing
	}
	layout.Flow(surf, layout.Block{
		Text:     content,
		X:        Padding,
		Y:        contentY,
		MaxWidth: MaxTextWidth,
		FontSize: ContentFontSize,
		Color:    TextColor,
	})
	return render.Rasterize(cv)
}
