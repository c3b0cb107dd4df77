// Package layout flows markup text into positioned lines on a drawing
// surface. Line breaks come from a character-count budget derived from the
// font size rather than from glyph measurement; the constants below are
// the named knobs of that heuristic.
package layout

import "image/color"

// Align selects the horizontal placement of each wrapped line inside its
// box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Tunable constants of the width heuristic and vertical rhythm.
const (
	// DisplaySizeThreshold separates display text (titles) from body
	// text. Above it, glyphs run wider relative to the font size.
	DisplaySizeThreshold = 100.0

	// DisplayCharWidth and BodyCharWidth approximate the average glyph
	// width as a fraction of the font size.
	DisplayCharWidth = 0.45
	BodyCharWidth    = 0.4

	// WidthSafety shrinks the pixel budget to absorb the error of the
	// average-width model.
	WidthSafety = 0.95

	// MinLineChars floors the per-line character budget, even for
	// degenerate box widths.
	MinLineChars = 5

	// LineSpacing multiplies the measured line height when advancing the
	// cursor past a drawn line.
	LineSpacing = 1.35

	// BlankLineSpacing multiplies the font size when a blank paragraph
	// advances the cursor without drawing.
	BlankLineSpacing = 0.7
)

// Style is a font variant request: pixel size plus bold/italic flags. The
// surface resolves it to a concrete face and falls back to a default face
// rather than failing.
type Style struct {
	Size   float64
	Bold   bool
	Italic bool
}

// Surface is the drawing capability text is flowed onto. Measure reports
// the pixel width and height of content at fontSize using the regular
// face; DrawText renders content with its top-left corner at (x, y). The
// engine assumes exclusive access to the surface for the duration of a
// Flow call.
type Surface interface {
	Measure(content string, fontSize float64) (width, height float64)
	DrawText(x, y float64, content string, style Style, clr color.Color)
}

// Block is one flow request: the text to lay out and the box it flows
// into. X/Y is the box origin in pixels, MaxWidth the pixel budget per
// line.
type Block struct {
	Text     string
	X, Y     float64
	MaxWidth float64
	FontSize float64
	Color    color.Color
	Align    Align
}
