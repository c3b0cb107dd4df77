package layout

import (
	"strings"

	"github.com/ByLCY/carousel/markup"
)

// Flow parses b.Text, wraps it to the pixel budget and draws it onto s.
// It returns the vertical cursor after the last line so a following block
// can stack below without overlap. Empty or whitespace-only text draws
// nothing and returns b.Y unchanged. Flow never fails: font and
// measurement problems degrade inside the surface, not here.
func Flow(s Surface, b Block) float64 {
	runs := markup.Parse(b.Text)
	combined := markup.Flatten(runs)
	if strings.TrimSpace(combined) == "" {
		return b.Y
	}
	budget := LineBudget(b.FontSize, b.MaxWidth)

	cursorY := b.Y
	for _, paragraph := range strings.Split(combined, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			// Intentional blank line: advance without drawing.
			cursorY += b.FontSize * BlankLineSpacing
			continue
		}
		for _, line := range wrapParagraph(paragraph, budget) {
			lineWidth, lineHeight := s.Measure(line, b.FontSize)
			bold, italic := lineStyle(runs, line)
			s.DrawText(alignLine(b, lineWidth), cursorY, line,
				Style{Size: b.FontSize, Bold: bold, Italic: italic}, b.Color)
			cursorY += lineHeight * LineSpacing
		}
	}
	return cursorY
}

// alignLine resolves the horizontal start of a line, clamped so that an
// over-wide line never escapes the left edge of the box.
func alignLine(b Block, lineWidth float64) float64 {
	x := b.X
	switch b.Align {
	case AlignCenter:
		x = b.X + (b.MaxWidth-lineWidth)/2
	case AlignRight:
		x = b.X + b.MaxWidth - lineWidth
	}
	if x < b.X {
		x = b.X
	}
	return x
}

// lineStyle decides the variant of a whole line: any styled run whose text
// is a substring of the line marks the entire line bold and/or italic.
// Mixed styles inside one wrapped line collapse into this OR; the box
// model styles lines, not characters.
func lineStyle(runs []markup.Run, line string) (bold, italic bool) {
	for _, run := range runs {
		if run.Text == "" || !strings.Contains(line, run.Text) {
			continue
		}
		bold = bold || run.Bold
		italic = italic || run.Italic
	}
	return bold, italic
}
