package layout

import (
	"strings"
	"unicode/utf8"
)

// LineBudget estimates how many characters fit on one line of maxWidth
// pixels at fontSize. The result is clamped to MinLineChars so that even
// degenerate widths keep the wrapper making progress.
func LineBudget(fontSize, maxWidth float64) int {
	avg := BodyCharWidth * fontSize
	if fontSize > DisplaySizeThreshold {
		avg = DisplayCharWidth * fontSize
	}
	budget := 10
	if avg > 0 {
		budget = int((maxWidth * WidthSafety) / avg)
	}
	if budget < MinLineChars {
		budget = MinLineChars
	}
	return budget
}

// wrapParagraph greedily packs words into lines of at most budget
// characters. Words are never split across lines: a word longer than the
// budget occupies a line of its own, unshortened. Whitespace between words
// collapses to a single space. An empty or whitespace-only paragraph
// yields no lines.
func wrapParagraph(paragraph string, budget int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	length := 0
	for _, word := range words {
		runes := utf8.RuneCountInString(word)
		if length > 0 && length+1+runes > budget {
			lines = append(lines, line.String())
			line.Reset()
			length = 0
		}
		if length > 0 {
			line.WriteByte(' ')
			length++
		}
		line.WriteString(word)
		length += runes
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// EstimateLines counts the lines text would occupy when wrapped at a
// fixed character width. This is the cheap pre-estimate used for vertical
// centering; the real flow re-wraps against the pixel budget, so the two
// may disagree slightly.
func EstimateLines(text string, width int) int {
	if width < 1 {
		width = 1
	}
	total := 0
	for _, paragraph := range strings.Split(text, "\n") {
		total += len(wrapParagraph(paragraph, width))
	}
	return total
}

// EstimateHeight converts the line-count estimate into pixels using the
// nominal font size and the standard line spacing.
func EstimateHeight(text string, fontSize float64, width int) float64 {
	return float64(EstimateLines(text, width)) * fontSize * LineSpacing
}
