package layout

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ByLCY/carousel/markup"
)

// stubSurface is a minimal Surface for tests: width scales with the rune
// count, height is fixed, draws are recorded. It avoids pulling the real
// renderer into layout tests.
type stubSurface struct {
	charWidth  float64
	lineHeight float64
	ops        []drawOp
}

type drawOp struct {
	x, y  float64
	text  string
	style Style
}

func (s *stubSurface) Measure(content string, fontSize float64) (float64, float64) {
	return s.charWidth * float64(utf8.RuneCountInString(content)), s.lineHeight
}

func (s *stubSurface) DrawText(x, y float64, content string, style Style, _ color.Color) {
	s.ops = append(s.ops, drawOp{x: x, y: y, text: content, style: style})
}

func newStub() *stubSurface { return &stubSurface{charWidth: 10, lineHeight: 20} }

func TestFlowEmptyTextLeavesCursor(t *testing.T) {
	s := newStub()
	for _, text := range []string{"", "   ", "\n\n", " \t\n "} {
		got := Flow(s, Block{Text: text, X: 10, Y: 100, MaxWidth: 500, FontSize: 40})
		if got != 100 {
			t.Fatalf("Flow(%q) moved the cursor: got %g want 100", text, got)
		}
	}
	if len(s.ops) != 0 {
		t.Fatalf("empty input must draw nothing, drew %d lines", len(s.ops))
	}
}

func TestFlowCursorMonotonic(t *testing.T) {
	s := newStub()
	got := Flow(s, Block{Text: "hello world", X: 0, Y: 100, MaxWidth: 2000, FontSize: 40})
	if got <= 100 {
		t.Fatalf("cursor must advance past the origin after drawing, got %g", got)
	}
	want := 100 + s.lineHeight*LineSpacing
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("cursor = %g, want %g", got, want)
	}
}

func TestFlowBlankParagraphSpacing(t *testing.T) {
	s := newStub()
	fontSize := 40.0
	Flow(s, Block{Text: "a\n\nb", X: 0, Y: 0, MaxWidth: 2000, FontSize: fontSize})
	if len(s.ops) != 2 {
		t.Fatalf("expected 2 drawn lines, got %d", len(s.ops))
	}
	want := s.lineHeight*LineSpacing + fontSize*BlankLineSpacing
	if math.Abs(s.ops[1].y-want) > 1e-9 {
		t.Fatalf("second line y = %g, want %g", s.ops[1].y, want)
	}
}

func TestFlowAlignments(t *testing.T) {
	block := Block{Text: "abcd", X: 100, MaxWidth: 400, FontSize: 40}
	// Measured width: 4 runes * 10 = 40.
	cases := []struct {
		align Align
		wantX float64
	}{
		{AlignLeft, 100},
		{AlignCenter, 100 + (400-40)/2.0},
		{AlignRight, 100 + 400 - 40},
	}
	for _, tc := range cases {
		s := newStub()
		block.Align = tc.align
		Flow(s, block)
		if len(s.ops) != 1 {
			t.Fatalf("align %v: expected one line, got %d", tc.align, len(s.ops))
		}
		if s.ops[0].x != tc.wantX {
			t.Fatalf("align %v: x = %g, want %g", tc.align, s.ops[0].x, tc.wantX)
		}
	}
}

func TestFlowAlignmentClampsToOrigin(t *testing.T) {
	// A mis-measured over-wide line must not push text off the left edge.
	s := &stubSurface{charWidth: 500, lineHeight: 20}
	for _, align := range []Align{AlignCenter, AlignRight} {
		s.ops = nil
		Flow(s, Block{Text: "wide", X: 100, MaxWidth: 400, FontSize: 40, Align: align})
		if s.ops[0].x != 100 {
			t.Fatalf("align %v: x = %g, want clamp at 100", align, s.ops[0].x)
		}
	}
}

func TestFlowWholeLineStyle(t *testing.T) {
	s := newStub()
	Flow(s, Block{Text: "**HOW TO GROW?**", MaxWidth: 2000, FontSize: 40})
	if len(s.ops) != 1 {
		t.Fatalf("expected one line, got %d", len(s.ops))
	}
	if !s.ops[0].style.Bold || s.ops[0].style.Italic {
		t.Fatalf("expected a bold line, got %+v", s.ops[0].style)
	}
	if s.ops[0].text != "HOW TO GROW?" {
		t.Fatalf("markers leaked into the drawn line: %q", s.ops[0].text)
	}
}

func TestFlowStyleIsPerLine(t *testing.T) {
	// The bold heading wraps onto its own line; the plain continuation
	// must not inherit the style.
	s := newStub()
	Flow(s, Block{Text: "**TITLE**\nplain body text", MaxWidth: 2000, FontSize: 40})
	if len(s.ops) != 2 {
		t.Fatalf("expected two lines, got %d", len(s.ops))
	}
	if !s.ops[0].style.Bold {
		t.Fatalf("heading line lost its bold flag: %+v", s.ops[0])
	}
	if s.ops[1].style.Bold || s.ops[1].style.Italic {
		t.Fatalf("body line gained style flags: %+v", s.ops[1])
	}
}

func TestFlowLongWordSingleLine(t *testing.T) {
	s := newStub()
	long := strings.Repeat("a", 200)
	Flow(s, Block{Text: long, MaxWidth: 400, FontSize: 80})
	if len(s.ops) != 1 {
		t.Fatalf("a single long word must occupy one line, got %d", len(s.ops))
	}
	if s.ops[0].text != long {
		t.Fatalf("long word was altered (%d chars)", len(s.ops[0].text))
	}
}

func TestFlowSequentialBlocksDoNotOverlap(t *testing.T) {
	s := newStub()
	const spacing = 100.0
	headingEnd := Flow(s, Block{Text: "**TITLE**", Y: 100, MaxWidth: 2000, FontSize: 120})
	bodyStart := headingEnd + spacing
	Flow(s, Block{Text: "text", Y: bodyStart, MaxWidth: 2000, FontSize: 80})

	if len(s.ops) != 2 {
		t.Fatalf("expected two drawn lines, got %d", len(s.ops))
	}
	headingBottom := s.ops[0].y + s.lineHeight
	if s.ops[1].y < headingBottom {
		t.Fatalf("body line at %g overlaps heading ending at %g", s.ops[1].y, headingBottom)
	}
	if s.ops[1].y != bodyStart {
		t.Fatalf("body must start at returned cursor + spacing: got %g want %g", s.ops[1].y, bodyStart)
	}
}

func TestLineStyleSubstringApproximation(t *testing.T) {
	runs := markup.Parse("**Lorem ipsum** dolor *sit*")
	// The line carries fragments of a bold and an italic run; the
	// whole-line OR picks up both.
	bold, italic := lineStyle(runs, "Lorem ipsum dolor sit")
	if !bold || !italic {
		t.Fatalf("expected bold+italic from the OR approximation, got bold=%v italic=%v", bold, italic)
	}
	// A line matching none of the runs stays plain.
	bold, italic = lineStyle(runs, "unrelated")
	if bold || italic {
		t.Fatalf("unrelated line must stay plain, got bold=%v italic=%v", bold, italic)
	}
}
