// Package markup parses the lightweight inline markup used in slide text:
// **bold** and *italic* toggles plus "- ", "* " and "1. " list prefixes.
// It is deliberately not a Markdown implementation; only these forms are
// recognized.
package markup

import (
	"iter"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Run is a maximal contiguous text span sharing one bold/italic state.
// Runs are emitted in document order; concatenating their text reproduces
// the input with the toggle markers stripped and list prefixes normalized.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Bold", Pattern: `\*\*`},
		{Name: "Italic", Pattern: `\*`},
		{Name: "Text", Pattern: `[^*]+`},
	})

	boldTokenType   = mustTokenType("Bold")
	italicTokenType = mustTokenType("Italic")

	// A line starting with optional indentation and a dash or asterisk
	// list marker. Numbered prefixes ("1. ") are already in display form
	// and pass through untouched.
	bulletPrefix = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)
)

// Runs scans text and yields styled runs lazily, in document order. A
// toggle marker flushes the run built so far (under the pre-toggle flags),
// flips the corresponding flag and starts a new run. An unterminated
// toggle is not an error; the flag simply stays flipped for the remainder
// of the input.
func Runs(text string) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		lex, err := markupLexer.LexString("", text)
		if err != nil {
			// The lexer rules cover every byte, so this cannot happen in
			// practice; degrade to a single plain run.
			yield(Run{Text: NormalizeLists(text)})
			return
		}

		var (
			acc    strings.Builder
			bold   bool
			italic bool
		)
		flush := func() bool {
			if acc.Len() == 0 {
				return true
			}
			run := Run{Text: NormalizeLists(acc.String()), Bold: bold, Italic: italic}
			acc.Reset()
			return yield(run)
		}

		for {
			tok, err := lex.Next()
			if err != nil || tok.EOF() {
				break
			}
			switch tok.Type {
			case boldTokenType:
				if !flush() {
					return
				}
				bold = !bold
			case italicTokenType:
				if !flush() {
					return
				}
				italic = !italic
			default:
				acc.WriteString(tok.Value)
			}
		}
		flush()
	}
}

// Parse collects the runs of text into a slice.
func Parse(text string) []Run {
	var runs []Run
	for run := range Runs(text) {
		runs = append(runs, run)
	}
	return runs
}

// Flatten concatenates the text of runs. For runs produced by Parse this
// is the original input with markers stripped and list prefixes
// normalized.
func Flatten(runs []Run) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Plain strips all markup from text, returning display text only.
func Plain(text string) string {
	return Flatten(Parse(text))
}

// NormalizeLists rewrites "-" and "*" list markers at line starts into a
// bullet glyph followed by one space. It is purely textual: applied to a
// run that sits inside a styled span, it rewrites the prefix in place
// without touching the style flags.
func NormalizeLists(s string) string {
	return bulletPrefix.ReplaceAllString(s, "• ")
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := markupLexer.Symbols()[name]
	if !ok {
		panic("markup: token " + name + " not defined")
	}
	return tt
}
