package render

import (
	"image/color"
	"os"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/carousel/fonts"
)

// FontSet resolves (size, bold, italic) requests to concrete canvas font
// faces. Families load lazily and are cached; a variant whose configured
// file is missing or malformed silently degrades to the embedded fallback
// face, so resolution never fails.
type FontSet struct {
	cfg fonts.Config

	mu       sync.Mutex
	families map[canvas.FontStyle]*canvas.FontFamily
}

// NewFontSet creates a resolver over the given font configuration.
func NewFontSet(cfg fonts.Config) *FontSet {
	return &FontSet{
		cfg:      cfg,
		families: map[canvas.FontStyle]*canvas.FontFamily{},
	}
}

// Face returns a face for the requested variant. size is in pixels.
func (fs *FontSet) Face(size float64, bold, italic bool, clr color.Color) *canvas.FontFace {
	style := fontStyle(bold, italic)
	return fs.family(bold, italic).Face(toPt(size), clr, style, canvas.FontNormal)
}

func (fs *FontSet) family(bold, italic bool) *canvas.FontFamily {
	style := fontStyle(bold, italic)
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if family, ok := fs.families[style]; ok {
		return family
	}

	family := canvas.NewFontFamily("carousel")
	if !loadInto(family, fs.cfg.Path(bold, italic), style) {
		// The embedded data is known-good, so this load succeeds; a
		// failure here would mean a broken build, not a runtime
		// condition.
		family.LoadFont(fonts.Fallback(bold, italic), 0, style)
	}
	fs.families[style] = family
	return family
}

func loadInto(family *canvas.FontFamily, path string, style canvas.FontStyle) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return family.LoadFont(data, 0, style) == nil
}

func fontStyle(bold, italic bool) canvas.FontStyle {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	if italic {
		style |= canvas.FontItalic
	}
	return style
}
