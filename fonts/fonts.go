// Package fonts locates font files for the regular, bold, italic and
// bold-italic variants and carries embedded fallback faces for platforms
// without a known font table.
package fonts

import (
	"runtime"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Config points at the font files backing each style variant. An empty
// path means "use the embedded fallback face for this variant". The zero
// value is valid and renders everything with the embedded faces.
type Config struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// Detect builds a Config from well-known system font locations for the
// current platform. Platforms without a known table get the all-fallback
// zero config.
func Detect() Config {
	switch runtime.GOOS {
	case "darwin":
		return Config{
			Regular:    "/System/Library/Fonts/Helvetica.ttc",
			Bold:       "/System/Library/Fonts/Helvetica-Bold.ttf",
			Italic:     "/System/Library/Fonts/Helvetica-Oblique.ttf",
			BoldItalic: "/System/Library/Fonts/Helvetica-BoldOblique.ttf",
		}
	case "windows":
		return Config{
			Regular:    `C:\Windows\Fonts\arial.ttf`,
			Bold:       `C:\Windows\Fonts\arialbd.ttf`,
			Italic:     `C:\Windows\Fonts\ariali.ttf`,
			BoldItalic: `C:\Windows\Fonts\arialbi.ttf`,
		}
	default:
		return Config{}
	}
}

// Path returns the configured file for a variant; it may be empty.
func (c Config) Path(bold, italic bool) string {
	switch {
	case bold && italic:
		return c.BoldItalic
	case bold:
		return c.Bold
	case italic:
		return c.Italic
	default:
		return c.Regular
	}
}

// Fallback returns the embedded face data for a variant. The data ships
// with the binary, so it always succeeds.
func Fallback(bold, italic bool) []byte {
	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}
