package render

// Canvas units are nominal millimetres, but the renderer treats one unit
// as one output pixel and rasterises at one dot per unit. Font faces are
// created in points, so pixel sizes convert at the standard pt/mm scale.
const (
	ptPerPx = 72.0 / 25.4
	pxPerPt = 25.4 / 72.0
)

// toPt converts a pixel size to the point size producing glyphs of that
// many canvas units.
func toPt(px float64) float64 { return px * ptPerPx }

// toPx is the inverse of toPt.
func toPx(pt float64) float64 { return pt * pxPerPt }
