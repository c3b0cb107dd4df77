// Package export packages rendered slides into distributable artifacts.
package export

import "image"

// Encoder turns a slide sequence into a single output artifact, such as a
// paginated document or an archive of images.
type Encoder interface {
	Encode(slides []*image.RGBA) ([]byte, error)
}
