package compose

import (
	"encoding/json"
	"fmt"
	"image"
	"io"

	"github.com/ByLCY/carousel/binding"
)

// MaxContentSlides caps the deck length, title slide excluded.
const MaxContentSlides = 9

// Content holds one content slide's text pair. Both fields accept the
// inline markup understood by the markup package.
type Content struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Deck is a full carousel: a title slide followed by content slides.
type Deck struct {
	Title  string    `json:"title"`
	Slides []Content `json:"slides"`
}

// LoadDeck decodes a deck from its JSON form.
func LoadDeck(r io.Reader) (*Deck, error) {
	var deck Deck
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&deck); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if len(deck.Slides) > MaxContentSlides {
		return nil, fmt.Errorf("deck has %d content slides, limit is %d", len(deck.Slides), MaxContentSlides)
	}
	return &deck, nil
}

// Bind interpolates ${path} placeholders in all deck text against data.
func (d *Deck) Bind(data any) {
	d.Title = binding.Interpolate(d.Title, data)
	for i := range d.Slides {
		d.Slides[i].Heading = binding.Interpolate(d.Slides[i].Heading, data)
		d.Slides[i].Content = binding.Interpolate(d.Slides[i].Content, data)
	}
}

// Render produces one image per slide, title first. Each slide mutates
// only its own canvas; the shared background and fonts are read-only.
func (c *Composer) Render(deck *Deck) []*image.RGBA {
	images := make([]*image.RGBA, 0, 1+len(deck.Slides))
	images = append(images, c.TitleSlide(deck.Title))
	for _, slide := range deck.Slides {
		images = append(images, c.ContentSlide(slide.Heading, slide.Content))
	}
	return images
}
