package ui

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var (
	boldOnce sync.Once
	boldFont *opentype.Font
)

// boldFace returns Go Bold at the given point size, falling back to the
// fixed 7x13 face if the embedded font cannot be parsed.
func boldFace(size float64) font.Face {
	boldOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			log.Printf("ui: parse bold font: %v", err)
			return
		}
		boldFont = f
	})
	if boldFont == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("ui: bold face %.0fpt: %v", size, err)
		return basicfont.Face7x13
	}
	return face
}

// centeredX returns the x at which s, set in face, is centred on width.
func centeredX(face font.Face, s string, width int) int {
	adv := font.MeasureString(face, s).Ceil()
	return (width - adv) / 2
}
