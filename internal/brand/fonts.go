package brand

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts hands out sized faces of the display (bold) and body fonts.
// Every call returns a fresh face since font.Face is not safe for
// concurrent use.
type Fonts struct {
	display *opentype.Font
	body    *opentype.Font
}

// LoadFonts parses the embedded Go fonts. A font that fails to parse is left
// nil and Face falls back to basicfont.
func LoadFonts() *Fonts {
	f := &Fonts{}
	if d, err := opentype.Parse(gobold.TTF); err == nil {
		f.display = d
	}
	if b, err := opentype.Parse(goregular.TTF); err == nil {
		f.body = b
	}
	return f
}

// Display returns the headline face at size points.
func (f *Fonts) Display(size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return f.face(f.display, size)
}

// Body returns the body-copy face at size points.
func (f *Fonts) Body(size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return f.face(f.body, size)
}

func (f *Fonts) face(src *opentype.Font, size float64) font.Face {
	if src == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
