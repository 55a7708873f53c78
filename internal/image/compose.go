package imagepkg

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/youruser/clubposts/internal/brand"
	"github.com/youruser/clubposts/internal/layout"
)

// ErrMissingImage is returned when a region needs a photo or logo that the
// content does not carry.
var ErrMissingImage = errors.New("missing image")

// Content is everything a post's regions may draw.
type Content struct {
	Theme        brand.ColorTheme
	Headline     string
	Subline      string
	Body         string
	VerticalText string
	Photo        image.Image
	SecondPhoto  image.Image
	Logo         image.Image
	WhiteLogo    image.Image
	LinkURL      string
}

type paintFunc func(dc *gg.Context, r image.Rectangle, c Content) error

// Painter draws resolved layout blocks, one routine per region type.
type Painter struct {
	brand    brand.Brand
	log      *zap.Logger
	routines map[layout.RegionType]paintFunc
}

func NewPainter(b brand.Brand, log *zap.Logger) *Painter {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Painter{brand: b, log: log}
	p.routines = map[layout.RegionType]paintFunc{
		layout.RegionBeigeText:              p.paintBeigeText,
		layout.RegionBlueTexture:            p.paintBlueTexture,
		layout.RegionPlayerImage:            p.paintPlayerImage,
		layout.RegionVerticalText:           p.paintVerticalText,
		layout.RegionPrimaryLogo:            p.paintPrimaryLogo,
		layout.RegionBlueText:               p.paintBlueText,
		layout.RegionWhiteLogo:              p.paintWhiteLogo,
		layout.RegionGraphicElement:         p.paintGraphicElement,
		layout.RegionDualPlayer:             p.paintDualPlayer,
		layout.RegionTextOverlay:            p.paintTextOverlay,
		layout.RegionAtmosphere:             p.paintAtmosphere,
		layout.RegionCenteredLogo:           p.paintCenteredLogo,
		layout.RegionTransparentWindow:      p.paintTransparentWindow,
		layout.RegionTransparentTextGraphic: p.paintTransparentTextGraphic,
	}
	return p
}

// Supports reports whether t has a draw routine.
func (p *Painter) Supports(t layout.RegionType) bool {
	_, ok := p.routines[t]
	return ok
}

// Paint draws one block into its rectangle. Unknown region types are
// skipped with a warning.
func (p *Painter) Paint(cv *Canvas, b layout.Block, c Content) error {
	fn, ok := p.routines[b.Type]
	if !ok {
		p.log.Warn("no painter for region", zap.String("type", string(b.Type)), zap.String("tag", b.Tag))
		return nil
	}
	dc := cv.context()
	r := b.Rect()

	// gg keeps the clip mask across Pop, so it is reset explicitly.
	dc.Push()
	defer func() {
		dc.ResetClip()
		dc.Pop()
	}()
	dc.ResetClip()
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Clip()
	if err := fn(dc, r, c); err != nil {
		return fmt.Errorf("paint %s at %v: %w", b.Type, r, err)
	}
	return nil
}

// Compose paints blocks in order; later blocks may overlay earlier ones.
func (p *Painter) Compose(cv *Canvas, blocks []layout.Block, c Content) error {
	for _, b := range blocks {
		if err := p.Paint(cv, b, c); err != nil {
			return err
		}
	}
	return nil
}

// RequiredImages reports which content images the given blocks draw.
func RequiredImages(blocks []layout.Block) (photo, second, logo bool) {
	for _, b := range blocks {
		switch b.Type {
		case layout.RegionPlayerImage, layout.RegionAtmosphere:
			photo = true
		case layout.RegionDualPlayer:
			photo, second = true, true
		case layout.RegionPrimaryLogo, layout.RegionCenteredLogo, layout.RegionWhiteLogo:
			logo = true
		}
	}
	return photo, second, logo
}
