package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/clubposts/internal/brand"
)

const pad = 24.0

func rectF(r image.Rectangle) (x, y, w, h float64) {
	return float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy())
}

func fill(dc *gg.Context, r image.Rectangle, c color.Color) {
	x, y, w, h := rectF(r)
	dc.SetColor(c)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

func fillGradient(dc *gg.Context, r image.Rectangle, g brand.Gradient) {
	x, y, w, h := rectF(r)
	grad := gg.NewLinearGradient(x, y, x+w, y+h)
	grad.AddColorStop(0, g.From)
	grad.AddColorStop(1, g.To)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// coverFit scales src to cover w x h and crops the overflow around the centre.
func coverFit(src image.Image, w, h int) image.Image {
	return imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
}

func (p *Painter) drawText(dc *gg.Context, r image.Rectangle, text string, size float64, c color.Color, display bool) {
	x, y, w, h := rectF(r)
	face := p.brand.Fonts.Body
	if display {
		face = p.brand.Fonts.Display
	}
	lines := fitLines(dc, face, text, w-2*pad, h-2*pad, size, 12)
	dc.SetColor(c)
	drawLinesCentered(dc, lines, x+w/2, y+h/2)
}

func (p *Painter) drawLogo(dc *gg.Context, r image.Rectangle, logo image.Image, padding int) error {
	if logo == nil {
		return ErrMissingImage
	}
	w, h := r.Dx()-2*padding, r.Dy()-2*padding
	if w <= 0 || h <= 0 {
		return nil
	}
	fitted := imaging.Fit(logo, w, h, imaging.Lanczos)
	b := fitted.Bounds()
	dc.DrawImage(fitted, r.Min.X+(r.Dx()-b.Dx())/2, r.Min.Y+(r.Dy()-b.Dy())/2)
	return nil
}

func (p *Painter) paintBeigeText(dc *gg.Context, r image.Rectangle, c Content) error {
	fill(dc, r, c.Theme.Beige)
	top, bottom := splitV(r, 0.45)
	p.drawText(dc, top, c.Headline, 64, c.Theme.Blue, true)
	p.drawText(dc, bottom, c.Body, 30, c.Theme.Ink, false)
	return nil
}

func (p *Painter) paintBlueTexture(dc *gg.Context, r image.Rectangle, c Content) error {
	fillGradient(dc, r, brand.BlueFade(c.Theme))
	x, y, w, h := rectF(r)
	dc.SetColor(withAlpha(c.Theme.White, 28))
	dc.SetLineWidth(3)
	for off := -h; off < w; off += 18 {
		dc.DrawLine(x+off, y+h, x+off+h, y)
	}
	dc.Stroke()
	return nil
}

func (p *Painter) paintPlayerImage(dc *gg.Context, r image.Rectangle, c Content) error {
	if c.Photo == nil {
		return ErrMissingImage
	}
	dc.DrawImage(coverFit(c.Photo, r.Dx(), r.Dy()), r.Min.X, r.Min.Y)
	return nil
}

func (p *Painter) paintDualPlayer(dc *gg.Context, r image.Rectangle, c Content) error {
	if c.Photo == nil {
		return ErrMissingImage
	}
	second := c.SecondPhoto
	if second == nil {
		second = imaging.FlipH(c.Photo)
	}
	left, right := splitH(r, 0.5)
	dc.DrawImage(coverFit(c.Photo, left.Dx(), left.Dy()), left.Min.X, left.Min.Y)
	dc.DrawImage(coverFit(second, right.Dx(), right.Dy()), right.Min.X, right.Min.Y)

	dc.SetColor(c.Theme.Gold)
	dc.SetLineWidth(6)
	dc.DrawLine(float64(right.Min.X), float64(r.Min.Y), float64(right.Min.X), float64(r.Max.Y))
	dc.Stroke()
	return nil
}

func (p *Painter) paintAtmosphere(dc *gg.Context, r image.Rectangle, c Content) error {
	if c.Photo == nil {
		return ErrMissingImage
	}
	img := coverFit(c.Photo, r.Dx(), r.Dy())
	img = imaging.AdjustBrightness(imaging.Blur(img, 3), -20)
	dc.DrawImage(img, r.Min.X, r.Min.Y)
	fill(dc, r, withAlpha(c.Theme.Blue, 90))
	return nil
}

func (p *Painter) paintVerticalText(dc *gg.Context, r image.Rectangle, c Content) error {
	fill(dc, r, c.Theme.Blue)
	x, y, w, h := rectF(r)
	cx, cy := x+w/2, y+h/2

	dc.Push()
	defer dc.Pop()
	dc.RotateAbout(gg.Radians(-90), cx, cy)
	// after rotation the usable width is the region height
	rotated := image.Rect(int(cx-h/2), int(cy-w/2), int(cx+h/2), int(cy+w/2))
	p.drawText(dc, rotated, c.VerticalText, 96, c.Theme.Gold, true)
	return nil
}

func (p *Painter) paintPrimaryLogo(dc *gg.Context, r image.Rectangle, c Content) error {
	fill(dc, r, c.Theme.White)
	return p.drawLogo(dc, r, c.Logo, 20)
}

func (p *Painter) paintBlueText(dc *gg.Context, r image.Rectangle, c Content) error {
	fill(dc, r, c.Theme.Blue)
	p.drawText(dc, r, c.Subline, 56, c.Theme.White, true)
	return nil
}

func (p *Painter) paintWhiteLogo(dc *gg.Context, r image.Rectangle, c Content) error {
	fill(dc, r, c.Theme.Blue)
	logo := c.WhiteLogo
	if logo == nil && c.Logo != nil {
		logo = whiteSilhouette(c.Logo)
	}
	return p.drawLogo(dc, r, logo, 24)
}

func (p *Painter) paintCenteredLogo(dc *gg.Context, r image.Rectangle, c Content) error {
	fillGradient(dc, r, brand.GoldFade(c.Theme))
	return p.drawLogo(dc, r, c.Logo, r.Dy()/6)
}

func (p *Painter) paintGraphicElement(dc *gg.Context, r image.Rectangle, c Content) error {
	fill(dc, r, c.Theme.Blue)
	x, y, w, h := rectF(r)
	dc.SetColor(c.Theme.Gold)
	step := h / 4
	for i := 0.0; i < 3; i++ {
		ox := x + pad + i*step*0.8
		dc.MoveTo(ox, y+h*0.2)
		dc.LineTo(ox+step*0.6, y+h/2)
		dc.LineTo(ox, y+h*0.8)
		dc.LineTo(ox+step*0.3, y+h*0.8)
		dc.LineTo(ox+step*0.9, y+h/2)
		dc.LineTo(ox+step*0.3, y+h*0.2)
		dc.ClosePath()
	}
	dc.Fill()

	if c.LinkURL == "" {
		return nil
	}
	size := int(min(w, h) - 2*pad)
	if size <= 0 {
		return nil
	}
	qr, err := QRImage(c.LinkURL, size, c.Theme.Blue, c.Theme.White)
	if err != nil {
		return err
	}
	dc.DrawImage(qr, int(x+w)-size-int(pad), int(y+(h-float64(size))/2))
	return nil
}

func (p *Painter) paintTextOverlay(dc *gg.Context, r image.Rectangle, c Content) error {
	fill(dc, r, withAlpha(c.Theme.Blue, 215))
	top, bottom := splitV(r, 0.5)
	p.drawText(dc, top, c.Headline, 56, c.Theme.Gold, true)
	p.drawText(dc, bottom, c.Body, 28, c.Theme.White, false)
	return nil
}

func (p *Painter) paintTransparentWindow(dc *gg.Context, r image.Rectangle, c Content) error {
	clearRect(dc, r)
	x, y, w, h := rectF(r)
	dc.SetColor(c.Theme.Gold)
	dc.SetLineWidth(4)
	dc.DrawRectangle(x+2, y+2, w-4, h-4)
	dc.Stroke()
	return nil
}

func (p *Painter) paintTransparentTextGraphic(dc *gg.Context, r image.Rectangle, c Content) error {
	clearRect(dc, r)
	// ink outline under the gold text
	for _, d := range [][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
		p.drawText(dc, r.Add(image.Pt(d[0], d[1])), c.Subline, 64, c.Theme.Ink, true)
	}
	p.drawText(dc, r, c.Subline, 64, c.Theme.Gold, true)
	return nil
}

func splitV(r image.Rectangle, frac float64) (top, bottom image.Rectangle) {
	mid := r.Min.Y + int(float64(r.Dy())*frac)
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X, mid), image.Rect(r.Min.X, mid, r.Max.X, r.Max.Y)
}

func splitH(r image.Rectangle, frac float64) (left, right image.Rectangle) {
	mid := r.Min.X + int(float64(r.Dx())*frac)
	return image.Rect(r.Min.X, r.Min.Y, mid, r.Max.Y), image.Rect(mid, r.Min.Y, r.Max.X, r.Max.Y)
}

// whiteSilhouette keeps alpha and turns every pixel white.
func whiteSilhouette(src image.Image) image.Image {
	return imaging.AdjustFunc(src, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: c.A}
	})
}
