package imagepkg

import (
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPNG returns PNG bytes of a QR code for the given text.
func QRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// QRImage renders a borderless QR code in the given colours for composition.
func QRImage(text string, size int, fg, bg color.Color) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg
	q.DisableBorder = true
	return q.Image(size), nil
}
