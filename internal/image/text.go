package imagepkg

import (
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const lineSpacing = 1.25

// fitLines picks the largest size in [minSize, size] at which text wraps
// into maxW x maxH, sets that face on dc and returns the wrapped lines.
func fitLines(dc *gg.Context, face func(float64) font.Face, text string, maxW, maxH, size, minSize float64) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for ; size > minSize; size -= 2 {
		dc.SetFontFace(face(size))
		lines := dc.WordWrap(text, maxW)
		if widest(dc, lines) <= maxW && blockHeight(dc, len(lines)) <= maxH {
			return lines
		}
	}
	dc.SetFontFace(face(minSize))
	return dc.WordWrap(text, maxW)
}

func widest(dc *gg.Context, lines []string) float64 {
	var w float64
	for _, l := range lines {
		lw, _ := dc.MeasureString(l)
		w = math.Max(w, lw)
	}
	return w
}

func blockHeight(dc *gg.Context, n int) float64 {
	return float64(n) * dc.FontHeight() * lineSpacing
}

// drawLinesCentered draws lines as a block centred on (cx, cy).
func drawLinesCentered(dc *gg.Context, lines []string, cx, cy float64) {
	if len(lines) == 0 {
		return
	}
	lh := dc.FontHeight() * lineSpacing
	y := cy - blockHeight(dc, len(lines))/2 + lh/2
	for _, l := range lines {
		dc.DrawStringAnchored(l, cx, y, 0.5, 0.5)
		y += lh
	}
}
