package imagepkg

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/youruser/clubposts/internal/layout"
)

// Canvas is the drawing surface of one post. A canvas is owned by a single
// generation call at a time.
type Canvas struct {
	dc      *gg.Context
	grid    layout.GridConfig
	touched bool
}

// NewCanvas returns a transparent canvas sized to grid.
func NewCanvas(grid layout.GridConfig) *Canvas {
	return &Canvas{dc: gg.NewContext(grid.CanvasWidth, grid.CanvasHeight), grid: grid}
}

func (c *Canvas) Grid() layout.GridConfig { return c.grid }

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Image returns the backing image. It is not a copy.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Touched reports whether anything has been painted since creation or Reset.
func (c *Canvas) Touched() bool { return c.touched }

// Reset clears the canvas back to fully transparent.
func (c *Canvas) Reset() {
	clearRect(c.dc, c.dc.Image().Bounds())
	c.touched = false
}

func (c *Canvas) context() *gg.Context {
	c.touched = true
	return c.dc
}

// clearRect sets r to transparent, bypassing gg's source-over compositing.
func clearRect(dc *gg.Context, r image.Rectangle) {
	if dst, ok := dc.Image().(draw.Image); ok {
		draw.Draw(dst, r, image.Transparent, image.Point{}, draw.Src)
	}
}
