// Package layout defines the 4x6 post grid, the six-template catalog and
// the resolver that turns a template into pixel rectangles.
package layout

import "fmt"

// GridConfig is the fixed geometry of every post canvas.
type GridConfig struct {
	Columns      int `json:"columns"`
	Rows         int `json:"rows"`
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`
	CellWidth    int `json:"cell_width"`
	CellHeight   int `json:"cell_height"`
}

// DefaultGrid is the 1080x1080 grid all catalog templates are drawn for.
func DefaultGrid() GridConfig {
	return GridConfig{
		Columns:      4,
		Rows:         6,
		CanvasWidth:  1080,
		CanvasHeight: 1080,
		CellWidth:    270,
		CellHeight:   180,
	}
}

// Validate checks that the cells tile the canvas exactly.
func (g GridConfig) Validate() error {
	if g.Columns <= 0 || g.Rows <= 0 {
		return fmt.Errorf("grid must have positive dimensions, got %dx%d", g.Columns, g.Rows)
	}
	if g.CellWidth*g.Columns != g.CanvasWidth {
		return fmt.Errorf("cell width %d x %d columns != canvas width %d", g.CellWidth, g.Columns, g.CanvasWidth)
	}
	if g.CellHeight*g.Rows != g.CanvasHeight {
		return fmt.Errorf("cell height %d x %d rows != canvas height %d", g.CellHeight, g.Rows, g.CanvasHeight)
	}
	return nil
}
