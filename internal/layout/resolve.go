package layout

import (
	"image"
	"sort"
)

// Block is a resolved pixel rectangle tagged with its region type.
type Block struct {
	Tag  string     `json:"tag"`
	Type RegionType `json:"type"`
	X    int        `json:"x"`
	Y    int        `json:"y"`
	W    int        `json:"w"`
	H    int        `json:"h"`
}

// Rect returns the block as an image.Rectangle.
func (b Block) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// ResolveOption tweaks Resolve.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	overrides map[string]RegionType
}

// WithOverrides paints the given tags with a different region type.
func WithOverrides(overrides map[string]RegionType) ResolveOption {
	return func(o *resolveOptions) { o.overrides = overrides }
}

// Resolve validates t and converts its blocks into pixel rectangles, ordered
// by the row-major position of each block's top-left cell.
func Resolve(t Template, grid GridConfig, opts ...ResolveOption) ([]Block, error) {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := grid.Validate(); err != nil {
		return nil, &LayoutFormatError{Template: t.label(), Reason: err.Error()}
	}
	if err := t.Validate(grid); err != nil {
		return nil, err
	}

	specs := make([]BlockSpec, len(t.Blocks))
	copy(specs, t.Blocks)
	sort.SliceStable(specs, func(i, j int) bool {
		if specs[i].Row != specs[j].Row {
			return specs[i].Row < specs[j].Row
		}
		return specs[i].Col < specs[j].Col
	})

	blocks := make([]Block, 0, len(specs))
	for _, s := range specs {
		typ := RegionForTag(s.Tag)
		if r, ok := o.overrides[s.Tag]; ok {
			typ = r
		}
		blocks = append(blocks, Block{
			Tag:  s.Tag,
			Type: typ,
			X:    s.Col * grid.CellWidth,
			Y:    s.Row * grid.CellHeight,
			W:    s.ColSpan * grid.CellWidth,
			H:    s.RowSpan * grid.CellHeight,
		})
	}
	return blocks, nil
}

// ResolveRows parses the row-string form and resolves it in one step.
func ResolveRows(rows []string, grid GridConfig, opts ...ResolveOption) ([]Block, error) {
	t, err := ParseRows(0, rows, grid)
	if err != nil {
		return nil, err
	}
	return Resolve(t, grid, opts...)
}
