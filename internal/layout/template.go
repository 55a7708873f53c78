package layout

import (
	"fmt"
	"strings"
)

// BlockSpec places one tag on the grid, in cell units.
type BlockSpec struct {
	Tag     string `yaml:"tag" json:"tag"`
	Col     int    `yaml:"col" json:"col"`
	Row     int    `yaml:"row" json:"row"`
	ColSpan int    `yaml:"cols" json:"col_span"`
	RowSpan int    `yaml:"rows" json:"row_span"`
}

// Template is a declarative layout: a list of non-overlapping blocks that
// together cover the whole grid.
type Template struct {
	ID     int         `yaml:"id" json:"id"`
	Name   string      `yaml:"name" json:"name"`
	Blocks []BlockSpec `yaml:"blocks" json:"blocks"`
}

func (t Template) label() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("layout-%d", t.ID)
}

// Validate checks that every block lies inside grid, no tag repeats, no two
// blocks overlap and every cell is covered.
func (t Template) Validate(grid GridConfig) error {
	id := t.label()
	if len(t.Blocks) == 0 {
		return formatErr(id, "no blocks")
	}
	owner := make([][]string, grid.Rows)
	for r := range owner {
		owner[r] = make([]string, grid.Columns)
	}
	seen := map[string]bool{}
	for _, b := range t.Blocks {
		if b.Tag == "" {
			return formatErr(id, "block at (%d,%d) has no tag", b.Col, b.Row)
		}
		if seen[b.Tag] {
			return formatErr(id, "tag %q declared twice", b.Tag)
		}
		seen[b.Tag] = true
		if b.ColSpan < 1 || b.RowSpan < 1 {
			return formatErr(id, "tag %q has empty span %dx%d", b.Tag, b.ColSpan, b.RowSpan)
		}
		if b.Col < 0 || b.Row < 0 || b.Col+b.ColSpan > grid.Columns || b.Row+b.RowSpan > grid.Rows {
			return formatErr(id, "tag %q exceeds the %dx%d grid", b.Tag, grid.Columns, grid.Rows)
		}
		for r := b.Row; r < b.Row+b.RowSpan; r++ {
			for c := b.Col; c < b.Col+b.ColSpan; c++ {
				if prev := owner[r][c]; prev != "" {
					return formatErr(id, "tags %q and %q overlap at cell (%d,%d)", prev, b.Tag, c, r)
				}
				owner[r][c] = b.Tag
			}
		}
	}
	for r := range owner {
		for c, tag := range owner[r] {
			if tag == "" {
				return formatErr(id, "cell (%d,%d) is not covered", c, r)
			}
		}
	}
	return nil
}

// ParseRows converts the row-string form ("hero hero beige vert", one string
// per grid row) into a Template. Cells sharing a tag must form one filled
// rectangle.
func ParseRows(id int, rows []string, grid GridConfig) (Template, error) {
	t := Template{ID: id}
	label := t.label()
	if len(rows) != grid.Rows {
		return Template{}, formatErr(label, "expected %d rows, got %d", grid.Rows, len(rows))
	}

	type extent struct {
		minC, minR, maxC, maxR, cells int
	}
	extents := map[string]*extent{}
	var order []string
	for r, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) != grid.Columns {
			return Template{}, formatErr(label, "row %d: expected %d tokens, got %d", r, grid.Columns, len(tokens))
		}
		for c, tag := range tokens {
			e, ok := extents[tag]
			if !ok {
				e = &extent{minC: c, minR: r, maxC: c, maxR: r}
				extents[tag] = e
				order = append(order, tag)
			}
			e.minC = min(e.minC, c)
			e.minR = min(e.minR, r)
			e.maxC = max(e.maxC, c)
			e.maxR = max(e.maxR, r)
			e.cells++
		}
	}

	for _, tag := range order {
		e := extents[tag]
		w, h := e.maxC-e.minC+1, e.maxR-e.minR+1
		if w*h != e.cells {
			return Template{}, formatErr(label, "tag %q does not form a rectangle", tag)
		}
		t.Blocks = append(t.Blocks, BlockSpec{Tag: tag, Col: e.minC, Row: e.minR, ColSpan: w, RowSpan: h})
	}
	return t, t.Validate(grid)
}

// Rows renders t back to the row-string form.
func (t Template) Rows(grid GridConfig) []string {
	cells := make([][]string, grid.Rows)
	for r := range cells {
		cells[r] = make([]string, grid.Columns)
		for c := range cells[r] {
			cells[r][c] = "-"
		}
	}
	for _, b := range t.Blocks {
		for r := b.Row; r < b.Row+b.RowSpan && r < grid.Rows; r++ {
			for c := b.Col; c < b.Col+b.ColSpan && c < grid.Columns; c++ {
				cells[r][c] = b.Tag
			}
		}
	}
	out := make([]string, grid.Rows)
	for r := range cells {
		out[r] = strings.Join(cells[r], " ")
	}
	return out
}
