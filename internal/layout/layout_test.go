package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Row-string form of the catalog, kept for the legacy parser.
var legacyRows = map[int][]string{
	1: {
		"logo     blue     blue    vert",
		"hero     hero     beige   vert",
		"hero     hero     beige   vert",
		"hero     hero     beige   vert",
		"bluetext bluetext graphic graphic",
		"trans    trans    graphic graphic",
	},
	2: {
		"blue  blue  blue  logo",
		"hero  hero  hero  vert",
		"hero  hero  hero  vert",
		"hero  hero  hero  vert",
		"beige beige beige vert",
		"beige beige beige trans",
	},
	3: {
		"vert hero     hero     hero",
		"vert hero     hero     hero",
		"vert hero     hero     hero",
		"vert bluetext bluetext logo",
		"beige beige   beige    beige",
		"beige beige   beige    beige",
	},
	4: {
		"logo     trans    trans    trans",
		"beige    hero     hero     blue",
		"beige    hero     hero     blue",
		"beige    hero     hero     blue",
		"beige    graphic  graphic  blue",
		"bluetext bluetext bluetext bluetext",
	},
	5: {
		"hero     hero     vert     blue",
		"hero     hero     vert     blue",
		"hero     hero     vert     logo",
		"bluetext bluetext bluetext bluetext",
		"graphic  graphic  beige    beige",
		"graphic  graphic  beige    beige",
	},
	6: {
		"blue    blue    logo  logo",
		"hero    hero    hero  hero",
		"hero    hero    hero  hero",
		"hero    hero    hero  hero",
		"trans   trans   beige beige",
		"graphic graphic beige beige",
	},
}

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(DefaultGrid())
	require.NoError(t, err)
	return c
}

func TestGridConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultGrid().Validate())

	g := DefaultGrid()
	g.CellWidth = 260
	assert.Error(t, g.Validate())

	g = DefaultGrid()
	g.Rows = 5
	assert.Error(t, g.Validate())
}

func TestCatalog_HasSixLayouts(t *testing.T) {
	c := loadCatalog(t)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, c.IDs())
	assert.Len(t, c.All(), 6)

	_, ok := c.Get(7)
	assert.False(t, ok)
}

func TestCatalog_GetReturnsCopy(t *testing.T) {
	c := loadCatalog(t)
	t1, _ := c.Get(1)
	t1.Blocks[0].Tag = "mutated"

	again, _ := c.Get(1)
	assert.Equal(t, TagLogo, again.Blocks[0].Tag)
}

func TestResolve_TilesCanvas(t *testing.T) {
	grid := DefaultGrid()
	c := loadCatalog(t)

	for _, tmpl := range c.All() {
		t.Run(tmpl.Name, func(t *testing.T) {
			blocks, err := Resolve(tmpl, grid)
			require.NoError(t, err)

			covered := make([][]int, grid.CanvasHeight/grid.CellHeight)
			for r := range covered {
				covered[r] = make([]int, grid.CanvasWidth/grid.CellWidth)
			}
			area := 0
			for _, b := range blocks {
				assert.Positive(t, b.W)
				assert.Positive(t, b.H)
				assert.Zero(t, b.X%grid.CellWidth)
				assert.Zero(t, b.Y%grid.CellHeight)
				assert.LessOrEqual(t, b.X+b.W, grid.CanvasWidth)
				assert.LessOrEqual(t, b.Y+b.H, grid.CanvasHeight)
				area += b.W * b.H
				for y := b.Y; y < b.Y+b.H; y += grid.CellHeight {
					for x := b.X; x < b.X+b.W; x += grid.CellWidth {
						covered[y/grid.CellHeight][x/grid.CellWidth]++
					}
				}
			}
			assert.Equal(t, grid.CanvasWidth*grid.CanvasHeight, area)
			for r := range covered {
				for c := range covered[r] {
					assert.Equal(t, 1, covered[r][c], "cell (%d,%d)", c, r)
				}
			}
		})
	}
}

func TestResolve_DistinctTagsMatchRegionTypes(t *testing.T) {
	c := loadCatalog(t)
	for _, tmpl := range c.All() {
		blocks, err := Resolve(tmpl, DefaultGrid())
		require.NoError(t, err)

		tags := map[string]bool{}
		types := map[RegionType]bool{}
		for _, b := range blocks {
			tags[b.Tag] = true
			types[b.Type] = true
		}
		assert.Equal(t, len(tags), len(types), tmpl.Name)
		assert.Equal(t, len(tmpl.Blocks), len(blocks), tmpl.Name)
	}
}

func TestResolveRows_Layout1Hero(t *testing.T) {
	blocks, err := ResolveRows(legacyRows[1], DefaultGrid())
	require.NoError(t, err)

	var hero *Block
	for i := range blocks {
		if blocks[i].Tag == TagHero {
			hero = &blocks[i]
		}
	}
	require.NotNil(t, hero)
	assert.Equal(t, Block{Tag: TagHero, Type: RegionPlayerImage, X: 0, Y: 180, W: 540, H: 540}, *hero)
}

func TestParseRows_MatchesCatalog(t *testing.T) {
	grid := DefaultGrid()
	c := loadCatalog(t)

	for id, rows := range legacyRows {
		parsed, err := ParseRows(id, rows, grid)
		require.NoError(t, err, "layout %d", id)

		want, _ := c.Get(id)
		fromRows, err := Resolve(parsed, grid)
		require.NoError(t, err)
		fromCatalog, err := Resolve(want, grid)
		require.NoError(t, err)
		assert.Equal(t, fromCatalog, fromRows, "layout %d", id)

		assert.Equal(t, parsed.Rows(grid), want.Rows(grid))
	}
}

func TestResolve_OrderIsRowMajor(t *testing.T) {
	blocks, err := ResolveRows(legacyRows[1], DefaultGrid())
	require.NoError(t, err)

	var tags []string
	for _, b := range blocks {
		tags = append(tags, b.Tag)
	}
	assert.Equal(t, []string{"logo", "blue", "vert", "hero", "beige", "bluetext", "graphic", "trans"}, tags)
}

func TestResolve_UnknownTagPassesThrough(t *testing.T) {
	rows := append([]string(nil), legacyRows[2]...)
	rows[5] = "beige beige beige sticker"

	blocks, err := ResolveRows(rows, DefaultGrid())
	require.NoError(t, err)
	last := blocks[len(blocks)-1]
	assert.Equal(t, "sticker", last.Tag)
	assert.Equal(t, RegionType("sticker"), last.Type)
}

func TestResolve_Overrides(t *testing.T) {
	blocks, err := ResolveRows(legacyRows[1], DefaultGrid(), WithOverrides(map[string]RegionType{
		TagHero: RegionDualPlayer,
	}))
	require.NoError(t, err)
	for _, b := range blocks {
		if b.Tag == TagHero {
			assert.Equal(t, RegionDualPlayer, b.Type)
		}
		if b.Tag == TagLogo {
			assert.Equal(t, RegionPrimaryLogo, b.Type)
		}
	}
}

func TestParseRows_Malformed(t *testing.T) {
	grid := DefaultGrid()
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", legacyRows[1][:5]},
		{"short row", append(append([]string(nil), legacyRows[1][:5]...), "trans trans graphic")},
		{"long row", append(append([]string(nil), legacyRows[1][:5]...), "trans trans graphic graphic x")},
		{"non rectangular", []string{
			"hero hero blue blue",
			"hero blue blue blue",
			"beige beige beige beige",
			"beige beige beige beige",
			"vert vert vert vert",
			"logo logo logo logo",
		}},
		{"split tag", []string{
			"hero hero blue blue",
			"logo logo logo logo",
			"hero hero blue blue",
			"beige beige beige beige",
			"vert vert vert vert",
			"trans trans trans trans",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRows(9, tt.rows, grid)
			require.Error(t, err)
			var lfe *LayoutFormatError
			assert.True(t, errors.As(err, &lfe))
		})
	}
}

func TestTemplate_Validate(t *testing.T) {
	grid := DefaultGrid()
	full := BlockSpec{Tag: "hero", Col: 0, Row: 0, ColSpan: 4, RowSpan: 6}

	assert.NoError(t, Template{ID: 1, Blocks: []BlockSpec{full}}.Validate(grid))

	tests := []struct {
		name   string
		blocks []BlockSpec
	}{
		{"empty", nil},
		{"gap", []BlockSpec{{Tag: "hero", ColSpan: 4, RowSpan: 5}}},
		{"overflow", []BlockSpec{{Tag: "hero", Col: 1, ColSpan: 4, RowSpan: 6}}},
		{"overlap", []BlockSpec{full, {Tag: "logo", ColSpan: 1, RowSpan: 1}}},
		{"duplicate tag", []BlockSpec{
			{Tag: "hero", ColSpan: 4, RowSpan: 3},
			{Tag: "hero", Row: 3, ColSpan: 4, RowSpan: 3},
		}},
		{"zero span", []BlockSpec{{Tag: "hero", ColSpan: 0, RowSpan: 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Template{ID: 2, Blocks: tt.blocks}.Validate(grid)
			var lfe *LayoutFormatError
			assert.ErrorAs(t, err, &lfe)
		})
	}
}

func TestParseCatalog_Rejects(t *testing.T) {
	grid := DefaultGrid()

	_, err := ParseCatalog([]byte("layouts: []"), grid)
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("layouts: [{id: 1, blocks: [{tag: hero, col: 0, row: 0, cols: 4, rows: 5}]}]"), grid)
	var lfe *LayoutFormatError
	assert.ErrorAs(t, err, &lfe)

	dup := `
layouts:
  - {id: 1, blocks: [{tag: hero, col: 0, row: 0, cols: 4, rows: 6}]}
  - {id: 1, blocks: [{tag: hero, col: 0, row: 0, cols: 4, rows: 6}]}
`
	_, err = ParseCatalog([]byte(dup), grid)
	assert.ErrorAs(t, err, &lfe)
}

func TestRegionForTag(t *testing.T) {
	assert.Equal(t, RegionPlayerImage, RegionForTag(TagHero))
	assert.Equal(t, RegionTransparentWindow, RegionForTag(TagTrans))
	assert.Equal(t, RegionType("banner"), RegionForTag("banner"))
	assert.Len(t, AllRegionTypes(), 14)
}
