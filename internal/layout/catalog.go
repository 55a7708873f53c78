package layout

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the immutable set of post layouts, keyed by id.
type Catalog struct {
	grid      GridConfig
	templates map[int]Template
	ids       []int
}

type catalogFile struct {
	Layouts []Template `yaml:"layouts"`
}

// LoadCatalog parses and validates the embedded layout catalog against grid.
func LoadCatalog(grid GridConfig) (*Catalog, error) {
	return ParseCatalog(catalogYAML, grid)
}

// ParseCatalog parses a YAML catalog document. Every template is validated
// before the catalog is returned.
func ParseCatalog(doc []byte, grid GridConfig) (*Catalog, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("catalog grid: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(doc, &f); err != nil {
		return nil, &LayoutFormatError{Reason: fmt.Sprintf("decode catalog: %v", err)}
	}
	if len(f.Layouts) == 0 {
		return nil, &LayoutFormatError{Reason: "catalog has no layouts"}
	}
	c := &Catalog{grid: grid, templates: make(map[int]Template, len(f.Layouts))}
	for _, t := range f.Layouts {
		if _, dup := c.templates[t.ID]; dup {
			return nil, formatErr(t.label(), "duplicate layout id %d", t.ID)
		}
		if err := t.Validate(grid); err != nil {
			return nil, err
		}
		c.templates[t.ID] = t
		c.ids = append(c.ids, t.ID)
	}
	sort.Ints(c.ids)
	return c, nil
}

// Grid is the geometry every template in the catalog was validated against.
func (c *Catalog) Grid() GridConfig { return c.grid }

// IDs returns layout ids in ascending order.
func (c *Catalog) IDs() []int {
	out := make([]int, len(c.ids))
	copy(out, c.ids)
	return out
}

// Get returns a copy of the template so callers cannot alter the catalog.
func (c *Catalog) Get(id int) (Template, bool) {
	t, ok := c.templates[id]
	if !ok {
		return Template{}, false
	}
	t.Blocks = append([]BlockSpec(nil), t.Blocks...)
	return t, true
}

// All returns every template in id order.
func (c *Catalog) All() []Template {
	out := make([]Template, 0, len(c.ids))
	for _, id := range c.ids {
		t, _ := c.Get(id)
		out = append(out, t)
	}
	return out
}
