package players

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadRosterCSV reads a roster export. Columns are matched by header name,
// so extra or reordered columns are fine; "id" and "name" are required.
func LoadRosterCSV(path string) ([]Player, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"id", "name"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv %s: missing %q column", path, required)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Player{}
	for i, row := range rows[1:] {
		p := Player{
			ID:          get(row, "id"),
			Name:        get(row, "name"),
			Position:    get(row, "position"),
			Team:        get(row, "team"),
			PhotoURL:    get(row, "photo_url"),
			Nationality: get(row, "nationality"),
			Active:      true,
		}
		if p.ID == "" {
			continue
		}
		if n := get(row, "number"); n != "" && n != "-" {
			v, err := strconv.Atoi(n)
			if err != nil {
				return nil, fmt.Errorf("csv %s line %d: bad number %q", path, i+2, n)
			}
			p.Number = v
		}
		switch strings.ToLower(get(row, "active")) {
		case "false", "0", "no":
			p.Active = false
		}
		out = append(out, p)
	}
	return out, nil
}
