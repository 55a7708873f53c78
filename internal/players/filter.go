package players

import "strings"

type FilterOptions struct {
	Positions  []string `json:"positions"`
	Teams      []string `json:"teams"`
	FreeWords  string   `json:"free_words"`
	ActiveOnly bool     `json:"active_only"`
}

func containsFold(hay []string, needle string) bool {
	for _, h := range hay {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

// Filter returns the players matching every set option. FreeWords matches
// each whitespace-separated keyword against name, position and nationality.
func Filter(players []Player, opt FilterOptions) []Player {
	var out []Player
	for _, p := range players {
		if opt.ActiveOnly && !p.Active {
			continue
		}
		if len(opt.Positions) > 0 && !containsFold(opt.Positions, p.Position) {
			continue
		}
		if len(opt.Teams) > 0 && !containsFold(opt.Teams, p.Team) {
			continue
		}
		if opt.FreeWords != "" {
			hay := strings.ToLower(p.Name + " " + p.Position + " " + p.Nationality)
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !strings.Contains(hay, strings.ToLower(k)) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
