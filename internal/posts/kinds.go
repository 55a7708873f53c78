package posts

import (
	"hash/fnv"

	"github.com/youruser/clubposts/internal/graphic"
	"github.com/youruser/clubposts/internal/layout"
)

type profile struct {
	eligible  []int
	overrides map[string]layout.RegionType
}

var profiles = map[graphic.Kind]profile{
	graphic.KindMatchday: {
		eligible: []int{1, 2, 4},
		overrides: map[string]layout.RegionType{
			layout.TagHero:    layout.RegionDualPlayer,
			layout.TagTrans:   layout.RegionTransparentTextGraphic,
			layout.TagGraphic: layout.RegionTextOverlay,
		},
	},
	graphic.KindTraining: {
		eligible: []int{3, 5, 6},
		overrides: map[string]layout.RegionType{
			layout.TagHero: layout.RegionAtmosphere,
			layout.TagLogo: layout.RegionWhiteLogo,
		},
	},
	graphic.KindSpotlight: {
		eligible: []int{1, 2, 3, 4, 5, 6},
		overrides: map[string]layout.RegionType{
			layout.TagLogo: layout.RegionCenteredLogo,
		},
	},
}

// Picker chooses one of the eligible layout ids for a post. key identifies
// the post (opponent and date, player and date...).
type Picker func(kind graphic.Kind, key string, eligible []int) int

// HashPicker is deterministic: the same kind and key always get the same
// layout.
func HashPicker(kind graphic.Kind, key string, eligible []int) int {
	if len(eligible) == 0 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(string(kind) + "|" + key))
	return eligible[int(h.Sum32()%uint32(len(eligible)))]
}

// EligibleLayouts lists the layout ids a kind may be drawn with.
func EligibleLayouts(kind graphic.Kind) []int {
	return append([]int(nil), profiles[kind].eligible...)
}
