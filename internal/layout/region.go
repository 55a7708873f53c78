package layout

// RegionType names the draw routine a block is painted with.
type RegionType string

const (
	RegionBeigeText              RegionType = "beige-text"
	RegionBlueTexture            RegionType = "blue-texture"
	RegionPlayerImage            RegionType = "player-image"
	RegionVerticalText           RegionType = "vertical-text"
	RegionPrimaryLogo            RegionType = "primary-logo"
	RegionBlueText               RegionType = "blue-text"
	RegionWhiteLogo              RegionType = "white-logo"
	RegionGraphicElement         RegionType = "graphic-element"
	RegionDualPlayer             RegionType = "dual-player"
	RegionTextOverlay            RegionType = "text-overlay"
	RegionAtmosphere             RegionType = "atmosphere"
	RegionCenteredLogo           RegionType = "centered-logo"
	RegionTransparentWindow      RegionType = "transparent-window"
	RegionTransparentTextGraphic RegionType = "transparent-text-graphic"
)

// Template tags.
const (
	TagHero     = "hero"
	TagBlue     = "blue"
	TagBeige    = "beige"
	TagVert     = "vert"
	TagLogo     = "logo"
	TagTrans    = "trans"
	TagBlueText = "bluetext"
	TagGraphic  = "graphic"
)

var tagRegions = map[string]RegionType{
	TagHero:     RegionPlayerImage,
	TagBlue:     RegionBlueTexture,
	TagBeige:    RegionBeigeText,
	TagVert:     RegionVerticalText,
	TagLogo:     RegionPrimaryLogo,
	TagTrans:    RegionTransparentWindow,
	TagBlueText: RegionBlueText,
	TagGraphic:  RegionGraphicElement,
}

// AllRegionTypes lists every region type that has a draw routine.
func AllRegionTypes() []RegionType {
	return []RegionType{
		RegionBeigeText, RegionBlueTexture, RegionPlayerImage, RegionVerticalText,
		RegionPrimaryLogo, RegionBlueText, RegionWhiteLogo, RegionGraphicElement,
		RegionDualPlayer, RegionTextOverlay, RegionAtmosphere, RegionCenteredLogo,
		RegionTransparentWindow, RegionTransparentTextGraphic,
	}
}

// RegionForTag maps a template tag to its region type. Unknown tags pass
// through unchanged.
func RegionForTag(tag string) RegionType {
	if r, ok := tagRegions[tag]; ok {
		return r
	}
	return RegionType(tag)
}
