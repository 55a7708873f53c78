package brand

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ColorTheme is one palette variant applied while painting a post.
type ColorTheme struct {
	Name      string     `json:"name"`
	Beige     color.RGBA `json:"-"`
	Blue      color.RGBA `json:"-"`
	BlueLight color.RGBA `json:"-"`
	Gold      color.RGBA `json:"-"`
	White     color.RGBA `json:"-"`
	Ink       color.RGBA `json:"-"`
}

const (
	ThemeClassic = "classic"
	ThemeDeep    = "deep"
	ThemeBright  = "bright"
)

// Hex returns the theme colours as #rrggbb strings, keyed by field name.
func (t ColorTheme) Hex() map[string]string {
	return map[string]string{
		"beige":     ToHex(t.Beige),
		"blue":      ToHex(t.Blue),
		"blueLight": ToHex(t.BlueLight),
		"gold":      ToHex(t.Gold),
		"white":     ToHex(t.White),
		"ink":       ToHex(t.Ink),
	}
}

func defaultThemes() map[string]ColorTheme {
	return map[string]ColorTheme{
		ThemeClassic: {
			Name:      ThemeClassic,
			Beige:     MustHex("#E8DCC4"),
			Blue:      MustHex("#0B2A5B"),
			BlueLight: MustHex("#3E6FB0"),
			Gold:      MustHex("#C9A227"),
			White:     MustHex("#FFFFFF"),
			Ink:       MustHex("#101820"),
		},
		ThemeDeep: {
			Name:      ThemeDeep,
			Beige:     MustHex("#D6C7A8"),
			Blue:      MustHex("#061A3A"),
			BlueLight: MustHex("#24508F"),
			Gold:      MustHex("#B8901C"),
			White:     MustHex("#F4F1EA"),
			Ink:       MustHex("#0A0F14"),
		},
		ThemeBright: {
			Name:      ThemeBright,
			Beige:     MustHex("#F3EAD7"),
			Blue:      MustHex("#1450A8"),
			BlueLight: MustHex("#5B92DE"),
			Gold:      MustHex("#E3B93A"),
			White:     MustHex("#FFFFFF"),
			Ink:       MustHex("#14202E"),
		},
	}
}

// ParseHex parses #RRGGBB or #RGB into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHex is ParseHex for compile-time palette literals.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
