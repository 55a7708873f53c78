// Package brand holds the club's immutable visual identity: palettes,
// fonts and gradients consumed by the layout painter.
package brand

import (
	"image/color"
	"sort"
)

// Gradient is a two-stop linear gradient.
type Gradient struct {
	From color.RGBA
	To   color.RGBA
}

// Brand is built once at startup and passed by value to painters.
type Brand struct {
	ClubName     string
	Tagline      string
	DefaultTheme string
	Fonts        *Fonts

	themes map[string]ColorTheme
}

// Default returns the club brand with the three palette variants.
func Default() Brand {
	return Brand{
		ClubName:     "FC Harbour Blue",
		Tagline:      "Together since 1921",
		DefaultTheme: ThemeClassic,
		Fonts:        LoadFonts(),
		themes:       defaultThemes(),
	}
}

// WithDefaultTheme returns a copy using name as the fallback theme. Unknown
// names leave the brand unchanged.
func (b Brand) WithDefaultTheme(name string) Brand {
	if _, ok := b.themes[name]; ok {
		b.DefaultTheme = name
	}
	return b
}

// Theme returns the named variant, falling back to the default theme.
func (b Brand) Theme(name string) ColorTheme {
	if t, ok := b.themes[name]; ok {
		return t
	}
	if t, ok := b.themes[b.DefaultTheme]; ok {
		return t
	}
	return defaultThemes()[ThemeClassic]
}

// ThemeNames lists the available variants in a stable order.
func (b Brand) ThemeNames() []string {
	names := make([]string, 0, len(b.themes))
	for n := range b.themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// BlueFade runs from the theme blue into its lighter tone.
func BlueFade(t ColorTheme) Gradient {
	return Gradient{From: t.Blue, To: t.BlueLight}
}

// GoldFade runs from gold into beige.
func GoldFade(t ColorTheme) Gradient {
	return Gradient{From: t.Gold, To: t.Beige}
}
