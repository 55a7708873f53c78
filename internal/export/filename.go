package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/youruser/clubposts/internal/graphic"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeName lowercases s and collapses every run of characters outside
// [a-z0-9] into a single underscore.
func SanitizeName(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "_"), "_")
}

// FileName returns <number>_<sanitizedName>_<YYYY-MM-DD>.png. Graphics
// without a player use number 0 and the post kind as name.
func FileName(g graphic.Generated) string {
	name := SanitizeName(g.PlayerName)
	if name == "" {
		name = SanitizeName(string(g.Kind))
	}
	if name == "" {
		name = "post"
	}
	return fmt.Sprintf("%d_%s_%s.png", g.Number, name, g.GeneratedAt.Format("2006-01-02"))
}
