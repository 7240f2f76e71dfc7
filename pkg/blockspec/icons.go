// SPDX-License-Identifier: MPL-2.0

package blockspec

import "strings"

var iconGlyphs = map[string]string{
	"@greenFlag": "⚑",
	"@turnRight": "↻",
	"@turnLeft":  "↺",
	"@addInput":  "▸",
	"@delInput":  "◂",
}

// IconGlyph returns the unicode glyph for an icon reference. The leading
// at-sign is optional.
func IconGlyph(name string) (string, bool) {
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	glyph, ok := iconGlyphs[name]
	return glyph, ok
}
