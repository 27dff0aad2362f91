package css

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
)

// FallbackColor replaces any color value that cannot be parsed.
const FallbackColor = "#000000"

var hexPattern = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6})$`)

// ParseColor parses a CSS color keyword, #rgb or #rrggbb into canonical
// lowercase #rrggbb.
func ParseColor(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
	}
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	hex := m[1]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + hex, true
}
