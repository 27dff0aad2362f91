package css

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
)

var (
	functionPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\(.*\)$`)
	pixelPattern    = regexp.MustCompile(`^(-?(?:\d+\.?\d*|\.\d+))(?:px)?$`)
)

// ParseInline parses the text of an inline style attribute into a raw Style.
// Property names are camelCased, plain numbers (optionally in px) become
// numbers, functional notations become scripts and margin/padding shorthands
// become sub-property mappings.
func ParseInline(text string) (Style, error) {
	// the parser only completes a declaration on ';' or '}'
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	style := make(Style, len(decls))
	for _, d := range decls {
		name := camelCase(strings.TrimSpace(d.Property))
		value := strings.Trim(strings.TrimSpace(d.Value), `"'`)
		if name == "" || value == "" {
			continue
		}
		switch name {
		case "margin", "padding":
			if sub, ok := expandBoxProperty(value); ok {
				style[name] = sub
				continue
			}
		}
		style[name] = parseInlineValue(value)
	}
	return style, nil
}

func parseInlineValue(value string) Value {
	if m := pixelPattern.FindStringSubmatch(value); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Num(n)
		}
	}
	if functionPattern.MatchString(value) {
		return Script(value)
	}
	return Str(value)
}

// expandBoxProperty expands a 1-4 value margin/padding shorthand.
func expandBoxProperty(value string) (Value, bool) {
	parts := strings.Fields(value)
	vals := make([]Value, len(parts))
	for i, p := range parts {
		vals[i] = parseInlineValue(p)
	}
	var top, right, bottom, left Value
	switch len(vals) {
	case 1:
		top, right, bottom, left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		top, right, bottom, left = vals[0], vals[1], vals[0], vals[1]
	case 3:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[1]
	case 4:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[3]
	default:
		return Value{}, false
	}
	return Sub(map[string]Value{"top": top, "right": right, "bottom": bottom, "left": left}), true
}

// camelCase turns "background-color" into "backgroundColor".
func camelCase(name string) string {
	parts := strings.Split(strings.ToLower(name), "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = capitalize(parts[i])
	}
	return strings.Join(parts, "")
}
