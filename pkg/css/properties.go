package css

import (
	"slices"
	"strings"
)

type Display string

const (
	DisplayBlock       Display = "block"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
)

// SupportedProperties lists every property an element style may carry.
var SupportedProperties = []string{
	"backgroundColor",
	"color",
	"display",
	"fontSize",
	"height",
	"paddingBottom",
	"paddingLeft",
	"paddingRight",
	"paddingTop",
	"width",
}

// SupportedValues restricts enumerated properties to a fixed set of values.
var SupportedValues = map[string][]string{
	"display": {string(DisplayBlock), string(DisplayInline), string(DisplayInlineBlock)},
}

// knownProperties are CSS properties that exist but are not implemented.
var knownProperties = []string{
	"alignContent", "alignItems", "alignSelf", "animation", "background", "backgroundAttachment",
	"backgroundClip", "backgroundImage", "backgroundOrigin", "backgroundPosition",
	"backgroundRepeat", "backgroundSize", "border", "borderBottom", "borderBottomColor",
	"borderBottomLeftRadius", "borderBottomRightRadius", "borderBottomStyle", "borderBottomWidth",
	"borderCollapse", "borderColor", "borderLeft", "borderLeftColor", "borderLeftStyle",
	"borderLeftWidth", "borderRadius", "borderRight", "borderRightColor", "borderRightStyle",
	"borderRightWidth", "borderSpacing", "borderStyle", "borderTop", "borderTopColor",
	"borderTopLeftRadius", "borderTopRightRadius", "borderTopStyle", "borderTopWidth",
	"borderWidth", "bottom", "boxShadow", "boxSizing", "clear", "clip", "columnGap", "content",
	"cursor", "direction", "filter", "flex", "flexBasis", "flexDirection", "flexGrow",
	"flexShrink", "flexWrap", "float", "font", "fontFamily", "fontStyle", "fontVariant",
	"fontWeight", "gap", "grid", "gridArea", "gridColumn", "gridRow", "gridTemplateAreas",
	"gridTemplateColumns", "gridTemplateRows", "justifyContent", "justifyItems", "justifySelf",
	"left", "letterSpacing", "lineHeight", "listStyle", "margin", "marginBottom", "marginLeft",
	"marginRight", "marginTop", "maxHeight", "maxWidth", "minHeight", "minWidth", "objectFit",
	"opacity", "order", "outline", "outlineColor", "outlineStyle", "outlineWidth", "overflow",
	"overflowX", "overflowY", "padding", "position", "right", "rowGap", "textAlign",
	"textDecoration", "textDecorationColor", "textIndent", "textOverflow", "textShadow",
	"textTransform", "top", "transform", "transformOrigin", "transition", "verticalAlign",
	"visibility", "whiteSpace", "wordBreak", "wordSpacing", "wordWrap", "zIndex",
}

// IsSupported reports whether name may appear in a resolved style.
func IsSupported(name string) bool {
	return slices.Contains(SupportedProperties, name)
}

// IsKnown reports whether name is a CSS property at all.
func IsKnown(name string) bool {
	return IsSupported(name) || slices.Contains(knownProperties, name)
}

func isColorProperty(name string) bool {
	return strings.Contains(strings.ToLower(name), "color")
}

// axisOf is the parent dimension percentages of a property refer to.
func axisOf(name string) Axis {
	switch {
	case name == "fontSize":
		return AxisFont
	case name == "height", strings.HasSuffix(name, "Top"), strings.HasSuffix(name, "Bottom"):
		return AxisHeight
	}
	return AxisWidth
}
