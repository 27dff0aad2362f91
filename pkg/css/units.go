package css

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultFontSize is the font size of an element with no font-size anywhere
// in its ancestry.
const DefaultFontSize = 16.0

// PixelsPerInch is the device-pixel base every absolute unit is derived from.
const PixelsPerInch = 96.0

type Unit string

const (
	UnitPx      Unit = "px"
	UnitPercent Unit = "%"
	UnitEm      Unit = "em"
	UnitRem     Unit = "rem"
	UnitCm      Unit = "cm"
	UnitMm      Unit = "mm"
	UnitIn      Unit = "in"
	UnitPt      Unit = "pt"
	UnitPc      Unit = "pc"
)

// Axis selects which parent dimension a percentage refers to.
type Axis int

const (
	AxisAuto Axis = iota
	AxisWidth
	AxisHeight
	AxisFont
)

// ParseAxis maps a property-like name ("width", "height", "fontSize") to an axis.
func ParseAxis(name string) Axis {
	switch name {
	case "width":
		return AxisWidth
	case "height":
		return AxisHeight
	case "fontSize":
		return AxisFont
	}
	return AxisAuto
}

// ColorConverter turns functional color notations into canonical hex. The
// drawing surface provides it.
type ColorConverter interface {
	RGBToHex(r, g, b float64) string
	HSLToHex(h, s, l float64) string
}

// Env is the data unit expressions are evaluated against.
type Env struct {
	// FontSize is the cascaded font size in effect: the parent's while the
	// element's own fontSize resolves, the element's afterwards.
	FontSize     float64
	RootFontSize float64
	ParentWidth  float64
	ParentHeight float64
	// Root marks the root element, whose own font size becomes the rem base.
	Root   bool
	Axis   Axis
	Colors ColorConverter
}

// Expr is a style value computed at resolve time.
type Expr interface {
	Eval(env Env) (Value, error)
}

// Length is a number in a unit. Of overrides the axis for percentages.
type Length struct {
	N    float64
	Unit Unit
	Of   Axis
}

func (l Length) Eval(env Env) (Value, error) {
	px, err := l.Pixels(env)
	if err != nil {
		return Value{}, err
	}
	return Num(px), nil
}

// Pixels converts the length to device pixels.
func (l Length) Pixels(env Env) (float64, error) {
	switch l.Unit {
	case UnitPx, "":
		return l.N, nil
	case UnitPercent:
		axis := env.Axis
		if l.Of != AxisAuto {
			axis = l.Of
		}
		return env.percent(l.N, axis), nil
	case UnitEm:
		return l.N * env.fontSize(), nil
	case UnitRem:
		return l.N * env.rootFontSize(), nil
	case UnitCm:
		return l.N * PixelsPerInch / 2.54, nil
	case UnitMm:
		return l.N * PixelsPerInch / 25.4, nil
	case UnitIn:
		return l.N * PixelsPerInch, nil
	case UnitPt:
		return l.N * PixelsPerInch / 72, nil
	case UnitPc:
		return l.N * 16, nil
	}
	return 0, fmt.Errorf("unknown unit %q", l.Unit)
}

func (env Env) percent(n float64, axis Axis) float64 {
	var base float64
	switch axis {
	case AxisHeight:
		base = env.ParentHeight
	case AxisFont:
		base = env.fontSize()
	default:
		base = env.ParentWidth
	}
	return base * n / 100
}

func (env Env) fontSize() float64 {
	if env.FontSize > 0 {
		return env.FontSize
	}
	return DefaultFontSize
}

func (env Env) rootFontSize() float64 {
	if env.RootFontSize > 0 {
		return env.RootFontSize
	}
	return DefaultFontSize
}

var lengthPattern = regexp.MustCompile(`^\s*(-?(?:\d+\.?\d*|\.\d+))\s*(px|%|rem|em|cm|mm|inch|in|pt|pc)?\s*$`)

// ParseLength parses "<number><unit>" text. A bare number is taken as px.
func ParseLength(s string) (Length, bool) {
	m := lengthPattern.FindStringSubmatch(s)
	if m == nil {
		return Length{}, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Length{}, false
	}
	unit := Unit(m[2])
	switch unit {
	case "":
		unit = UnitPx
	case "inch":
		unit = UnitIn
	}
	return Length{N: n, Unit: unit}, true
}
