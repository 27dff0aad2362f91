package css

import (
	"strconv"
)

type valueKind int

const (
	kindNone valueKind = iota
	kindNumber
	kindString
	kindExpr
	kindSub
)

// Value is a raw or resolved style value: a number of device pixels, a
// string, a unit expression evaluated at resolve time, or a sub-property
// mapping such as {top, bottom} under a spacing property.
type Value struct {
	kind valueKind
	num  float64
	str  string
	expr Expr
	sub  map[string]Value
}

// Num returns a numeric value.
func Num(n float64) Value {
	return Value{kind: kindNumber, num: n}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: kindString, str: s}
}

// Sub returns a sub-property mapping. Keys are side names such as "top".
func Sub(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: kindSub, sub: cp}
}

// Eval returns a value computed from e when the style is resolved.
func Eval(e Expr) Value {
	return Value{kind: kindExpr, expr: e}
}

// Px is a plain device-pixel length.
func Px(n float64) Value { return Num(n) }

// Percent is n% of the parent's dimension along the property's axis.
func Percent(n float64) Value { return Eval(Length{N: n, Unit: UnitPercent}) }

// PercentOf is n% of the parent's dimension along an explicit axis.
func PercentOf(n float64, of Axis) Value { return Eval(Length{N: n, Unit: UnitPercent, Of: of}) }

func Em(n float64) Value   { return Eval(Length{N: n, Unit: UnitEm}) }
func Rem(n float64) Value  { return Eval(Length{N: n, Unit: UnitRem}) }
func Cm(n float64) Value   { return Eval(Length{N: n, Unit: UnitCm}) }
func Mm(n float64) Value   { return Eval(Length{N: n, Unit: UnitMm}) }
func Inch(n float64) Value { return Eval(Length{N: n, Unit: UnitIn}) }
func Pt(n float64) Value   { return Eval(Length{N: n, Unit: UnitPt}) }
func Pc(n float64) Value   { return Eval(Length{N: n, Unit: UnitPc}) }

// IsZero reports whether v carries nothing.
func (v Value) IsZero() bool { return v.kind == kindNone }

// IsSub reports whether v is a sub-property mapping.
func (v Value) IsSub() bool { return v.kind == kindSub }

// Number returns the numeric payload.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == kindNumber
}

// String renders the value the way the validators compare it.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindString:
		return v.str
	case kindExpr:
		return "<expr>"
	case kindSub:
		return "<sub-properties>"
	}
	return ""
}

// Style is a raw style mapping keyed by camelCase property name.
type Style map[string]Value

// Clone returns a shallow copy of s.
func (s Style) Clone() Style {
	cp := make(Style, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}
