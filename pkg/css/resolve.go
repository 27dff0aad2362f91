package css

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PropertyError reports a style property that cannot be resolved: a name that
// is not a supported element style, or an expression that failed to evaluate.
type PropertyError struct {
	Property string
	// Known is set when the name is a real CSS property this renderer does not support.
	Known bool
	Err   error
}

func (e *PropertyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("style %s: %v", e.Property, e.Err)
	}
	kind := "valid"
	if e.Known {
		kind = "supported"
	}
	return fmt.Sprintf("%s is not a %s element style", e.Property, kind)
}

func (e *PropertyError) Unwrap() error { return e.Err }

// ValueError reports a value outside an enumerated property's allowed set.
type ValueError struct {
	Property string
	Value    string
	Allowed  []string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("unsupported value for %s: %s (expected one of %s)",
		e.Property, e.Value, strings.Join(e.Allowed, ", "))
}

// Computed is a resolved style. Numbers are device pixels, colors are
// canonical #rrggbb. A nil *Computed has no entries.
type Computed struct {
	values map[string]Value
}

func (c *Computed) Get(name string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	v, ok := c.values[name]
	return v, ok
}

func (c *Computed) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

func (c *Computed) Number(name string) (float64, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	return v.Number()
}

func (c *Computed) String(name string) (string, bool) {
	v, ok := c.Get(name)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Display returns the display mode, if one was set.
func (c *Computed) Display() (Display, bool) {
	s, ok := c.String("display")
	return Display(s), ok
}

// Names returns the resolved property names in sorted order.
func (c *Computed) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.values))
	for k := range c.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (c *Computed) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Resolve turns a raw style into a Computed one. Sub-property mappings are
// expanded, fontSize is resolved before anything that may depend on it, every
// property is checked against the supported list and enumerated values,
// expressions and lengths become device pixels and colors become canonical hex.
// Unparseable colors resolve to FallbackColor rather than failing.
func Resolve(raw Style, env Env) (*Computed, error) {
	flat := Expand(raw)
	out := &Computed{values: make(map[string]Value, len(flat))}

	if v, ok := flat["fontSize"]; ok {
		resolved, err := resolveProperty("fontSize", v, env)
		if err != nil {
			return nil, err
		}
		out.values["fontSize"] = resolved
		if n, ok := resolved.Number(); ok && n > 0 {
			env.FontSize = n
			if env.Root {
				env.RootFontSize = n
			}
		}
		delete(flat, "fontSize")
	}

	names := make([]string, 0, len(flat))
	for k := range flat {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		resolved, err := resolveProperty(name, flat[name], env)
		if err != nil {
			return nil, err
		}
		out.values[name] = resolved
	}
	return out, nil
}

// Expand replaces every sub-property mapping with discrete entries:
// padding: {top: 1} becomes paddingTop: 1. Zero values are dropped.
func Expand(raw Style) Style {
	flat := make(Style, len(raw))
	for name, v := range raw {
		if v.IsZero() {
			continue
		}
		if !v.IsSub() {
			flat[name] = v
			continue
		}
		for side, sv := range v.sub {
			if sv.IsZero() {
				continue
			}
			flat[name+capitalize(side)] = sv
		}
	}
	return flat
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func resolveProperty(name string, v Value, env Env) (Value, error) {
	if !IsSupported(name) {
		return Value{}, &PropertyError{Property: name, Known: IsKnown(name)}
	}
	env.Axis = axisOf(name)
	if v.kind == kindExpr {
		r, err := v.expr.Eval(env)
		if err != nil {
			return Value{}, &PropertyError{Property: name, Known: true, Err: err}
		}
		v = r
	}
	if v.IsSub() {
		return Value{}, &PropertyError{Property: name, Known: true, Err: fmt.Errorf("nested sub-properties are not supported")}
	}
	if allowed, ok := SupportedValues[name]; ok && !slices.Contains(allowed, v.String()) {
		return Value{}, &ValueError{Property: name, Value: v.String(), Allowed: allowed}
	}
	if v.kind == kindString {
		if l, ok := ParseLength(v.str); ok {
			px, err := l.Pixels(env)
			if err != nil {
				return Value{}, &PropertyError{Property: name, Known: true, Err: err}
			}
			v = Num(px)
		}
	}
	if isColorProperty(name) {
		c, ok := ParseColor(v.String())
		if !ok {
			c = FallbackColor
		}
		v = Str(c)
	}
	return v, nil
}
