package css

import (
	"fmt"

	"github.com/dop251/goja"
)

// Script returns a value computed by a JavaScript expression such as
// "percent(50) + em(1)" or "rgb(238, 204, 221)". The helpers percent(n, of?),
// rem, em, cm, mm, inch, pt, pc, rgb and hsl are bound to the element being
// resolved. The expression must produce a number or a string.
func Script(src string) Value {
	prog, err := goja.Compile("style", src, true)
	return Eval(&script{src: src, prog: prog, err: err})
}

type script struct {
	src  string
	prog *goja.Program
	err  error
}

func (s *script) String() string { return s.src }

func (s *script) Eval(env Env) (Value, error) {
	if s.err != nil {
		return Value{}, fmt.Errorf("compiling %q: %w", s.src, s.err)
	}
	vm := goja.New()
	if err := bindHelpers(vm, env); err != nil {
		return Value{}, err
	}
	res, err := vm.RunProgram(s.prog)
	if err != nil {
		return Value{}, fmt.Errorf("running %q: %w", s.src, err)
	}
	switch x := res.Export().(type) {
	case int64:
		return Num(float64(x)), nil
	case float64:
		return Num(x), nil
	case string:
		return Str(x), nil
	}
	return Value{}, fmt.Errorf("%q produced %s, expected a number or string", s.src, res.String())
}

func bindHelpers(vm *goja.Runtime, env Env) error {
	unit := func(u Unit) func(float64) float64 {
		return func(n float64) float64 {
			px, _ := Length{N: n, Unit: u}.Pixels(env)
			return px
		}
	}
	helpers := map[string]any{
		"rem":  unit(UnitRem),
		"em":   unit(UnitEm),
		"cm":   unit(UnitCm),
		"mm":   unit(UnitMm),
		"inch": unit(UnitIn),
		"pt":   unit(UnitPt),
		"pc":   unit(UnitPc),
		"percent": func(call goja.FunctionCall) goja.Value {
			l := Length{N: call.Argument(0).ToFloat(), Unit: UnitPercent}
			if of := call.Argument(1); !goja.IsUndefined(of) {
				l.Of = ParseAxis(of.String())
			}
			px, _ := l.Pixels(env)
			return vm.ToValue(px)
		},
		"rgb": func(r, g, b float64) string {
			return colors(vm, env).RGBToHex(r, g, b)
		},
		"hsl": func(h, s, l float64) string {
			return colors(vm, env).HSLToHex(h, s, l)
		},
	}
	for name, fn := range helpers {
		if err := vm.Set(name, fn); err != nil {
			return fmt.Errorf("binding %s: %w", name, err)
		}
	}
	return nil
}

func colors(vm *goja.Runtime, env Env) ColorConverter {
	if env.Colors == nil {
		panic(vm.NewTypeError("no color converter available"))
	}
	return env.Colors
}
