package css

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type testColors struct{}

func (testColors) RGBToHex(r, g, b float64) string { return "#010203" }
func (testColors) HSLToHex(h, s, l float64) string { return "#040506" }

func env() Env {
	return Env{FontSize: 16, RootFontSize: 16, ParentWidth: 800, ParentHeight: 600, Colors: testColors{}}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustResolve(t *testing.T, raw Style, e Env) *Computed {
	t.Helper()
	c, err := Resolve(raw, e)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return c
}

func TestResolve_Units(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  float64
	}{
		{"px number", Px(12), 12},
		{"inch", Inch(1), 96},
		{"pt", Pt(1), 96.0 / 72},
		{"pc", Pc(1), 16},
		{"cm", Cm(2.54), 96},
		{"mm", Mm(25.4), 96},
		{"em", Em(2), 32},
		{"rem", Rem(1.5), 24},
		{"percent of width", Percent(25), 200},
		{"percent of height", PercentOf(50, AxisHeight), 300},
		{"string px", Str("40px"), 40},
		{"string inch", Str("1inch"), 96},
		{"string in", Str("0.5in"), 48},
		{"string percent", Str("10%"), 80},
		{"string em", Str("1.5em"), 24},
		{"bare number string", Str("7"), 7},
	}
	for _, tt := range tests {
		c := mustResolve(t, Style{"width": tt.value}, env())
		got, ok := c.Number("width")
		if !ok || !almostEqual(got, tt.want) {
			t.Errorf("%s: expected %v, got %v (ok=%v)", tt.name, tt.want, got, ok)
		}
	}
}

func TestResolve_PercentFollowsPropertyAxis(t *testing.T) {
	c := mustResolve(t, Style{"height": Percent(50), "paddingTop": Str("10%"), "paddingLeft": Str("10%")}, env())
	if h, _ := c.Number("height"); h != 300 {
		t.Errorf("expected height 300, got %v", h)
	}
	if p, _ := c.Number("paddingTop"); p != 60 {
		t.Errorf("expected paddingTop 60, got %v", p)
	}
	if p, _ := c.Number("paddingLeft"); p != 80 {
		t.Errorf("expected paddingLeft 80, got %v", p)
	}
}

func TestResolve_FontSizeFirst(t *testing.T) {
	c := mustResolve(t, Style{"width": Em(2), "fontSize": Px(20)}, env())
	if w, _ := c.Number("width"); w != 40 {
		t.Errorf("expected em to use the element's own font size: width 40, got %v", w)
	}
}

func TestResolve_FontSizeEmUsesParentFont(t *testing.T) {
	e := env()
	e.FontSize = 10
	c := mustResolve(t, Style{"fontSize": Em(2), "height": Em(1)}, e)
	if fs, _ := c.Number("fontSize"); fs != 20 {
		t.Errorf("expected fontSize 20, got %v", fs)
	}
	if h, _ := c.Number("height"); h != 20 {
		t.Errorf("expected height 20, got %v", h)
	}
}

func TestResolve_RootFontSizeBecomesRemBase(t *testing.T) {
	e := env()
	e.Root = true
	c := mustResolve(t, Style{"fontSize": Px(10), "width": Rem(3)}, e)
	if w, _ := c.Number("width"); w != 30 {
		t.Errorf("expected width 30, got %v", w)
	}
}

func TestResolve_ShorthandExpansion(t *testing.T) {
	c := mustResolve(t, Style{"padding": Sub(map[string]Value{"top": Num(1), "bottom": Num(2)})}, env())
	if c.Has("padding") {
		t.Error("expected shorthand key to be removed")
	}
	if top, _ := c.Number("paddingTop"); top != 1 {
		t.Errorf("expected paddingTop 1, got %v", top)
	}
	if bottom, _ := c.Number("paddingBottom"); bottom != 2 {
		t.Errorf("expected paddingBottom 2, got %v", bottom)
	}
	if c.Len() != 2 {
		t.Errorf("expected exactly 2 entries, got %v", c.Names())
	}
}

func TestResolve_UnsupportedProperty(t *testing.T) {
	tests := []struct {
		name      string
		wantKnown bool
		wantMsg   string
	}{
		{"margin", true, "not a supported"},
		{"zIndex", true, "not a supported"},
		{"sparkle", false, "not a valid"},
	}
	for _, tt := range tests {
		_, err := Resolve(Style{tt.name: Num(1)}, env())
		var perr *PropertyError
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected PropertyError, got %v", tt.name, err)
		}
		if perr.Known != tt.wantKnown || !strings.Contains(err.Error(), tt.wantMsg) {
			t.Errorf("%s: unexpected error %q (known=%v)", tt.name, err, perr.Known)
		}
	}
}

func TestResolve_UnknownSubProperty(t *testing.T) {
	_, err := Resolve(Style{"padding": Sub(map[string]Value{"middle": Num(1)})}, env())
	var perr *PropertyError
	if !errors.As(err, &perr) || perr.Property != "paddingMiddle" {
		t.Errorf("expected PropertyError for paddingMiddle, got %v", err)
	}
}

func TestResolve_DisplayValues(t *testing.T) {
	for _, d := range []string{"block", "inline", "inline-block"} {
		c := mustResolve(t, Style{"display": Str(d)}, env())
		if got, _ := c.Display(); string(got) != d {
			t.Errorf("expected display %s, got %s", d, got)
		}
	}
	_, err := Resolve(Style{"display": Str("flex")}, env())
	var verr *ValueError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValueError, got %v", err)
	}
	if verr.Property != "display" || verr.Value != "flex" {
		t.Errorf("unexpected value error %+v", verr)
	}
}

func TestResolve_Colors(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{Str("#fff"), "#ffffff"},
		{Str("#ffffff"), "#ffffff"},
		{Str("#ECD"), "#eeccdd"},
		{Str("teal"), "#008080"},
		{Str("Red"), "#ff0000"},
		{Str("not-a-color"), "#000000"},
		{Num(42), "#000000"},
		{Script("rgb(1, 2, 3)"), "#010203"},
		{Script("hsl(1, 2, 3)"), "#040506"},
	}
	for _, tt := range tests {
		c, err := Resolve(Style{"backgroundColor": tt.in, "color": tt.in}, env())
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.in, err)
		}
		for _, prop := range []string{"backgroundColor", "color"} {
			if got, _ := c.String(prop); got != tt.want {
				t.Errorf("%s %s: expected %s, got %s", prop, tt.in, tt.want, got)
			}
		}
	}
}

func TestResolve_Script(t *testing.T) {
	c := mustResolve(t, Style{
		"width":  Script("percent(50) + em(1)"),
		"height": Script("percent(10, 'width')"),
	}, env())
	if w, _ := c.Number("width"); w != 416 {
		t.Errorf("expected width 416, got %v", w)
	}
	if h, _ := c.Number("height"); h != 80 {
		t.Errorf("expected height 80, got %v", h)
	}
}

func TestResolve_ScriptErrors(t *testing.T) {
	for _, src := range []string{"nope(", "undefinedFn(1)", "({})"} {
		_, err := Resolve(Style{"width": Script(src)}, env())
		var perr *PropertyError
		if !errors.As(err, &perr) || perr.Err == nil {
			t.Errorf("%q: expected wrapped PropertyError, got %v", src, err)
		}
	}
	e := env()
	e.Colors = nil
	if _, err := Resolve(Style{"color": Script("rgb(1,2,3)")}, e); err == nil {
		t.Error("expected error without a color converter")
	}
}

func TestComputed_NilSafe(t *testing.T) {
	var c *Computed
	if c.Has("width") || c.Len() != 0 || c.Names() != nil {
		t.Error("expected nil Computed to be empty")
	}
	if _, ok := c.Display(); ok {
		t.Error("expected no display on nil Computed")
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	raw := Style{"padding": Sub(map[string]Value{"top": Num(1)}), "fontSize": Num(12)}
	mustResolve(t, raw, env())
	if !raw["padding"].IsSub() || len(raw) != 2 {
		t.Error("expected raw style to be left untouched")
	}
}
