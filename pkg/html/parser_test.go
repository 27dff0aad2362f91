package html

import (
	"testing"

	"boxpaint/pkg/css"
	"boxpaint/pkg/dom"
)

func TestParse_SingleElement(t *testing.T) {
	res, err := Parse("<div>hello</div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Root.Kind != dom.Block {
		t.Errorf("expected a div root, got %s", res.Root.Kind)
	}
	if len(res.Root.Children) != 1 || res.Root.Children[0] != dom.Text("hello") {
		t.Errorf("expected one text child, got %v", res.Root.Children)
	}
	if res.Width != 0 || res.Height != 0 {
		t.Errorf("expected no surface size, got %dx%d", res.Width, res.Height)
	}
}

func TestParse_MultipleTopLevelAreWrapped(t *testing.T) {
	res, err := Parse("<div>a</div>\n<div>b</div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Root.Children) != 2 {
		t.Fatalf("expected 2 wrapped children, got %d: %v", len(res.Root.Children), res.Root.Children)
	}
	for _, prop := range []string{"width", "height"} {
		if _, ok := res.Root.RawStyle[prop]; !ok {
			t.Errorf("expected wrapper to set %s", prop)
		}
	}
}

func TestParse_TopLevelTextIsWrapped(t *testing.T) {
	res, err := Parse("just text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Root.Children) != 1 || res.Root.Children[0] != dom.Text("just text") {
		t.Errorf("expected text inside a wrapper block, got %v", res.Root.Children)
	}
}

func TestParse_NestedElements(t *testing.T) {
	res, err := Parse("<div>\n  <div>inner</div>\n  tail\n</div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children := res.Root.Children
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d: %q", len(children), children)
	}
	inner, ok := children[0].(*dom.Element)
	if !ok || len(inner.Children) != 1 || inner.Children[0] != dom.Text("inner") {
		t.Errorf("expected nested div with text, got %v", children[0])
	}
	if children[1] != dom.Text("\n  tail\n") {
		t.Errorf("expected text to be kept as written, got %q", children[1])
	}
}

func TestParse_UnknownTagsDropped(t *testing.T) {
	res, err := Parse("<div><span>gone</span><p>also gone</p>kept</div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Root.Children) != 1 || res.Root.Children[0] != dom.Text("kept") {
		t.Errorf("expected only the text to survive, got %v", res.Root.Children)
	}
}

func TestParse_InlineStyle(t *testing.T) {
	res, err := Parse(`<div id="box" style="background-color: #ecd; width: 120px; padding: 4px 8px; height: percent(50)"></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := res.Root
	if root.Attributes["id"] != "box" {
		t.Errorf("expected id attribute to be kept, got %v", root.Attributes)
	}
	if n, ok := root.RawStyle["width"].Number(); !ok || n != 120 {
		t.Errorf("expected numeric width 120, got %s", root.RawStyle["width"])
	}
	if root.RawStyle["backgroundColor"].String() != "#ecd" {
		t.Errorf("expected camelCased background color, got %v", root.RawStyle)
	}
	if !root.RawStyle["padding"].IsSub() {
		t.Error("expected padding shorthand to become sub-properties")
	}

	computed, err := css.Resolve(root.RawStyle, css.Env{ParentWidth: 800, ParentHeight: 600, FontSize: 16, RootFontSize: 16})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if h, _ := computed.Number("height"); h != 300 {
		t.Errorf("expected scripted height 300, got %v", h)
	}
	if l, _ := computed.Number("paddingLeft"); l != 8 {
		t.Errorf("expected paddingLeft 8, got %v", l)
	}
}

func TestParse_BodySetsSurface(t *testing.T) {
	tests := []struct {
		markup        string
		width, height int
	}{
		{`<body width="640" height="360"><div>x</div></body>`, 640, 360},
		{`<body style="width: 300px; height: 200"><div>x</div></body>`, 300, 200},
		{`<body width="500" style="height: 50%"><div>x</div></body>`, 500, 0},
	}
	for _, tt := range tests {
		res, err := Parse(tt.markup)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.markup, err)
		}
		if res.Width != tt.width || res.Height != tt.height {
			t.Errorf("%s: expected %dx%d, got %dx%d", tt.markup, tt.width, tt.height, res.Width, res.Height)
		}
		if len(res.Root.Children) != 1 {
			t.Errorf("%s: expected body to become the root, got %v", tt.markup, res.Root.Children)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse("<span>nothing we draw</span>"); err == nil {
		t.Error("expected an error for a document without content")
	}
}
