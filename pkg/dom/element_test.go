package dom

import (
	"errors"
	"testing"

	"boxpaint/pkg/css"
	"boxpaint/pkg/surface"
)

func TestNew_FiltersChildren(t *testing.T) {
	inner, err := New(Block, nil)
	if err != nil {
		t.Fatal(err)
	}
	var nilElement *Element
	el, err := New(Block, nil, "hello", nil, false, "", inner, nilElement, map[string]any{"x": 1}, 42, true, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	want := []Node{Text("hello"), inner, Text("42"), Text("true"), Text("1.5")}
	if len(el.Children) != len(want) {
		t.Fatalf("expected %d children, got %d: %v", len(want), len(el.Children), el.Children)
	}
	for i := range want {
		if el.Children[i] != want[i] {
			t.Errorf("child %d: expected %v, got %v", i, want[i], el.Children[i])
		}
	}
}

func TestNew_StringStyleIsConfigError(t *testing.T) {
	el, err := New(Block, Attributes{"style": "color: red"})
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if el != nil {
		t.Error("expected no element on error")
	}
}

func TestNew_UnsupportedStyleType(t *testing.T) {
	_, err := New(Block, Attributes{"style": 12})
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigError, got %v", err)
	}
	_, err = New(Block, Attributes{"style": map[string]any{"width": []int{1}}})
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigError for slice value, got %v", err)
	}
}

func TestNew_NormalizesStyleMap(t *testing.T) {
	el, err := New(Block, Attributes{"class": "x", "style": map[string]any{
		"width":           100,
		"backgroundColor": "#ecd",
		"height":          css.Percent(50),
		"padding":         map[string]any{"top": 1.5},
		"color":           nil,
	}})
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := el.RawStyle["width"].Number(); !ok || n != 100 {
		t.Errorf("expected numeric width, got %s", el.RawStyle["width"])
	}
	if el.RawStyle["backgroundColor"].String() != "#ecd" {
		t.Errorf("expected string background, got %s", el.RawStyle["backgroundColor"])
	}
	if !el.RawStyle["padding"].IsSub() {
		t.Error("expected padding to be a sub-property mapping")
	}
	if _, ok := el.RawStyle["color"]; ok {
		t.Error("expected nil style value to be dropped")
	}
	if el.Attributes["class"] != "x" {
		t.Error("expected other attributes to be kept")
	}
}

func TestNew_CopiesStyle(t *testing.T) {
	style := css.Style{"width": css.Num(1)}
	el, err := New(Block, Attributes{"style": style})
	if err != nil {
		t.Fatal(err)
	}
	style["width"] = css.Num(2)
	if n, _ := el.RawStyle["width"].Number(); n != 1 {
		t.Errorf("expected element style to be a copy, got %v", n)
	}
}

func TestSetStyle_Once(t *testing.T) {
	el, _ := New(Block, nil)
	first, _ := css.Resolve(css.Style{"width": css.Num(1)}, css.Env{})
	second, _ := css.Resolve(css.Style{"width": css.Num(2)}, css.Env{})
	el.SetStyle(first)
	el.SetStyle(second)
	if n, _ := el.Style.Number("width"); n != 1 {
		t.Errorf("expected first style to stick, got width %v", n)
	}
}

func TestDocument_AttachAndRoot(t *testing.T) {
	child, _ := New(Block, nil, "text")
	root, _ := New(Block, nil, child)
	doc, err := NewDocument(root, surface.NewRecorder(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	child.Attach(doc, root, 5, 6)
	if child.Root() != root || child.Document() != doc || child.Parent != root {
		t.Error("expected child to reach root through the document")
	}
	if child.X != 5 || child.Y != 6 {
		t.Errorf("expected (5, 6), got (%v, %v)", child.X, child.Y)
	}
	if _, err := NewDocument(root, surface.NewRecorder(1, 1)); err == nil {
		t.Error("expected error attaching a root twice")
	}
	if _, err := NewDocument(nil, surface.NewRecorder(1, 1)); err == nil {
		t.Error("expected error for nil root")
	}
}

func TestDocument_Release(t *testing.T) {
	child, _ := New(Block, nil)
	root, _ := New(Block, nil, child)
	doc, _ := NewDocument(root, surface.NewRecorder(100, 100))
	child.Attach(doc, root, 5, 6)
	style, _ := css.Resolve(css.Style{"width": css.Num(1)}, css.Env{})
	child.SetStyle(style)

	doc.Release()
	if child.Document() != nil || child.Parent != nil || child.Style != nil || child.X != 0 {
		t.Errorf("expected child cleared, got %+v", child)
	}
	if _, err := NewDocument(root, surface.NewRecorder(1, 1)); err != nil {
		t.Errorf("expected released root to attach again, got %v", err)
	}
}

func TestWalk_DepthFirst(t *testing.T) {
	a, _ := New(Block, Attributes{"id": "a"})
	b, _ := New(Block, Attributes{"id": "b"})
	c, _ := New(Block, Attributes{"id": "c"}, a, "text")
	root, _ := New(Block, Attributes{"id": "root"}, c, b)

	var order []any
	root.Walk(func(e *Element) bool {
		order = append(order, e.Attributes["id"])
		return e.Attributes["id"] != "c"
	})
	want := []any{"root", "c", "b"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("expected %v, got %v", want, order)
		}
	}
}

func TestKindForTag(t *testing.T) {
	if k, ok := KindForTag("div"); !ok || k != Block {
		t.Error("expected div to map to Block")
	}
	if _, ok := KindForTag("span"); ok {
		t.Error("expected span to be unknown")
	}
	if Block.String() != "div" {
		t.Errorf("unexpected kind name %s", Block)
	}
}
