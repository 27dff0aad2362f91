// Package dom holds the element tree: block containers and text runs, their
// raw attributes, resolved style and prepared position.
package dom

import (
	"errors"
	"fmt"
	"strconv"

	"boxpaint/pkg/css"
	"boxpaint/pkg/surface"
)

// Kind discriminates element types.
type Kind int

const (
	// Block is a generic block container, the <div> of markup.
	Block Kind = iota
)

func (k Kind) String() string {
	switch k {
	case Block:
		return "div"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// KindForTag maps a markup tag name to an element kind.
func KindForTag(tag string) (Kind, bool) {
	switch tag {
	case "div":
		return Block, true
	}
	return 0, false
}

// State is an element tree's position in its lifecycle.
type State int

const (
	Constructed State = iota
	Prepared
	Rendered
)

var (
	ErrAlreadyPrepared = errors.New("document already prepared")
	ErrNotPrepared     = errors.New("document not prepared")
	ErrAlreadyRendered = errors.New("document already rendered")
)

// ConfigError reports attributes an element cannot be constructed from.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// Attributes maps attribute names to values. The "style" entry, when present,
// must be a mapping: a css.Style or a map[string]any.
type Attributes map[string]any

// Node is a child of an element: either *Element or Text.
type Node interface {
	node()
}

// Text is a run of text inside a container.
type Text string

func (Text) node() {}

// Element is one box in the tree.
type Element struct {
	Kind       Kind
	Attributes Attributes
	// RawStyle is the normalized copy of the style attribute.
	RawStyle css.Style
	// Style is set once, during preparation.
	Style    *css.Computed
	Children []Node
	Parent   *Element
	// X and Y are assigned during preparation, relative to the surface origin.
	X, Y float64

	doc *Document
}

func (*Element) node() {}

// New constructs an element. Children that are nil, false, empty strings or
// any object other than an *Element are dropped; other scalars become text.
func New(kind Kind, attrs Attributes, children ...any) (*Element, error) {
	el := &Element{Kind: kind, Attributes: Attributes{}}
	for k, v := range attrs {
		el.Attributes[k] = v
	}
	if raw, ok := attrs["style"]; ok && raw != nil {
		style, err := normalizeStyle(raw)
		if err != nil {
			return nil, err
		}
		el.RawStyle = style
		el.Attributes["style"] = style
	}
	for _, c := range children {
		if n, ok := childNode(c); ok {
			el.Children = append(el.Children, n)
		}
	}
	return el, nil
}

func childNode(c any) (Node, bool) {
	switch v := c.(type) {
	case *Element:
		return v, v != nil
	case Text:
		return v, v != ""
	case string:
		return Text(v), v != ""
	case bool:
		return Text("true"), v
	case int:
		return Text(strconv.Itoa(v)), true
	case int64:
		return Text(strconv.FormatInt(v, 10)), true
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64)), true
	}
	return nil, false
}

func normalizeStyle(raw any) (css.Style, error) {
	switch s := raw.(type) {
	case string:
		return nil, &ConfigError{Msg: "an element's style must be a mapping, not a string"}
	case css.Style:
		return s.Clone(), nil
	case map[string]css.Value:
		return css.Style(s).Clone(), nil
	case map[string]any:
		style := make(css.Style, len(s))
		for name, v := range s {
			val, err := styleValue(name, v)
			if err != nil {
				return nil, err
			}
			if !val.IsZero() {
				style[name] = val
			}
		}
		return style, nil
	}
	return nil, &ConfigError{Msg: fmt.Sprintf("an element's style must be a mapping, got %T", raw)}
}

func styleValue(name string, v any) (css.Value, error) {
	switch x := v.(type) {
	case nil:
		return css.Value{}, nil
	case css.Value:
		return x, nil
	case css.Expr:
		return css.Eval(x), nil
	case string:
		return css.Str(x), nil
	case int:
		return css.Num(float64(x)), nil
	case int64:
		return css.Num(float64(x)), nil
	case float64:
		return css.Num(x), nil
	case map[string]any:
		sub := make(map[string]css.Value, len(x))
		for side, sv := range x {
			val, err := styleValue(name+"."+side, sv)
			if err != nil {
				return css.Value{}, err
			}
			sub[side] = val
		}
		return css.Sub(sub), nil
	}
	return css.Value{}, &ConfigError{Msg: fmt.Sprintf("style %s: unsupported value type %T", name, v)}
}

// Document returns the shared context this element was prepared under, or
// nil before preparation.
func (e *Element) Document() *Document {
	return e.doc
}

// Root returns the top-most element of the prepared tree.
func (e *Element) Root() *Element {
	if e.doc == nil {
		return nil
	}
	return e.doc.Root
}

// Attach records the parent, position and shared context assigned by preparation.
func (e *Element) Attach(doc *Document, parent *Element, x, y float64) {
	e.doc = doc
	e.Parent = parent
	e.X, e.Y = x, y
}

// SetStyle records the resolved style. Only the first call has an effect.
func (e *Element) SetStyle(c *css.Computed) {
	if e.Style == nil {
		e.Style = c
	}
}

// Walk visits e and its element descendants depth-first, parents first.
// Returning false from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		if child, ok := c.(*Element); ok {
			child.Walk(fn)
		}
	}
}

// Document is the shared context owned by the root: the drawing surface and
// the lifecycle state of the whole tree.
type Document struct {
	Root    *Element
	Surface surface.Surface
	State   State
}

// NewDocument attaches a root element to a surface.
func NewDocument(root *Element, s surface.Surface) (*Document, error) {
	if root == nil {
		return nil, &ConfigError{Msg: "document needs a root element"}
	}
	if root.doc != nil {
		return nil, &ConfigError{Msg: "element already belongs to a document"}
	}
	doc := &Document{Root: root, Surface: s}
	root.doc = doc
	return doc, nil
}

// Release detaches the tree from d and clears everything preparation assigned,
// so the root can be attached to a new document.
func (d *Document) Release() {
	d.Root.Walk(func(el *Element) bool {
		if el != d.Root {
			el.Parent = nil
		}
		el.doc = nil
		el.Style = nil
		el.X, el.Y = 0, 0
		return true
	})
}
