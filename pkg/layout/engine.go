package layout

import (
	"fmt"

	"go.uber.org/zap"

	"boxpaint/pkg/css"
	"boxpaint/pkg/dom"
	"boxpaint/pkg/text"
)

// Engine prepares an element tree and answers geometry queries about it.
// Positions are cached on the elements; sizes are recomputed on every call.
type Engine struct {
	doc    *dom.Document
	logger *zap.Logger
}

func NewEngine(doc *dom.Document, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{doc: doc, logger: logger}
}

// Document returns the document the engine lays out.
func (e *Engine) Document() *dom.Document {
	return e.doc
}

// Prepare resolves every element's style and assigns positions, root first.
// Any style error aborts the whole pass.
func (e *Engine) Prepare() error {
	if e.doc.State != dom.Constructed {
		return dom.ErrAlreadyPrepared
	}
	if err := e.prepare(e.doc.Root, nil, 0, 0); err != nil {
		return err
	}
	e.doc.State = dom.Prepared
	return nil
}

func (e *Engine) prepare(el, parent *dom.Element, x, y float64) error {
	el.Attach(e.doc, parent, x, y)
	if err := e.resolveStyle(el); err != nil {
		return err
	}
	cur := e.cursor(el)
	size := e.FontSize(el)
	for _, c := range el.Children {
		switch child := c.(type) {
		case dom.Text:
			m := e.measure(string(child), size)
			cur.Advance(m.Width, m.Height())
		case *dom.Element:
			if err := e.prepare(child, el, cur.X, cur.Y); err != nil {
				return err
			}
			cur.Advance(e.Width(child), e.Height(child))
		}
	}
	e.logger.Debug("prepared element",
		zap.Stringer("kind", el.Kind),
		zap.Float64("x", el.X),
		zap.Float64("y", el.Y),
		zap.Float64("width", e.Width(el)),
		zap.Float64("height", e.Height(el)))
	return nil
}

func (e *Engine) resolveStyle(el *dom.Element) error {
	if el.Style != nil {
		return nil
	}
	s := e.doc.Surface
	env := css.Env{
		FontSize:     css.DefaultFontSize,
		RootFontSize: css.DefaultFontSize,
		ParentWidth:  s.Width(),
		ParentHeight: s.Height(),
		Root:         el.Parent == nil,
		Colors:       s,
	}
	if p := el.Parent; p != nil {
		env.FontSize = e.FontSize(p)
		env.RootFontSize = e.FontSize(e.doc.Root)
		env.ParentWidth = e.Width(p)
		env.ParentHeight = e.Height(p)
	}
	computed, err := css.Resolve(el.RawStyle, env)
	if err != nil {
		return fmt.Errorf("resolving %s style: %w", el.Kind, err)
	}
	el.SetStyle(computed)
	return nil
}

// cursor returns a flow cursor at the top-left of el's content box.
func (e *Engine) cursor(el *dom.Element) *text.Cursor {
	pad := padding(el)
	return text.NewCursor(el.X+pad.left, el.Y+pad.top, e.lineEnd(el))
}

// lineEnd is where a line of el's content wraps: the right edge of its content
// box when the width is known up front. A container sized from its content
// wraps where its nearest such ancestor does, or at the surface edge.
func (e *Engine) lineEnd(el *dom.Element) float64 {
	if _, fixed := fixedWidth(el); fixed || stretches(el) {
		return el.X + e.Width(el) - padding(el).right
	}
	if el.Parent == nil {
		return e.doc.Surface.Width()
	}
	return e.lineEnd(el.Parent)
}

// Runs describes el's children for text flow along with the cursor the flow
// starts from. Text runs are measured at el's font size.
func (e *Engine) Runs(el *dom.Element) ([]text.Run, text.Cursor) {
	size := e.FontSize(el)
	runs := make([]text.Run, len(el.Children))
	for i, c := range el.Children {
		switch child := c.(type) {
		case dom.Text:
			m := e.measure(string(child), size)
			runs[i] = text.Run{Width: m.Width, Height: m.Height()}
		case *dom.Element:
			runs[i] = text.Run{Element: true, X: child.X, Y: child.Y, Width: e.Width(child), Height: e.Height(child)}
		}
	}
	return runs, *e.cursor(el)
}

func (e *Engine) measure(s string, size float64) text.Metrics {
	return e.doc.Surface.MeasureText(s, size)
}

// Measure measures a text run with the document's surface.
func (e *Engine) Measure(s string, size float64) text.Metrics {
	return e.measure(s, size)
}
