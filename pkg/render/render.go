package render

import (
	"go.uber.org/zap"

	"boxpaint/pkg/dom"
	"boxpaint/pkg/layout"
	"boxpaint/pkg/text"
)

// Renderer paints a prepared document onto its surface, root first, each
// element's background before its children.
type Renderer struct {
	engine *layout.Engine
	logger *zap.Logger
}

func NewRenderer(engine *layout.Engine, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{engine: engine, logger: logger}
}

// Render draws the document once. The document must have been prepared and
// not rendered before.
func (r *Renderer) Render() error {
	doc := r.engine.Document()
	switch doc.State {
	case dom.Constructed:
		return dom.ErrNotPrepared
	case dom.Rendered:
		return dom.ErrAlreadyRendered
	}
	r.drawElement(doc.Root)
	doc.State = dom.Rendered
	return nil
}

func (r *Renderer) drawElement(el *dom.Element) {
	s := el.Document().Surface
	w, h := r.engine.Width(el), r.engine.Height(el)
	if el.X >= s.Width() || el.X+w < 0 || el.Y >= s.Height() || el.Y+h < 0 {
		r.logger.Debug("culled element",
			zap.Stringer("kind", el.Kind),
			zap.Float64("x", el.X),
			zap.Float64("y", el.Y))
		return
	}

	if bg, ok := el.Style.String("backgroundColor"); ok {
		s.FillRect(el.X, el.Y, w, h, bg)
	}

	var runs []text.Run
	var start text.Cursor
	for i, c := range el.Children {
		switch child := c.(type) {
		case *dom.Element:
			r.drawElement(child)
		case dom.Text:
			if runs == nil {
				runs, start = r.engine.Runs(el)
			}
			x, y := text.Offset(runs, i, start)
			r.drawText(el, string(child), x, y, start.Right-start.Left)
		}
	}
}

// drawText wraps s to the container's content width and draws one line per
// row, each row as tall as its measured line.
func (r *Renderer) drawText(el *dom.Element, s string, x, y, width float64) {
	surf := el.Document().Surface
	size := r.engine.FontSize(el)
	color := r.engine.Color(el)
	measure := func(line string) text.Metrics {
		return r.engine.Measure(line, size)
	}
	for _, line := range text.Wrap(s, width, measure) {
		surf.FillText(line, x, y, size, color)
		y += measure(line).Height()
	}
}
