package layout

import (
	"boxpaint/pkg/css"
	"boxpaint/pkg/dom"
)

type edges struct {
	top, right, bottom, left float64
}

func padding(el *dom.Element) edges {
	var p edges
	p.top, _ = el.Style.Number("paddingTop")
	p.right, _ = el.Style.Number("paddingRight")
	p.bottom, _ = el.Style.Number("paddingBottom")
	p.left, _ = el.Style.Number("paddingLeft")
	return p
}

func hasDisplay(el *dom.Element, modes ...css.Display) bool {
	d, ok := el.Style.Display()
	if !ok {
		return false
	}
	for _, m := range modes {
		if d == m {
			return true
		}
	}
	return false
}

// Width is the element's border-box width. A block element, or one with no
// display and no width, stretches to its container. An explicit numeric width
// wins unless display is block or inline-block. Otherwise the width is the sum
// of the children's widths.
func (e *Engine) Width(el *dom.Element) float64 {
	if stretches(el) {
		return e.containerWidth(el)
	}
	if w, ok := fixedWidth(el); ok {
		return w
	}
	return e.intrinsicWidth(el)
}

func fixedWidth(el *dom.Element) (float64, bool) {
	if hasDisplay(el, css.DisplayBlock, css.DisplayInlineBlock) {
		return 0, false
	}
	return el.Style.Number("width")
}

func stretches(el *dom.Element) bool {
	_, displaySet := el.Style.Display()
	return (!displaySet || hasDisplay(el, css.DisplayBlock)) && !el.Style.Has("width")
}

// intrinsicWidth sums the children's widths. Children that would stretch to
// this element contribute their own content width instead.
func (e *Engine) intrinsicWidth(el *dom.Element) float64 {
	pad := padding(el)
	size := e.FontSize(el)
	sum := pad.left + pad.right
	for _, c := range el.Children {
		switch child := c.(type) {
		case dom.Text:
			sum += e.measure(string(child), size).Width
		case *dom.Element:
			if stretches(child) {
				sum += e.intrinsicWidth(child)
			} else {
				sum += e.Width(child)
			}
		}
	}
	return sum
}

func (e *Engine) containerWidth(el *dom.Element) float64 {
	p := el.Parent
	if p == nil {
		return e.doc.Surface.Width()
	}
	pad := padding(p)
	return e.Width(p) - pad.left - pad.right
}

// Height is the element's border-box height: an explicit numeric height unless
// display is block or inline-block, otherwise the tallest child.
func (e *Engine) Height(el *dom.Element) float64 {
	if !hasDisplay(el, css.DisplayBlock, css.DisplayInlineBlock) {
		if h, ok := el.Style.Number("height"); ok {
			return h
		}
	}
	pad := padding(el)
	size := e.FontSize(el)
	tallest := 0.0
	for _, c := range el.Children {
		var h float64
		switch child := c.(type) {
		case dom.Text:
			h = e.measure(string(child), size).Height()
		case *dom.Element:
			h = e.Height(child)
		}
		tallest = max(tallest, h)
	}
	return tallest + pad.top + pad.bottom
}

// FontSize is the font size of the nearest element, el included, that sets one.
func (e *Engine) FontSize(el *dom.Element) float64 {
	for n := el; n != nil; n = n.Parent {
		if fs, ok := n.Style.Number("fontSize"); ok && fs > 0 {
			return fs
		}
	}
	return css.DefaultFontSize
}

// Color is the text color of the nearest element, el included, that sets one.
func (e *Engine) Color(el *dom.Element) string {
	for n := el; n != nil; n = n.Parent {
		if c, ok := n.Style.String("color"); ok {
			return c
		}
	}
	return css.FallbackColor
}
