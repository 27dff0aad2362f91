// Package html builds element trees from HTML markup.
package html

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"boxpaint/pkg/css"
	"boxpaint/pkg/dom"
)

// Result is a parsed document. Width and Height are zero unless the body
// element sets them.
type Result struct {
	Root   *dom.Element
	Width  int
	Height int
}

// Parse converts markup into an element tree. Tags without an element kind
// are dropped along with their content, and text made only of line breaks
// and indentation is ignored. A body element with attributes becomes the
// root itself; otherwise its children are the top-level nodes and more than
// one of them are wrapped in a block filling the surface.
func Parse(markup string) (*Result, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	body := findElement(atom.Body, doc)
	if body == nil {
		return nil, fmt.Errorf("no body in document")
	}

	res := &Result{}
	var top []any
	if len(body.Attr) > 0 {
		el, err := res.convertBody(body)
		if err != nil {
			return nil, err
		}
		top = []any{el}
	} else {
		top, err = convertChildren(body)
		if err != nil {
			return nil, err
		}
	}

	switch len(top) {
	case 0:
		return nil, fmt.Errorf("document has no content")
	case 1:
		if el, ok := top[0].(*dom.Element); ok {
			res.Root = el
			return res, nil
		}
	}
	res.Root, err = dom.New(dom.Block, dom.Attributes{"style": css.Style{
		"width":  css.Script("percent(100)"),
		"height": css.Script("percent(100)"),
	}}, top...)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// convertBody turns the body into a block, reading the surface size from its
// width and height attributes or numeric style entries.
func (r *Result) convertBody(n *html.Node) (*dom.Element, error) {
	attrs, err := attributes(n)
	if err != nil {
		return nil, err
	}
	style, _ := attrs["style"].(css.Style)
	r.Width = dimension(attrs["width"], style["width"])
	r.Height = dimension(attrs["height"], style["height"])
	children, err := convertChildren(n)
	if err != nil {
		return nil, err
	}
	return dom.New(dom.Block, attrs, children...)
}

func dimension(attr any, styled css.Value) int {
	if s, ok := attr.(string); ok {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64); err == nil {
			return int(n)
		}
	}
	if n, ok := styled.Number(); ok {
		return int(n)
	}
	return 0
}

func convert(n *html.Node) (any, error) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" && strings.Contains(n.Data, "\n") {
			return nil, nil
		}
		return n.Data, nil
	case html.ElementNode:
		kind, ok := dom.KindForTag(n.Data)
		if !ok {
			return nil, nil
		}
		attrs, err := attributes(n)
		if err != nil {
			return nil, err
		}
		children, err := convertChildren(n)
		if err != nil {
			return nil, err
		}
		return dom.New(kind, attrs, children...)
	}
	return nil, nil
}

func convertChildren(n *html.Node) ([]any, error) {
	var out []any
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		node, err := convert(c)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = append(out, node)
		}
	}
	return out, nil
}

func attributes(n *html.Node) (dom.Attributes, error) {
	attrs := make(dom.Attributes, len(n.Attr))
	for _, a := range n.Attr {
		if a.Key != "style" {
			attrs[a.Key] = a.Val
			continue
		}
		style, err := css.ParseInline(a.Val)
		if err != nil {
			return nil, err
		}
		attrs["style"] = style
	}
	return attrs, nil
}

func findElement(a atom.Atom, n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(a, c); found != nil {
			return found
		}
	}
	return nil
}
