package layout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xlab/treeprint"

	"boxpaint/pkg/dom"
	"boxpaint/pkg/text"
)

// Box is a read-only record of a prepared element or text run.
type Box struct {
	Kind     string            `json:"kind"`
	X        float64           `json:"x"`
	Y        float64           `json:"y"`
	Width    float64           `json:"width"`
	Height   float64           `json:"height"`
	Text     string            `json:"text,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Children []Box             `json:"children,omitempty"`
}

// Snapshot records the geometry of the prepared tree. Text runs are placed
// where the renderer starts drawing them.
func (e *Engine) Snapshot() Box {
	return e.snapshot(e.doc.Root)
}

func (e *Engine) snapshot(el *dom.Element) Box {
	box := Box{
		Kind:   el.Kind.String(),
		X:      el.X,
		Y:      el.Y,
		Width:  e.Width(el),
		Height: e.Height(el),
	}
	if names := el.Style.Names(); len(names) > 0 {
		box.Style = make(map[string]string, len(names))
		for _, name := range names {
			box.Style[name], _ = el.Style.String(name)
		}
	}
	runs, start := e.Runs(el)
	for i, c := range el.Children {
		switch child := c.(type) {
		case dom.Text:
			x, y := text.Offset(runs, i, start)
			box.Children = append(box.Children, Box{
				Kind:   "text",
				X:      x,
				Y:      y,
				Width:  runs[i].Width,
				Height: runs[i].Height,
				Text:   string(child),
			})
		case *dom.Element:
			box.Children = append(box.Children, e.snapshot(child))
		}
	}
	return box
}

// Tree renders a snapshot as an indented tree for debugging.
func Tree(box Box) treeprint.Tree {
	tree := treeprint.NewWithRoot(box.label())
	addBranches(tree, box.Children)
	return tree
}

func addBranches(tree treeprint.Tree, boxes []Box) {
	for _, b := range boxes {
		if len(b.Children) == 0 {
			tree.AddNode(b.label())
			continue
		}
		addBranches(tree.AddBranch(b.label()), b.Children)
	}
}

func (b Box) label() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%g,%g) %gx%g", b.Kind, b.X, b.Y, b.Width, b.Height)
	if b.Text != "" {
		fmt.Fprintf(&sb, " %q", b.Text)
	}
	for _, name := range sortedKeys(b.Style) {
		fmt.Fprintf(&sb, " %s=%s", name, b.Style[name])
	}
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
