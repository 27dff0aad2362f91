package text

import (
	"strings"
	"unicode"
)

// Wrap breaks s into lines no wider than width where possible. Fragments are
// taken at word boundaries and packed greedily; a fragment wider than width is
// kept whole on its own line. Whitespace that would open a new line is dropped.
func Wrap(s string, width float64, measure MeasureFunc) []string {
	fragments := splitBoundaries(s)
	if len(fragments) == 0 {
		return nil
	}
	lines := []string{""}
	breakNext := false
	for _, frag := range fragments {
		last := len(lines) - 1
		line := lines[last]
		fits := line == "" || measure(line+frag).Width <= width
		if isSpace(frag) {
			switch {
			case line == "" && last > 0:
			case !fits:
				breakNext = true
			default:
				lines[last] = line + frag
			}
			continue
		}
		if breakNext || !fits {
			lines = append(lines, frag)
			breakNext = false
			continue
		}
		lines[last] = line + frag
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitBoundaries splits text into alternating runs of word characters and
// non-word characters.
func splitBoundaries(s string) []string {
	var parts []string
	var b strings.Builder
	inWord := false
	for i, ch := range s {
		w := isWordRune(ch)
		if i > 0 && w != inWord {
			parts = append(parts, b.String())
			b.Reset()
		}
		inWord = w
		b.WriteRune(ch)
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

func isWordRune(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Cursor is the running insertion point inside a container. Content is placed
// left to right from Left; once X reaches Right the cursor returns to Left and
// moves down by the height of the run that filled the line.
type Cursor struct {
	Left  float64
	Right float64
	X     float64
	Y     float64
}

// NewCursor returns a cursor at the top-left corner of a container spanning
// left to right.
func NewCursor(left, top, right float64) *Cursor {
	return &Cursor{Left: left, Right: right, X: left, Y: top}
}

// MoveTo places the cursor at an absolute position.
func (c *Cursor) MoveTo(x, y float64) {
	c.X, c.Y = x, y
}

// Advance moves past a run of size w by h, wrapping when the line is full.
func (c *Cursor) Advance(w, h float64) {
	c.X += w
	if c.X >= c.Right {
		c.X = c.Left
		c.Y += h
	}
}

// Run is one child of a container as seen by the flow: either an element
// with a known position or a measured text run.
type Run struct {
	Element bool
	X, Y    float64
	Width   float64
	Height  float64
}

// Offset returns the paint position of runs[i] by replaying the flow of every
// preceding sibling from the cursor's starting point. Element siblings resume
// the flow from their own prepared position.
func Offset(runs []Run, i int, c Cursor) (x, y float64) {
	for _, r := range runs[:i] {
		if r.Element {
			c.MoveTo(r.X, r.Y)
		}
		c.Advance(r.Width, r.Height)
	}
	return c.X, c.Y
}
