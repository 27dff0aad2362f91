package surface

import (
	"unicode/utf8"

	"boxpaint/pkg/text"
)

// Op names a recorded paint operation.
type Op string

const (
	OpFillRect Op = "fillRect"
	OpFillText Op = "fillText"
)

// Call is one recorded paint operation. W and H are zero for text; Text and
// Size are empty for rectangles.
type Call struct {
	Op    Op      `json:"op"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Text  string  `json:"text,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Color string  `json:"color"`
}

// Recorder is an in-memory Surface that records paint calls instead of
// rasterising them. Text metrics are deterministic: every rune advances half
// the font size, ascent is 0.8 and descent 0.2 of the font size.
type Recorder struct {
	Converter
	W, H  float64
	Calls []Call
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{W: width, H: height}
}

func (r *Recorder) Width() float64  { return r.W }
func (r *Recorder) Height() float64 { return r.H }

func (r *Recorder) FillRect(x, y, w, h float64, color string) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: color})
}

func (r *Recorder) FillText(s string, x, y, size float64, color string) {
	r.Calls = append(r.Calls, Call{Op: OpFillText, X: x, Y: y, Text: s, Size: size, Color: color})
}

func (r *Recorder) MeasureText(s string, size float64) text.Metrics {
	return text.Metrics{
		Width:   float64(utf8.RuneCountInString(s)) * size / 2,
		Ascent:  size * 0.8,
		Descent: size * 0.2,
	}
}

// Filter returns the recorded calls of the given operation.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
