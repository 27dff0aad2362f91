package text

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Metrics is the measured extent of a text run in device pixels.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns the run's line height, ascent plus descent.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// MeasureFunc measures a text run at the font size the caller has in scope.
type MeasureFunc func(s string) Metrics

// FontConfig holds the font file used for text measurement and rendering.
// An empty Regular path selects the Go Regular face bundled with x/image.
type FontConfig struct {
	Regular string

	mu    sync.Mutex
	font  *truetype.Font
	faces map[float64]font.Face
}

// DefaultFontConfig returns a FontConfig using the bundled Go Regular font.
func DefaultFontConfig() *FontConfig {
	return &FontConfig{}
}

// NewFontConfig returns a FontConfig reading its face from path.
func NewFontConfig(path string) *FontConfig {
	return &FontConfig{Regular: path}
}

func (fc *FontConfig) load() (*truetype.Font, error) {
	if fc.font != nil {
		return fc.font, nil
	}
	data := goregular.TTF
	if fc.Regular != "" {
		b, err := os.ReadFile(fc.Regular)
		if err != nil {
			return nil, fmt.Errorf("reading font %s: %w", fc.Regular, err)
		}
		data = b
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	fc.font = f
	return f, nil
}

// Face returns the font face for size, loading the font on first use.
// Faces are cached per size.
func (fc *FontConfig) Face(size float64) (font.Face, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if face, ok := fc.faces[size]; ok {
		return face, nil
	}
	f, err := fc.load()
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size})
	if fc.faces == nil {
		fc.faces = make(map[float64]font.Face)
	}
	fc.faces[size] = face
	return face, nil
}

// Measure measures s with face. Width is the advance of the whole run.
func Measure(face font.Face, s string) Metrics {
	metrics := face.Metrics()
	return Metrics{
		Width:   float64(font.MeasureString(face, s)) / 64,
		Ascent:  float64(metrics.Ascent) / 64,
		Descent: float64(metrics.Descent) / 64,
	}
}
