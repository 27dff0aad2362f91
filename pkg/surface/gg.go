package surface

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"boxpaint/pkg/text"
)

// GG is a raster Surface backed by a gg drawing context.
type GG struct {
	Converter
	context *gg.Context
	fonts   *text.FontConfig
	logger  *zap.Logger
}

// NewGG allocates a white width x height raster surface. A nil fonts uses the
// bundled default face.
func NewGG(width, height int, fonts *text.FontConfig, logger *zap.Logger) *GG {
	if fonts == nil {
		fonts = text.DefaultFontConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &GG{context: dc, fonts: fonts, logger: logger}
}

func (s *GG) Width() float64  { return float64(s.context.Width()) }
func (s *GG) Height() float64 { return float64(s.context.Height()) }

func (s *GG) FillRect(x, y, w, h float64, color string) {
	if w <= 0 || h <= 0 {
		return
	}
	s.context.SetHexColor(color)
	s.context.DrawRectangle(x, y, w, h)
	s.context.Fill()
}

func (s *GG) FillText(str string, x, y, size float64, color string) {
	face, ok := s.face(size)
	if !ok {
		return
	}
	s.context.SetFontFace(face)
	s.context.SetHexColor(color)
	ascent := float64(face.Metrics().Ascent) / 64
	s.context.DrawString(str, x, y+ascent)
}

func (s *GG) MeasureText(str string, size float64) text.Metrics {
	face, ok := s.face(size)
	if !ok {
		// rough estimate when no face can be loaded
		return text.Metrics{Width: float64(len(str)) * size * 0.6, Ascent: size * 0.8, Descent: size * 0.2}
	}
	return text.Measure(face, str)
}

func (s *GG) face(size float64) (font.Face, bool) {
	face, err := s.fonts.Face(size)
	if err != nil {
		s.logger.Warn("font face unavailable", zap.Float64("size", size), zap.Error(err))
		return nil, false
	}
	return face, true
}

// Image returns the surface's pixel buffer.
func (s *GG) Image() image.Image {
	return s.context.Image()
}

func (s *GG) SavePNG(filename string) error {
	return s.context.SavePNG(filename)
}

func (s *GG) EncodePNG(w io.Writer) error {
	return s.context.EncodePNG(w)
}
