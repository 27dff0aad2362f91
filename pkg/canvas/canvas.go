// Package canvas is the entry point for building, mounting and rendering
// element trees.
package canvas

import (
	"errors"
	"image"
	"io"

	"go.uber.org/zap"

	"boxpaint/pkg/dom"
	"boxpaint/pkg/html"
	"boxpaint/pkg/layout"
	"boxpaint/pkg/render"
	"boxpaint/pkg/surface"
	"boxpaint/pkg/text"
)

// DefaultWidth is the surface width used when Mount is given none. The
// default height keeps a 16:9 ratio.
const DefaultWidth = 1600

// ErrNoImage is returned when image output is requested from a canvas whose
// surface does not rasterize.
var ErrNoImage = errors.New("surface does not produce an image")

type options struct {
	logger  *zap.Logger
	fonts   *text.FontConfig
	surface surface.Surface
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithFontConfig selects the font used by the raster surface.
func WithFontConfig(fc *text.FontConfig) Option {
	return func(o *options) { o.fonts = fc }
}

// WithSurface draws onto s instead of a new raster surface. The width and
// height passed to Mount are ignored.
func WithSurface(s surface.Surface) Option {
	return func(o *options) { o.surface = s }
}

// New constructs an element of the given kind.
func New(kind dom.Kind, attrs dom.Attributes, children ...any) (*dom.Element, error) {
	return dom.New(kind, attrs, children...)
}

// Div constructs a block container.
func Div(attrs dom.Attributes, children ...any) (*dom.Element, error) {
	return dom.New(dom.Block, attrs, children...)
}

// Canvas is a mounted, prepared element tree ready to render.
type Canvas struct {
	Root *dom.Element

	doc      *dom.Document
	engine   *layout.Engine
	renderer *render.Renderer
	raster   *surface.GG
}

// Mount attaches root to a new surface and prepares it. A zero width selects
// DefaultWidth and a zero height is derived from the width. If preparation
// fails the tree is released again and may be mounted once it is corrected.
func Mount(root *dom.Element, width, height int, opts ...Option) (*Canvas, error) {
	o := options{logger: zap.NewNop(), fonts: text.DefaultFontConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = width * 9 / 16
	}

	c := &Canvas{Root: root}
	s := o.surface
	if s == nil {
		c.raster = surface.NewGG(width, height, o.fonts, o.logger)
		s = c.raster
	}
	doc, err := dom.NewDocument(root, s)
	if err != nil {
		return nil, err
	}
	c.doc = doc
	c.engine = layout.NewEngine(doc, o.logger)
	if err := c.engine.Prepare(); err != nil {
		doc.Release()
		return nil, err
	}
	c.renderer = render.NewRenderer(c.engine, o.logger)
	o.logger.Debug("mounted canvas",
		zap.Float64("width", s.Width()),
		zap.Float64("height", s.Height()))
	return c, nil
}

// FromHTML parses markup and mounts the result, sized by the body element
// when it sets a width or height.
func FromHTML(markup string, opts ...Option) (*Canvas, error) {
	res, err := html.Parse(markup)
	if err != nil {
		return nil, err
	}
	return Mount(res.Root, res.Width, res.Height, opts...)
}

// Render draws the tree. The image is nil when the canvas draws onto a
// surface given through WithSurface.
func (c *Canvas) Render() (image.Image, error) {
	if err := c.renderer.Render(); err != nil {
		return nil, err
	}
	if c.raster == nil {
		return nil, nil
	}
	return c.raster.Image(), nil
}

// SavePNG renders the tree if needed and writes it to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.ensureRendered(); err != nil {
		return err
	}
	return c.raster.SavePNG(path)
}

// EncodePNG renders the tree if needed and writes it as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.ensureRendered(); err != nil {
		return err
	}
	return c.raster.EncodePNG(w)
}

func (c *Canvas) ensureRendered() error {
	if c.raster == nil {
		return ErrNoImage
	}
	if c.doc.State == dom.Rendered {
		return nil
	}
	_, err := c.Render()
	return err
}

// Snapshot records the prepared geometry of the tree.
func (c *Canvas) Snapshot() layout.Box {
	return c.engine.Snapshot()
}

func (c *Canvas) Document() *dom.Document { return c.doc }

// Engine exposes layout queries on the mounted tree.
func (c *Canvas) Engine() *layout.Engine { return c.engine }
