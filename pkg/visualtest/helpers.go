package visualtest

import (
	"image"
	"image/color"
	"image/draw"

	"boxpaint/pkg/canvas"
)

// RenderHTML renders markup onto a raster surface sized by its body, or the
// default size when the body sets none.
func RenderHTML(markup string, opts ...canvas.Option) (image.Image, error) {
	c, err := canvas.FromHTML(markup, opts...)
	if err != nil {
		return nil, err
	}
	return c.Render()
}

// Rect is a filled rectangle of an expected image.
type Rect struct {
	X, Y, W, H int
	Color      color.Color
}

// Expected builds a white w by h image with rects painted in order.
func Expected(w, h int, rects ...Rect) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for _, r := range rects {
		draw.Draw(img, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H), image.NewUniform(r.Color), image.Point{}, draw.Src)
	}
	return img
}
