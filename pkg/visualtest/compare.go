// Package visualtest compares rendered images against expected ones.
package visualtest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Result describes how two images differ.
type Result struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	// MaxDifference is the largest channel difference seen, 0-255.
	MaxDifference int
	// Diff is set when Options.Diff is on: differing pixels in red over a
	// grayscale copy of the actual image.
	Diff *image.RGBA
}

type Options struct {
	// Tolerance is the largest per-channel difference (0-255) still counted
	// as equal.
	Tolerance int

	// FuzzyRadius lets a pixel match any expected pixel within the radius.
	FuzzyRadius int

	// MaxDifferentPercent passes images whose share of differing pixels is
	// at most this percentage.
	MaxDifferentPercent float64

	Diff bool
}

func DefaultOptions() Options {
	return Options{Tolerance: 2}
}

// Compare compares two images pixel by pixel. Images of different bounds
// never match.
func Compare(actual, expected image.Image, opts Options) (*Result, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &Result{}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}

	res := &Result{Match: true, TotalPixels: bounds.Dx() * bounds.Dy()}
	if opts.Diff {
		res.Diff = image.NewRGBA(bounds)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := difference(actual.At(x, y), expected.At(x, y))
			res.MaxDifference = max(res.MaxDifference, d)

			same := d <= opts.Tolerance ||
				(opts.FuzzyRadius > 0 && fuzzyMatch(actual, expected, x, y, opts.FuzzyRadius, opts.Tolerance))
			if !same {
				res.Match = false
				res.DifferentPixels++
			}
			if res.Diff != nil {
				if same {
					res.Diff.Set(x, y, color.GrayModel.Convert(actual.At(x, y)))
				} else {
					res.Diff.Set(x, y, color.RGBA{255, 0, 0, 255})
				}
			}
		}
	}

	if !res.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(res.DifferentPixels) / float64(res.TotalPixels) * 100
		res.Match = pct <= opts.MaxDifferentPercent
	}
	return res, nil
}

// CompareFiles decodes two PNG files and compares them.
func CompareFiles(actualPath, expectedPath string, opts Options) (*Result, error) {
	actual, err := loadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expected, err := loadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	return Compare(actual, expected, opts)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// difference is the largest 8-bit channel difference between two colors.
func difference(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return max(
		absDiff(ar, br),
		absDiff(ag, bg),
		absDiff(ab, bb),
		absDiff(aa, ba),
	)
}

func absDiff(a, b uint32) int {
	d := int(a>>8) - int(b>>8)
	if d < 0 {
		return -d
	}
	return d
}

func fuzzyMatch(actual, expected image.Image, x, y, radius, tolerance int) bool {
	bounds := actual.Bounds()
	c := actual.At(x, y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := image.Pt(x+dx, y+dy)
			if !p.In(bounds) {
				continue
			}
			if difference(c, expected.At(p.X, p.Y)) <= tolerance {
				return true
			}
		}
	}
	return false
}
