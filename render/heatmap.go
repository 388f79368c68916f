// Package render turns variability maps into colorized heatmap images and a
// pixel time series into a line-plot image, both saved as TIFF.
package render

import (
	"image"
	"image/color"
	"os"

	"github.com/carbocation/pfx"
	"golang.org/x/image/tiff"

	"github.com/carbocation/movindex/variability"
)

// Color caps for heatmap domains. Values at or above the cap saturate to the
// hottest color.
const (
	DefaultCap = 50.0
	AltCap     = 25.0
)

// gradient stops from cold to hot, positions on [0, 1].
var gradient = []struct {
	pos float64
	c   color.RGBA
}{
	{0.00, color.RGBA{0, 0, 131, 255}},
	{0.25, color.RGBA{0, 255, 255, 255}},
	{0.50, color.RGBA{0, 255, 0, 255}},
	{0.75, color.RGBA{255, 255, 0, 255}},
	{1.00, color.RGBA{128, 0, 0, 255}},
}

// Heatmap colorizes a grid over the domain [0, cap]. Each cell becomes one
// pixel.
func Heatmap(g *variability.Grid, cap float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			img.SetRGBA(col, row, colorAt(g.At(row, col)/cap))
		}
	}

	return img
}

// colorAt linearly interpolates the gradient at position t, clamped to
// [0, 1].
func colorAt(t float64) color.RGBA {
	if t <= 0 {
		return gradient[0].c
	}
	if t >= 1 {
		return gradient[len(gradient)-1].c
	}

	for i := 1; i < len(gradient); i++ {
		lo, hi := gradient[i-1], gradient[i]
		if t > hi.pos {
			continue
		}

		f := (t - lo.pos) / (hi.pos - lo.pos)
		return color.RGBA{
			R: uint8(float64(lo.c.R) + f*(float64(hi.c.R)-float64(lo.c.R))),
			G: uint8(float64(lo.c.G) + f*(float64(hi.c.G)-float64(lo.c.G))),
			B: uint8(float64(lo.c.B) + f*(float64(hi.c.B)-float64(lo.c.B))),
			A: 255,
		}
	}

	return gradient[len(gradient)-1].c
}

// SaveTIFF writes img to path as an uncompressed TIFF.
func SaveTIFF(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := tiff.Encode(f, img, nil); err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(f.Close())
}
