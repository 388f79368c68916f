// Package variability computes per-pixel temporal variability maps over a
// frame stack and reduces them to the two scalar movement indices: IS2, the
// mean of each pixel's full-series standard deviation, and IS1, the mean of
// each pixel's averaged sliding-window standard deviation. All deviations are
// population deviations (divisor N, no Bessel correction).
package variability

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/carbocation/movindex/framestack"
)

// ErrInvalidParameter indicates a non-positive window size or step.
var ErrInvalidParameter = errors.New("variability: window size and step must be positive")

// Grid is a 2-D map of per-pixel values stored row-major.
type Grid struct {
	Height int
	Width  int
	Values []float64
}

// NewGrid allocates a zeroed height x width grid.
func NewGrid(height, width int) *Grid {
	return &Grid{
		Height: height,
		Width:  width,
		Values: make([]float64, height*width),
	}
}

// At reports the value at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.Values[row*g.Width+col]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v float64) {
	g.Values[row*g.Width+col] = v
}

// Mean reports the arithmetic mean of all cells.
func (g *Grid) Mean() float64 {
	return stat.Mean(g.Values, nil)
}

// SDMap computes the population standard deviation of each pixel's full time
// series. This is a single bulk reduction; it needs no worker dispatch.
func SDMap(s *framestack.Stack) *Grid {
	height, width, frames := s.Dims()
	g := NewGrid(height, width)

	series := make([]float64, frames)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			series = s.SeriesFloat(row, col, series)
			g.Set(row, col, stat.PopStdDev(series, nil))
		}
	}

	return g
}
