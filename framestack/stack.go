package framestack

import (
	"fmt"
	"image"
)

// Stack is a 3-D volume of intensity samples indexed (row, column, time).
// Samples are stored series-contiguously: each pixel's full time series
// occupies one contiguous run, so per-pixel statistics read a single slice
// with no copying.
type Stack struct {
	height int
	width  int
	frames int
	data   []uint8
}

// New packs a reconciled frame sequence into a Stack, preserving temporal
// order. Every frame must share one shape; pass the output of Reconcile.
func New(frames []*image.Gray) (*Stack, error) {
	if len(frames) == 0 {
		return nil, ErrInsufficientFrames
	}

	shape := ShapeOf(frames[0])
	s := &Stack{
		height: shape.Height,
		width:  shape.Width,
		frames: len(frames),
		data:   make([]uint8, shape.Height*shape.Width*len(frames)),
	}

	for t, frame := range frames {
		if got := ShapeOf(frame); got != shape {
			return nil, fmt.Errorf("framestack: frame %d is %dx%d, want %dx%d", t, got.Width, got.Height, shape.Width, shape.Height)
		}

		b := frame.Bounds()
		for row := 0; row < shape.Height; row++ {
			off := frame.PixOffset(b.Min.X, b.Min.Y+row)
			pixRow := frame.Pix[off : off+shape.Width]
			for col, v := range pixRow {
				s.data[(row*shape.Width+col)*s.frames+t] = v
			}
		}
	}

	return s, nil
}

// Dims reports the stack's height, width, and time-axis length.
func (s *Stack) Dims() (height, width, frames int) {
	return s.height, s.width, s.frames
}

// At reports the sample at (row, col) in frame t.
func (s *Stack) At(row, col, t int) uint8 {
	return s.data[(row*s.width+col)*s.frames+t]
}

// Series returns the time series at (row, col) as a view into the stack. The
// caller must not modify it.
func (s *Stack) Series(row, col int) []uint8 {
	start := (row*s.width + col) * s.frames
	return s.data[start : start+s.frames]
}

// SeriesFloat copies the time series at (row, col) into dst as float64
// values, allocating when dst is too small.
func (s *Stack) SeriesFloat(row, col int, dst []float64) []float64 {
	series := s.Series(row, col)
	if cap(dst) < len(series) {
		dst = make([]float64, len(series))
	}
	dst = dst[:len(series)]
	for i, v := range series {
		dst[i] = float64(v)
	}
	return dst
}
