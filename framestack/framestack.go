// Package framestack turns a decoded sequence of grayscale video frames into
// a uniform 3-D volume (height x width x time) suitable for per-pixel
// time-series statistics. Decoders occasionally emit frames whose dimensions
// disagree with the rest of the video; those frames are discarded rather than
// resized, keyed off the modal frame shape.
package framestack

import (
	"errors"
	"image"
)

var (
	// ErrEmptyInput indicates that no frames were supplied at all.
	ErrEmptyInput = errors.New("framestack: no input frames")

	// ErrInsufficientFrames indicates that every supplied frame was rejected
	// and there is nothing to stack.
	ErrInsufficientFrames = errors.New("framestack: no frames remain after reconciliation")
)

// Shape is the (height, width) pairing of one frame.
type Shape struct {
	Height int
	Width  int
}

// ShapeOf reports the shape of a decoded frame.
func ShapeOf(img *image.Gray) Shape {
	b := img.Bounds()
	return Shape{Height: b.Dy(), Width: b.Dx()}
}
