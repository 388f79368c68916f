// Package video is the I/O edge of the pipeline: it probes and crops the
// source video via ffmpeg, extracts frames to disk as numbered lossless
// images, and loads them back as grayscale frames for analysis. The frame
// directory doubles as an on-disk cache: when it already holds frames,
// extraction is skipped entirely, so re-runs against the same output
// directory resume without re-decoding.
package video

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/carbocation/pfx"
	"github.com/unixpickle/ffmpego"
)

var (
	// ErrVideoOpen indicates an unreadable or unparseable source video.
	ErrVideoOpen = errors.New("video: unable to open source")

	// ErrCropOutOfBounds indicates a crop rectangle that exceeds the source
	// dimensions.
	ErrCropOutOfBounds = errors.New("video: crop rectangle exceeds source bounds")

	// ErrEmptyFrameSet indicates that no decodable frames were found.
	ErrEmptyFrameSet = errors.New("video: no frames found")
)

// Rect is a crop rectangle. Width or Height of 0 means "to the source edge".
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Requested reports whether the rectangle asks for any cropping at all.
func (r Rect) Requested() bool {
	return r.X > 0 || r.Y > 0 || r.Width > 0 || r.Height > 0
}

// Info probes the source video for its dimensions and frame rate.
func Info(path string) (*ffmpego.VideoInfo, error) {
	info, err := ffmpego.GetVideoInfo(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrVideoOpen, path, err)
	}
	return info, nil
}

// CropBounds resolves a crop rectangle against the source dimensions,
// filling in open-ended width/height, and rejects rectangles that fall
// outside the source.
func CropBounds(info *ffmpego.VideoInfo, r Rect) (x, y, width, height int, err error) {
	if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: negative origin or size in %+v", ErrCropOutOfBounds, r)
	}

	x, y = r.X, r.Y
	width, height = r.Width, r.Height
	if width == 0 {
		width = info.Width - x
	}
	if height == 0 {
		height = info.Height - y
	}

	if width <= 0 || height <= 0 || x+width > info.Width || y+height > info.Height {
		return 0, 0, 0, 0, fmt.Errorf("%w: source is %dx%d, requested %dx%d at (%d, %d)",
			ErrCropOutOfBounds, info.Width, info.Height, width, height, x, y)
	}

	return x, y, width, height, nil
}

// Crop writes a cropped copy of the source video to outPath by shelling out
// to ffmpeg. Requires ffmpeg on the PATH, like the rest of the decoding
// pipeline.
func Crop(inPath, outPath string, info *ffmpego.VideoInfo, r Rect) error {
	x, y, width, height, err := CropBounds(info, r)
	if err != nil {
		return err
	}

	cmd := exec.Command(
		"ffmpeg",
		"-y",
		"-i", inPath,
		"-filter:v", fmt.Sprintf("crop=%d:%d:%d:%d", width, height, x, y),
		outPath,
	)
	cmd.Stderr = os.Stderr

	return pfx.Err(cmd.Run())
}
