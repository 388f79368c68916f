package video

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/unixpickle/ffmpego"
)

func TestRectRequested(t *testing.T) {
	for _, v := range []struct {
		rect Rect
		want bool
	}{
		{Rect{}, false},
		{Rect{X: 1}, true},
		{Rect{Y: 1}, true},
		{Rect{Width: 100}, true},
		{Rect{Height: 100}, true},
	} {
		if got := v.rect.Requested(); got != v.want {
			t.Errorf("%+v.Requested() = %v, want %v", v.rect, got, v.want)
		}
	}
}

func TestCropBounds(t *testing.T) {
	info := &ffmpego.VideoInfo{Width: 640, Height: 480}

	for _, v := range []struct {
		rect    Rect
		x, y    int
		w, h    int
		wantErr bool
	}{
		// Open-ended width/height run to the source edge.
		{Rect{X: 10, Y: 20}, 10, 20, 630, 460, false},
		{Rect{X: 0, Y: 0, Width: 640, Height: 480}, 0, 0, 640, 480, false},
		{Rect{X: 100, Y: 100, Width: 100, Height: 100}, 100, 100, 100, 100, false},
		// Anything past the source edge is rejected.
		{Rect{X: 600, Width: 100}, 0, 0, 0, 0, true},
		{Rect{Y: 400, Height: 100}, 0, 0, 0, 0, true},
		{Rect{X: 640}, 0, 0, 0, 0, true},
		{Rect{X: -1}, 0, 0, 0, 0, true},
	} {
		x, y, w, h, err := CropBounds(info, v.rect)
		if v.wantErr {
			if !errors.Is(err, ErrCropOutOfBounds) {
				t.Errorf("%+v: got %v, want ErrCropOutOfBounds", v.rect, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%+v: unexpected error %v", v.rect, err)
			continue
		}
		if x != v.x || y != v.y || w != v.w || h != v.h {
			t.Errorf("%+v: got (%d, %d, %d, %d), want (%d, %d, %d, %d)", v.rect, x, y, w, h, v.x, v.y, v.w, v.h)
		}
	}
}

func TestLoadFramesPreservesOrder(t *testing.T) {
	dir := t.TempDir()

	// Ten frames, each tagged with its index via the top-left pixel.
	for i := 0; i < 10; i++ {
		img := image.NewGray(image.Rect(0, 0, 8, 6))
		img.SetGray(0, 0, color.Gray{Y: uint8(i * 10)})

		name := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i+1))
		if err := imaging.Save(img, name); err != nil {
			t.Fatal(err)
		}
	}

	frames, err := LoadFrames(dir, 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(frames) != 10 {
		t.Fatalf("loaded %d frames, want 10", len(frames))
	}

	for i, frame := range frames {
		if got, want := frame.GrayAt(0, 0).Y, uint8(i*10); got != want {
			t.Errorf("frame %d tag = %d, want %d", i, got, want)
		}
		if b := frame.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
			t.Errorf("frame %d is %dx%d, want 8x6", i, b.Dx(), b.Dy())
		}
	}
}

func TestLoadFramesEmptyDirectory(t *testing.T) {
	if _, err := LoadFrames(t.TempDir(), 1); !errors.Is(err, ErrEmptyFrameSet) {
		t.Errorf("got %v, want ErrEmptyFrameSet", err)
	}
}

func TestExtractFramesSkipsPopulatedDirectory(t *testing.T) {
	dir := t.TempDir()

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	if err := imaging.Save(img, filepath.Join(dir, "frame_00001.png")); err != nil {
		t.Fatal(err)
	}

	// The video path is bogus, but the populated cache directory must win
	// before any decoding is attempted.
	count, err := ExtractFrames("does-not-exist.mp4", dir)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("got %d cached frames, want 1", count)
	}
}
