package video

import (
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"
)

// LoadFrames decodes the extracted frame files in frameDir into grayscale
// frames, in temporal order. Decoding fans out to a fixed pool of workers
// (all logical cores when workers <= 0); each worker writes into its own
// index slot so the returned order never depends on scheduling.
func LoadFrames(frameDir string, workers int) ([]*image.Gray, error) {
	names, err := listFrameFiles(frameDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEmptyFrameSet, frameDir, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s holds no frame images", ErrEmptyFrameSet, frameDir)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	frames := make([]*image.Gray, len(names))
	errs := make(chan error, len(names))
	indices := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				img, err := imaging.Open(filepath.Join(frameDir, names[idx]))
				if err != nil {
					errs <- fmt.Errorf("decoding %s: %v", names[idx], err)
					continue
				}
				frames[idx] = toGray(img)
			}
		}()
	}

	for idx := range names {
		indices <- idx
	}
	close(indices)
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}

	return frames, nil
}

func toGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}

	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}
