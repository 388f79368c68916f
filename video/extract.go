package video

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/unixpickle/ffmpego"
)

// ExtractFrames decodes every frame of the video into frameDir as numbered
// lossless PNGs and reports how many frames the directory holds. When the
// directory already contains frames, extraction is skipped and the existing
// frames are reused as-is (presence check only, no staleness detection).
func ExtractFrames(videoPath, frameDir string) (int, error) {
	if existing, err := listFrameFiles(frameDir); err == nil && len(existing) > 0 {
		log.Printf("Frames already exist in %s; skipping extraction. Found %d frames.", frameDir, len(existing))
		return len(existing), nil
	}

	if err := os.MkdirAll(frameDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create frame directory %s: %v", frameDir, err)
	}

	reader, err := ffmpego.NewVideoReader(videoPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrVideoOpen, videoPath, err)
	}
	defer reader.Close()

	count := 0
	for {
		frame, err := reader.ReadFrame()
		if err == io.EOF {
			break
		} else if err != nil {
			return count, fmt.Errorf("decoding frame %d of %s: %v", count+1, videoPath, err)
		}

		out := filepath.Join(frameDir, fmt.Sprintf("frame_%05d.png", count+1))
		if err := imaging.Save(frame, out); err != nil {
			return count, err
		}
		count++
	}

	if count == 0 {
		return 0, fmt.Errorf("%w: %s decoded to zero frames", ErrEmptyFrameSet, videoPath)
	}

	return count, nil
}

// listFrameFiles returns the PNG filenames in frameDir in name order, which
// matches temporal order because extraction zero-pads the frame number.
func listFrameFiles(frameDir string) ([]string, error) {
	entries, err := os.ReadDir(frameDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".png") {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}
