package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/carbocation/pfx"

	"github.com/carbocation/movindex/framestack"
	"github.com/carbocation/movindex/render"
	"github.com/carbocation/movindex/variability"
	"github.com/carbocation/movindex/video"
)

func run(input string, rect video.Rect, windowSize, step, cores int, outputDir string) error {
	start := time.Now()
	defer func() {
		log.Printf("movindex took %.2f seconds", time.Since(start).Seconds())
	}()

	info, err := video.Info(input)
	if err != nil {
		return err
	}
	log.Printf("Source video is %dx%d at %.2f fps", info.Width, info.Height, info.FPS)

	if outputDir == "" {
		outputDir = filepath.Dir(input)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return pfx.Err(err)
	}

	// When a region of interest is requested, analysis runs on an
	// intermediate cropped video rather than on the original.
	source := input
	if rect.Requested() {
		tmpDir, err := os.MkdirTemp("", "movindex")
		if err != nil {
			return pfx.Err(err)
		}
		defer os.RemoveAll(tmpDir)

		cropped := filepath.Join(tmpDir, "cropped"+filepath.Ext(input))
		log.Printf("Cropping %s to %+v", input, rect)
		if err := video.Crop(input, cropped, info, rect); err != nil {
			return err
		}
		source = cropped
	}

	basename := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	frameDir := filepath.Join(outputDir, basename)

	extracted, err := video.ExtractFrames(source, frameDir)
	if err != nil {
		return err
	}
	log.Printf("Frame directory %s holds %d frames", frameDir, extracted)

	frames, err := video.LoadFrames(frameDir, cores)
	if err != nil {
		return err
	}

	shape, kept, err := framestack.Reconcile(frames)
	if err != nil {
		return err
	}
	log.Printf("Retained %d of %d frames at reference shape %dx%d", len(kept), len(frames), shape.Width, shape.Height)

	stack, err := framestack.New(kept)
	if err != nil {
		return err
	}

	sdMap := variability.SDMap(stack)
	sdswMap, err := variability.SlidingSDMap(stack, windowSize, step, cores)
	if err != nil {
		return err
	}

	is1 := sdswMap.Mean()
	is2 := sdMap.Mean()
	row, col, maxSD := variability.MaxCell(sdswMap)
	series := stack.SeriesFloat(row, col, nil)

	for _, artifact := range []struct {
		grid *variability.Grid
		cap  float64
		name string
	}{
		{sdMap, render.DefaultCap, basename + "_sd.tiff"},
		{sdMap, render.AltCap, basename + "_sd_alt.tiff"},
		{sdswMap, render.DefaultCap, basename + "_sdsw.tiff"},
	} {
		path := filepath.Join(outputDir, artifact.name)
		if err := render.SaveTIFF(render.Heatmap(artifact.grid, artifact.cap), path); err != nil {
			return err
		}
	}

	if err := render.Trace(series, filepath.Join(outputDir, basename+"_max_sd_trace.tiff")); err != nil {
		return err
	}

	fmt.Printf("IS1 (sliding-window SD index): %.4f\n", is1)
	fmt.Printf("IS2 (simple SD index): %.4f\n", is2)
	fmt.Printf("Max sliding-window SD: %.4f at pixel (row %d, col %d)\n", maxSD, row, col)

	return appendResult(outputDir, filepath.Base(input), is1)
}

// appendResult adds one tab-separated record to the shared results log,
// creating the log when absent. The file is held open only for the single
// write; callers running several videos against one log must serialize
// externally.
func appendResult(outputDir, inputName string, is1 float64) error {
	f, err := os.OpenFile(filepath.Join(outputDir, "results.txt"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := fmt.Fprintf(f, "%s\t%.4f\n", inputName, is1); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return pfx.Err(f.Close())
}
