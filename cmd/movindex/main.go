// movindex computes two movement indices from a video by measuring per-pixel
// temporal variability: IS2, the mean per-pixel standard deviation over the
// whole recording, and IS1, the mean per-pixel sliding-window standard
// deviation. It writes heatmaps of both maps, a trace of the most variable
// pixel, and appends the IS1 result to a shared results log. Note that this
// program requires that ffmpeg be installed. (See
// https://github.com/unixpickle/ffmpego#installation)
package main

import (
	"flag"
	"log"
	"os"

	_ "github.com/carbocation/movindex/compileinfoprint"
	"github.com/carbocation/movindex/video"
)

func main() {
	var input, outputDir string
	var rect video.Rect
	var windowSize, step, cores int

	flag.StringVar(&input, "i", "", "Path to the input video file.")
	flag.IntVar(&rect.X, "x", 0, "(Optional) Left edge of the region of interest, in pixels.")
	flag.IntVar(&rect.Y, "y", 0, "(Optional) Top edge of the region of interest, in pixels.")
	flag.IntVar(&rect.Width, "wd", 0, "(Optional) Width of the region of interest. 0 means the full source width.")
	flag.IntVar(&rect.Height, "ht", 0, "(Optional) Height of the region of interest. 0 means the full source height.")
	flag.IntVar(&windowSize, "w", 7, "Sliding window size, in frames.")
	flag.IntVar(&step, "s", 7, "Sliding window step, in frames.")
	flag.IntVar(&cores, "p", 0, "Number of parallel workers. 0 means all logical cores.")
	flag.StringVar(&outputDir, "o", "", "(Optional) Output directory. Defaults to the input video's directory.")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(input, rect, windowSize, step, cores, outputDir); err != nil {
		log.Fatalln(err)
	}
}
