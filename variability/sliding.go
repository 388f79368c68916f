package variability

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/carbocation/movindex/framestack"
)

// SlidingSDMap computes, for each pixel, the mean of population standard
// deviations taken over sliding windows of that pixel's time series. Windows
// are `window` samples long and start at offsets 0, step, 2*step, ... while
// the offset is at most N-window; a series shorter than one window yields 0
// for that pixel. The per-pixel work is independent, so rows are fanned out
// to a fixed pool of `workers` goroutines (defaulting to all logical cores
// when workers <= 0), each writing into its own disjoint cells of the
// preallocated result so the output is deterministic regardless of
// scheduling.
func SlidingSDMap(s *framestack.Stack, window, step, workers int) (*Grid, error) {
	if window <= 0 || step <= 0 {
		return nil, fmt.Errorf("%w: window=%d step=%d", ErrInvalidParameter, window, step)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	height, width, frames := s.Dims()
	g := NewGrid(height, width)

	rows := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			series := make([]float64, frames)
			for row := range rows {
				for col := 0; col < width; col++ {
					series = s.SeriesFloat(row, col, series)
					g.Values[row*width+col] = slidingSD(series, window, step)
				}
			}
		}()
	}

	for row := 0; row < height; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()

	return g, nil
}

// slidingSD averages the population SD over each kept window of the series.
// The number of windows averaged is floor((N-window)/step)+1 for N >= window.
func slidingSD(series []float64, window, step int) float64 {
	n := len(series)
	if n < window {
		return 0
	}

	sum := 0.0
	count := 0
	for offset := 0; offset+window <= n; offset += step {
		sum += stat.PopStdDev(series[offset:offset+window], nil)
		count++
	}

	return sum / float64(count)
}
