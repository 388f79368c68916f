package render

import (
	"bytes"
	"image"

	_ "image/png"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"
)

// Trace plots a pixel's time series as a line chart and writes it to path as
// TIFF. The Y range spans the observed min and max; a flat series gets one
// unit of padding on each side so the axis keeps a usable extent.
func Trace(series []float64, path string) error {
	yMin, err := stats.Min(series)
	if err != nil {
		return pfx.Err(err)
	}
	yMax, err := stats.Max(series)
	if err != nil {
		return pfx.Err(err)
	}

	graph := chart.Chart{
		Width:  512,
		Height: 256,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: intSeq(len(series)),
				YValues: series,
			},
		},
	}

	// A flat series needs a padded axis: go-chart rejects a zero data range,
	// and a nil *ContinuousRange must never reach the Range interface field
	// (the renderer dereferences it).
	if yMin == yMax {
		yMin, yMax = yMin-1, yMax+1
	}
	graph.YAxis.Range = &chart.ContinuousRange{Min: yMin, Max: yMax}

	// go-chart renders PNG; re-encode so all artifacts share one format.
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	img, _, err := image.Decode(buffer)
	if err != nil {
		return pfx.Err(err)
	}

	return SaveTIFF(img, path)
}

func intSeq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
