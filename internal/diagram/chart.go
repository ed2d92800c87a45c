package diagram

import (
	"github.com/guptarohit/asciigraph"
)

// DrawSweepChart plots ys (one point per sweep step) as a terminal line
// chart.
func DrawSweepChart(ys []float64, caption string) string {
	if len(ys) == 0 {
		return ""
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}
