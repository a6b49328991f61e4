// Package viz renders run diagnostics for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/latticeflow/internal/diag"
)

// Trace renders the average-velocity trace as an ASCII line chart with
// a short summary of its range.
func Trace(trace []float64, width int) string {
	if len(trace) == 0 {
		return "no data to plot"
	}
	if width <= 0 {
		width = 80
	}

	graph := asciigraph.Plot(trace,
		asciigraph.Height(12),
		asciigraph.Width(width),
		asciigraph.Caption("average velocity per iteration"),
	)

	st := diag.Stats(trace)
	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "iterations: %d  min: %.6E  max: %.6E  mean: %.6E\n",
		len(trace), st.Min, st.Max, st.Mean)
	return b.String()
}
