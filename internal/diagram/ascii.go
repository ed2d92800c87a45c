package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// WellDiagramData holds what the schematics show.
type WellDiagramData struct {
	// Geometry (m)
	OuterDiameter float64
	InnerDiameter float64 // 0 when there is no pipe

	AnnularArea float64 // m²

	// Display strings, already formatted by the caller
	Pressure string // e.g. "345 bar"
	Lift     string // e.g. "103.6 tons"
}

// HasPipe reports whether the inner string should be drawn.
func (d WellDiagramData) HasPipe() bool {
	return d.InnerDiameter > 0
}

// DrawASCIIWellSchematic draws the bore, the pipe (if any) and the
// pressurized annulus, with the lift and pressure labels.
func DrawASCIIWellSchematic(data WellDiagramData) string {
	var sb strings.Builder

	// Scale factors for ASCII drawing
	widthChars := 30
	heightChars := 10

	left, pipe, right := widthChars, 0, 0
	if data.HasPipe() && data.OuterDiameter > 0 {
		pipe = int(math.Round(data.InnerDiameter / data.OuterDiameter * float64(widthChars)))
		pipe = max(pipe, 2)
		pipe = min(pipe, widthChars-2)
		left = (widthChars - pipe) / 2
		right = widthChars - pipe - left
	}

	// The lift arrow sits on the annulus when there is a pipe, else mid-bore.
	arrowCol := 3 + widthChars/2
	if pipe > 0 {
		arrowCol = 3 + left/2
	}
	pad := strings.Repeat(" ", arrowCol)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s▲ LIFT %s\n", pad, data.Lift))
	sb.WriteString(fmt.Sprintf("%s│\n", pad))

	for i := 0; i < heightChars; i++ {
		fill := strings.Repeat("▓", left)
		if pipe > 0 {
			if i == heightChars-1 {
				fill += "┗" + strings.Repeat("━", pipe-2) + "┛"
			} else {
				fill += "┃" + strings.Repeat(" ", pipe-2) + "┃"
			}
			fill += strings.Repeat("▓", right)
		}

		sb.WriteString(fmt.Sprintf("  ║%s║", fill))
		if i == heightChars/2 {
			sb.WriteString(fmt.Sprintf(" ◄─ p = %s", data.Pressure))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  ║%s║\n", strings.Repeat("░", widthChars)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  ▓▓▓ = Pressurized area A = %.6f m²\n", data.AnnularArea))
	sb.WriteString(fmt.Sprintf("  OD = %.1f mm", data.OuterDiameter*1000))
	if data.HasPipe() {
		sb.WriteString(fmt.Sprintf(", ID = %.1f mm\n", data.InnerDiameter*1000))
	} else {
		sb.WriteString(", no pipe (full bore)\n")
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
