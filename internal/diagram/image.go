package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const circleSegments = 180

type label struct {
	x, y float64
	text string
}

// ExportCrossSection exports a cross-section of the bore and pipe to an image
// file. The format follows the extension (.png, .svg, .pdf); any other
// extension gets ".png" appended. It returns the path actually written.
func ExportCrossSection(data WellDiagramData, filename string) (string, error) {
	if data.OuterDiameter <= 0 {
		return "", fmt.Errorf("outer diameter must be positive to draw a cross-section")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Annulus Cross-Section  (lift %s at %s)", data.Lift, data.Pressure)
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	ro := data.OuterDiameter * 1000 / 2
	ri := data.InnerDiameter * 1000 / 2

	// Pressurized area: outer ring with the pipe as a hole of opposite winding
	rings := []plotter.XYer{circle(ro, false)}
	if data.HasPipe() {
		rings = append(rings, circle(ri, true))
	}
	annulus, err := plotter.NewPolygon(rings...)
	if err != nil {
		return "", err
	}
	annulus.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	annulus.LineStyle.Width = 0
	p.Add(annulus)

	// Bore wall
	bore, err := plotter.NewLine(circle(ro, false))
	if err != nil {
		return "", err
	}
	bore.LineStyle.Width = vg.Points(2)
	bore.LineStyle.Color = color.Black
	p.Add(bore)

	// Pipe wall
	if data.HasPipe() {
		pipe, err := plotter.NewLine(circle(ri, false))
		if err != nil {
			return "", err
		}
		pipe.LineStyle.Width = vg.Points(2)
		pipe.LineStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		p.Add(pipe)
	}

	// Add annotations
	labels := []label{
		{0, ro * 1.08, fmt.Sprintf("OD=%.1fmm", ro*2)},
		{0, -(ri + ro) / 2, fmt.Sprintf("A=%.6fm²", data.AnnularArea)},
	}
	if data.HasPipe() {
		labels = append(labels, label{0, 0, fmt.Sprintf("ID=%.1fmm", ri*2)})
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return "", err
		}
		p.Add(l)
	}

	// Equal axes so circles stay round
	lim := ro * 1.2
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	size := 6 * vg.Inch
	if err := p.Save(size, size, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// circle approximates a circle of radius r centred on the origin.
func circle(r float64, clockwise bool) plotter.XYs {
	pts := make(plotter.XYs, circleSegments+1)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / circleSegments
		if clockwise {
			theta = -theta
		}
		pts[i] = plotter.XY{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return pts
}
