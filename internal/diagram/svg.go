package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// Schematic canvas size in user units.
const (
	SchematicWidth  = 600
	SchematicHeight = 600
)

// boxLayout places the pressure boxes, labels and lift arrow. The layout
// differs when there is no pipe: the boxes widen to meet in the middle and
// the labels move to the centre line.
type boxLayout struct {
	leftX, leftW   int
	rightX, rightW int
	liftX          int
	pressureX      int
	pressureY      int
}

var (
	pipeLayout = boxLayout{
		leftX: 30, leftW: 190,
		rightX: 380, rightW: 190,
		liftX:     125,
		pressureX: 480, pressureY: 240,
	}
	openBoreLayout = boxLayout{
		leftX: 36, leftW: 262,
		rightX: 302, rightW: 262,
		liftX:     300,
		pressureX: 300, pressureY: 500,
	}
)

// WriteWellSVG writes the well schematic as SVG.
func WriteWellSVG(w io.Writer, data WellDiagramData) {
	l := openBoreLayout
	if data.HasPipe() {
		l = pipeLayout
	}

	canvas := svg.New(w)
	canvas.Start(SchematicWidth, SchematicHeight, `viewBox="0 0 600 600"`)
	canvas.Title("Stringlift schematic")

	// Casing
	canvas.Rect(20, 80, 10, 440, `id="casingLeft"`, "fill:#555")
	canvas.Rect(570, 80, 10, 440, `id="casingRight"`, "fill:#555")

	// Pressurized annulus
	canvas.Rect(l.leftX, 260, l.leftW, 200, `id="leftBox"`, "fill:#6495ed;fill-opacity:0.6")
	canvas.Rect(l.rightX, 260, l.rightW, 200, `id="rightBox"`, "fill:#6495ed;fill-opacity:0.6")

	if data.HasPipe() {
		canvas.Rect(l.leftX, 100, l.leftW, 150, `id="leftBox2"`, "fill:#6495ed;fill-opacity:0.25")
		canvas.Rect(l.rightX, 100, l.rightW, 150, `id="rightBox2"`, "fill:#6495ed;fill-opacity:0.25")

		canvas.Gid("well-inner")
		canvas.Rect(230, 40, 140, 420, "fill:#d2b48c;stroke:#8b4513;stroke-width:6")
		canvas.Gend()
	}

	// Lift arrow and labels
	canvas.Gid("liftArrow")
	canvas.Line(l.liftX, 340, l.liftX, 280, "stroke:#c00;stroke-width:4")
	canvas.Polygon(
		[]int{l.liftX, l.liftX - 13, l.liftX + 13},
		[]int{260, 280, 280},
		"fill:#c00")
	canvas.Gend()
	canvas.Text(l.liftX, 230, data.Lift, `id="liftBoxValue"`, "text-anchor:middle;font-size:24px;font-weight:bold")
	canvas.Text(l.pressureX, l.pressureY, data.Pressure, `id="pressureValue"`, "text-anchor:middle;font-size:22px")

	canvas.End()
}
