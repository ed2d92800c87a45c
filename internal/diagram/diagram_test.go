package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var withPipe = WellDiagramData{
	OuterDiameter: 0.244475,
	InnerDiameter: 0.149225,
	AnnularArea:   0.029452,
	Pressure:      "345 bar",
	Lift:          "103.6 tons",
}

func openBore() WellDiagramData {
	d := withPipe
	d.InnerDiameter = 0
	d.AnnularArea = 0.046942
	d.Lift = "165.1 tons"
	return d
}

func TestDrawASCIIWellSchematic(t *testing.T) {
	out := DrawASCIIWellSchematic(withPipe)
	assert.Contains(t, out, "▲ LIFT 103.6 tons")
	assert.Contains(t, out, "◄─ p = 345 bar")
	assert.Contains(t, out, "┃")
	assert.Contains(t, out, "ID = 149.2 mm")

	bore := DrawASCIIWellSchematic(openBore())
	assert.NotContains(t, bore, "┃")
	assert.Contains(t, bore, "no pipe")
}

func TestDrawASCIIWellSchematic_RowsAligned(t *testing.T) {
	out := DrawASCIIWellSchematic(withPipe)
	var widths []int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ║") {
			end := strings.LastIndex(line, "║")
			widths = append(widths, len([]rune(line[:end])))
		}
	}
	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("LIFT", []string{"103.6 tons", "A = 0.029452 m²"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)), l)
	}
}

func TestWriteWellSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteWellSVG(&buf, withPipe)
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `id="well-inner"`)
	assert.Contains(t, out, `id="leftBox2"`)
	assert.Contains(t, out, "103.6 tons")
	assert.Contains(t, out, "345 bar")

	buf.Reset()
	WriteWellSVG(&buf, openBore())
	out = buf.String()
	assert.NotContains(t, out, `id="well-inner"`)
	assert.NotContains(t, out, `id="leftBox2"`)
	assert.Contains(t, out, `id="leftBox"`)
	assert.Contains(t, out, "165.1 tons")
}

func TestExportCrossSection(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"well.png", "well.svg", "sub/well.pdf"} {
		path, err := ExportCrossSection(withPipe, filepath.Join(dir, name))
		require.NoError(t, err, name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	path, err := ExportCrossSection(openBore(), filepath.Join(dir, "bore.out"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bore.out.png"), path)
}

func TestExportCrossSection_RejectsEmptyBore(t *testing.T) {
	_, err := ExportCrossSection(WellDiagramData{}, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestDrawSweepChart(t *testing.T) {
	assert.Empty(t, DrawSweepChart(nil, "x"))
	out := DrawSweepChart([]float64{0, 10, 20, 30}, "lift (t) vs pressure")
	assert.Contains(t, out, "lift (t) vs pressure")
}
