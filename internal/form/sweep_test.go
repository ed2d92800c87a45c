package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	points, err := Sweep(Default(), 0, 400, 5)
	require.NoError(t, err)
	require.Len(t, points, 5)

	assert.Equal(t, []float64{0, 100, 200, 300, 400}, []float64{
		points[0].Pressure, points[1].Pressure, points[2].Pressure, points[3].Pressure, points[4].Pressure,
	})

	tons := Tons(points)
	assert.Equal(t, 0.0, tons[0])
	for i := 1; i < len(tons); i++ {
		assert.Greater(t, tons[i], tons[i-1])
	}
	// lift is linear in pressure
	assert.InDelta(t, tons[1]*4, tons[4], 1e-9)
}

func TestSweep_Errors(t *testing.T) {
	_, err := Sweep(Default(), 0, 100, 1)
	assert.Error(t, err)

	_, err = Sweep(Default(), 100, 0, 3)
	assert.Error(t, err)

	_, err = Sweep(Default(), -10, 10, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	s := Default()
	s.OuterDCustom = "1"
	_, err = Sweep(s, 0, 10, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOutcomeDiagramData(t *testing.T) {
	out := Calculate(Default())
	d, ok := out.DiagramData(1)
	require.True(t, ok)
	assert.True(t, d.HasPipe())
	assert.Equal(t, "103.6 tons", d.Lift)
	assert.Equal(t, "345 bar", d.Pressure)

	s := Default()
	s.Pressure = "x"
	_, ok = Calculate(s).DiagramData(1)
	assert.False(t, ok)
}
