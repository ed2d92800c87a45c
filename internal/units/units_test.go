package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthToMeters(t *testing.T) {
	assert.InDelta(t, 0.1, LengthToMeters(100, Millimeter), 1e-15)
	assert.InDelta(t, 0.254, LengthToMeters(10, Inch), 1e-15)
	assert.Equal(t, 1.5, LengthToMeters(1.5, Meter))
}

func TestMillimeterFactor(t *testing.T) {
	assert.Equal(t, MetersPerMillimeter, LengthToMeters(1, Millimeter))
	assert.Equal(t, 1.0, MetersTo(MetersPerMillimeter, Millimeter))
	assert.InDelta(t, 244.475, MetersTo(0.244475, Millimeter), 1e-12)
}

func TestPressureToPascals(t *testing.T) {
	assert.Equal(t, 34500000.0, PressureToPascals(345, Bar))
	assert.Equal(t, 6894.757293168, PressureToPascals(1, PSI))
	assert.Equal(t, 101325.0, PressureToPascals(101325, Pascal))
}

func TestLengthRoundTrip(t *testing.T) {
	values := []float64{0, 1, -3.5, 5.875, 0.0254, 1e-9, 12345.678}
	for _, u := range LengthUnits {
		for _, v := range values {
			got := LengthToMeters(MetersTo(v, u), u)
			assert.InDelta(t, v, got, 1e-12*math.Max(1, math.Abs(v)), "%v %s", v, u)

			got = MetersTo(LengthToMeters(v, u), u)
			assert.InDelta(t, v, got, 1e-12*math.Max(1, math.Abs(v)), "%v %s", v, u)
		}
	}
}

func TestPressureRoundTrip(t *testing.T) {
	values := []float64{0, 1, 345, -14.7, 6894.757293168, 1e7}
	for _, u := range PressureUnits {
		for _, v := range values {
			got := PascalsTo(PressureToPascals(v, u), u)
			assert.InDelta(t, v, got, 1e-9*math.Max(1, math.Abs(v)), "%v %s", v, u)
		}
	}
}

func TestParseUnits(t *testing.T) {
	u, err := ParseLengthUnit("IN")
	require.NoError(t, err)
	assert.Equal(t, Inch, u)

	u, err = ParseLengthUnit(" millimetres ")
	require.NoError(t, err)
	assert.Equal(t, Millimeter, u)

	_, err = ParseLengthUnit("ft")
	assert.Error(t, err)

	p, err := ParsePressureUnit("PSI")
	require.NoError(t, err)
	assert.Equal(t, PSI, p)

	p, err = ParsePressureUnit("pa")
	require.NoError(t, err)
	assert.Equal(t, Pascal, p)

	_, err = ParsePressureUnit("atm")
	assert.Error(t, err)

	for _, u := range LengthUnits {
		back, err := ParseLengthUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, back)
	}
	for _, u := range PressureUnits {
		back, err := ParsePressureUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, back)
	}
}

func TestQuantities(t *testing.T) {
	od := LengthQuantity{Value: 10, Unit: Inch}
	assert.InDelta(t, 0.254, float64(od.Meters()), 1e-15)
	assert.Equal(t, "10 in", od.String())

	p := PressureQuantity{Value: 2, Unit: Bar}
	assert.Equal(t, 200000.0, float64(p.Pascals()))
	assert.Equal(t, "2 bar", p.String())
}
