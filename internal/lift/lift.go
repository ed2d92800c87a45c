// Package lift computes the axial force a pressurized annulus exerts on a
// string of pipe.
//
// Compute is a pure function of its three SI inputs: it keeps no state,
// performs no I/O and never rounds.
package lift

import (
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/stringlift/internal/units"
)

// StandardGravity converts kilogram-force to newtons (m/s²).
const StandardGravity = 9.80665

// Input holds the unit-normalized values the calculator works on.
type Input struct {
	InnerDiameter float64 // m, 0 for no pipe
	OuterDiameter float64 // m
	Pressure      float64 // Pa
}

// NewInput normalizes entered quantities to SI.
func NewInput(g units.GeometryInput, p units.PressureQuantity) Input {
	return Input{
		InnerDiameter: float64(g.InnerDiameter.Meters()),
		OuterDiameter: float64(g.OuterDiameter.Meters()),
		Pressure:      float64(p.Pascals()),
	}
}

// Result holds the lift produced by an annulus.
type Result struct {
	LiftForceNewtons    float64 `json:"lift_force_n"`
	LiftForceKgf        float64 `json:"lift_force_kgf"`
	LiftForceMetricTons float64 `json:"lift_force_t"`
	AnnularAreaSqMeters float64 `json:"annular_area_m2"`
	InnerDiameterMeters float64 `json:"inner_diameter_m"`
	OuterDiameterMeters float64 `json:"outer_diameter_m"`
	PressurePascals     float64 `json:"pressure_pa"`
}

// Force returns the lift as a typed SI force.
func (r *Result) Force() unit.Force { return unit.Force(r.LiftForceNewtons) }

// Inner returns the inner diameter as a typed SI length.
func (r *Result) Inner() unit.Length { return unit.Length(r.InnerDiameterMeters) }

// Outer returns the outer diameter as a typed SI length.
func (r *Result) Outer() unit.Length { return unit.Length(r.OuterDiameterMeters) }

// Area returns the annular area as a typed SI area.
func (r *Result) Area() unit.Area { return unit.Area(r.AnnularAreaSqMeters) }

// Pressure returns the applied pressure as a typed SI pressure.
func (r *Result) Pressure() unit.Pressure { return unit.Pressure(r.PressurePascals) }

// HasPipe reports whether an inner string is present.
func (r *Result) HasPipe() bool { return r.InnerDiameterMeters > 0 }

// Compute validates in and returns the lift it produces.
//
// Checks run in a fixed order and the first failure wins:
// non-numeric input, negative inner diameter, non-positive outer diameter,
// negative pressure, outer not greater than inner. Failures are returned as
// *ValidationError.
func Compute(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	area := AnnularArea(in.InnerDiameter, in.OuterDiameter)
	n := in.Pressure * area
	kgf := n / StandardGravity

	return &Result{
		LiftForceNewtons:    n,
		LiftForceKgf:        kgf,
		LiftForceMetricTons: kgf / 1000,
		AnnularAreaSqMeters: area,
		InnerDiameterMeters: in.InnerDiameter,
		OuterDiameterMeters: in.OuterDiameter,
		PressurePascals:     in.Pressure,
	}, nil
}

// Validate runs the calculator's input checks without computing anything.
func (in Input) Validate() error {
	switch {
	case math.IsNaN(in.InnerDiameter) || math.IsNaN(in.OuterDiameter) || math.IsNaN(in.Pressure):
		return newValidationError(NonNumericInput)
	case in.InnerDiameter < 0:
		return newValidationError(NegativeInnerDiameter)
	case in.OuterDiameter <= 0:
		return newValidationError(NonPositiveOuterDiameter)
	case in.Pressure < 0:
		return newValidationError(NegativePressure)
	case in.OuterDiameter <= in.InnerDiameter:
		return newValidationError(OuterNotGreaterThanInner)
	}
	return nil
}

// AnnularArea returns the area between two concentric circles of diameter
// id and od, in the square of their unit. An id of zero gives the full disc.
func AnnularArea(id, od float64) float64 {
	return math.Pi * (od*od - id*id) / 4
}
