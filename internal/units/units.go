// Package units converts the length and pressure units the calculator
// accepts into SI and back.
//
// Conversions are total over finite input and never validate sign or
// range; that is the calculator's job.
package units

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// Conversion factors to SI.
const (
	MetersPerMillimeter = 0.001
	MetersPerInch       = 0.0254
	PascalsPerBar       = 100000.0
	PascalsPerPSI       = 6894.757293168
)

// LengthUnit is a unit a diameter may be entered in.
type LengthUnit int

const (
	Meter LengthUnit = iota
	Millimeter
	Inch
)

// LengthUnits lists the supported length units in display order.
var LengthUnits = []LengthUnit{Millimeter, Inch, Meter}

func (u LengthUnit) String() string {
	switch u {
	case Millimeter:
		return "mm"
	case Inch:
		return "in"
	default:
		return "m"
	}
}

// ParseLengthUnit matches a unit symbol or name case-insensitively.
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return Millimeter, nil
	case "in", "inch", "inches", `"`:
		return Inch, nil
	case "m", "meter", "meters", "metre", "metres":
		return Meter, nil
	}
	return Meter, fmt.Errorf("unknown length unit %q (want mm, in or m)", s)
}

// PressureUnit is a unit a pressure may be entered in.
type PressureUnit int

const (
	Pascal PressureUnit = iota
	Bar
	PSI
)

// PressureUnits lists the supported pressure units in display order.
var PressureUnits = []PressureUnit{Bar, PSI, Pascal}

func (u PressureUnit) String() string {
	switch u {
	case Bar:
		return "bar"
	case PSI:
		return "psi"
	default:
		return "Pa"
	}
}

// ParsePressureUnit matches a unit symbol or name case-insensitively.
func ParsePressureUnit(s string) (PressureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar":
		return Bar, nil
	case "psi":
		return PSI, nil
	case "pa", "pascal", "pascals":
		return Pascal, nil
	}
	return Pascal, fmt.Errorf("unknown pressure unit %q (want bar, psi or Pa)", s)
}

// LengthToMeters converts v in unit u to meters.
func LengthToMeters(v float64, u LengthUnit) float64 {
	switch u {
	case Millimeter:
		return v * MetersPerMillimeter
	case Inch:
		return v * MetersPerInch
	default:
		return v
	}
}

// MetersTo converts v meters to unit u.
func MetersTo(v float64, u LengthUnit) float64 {
	switch u {
	case Millimeter:
		return v / MetersPerMillimeter
	case Inch:
		return v / MetersPerInch
	default:
		return v
	}
}

// PressureToPascals converts v in unit u to pascals.
func PressureToPascals(v float64, u PressureUnit) float64 {
	switch u {
	case Bar:
		return v * PascalsPerBar
	case PSI:
		return v * PascalsPerPSI
	default:
		return v
	}
}

// PascalsTo converts v pascals to unit u.
func PascalsTo(v float64, u PressureUnit) float64 {
	switch u {
	case Bar:
		return v / PascalsPerBar
	case PSI:
		return v / PascalsPerPSI
	default:
		return v
	}
}

// LengthQuantity is a length as entered.
type LengthQuantity struct {
	Value float64
	Unit  LengthUnit
}

// Meters returns the canonical SI value.
func (q LengthQuantity) Meters() unit.Length {
	return unit.Length(LengthToMeters(q.Value, q.Unit))
}

func (q LengthQuantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

// PressureQuantity is a pressure as entered.
type PressureQuantity struct {
	Value float64
	Unit  PressureUnit
}

// Pascals returns the canonical SI value.
func (q PressureQuantity) Pascals() unit.Pressure {
	return unit.Pressure(PressureToPascals(q.Value, q.Unit))
}

func (q PressureQuantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

// GeometryInput pairs the two diameters of an annulus. Whether outer really
// exceeds inner is checked by the calculator, not here.
type GeometryInput struct {
	InnerDiameter LengthQuantity
	OuterDiameter LengthQuantity
}

// Set implements pflag.Value.
func (u *LengthUnit) Set(s string) error {
	v, err := ParseLengthUnit(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Type implements pflag.Value.
func (u *LengthUnit) Type() string { return "lengthUnit" }

// Set implements pflag.Value.
func (u *PressureUnit) Set(s string) error {
	v, err := ParsePressureUnit(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Type implements pflag.Value.
func (u *PressureUnit) Type() string { return "pressureUnit" }
