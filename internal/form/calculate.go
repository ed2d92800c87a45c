package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/stringlift/internal/catalog"
	"github.com/alexiusacademia/stringlift/internal/format"
	"github.com/alexiusacademia/stringlift/internal/lift"
	"github.com/alexiusacademia/stringlift/internal/numparse"
	"github.com/alexiusacademia/stringlift/internal/units"
)

// Messages shown for rejected input.
const (
	MsgInnerCustom   = "Custom inner diameter must be a non-negative number (supports fractions like '5 7/8')."
	MsgOuterCustom   = "Custom outer diameter must be a positive number (supports fractions)."
	MsgNotNumeric    = "Please enter all numeric values."
	MsgOutOfRange    = "Diameters must be non-negative and pressure cannot be negative."
	MsgOuterTooSmall = "Outer diameter must be larger than inner diameter."
	MsgPressureUnit  = "Pressure unit must be one of bar, psi or Pa."
)

// Field names match the persisted state keys.
const (
	FieldOuterCustom  = "outerD_custom"
	FieldInnerCustom  = "innerD_custom"
	FieldPressure     = "pressure"
	FieldPressureUnit = "pressureUnit"
)

// ErrInvalidInput is wrapped by every Failure.
var ErrInvalidInput = errors.New("invalid input")

// Failure explains why no result could be produced. Reason is set when the
// calculator rejected the values; Field is set when a form field was
// rejected before the calculator ran.
type Failure struct {
	Reason  lift.Reason `json:"reason,omitempty"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	cause   error
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	return f.Message
}

func (f *Failure) Unwrap() []error {
	if f.cause == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, f.cause}
}

type options struct {
	customUnit units.LengthUnit
}

// Option configures Calculate.
type Option func(*options)

// WithCustomUnit sets the unit custom diameters are entered in. The default
// is inches.
func WithCustomUnit(u units.LengthUnit) Option {
	return func(o *options) { o.customUnit = u }
}

func applyOptions(opts []Option) options {
	o := options{customUnit: units.Inch}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Outcome is everything a front end needs to render one calculation.
type Outcome struct {
	Result  *lift.Result `json:"result,omitempty"`
	Failure *Failure     `json:"failure,omitempty"`

	InnerLabel string `json:"inner_label"`
	OuterLabel string `json:"outer_label"`

	PressureValue float64            `json:"-"`
	PressureUnit  units.PressureUnit `json:"-"`
}

// Err returns the failure as an error, or nil.
func (o *Outcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return o.Failure
}

// PressureDisplay is the pressure as entered, e.g. "345 bar", or a dash
// when it could not be read.
func (o *Outcome) PressureDisplay() string {
	if math.IsNaN(o.PressureValue) {
		return "— " + o.PressureUnit.String()
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(o.PressureValue, 'f', -1, 64), o.PressureUnit)
}

// LiftDisplay is the headline result in metric tons, e.g. "240.3 tons".
func (o *Outcome) LiftDisplay(digits int) string {
	if o.Result == nil {
		return "— tons"
	}
	return format.Number(o.Result.LiftForceMetricTons, digits) + " tons"
}

// Breakdown explains the result line by line. It is empty on failure.
func (o *Outcome) Breakdown(digits int) string {
	r := o.Result
	if r == nil {
		return ""
	}
	odIn := units.MetersTo(r.OuterDiameterMeters, units.Inch)

	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s (%s m)\n", o.InnerLabel, format.Number(r.InnerDiameterMeters, 5))
	fmt.Fprintf(&b, "OD: %s (actual %s in / %s m)\n", o.OuterLabel, format.Number(odIn, 3), format.Number(r.OuterDiameterMeters, 5))
	fmt.Fprintf(&b, "Annular area: %s m²\n", format.Number(r.AnnularAreaSqMeters, 6))
	fmt.Fprintf(&b, "Pressure: %s Pa\n", format.Number(r.PressurePascals, 3))
	fmt.Fprintf(&b, "Lift: %s tons (%s kgf / %s N)\n",
		format.Number(r.LiftForceMetricTons, digits),
		format.Number(r.LiftForceKgf, digits),
		format.Number(r.LiftForceNewtons, digits))
	b.WriteString("Calculation: F = p × A")
	return b.String()
}

// Calculate resolves s into SI values and runs the lift calculator.
// It never fails outright: rejected input is reported in Outcome.Failure.
func Calculate(s State, opts ...Option) *Outcome {
	o := applyOptions(opts)
	out := &Outcome{PressureValue: math.NaN(), PressureUnit: units.Bar}

	idM, idLabel := resolveSelect(s.InnerD, catalog.InnerSizes)
	if raw := strings.TrimSpace(s.InnerDCustom); raw != "" {
		v, err := numparse.ParseNumberOrFraction(raw)
		if err != nil || !finite(v) || v < 0 {
			out.Failure = &Failure{Field: FieldInnerCustom, Message: MsgInnerCustom, cause: err}
			return out
		}
		m := units.LengthToMeters(v, o.customUnit)
		if !samePreset(m, idM) {
			idLabel = fmt.Sprintf("%s %s (custom)", raw, o.customUnit)
		}
		idM = m
	}
	out.InnerLabel = idLabel

	odM, odLabel := resolveSelect(s.OuterD, catalog.OuterSizes)
	if raw := strings.TrimSpace(s.OuterDCustom); raw != "" {
		v, err := numparse.ParseNumberOrFraction(raw)
		if err != nil || !finite(v) || v <= 0 {
			out.Failure = &Failure{Field: FieldOuterCustom, Message: MsgOuterCustom, cause: err}
			return out
		}
		m := units.LengthToMeters(v, o.customUnit)
		if !samePreset(m, odM) {
			odLabel = fmt.Sprintf("%s %s (custom)", raw, o.customUnit)
		}
		odM = m
	}
	out.OuterLabel = odLabel

	pUnit := units.Bar
	if strings.TrimSpace(s.PressureUnit) != "" {
		u, err := units.ParsePressureUnit(s.PressureUnit)
		if err != nil {
			out.Failure = &Failure{Field: FieldPressureUnit, Message: MsgPressureUnit, cause: err}
			return out
		}
		pUnit = u
	}
	out.PressureUnit = pUnit

	pVal, err := numparse.ParseNumberOrFraction(s.Pressure)
	if err != nil {
		pVal = math.NaN()
	}
	if math.IsInf(pVal, 0) {
		// "1/0" and friends
		out.Failure = &Failure{Field: FieldPressure, Message: MsgNotNumeric}
		return out
	}
	out.PressureValue = pVal

	res, err := lift.Compute(lift.NewInput(
		units.GeometryInput{
			InnerDiameter: units.LengthQuantity{Value: idM, Unit: units.Meter},
			OuterDiameter: units.LengthQuantity{Value: odM, Unit: units.Meter},
		},
		units.PressureQuantity{Value: pVal, Unit: pUnit},
	))
	if err != nil {
		out.Failure = failureFor(err)
		return out
	}
	out.Result = res
	return out
}

func failureFor(err error) *Failure {
	ve, ok := lift.AsValidationError(err)
	if !ok {
		return &Failure{Message: err.Error(), cause: err}
	}
	f := &Failure{Reason: ve.Reason, cause: err}
	switch ve.Reason {
	case lift.NonNumericInput:
		f.Message = MsgNotNumeric
	case lift.OuterNotGreaterThanInner:
		f.Message = MsgOuterTooSmall
	default:
		f.Message = MsgOutOfRange
	}
	return f
}

// resolveSelect reads a preset value (meters) and finds its label.
func resolveSelect(v string, sizes []catalog.Size) (float64, string) {
	m, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return math.NaN(), ""
	}
	if s, ok := catalog.ByValue(sizes, v); ok {
		return m, s.Label()
	}
	return m, fmt.Sprintf("%s m", strings.TrimSpace(v))
}

// samePreset reports whether a custom diameter is just the synced copy of
// the selected preset. Preset values carry six decimals of meters.
func samePreset(custom, preset float64) bool {
	return math.Abs(custom-preset) < 5e-7
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
