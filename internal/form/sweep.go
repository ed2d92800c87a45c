package form

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/stringlift/internal/diagram"
	"github.com/alexiusacademia/stringlift/internal/lift"
)

// SweepPoint is one step of a pressure sweep. Pressure is in the state's
// pressure unit.
type SweepPoint struct {
	Pressure float64
	Outcome  *Outcome
}

// Sweep recomputes s at steps evenly spaced pressures from..to inclusive,
// keeping the geometry fixed. steps must be at least 2.
func Sweep(s State, from, to float64, steps int, opts ...Option) ([]SweepPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}
	if to < from {
		return nil, fmt.Errorf("sweep range is reversed: %g > %g", from, to)
	}

	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		p := from + (to-from)*float64(i)/float64(steps-1)
		step := s
		step.Pressure = strconv.FormatFloat(p, 'g', -1, 64)

		out := Calculate(step, opts...)
		if out.Failure != nil {
			return nil, fmt.Errorf("at %s: %w", out.PressureDisplay(), out.Failure)
		}
		points = append(points, SweepPoint{Pressure: p, Outcome: out})
	}
	return points, nil
}

// DiagramData turns an outcome into schematic input. It returns false when
// there is no result to draw.
func (o *Outcome) DiagramData(digits int) (diagram.WellDiagramData, bool) {
	if o.Result == nil {
		return diagram.WellDiagramData{}, false
	}
	return diagram.WellDiagramData{
		OuterDiameter: o.Result.OuterDiameterMeters,
		InnerDiameter: o.Result.InnerDiameterMeters,
		AnnularArea:   o.Result.AnnularAreaSqMeters,
		Pressure:      o.PressureDisplay(),
		Lift:          o.LiftDisplay(digits),
	}, true
}

// Tons extracts the lift in metric tons from each point.
func Tons(points []SweepPoint) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = resultTons(p.Outcome.Result)
	}
	return ys
}

func resultTons(r *lift.Result) float64 {
	if r == nil {
		return 0
	}
	return r.LiftForceMetricTons
}
