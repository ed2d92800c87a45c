package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/diagram"
	"github.com/alexiusacademia/stringlift/internal/form"
	"github.com/alexiusacademia/stringlift/internal/format"
)

var (
	sweepForm  formFlags
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	sweepChart bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate lift over a range of pressures",
	Long: `Recompute the lift at evenly spaced pressures while keeping the
geometry fixed. Geometry flags work as in 'lift' and default to the
remembered values. The range is in the pressure unit (--unit, or the
remembered unit). Sweeps are not remembered.

Examples:
  # 0 to 690 bar in 11 steps for the remembered geometry
  stringlift sweep --to 690

  # 1000 to 10000 psi around 4-1/2" tubing in 9-5/8" casing
  stringlift sweep --od-size 9-5/8 --id-size 4-1/2 -u psi --from 1000 --to 10000 --steps 10`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepForm.bind(sweepCmd.Flags(), false)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "First pressure")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "Last pressure [required]")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "Number of pressures, including both ends")
	sweepCmd.Flags().BoolVar(&sweepChart, "chart", true, "Plot lift against pressure")

	sweepCmd.MarkFlagRequired("to")
}

func runSweep(cmd *cobra.Command, args []string) error {
	st, err := sweepForm.state(cmd.Flags(), cfg.CustomUnit)
	if err != nil {
		return err
	}

	points, err := form.Sweep(st, sweepFrom, sweepTo, sweepSteps, form.WithCustomUnit(cfg.CustomUnit))
	if err != nil {
		return err
	}
	first := points[0].Outcome
	unit := first.PressureUnit

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "     STRING LIFT PRESSURE SWEEP")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Bore (OD):    %s\n", first.OuterLabel)
	fmt.Fprintf(w, "  String (ID):  %s\n", first.InnerLabel)
	fmt.Fprintf(w, "  Annular area: %s m²\n", format.Number(first.Result.AnnularAreaSqMeters, 6))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "RESULTS:")
	fmt.Fprintln(w, lightRule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  Pressure (%s)\tLift (t)\tLift (kN)\t\n", unit)
	for _, p := range points {
		r := p.Outcome.Result
		fmt.Fprintf(tw, "  %s\t%s\t%s\t\n",
			format.Number(p.Pressure, 3),
			format.Number(r.LiftForceMetricTons, cfg.Digits),
			format.Number(r.LiftForceNewtons/1000, cfg.Digits))
	}
	tw.Flush()
	fmt.Fprintln(w)

	if sweepChart {
		caption := fmt.Sprintf("lift (t), %s to %s %s", format.Number(sweepFrom, 3), format.Number(sweepTo, 3), unit)
		fmt.Fprintln(w, diagram.DrawSweepChart(form.Tons(points), caption))
		fmt.Fprintln(w)
	}
	return nil
}
