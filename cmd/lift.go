package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/diagram"
	"github.com/alexiusacademia/stringlift/internal/form"
	"github.com/alexiusacademia/stringlift/internal/format"
	"github.com/alexiusacademia/stringlift/internal/units"
)

var (
	liftForm       formFlags
	liftDiagram    bool
	liftExportFile string
	liftJSON       bool
)

var liftCmd = &cobra.Command{
	Use:   "lift",
	Short: "Calculate the lift on a pipe string",
	Long: `Calculate the upward force a pressure exerts on the pipe string
through the annulus between the bore and the string.

Any value not given on the command line is taken from the previous run,
or from the defaults (9-5/8" casing, 5-7/8" pipe, 345 bar) on first use.
Custom diameters take precedence over presets.

Examples:
  # 13-3/8" casing around 5" drill pipe at 5000 psi
  stringlift lift --od-size 13-3/8 --id-size 5 -p 5000 -u psi

  # Custom diameters in inches, with fractions
  stringlift lift --od "12 1/4" --id "6 5/8" -p 200

  # Open bore (no pipe), exporting the cross-section
  stringlift lift --id-size none -o section.png

  # Switch the remembered pressure to psi without retyping it
  stringlift lift -u psi

  # Start from a saved case instead of the remembered form
  stringlift lift -f case.json -p 250`,
	Args: cobra.NoArgs,
	RunE: runLift,
}

func init() {
	rootCmd.AddCommand(liftCmd)

	liftForm.bind(liftCmd.Flags(), true)
	liftCmd.Flags().BoolVar(&liftDiagram, "diagram", false, "Show ASCII well schematic")
	liftCmd.Flags().StringVarP(&liftExportFile, "output", "o", "", "Export cross-section to file (png, svg, pdf)")
	liftCmd.Flags().BoolVar(&liftJSON, "json", false, "Print the result as JSON")
}

func runLift(cmd *cobra.Command, args []string) error {
	st, err := liftForm.state(cmd.Flags(), cfg.CustomUnit)
	if err != nil {
		return err
	}
	saveState(st)

	out := form.Calculate(st, form.WithCustomUnit(cfg.CustomUnit))
	logger.Debug("calculated", "state", st, "ok", out.Failure == nil)

	w := cmd.OutOrStdout()
	if liftJSON {
		if err := writeLiftJSON(w, out); err != nil {
			return err
		}
		return out.Err()
	}
	data, ok := out.DiagramData(cfg.Digits)
	if !ok {
		return out.Err()
	}

	printLiftReport(w, out)
	if liftDiagram {
		fmt.Fprintln(w, diagram.DrawASCIIWellSchematic(data))
	}
	if liftExportFile != "" {
		path, err := diagram.ExportCrossSection(data, liftExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(w, "Diagram exported to: %s\n", path)
	}
	return nil
}

func printLiftReport(w io.Writer, out *form.Outcome) {
	r := out.Result
	digits := cfg.Digits

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "     STRING LIFT CALCULATION")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "INPUT DATA:")
	fmt.Fprintln(w, lightRule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Bore (OD):\t%s\n", out.OuterLabel)
	fmt.Fprintf(tw, "  String (ID):\t%s\n", out.InnerLabel)
	fmt.Fprintf(tw, "  Pressure:\t%s\n", out.PressureDisplay())
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "GEOMETRY:")
	fmt.Fprintln(w, lightRule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	// SI values print with their symbols through the typed quantities
	fmt.Fprintf(tw, "  Outer diameter:\t%.5f\t(%s in)\n", r.Outer(), format.Number(units.MetersTo(r.OuterDiameterMeters, units.Inch), 3))
	fmt.Fprintf(tw, "  Inner diameter:\t%.5f\t(%s in)\n", r.Inner(), format.Number(units.MetersTo(r.InnerDiameterMeters, units.Inch), 3))
	fmt.Fprintf(tw, "  Annular area (A):\t%.6f\t\n", r.Area())
	fmt.Fprintf(tw, "  Pressure (p):\t%.0f\t\n", r.Pressure())
	tw.Flush()
	if !r.HasPipe() {
		fmt.Fprintln(w, "  No pipe: the full bore is pressurized.")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LIFT FORCE:")
	fmt.Fprintln(w, lightRule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Force:\t%.*f\n", digits, r.Force())
	fmt.Fprintf(tw, "  Kilogram-force:\t%s kgf\n", format.Number(r.LiftForceKgf, digits))
	fmt.Fprintf(tw, "  Metric tons:\t%s t\n", format.Number(r.LiftForceMetricTons, digits))
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprint(w, diagram.DrawSummaryBox("STRING LIFT  F = p × A", []string{
		out.LiftDisplay(digits),
		fmt.Sprintf("at %s", out.PressureDisplay()),
	}))
	fmt.Fprintln(w)
}

type liftJSONOutput struct {
	*form.Outcome
	Lift      string `json:"lift"`
	Pressure  string `json:"pressure"`
	Breakdown string `json:"breakdown,omitempty"`
}

func writeLiftJSON(w io.Writer, out *form.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(liftJSONOutput{
		Outcome:   out,
		Lift:      out.LiftDisplay(cfg.Digits),
		Pressure:  out.PressureDisplay(),
		Breakdown: out.Breakdown(cfg.Digits),
	})
}
