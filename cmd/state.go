package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/units"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the remembered form",
	Long: `The values entered on each run are remembered in the state directory
(--state-dir) and used for anything not given on the next run.

Subcommands:
  show      - Print the remembered values
  clear     - Forget them and start from the defaults
  set-unit  - Switch the pressure unit, converting the remembered pressure`,
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the remembered values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, saved, err := stateStore.Load()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "State file: %s\n", stateStore.Path())
		if !saved {
			fmt.Fprintln(w, "Nothing saved yet.")
			return nil
		}
		st = st.WithCustomUnit(cfg.CustomUnit)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Bore preset (m):\t%s\n", st.OuterD)
		fmt.Fprintf(tw, "  Bore custom (%s):\t%s\n", cfg.CustomUnit, st.OuterDCustom)
		fmt.Fprintf(tw, "  String preset (m):\t%s\n", st.InnerD)
		fmt.Fprintf(tw, "  String custom (%s):\t%s\n", cfg.CustomUnit, st.InnerDCustom)
		fmt.Fprintf(tw, "  Pressure:\t%s %s\n", st.Pressure, st.PressureUnit)
		return tw.Flush()
	},
}

var stateClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the remembered values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stateStore.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "State cleared.")
		return nil
	},
}

var stateSetUnitCmd = &cobra.Command{
	Use:     "set-unit UNIT",
	Short:   "Switch the pressure unit, converting the remembered pressure",
	Example: "  stringlift state set-unit psi",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := units.ParsePressureUnit(args[0])
		if err != nil {
			return err
		}
		st := loadState().WithPressureUnit(to)
		if err := stateStore.Save(st); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pressure: %s %s\n", st.Pressure, st.PressureUnit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateClearCmd)
	stateCmd.AddCommand(stateSetUnitCmd)
}
