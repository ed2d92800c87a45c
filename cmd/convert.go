package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/format"
	"github.com/alexiusacademia/stringlift/internal/numparse"
	"github.com/alexiusacademia/stringlift/internal/units"
)

var (
	convertLengthFrom   = units.Inch
	convertLengthTo     = units.Millimeter
	convertPressureFrom = units.Bar
	convertPressureTo   = units.PSI
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert lengths and pressures between units",
	Long: `Convert a length or pressure value between the units the calculator
accepts. Values may be written as fractions ("9 5/8", "5-7/8").

Subcommands:
  length    - mm, in, m
  pressure  - bar, psi, Pa`,
}

var convertLengthCmd = &cobra.Command{
	Use:   "length VALUE",
	Short: "Convert a length",
	Example: `  stringlift convert length "9 5/8" --from in --to mm
  stringlift convert length 244.475 --from mm --to m`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := numparse.ParseNumberOrFraction(args[0])
		if err != nil {
			return err
		}
		q := units.LengthQuantity{Value: v, Unit: convertLengthFrom}
		res := units.MetersTo(float64(q.Meters()), convertLengthTo)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
			format.Number(v, 6), convertLengthFrom, format.Number(res, 6), convertLengthTo)
		return nil
	},
}

var convertPressureCmd = &cobra.Command{
	Use:   "pressure VALUE",
	Short: "Convert a pressure",
	Example: `  stringlift convert pressure 345 --from bar --to psi
  stringlift convert pressure 5000 --from psi --to Pa`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := numparse.ParseNumberOrFraction(args[0])
		if err != nil {
			return err
		}
		q := units.PressureQuantity{Value: v, Unit: convertPressureFrom}
		res := units.PascalsTo(float64(q.Pascals()), convertPressureTo)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
			format.Number(v, 6), convertPressureFrom, format.Number(res, 6), convertPressureTo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.AddCommand(convertLengthCmd)
	convertCmd.AddCommand(convertPressureCmd)

	convertLengthCmd.Flags().Var(&convertLengthFrom, "from", "Unit of VALUE (mm, in, m)")
	convertLengthCmd.Flags().Var(&convertLengthTo, "to", "Unit to convert to (mm, in, m)")
	convertPressureCmd.Flags().Var(&convertPressureFrom, "from", "Unit of VALUE (bar, psi, Pa)")
	convertPressureCmd.Flags().Var(&convertPressureTo, "to", "Unit to convert to (bar, psi, Pa)")
}
