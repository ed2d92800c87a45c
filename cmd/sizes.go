package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/catalog"
	"github.com/alexiusacademia/stringlift/internal/format"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List the preset casing, riser and pipe sizes",
	Long: `List the nominal sizes accepted by --od-size and --id-size.
Either the name (9-5/8) or the diameter in inches (9.625, "9 5/8") may be
given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "BORE SIZES (--od-size):")
		fmt.Fprintln(w, lightRule)
		printSizes(w, catalog.OuterSizes, catalog.DefaultOuter)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "STRING SIZES (--id-size):")
		fmt.Fprintln(w, lightRule)
		printSizes(w, catalog.InnerSizes, catalog.DefaultInner)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  * default")
		fmt.Fprintln(w)
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}

func printSizes(w io.Writer, sizes []catalog.Size, def catalog.Size) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Name\tDescription\tDiameter (in)\tDiameter (mm)\t")
	for _, s := range sizes {
		mark := " "
		if s == def {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t\n", mark, s.Name, s.Description,
			format.Number(s.Inches, 3), format.Number(s.Meters()*1000, 3))
	}
	tw.Flush()
}
