package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stringlift",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, version.Short())
		fmt.Fprintln(w, "Hydraulic String Lift Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
