package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/config"
	"github.com/alexiusacademia/stringlift/internal/form"
	"github.com/alexiusacademia/stringlift/internal/store"
	"github.com/alexiusacademia/stringlift/internal/version"
)

var (
	cfg = config.Default()

	// set by PersistentPreRunE
	logger     *slog.Logger
	stateStore *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "stringlift",
	Short: "Hydraulic string lift calculator",
	Long: `stringlift - pressure-induced lift on a pipe string

Computes the upward force a pressure exerts on the annulus between a
casing or riser bore and the pipe string inside it:

  F = p × π/4 × (OD² − ID²)

Diameters come from a catalog of nominal sizes or from custom entries
(fractions like "9 5/8" are accepted). Pressure may be given in bar, psi
or Pa. The last values entered are remembered between runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger = cfg.Logger(cmd.ErrOrStderr())
		s, err := store.Open(cfg.StateDir, store.WithLogger(logger))
		if err != nil {
			return err
		}
		stateStore = s
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   stringlift v%-44s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Hydraulic String Lift Calculator                        ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Computes the lift a pressure exerts on a pipe string through")
		fmt.Fprintln(out, "  the annulus between the casing bore and the string.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Nominal casing, riser and pipe sizes or custom diameters")
		fmt.Fprintln(out, "    • Fractional inputs such as 9 5/8 and 5-7/8")
		fmt.Fprintln(out, "    • Pressure in bar, psi or Pa with unit conversion")
		fmt.Fprintln(out, "    • Pressure sweeps, well schematics and a local web UI")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'stringlift --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	cfg.BindFlags(rootCmd.PersistentFlags())
}

// loadState returns the remembered form, or the defaults when there is
// none. A damaged state file is logged and ignored.
func loadState() form.State {
	st, err := stateStore.LoadOrDefault()
	if err != nil {
		logger.Warn("ignoring saved state", "path", stateStore.Path(), "err", err)
	}
	return st
}

// saveState remembers st unless --no-save was given.
func saveState(st form.State) {
	if cfg.NoSave {
		return
	}
	if err := stateStore.Save(st); err != nil {
		logger.Warn("could not save state", "path", stateStore.Path(), "err", err)
	}
}

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)
