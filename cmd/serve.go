package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/stringlift/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator as a local web page",
	Long: `Serve the calculator form on a local address. The page shares the
remembered state with the command line, so values entered in either are
picked up by the other.

JSON API:
  POST   /api/lift              calculate (and remember) a form
  GET    /api/state             remembered form
  PUT    /api/state             replace the remembered form
  DELETE /api/state             forget the remembered form
  POST   /api/convert-pressure  convert a pressure field between units
  GET    /api/sizes             preset sizes
  GET    /schematic.svg         schematic for the remembered form`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(stateStore,
			server.WithLogger(logger),
			server.WithCustomUnit(cfg.CustomUnit),
			server.WithDigits(cfg.Digits),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (Ctrl+C to stop)\n", serveAddr)
		return srv.Run(ctx, serveAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "Address to listen on")
}
