package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the root command resolves before any subcommand runs.
type app struct {
	configPath string
	verbose    bool

	cfg    *Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "worldcup",
		Short: "FIFA World Cup results dashboard",
		Long: `worldcup serves a single-page dashboard of FIFA World Cup results:
choropleth maps of winners and runner-ups, plus dropdown lookups by country
and by year.

Run without a subcommand to start the dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", a.configPath, err)
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	serveCmd := newServeCmd(a)
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
	rootCmd.RunE = serveCmd.RunE

	rootCmd.AddCommand(
		serveCmd,
		newLookupCmd(a),
		newTablesCmd(),
		newExportCmd(a),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
