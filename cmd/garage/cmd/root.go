package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/whiteelite/garage/internal/application/showroom"
	"github.com/whiteelite/garage/internal/config"
	"github.com/whiteelite/garage/internal/infrastructure/logger"
	"github.com/whiteelite/garage/internal/infrastructure/output"
)

var (
	formatFlag   string
	logLevelFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "garage",
		Short: "Construct a car and a truck and print their fields",
		Long: `garage builds a Toyota Corolla car and a 2020 Toyota Hilux truck and
prints every field of each, one value per line. Use --format json to emit
hashed message envelopes instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := setup(cmd)
			if err != nil {
				return err
			}

			w, err := output.NewWriter(output.Format(cfg.Format), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return showroom.Run(cmd.Context(), w, l)
		},
	}

	root.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: lines or json (env GARAGE_FORMAT)")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error (env GARAGE_LOG_LEVEL)")

	root.AddCommand(newReadCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = formatFlag
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}

	l, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return cfg, l, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
