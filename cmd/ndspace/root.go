package main

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/arloliu/ndspace"
	"github.com/arloliu/ndspace/internal/logging"
)

type globalFlags struct {
	configFile string
	natsURL    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "ndspace",
		Short:         "Inspect and distribute partitioned N-dimensional index spaces",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "f", "space.yaml", "space configuration file")
	root.PersistentFlags().StringVar(&flags.natsURL, "nats", nats.DefaultURL, "NATS server URL for publish and fetch")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newPlanCmd(flags),
		newWalkCmd(flags),
		newPublishCmd(flags),
		newFetchCmd(flags),
	)

	return root
}

func (f *globalFlags) logger(cmd *cobra.Command) *logging.SlogLogger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}

	return logging.NewSlogText(cmd.ErrOrStderr(), level)
}

func (f *globalFlags) loadConfig(cmd *cobra.Command) (ndspace.Config, error) {
	cfg, err := ndspace.LoadConfig(f.configFile)
	if err != nil {
		return ndspace.Config{}, err
	}
	cfg.ValidateWithWarnings(f.logger(cmd))

	return cfg, nil
}
