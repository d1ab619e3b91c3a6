package main

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/storymeta/internal/config"
	"github.com/storymeta/pkg/logger"
)

func newRootCommand() *cobra.Command {
	var logLevelFlag string

	rootCmd := &cobra.Command{
		Use:           "storymeta",
		Short:         "Decode and re-encode story metadata API responses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(newDecodeCommand(&logLevelFlag))

	return rootCmd
}

// newLogger builds the run-scoped logger: env config, optional flag override,
// and a run id to correlate all lines of one invocation.
func newLogger(levelOverride string) (zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return zerolog.Logger{}, err
	}

	level := cfg.Log.Level
	if levelOverride != "" {
		level = levelOverride
	}

	log := logger.New(level, cfg.Log.Format).With().
		Str("run_id", uuid.NewString()).
		Logger()
	return log, nil
}
