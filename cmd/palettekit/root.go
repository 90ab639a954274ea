package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "palettekit",
		Short:         "palettekit resolves, validates and previews layered terminal palettes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newFeaturesCmd())
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newPopulateCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         flags.logLevel,
		Verbose:       flags.verbose,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}
	return log.With("command", cmd.Name()), nil
}
