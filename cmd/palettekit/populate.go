package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/themefile"
)

type populateOptions struct {
	out string
}

func newPopulateCmd(root *rootFlags) *cobra.Command {
	opts := &populateOptions{}

	cmd := &cobra.Command{
		Use:   "populate <theme>",
		Short: "Copy every inherited value into the theme and print the materialized YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPopulate(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the materialized theme to this file instead of stdout")

	return cmd
}

func runPopulate(cmd *cobra.Command, root *rootFlags, path string, opts *populateOptions) error {
	log, err := newLogger(cmd, root)
	if err != nil {
		return err
	}

	p, err := loadPalette("populate", path, log)
	if err != nil {
		return err
	}

	changed, err := p.PopulateFromBase("")
	if err != nil {
		return newCommandError("populate", "copying inherited values", err, "Check the feature redirects declared in the theme file.")
	}
	log.WithFields(map[string]any{"theme": p.Name(), "changed": changed}).Info("palette populated")

	if opts.out != "" {
		if err := themefile.Save(p, opts.out); err != nil {
			return newCommandError("populate", "writing "+opts.out, err, "Ensure the output directory exists and is writable.")
		}
		return nil
	}

	data, err := themefile.Encode(p)
	if err != nil {
		return newCommandError("populate", "encoding palette", err, "Report this as a bug; every resolved value should be encodable.")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
