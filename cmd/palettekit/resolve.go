package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
)

type resolveOptions struct {
	jsonOutput bool
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <theme> <feature> <kind> <state>",
		Short: "Resolve one attribute of a feature through its redirect chain",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type resolveJSON struct {
	Feature string `json:"feature"`
	Kind    string `json:"kind"`
	State   string `json:"state"`
	Value   string `json:"value"`
}

func runResolve(cmd *cobra.Command, root *rootFlags, args []string, opts *resolveOptions) error {
	log, err := newLogger(cmd, root)
	if err != nil {
		return err
	}

	feature := args[1]
	k, err := palette.ParseKind(args[2])
	if err != nil {
		return newCommandError("resolve", "parsing attribute kind", err, "Run 'palettekit features' to list the kinds each feature declares.")
	}
	state, err := palette.ParseState(args[3])
	if err != nil {
		return newCommandError("resolve", "parsing state", err, "Use a snake_case state name such as normal or context_tracking.")
	}

	p, err := loadPalette("resolve", args[0], log)
	if err != nil {
		return err
	}

	v, err := p.ResolveValue(feature, k, state)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("resolving %s of %s in state %s", k, feature, state), err, "Check that the feature declares the kind and state, and that its redirects do not loop.")
	}
	value := palette.FormatValue(k, v)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(resolveJSON{Feature: feature, Kind: k.String(), State: state.String(), Value: value})
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
