package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

type featuresOptions struct {
	jsonOutput bool
}

func newFeaturesCmd() *cobra.Command {
	opts := &featuresOptions{}

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the palette features, their states and attribute kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeatures(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type featureJSON struct {
	Name   string   `json:"name"`
	States []string `json:"states"`
	Kinds  []string `json:"kinds"`
	Layout bool     `json:"layout"`
}

func runFeatures(cmd *cobra.Command, opts *featuresOptions) error {
	features := theme.DefaultRegistry().Features()

	if opts.jsonOutput {
		payload := make([]featureJSON, len(features))
		for i, f := range features {
			payload[i] = featureJSON{Name: f.Name, States: stateNames(f.States), Kinds: kindNames(f.Kinds), Layout: f.Layout}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FEATURE\tSTATES\tKINDS")
	for _, f := range features {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, strings.Join(stateNames(f.States), ","), strings.Join(kindNames(f.Kinds), ","))
	}
	return w.Flush()
}

func stateNames(states []palette.State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return names
}

func kindNames(kinds []palette.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
