package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/logger"
	"github.com/alexisbeaulieu97/palettekit/internal/themefile"
	"github.com/alexisbeaulieu97/palettekit/pkg/diff"
)

type diffOptions struct {
	exitCode bool
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <theme-a> <theme-b>",
		Short: "Show how two themes differ once every value is resolved",
		Long: `Populate both themes from their bases and compare the materialized
documents line by line, so a redirect or base switch shows up as the values
it changes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, root, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "Fail when the themes differ")

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, pathA, pathB string, opts *diffOptions) error {
	log, err := newLogger(cmd, root)
	if err != nil {
		return err
	}

	a, err := materialize(pathA, log)
	if err != nil {
		return err
	}
	b, err := materialize(pathB, log)
	if err != nil {
		return err
	}

	res := diff.Lines(a, b, pathA, pathB)
	if res.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "Themes resolve identically")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), res.Text)
	if opts.exitCode {
		return newCommandError("diff", fmt.Sprintf("comparing %s and %s", pathA, pathB),
			fmt.Errorf("%d lines added, %d removed", res.Added, res.Removed),
			"Drop --exit-code to only print the differences.")
	}
	return nil
}

func materialize(path string, log *logger.Logger) ([]byte, error) {
	p, err := loadPalette("diff", path, log)
	if err != nil {
		return nil, err
	}
	if _, err := p.PopulateFromBase(""); err != nil {
		return nil, newCommandError("diff", "populating "+path, err, "Check the feature redirects declared in the theme file.")
	}
	// Names differ between files; compare values only.
	doc := themefile.Snapshot(p)
	doc.Name = "-"
	data, err := themefile.EncodeDocument(doc)
	if err != nil {
		return nil, newCommandError("diff", "encoding "+path, err, "Report this as a bug; every resolved value should be encodable.")
	}
	return data, nil
}
