package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/themefile"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <theme>",
		Short: "Validate a theme file without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}

			abs, err := validateThemePath(args[0])
			if err != nil {
				return newCommandError("validate", "locating theme file", err, "Pass the path of an existing theme YAML file.")
			}

			doc, err := themefile.Load(abs, nil)
			if err != nil {
				log.Error(err, "theme validation failed")
				return newCommandError("validate", fmt.Sprintf("validating %s", args[0]), err, "Fix the reported field and run validate again.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Theme %q is valid (base: %s, features: %d)\n", doc.Name, doc.BaseName(), len(doc.Features))
			return nil
		},
	}

	return cmd
}
