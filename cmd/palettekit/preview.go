package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/logger"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
	"github.com/alexisbeaulieu97/palettekit/internal/themefile"
	"github.com/alexisbeaulieu97/palettekit/internal/tui/preview"
)

type previewOptions struct {
	watch bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [theme]",
		Short: "Browse a palette interactively",
		Long: `Launch the interactive preview. Without a theme file the built-in default
palette is shown. With --watch, edits to the theme file are applied live.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runPreview(cmd, root, path, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the theme file when it changes")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, path string, opts *previewOptions) error {
	if opts.watch && path == "" {
		return newCommandError("preview", "starting the file watcher", errors.New("--watch needs a theme file"), "Pass the theme file to watch.")
	}
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("preview", "opening the terminal", errors.New("stdout is not a terminal"), "Run preview from an interactive terminal, or use 'palettekit resolve' in scripts.")
	}

	log, err := newLogger(cmd, root)
	if err != nil {
		return err
	}

	p, err := previewPalette(path, log)
	if err != nil {
		return err
	}
	manager := theme.NewManager(p)

	program := tea.NewProgram(preview.NewModel(manager), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if opts.watch {
		abs, err := validateThemePath(path)
		if err != nil {
			return newCommandError("preview", "locating theme file", err, "Pass the path of an existing theme YAML file.")
		}
		watcher := themefile.NewWatcher(abs, manager, p.Registry(),
			themefile.WithLogger(log),
			themefile.WithOnReload(func(err error) {
				program.Send(preview.ReloadMsg{Err: err})
			}),
		)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Error(err, "theme watcher stopped")
				program.Send(preview.ReloadMsg{Err: err})
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return newCommandError("preview", "running the preview", err, "Check that the terminal supports the alternate screen.")
	}
	return nil
}

func previewPalette(path string, log *logger.Logger) (*theme.Palette, error) {
	if path != "" {
		return loadPalette("preview", path, log)
	}

	base, err := theme.DefaultBase()
	if err != nil {
		return nil, newCommandError("preview", "building the default base", err, "Report this as a bug.")
	}
	p, err := theme.NewPalette("default", nil, base)
	if err != nil {
		return nil, newCommandError("preview", "creating the palette", err, "Report this as a bug.")
	}
	p.SetLogger(log)
	return p, nil
}
