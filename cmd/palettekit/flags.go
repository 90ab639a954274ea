package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/palettekit/internal/logger"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
	"github.com/alexisbeaulieu97/palettekit/internal/themefile"
)

func validateThemePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("theme file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve theme path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("theme file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("theme path %s is a directory", abs)
	}
	return abs, nil
}

// loadPalette builds the palette described by the theme file at path.
func loadPalette(operation, path string, log *logger.Logger) (*theme.Palette, error) {
	abs, err := validateThemePath(path)
	if err != nil {
		return nil, newCommandError(operation, "locating theme file", err, "Pass the path of an existing theme YAML file.")
	}

	doc, err := themefile.Load(abs, nil)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading %s", path), err, "Run 'palettekit validate' on the file and fix the reported fields.")
	}

	p, err := themefile.Build(doc, nil)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("building palette %q", doc.Name), err, "Check the feature redirects declared in the theme file.")
	}
	p.SetLogger(log)
	log.WithFields(map[string]any{"theme": doc.Name, "base": doc.BaseName()}).Debug("theme loaded")
	return p, nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
