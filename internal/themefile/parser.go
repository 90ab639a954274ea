package themefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/palettekit/internal/theme"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes a theme document. source names the input in errors. Unknown
// keys are rejected.
func Parse(data []byte, source string) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkgerrors.NewParseError(source, 0, errors.New("empty theme document"))
		}
		return nil, pkgerrors.NewParseError(source, extractLine(err), err)
	}
	return &doc, nil
}

// Load reads, decodes and validates a theme file.
func Load(path string, registry *theme.Registry) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.NewParseError(path, 0, err)
	}

	doc, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc, registry); err != nil {
		return nil, err
	}
	return doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
