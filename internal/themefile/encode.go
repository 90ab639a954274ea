package themefile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

// Encode writes the non-default parts of p as YAML.
func Encode(p *theme.Palette) ([]byte, error) {
	return EncodeDocument(Snapshot(p))
}

// EncodeDocument writes doc as YAML with two-space indentation.
func EncodeDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode theme %s: %w", doc.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode theme %s: %w", doc.Name, err)
	}
	return buf.Bytes(), nil
}

// Save encodes p to path.
func Save(p *theme.Palette, path string) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme %s: %w", path, err)
	}
	return nil
}
