package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for content files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported content format")

//go:embed default.toml
var defaultTOML []byte

// Default returns the embedded content document.
func Default() *Data {
	d, err := Parse(defaultTOML, ".toml")
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return d
}

// Load reads the content document at path. The format follows the file
// extension: .toml, .yaml or .yml.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	d, err := Parse(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes raw content in the format named by ext.
func Parse(raw []byte, ext string) (*Data, error) {
	var d Data
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&d); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &d, nil
}
