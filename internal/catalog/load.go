package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Format is the encoding of a catalog document
type Format string

// Supported catalog formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a catalog document. Unknown fields are ignored.
func Decode(data []byte, format Format) (*RawCatalog, error) {
	raw := &RawCatalog{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode yaml catalog")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode json catalog")
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported catalog format: %s", format)
	}
	return raw, nil
}

// LoadFile reads and decodes a catalog document without validating it
func LoadFile(path string) (*RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "catalog file not found").
				WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	return Decode(data, FormatFromPath(path))
}

// Load reads, validates and cross-links a catalog file
func Load(path string) (*Catalog, error) {
	raw, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(raw)
}
