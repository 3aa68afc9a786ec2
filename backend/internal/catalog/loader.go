package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "toolshelf/backend/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Format is a registry file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the on-disk shape of a registry file
type document struct {
	Tools []Descriptor `json:"tools" yaml:"tools"`
}

// FormatFromPath picks the encoding from a file extension, defaulting to YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFile reads and validates a registry file
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewCatalogLoadFailed(path, err)
	}
	reg, err := Decode(bytes.NewReader(data), FormatFromPath(path))
	if err != nil {
		return nil, apperrors.NewCatalogLoadFailed(path, err)
	}
	return reg, nil
}

// Decode parses a registry document and validates it
func Decode(r io.Reader, format Format) (*Registry, error) {
	var doc document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return New(doc.Tools)
}

// Encode writes the tools as a registry document
func Encode(w io.Writer, tools []Descriptor, format Format) error {
	doc := document{Tools: tools}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Open returns the registry at path, or the builtin one when path is empty
func Open(path string) (*Registry, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}
