package ifs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a mesh document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the document format from a file extension. Anything
// that is not .json is read as YAML, which also accepts JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads and validates a mesh document
func Load(path string) (*IndexedFaceSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	set, err := Decode(file, FormatForPath(path))
	if err != nil {
		return nil, err
	}
	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return set, nil
}

// Decode reads a mesh document and validates it
func Decode(r io.Reader, format Format) (*IndexedFaceSet, error) {
	set := &IndexedFaceSet{}
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(set); err != nil {
			return nil, fmt.Errorf("failed to decode JSON mesh: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(set); err != nil {
			return nil, fmt.Errorf("failed to decode YAML mesh: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Encode writes the set as a mesh document
func Encode(w io.Writer, set *IndexedFaceSet, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(set); err != nil {
			return fmt.Errorf("failed to encode JSON mesh: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(set); err != nil {
			return fmt.Errorf("failed to encode YAML mesh: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML mesh: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// Save writes the set to path in the format matching its extension
func Save(path string, set *IndexedFaceSet) error {
	var buf bytes.Buffer
	if err := Encode(&buf, set, FormatForPath(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
