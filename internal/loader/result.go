// Package loader reads result metadata and saved width items from disk and
// watches them for changes.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported file format")

type format uint8

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadResult reads result metadata from a JSON or YAML file.
// Unknown fields are rejected.
func LoadResult(path string) (*core.ResultMetadata, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	result, err := ParseResult(data, f == formatYAML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// ParseResult decodes result metadata from YAML or JSON.
func ParseResult(data []byte, isYAML bool) (*core.ResultMetadata, error) {
	var result core.ResultMetadata
	if isYAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&result); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse result YAML: %w", err)
		}
		return &result, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse result JSON: %w", err)
	}
	return &result, nil
}
