package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
)

// LoadWidthItems reads a width item list from a JSON or YAML file.
// A missing file yields an empty list.
func LoadWidthItems(path string) ([]colwidth.WidthItem, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read widths file: %w", err)
	}

	if f == formatYAML {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	items, err := colwidth.DecodeWidthItems(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// yamlToJSON converts a YAML document to JSON so width items have a single decoder.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse widths YAML: %w", err)
	}
	if doc == nil {
		return []byte("[]"), nil
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert widths YAML: %w", err)
	}
	return out, nil
}

// SaveWidthItems writes a width item list to a JSON or YAML file, replacing it.
func SaveWidthItems(path string, items []colwidth.WidthItem) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	data, err := colwidth.EncodeWidthItems(items)
	if err != nil {
		return err
	}

	if f == formatYAML {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to convert widths to YAML: %w", err)
		}
		data, err = yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert widths to YAML: %w", err)
		}
	} else {
		data = append(data, '\n')
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write widths file: %w", err)
	}
	return nil
}
