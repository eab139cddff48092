package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCells reads sample cell texts per column id from a JSON or YAML file,
// for example {"r_0": ["CompuSci", "Explorer"], "c_0": ["1,234.00"]}.
func LoadCells(path string) (map[string][]string, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cells file: %w", err)
	}

	cells := make(map[string][]string)
	if f == formatYAML {
		err = yaml.Unmarshal(data, &cells)
	} else {
		err = json.Unmarshal(data, &cells)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse cells: %w", path, err)
	}
	return cells, nil
}
