package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes composer.json content.
func Parse(data []byte) (*Composer, error) {
	var c Composer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing composer manifest: %w", err)
	}
	return &c, nil
}

// ParseFile reads and decodes a composer.json file.
func ParseFile(path string) (*Composer, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
