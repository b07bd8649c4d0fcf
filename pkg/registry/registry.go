// pkg/registry/registry.go
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrMissingName marks a registry entry without a usable name.
var ErrMissingName = errors.New("registry entry missing name")

// DecodeIndex parses the registry index body and returns the component
// names in ascending byte order.
func DecodeIndex(data []byte) ([]string, error) {
	var entries []*ComponentSummary
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, fmt.Errorf("registry index is null, expected an array")
	}

	names := make([]string, 0, len(entries))
	for i, entry := range entries {
		if entry == nil || entry.Name == nil {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingName)
		}
		names = append(names, *entry.Name)
	}
	sort.Strings(names)
	return names, nil
}

// DecodeDetail parses a demo payload. The body must be a JSON object.
func DecodeDetail(data []byte) (*ComponentDetail, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("demo payload is not a JSON object")
	}

	var detail ComponentDetail
	if err := json.Unmarshal(trimmed, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// LoadDetail reads a demo payload saved on disk.
func LoadDetail(path string) (*ComponentDetail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeDetail(data)
}
