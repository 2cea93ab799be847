package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPlansDir returns the directory where loading plans are archived.
func DefaultPlansDir() string {
	return filepath.Join(DefaultConfigDir(), "plans")
}

// SaveJSON writes any value as indented JSON, creating parent directories.
// Used for archiving loading plans and for machine-readable CLI output.
func SaveJSON(path string, v interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON reads a JSON file into the given value.
func LoadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
