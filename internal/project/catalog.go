package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/PipeStack/internal/model"
)

// DefaultCatalogPath returns the default file path for the pipe catalog.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog saves a pipe catalog to a JSON file.
func SaveCatalog(path string, catalog []model.PipeType) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog loads a pipe catalog from a JSON file.
// If the file does not exist, it returns the built-in catalog with no error.
func LoadCatalog(path string) ([]model.PipeType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.BuiltinCatalog(), nil
		}
		return nil, err
	}

	var catalog []model.PipeType
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return model.BuiltinCatalog(), nil
	}
	return catalog, nil
}

// ImportCatalog reads additional pipe types from a JSON file and merges
// them into the given catalog. Entries with a code already present replace
// the existing row, so a customer-specific sheet can override weights.
func ImportCatalog(path string, catalog []model.PipeType) ([]model.PipeType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imported []model.PipeType
	if err := json.Unmarshal(data, &imported); err != nil {
		return nil, err
	}

	merged := make([]model.PipeType, len(catalog))
	copy(merged, catalog)

	for _, p := range imported {
		if !p.Valid() {
			return nil, errors.New("imported catalog entry " + p.Code + " has invalid dimensions")
		}
		replaced := false
		for i := range merged {
			if merged[i].Code == p.Code {
				merged[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, p)
		}
	}
	return merged, nil
}
