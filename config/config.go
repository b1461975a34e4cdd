// Package config loads slot catalogs from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/slotfit/internal/format"
	"github.com/joshuapare/slotfit/slot"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog definition. Omitted fields fall back to the
// built-in defaults.
type File struct {
	PageSize  int32          `yaml:"page_size"`
	SlotSizes []int32        `yaml:"slot_sizes"`
	Configs   []ConfigRecord `yaml:"configs"`
}

// ConfigRecord is one metadata-overhead configuration.
type ConfigRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Meta int32  `yaml:"meta"`
}

// Load reads a catalog definition from path.
func Load(path string) (*slot.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse builds a catalog from YAML. Unknown keys are rejected.
func Parse(data []byte) (*slot.Catalog, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return f.Catalog()
}

// Catalog converts the definition into a validated catalog.
func (f File) Catalog() (*slot.Catalog, error) {
	page := f.PageSize
	if page == 0 {
		page = format.PageSize
	}

	sizes := f.SlotSizes
	if len(sizes) == 0 {
		sizes = slot.DefaultSlotSizes()
	}

	configs := slot.DefaultConfigs()
	if len(f.Configs) > 0 {
		configs = make([]slot.Config, len(f.Configs))
		for i, rec := range f.Configs {
			configs[i] = slot.Config{ID: rec.ID, Name: rec.Name, Meta: rec.Meta}
		}
	}

	cat, err := slot.NewCatalog(page, sizes, configs...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}
