package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadTaxTables reads a tax table file and returns a validated provider.
// An empty filename selects the built-in 2024 tables.
func LoadTaxTables(filename string) (*calculation.TaxTableProvider, error) {
	if filename == "" {
		return calculation.NewDefaultTaxTableProvider(), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax tables %s: %w", filename, err)
	}
	tables, err := ParseTaxTables(data)
	if err != nil {
		return nil, err
	}
	provider, err := calculation.NewTaxTableProvider(tables)
	if err != nil {
		return nil, fmt.Errorf("tax tables %s: %w", filename, err)
	}
	return provider, nil
}

// ParseTaxTables decodes tax tables from YAML or JSON without validating them
func ParseTaxTables(data []byte) (domain.TaxTables, error) {
	var tables domain.TaxTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return domain.TaxTables{}, fmt.Errorf("failed to parse tax tables: %w", err)
	}
	return tables, nil
}

// SaveTaxTables writes tables as YAML, e.g. to seed a custom table file from the defaults
func SaveTaxTables(tables domain.TaxTables, filename string) error {
	data, err := yaml.Marshal(tables)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
