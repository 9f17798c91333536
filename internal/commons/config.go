package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"retreat/internal/config"
)

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = config.CatalogSourceStatic
	}

	return &cfg, nil
}
