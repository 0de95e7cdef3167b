package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/stockroom/stockroom/internal/domain"
)

const fileName = ".stockroom.yaml"

// Loader implements domain.ConfigLoader by reading .stockroom.yaml and then
// overlaying STOCKROOM_* environment variables, optionally loaded from a
// .env file next to the config.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads .stockroom.yaml from dir. Returns DefaultConfig when the file
// does not exist. Environment variables win over file values.
func (l *Loader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no config file, defaults apply
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	}

	// A .env alongside the config is optional.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if err := envconfig.Process("", &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
