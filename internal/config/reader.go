package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Reader interface {
	Read() (*Config, error)
}

// EnvReader reads the configuration from the environment. When CONFIG_PATH
// is set the file it points to is read first and the environment overrides it.
type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)

	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage)
	}
	return cfg, nil
}

// RequireJWTSecret reports an error when the signing secret is not set.
// Only the services that issue or verify tokens call it.
func (c *Config) RequireJWTSecret() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}
