package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

const (
	EnvDotenvPath = "GARAGE_DOTENV_PATH"
	EnvFormat     = "GARAGE_FORMAT"
	EnvLogLevel   = "GARAGE_LOG_LEVEL"

	DefaultFormat   = "lines"
	DefaultLogLevel = "info"
)

type Config struct {
	Format   string
	LogLevel string
}

// Load reads the configuration from the environment. When GARAGE_DOTENV_PATH
// is set the file it names is loaded first; variables already present in the
// environment take precedence over the file.
func Load() (*Config, error) {
	if path := os.Getenv(EnvDotenvPath); path != "" {
		if err := gotenv.Load(path); err != nil {
			return nil, errors.Wrapf(err, "failed loading configuration file %s", path)
		}
	}

	return &Config{
		Format:   getKeyWithDefault(EnvFormat, DefaultFormat),
		LogLevel: getKeyWithDefault(EnvLogLevel, DefaultLogLevel),
	}, nil
}

func getKeyWithDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
