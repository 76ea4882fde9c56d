package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	BufferSize      int           `env:"BUFFER_SIZE,default=64" validate:"gt=0"`
	RequirePairing  bool          `env:"REQUIRE_PAIRING,default=false"`
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL,default=30s" validate:"gt=0"`
}

// Load reads .env if present, then the environment, then validates.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
