package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BASE_URL points at a running file exchange, e.g. http://localhost:8080
	BaseURL string `envconfig:"E2E_BASE_URL"`
	// E2E_DEBUG_BODIES dumps response bodies in the test log
	DebugBodies bool `envconfig:"E2E_DEBUG_BODIES" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_MAX_FILE_SIZE_BYTES must match the server's MAX_FILE_SIZE_BYTES
	MaxFileSizeBytes int64 `envconfig:"E2E_MAX_FILE_SIZE_BYTES" default:"83886080"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
