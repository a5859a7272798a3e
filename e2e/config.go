package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_STORAGE_BACKEND selects the store the scenarios run against: json or badger
	StorageBackend string `envconfig:"E2E_STORAGE_BACKEND" default:"json"`
	// E2E_DEBUG_TRANSCRIPT logs every session transcript, prompts included
	DebugTranscript bool `envconfig:"E2E_DEBUG_TRANSCRIPT" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
