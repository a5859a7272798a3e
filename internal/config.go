package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendJSON   = "json"
	BackendBadger = "badger"
)

type Config struct {
	ContactsFilepath string `env:"CONTACTS_FILEPATH,default=contacts.json" validate:"required"`
	StorageBackend   string `env:"STORAGE_BACKEND,default=json" validate:"oneof=json badger"`
	BadgerFilepath   string `env:"BADGER_FILEPATH,default=./data/contacts" validate:"required_if=StorageBackend badger"`
	PageSize         int    `env:"PAGE_SIZE,default=10" validate:"min=1"`
	Colours          bool   `env:"COLOURS,default=true"`
	LogLevel         string `env:"LOG_LEVEL,default=INFO"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
