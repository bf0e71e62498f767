package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

type Config struct {
	LogLevel string   `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error" validate:"oneof=debug info warn error"`
	LogFile  string   `yaml:"log-file" env:"TTT_LOG_FILE" env-description:"write logs to this file instead of stderr"`
	Terminal Terminal `yaml:"terminal"`
}

type Terminal struct {
	Prompt      string `yaml:"prompt" env:"TTT_PROMPT" env-default:"tictactoe" env-description:"input prompt" validate:"required,max=32"`
	HistoryFile string `yaml:"history-file" env:"TTT_HISTORY_FILE" env-description:"line editor history file, disabled when empty"`
	Color       string `yaml:"color" env:"TTT_COLOR" env-default:"auto" env-description:"auto, always or never" validate:"oneof=auto always never"`
	Descending  bool   `yaml:"descending" env:"TTT_DESCENDING" env-default:"false" env-description:"list moves newest first"`
}

// Load reads the config file at path with environment overrides. A missing
// file is not an error: defaults and the environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Description lists the environment variables the config understands.
func Description() (string, error) {
	header := "Environment variables:"

	description, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return "", fmt.Errorf("unable to describe config: %w", err)
	}

	return description, nil
}
