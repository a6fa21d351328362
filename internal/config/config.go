package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HumanMark   string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	FirstTurn   string `yaml:"first-turn" env:"FIRST_TURN" env-default:"human"`
	ColorOutput bool   `yaml:"color-output" env:"COLOR_OUTPUT" env-default:"true"`
}

// MustLoad - load all configuration from the config.yml file, falling back
// to env-defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Marks - returns the human and computer display marks. Anything other than
// a human "O" keeps the original assignment: human X, computer O.
func (that *Config) Marks() (string, string) {
	if that.HumanMark == "O" {
		return "O", "X"
	}

	return "X", "O"
}
