package config

import (
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-engine/internal/util"
	"os"
)

// Config provides configuration for the hold'em engine
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path" default:"./sql"`
	LLM            struct {
		BaseURL string `yaml:"baseUrl" envconfig:"base_url" default:"https://api.openai.com/v1"`
		APIKey  string `yaml:"apiKey" envconfig:"api_key"`
		Model   string `yaml:"model" envconfig:"model"`
	}
	Game struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind" default:"10"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind" default:"20"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips" default:"1000"`
		AIPlayers     int `yaml:"aiPlayers" envconfig:"ai_players" default:"3"`
	}
	Log struct {
		Level string `yaml:"level" envconfig:"level" default:"info"`
	}
}

// DefaultConfig returns a config with only the default values applied
func DefaultConfig() Config {
	var c Config
	if err := envconfig.Process("holdemdefaults", &c); err != nil {
		panic(err)
	}

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; env vars and defaults still apply
func Load() error {
	config = Config{}

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
