package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration of the morse command.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Codec  CodecConfig  `yaml:"codec"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"MORSE_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"MORSE_LOG_FORMAT" env-default:"console"`
}

// CodecConfig holds message codec settings.
type CodecConfig struct {
	BufferCapacity int  `yaml:"buffer_capacity" env:"MORSE_BUFFER_CAPACITY" env-default:"256"`
	ReversedInput  bool `yaml:"reversed_input"  env:"MORSE_REVERSED_INPUT"  env-default:"false"`
}

// OutputConfig holds settings for what the command prints.
type OutputConfig struct {
	PrintDictionary  bool   `yaml:"print_dictionary"  env:"MORSE_PRINT_DICTIONARY"  env-default:"false"`
	DictionaryFormat string `yaml:"dictionary_format" env:"MORSE_DICTIONARY_FORMAT" env-default:"table"`
}

const configPathEnv = "MORSE_CONFIG_PATH"

var (
	logLevels         = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	logFormats        = []string{"console", "json"}
	dictionaryFormats = []string{"table", "plain"}
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is path, or MORSE_CONFIG_PATH when path is empty. Without either,
// configuration comes from ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(configPathEnv)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", logLevels, c.Log.Level)
	}

	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v, got %q", logFormats, c.Log.Format)
	}

	if c.Codec.BufferCapacity <= 0 {
		return fmt.Errorf("codec.buffer_capacity must be positive, got %d", c.Codec.BufferCapacity)
	}

	if !slices.Contains(dictionaryFormats, c.Output.DictionaryFormat) {
		return fmt.Errorf("output.dictionary_format must be one of %v, got %q", dictionaryFormats, c.Output.DictionaryFormat)
	}

	return nil
}
