package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CORPUS_OUTPUT_FORMAT.
const EnvPrefix = "CORPUS"

// Settings are the CLI options that are not part of a plan.
type Settings struct {
	CurrentYear    int // 0 means the calendar year at run time
	Format         string
	CurrencySymbol string
	OutputDir      string
	LogLevel       string
	LogFormat      string
	CacheSize      int
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("current_year", 0)
	v.SetDefault("output.format", "console")
	v.SetDefault("output.currency_symbol", "₹")
	v.SetDefault("output.dir", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("planner.cache_size", 64)
}

// ReadConfig loads cfgFile, or corpus.yaml from ~/.config/corpus or the
// working directory when cfgFile is empty, and enables environment
// overrides. A missing default config file is not an error.
func ReadConfig(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "corpus"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("corpus")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadSettings reads and validates the settings held by v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		CurrentYear:    v.GetInt("current_year"),
		Format:         v.GetString("output.format"),
		CurrencySymbol: v.GetString("output.currency_symbol"),
		OutputDir:      v.GetString("output.dir"),
		LogLevel:       strings.ToLower(v.GetString("logging.level")),
		LogFormat:      strings.ToLower(v.GetString("logging.format")),
		CacheSize:      v.GetInt("planner.cache_size"),
	}
	if s.CurrentYear < 0 {
		return Settings{}, fmt.Errorf("current_year cannot be negative")
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return Settings{}, fmt.Errorf("logging.format %q must be text or json", s.LogFormat)
	}
	if s.CacheSize < 0 {
		return Settings{}, fmt.Errorf("planner.cache_size cannot be negative")
	}
	return s, nil
}
