// Package config loads the application configuration from defaults, an
// optional YAML file, a .env file and INVOICE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Text extractors selectable through pdf.extractor.
const (
	ExtractorNative    = "native"
	ExtractorPdftotext = "pdftotext"
)

// EnvPrefix prefixes every environment override, e.g. INVOICE_LOG_LEVEL.
const EnvPrefix = "INVOICE"

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	PDF struct {
		Extractor string `mapstructure:"extractor" yaml:"extractor"`
	} `mapstructure:"pdf" yaml:"pdf"`

	Vendors struct {
		// File optionally points at a YAML file of additional vendor profiles.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"vendors" yaml:"vendors"`
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// LoadEnv loads a .env file from the working directory or its parent, if
// one exists. Missing files are not an error.
func LoadEnv() error {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			if err := godotenv.Load(candidate); err != nil {
				return fmt.Errorf("loading %s: %w", candidate, err)
			}
			return nil
		}
	}
	return nil
}

// InitializeConfig builds the configuration. When configFile is empty the
// standard locations are searched and a missing file is not an error.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.trade-invoice-csv")
		v.AddConfigPath(".trade-invoice-csv")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("pdf.extractor", ExtractorNative)
	v.SetDefault("vendors.file", "")
}

func validateConfig(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}

	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", cfg.Log.Format)
	}

	if len([]rune(cfg.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", cfg.CSV.Delimiter)
	}

	switch cfg.PDF.Extractor {
	case ExtractorNative, ExtractorPdftotext:
	default:
		return fmt.Errorf("invalid pdf extractor: %s (must be '%s' or '%s')",
			cfg.PDF.Extractor, ExtractorNative, ExtractorPdftotext)
	}

	return nil
}
