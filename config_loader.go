package arabicdate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigOption mutates a ConversionConfig during LoadConfig.
type ConfigOption func(*ConversionConfig) error

// LoadConfig starts from DefaultConfig and applies opts in order, so later
// options win over earlier ones.
func LoadConfig(opts ...ConfigOption) (ConversionConfig, error) {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return ConversionConfig{}, err
		}
	}

	if cfg.SupportedLocales != nil {
		locales := normalizeLocales(cfg.SupportedLocales)
		if locales == nil {
			locales = []string{}
		}
		cfg.SupportedLocales = locales
	}

	return cfg, nil
}

// WithConfigFile overlays a .json, .yaml/.yml or .toml file. Keys missing
// from the file keep their current value.
func WithConfigFile(path string) ConfigOption {
	return func(c *ConversionConfig) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("arabicdate: read %s: %w", path, err)
		}
		if err := decodeConfigFile(path, data, c); err != nil {
			return fmt.Errorf("arabicdate: decode %s: %w", path, err)
		}
		return nil
	}
}

// WithEnv overlays environment variables named after the env struct tags,
// each prefixed with prefix (e.g. "ARABIC_DATE_"). Unset variables are ignored.
func WithEnv(prefix string) ConfigOption {
	return func(c *ConversionConfig) error {
		if err := env.ParseWithOptions(c, env.Options{Prefix: prefix}); err != nil {
			return fmt.Errorf("arabicdate: parse env: %w", err)
		}
		return nil
	}
}

func WithDefaultFormat(format string) ConfigOption {
	return func(c *ConversionConfig) error {
		c.DefaultFormat = format
		return nil
	}
}

func WithCustomFormat(format string) ConfigOption {
	return func(c *ConversionConfig) error {
		c.CustomFormat = format
		return nil
	}
}

func WithArabicNumerals(enabled bool) ConfigOption {
	return func(c *ConversionConfig) error {
		c.EnableNumerals = enabled
		return nil
	}
}

func WithArabicMonths(enabled bool) ConfigOption {
	return func(c *ConversionConfig) error {
		c.EnableMonths = enabled
		return nil
	}
}

func WithArabicDays(enabled bool) ConfigOption {
	return func(c *ConversionConfig) error {
		c.EnableDays = enabled
		return nil
	}
}

// WithSupportedLocales replaces the locale allow-list.
func WithSupportedLocales(locales ...string) ConfigOption {
	return func(c *ConversionConfig) error {
		c.SupportedLocales = append([]string{}, locales...)
		return nil
	}
}

func WithAutoConvert(enabled bool) ConfigOption {
	return func(c *ConversionConfig) error {
		c.AutoConvertOnRetrieval = enabled
		return nil
	}
}

func decodeConfigFile(path string, data []byte, cfg *ConversionConfig) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, ext)
	}
}
