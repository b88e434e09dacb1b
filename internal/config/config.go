package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"ha-entity-engine/internal/domain/display"
	"ha-entity-engine/internal/domain/model"
)

const EnvPrefix = "engine"

type Config struct {
	LogLevel       zapcore.Level `mapstructure:"-"`
	LogDevelopment bool          `mapstructure:"log_development"`
	Hass           HassConfig    `mapstructure:"hass"`
	Port           uint          `mapstructure:"port"`
	HttpLog        bool          `mapstructure:"http_log"`
	Display        DisplayConfig `mapstructure:"display"`
	CatalogPath    string        `mapstructure:"catalog_path"`
	Toggle         ToggleConfig  `mapstructure:"toggle"`
	// Overrides is a list because entity ids contain the key delimiter.
	Overrides []OverrideConfig `mapstructure:"overrides"`
}

type HassConfig struct {
	URL            string
	Token          string
	CacheTTLMillis uint32 `mapstructure:"cache_ttl_millis"`
}

type DisplayConfig struct {
	Language           string
	NumberFormat       string `mapstructure:"number_format"`
	DateLayout         string `mapstructure:"date_layout"`
	TimeLayout         string `mapstructure:"time_layout"`
	TimeZone           string `mapstructure:"time_zone"`
	LegacyStateCatalog bool   `mapstructure:"legacy_state_catalog"`
}

type ToggleConfig struct {
	RevertAfterMillis uint32 `mapstructure:"revert_after_millis"`
}

type OverrideConfig struct {
	EntityID             string `mapstructure:"entity_id"`
	model.ActionOverride `mapstructure:",squash"`
}

// Load reads defaults, the optional YAML file and ENGINE_* variables, in
// increasing precedence. An empty cfgFile falls back to CONFIG_FILE.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	// alias PORT => ENGINE_PORT
	if port := os.Getenv("PORT"); port != "" {
		v.SetDefault("port", port)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = os.Getenv("CONFIG_FILE")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = parseLevel(v.GetString("log_level"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)
	v.SetDefault("hass.url", "")
	v.SetDefault("hass.token", "")
	v.SetDefault("hass.cache_ttl_millis", 2000)
	v.SetDefault("port", 8080)
	v.SetDefault("http_log", false)
	v.SetDefault("display.language", "en")
	v.SetDefault("display.number_format", display.NumberFormatLanguage)
	v.SetDefault("display.date_layout", display.DefaultDateLayout)
	v.SetDefault("display.time_layout", display.DefaultTimeLayout)
	v.SetDefault("display.time_zone", "")
	v.SetDefault("display.legacy_state_catalog", false)
	v.SetDefault("catalog_path", "translations")
	v.SetDefault("toggle.revert_after_millis", 2000)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "trace", "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (c *Config) Validate() error {
	if c.Port == 0 || c.Port > 65535 {
		return fmt.Errorf("config param port should be in 1..65535, got %d", c.Port)
	}
	if c.Hass.URL != "" {
		u, err := url.Parse(c.Hass.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config param hass.url should be an http(s) url, got %q", c.Hass.URL)
		}
	}
	if c.Toggle.RevertAfterMillis == 0 {
		return errors.New("config param toggle.revert_after_millis should be > 0")
	}
	switch c.Display.NumberFormat {
	case display.NumberFormatLanguage, display.NumberFormatNone:
	default:
		if _, err := language.Parse(c.Display.NumberFormat); err != nil {
			return fmt.Errorf("config param display.number_format: %w", err)
		}
	}
	if _, err := language.Parse(c.Display.Language); err != nil {
		return fmt.Errorf("config param display.language: %w", err)
	}
	if c.Display.TimeZone != "" {
		if _, err := time.LoadLocation(c.Display.TimeZone); err != nil {
			return fmt.Errorf("config param display.time_zone: %w", err)
		}
	}

	seen := make(map[string]bool, len(c.Overrides))
	for _, o := range c.Overrides {
		if _, err := model.DomainOf(o.EntityID); err != nil {
			return fmt.Errorf("config param overrides: %w", err)
		}
		if seen[o.EntityID] {
			return fmt.Errorf("config param overrides: duplicate entry for %s", o.EntityID)
		}
		seen[o.EntityID] = true
		for _, formula := range []string{o.ValueFormula, o.LevelFormula} {
			if formula == "" {
				continue
			}
			if _, err := govaluate.NewEvaluableExpression(formula); err != nil {
				return fmt.Errorf("config param overrides: %s: formula %q: %w", o.EntityID, formula, err)
			}
		}
	}
	return nil
}

// RequireHass fails when the Home Assistant connection is not configured.
func (c *Config) RequireHass() error {
	if c.Hass.URL == "" || c.Hass.Token == "" {
		return errors.New("config params hass.url and hass.token are required")
	}
	return nil
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Hass.CacheTTLMillis) * time.Millisecond
}

func (c *Config) RevertAfter() time.Duration {
	return time.Duration(c.Toggle.RevertAfterMillis) * time.Millisecond
}

func (c *Config) Locale() display.Locale {
	l := display.Locale{
		Language:     c.Display.Language,
		NumberFormat: c.Display.NumberFormat,
		DateLayout:   c.Display.DateLayout,
		TimeLayout:   c.Display.TimeLayout,
	}
	if c.Display.TimeZone != "" {
		// validated in Load
		l.Location, _ = time.LoadLocation(c.Display.TimeZone)
	}
	return l
}

func (c *Config) OverrideMap() map[string]*model.ActionOverride {
	m := make(map[string]*model.ActionOverride, len(c.Overrides))
	for i := range c.Overrides {
		o := c.Overrides[i].ActionOverride
		m[c.Overrides[i].EntityID] = &o
	}
	return m
}

// Redacted returns a copy safe for printing.
func (c Config) Redacted() Config {
	if c.Hass.Token != "" {
		c.Hass.Token = "*redacted*"
	}
	return c
}
