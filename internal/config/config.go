// Package config loads cogscreen settings from defaults, an optional YAML
// file, a .env file and COGSCREEN_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/cogscreen/internal/assessment"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g.
// COGSCREEN_POLICY_ADAPTIVE_THRESHOLD.
const EnvPrefix = "COGSCREEN"

// Config is the top-level configuration.
type Config struct {
	Policy    assessment.Policy `mapstructure:"policy"`
	Store     StoreConfig       `mapstructure:"store"`
	Logging   LoggingConfig     `mapstructure:"logging"`
	Questions string            `mapstructure:"questions"` // optional question bank file
}

// StoreConfig selects and configures the profile store.
type StoreConfig struct {
	// Backend is "sqlite" or "redis".
	Backend     string      `mapstructure:"backend"`
	Path        string      `mapstructure:"path"` // empty = store.DefaultDBPath
	HistoryKeep int         `mapstructure:"history_keep"`
	Redis       RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Level        string `mapstructure:"level"`
	ConsoleLevel string `mapstructure:"console_level"`
	Directory    string `mapstructure:"directory"` // empty = no file log
	MaxSize      int    `mapstructure:"max_size"`
	MaxBackups   int    `mapstructure:"max_backups"`
	MaxAge       int    `mapstructure:"max_age"`
	Compress     bool   `mapstructure:"compress"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	p := assessment.DefaultPolicy()
	v.SetDefault("policy.adaptive_threshold", p.AdaptiveThreshold)
	v.SetDefault("policy.target_trials", p.TargetTrials)
	v.SetDefault("policy.profile.game_weight", p.Profile.GameWeight)
	v.SetDefault("policy.profile.questionnaire_weight", p.Profile.QuestionnaireWeight)
	v.SetDefault("policy.profile.neutral_score", p.Profile.NeutralScore)
	v.SetDefault("policy.risk.low", p.Risk.Low)
	v.SetDefault("policy.risk.moderate", p.Risk.Moderate)

	v.SetDefault("store.backend", "sqlite")
	v.SetDefault("store.path", "")
	v.SetDefault("store.history_keep", assessment.DefaultHistoryKeep)
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console_level", "warn")
	v.SetDefault("logging.directory", "")
	v.SetDefault("logging.max_size", 10)   // megabytes
	v.SetDefault("logging.max_backups", 3) // files
	v.SetDefault("logging.max_age", 7)     // days
	v.SetDefault("logging.compress", true)

	v.SetDefault("questions", "")
}

// Default returns the configuration with no file or environment applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return &c
}

// Load reads configuration. An empty path searches for cogscreen.yaml in
// the working directory and $XDG_CONFIG_HOME/cogscreen; a missing file is
// not an error unless path was given explicitly.
func Load(path string) (*Config, error) {
	// Values from .env never override variables already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cogscreen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "cogscreen"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	var errs []string

	p := c.Policy
	if p.AdaptiveThreshold < 0 {
		errs = append(errs, fmt.Sprintf("policy.adaptive_threshold must be >= 0, got %d", p.AdaptiveThreshold))
	}
	if p.TargetTrials <= 0 {
		errs = append(errs, fmt.Sprintf("policy.target_trials must be > 0, got %d", p.TargetTrials))
	}
	if p.Profile.GameWeight < 0 || p.Profile.QuestionnaireWeight < 0 {
		errs = append(errs, "policy.profile weights must not be negative")
	}
	if p.Profile.NeutralScore < 0 || p.Profile.NeutralScore > 100 {
		errs = append(errs, fmt.Sprintf("policy.profile.neutral_score must be in [0, 100], got %g", p.Profile.NeutralScore))
	}
	if p.Risk.Moderate > p.Risk.Low {
		errs = append(errs, fmt.Sprintf("policy.risk.moderate (%d) must not exceed policy.risk.low (%d)", p.Risk.Moderate, p.Risk.Low))
	}

	switch c.Store.Backend {
	case "sqlite", "redis":
	default:
		errs = append(errs, fmt.Sprintf("store.backend must be sqlite or redis, got %q", c.Store.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
