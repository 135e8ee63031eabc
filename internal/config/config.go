// Package config resolves runtime settings from flags, FUNDRAISER_*
// environment variables, .env files and an optional YAML config file, in
// that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"Fundraiser/pkg/kit"
)

const (
	EnvPrefix = "FUNDRAISER"

	KeyConfigFile  = "config"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyMetricsFile = "metrics-file"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = kit.LogFormatJSON
)

var envFiles = []string{".env", ".env.local"}

type Config struct {
	ConfigFile  string
	LogLevel    string
	LogFormat   string
	MetricsFile string
}

// Load reads the configuration through v. Flags must already be bound to v
// for them to take precedence.
func Load(v *viper.Viper) (*Config, error) {
	loadEnvFiles()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	if f := v.GetString(KeyConfigFile); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", f, err)
		}
	}

	cfg := &Config{
		ConfigFile:  v.ConfigFileUsed(),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		MetricsFile: v.GetString(KeyMetricsFile),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	switch c.LogFormat {
	case kit.LogFormatJSON, kit.LogFormatConsole:
	default:
		return fmt.Errorf("%s: unknown format %q", KeyLogFormat, c.LogFormat)
	}
	return nil
}

// loadEnvFiles loads .env files without overriding variables already set.
func loadEnvFiles() {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
}
