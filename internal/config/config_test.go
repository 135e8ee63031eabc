package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FUNDRAISER_LOG_LEVEL", "debug")
	t.Setenv("FUNDRAISER_LOG_FORMAT", "console")
	t.Setenv("FUNDRAISER_METRICS_FILE", "/tmp/fundraiser.prom")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "/tmp/fundraiser.prom", cfg.MetricsFile)
}

func TestLoad_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("FUNDRAISER_LOG_LEVEL", "debug")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyLogLevel, DefaultLogLevel, "")
	require.NoError(t, fs.Parse([]string{"--log-level=error"}))

	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "fundraiser.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log-level: info\nmetrics-file: out.prom\n"), 0o644))

	v := viper.New()
	v.Set(KeyConfigFile, p)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
	assert.Equal(t, p, cfg.ConfigFile)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		t.Setenv("FUNDRAISER_LOG_LEVEL", "chatty")
		_, err := Load(viper.New())
		assert.Error(t, err)
	})
	t.Run("format", func(t *testing.T) {
		t.Setenv("FUNDRAISER_LOG_FORMAT", "xml")
		_, err := Load(viper.New())
		assert.Error(t, err)
	})
	t.Run("missing config file", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyConfigFile, filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load(v)
		assert.Error(t, err)
	})
}
