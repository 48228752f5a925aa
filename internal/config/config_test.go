package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "none", cfg.Summary)
	assert.False(t, cfg.Metrics)
	assert.False(t, cfg.Strict)
	assert.Empty(t, cfg.Scenarios)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FILESIM_SUMMARY", "TABLE")
	t.Setenv("FILESIM_METRICS", "true")
	t.Setenv("FILESIM_LOG_FORMAT", "json")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Summary)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "log_level: debug\nsummary: yaml\nstrict: true\nscenarios: /tmp/s.hcl\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Summary)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "/tmp/s.hcl", cfg.Scenarios)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{LogLevel: "warn", LogFormat: "text", Summary: "json"}, false},
		{"bad log format", Config{LogLevel: "info", LogFormat: "xml", Summary: "none"}, true},
		{"bad summary", Config{LogLevel: "info", LogFormat: "text", Summary: "csv"}, true},
		{"bad level", Config{LogLevel: "loud", LogFormat: "text", Summary: "none"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "error", LogFormat: "json", Summary: "none"}
	assert.NotNil(t, cfg.NewLogger())
}
