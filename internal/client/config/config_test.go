package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Empty(t, cfg.ServerBaseURL, "the base URL has no default")
	assert.Equal(t, "medadvisor.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"http url", "http://localhost:8080", false},
		{"https url", "https://api.example.com", false},
		{"url with path", "https://api.example.com/v1", false},
		{"missing", "", true},
		{"no scheme", "localhost:8080", true},
		{"no host", "http://", true},
		{"garbage", "://nope", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ServerBaseURL: tt.baseURL}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_MissingBaseURLSentinel(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingBaseURL)
}

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://envhost:9000")
	t.Setenv(EnvDatabasePath, "/tmp/env.db")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "http://envhost:9000", cfg.ServerBaseURL)
	assert.Equal(t, "/tmp/env.db", cfg.DatabasePath)
}

func TestParseEnv_UnsetLeavesValues(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvDatabasePath, "")

	cfg := Config{ServerBaseURL: "http://kept", DatabasePath: "kept.db"}
	parseEnv(&cfg)

	assert.Equal(t, "http://kept", cfg.ServerBaseURL)
	assert.Equal(t, "kept.db", cfg.DatabasePath)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://envhost:9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://envhost:9000", cfg.ServerBaseURL)
	assert.Equal(t, "medadvisor.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FailsWithoutBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingBaseURL)
}
