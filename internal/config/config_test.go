package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		config string
		env    map[string]string
		check  func(t *testing.T, c *Config)
	}{
		{
			name:   "defaults",
			config: ``,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "https://tapi.bale.ai", c.Bale.APIURL)
				assert.Equal(t, 30*time.Second, c.Bale.Timeout)
				assert.Equal(t, "/webhook", c.Trigger.Path)
				assert.Equal(t, "large", c.Trigger.ImageSize)
				assert.False(t, c.Dispatcher.Strict)
			},
		},
		{
			name: "file values",
			config: `
[bale]
token = "file-token"
timeout = "5s"

[dispatcher]
strict = true

[trigger]
allowed_chat_ids = [10, -20]
image_size = "small"
`,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "file-token", c.Bale.Token)
				assert.Equal(t, 5*time.Second, c.Bale.Timeout)
				assert.True(t, c.Dispatcher.Strict)
				assert.Equal(t, []int64{10, -20}, c.Trigger.AllowedChatIDs)
				assert.Equal(t, "small", c.Trigger.ImageSize)
			},
		},
		{
			name: "environment wins",
			config: `
[bale]
token = "file-token"
`,
			env: map[string]string{
				"BALEBRIDGE_BALE_TOKEN":     "env-token",
				"BALEBRIDGE_TRIGGER_LISTEN": ":9999",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "env-token", c.Bale.Token)
				assert.Equal(t, ":9999", c.Trigger.Listen)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			c, err := Load(writeConfig(t, tc.config))
			require.NoError(t, err)
			tc.check(t, c)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	for level, want := range map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	} {
		SetupLogging(BotConfig{LogLevel: level})
		assert.Equal(t, want, zerolog.GlobalLevel(), level)
	}
}
