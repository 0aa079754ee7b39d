package internal

import (
	"file-exchange/domain"
	"os"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)

	var config Config
	req.NoError(env.Unmarshal(env.EnvSet{}, &config))
	req.NoError(config.Validate())

	req.Equal(int64(80*domain.MB), config.MaxFileSizeBytes)
	req.Equal(8080, config.Port)
	req.Equal(1024, config.ChunkSize)
	req.Equal(9090, config.OpsPort)
	req.Equal(10*time.Second, config.ShutdownTimeout)
	req.True(config.ConsoleProgress)
	req.Equal(os.TempDir(), config.EffectiveStorageRoot())
	req.Equal(":8080", config.Address())
	req.Equal(int64(80*domain.MB+65536), config.BodyLimit())

	policy, err := config.Policy()
	req.NoError(err)
	req.Equal([]string{".zip", ".xz", ".bin"}, policy.AllowedExtensions)
	req.Equal(int64(80*domain.MB), policy.MaxSizeBytes)
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)

	var config Config
	req.NoError(env.Unmarshal(env.EnvSet{
		"STORAGE_ROOT":        "/srv/exchange",
		"MAX_FILE_SIZE_BYTES": "2048",
		"ALLOWED_EXTENSIONS":  "TAR, gz,.zip",
		"HOST":                "127.0.0.1",
		"PORT":                "9000",
		"OPS_PORT":            "0",
		"CONSOLE_PROGRESS":    "false",
	}, &config))
	req.NoError(config.Validate())

	req.Equal("/srv/exchange", config.EffectiveStorageRoot())
	req.Equal("127.0.0.1:9000", config.Address())
	req.Empty(config.OpsAddress())
	req.False(config.ConsoleProgress)

	policy, err := config.Policy()
	req.NoError(err)
	req.Equal([]string{".tar", ".gz", ".zip"}, policy.AllowedExtensions)
	req.Equal(int64(2048), policy.MaxSizeBytes)
}

func TestConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"zero chunk", func(c *Config) { c.ChunkSize = 0 }},
		{"negative size", func(c *Config) { c.MaxFileSizeBytes = -1 }},
		{"ops port collides", func(c *Config) { c.OpsPort = c.Port }},
		{"unknown level", func(c *Config) { c.LogLevel = "TRACE" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			var config Config
			req.NoError(env.Unmarshal(env.EnvSet{}, &config))
			tc.mutate(&config)
			req.Error(config.Validate())
		})
	}
}
