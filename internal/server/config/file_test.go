package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{
			"endpoint_addr_http": "www.example:3000",
			"endpoint_addr_grpc": "www.example:50051",
			"database_dsn": "messagely.db",
			"secret_key": "my_secret_key",
			"bcrypt_work_factor": 4,
			"access_token_validity_duration": "90m",
			"log_level": "warn"
		}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "www.example:3000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "www.example:50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, "messagely.db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 4, cfg.BcryptWorkFactor)
		assert.Equal(t, 90*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("loads from yaml", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yaml", "secret_key: yaml-key\naccess_token_validity_duration: 2h\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{EndpointAddrHTTP: ":1"}
		parseFile(cfg)

		assert.Equal(t, "yaml-key", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.AccessTokenValidityDuration)
		assert.Equal(t, ":1", cfg.EndpointAddrHTTP, "absent keys must not override")
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}
		cfg := &Config{SecretKey: "key", BcryptWorkFactor: 7}
		parseFile(cfg)

		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 7, cfg.BcryptWorkFactor)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", path}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(t.TempDir(), "nope.json")}
		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
