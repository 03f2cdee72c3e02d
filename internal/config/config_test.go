package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyDirOptions(t *testing.T) *Options {
	dir := t.TempDir()
	return &Options{
		EnvFile:     filepath.Join(dir, ".env"),
		ConfigPaths: []string{dir},
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(emptyDirOptions(t))
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "@every 10m", cfg.Sweep.Schedule)
	assert.True(t, cfg.Sweep.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.DiscordEnabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DBALL_STORAGE_BACKEND", "SQLite")
	t.Setenv("DBALL_SQLITE_PATH", "/tmp/x.db")
	t.Setenv("DBALL_REDIS_DB", "4")
	t.Setenv("DBALL_DISCORD_TOKEN", "abc")
	t.Setenv("DBALL_SWEEP_SCHEDULE", "@hourly")

	cfg, err := Load(emptyDirOptions(t))
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.SQLite.Path)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.Equal(t, "@hourly", cfg.Sweep.Schedule)
	assert.True(t, cfg.DiscordEnabled())
}

func TestLoadConfigFileAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "http:\n  address: \":9090\"\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DBALL_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DBALL_LOG_LEVEL") })

	cfg, err := Load(&Options{EnvFile: envFile, ConfigPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "redis ok",
			cfg: Config{
				Storage: StorageConfig{Backend: StorageRedis},
				Redis:   RedisConfig{Address: "localhost:6379"},
				HTTP:    HTTPConfig{Address: ":8080"},
			},
		},
		{
			name: "unknown backend",
			cfg: Config{
				Storage: StorageConfig{Backend: "postgres"},
				HTTP:    HTTPConfig{Address: ":8080"},
			},
			wantErr: true,
		},
		{
			name: "sqlite without path",
			cfg: Config{
				Storage: StorageConfig{Backend: StorageSQLite},
				HTTP:    HTTPConfig{Address: ":8080"},
			},
			wantErr: true,
		},
		{
			name: "sweep without schedule",
			cfg: Config{
				Storage: StorageConfig{Backend: StorageRedis},
				Redis:   RedisConfig{Address: "localhost:6379"},
				HTTP:    HTTPConfig{Address: ":8080"},
				Sweep:   SweepConfig{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
