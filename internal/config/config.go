package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// EnvPrefix is prepended to every environment variable, e.g. DBALL_REDIS_ADDRESS
const EnvPrefix = "DBALL"

// Config holds all settings for the dball binary
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	SQLite  SQLiteConfig  `mapstructure:"sqlite"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Discord DiscordConfig `mapstructure:"discord"`
	Sweep   SweepConfig   `mapstructure:"sweep"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// RedisConfig is used when Storage.Backend is redis
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SQLiteConfig is used when Storage.Backend is sqlite
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// HTTPConfig configures the JSON API
type HTTPConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"`
}

// DiscordConfig configures the optional bot. The bot is disabled when Token is empty.
type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	GuildID       string `mapstructure:"guild_id"`
}

// SweepConfig controls the periodic settlement sweep
type SweepConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// LogConfig mirrors logging.Config
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
	JSON       bool   `mapstructure:"json"`
}

// Options tweak where Load looks for its sources
type Options struct {
	// EnvFile is loaded with godotenv when present. Defaults to ".env".
	EnvFile string

	// ConfigPaths are searched for config.yaml. Defaults to "./config" and ".".
	ConfigPaths []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", StorageRedis)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("sqlite.path", "data/dball.db")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.mode", "release")
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")
	v.SetDefault("sweep.enabled", true)
	v.SetDefault("sweep.schedule", "@every 10m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.json", false)
}

// Load reads defaults, an optional config.yaml, an optional .env file and DBALL_* environment
// variables, in increasing order of precedence
func Load(opts *Options) (*Config, error) {
	if opts == nil {
		opts = &Options{}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	paths := opts.ConfigPaths
	if len(paths) == 0 {
		paths = []string{"./config", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))

	switch c.Storage.Backend {
	case StorageRedis:
		if c.Redis.Address == "" {
			return errors.New("redis address is required for the redis backend")
		}
	case StorageSQLite:
		if c.SQLite.Path == "" {
			return errors.New("sqlite path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.HTTP.Address == "" {
		return errors.New("http address is required")
	}

	if c.Sweep.Enabled && c.Sweep.Schedule == "" {
		return errors.New("sweep schedule is required when the sweep is enabled")
	}

	return nil
}

// DiscordEnabled reports whether a bot token was configured
func (c *Config) DiscordEnabled() bool {
	return c.Discord.Token != ""
}
