// Package config loads server and CLI settings from a yaml file, a .env file
// and POSTGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Roster   RosterConfig   `mapstructure:"roster"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Brand    BrandConfig    `mapstructure:"brand"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RosterConfig points at the CSV roster used when no database is configured.
type RosterConfig struct {
	Path string `mapstructure:"path"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type AssetsConfig struct {
	BaseDir   string        `mapstructure:"base_dir"`
	Logo      string        `mapstructure:"logo"`
	WhiteLogo string        `mapstructure:"white_logo"`
	Timeout   time.Duration `mapstructure:"timeout"`

	// AllowedHosts lists the hosts http(s) assets may come from.
	AllowedHosts []string `mapstructure:"allowed_hosts"`
	CacheSize    int      `mapstructure:"cache_size"`
}

type BrandConfig struct {
	DefaultTheme string `mapstructure:"default_theme"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("roster.path", "data/roster.csv")
	v.SetDefault("redis.ttl", 24*time.Hour)
	v.SetDefault("assets.base_dir", "data")
	v.SetDefault("assets.logo", "brand/crest.png")
	v.SetDefault("assets.timeout", 10*time.Second)
	v.SetDefault("assets.cache_size", 128)
	v.SetDefault("brand.default_theme", "classic")
}

// Load reads .env (if present), then config.yaml from ./configs or the
// working directory, then POSTGEN_* overrides such as POSTGEN_SERVER_PORT.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("POSTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Database.DSN == "" && c.Roster.Path == "" {
		return errors.New("either database.dsn or roster.path is required")
	}
	if c.Assets.Timeout <= 0 {
		return errors.New("assets.timeout must be positive")
	}
	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		return errors.New("redis.ttl must be positive")
	}
	return nil
}
