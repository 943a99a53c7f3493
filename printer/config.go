package printer

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/ygoproxy/ygoproxy/internal/domain/layout"
	"github.com/ygoproxy/ygoproxy/printer/config"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	// Keys present in the file replace the defaults, including explicit
	// zeros such as max_retries = 0 or gap = 0.
	cfg := defaults()
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.resolve()
	return &cfg, nil
}

// DefaultConfig is used when no config file exists.
func DefaultConfig() *Config {
	cfg := defaults()
	cfg.Store.Driver = StoreNone
	cfg.resolve()
	return &cfg
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	API    APIConfig    `toml:"api"`
	DB     DBConfig     `toml:"db"`
	Store  StoreConfig  `toml:"store"`
	Spaces SpacesConfig `toml:"spaces"`
	Export ExportConfig `toml:"export"`
	User   UserConfig   `toml:"user"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// APIConfig tunes the card database client. Durations are TOML strings
// such as "100ms" or "24h".
type APIConfig struct {
	BaseURL           string   `toml:"base_url"`
	MinInterval       Duration `toml:"min_interval"`
	CacheTTL          Duration `toml:"cache_ttl"`
	CacheSize         int      `toml:"cache_size"`
	MaxRetries        int      `toml:"max_retries"`
	RateLimitedDelay  Duration `toml:"rate_limited_delay"`
	ServerErrorDelay  Duration `toml:"server_error_delay"`
	NetworkErrorDelay Duration `toml:"network_error_delay"`
	Timeout           Duration `toml:"timeout"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreNone     = "none"
)

// StoreConfig selects the backend for custom cards, saved decks and
// generation history.
type StoreConfig struct {
	Driver        string `toml:"driver"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

type SpacesConfig struct {
	Key           string `toml:"key"`
	Secret        string `toml:"secret"`
	Region        string `toml:"region"`
	Bucket        string `toml:"bucket"`
	Endpoint      string `toml:"endpoint"`
	PublicBaseURL string `toml:"public_base_url"`
	Root          string `toml:"root"`
}

// Enabled reports whether image uploads are configured.
func (s SpacesConfig) Enabled() bool {
	return s.Key != "" && s.Secret != "" && s.Bucket != ""
}

type ExportConfig struct {
	layout.Settings
	OutputDir     string   `toml:"output_dir"`
	ChromeTimeout Duration `toml:"chrome_timeout"`
}

// UserConfig identifies the local user as owner of stored records.
type UserConfig struct {
	ID string `toml:"id"`
}

// Duration decodes from a TOML string.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func defaults() Config {
	var c Config
	c.API.BaseURL = config.DefaultAPIBaseURL
	c.API.MinInterval.Duration = config.MinRequestInterval
	c.API.CacheTTL.Duration = config.ResponseCacheTTL
	c.API.CacheSize = config.ResponseCacheSize
	c.API.MaxRetries = config.MaxRetries
	c.API.RateLimitedDelay.Duration = config.RateLimitedDelay
	c.API.ServerErrorDelay.Duration = config.ServerErrorDelay
	c.API.NetworkErrorDelay.Duration = config.NetworkErrorDelay
	c.API.Timeout.Duration = config.RequestTimeout

	c.DB.Port = 5432
	c.Store.MongoDatabase = "ygoproxy"
	c.Spaces.Root = config.CustomCardBucketRoot

	c.Export.Settings = layout.DefaultSettings()
	c.Export.OutputDir = "."
	c.Export.ChromeTimeout.Duration = config.ExportTimeout

	c.User.ID = "local"
	return c
}

// resolve fills values derived from other keys and restores required
// strings that were set empty.
func (c *Config) resolve() {
	if c.Store.Driver == "" {
		if c.DB.Host != "" {
			c.Store.Driver = StorePostgres
		} else {
			c.Store.Driver = StoreNone
		}
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = config.DefaultAPIBaseURL
	}
	if c.Store.MongoDatabase == "" {
		c.Store.MongoDatabase = "ygoproxy"
	}
	if c.Spaces.Root == "" {
		c.Spaces.Root = config.CustomCardBucketRoot
	}
	if c.Export.Format == "" {
		c.Export.Format = layout.FormatPDF
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "."
	}
	if c.User.ID == "" {
		c.User.ID = "local"
	}
}
